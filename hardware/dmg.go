// This file is part of GopherDMG.
//
// GopherDMG is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherDMG is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherDMG.  If not, see <https://www.gnu.org/licenses/>.

package hardware

import (
	"github.com/jetsetilly/gopherdmg/hardware/cpu"
	"github.com/jetsetilly/gopherdmg/hardware/interrupts"
	"github.com/jetsetilly/gopherdmg/hardware/memory"
	"github.com/jetsetilly/gopherdmg/hardware/memory/addresses"
	"github.com/jetsetilly/gopherdmg/hardware/memory/cartridge"
	"github.com/jetsetilly/gopherdmg/hardware/ppu"
	"github.com/jetsetilly/gopherdmg/hardware/serial"
	"github.com/jetsetilly/gopherdmg/hardware/timer"
)

// DMG is the main container for the emulated components of the machine.
type DMG struct {
	CPU        *cpu.CPU
	Mem        *memory.Memory
	PPU        *ppu.PPU
	Timer      *timer.Timer
	Serial     *serial.Serial
	Interrupts *interrupts.Interrupts

	// the cartridge is attached to the machine through the memory bus but a
	// reference is kept for introspection
	Cart *cartridge.Cartridge

	// see trace.go
	TraceMode   TraceMode
	traceWriter TraceWriter
}

// NewDMG creates a new DMG machine around the supplied cartridge. It is used
// for all aspects of emulation: conformance runs and regular play.
func NewDMG(cart *cartridge.Cartridge) *DMG {
	dmg := &DMG{Cart: cart}

	dmg.Interrupts = interrupts.NewInterrupts()
	dmg.PPU = ppu.NewPPU(dmg.Interrupts)
	dmg.Timer = timer.NewTimer(dmg.Interrupts)
	dmg.Serial = serial.NewSerial(dmg.Interrupts)
	dmg.Mem = memory.NewMemory(cart, dmg.PPU, dmg.Timer, dmg.Serial, dmg.Interrupts)
	dmg.CPU = cpu.NewCPU(dmg.Mem, dmg.Interrupts)

	return dmg
}

// LoadBootROM attaches a boot ROM image to the machine. The image shadows the
// bottom of the cartridge until the boot sequence writes to the BOOT register.
func (dmg *DMG) LoadBootROM(data []uint8) {
	dmg.Mem.LoadBoot(data)
}

// Reset the machine to its power-on state. The boot overlay, if one is
// attached, is switched back in.
func (dmg *DMG) Reset() {
	dmg.CPU.Reset()
	dmg.PPU.Reset()
	dmg.Timer.Reset()
	dmg.Serial.Reset()
	dmg.Interrupts.Reset()
}

// SkipBootROM puts the machine into the state the boot sequence leaves it in,
// without running the boot sequence. The CPU registers take their well known
// post-boot values and execution begins at the cartridge entry point.
func (dmg *DMG) SkipBootROM() {
	dmg.CPU.A.Load(0x01)
	dmg.CPU.F.Load(0xb0)
	dmg.CPU.B.Load(0x00)
	dmg.CPU.C.Load(0x13)
	dmg.CPU.D.Load(0x00)
	dmg.CPU.E.Load(0xd8)
	dmg.CPU.H.Load(0x01)
	dmg.CPU.L.Load(0x4d)
	dmg.CPU.SP.Load(0xfffe)
	dmg.CPU.PC.Load(addresses.ResetPC)

	// the hardware registers as the boot sequence leaves them. most
	// importantly the LCD is switched on
	dmg.Mem.Write(addresses.LCDC, 0x91)
	dmg.Mem.Write(addresses.BGP, 0xfc)
	dmg.Mem.Write(addresses.OBP0, 0xff)
	dmg.Mem.Write(addresses.OBP1, 0xff)

	dmg.Mem.DisableBoot()
}

// Step the machine by one CPU instruction. The cycles the instruction took,
// plus any cycles owed to an OAM DMA transfer it triggered, are distributed
// to the timer and the PPU after the instruction's memory effects have been
// fully applied. Interrupts raised during those cycles are visible to the CPU
// at the next Step.
func (dmg *DMG) Step() (int, error) {
	cycles, err := dmg.CPU.ExecuteInstruction()
	if err != nil {
		return cycles, err
	}

	cycles += dmg.Mem.ClaimDMACycles()
	dmg.CPU.LastResult.Cycles = cycles

	dmg.Timer.Step(cycles)
	dmg.PPU.Step(cycles)

	dmg.traceStep()

	return cycles, nil
}

// Run the machine as quickly as possible. continueCheck() is called after
// every instruction and should return false when the emulation should stop.
func (dmg *DMG) Run(continueCheck func() (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func() (bool, error) { return true, nil }
	}

	cont := true
	for cont {
		if _, err := dmg.Step(); err != nil {
			return err
		}

		var err error
		cont, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}

// RunForFrameCount runs the machine for the specified number of video frames.
// Useful for conformance tests, which settle their result within a known
// number of frames.
func (dmg *DMG) RunForFrameCount(numFrames int) error {
	targetFrame := dmg.PPU.FrameNum() + numFrames

	for dmg.PPU.FrameNum() < targetFrame {
		if _, err := dmg.Step(); err != nil {
			return err
		}
	}

	return nil
}
