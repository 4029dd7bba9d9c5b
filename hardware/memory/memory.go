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

// Package memory implements the 64k address space of the DMG as seen by the
// CPU. The bus owns work RAM and high RAM directly and routes every other
// area to the component that owns it: the cartridge, the PPU (for video RAM
// and the sprite attribute table) and the hardware registers in the IO page.
//
// Every address is readable and writable. Reads of unmapped addresses return
// 0xff, the value of an undriven bus; writes to them disappear. The
// emulation never faults on a memory access, just as the hardware doesn't.
package memory

import (
	"github.com/jetsetilly/gopherdmg/hardware/interrupts"
	"github.com/jetsetilly/gopherdmg/hardware/memory/addresses"
	"github.com/jetsetilly/gopherdmg/hardware/memory/cartridge"
	"github.com/jetsetilly/gopherdmg/hardware/memory/memorymap"
	"github.com/jetsetilly/gopherdmg/hardware/ppu"
	"github.com/jetsetilly/gopherdmg/hardware/serial"
	"github.com/jetsetilly/gopherdmg/hardware/timer"
)

// the number of bytes moved by one OAM DMA transfer and the time it takes.
// four cycles per byte
const (
	dmaLength = 0xa0
	dmaCycles = dmaLength * 4
)

// Memory is the 64k address space.
type Memory struct {
	cart *cartridge.Cartridge
	ppu  *ppu.PPU
	tmr  *timer.Timer
	ser  *serial.Serial
	irq  *interrupts.Interrupts

	wram [0x2000]uint8
	hram [0x7f]uint8

	// the boot ROM shadows the bottom of the cartridge until a write to the
	// BOOT register switches it out
	boot        []uint8
	bootEnabled bool

	// the joypad matrix select bits as last written. there is no input
	// device so the button lines always read released
	joyp uint8

	// the last value written to the DMA register
	dma uint8

	// cycles owed to the most recent OAM DMA transfer. collected by the
	// machine stepper through ClaimDMACycles()
	pendingDMACycles int
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory(cart *cartridge.Cartridge, p *ppu.PPU, tmr *timer.Timer, ser *serial.Serial, irq *interrupts.Interrupts) *Memory {
	return &Memory{
		cart: cart,
		ppu:  p,
		tmr:  tmr,
		ser:  ser,
		irq:  irq,
	}
}

// LoadBoot attaches a boot ROM image. The image shadows addresses 0x0000 to
// 0x00ff until the program writes to the BOOT register.
func (mem *Memory) LoadBoot(data []uint8) {
	mem.boot = data
	mem.bootEnabled = len(data) > 0
}

// DisableBoot switches the boot ROM out, as though the BOOT register had
// been written. Used when starting a program without running the boot
// sequence.
func (mem *Memory) DisableBoot() {
	mem.bootEnabled = false
}

// BootEnabled returns true if the boot ROM is still switched in.
func (mem *Memory) BootEnabled() bool {
	return mem.bootEnabled
}

// ClaimDMACycles returns the cycles owed to OAM DMA transfers since the last
// claim, and zeroes the debt. The machine stepper claims after every
// instruction and charges the cycles to that instruction.
func (mem *Memory) ClaimDMACycles() int {
	c := mem.pendingDMACycles
	mem.pendingDMACycles = 0
	return c
}

// Read a byte from the address space.
func (mem *Memory) Read(address uint16) uint8 {
	ma, area := memorymap.MapAddress(address)

	switch area {
	case memorymap.Cartridge:
		if mem.bootEnabled && address <= memorymap.MemtopBoot {
			if int(address) < len(mem.boot) {
				return mem.boot[address]
			}
			return 0xff
		}
		return mem.cart.Read(ma)
	case memorymap.VRAM:
		return mem.ppu.ReadVRAM(ma)
	case memorymap.CartRAM:
		return mem.cart.ReadRAM(ma)
	case memorymap.WRAM:
		return mem.wram[ma]
	case memorymap.OAM:
		return mem.ppu.ReadOAM(ma)
	case memorymap.Unusable:
		return 0xff
	case memorymap.IO:
		return mem.readIO(address)
	case memorymap.HRAM:
		return mem.hram[ma]
	case memorymap.InterruptEnable:
		return mem.irq.ReadEnable()
	}

	return 0xff
}

// Write a byte to the address space.
func (mem *Memory) Write(address uint16, data uint8) {
	ma, area := memorymap.MapAddress(address)

	switch area {
	case memorymap.Cartridge:
		mem.cart.Write(ma, data)
	case memorymap.VRAM:
		mem.ppu.WriteVRAM(ma, data)
	case memorymap.CartRAM:
		mem.cart.WriteRAM(ma, data)
	case memorymap.WRAM:
		mem.wram[ma] = data
	case memorymap.OAM:
		mem.ppu.WriteOAM(ma, data)
	case memorymap.IO:
		mem.writeIO(address, data)
	case memorymap.HRAM:
		mem.hram[ma] = data
	case memorymap.InterruptEnable:
		mem.irq.WriteEnable(data)
	}
}

func (mem *Memory) readIO(address uint16) uint8 {
	switch address {
	case addresses.JOYP:
		// no input device. every line reads released
		return 0xc0 | mem.joyp | 0x0f
	case addresses.SB:
		return mem.ser.ReadSB()
	case addresses.SC:
		return mem.ser.ReadSC()
	case addresses.DIV:
		return mem.tmr.ReadDIV()
	case addresses.TIMA:
		return mem.tmr.ReadTIMA()
	case addresses.TMA:
		return mem.tmr.ReadTMA()
	case addresses.TAC:
		return mem.tmr.ReadTAC()
	case addresses.IF:
		return mem.irq.ReadRequest()
	case addresses.DMA:
		return mem.dma
	}

	// the PPU registers are a contiguous block either side of the DMA
	// register
	if address >= addresses.LCDC && address <= addresses.WX {
		return mem.ppu.ReadRegister(address - memorymap.OriginIO)
	}

	return 0xff
}

func (mem *Memory) writeIO(address uint16, data uint8) {
	switch address {
	case addresses.JOYP:
		// only the matrix select bits are writable
		mem.joyp = data & 0x30
		return
	case addresses.SB:
		mem.ser.WriteSB(data)
		return
	case addresses.SC:
		mem.ser.WriteSC(data)
		return
	case addresses.DIV:
		mem.tmr.WriteDIV(data)
		return
	case addresses.TIMA:
		mem.tmr.WriteTIMA(data)
		return
	case addresses.TMA:
		mem.tmr.WriteTMA(data)
		return
	case addresses.TAC:
		mem.tmr.WriteTAC(data)
		return
	case addresses.IF:
		mem.irq.WriteRequest(data)
		return
	case addresses.DMA:
		mem.dma = data
		mem.doDMA(data)
		return
	case addresses.BOOT:
		mem.bootEnabled = false
		return
	}

	if address >= addresses.LCDC && address <= addresses.WX {
		mem.ppu.WriteRegister(address-memorymap.OriginIO, data)
	}
}

// doDMA performs an OAM DMA transfer. The whole transfer happens at once;
// the time it would have taken accrues as a cycle debt claimed by the
// machine stepper.
func (mem *Memory) doDMA(page uint8) {
	src := uint16(page) << 8
	for i := uint16(0); i < dmaLength; i++ {
		mem.ppu.WriteOAMDMA(i, mem.Read(src+i))
	}
	mem.pendingDMACycles += dmaCycles
}
