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

// Package interrupts implements the interrupt request and enable flags of the
// DMG. The flags are shared state: the timer, PPU and serial port raise
// requests by setting a bit; the CPU services and acknowledges them.
//
// Components never call into the CPU directly. Raising an interrupt is
// nothing more than setting a bit in the request register and letting the CPU
// notice at its next instruction boundary. This mirrors how the hardware
// works and keeps the components decoupled.
package interrupts

import (
	"strings"

	"github.com/jetsetilly/gopherdmg/hardware/memory/addresses"
)

// Source identifies one of the five interrupt sources. The value is the bit
// position of the source in the IF and IE registers. Lower bit positions have
// higher service priority.
type Source int

// The five interrupt sources in priority order.
const (
	VBlank Source = iota
	LCDStat
	Timer
	Serial
	Joypad
	NumSources
)

func (s Source) String() string {
	switch s {
	case VBlank:
		return "VBLANK"
	case LCDStat:
		return "LCDSTAT"
	case Timer:
		return "TIMER"
	case Serial:
		return "SERIAL"
	case Joypad:
		return "JOYPAD"
	}

	return "unknown"
}

// Mask returns the bit mask for the source in the IF and IE registers.
func (s Source) Mask() uint8 {
	return 1 << uint(s)
}

// Vector returns the address the CPU jumps to when servicing the source.
func (s Source) Vector() uint16 {
	switch s {
	case VBlank:
		return addresses.VectorVBlank
	case LCDStat:
		return addresses.VectorLCDStat
	case Timer:
		return addresses.VectorTimer
	case Serial:
		return addresses.VectorSerial
	case Joypad:
		return addresses.VectorJoypad
	}

	return 0
}

// Interrupts is the shared request/enable state. One instance is created by
// the machine and handed to every component that raises or services
// interrupts.
type Interrupts struct {
	// request and enable flags. only the lower five bits are significant.
	// the upper three bits of a register read are forced high, which is what
	// the undecoded lines on the hardware return.
	request uint8
	enable  uint8
}

// NewInterrupts is the preferred method of initialisation for the Interrupts
// type.
func NewInterrupts() *Interrupts {
	return &Interrupts{}
}

func (irq *Interrupts) String() string {
	s := strings.Builder{}
	for src := VBlank; src < NumSources; src++ {
		if irq.request&irq.enable&src.Mask() != 0 {
			s.WriteString(src.String())
			s.WriteRune(' ')
		}
	}
	return strings.TrimSpace(s.String())
}

// Reset the interrupt state to the power-on condition.
func (irq *Interrupts) Reset() {
	irq.request = 0x00
	irq.enable = 0x00
}

// Raise the request flag for the source.
func (irq *Interrupts) Raise(src Source) {
	irq.request |= src.Mask()
}

// Acknowledge clears the request flag for the source. Called by the CPU when
// it begins servicing the interrupt.
func (irq *Interrupts) Acknowledge(src Source) {
	irq.request &^= src.Mask()
}

// Pending returns the highest priority source that is both requested and
// enabled. The second return value is false if no source qualifies.
func (irq *Interrupts) Pending() (Source, bool) {
	p := irq.request & irq.enable & 0x1f
	if p == 0 {
		return NumSources, false
	}

	for src := VBlank; src < NumSources; src++ {
		if p&src.Mask() != 0 {
			return src, true
		}
	}

	// can't happen. the loop above covers every bit in the mask
	return NumSources, false
}

// Waiting returns true if any source is both requested and enabled. Used by
// the CPU to decide whether to leave the halt state, which happens regardless
// of the master enable flag.
func (irq *Interrupts) Waiting() bool {
	return irq.request&irq.enable&0x1f != 0
}

// ReadRequest returns the value of the IF register. Undecoded bits are high.
func (irq *Interrupts) ReadRequest() uint8 {
	return irq.request | 0xe0
}

// WriteRequest sets the IF register directly. The CPU can do this like any
// other memory write.
func (irq *Interrupts) WriteRequest(data uint8) {
	irq.request = data & 0x1f
}

// ReadEnable returns the value of the IE register.
func (irq *Interrupts) ReadEnable() uint8 {
	return irq.enable
}

// WriteEnable sets the IE register.
func (irq *Interrupts) WriteEnable(data uint8) {
	irq.enable = data
}
