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

// Package serial implements the serial port of the DMG, or as much of it as
// is useful without a second machine on the other end of the link cable.
//
// A transfer started with the clock-internal bit shifts out the byte in the
// data register. There is no peer so every shifted-in bit reads as one and
// the data register finishes the transfer holding 0xff, exactly as on real
// hardware with nothing plugged in.
//
// The outgoing byte is offered to an optional io.Writer tap. The conformance
// ROMs in wide circulation print their results through the serial port, so
// pointing the tap at os.Stdout (or a bytes.Buffer in a test) is the easiest
// way to see a pass/fail verdict.
package serial

import (
	"io"

	"github.com/jetsetilly/gopherdmg/hardware/interrupts"
)

// Serial implements the SB and SC registers.
type Serial struct {
	irq *interrupts.Interrupts

	sb uint8
	sc uint8

	// tap receives every transferred byte. may be nil
	tap io.Writer
}

// NewSerial is the preferred method of initialisation for the Serial type.
func NewSerial(irq *interrupts.Interrupts) *Serial {
	return &Serial{irq: irq}
}

// Attach an io.Writer to receive transferred bytes. A nil value detaches.
func (ser *Serial) Attach(tap io.Writer) {
	ser.tap = tap
}

// Reset the serial port to the power-on state.
func (ser *Serial) Reset() {
	ser.sb = 0x00
	ser.sc = 0x00
}

// ReadSB returns the value of the data register.
func (ser *Serial) ReadSB() uint8 {
	return ser.sb
}

// WriteSB sets the data register.
func (ser *Serial) WriteSB(data uint8) {
	ser.sb = data
}

// ReadSC returns the value of the control register. Undecoded bits read
// high.
func (ser *Serial) ReadSC() uint8 {
	return ser.sc | 0x7e
}

// WriteSC sets the control register. Setting bit 7 along with the
// clock-internal bit starts a transfer, which completes immediately: the
// data register is offered to the tap, refilled with 0xff from the absent
// peer, and the serial interrupt raised. A transfer started on the external
// clock never completes. there is no peer to drive it
func (ser *Serial) WriteSC(data uint8) {
	ser.sc = data & 0x81

	if data&0x81 == 0x81 {
		if ser.tap != nil {
			ser.tap.Write([]byte{ser.sb})
		}
		ser.sb = 0xff
		ser.sc &= 0x7f
		ser.irq.Raise(interrupts.Serial)
	}
}
