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

package serial_test

import (
	"bytes"
	"testing"

	"github.com/jetsetilly/gopherdmg/hardware/interrupts"
	"github.com/jetsetilly/gopherdmg/hardware/serial"
	"github.com/jetsetilly/gopherdmg/test"
)

func TestTransfer(t *testing.T) {
	irq := interrupts.NewInterrupts()
	irq.WriteEnable(0xff)
	ser := serial.NewSerial(irq)

	tap := &bytes.Buffer{}
	ser.Attach(tap)

	// the message a conformance ROM would print
	for _, b := range []byte("Passed") {
		ser.WriteSB(b)
		ser.WriteSC(0x81)
	}
	test.Equate(t, tap.String(), "Passed")

	// after the transfer the data register has clocked in all ones and the
	// start bit has cleared
	test.Equate(t, ser.ReadSB(), 0xff)
	test.Equate(t, ser.ReadSC()&0x80, 0x00)

	src, ok := irq.Pending()
	test.ExpectedSuccess(t, ok)
	test.Equate(t, src.String(), interrupts.Serial.String())
}

func TestNoTap(t *testing.T) {
	irq := interrupts.NewInterrupts()
	ser := serial.NewSerial(irq)

	// a transfer with no tap attached must not panic
	ser.WriteSB(0x42)
	ser.WriteSC(0x81)
	test.Equate(t, ser.ReadSB(), 0xff)
}

func TestExternalClock(t *testing.T) {
	irq := interrupts.NewInterrupts()
	irq.WriteEnable(0xff)
	ser := serial.NewSerial(irq)

	tap := &bytes.Buffer{}
	ser.Attach(tap)

	// a transfer on the external clock never completes. nothing drives it
	ser.WriteSB(0x42)
	ser.WriteSC(0x80)

	test.Equate(t, tap.String(), "")
	test.Equate(t, ser.ReadSB(), 0x42)
	test.Equate(t, ser.ReadSC()&0x80, 0x80)

	_, ok := irq.Pending()
	test.ExpectedFailure(t, ok)
}

func TestRegisterBits(t *testing.T) {
	irq := interrupts.NewInterrupts()
	ser := serial.NewSerial(irq)

	// undecoded SC bits read high
	test.Equate(t, ser.ReadSC(), 0x7e)
	ser.WriteSC(0x01)
	test.Equate(t, ser.ReadSC(), 0x7f)
}
