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

package interrupts_test

import (
	"testing"

	"github.com/jetsetilly/gopherdmg/hardware/interrupts"
	"github.com/jetsetilly/gopherdmg/test"
)

func TestPriority(t *testing.T) {
	irq := interrupts.NewInterrupts()
	irq.WriteEnable(0xff)

	// no request yet
	_, ok := irq.Pending()
	test.ExpectedFailure(t, ok)

	// raise in reverse priority order. highest priority must win
	irq.Raise(interrupts.Joypad)
	irq.Raise(interrupts.Timer)
	irq.Raise(interrupts.VBlank)

	src, ok := irq.Pending()
	test.ExpectedSuccess(t, ok)
	test.Equate(t, src.String(), interrupts.VBlank.String())

	// acknowledging the vblank request exposes the timer request
	irq.Acknowledge(interrupts.VBlank)
	src, ok = irq.Pending()
	test.ExpectedSuccess(t, ok)
	test.Equate(t, src.String(), interrupts.Timer.String())

	irq.Acknowledge(interrupts.Timer)
	src, ok = irq.Pending()
	test.ExpectedSuccess(t, ok)
	test.Equate(t, src.String(), interrupts.Joypad.String())
}

func TestEnableMask(t *testing.T) {
	irq := interrupts.NewInterrupts()

	// a request with no matching enable bit is not pending
	irq.Raise(interrupts.Serial)
	_, ok := irq.Pending()
	test.ExpectedFailure(t, ok)
	test.ExpectedFailure(t, irq.Waiting())

	irq.WriteEnable(interrupts.Serial.Mask())
	src, ok := irq.Pending()
	test.ExpectedSuccess(t, ok)
	test.Equate(t, src.String(), interrupts.Serial.String())
	test.ExpectedSuccess(t, irq.Waiting())
}

func TestRegisterBits(t *testing.T) {
	irq := interrupts.NewInterrupts()

	// undecoded bits of the IF register read high
	test.Equate(t, irq.ReadRequest(), 0xe0)

	irq.Raise(interrupts.VBlank)
	test.Equate(t, irq.ReadRequest(), 0xe1)

	// writes to IF only keep the lower five bits
	irq.WriteRequest(0xff)
	test.Equate(t, irq.ReadRequest(), 0xff)
	irq.WriteRequest(0x00)
	test.Equate(t, irq.ReadRequest(), 0xe0)

	// IE keeps all eight bits
	irq.WriteEnable(0xab)
	test.Equate(t, irq.ReadEnable(), 0xab)
}

func TestVectors(t *testing.T) {
	test.Equate(t, interrupts.VBlank.Vector(), 0x0040)
	test.Equate(t, interrupts.LCDStat.Vector(), 0x0048)
	test.Equate(t, interrupts.Timer.Vector(), 0x0050)
	test.Equate(t, interrupts.Serial.Vector(), 0x0058)
	test.Equate(t, interrupts.Joypad.Vector(), 0x0060)
}
