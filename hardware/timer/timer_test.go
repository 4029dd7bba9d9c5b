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

package timer_test

import (
	"testing"

	"github.com/jetsetilly/gopherdmg/hardware/interrupts"
	"github.com/jetsetilly/gopherdmg/hardware/timer"
	"github.com/jetsetilly/gopherdmg/test"
)

func TestDivider(t *testing.T) {
	irq := interrupts.NewInterrupts()
	tmr := timer.NewTimer(irq)

	// divider is the upper byte of a 16-bit counter so it ticks once every
	// 256 cycles
	tmr.Step(255)
	test.Equate(t, tmr.ReadDIV(), 0x00)
	tmr.Step(1)
	test.Equate(t, tmr.ReadDIV(), 0x01)

	tmr.Step(256 * 16)
	test.Equate(t, tmr.ReadDIV(), 0x11)

	// any write resets the whole counter
	tmr.WriteDIV(0xab)
	test.Equate(t, tmr.ReadDIV(), 0x00)
	tmr.Step(255)
	test.Equate(t, tmr.ReadDIV(), 0x00)
}

func TestTIMADisabled(t *testing.T) {
	irq := interrupts.NewInterrupts()
	tmr := timer.NewTimer(irq)

	// TAC enable bit is clear. TIMA never ticks
	tmr.Step(100000)
	test.Equate(t, tmr.ReadTIMA(), 0x00)
}

func TestTIMARates(t *testing.T) {
	irq := interrupts.NewInterrupts()
	tmr := timer.NewTimer(irq)

	// rate 01 is the fastest: one tick every 16 cycles
	tmr.WriteTAC(0x05)
	tmr.Step(16)
	test.Equate(t, tmr.ReadTIMA(), 0x01)
	tmr.Step(15)
	test.Equate(t, tmr.ReadTIMA(), 0x01)
	tmr.Step(1)
	test.Equate(t, tmr.ReadTIMA(), 0x02)

	// rate 00 is the slowest: one tick every 1024 cycles
	tmr.Reset()
	tmr.WriteTAC(0x04)
	tmr.Step(1023)
	test.Equate(t, tmr.ReadTIMA(), 0x00)
	tmr.Step(1)
	test.Equate(t, tmr.ReadTIMA(), 0x01)
}

func TestTIMAOverflow(t *testing.T) {
	irq := interrupts.NewInterrupts()
	irq.WriteEnable(0xff)
	tmr := timer.NewTimer(irq)

	tmr.WriteTAC(0x05)
	tmr.WriteTMA(0xf0)
	tmr.WriteTIMA(0xff)

	// overflow reloads from TMA and raises the timer interrupt
	tmr.Step(16)
	test.Equate(t, tmr.ReadTIMA(), 0xf0)

	src, ok := irq.Pending()
	test.ExpectedSuccess(t, ok)
	test.Equate(t, src.String(), interrupts.Timer.String())
}

func TestTACBits(t *testing.T) {
	irq := interrupts.NewInterrupts()
	tmr := timer.NewTimer(irq)

	// undecoded bits read high; only the lower three bits are kept
	tmr.WriteTAC(0xff)
	test.Equate(t, tmr.ReadTAC(), 0xff)
	tmr.WriteTAC(0x00)
	test.Equate(t, tmr.ReadTAC(), 0xf8)
}
