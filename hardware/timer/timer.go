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

// Package timer implements the timer block of the DMG: the free running
// divider register and the programmable counter.
//
// The divider is the upper byte of a 16-bit counter that runs whenever the
// machine has power. The programmable counter ticks at one of four rates
// selected by the control register and raises the timer interrupt when it
// overflows, reloading itself from the modulo register.
package timer

import (
	"fmt"

	"github.com/jetsetilly/gopherdmg/hardware/interrupts"
)

// the number of cycles between ticks for each of the four rate selections in
// the control register.
var divisors = [4]int{1024, 16, 64, 256}

// Timer implements the DIV, TIMA, TMA and TAC registers.
type Timer struct {
	irq *interrupts.Interrupts

	// the free running counter. DIV reads the upper byte
	divider uint16

	tima uint8
	tma  uint8
	tac  uint8

	// cycles accumulated towards the next TIMA tick
	accumulator int
}

// NewTimer is the preferred method of initialisation for the Timer type.
func NewTimer(irq *interrupts.Interrupts) *Timer {
	return &Timer{irq: irq}
}

func (tmr *Timer) String() string {
	return fmt.Sprintf("DIV=%#02x TIMA=%#02x TMA=%#02x TAC=%#02x", tmr.ReadDIV(), tmr.tima, tmr.tma, tmr.tac)
}

// Reset the timer to the power-on state.
func (tmr *Timer) Reset() {
	tmr.divider = 0
	tmr.tima = 0
	tmr.tma = 0
	tmr.tac = 0
	tmr.accumulator = 0
}

func (tmr *Timer) enabled() bool {
	return tmr.tac&0x04 == 0x04
}

func (tmr *Timer) divisor() int {
	return divisors[tmr.tac&0x03]
}

// Step the timer forward. The cycles value is the duration of the
// instruction the CPU has just executed.
func (tmr *Timer) Step(cycles int) {
	tmr.divider += uint16(cycles)

	if !tmr.enabled() {
		return
	}

	tmr.accumulator += cycles
	for tmr.accumulator >= tmr.divisor() {
		tmr.accumulator -= tmr.divisor()
		tmr.tima++
		if tmr.tima == 0 {
			tmr.tima = tmr.tma
			tmr.irq.Raise(interrupts.Timer)
		}
	}
}

// ReadDIV returns the value of the DIV register.
func (tmr *Timer) ReadDIV() uint8 {
	return uint8(tmr.divider >> 8)
}

// WriteDIV resets the divider. The value written is irrelevant, any write
// clears the whole 16-bit counter.
func (tmr *Timer) WriteDIV(data uint8) {
	tmr.divider = 0
}

// ReadTIMA returns the value of the TIMA register.
func (tmr *Timer) ReadTIMA() uint8 {
	return tmr.tima
}

// WriteTIMA sets the TIMA register.
func (tmr *Timer) WriteTIMA(data uint8) {
	tmr.tima = data
}

// ReadTMA returns the value of the TMA register.
func (tmr *Timer) ReadTMA() uint8 {
	return tmr.tma
}

// WriteTMA sets the TMA register.
func (tmr *Timer) WriteTMA(data uint8) {
	tmr.tma = data
}

// ReadTAC returns the value of the TAC register. The undecoded upper bits
// read high.
func (tmr *Timer) ReadTAC() uint8 {
	return tmr.tac | 0xf8
}

// WriteTAC sets the TAC register. Changing the rate selection does not
// disturb cycles already accumulated towards the next tick.
func (tmr *Timer) WriteTAC(data uint8) {
	tmr.tac = data & 0x07
}
