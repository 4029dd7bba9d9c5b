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
	"fmt"
	"io"
)

// TraceMode selects what the machine sends to the trace writer.
type TraceMode int

// List of valid TraceMode values.
const (
	// no trace output at all
	TraceOff TraceMode = iota

	// one line per instruction, including instructions executed from the
	// boot overlay
	TraceWithBoot

	// one line per instruction, suppressed while the boot overlay is
	// switched in
	TraceWithoutBoot

	// no instruction trace. the writer is attached to the serial port
	// instead, collecting whatever the running program prints
	TraceSerial
)

func (mode TraceMode) String() string {
	switch mode {
	case TraceOff:
		return "off"
	case TraceWithBoot:
		return "instructions (with boot)"
	case TraceWithoutBoot:
		return "instructions (without boot)"
	case TraceSerial:
		return "serial"
	}
	return "unknown"
}

// TraceWriter receives the execution trace, one formatted line per traced
// instruction.
type TraceWriter = io.Writer

// SetTrace attaches a trace writer to the machine. For the instruction modes
// the writer receives one line per executed instruction; for TraceSerial the
// writer is attached to the serial port instead.
func (dmg *DMG) SetTrace(mode TraceMode, w TraceWriter) {
	dmg.TraceMode = mode
	dmg.traceWriter = w

	if mode == TraceSerial {
		dmg.Serial.Attach(w)
	}
}

// traceStep emits a trace line for the instruction that has just executed.
// Called by Step() after the cycles have been distributed.
func (dmg *DMG) traceStep() {
	if dmg.traceWriter == nil {
		return
	}

	switch dmg.TraceMode {
	case TraceWithBoot:
		// every instruction
	case TraceWithoutBoot:
		if dmg.Mem.BootEnabled() {
			return
		}
	default:
		return
	}

	res := dmg.CPU.LastResult
	if res.Interrupted {
		fmt.Fprintf(dmg.traceWriter, "-- interrupt dispatch --\n")
	}
	fmt.Fprintf(dmg.traceWriter, "%s %s cycles=%d\n", res.String(), dmg.CPU.String(), res.Cycles)
}
