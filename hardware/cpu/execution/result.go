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

// Package execution tracks the result of instruction execution on the CPU.
// The Result type is updated by the CPU as it executes an instruction and is
// complete once execution has finished. The trace facility reads it to
// produce a line of the execution log; nothing in the emulation core itself
// depends on it.
package execution

import (
	"fmt"

	"github.com/jetsetilly/gopherdmg/hardware/cpu/instructions"
)

// Result records the state of an instruction execution.
type Result struct {
	// address of the opcode
	Address uint16

	// the opcode as fetched. for a CB page instruction this is the byte
	// after the prefix
	OpCode uint8

	// definition of the executed instruction. nil until the decode stage has
	// completed
	Defn *instructions.Definition

	// number of cycles the instruction took, including any branch penalty
	// and any cycles stolen by OAM DMA
	Cycles int

	// whether a conditional branch was taken
	BranchTaken bool

	// whether the interrupt dispatch sequence ran before the instruction
	Interrupted bool

	// instruction execution is complete
	Final bool
}

// Reset nullifies the result ready for a new instruction.
func (r *Result) Reset() {
	r.Address = 0
	r.OpCode = 0
	r.Defn = nil
	r.Cycles = 0
	r.BranchTaken = false
	r.Interrupted = false
	r.Final = false
}

// String returns the result as a line of execution trace. The same format as
// the reference logs used during development.
func (r Result) String() string {
	if r.Defn == nil {
		return fmt.Sprintf("%#04x: %#02x (??)", r.Address, r.OpCode)
	}
	return fmt.Sprintf("%#04x: %#02x (%s)", r.Address, r.OpCode, r.Defn.Mnemonic())
}
