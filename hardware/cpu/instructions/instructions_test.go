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

package instructions_test

import (
	"testing"

	"github.com/jetsetilly/gopherdmg/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherdmg/test"
)

// the unused encodings of the primary page, plus the CB prefix byte.
var undefined = []uint8{0xcb, 0xd3, 0xdb, 0xdd, 0xe3, 0xe4, 0xeb, 0xec, 0xed, 0xf4, 0xfc, 0xfd}

func TestTableCoverage(t *testing.T) {
	undef := make(map[uint8]bool)
	for _, o := range undefined {
		undef[o] = true
	}

	for opcode := 0; opcode <= 0xff; opcode++ {
		defn := instructions.Primary[opcode]
		if undef[uint8(opcode)] {
			if defn != nil {
				t.Errorf("opcode %#02x should be undefined", opcode)
			}
			continue
		}

		if defn == nil {
			t.Errorf("opcode %#02x has no definition", opcode)
			continue
		}
		test.Equate(t, defn.OpCode, opcode)
		if defn.Cycles == 0 {
			t.Errorf("opcode %#02x has no cycle count", opcode)
		}
	}

	// every CB page entry is defined
	for opcode := 0; opcode <= 0xff; opcode++ {
		defn := instructions.CB[opcode]
		if defn == nil {
			t.Errorf("cb opcode %#02x has no definition", opcode)
			continue
		}
		test.Equate(t, defn.Bytes, 2)
	}
}

func TestCycleCounts(t *testing.T) {
	// spot checks against the canonical timings
	test.Equate(t, instructions.Primary[0x00].Cycles, 4)   // NOP
	test.Equate(t, instructions.Primary[0x08].Cycles, 20)  // LD (a16),SP
	test.Equate(t, instructions.Primary[0x36].Cycles, 12)  // LD (HL),d8
	test.Equate(t, instructions.Primary[0x76].Cycles, 4)   // HALT
	test.Equate(t, instructions.Primary[0x7e].Cycles, 8)   // LD A,(HL)
	test.Equate(t, instructions.Primary[0x86].Cycles, 8)   // ADD A,(HL)
	test.Equate(t, instructions.Primary[0xc3].Cycles, 16)  // JP a16
	test.Equate(t, instructions.Primary[0xcd].Cycles, 24)  // CALL a16
	test.Equate(t, instructions.Primary[0xc9].Cycles, 16)  // RET
	test.Equate(t, instructions.Primary[0xe9].Cycles, 4)   // JP HL
	test.Equate(t, instructions.Primary[0xf0].Cycles, 12)  // LDH A,(a8)

	// conditional branch timings
	test.Equate(t, instructions.Primary[0x20].Cycles, 8)
	test.Equate(t, instructions.Primary[0x20].CyclesBranched, 12)
	test.Equate(t, instructions.Primary[0xc0].Cycles, 8)
	test.Equate(t, instructions.Primary[0xc0].CyclesBranched, 20)
	test.Equate(t, instructions.Primary[0xc2].CyclesBranched, 16)
	test.Equate(t, instructions.Primary[0xc4].CyclesBranched, 24)

	// the CB page: plain register operations, memory operations, and the
	// read-only exception for BIT
	test.Equate(t, instructions.CB[0x00].Cycles, 8)  // RLC B
	test.Equate(t, instructions.CB[0x06].Cycles, 16) // RLC (HL)
	test.Equate(t, instructions.CB[0x46].Cycles, 12) // BIT 0,(HL)
	test.Equate(t, instructions.CB[0x86].Cycles, 16) // RES 0,(HL)
}

func TestMnemonics(t *testing.T) {
	test.Equate(t, instructions.Primary[0x00].Mnemonic(), "NOP")
	test.Equate(t, instructions.Primary[0x22].Mnemonic(), "LD (HL+),A")
	test.Equate(t, instructions.Primary[0x20].Mnemonic(), "JR NZ,r8")
	test.Equate(t, instructions.Primary[0x76].Mnemonic(), "HALT")
	test.Equate(t, instructions.Primary[0xc7].Mnemonic(), "RST 00H")
	test.Equate(t, instructions.Primary[0xff].Mnemonic(), "RST 38H")
	test.Equate(t, instructions.Primary[0xf8].Mnemonic(), "LD HL,SP+r8")
	test.Equate(t, instructions.CB[0x7e].Mnemonic(), "BIT 7,(HL)")
	test.Equate(t, instructions.CB[0x37].Mnemonic(), "SWAP A")
}

func TestBytes(t *testing.T) {
	test.Equate(t, instructions.Primary[0x00].Bytes, 1)
	test.Equate(t, instructions.Primary[0x06].Bytes, 2) // LD B,d8
	test.Equate(t, instructions.Primary[0x01].Bytes, 3) // LD BC,d16
	test.Equate(t, instructions.Primary[0x08].Bytes, 3) // LD (a16),SP
	test.Equate(t, instructions.Primary[0x18].Bytes, 2) // JR r8
	test.Equate(t, instructions.Primary[0xe0].Bytes, 2) // LDH (a8),A
	test.Equate(t, instructions.Primary[0xfa].Bytes, 3) // LD A,(a16)
	test.Equate(t, instructions.Primary[0xf8].Bytes, 2) // LD HL,SP+r8
}
