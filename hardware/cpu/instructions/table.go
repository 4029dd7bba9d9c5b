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

package instructions

// Primary is the table of definitions for the primary opcode page. Entries
// for the eleven unused encodings are nil, as is the entry for the CB prefix
// byte itself.
var Primary = primaryTable()

// CB is the table of definitions for the CB page. Every entry is defined.
var CB = cbTable()

// the register operand selected by the lower three bits of the regular
// opcode blocks.
var regSelect = [8]Operand{B, C, D, E, H, L, IndHL, A}

// the ALU operator selected by bits 3 to 5 of the 0x80 to 0xbf block.
var aluSelect = [8]Operator{ADD, ADC, SUB, SBC, AND, XOR, OR, CP}

// the rotate/shift operator selected by bits 3 to 5 of the first quarter of
// the CB page.
var shiftSelect = [8]Operator{RLC, RRC, RL, RR, SLA, SRA, SWAP, SRL}

func newDefn(opcode uint8, op Operator, dst, src Operand, cond Condition, cycles, branched int) *Definition {
	return &Definition{
		OpCode:         opcode,
		Operator:       op,
		Dst:            dst,
		Src:            src,
		Cond:           cond,
		Bytes:          1 + dst.ImmediateBytes() + src.ImmediateBytes(),
		Cycles:         cycles,
		CyclesBranched: branched,
	}
}

func primaryTable() [256]*Definition {
	var tbl [256]*Definition

	put := func(opcode uint8, op Operator, dst, src Operand, cycles int) {
		tbl[opcode] = newDefn(opcode, op, dst, src, NoCondition, cycles, 0)
	}
	branch := func(opcode uint8, op Operator, dst Operand, cond Condition, cycles, branched int) {
		tbl[opcode] = newDefn(opcode, op, dst, NoOperand, cond, cycles, branched)
	}
	rst := func(opcode uint8, target uint8) {
		d := newDefn(opcode, RST, NoOperand, NoOperand, NoCondition, 16, 0)
		d.Bit = target
		tbl[opcode] = d
	}

	// 0x00 to 0x3f. the four columns of 16-bit operations and the
	// increment/decrement/load columns follow the BC/DE/HL/SP progression but
	// the block has enough irregularity that enumeration is clearer than
	// generation
	put(0x00, NOP, NoOperand, NoOperand, 4)
	put(0x01, LD, BC, Imm16, 12)
	put(0x02, LD, IndBC, A, 8)
	put(0x03, INC, BC, NoOperand, 8)
	put(0x04, INC, B, NoOperand, 4)
	put(0x05, DEC, B, NoOperand, 4)
	put(0x06, LD, B, Imm8, 8)
	put(0x07, RLCA, NoOperand, NoOperand, 4)
	put(0x08, LD, IndImm16, SP, 20)
	put(0x09, ADD, HL, BC, 8)
	put(0x0a, LD, A, IndBC, 8)
	put(0x0b, DEC, BC, NoOperand, 8)
	put(0x0c, INC, C, NoOperand, 4)
	put(0x0d, DEC, C, NoOperand, 4)
	put(0x0e, LD, C, Imm8, 8)
	put(0x0f, RRCA, NoOperand, NoOperand, 4)

	// the byte following STOP is swallowed by the halted clock on real
	// hardware. it is conventionally zero, which executes as NOP, so a one
	// byte definition gives the same result
	put(0x10, STOP, NoOperand, NoOperand, 4)
	put(0x11, LD, DE, Imm16, 12)
	put(0x12, LD, IndDE, A, 8)
	put(0x13, INC, DE, NoOperand, 8)
	put(0x14, INC, D, NoOperand, 4)
	put(0x15, DEC, D, NoOperand, 4)
	put(0x16, LD, D, Imm8, 8)
	put(0x17, RLA, NoOperand, NoOperand, 4)
	put(0x18, JR, Imm8Signed, NoOperand, 12)
	put(0x19, ADD, HL, DE, 8)
	put(0x1a, LD, A, IndDE, 8)
	put(0x1b, DEC, DE, NoOperand, 8)
	put(0x1c, INC, E, NoOperand, 4)
	put(0x1d, DEC, E, NoOperand, 4)
	put(0x1e, LD, E, Imm8, 8)
	put(0x1f, RRA, NoOperand, NoOperand, 4)

	branch(0x20, JR, Imm8Signed, CondNZ, 8, 12)
	put(0x21, LD, HL, Imm16, 12)
	put(0x22, LD, IndHLInc, A, 8)
	put(0x23, INC, HL, NoOperand, 8)
	put(0x24, INC, H, NoOperand, 4)
	put(0x25, DEC, H, NoOperand, 4)
	put(0x26, LD, H, Imm8, 8)
	put(0x27, DAA, NoOperand, NoOperand, 4)
	branch(0x28, JR, Imm8Signed, CondZ, 8, 12)
	put(0x29, ADD, HL, HL, 8)
	put(0x2a, LD, A, IndHLInc, 8)
	put(0x2b, DEC, HL, NoOperand, 8)
	put(0x2c, INC, L, NoOperand, 4)
	put(0x2d, DEC, L, NoOperand, 4)
	put(0x2e, LD, L, Imm8, 8)
	put(0x2f, CPL, NoOperand, NoOperand, 4)

	branch(0x30, JR, Imm8Signed, CondNC, 8, 12)
	put(0x31, LD, SP, Imm16, 12)
	put(0x32, LD, IndHLDec, A, 8)
	put(0x33, INC, SP, NoOperand, 8)
	put(0x34, INC, IndHL, NoOperand, 12)
	put(0x35, DEC, IndHL, NoOperand, 12)
	put(0x36, LD, IndHL, Imm8, 12)
	put(0x37, SCF, NoOperand, NoOperand, 4)
	branch(0x38, JR, Imm8Signed, CondC, 8, 12)
	put(0x39, ADD, HL, SP, 8)
	put(0x3a, LD, A, IndHLDec, 8)
	put(0x3b, DEC, SP, NoOperand, 8)
	put(0x3c, INC, A, NoOperand, 4)
	put(0x3d, DEC, A, NoOperand, 4)
	put(0x3e, LD, A, Imm8, 8)
	put(0x3f, CCF, NoOperand, NoOperand, 4)

	// 0x40 to 0x7f is the register to register load block, with HALT in the
	// slot that would be LD (HL),(HL)
	for opcode := 0x40; opcode <= 0x7f; opcode++ {
		if opcode == 0x76 {
			put(0x76, HALT, NoOperand, NoOperand, 4)
			continue
		}
		dst := regSelect[(opcode>>3)&0x07]
		src := regSelect[opcode&0x07]
		cycles := 4
		if dst == IndHL || src == IndHL {
			cycles = 8
		}
		put(uint8(opcode), LD, dst, src, cycles)
	}

	// 0x80 to 0xbf is the ALU block
	for opcode := 0x80; opcode <= 0xbf; opcode++ {
		src := regSelect[opcode&0x07]
		cycles := 4
		if src == IndHL {
			cycles = 8
		}
		put(uint8(opcode), aluSelect[(opcode>>3)&0x07], A, src, cycles)
	}

	// 0xc0 to 0xff
	branch(0xc0, RET, NoOperand, CondNZ, 8, 20)
	put(0xc1, POP, BC, NoOperand, 12)
	branch(0xc2, JP, Imm16, CondNZ, 12, 16)
	put(0xc3, JP, Imm16, NoOperand, 16)
	branch(0xc4, CALL, Imm16, CondNZ, 12, 24)
	put(0xc5, PUSH, BC, NoOperand, 16)
	put(0xc6, ADD, A, Imm8, 8)
	rst(0xc7, 0x00)
	branch(0xc8, RET, NoOperand, CondZ, 8, 20)
	put(0xc9, RET, NoOperand, NoOperand, 16)
	branch(0xca, JP, Imm16, CondZ, 12, 16)
	// 0xcb is the prefix for the CB page and has no definition of its own
	branch(0xcc, CALL, Imm16, CondZ, 12, 24)
	put(0xcd, CALL, Imm16, NoOperand, 24)
	put(0xce, ADC, A, Imm8, 8)
	rst(0xcf, 0x08)

	branch(0xd0, RET, NoOperand, CondNC, 8, 20)
	put(0xd1, POP, DE, NoOperand, 12)
	branch(0xd2, JP, Imm16, CondNC, 12, 16)
	// 0xd3 unused
	branch(0xd4, CALL, Imm16, CondNC, 12, 24)
	put(0xd5, PUSH, DE, NoOperand, 16)
	put(0xd6, SUB, A, Imm8, 8)
	rst(0xd7, 0x10)
	branch(0xd8, RET, NoOperand, CondC, 8, 20)
	put(0xd9, RETI, NoOperand, NoOperand, 16)
	branch(0xda, JP, Imm16, CondC, 12, 16)
	// 0xdb unused
	branch(0xdc, CALL, Imm16, CondC, 12, 24)
	// 0xdd unused
	put(0xde, SBC, A, Imm8, 8)
	rst(0xdf, 0x18)

	put(0xe0, LD, IndImm8, A, 12)
	put(0xe1, POP, HL, NoOperand, 12)
	put(0xe2, LD, IndC, A, 8)
	// 0xe3, 0xe4 unused
	put(0xe5, PUSH, HL, NoOperand, 16)
	put(0xe6, AND, A, Imm8, 8)
	rst(0xe7, 0x20)
	put(0xe8, ADD, SP, Imm8Signed, 16)
	put(0xe9, JP, HL, NoOperand, 4)
	put(0xea, LD, IndImm16, A, 16)
	// 0xeb, 0xec, 0xed unused
	put(0xee, XOR, A, Imm8, 8)
	rst(0xef, 0x28)

	put(0xf0, LD, A, IndImm8, 12)
	put(0xf1, POP, AF, NoOperand, 12)
	put(0xf2, LD, A, IndC, 8)
	put(0xf3, DI, NoOperand, NoOperand, 4)
	// 0xf4 unused
	put(0xf5, PUSH, AF, NoOperand, 16)
	put(0xf6, OR, A, Imm8, 8)
	rst(0xf7, 0x30)
	put(0xf8, LD, HL, SPOffset, 12)
	put(0xf9, LD, SP, HL, 8)
	put(0xfa, LD, A, IndImm16, 16)
	put(0xfb, EI, NoOperand, NoOperand, 4)
	// 0xfc, 0xfd unused
	put(0xfe, CP, A, Imm8, 8)
	rst(0xff, 0x38)

	return tbl
}

func cbTable() [256]*Definition {
	var tbl [256]*Definition

	for opcode := 0; opcode <= 0xff; opcode++ {
		operand := regSelect[opcode&0x07]
		bit := uint8(opcode>>3) & 0x07

		var op Operator
		switch opcode >> 6 {
		case 0:
			op = shiftSelect[bit]
		case 1:
			op = BIT
		case 2:
			op = RES
		case 3:
			op = SET
		}

		cycles := 8
		if operand == IndHL {
			// BIT only reads memory so the write-back cycles are not spent
			if op == BIT {
				cycles = 12
			} else {
				cycles = 16
			}
		}

		d := &Definition{
			OpCode:   uint8(opcode),
			CBPage:   true,
			Operator: op,
			Dst:      operand,
			Bytes:    2,
			Cycles:   cycles,
		}
		if op == BIT || op == RES || op == SET {
			d.Bit = bit
		}
		tbl[opcode] = d
	}

	return tbl
}
