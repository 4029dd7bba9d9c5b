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

import (
	"fmt"
	"strings"
)

// Operator is the instruction type. One value per mnemonic.
type Operator int

// List of instruction operators. The second group only appears in the CB
// page.
const (
	NOP Operator = iota
	STOP
	HALT
	DI
	EI
	LD
	INC
	DEC
	ADD
	ADC
	SUB
	SBC
	AND
	XOR
	OR
	CP
	RLCA
	RLA
	RRCA
	RRA
	DAA
	CPL
	SCF
	CCF
	JP
	JR
	CALL
	RET
	RETI
	RST
	PUSH
	POP

	RLC
	RRC
	RL
	RR
	SLA
	SRA
	SWAP
	SRL
	BIT
	RES
	SET
)

func (op Operator) String() string {
	switch op {
	case NOP:
		return "NOP"
	case STOP:
		return "STOP"
	case HALT:
		return "HALT"
	case DI:
		return "DI"
	case EI:
		return "EI"
	case LD:
		return "LD"
	case INC:
		return "INC"
	case DEC:
		return "DEC"
	case ADD:
		return "ADD"
	case ADC:
		return "ADC"
	case SUB:
		return "SUB"
	case SBC:
		return "SBC"
	case AND:
		return "AND"
	case XOR:
		return "XOR"
	case OR:
		return "OR"
	case CP:
		return "CP"
	case RLCA:
		return "RLCA"
	case RLA:
		return "RLA"
	case RRCA:
		return "RRCA"
	case RRA:
		return "RRA"
	case DAA:
		return "DAA"
	case CPL:
		return "CPL"
	case SCF:
		return "SCF"
	case CCF:
		return "CCF"
	case JP:
		return "JP"
	case JR:
		return "JR"
	case CALL:
		return "CALL"
	case RET:
		return "RET"
	case RETI:
		return "RETI"
	case RST:
		return "RST"
	case PUSH:
		return "PUSH"
	case POP:
		return "POP"
	case RLC:
		return "RLC"
	case RRC:
		return "RRC"
	case RL:
		return "RL"
	case RR:
		return "RR"
	case SLA:
		return "SLA"
	case SRA:
		return "SRA"
	case SWAP:
		return "SWAP"
	case SRL:
		return "SRL"
	case BIT:
		return "BIT"
	case RES:
		return "RES"
	case SET:
		return "SET"
	}

	return "unknown"
}

// Operand describes where an instruction reads or writes a value.
type Operand int

// List of operands. NoOperand is the zero value; an instruction like NOP has
// NoOperand in both positions.
const (
	NoOperand Operand = iota

	// 8-bit registers.
	A
	B
	C
	D
	E
	H
	L

	// 16-bit register pairs.
	AF
	BC
	DE
	HL
	SP

	// memory addressed by a register pair. IndHLInc and IndHLDec post
	// increment/decrement the pair. IndC addresses the IO page.
	IndBC
	IndDE
	IndHL
	IndHLInc
	IndHLDec
	IndC

	// immediate data following the opcode. Imm8Signed is the relative jump
	// offset and the ADD SP operand.
	Imm8
	Imm8Signed
	Imm16

	// memory addressed by immediate data. IndImm8 addresses the IO page.
	IndImm8
	IndImm16

	// SP plus a signed immediate offset, used only by LD HL,SP+e.
	SPOffset
)

func (o Operand) String() string {
	switch o {
	case A:
		return "A"
	case B:
		return "B"
	case C:
		return "C"
	case D:
		return "D"
	case E:
		return "E"
	case H:
		return "H"
	case L:
		return "L"
	case AF:
		return "AF"
	case BC:
		return "BC"
	case DE:
		return "DE"
	case HL:
		return "HL"
	case SP:
		return "SP"
	case IndBC:
		return "(BC)"
	case IndDE:
		return "(DE)"
	case IndHL:
		return "(HL)"
	case IndHLInc:
		return "(HL+)"
	case IndHLDec:
		return "(HL-)"
	case IndC:
		return "(C)"
	case Imm8:
		return "d8"
	case Imm8Signed:
		return "r8"
	case Imm16:
		return "d16"
	case IndImm8:
		return "(a8)"
	case IndImm16:
		return "(a16)"
	case SPOffset:
		return "SP+r8"
	}

	return ""
}

// Is16Bit returns true if the operand refers to a 16-bit register pair. The
// cpu uses this to select between the 8-bit and 16-bit forms of LD, INC, DEC
// and ADD.
func (o Operand) Is16Bit() bool {
	switch o {
	case AF, BC, DE, HL, SP, Imm16, SPOffset:
		return true
	}
	return false
}

// ImmediateBytes returns the number of bytes of immediate data the operand
// requires after the opcode.
func (o Operand) ImmediateBytes() int {
	switch o {
	case Imm8, Imm8Signed, IndImm8, SPOffset:
		return 1
	case Imm16, IndImm16:
		return 2
	}
	return 0
}

// Condition qualifies the branch instructions. NoCondition means the branch
// is always taken.
type Condition int

// List of branch conditions.
const (
	NoCondition Condition = iota
	CondNZ
	CondZ
	CondNC
	CondC
)

func (c Condition) String() string {
	switch c {
	case CondNZ:
		return "NZ"
	case CondZ:
		return "Z"
	case CondNC:
		return "NC"
	case CondC:
		return "C"
	}

	return ""
}

// Definition defines one instruction in the instruction set.
type Definition struct {
	OpCode   uint8
	CBPage   bool
	Operator Operator

	// operands. by convention Dst is the operand that receives the result.
	// for single operand instructions only Dst is used.
	Dst Operand
	Src Operand

	// branch condition, for JR, JP, CALL and RET.
	Cond Condition

	// bit number for BIT, RES and SET. target address for RST.
	Bit uint8

	// length of the instruction including the opcode (and the CB prefix).
	Bytes int

	// duration in cycles. CyclesBranched is the duration when a conditional
	// branch is taken; zero for every other instruction.
	Cycles         int
	CyclesBranched int
}

// Mnemonic returns the assembly form of the instruction.
func (defn Definition) Mnemonic() string {
	s := strings.Builder{}
	s.WriteString(defn.Operator.String())

	switch defn.Operator {
	case RST:
		s.WriteString(fmt.Sprintf(" %02XH", defn.Bit))
		return s.String()
	case BIT, RES, SET:
		s.WriteString(fmt.Sprintf(" %d,%s", defn.Bit, defn.Dst.String()))
		return s.String()
	}

	args := make([]string, 0, 2)
	if defn.Cond != NoCondition {
		args = append(args, defn.Cond.String())
	}
	if defn.Dst != NoOperand {
		args = append(args, defn.Dst.String())
	}
	if defn.Src != NoOperand {
		args = append(args, defn.Src.String())
	}

	if len(args) > 0 {
		s.WriteString(" ")
		s.WriteString(strings.Join(args, ","))
	}

	return s.String()
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	page := ""
	if defn.CBPage {
		page = "cb "
	}
	return fmt.Sprintf("%s%02x %s +%dbytes (%d cycles)", page, defn.OpCode, defn.Mnemonic(), defn.Bytes, defn.Cycles)
}
