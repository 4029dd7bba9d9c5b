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

package cpu

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopherdmg/curated"
	"github.com/jetsetilly/gopherdmg/hardware/cpu/execution"
	"github.com/jetsetilly/gopherdmg/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherdmg/hardware/cpu/registers"
	"github.com/jetsetilly/gopherdmg/hardware/interrupts"
)

// error patterns raised by this package.
const (
	// the program reached one of the eleven unused encodings. on real
	// hardware this locks the CPU so there is no sensible way to continue
	UnsupportedOpCode = "cpu: illegal opcode (%#02x) at %#04x"
)

// duration of the interrupt dispatch sequence: five machine cycles.
const interruptCycles = 20

// Memory defines the memory operations required by the CPU.
type Memory interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

// CPU implements the SM83 core.
type CPU struct {
	PC registers.Register16
	SP registers.Register16
	A  registers.Register
	B  registers.Register
	C  registers.Register
	D  registers.Register
	E  registers.Register
	H  registers.Register
	L  registers.Register
	F  registers.Flags

	mem Memory
	irq *interrupts.Interrupts

	// the master interrupt enable. not addressable, only DI/EI/RETI and the
	// dispatch sequence itself touch it
	ime bool

	// the CPU is waiting for an interrupt
	halted bool

	// executing HALT with interrupts disabled while one is already pending
	// causes the fetch after the HALT to not advance the PC. the flag
	// records that the bug has been armed
	haltBug bool

	// branch outcome of the instruction currently executing
	branchTaken bool

	// LastResult records the outcome of the last instruction executed by
	// the CPU
	LastResult execution.Result
}

// NewCPU is the preferred method of initialisation for the CPU structure.
func NewCPU(mem Memory, irq *interrupts.Interrupts) *CPU {
	mc := &CPU{
		mem: mem,
		irq: irq,
	}
	mc.PC = registers.NewRegister16(0, "PC")
	mc.SP = registers.NewRegister16(0, "SP")
	mc.A = registers.NewRegister(0, "A")
	mc.B = registers.NewRegister(0, "B")
	mc.C = registers.NewRegister(0, "C")
	mc.D = registers.NewRegister(0, "D")
	mc.E = registers.NewRegister(0, "E")
	mc.H = registers.NewRegister(0, "H")
	mc.L = registers.NewRegister(0, "L")
	mc.F = registers.NewFlags()
	return mc
}

func (mc *CPU) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s %s ", mc.PC.String(), mc.SP.String()))
	s.WriteString(fmt.Sprintf("%s %s ", mc.A.String(), mc.F.String()))
	s.WriteString(fmt.Sprintf("%s %s %s %s %s %s", mc.B.String(), mc.C.String(), mc.D.String(), mc.E.String(), mc.H.String(), mc.L.String()))
	return s.String()
}

// Reset the CPU to the state at power-on. Registers are cleared; execution
// would normally proceed through the boot ROM from address zero.
func (mc *CPU) Reset() {
	mc.PC.Load(0)
	mc.SP.Load(0)
	mc.A.Load(0)
	mc.B.Load(0)
	mc.C.Load(0)
	mc.D.Load(0)
	mc.E.Load(0)
	mc.H.Load(0)
	mc.L.Load(0)
	mc.F.Reset()
	mc.ime = false
	mc.halted = false
	mc.haltBug = false
	mc.LastResult.Reset()
}

// Halted returns true if the CPU is waiting for an interrupt.
func (mc *CPU) Halted() bool {
	return mc.halted
}

// IME returns the state of the master interrupt enable.
func (mc *CPU) IME() bool {
	return mc.ime
}

// register pair access. the pairs have no storage of their own, they are
// views onto the 8-bit registers

func (mc *CPU) bc() uint16 {
	return uint16(mc.B.Value())<<8 | uint16(mc.C.Value())
}

func (mc *CPU) setBC(v uint16) {
	mc.B.Load(uint8(v >> 8))
	mc.C.Load(uint8(v))
}

func (mc *CPU) de() uint16 {
	return uint16(mc.D.Value())<<8 | uint16(mc.E.Value())
}

func (mc *CPU) setDE(v uint16) {
	mc.D.Load(uint8(v >> 8))
	mc.E.Load(uint8(v))
}

func (mc *CPU) hl() uint16 {
	return uint16(mc.H.Value())<<8 | uint16(mc.L.Value())
}

func (mc *CPU) setHL(v uint16) {
	mc.H.Load(uint8(v >> 8))
	mc.L.Load(uint8(v))
}

func (mc *CPU) af() uint16 {
	return uint16(mc.A.Value())<<8 | uint16(mc.F.Value())
}

func (mc *CPU) setAF(v uint16) {
	mc.A.Load(uint8(v >> 8))
	mc.F.Load(uint8(v))
}

// fetch returns the byte at the program counter and advances the counter.
// The armed halt bug suppresses the advance exactly once.
func (mc *CPU) fetch() uint8 {
	v := mc.mem.Read(mc.PC.Address())
	if mc.haltBug {
		mc.haltBug = false
	} else {
		mc.PC.Add(1)
	}
	return v
}

// fetch16 returns the 16-bit value at the program counter, low byte first.
func (mc *CPU) fetch16() uint16 {
	lo := uint16(mc.fetch())
	hi := uint16(mc.fetch())
	return hi<<8 | lo
}

func (mc *CPU) push(v uint16) {
	mc.SP.Add(-1)
	mc.mem.Write(mc.SP.Address(), uint8(v>>8))
	mc.SP.Add(-1)
	mc.mem.Write(mc.SP.Address(), uint8(v))
}

func (mc *CPU) pop() uint16 {
	lo := uint16(mc.mem.Read(mc.SP.Address()))
	mc.SP.Add(1)
	hi := uint16(mc.mem.Read(mc.SP.Address()))
	mc.SP.Add(1)
	return hi<<8 | lo
}

// reg8 returns a pointer to the named 8-bit register.
func (mc *CPU) reg8(operand instructions.Operand) *registers.Register {
	switch operand {
	case instructions.A:
		return &mc.A
	case instructions.B:
		return &mc.B
	case instructions.C:
		return &mc.C
	case instructions.D:
		return &mc.D
	case instructions.E:
		return &mc.E
	case instructions.H:
		return &mc.H
	case instructions.L:
		return &mc.L
	}
	return nil
}

// read8 resolves an operand to its 8-bit value, fetching immediate data and
// performing memory reads as required.
func (mc *CPU) read8(operand instructions.Operand) uint8 {
	if r := mc.reg8(operand); r != nil {
		return r.Value()
	}

	switch operand {
	case instructions.IndBC:
		return mc.mem.Read(mc.bc())
	case instructions.IndDE:
		return mc.mem.Read(mc.de())
	case instructions.IndHL:
		return mc.mem.Read(mc.hl())
	case instructions.IndHLInc:
		v := mc.mem.Read(mc.hl())
		mc.setHL(mc.hl() + 1)
		return v
	case instructions.IndHLDec:
		v := mc.mem.Read(mc.hl())
		mc.setHL(mc.hl() - 1)
		return v
	case instructions.IndC:
		return mc.mem.Read(0xff00 + uint16(mc.C.Value()))
	case instructions.Imm8, instructions.Imm8Signed:
		return mc.fetch()
	case instructions.IndImm8:
		return mc.mem.Read(0xff00 + uint16(mc.fetch()))
	case instructions.IndImm16:
		return mc.mem.Read(mc.fetch16())
	}

	return 0
}

// write8 resolves an operand to its 8-bit destination.
func (mc *CPU) write8(operand instructions.Operand, data uint8) {
	if r := mc.reg8(operand); r != nil {
		r.Load(data)
		return
	}

	switch operand {
	case instructions.IndBC:
		mc.mem.Write(mc.bc(), data)
	case instructions.IndDE:
		mc.mem.Write(mc.de(), data)
	case instructions.IndHL:
		mc.mem.Write(mc.hl(), data)
	case instructions.IndHLInc:
		mc.mem.Write(mc.hl(), data)
		mc.setHL(mc.hl() + 1)
	case instructions.IndHLDec:
		mc.mem.Write(mc.hl(), data)
		mc.setHL(mc.hl() - 1)
	case instructions.IndC:
		mc.mem.Write(0xff00+uint16(mc.C.Value()), data)
	case instructions.IndImm8:
		mc.mem.Write(0xff00+uint16(mc.fetch()), data)
	case instructions.IndImm16:
		mc.mem.Write(mc.fetch16(), data)
	}
}

// read16 resolves an operand to its 16-bit value.
func (mc *CPU) read16(operand instructions.Operand) uint16 {
	switch operand {
	case instructions.AF:
		return mc.af()
	case instructions.BC:
		return mc.bc()
	case instructions.DE:
		return mc.de()
	case instructions.HL:
		return mc.hl()
	case instructions.SP:
		return mc.SP.Address()
	case instructions.Imm16:
		return mc.fetch16()
	}
	return 0
}

// write16 resolves an operand to its 16-bit destination.
func (mc *CPU) write16(operand instructions.Operand, data uint16) {
	switch operand {
	case instructions.AF:
		mc.setAF(data)
	case instructions.BC:
		mc.setBC(data)
	case instructions.DE:
		mc.setDE(data)
	case instructions.HL:
		mc.setHL(data)
	case instructions.SP:
		mc.SP.Load(data)
	case instructions.IndImm16:
		addr := mc.fetch16()
		mc.mem.Write(addr, uint8(data))
		mc.mem.Write(addr+1, uint8(data>>8))
	}
}

// testCond returns true if the branch condition holds.
func (mc *CPU) testCond(cond instructions.Condition) bool {
	switch cond {
	case instructions.CondNZ:
		return !mc.F.Zero
	case instructions.CondZ:
		return mc.F.Zero
	case instructions.CondNC:
		return !mc.F.Carry
	case instructions.CondC:
		return mc.F.Carry
	}
	return true
}

// ExecuteInstruction services at most one pending interrupt and then
// executes the instruction at the program counter, filling the LastResult
// field as it goes. The returned count includes the interrupt dispatch and
// any cycles claimed by an OAM DMA transfer the instruction started.
func (mc *CPU) ExecuteInstruction() (int, error) {
	mc.LastResult.Reset()

	cycles := 0

	// a pending interrupt always ends the halt state, whether or not the
	// master enable allows it to be serviced
	if src, ok := mc.irq.Pending(); ok {
		mc.halted = false
		if mc.ime {
			mc.ime = false
			mc.irq.Acknowledge(src)
			mc.push(mc.PC.Address())
			mc.PC.Load(src.Vector())
			cycles += interruptCycles
			mc.LastResult.Interrupted = true
		}
	}

	if mc.halted {
		// an idle machine cycle
		mc.LastResult.Cycles = 4
		mc.LastResult.Final = true
		return cycles + 4, nil
	}

	mc.branchTaken = false

	opcodeAddr := mc.PC.Address()
	opcode := mc.fetch()

	var defn *instructions.Definition
	if opcode == 0xcb {
		opcode = mc.fetch()
		defn = instructions.CB[opcode]
	} else {
		defn = instructions.Primary[opcode]
	}

	mc.LastResult.Address = opcodeAddr
	mc.LastResult.OpCode = opcode

	if defn == nil {
		return cycles, curated.Errorf(UnsupportedOpCode, opcode, opcodeAddr)
	}

	mc.LastResult.Defn = defn

	if err := mc.execute(defn); err != nil {
		return cycles, err
	}

	if mc.branchTaken {
		cycles += defn.CyclesBranched
	} else {
		cycles += defn.Cycles
	}

	mc.LastResult.Cycles = cycles
	mc.LastResult.BranchTaken = mc.branchTaken
	mc.LastResult.Final = true

	return cycles, nil
}

// execute performs the operation of the decoded instruction.
func (mc *CPU) execute(defn *instructions.Definition) error {
	switch defn.Operator {
	case instructions.NOP:
		// does what it says on the tin

	case instructions.STOP:
		// stopping the oscillator is meaningless without an LCD to watch
		// go dark. treated as a NOP

	case instructions.HALT:
		if !mc.ime && mc.irq.Waiting() {
			// the halt bug. the CPU fails to halt and instead fetches the
			// next opcode without advancing the PC
			mc.haltBug = true
		} else {
			mc.halted = true
		}

	case instructions.DI:
		mc.ime = false

	case instructions.EI:
		mc.ime = true

	case instructions.LD:
		mc.ld(defn)

	case instructions.INC:
		if defn.Dst.Is16Bit() {
			mc.write16(defn.Dst, mc.read16(defn.Dst)+1)
		} else {
			v := mc.read8(defn.Dst) + 1
			mc.write8(defn.Dst, v)
			mc.F.Zero = v == 0
			mc.F.Subtract = false
			mc.F.HalfCarry = v&0x0f == 0x00
		}

	case instructions.DEC:
		if defn.Dst.Is16Bit() {
			mc.write16(defn.Dst, mc.read16(defn.Dst)-1)
		} else {
			v := mc.read8(defn.Dst) - 1
			mc.write8(defn.Dst, v)
			mc.F.Zero = v == 0
			mc.F.Subtract = true
			mc.F.HalfCarry = v&0x0f == 0x0f
		}

	case instructions.ADD:
		switch {
		case defn.Dst == instructions.SP:
			mc.addSP()
		case defn.Src.Is16Bit():
			mc.addHL(mc.read16(defn.Src))
		default:
			mc.add(mc.read8(defn.Src), false)
		}

	case instructions.ADC:
		mc.add(mc.read8(defn.Src), mc.F.Carry)

	case instructions.SUB:
		mc.sub(mc.read8(defn.Src), false)

	case instructions.SBC:
		mc.sub(mc.read8(defn.Src), mc.F.Carry)

	case instructions.AND:
		v := mc.A.Value() & mc.read8(defn.Src)
		mc.A.Load(v)
		mc.F.Zero = v == 0
		mc.F.Subtract = false
		mc.F.HalfCarry = true
		mc.F.Carry = false

	case instructions.XOR:
		v := mc.A.Value() ^ mc.read8(defn.Src)
		mc.A.Load(v)
		mc.F.Zero = v == 0
		mc.F.Subtract = false
		mc.F.HalfCarry = false
		mc.F.Carry = false

	case instructions.OR:
		v := mc.A.Value() | mc.read8(defn.Src)
		mc.A.Load(v)
		mc.F.Zero = v == 0
		mc.F.Subtract = false
		mc.F.HalfCarry = false
		mc.F.Carry = false

	case instructions.CP:
		a := mc.A.Value()
		v := mc.read8(defn.Src)
		mc.F.Zero = a == v
		mc.F.Subtract = true
		mc.F.HalfCarry = a&0x0f < v&0x0f
		mc.F.Carry = a < v

	case instructions.RLCA:
		mc.A.Load(mc.rlc(mc.A.Value()))
		mc.F.Zero = false

	case instructions.RLA:
		mc.A.Load(mc.rl(mc.A.Value()))
		mc.F.Zero = false

	case instructions.RRCA:
		mc.A.Load(mc.rrc(mc.A.Value()))
		mc.F.Zero = false

	case instructions.RRA:
		mc.A.Load(mc.rr(mc.A.Value()))
		mc.F.Zero = false

	case instructions.DAA:
		mc.daa()

	case instructions.CPL:
		mc.A.Load(^mc.A.Value())
		mc.F.Subtract = true
		mc.F.HalfCarry = true

	case instructions.SCF:
		mc.F.Subtract = false
		mc.F.HalfCarry = false
		mc.F.Carry = true

	case instructions.CCF:
		mc.F.Subtract = false
		mc.F.HalfCarry = false
		mc.F.Carry = !mc.F.Carry

	case instructions.JP:
		if defn.Dst == instructions.HL {
			// despite the (HL) notation in some documentation this is a
			// plain register load, not an indirection
			mc.PC.Load(mc.hl())
		} else {
			addr := mc.fetch16()
			if mc.testCond(defn.Cond) {
				mc.PC.Load(addr)
				mc.branchTaken = defn.Cond != instructions.NoCondition
			}
		}

	case instructions.JR:
		offset := int(int8(mc.fetch()))
		if mc.testCond(defn.Cond) {
			mc.PC.Add(offset)
			mc.branchTaken = defn.Cond != instructions.NoCondition
		}

	case instructions.CALL:
		addr := mc.fetch16()
		if mc.testCond(defn.Cond) {
			mc.push(mc.PC.Address())
			mc.PC.Load(addr)
			mc.branchTaken = defn.Cond != instructions.NoCondition
		}

	case instructions.RET:
		if mc.testCond(defn.Cond) {
			mc.PC.Load(mc.pop())
			mc.branchTaken = defn.Cond != instructions.NoCondition
		}

	case instructions.RETI:
		mc.PC.Load(mc.pop())
		mc.ime = true

	case instructions.RST:
		mc.push(mc.PC.Address())
		mc.PC.Load(uint16(defn.Bit))

	case instructions.PUSH:
		mc.push(mc.read16(defn.Dst))

	case instructions.POP:
		mc.write16(defn.Dst, mc.pop())

	case instructions.RLC, instructions.RRC, instructions.RL, instructions.RR,
		instructions.SLA, instructions.SRA, instructions.SWAP, instructions.SRL:
		v := mc.read8(defn.Dst)
		var r uint8
		switch defn.Operator {
		case instructions.RLC:
			r = mc.rlc(v)
		case instructions.RRC:
			r = mc.rrc(v)
		case instructions.RL:
			r = mc.rl(v)
		case instructions.RR:
			r = mc.rr(v)
		case instructions.SLA:
			r = v << 1
			mc.setShiftFlags(r, v&0x80 == 0x80)
		case instructions.SRA:
			r = v>>1 | v&0x80
			mc.setShiftFlags(r, v&0x01 == 0x01)
		case instructions.SWAP:
			r = v<<4 | v>>4
			mc.setShiftFlags(r, false)
		case instructions.SRL:
			r = v >> 1
			mc.setShiftFlags(r, v&0x01 == 0x01)
		}
		mc.write8(defn.Dst, r)

	case instructions.BIT:
		v := mc.read8(defn.Dst)
		mc.F.Zero = v&(1<<defn.Bit) == 0
		mc.F.Subtract = false
		mc.F.HalfCarry = true

	case instructions.RES:
		mc.write8(defn.Dst, mc.read8(defn.Dst)&^(1<<defn.Bit))

	case instructions.SET:
		mc.write8(defn.Dst, mc.read8(defn.Dst)|1<<defn.Bit)

	default:
		return curated.Errorf("cpu: unimplemented operator (%s)", defn.Operator.String())
	}

	return nil
}

// ld handles every form of the LD instruction: 8-bit, 16-bit, and the two
// oddities involving the stack pointer.
func (mc *CPU) ld(defn *instructions.Definition) {
	if defn.Src == instructions.SPOffset {
		// LD HL,SP+e. the only load that touches the flags
		mc.setHL(mc.offsetSP())
		return
	}

	if defn.Src.Is16Bit() {
		// covers the register pair loads, LD SP,HL and LD (a16),SP
		mc.write16(defn.Dst, mc.read16(defn.Src))
		return
	}

	mc.write8(defn.Dst, mc.read8(defn.Src))
}

// add implements ADD and (with the carry argument) ADC.
func (mc *CPU) add(v uint8, carry bool) {
	a := mc.A.Value()
	c := uint8(0)
	if carry {
		c = 1
	}

	r := uint16(a) + uint16(v) + uint16(c)
	mc.A.Load(uint8(r))

	mc.F.Zero = uint8(r) == 0
	mc.F.Subtract = false
	mc.F.HalfCarry = a&0x0f+v&0x0f+c > 0x0f
	mc.F.Carry = r > 0xff
}

// sub implements SUB and (with the carry argument) SBC.
func (mc *CPU) sub(v uint8, carry bool) {
	a := mc.A.Value()
	c := uint8(0)
	if carry {
		c = 1
	}

	mc.A.Load(a - v - c)

	mc.F.Zero = mc.A.Value() == 0
	mc.F.Subtract = true
	mc.F.HalfCarry = uint16(a&0x0f) < uint16(v&0x0f)+uint16(c)
	mc.F.Carry = uint16(a) < uint16(v)+uint16(c)
}

// addHL implements the 16-bit ADD HL,rr group. The zero flag is untouched.
func (mc *CPU) addHL(v uint16) {
	hl := mc.hl()
	r := uint32(hl) + uint32(v)
	mc.setHL(uint16(r))

	mc.F.Subtract = false
	mc.F.HalfCarry = hl&0x0fff+v&0x0fff > 0x0fff
	mc.F.Carry = r > 0xffff
}

// offsetSP fetches the signed offset and returns SP plus the offset, setting
// the flags as both ADD SP,e and LD HL,SP+e require. The carries are those
// of the low byte addition.
func (mc *CPU) offsetSP() uint16 {
	offset := int(int8(mc.fetch()))
	sp := mc.SP.Address()
	r := uint16(int(sp) + offset)

	x := sp ^ uint16(offset) ^ r
	mc.F.Zero = false
	mc.F.Subtract = false
	mc.F.HalfCarry = x&0x10 == 0x10
	mc.F.Carry = x&0x100 == 0x100

	return r
}

// addSP implements ADD SP,e.
func (mc *CPU) addSP() {
	mc.SP.Load(mc.offsetSP())
}

// daa adjusts the accumulator after BCD arithmetic. The adjustment depends
// on whether the last operation was a subtraction and which carries it
// produced.
func (mc *CPU) daa() {
	a := mc.A.Value()
	carry := false

	if !mc.F.Subtract {
		if mc.F.Carry || a > 0x99 {
			a += 0x60
			carry = true
		}
		if mc.F.HalfCarry || a&0x0f > 0x09 {
			a += 0x06
		}
	} else if mc.F.Carry {
		carry = true
		if mc.F.HalfCarry {
			a += 0x9a
		} else {
			a += 0xa0
		}
	} else if mc.F.HalfCarry {
		a += 0xfa
	}

	mc.A.Load(a)
	mc.F.Zero = a == 0
	mc.F.HalfCarry = false
	mc.F.Carry = carry
}

// the rotate helpers are shared between the CB page and the RLCA group of
// accumulator instructions. the accumulator forms clear the zero flag after
// the fact.

func (mc *CPU) setShiftFlags(r uint8, carry bool) {
	mc.F.Zero = r == 0
	mc.F.Subtract = false
	mc.F.HalfCarry = false
	mc.F.Carry = carry
}

func (mc *CPU) rlc(v uint8) uint8 {
	carry := v&0x80 == 0x80
	r := v << 1
	if carry {
		r |= 0x01
	}
	mc.setShiftFlags(r, carry)
	return r
}

func (mc *CPU) rrc(v uint8) uint8 {
	carry := v&0x01 == 0x01
	r := v >> 1
	if carry {
		r |= 0x80
	}
	mc.setShiftFlags(r, carry)
	return r
}

func (mc *CPU) rl(v uint8) uint8 {
	carry := v&0x80 == 0x80
	r := v << 1
	if mc.F.Carry {
		r |= 0x01
	}
	mc.setShiftFlags(r, carry)
	return r
}

func (mc *CPU) rr(v uint8) uint8 {
	carry := v&0x01 == 0x01
	r := v >> 1
	if mc.F.Carry {
		r |= 0x80
	}
	mc.setShiftFlags(r, carry)
	return r
}
