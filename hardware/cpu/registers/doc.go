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

// Package registers implements the registers of the SM83 core: the seven
// 8-bit general purpose registers, the flags register, and the two 16-bit
// registers (the stack pointer and the program counter).
//
// The general purpose registers pair up as BC, DE and HL for 16-bit
// operations. The pairing is handled by the cpu package which owns both
// halves; this package just provides the pieces.
//
// The flags register is represented as individual bool fields, in the manner
// of a status register, with Value() and Load() converting to and from the
// packed 8-bit form used by PUSH AF and POP AF. The lower nibble of the
// packed form is always zero.
package registers
