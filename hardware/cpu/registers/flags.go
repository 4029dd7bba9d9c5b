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

package registers

import (
	"strings"
)

// Flags is the special purpose register that stores the flags of the CPU.
type Flags struct {
	Zero      bool
	Subtract  bool
	HalfCarry bool
	Carry     bool
}

// NewFlags is the preferred method of initialisation for the flags register.
func NewFlags() Flags {
	return Flags{}
}

// Label returns the canonical name for the flags register.
func (f Flags) Label() string {
	return "F"
}

func (f Flags) String() string {
	s := strings.Builder{}

	if f.Zero {
		s.WriteRune('Z')
	} else {
		s.WriteRune('z')
	}
	if f.Subtract {
		s.WriteRune('N')
	} else {
		s.WriteRune('n')
	}
	if f.HalfCarry {
		s.WriteRune('H')
	} else {
		s.WriteRune('h')
	}
	if f.Carry {
		s.WriteRune('C')
	} else {
		s.WriteRune('c')
	}

	return s.String()
}

// Reset flags to initial state.
func (f *Flags) Reset() {
	f.Load(0)
}

// Value converts the Flags struct into a value suitable for pushing onto the
// stack. The lower nibble is always zero.
func (f Flags) Value() uint8 {
	var v uint8

	if f.Zero {
		v |= 0x80
	}
	if f.Subtract {
		v |= 0x40
	}
	if f.HalfCarry {
		v |= 0x20
	}
	if f.Carry {
		v |= 0x10
	}

	return v
}

// Load converts an 8 bit integer (taken from the stack, for example) to the
// Flags struct receiver. The lower nibble of the value is discarded; those
// bits do not exist in the hardware register.
func (f *Flags) Load(v uint8) {
	f.Zero = v&0x80 == 0x80
	f.Subtract = v&0x40 == 0x40
	f.HalfCarry = v&0x20 == 0x20
	f.Carry = v&0x10 == 0x10
}
