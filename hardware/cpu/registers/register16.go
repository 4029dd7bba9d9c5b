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
	"fmt"
)

// Register16 is one of the 16-bit registers of the CPU: the stack pointer and
// the program counter.
type Register16 struct {
	label string
	value uint16
}

// NewRegister16 is the preferred method of initialisation for the Register16
// type.
func NewRegister16(val uint16, label string) Register16 {
	return Register16{
		value: val,
		label: label,
	}
}

func (r Register16) String() string {
	return fmt.Sprintf("%s=%#04x", r.label, r.value)
}

// Label returns the canonical name of the register.
func (r Register16) Label() string {
	return r.label
}

// Address returns the current value of the register. The name reflects how
// the value is almost always used.
func (r Register16) Address() uint16 {
	return r.value
}

// Load value into register.
func (r *Register16) Load(val uint16) {
	r.value = val
}

// Add value to the register. The value is signed so this also serves for the
// relative jump offset and the signed stack pointer arithmetic.
func (r *Register16) Add(delta int) {
	r.value = uint16(int(r.value) + delta)
}
