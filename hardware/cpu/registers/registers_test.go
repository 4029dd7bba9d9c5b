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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/gopherdmg/hardware/cpu/registers"
	"github.com/jetsetilly/gopherdmg/test"
)

func TestRegister(t *testing.T) {
	r := registers.NewRegister(0, "A")
	test.ExpectedSuccess(t, r.IsZero())
	test.Equate(t, r.Label(), "A")

	r.Load(0xff)
	test.Equate(t, r.Value(), 0xff)
	test.ExpectedFailure(t, r.IsZero())
	test.Equate(t, r.String(), "A=0xff")
}

func TestRegister16(t *testing.T) {
	sp := registers.NewRegister16(0xfffe, "SP")
	test.Equate(t, sp.Address(), 0xfffe)

	// signed arithmetic in both directions
	sp.Add(-2)
	test.Equate(t, sp.Address(), 0xfffc)
	sp.Add(4)
	test.Equate(t, sp.Address(), 0x0000)

	// wrap around
	pc := registers.NewRegister16(0xffff, "PC")
	pc.Add(1)
	test.Equate(t, pc.Address(), 0x0000)
}

func TestFlags(t *testing.T) {
	f := registers.NewFlags()
	test.Equate(t, f.Value(), 0x00)
	test.Equate(t, f.String(), "znhc")

	f.Zero = true
	f.Carry = true
	test.Equate(t, f.Value(), 0x90)
	test.Equate(t, f.String(), "ZnhC")

	// lower nibble of the loaded value is discarded
	f.Load(0xff)
	test.Equate(t, f.Value(), 0xf0)
	test.Equate(t, f.String(), "ZNHC")

	f.Load(0x0f)
	test.Equate(t, f.Value(), 0x00)
}
