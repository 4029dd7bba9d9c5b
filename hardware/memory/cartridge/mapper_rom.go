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

package cartridge

import (
	"github.com/jetsetilly/gopherdmg/curated"
)

// romOnly implements the flat 32k cartridge with no bank controller at all.
// Type bytes 0x08 and 0x09 add a RAM chip but no banking.
type romOnly struct {
	data []byte
	ram  []uint8
}

func newROMOnly(data []byte, hdr Header) (*romOnly, error) {
	if len(data) < hdr.ROMSize {
		return nil, curated.Errorf(MalformedImage, "image smaller than declared ROM size")
	}

	return &romOnly{
		data: data,
		ram:  make([]uint8, hdr.RAMSize),
	}, nil
}

func (m *romOnly) ID() string {
	return "ROM"
}

func (m *romOnly) Read(address uint16) uint8 {
	if int(address) >= len(m.data) {
		return 0xff
	}
	return m.data[address]
}

func (m *romOnly) Write(address uint16, data uint8) {
	// no registers to write to
}

func (m *romOnly) ReadRAM(offset uint16) uint8 {
	if int(offset) >= len(m.ram) {
		return 0xff
	}
	return m.ram[offset]
}

func (m *romOnly) WriteRAM(offset uint16, data uint8) {
	if int(offset) >= len(m.ram) {
		return
	}
	m.ram[offset] = data
}

func (m *romOnly) CurrentBank() int {
	return 1
}
