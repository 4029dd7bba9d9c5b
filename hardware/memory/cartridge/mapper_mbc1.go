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
	"github.com/jetsetilly/gopherdmg/hardware/memory/memorymap"
)

// mbc1 implements the most common bank controller. Four registers, each
// selected by the address of the write:
//
//	0x0000-0x1fff  RAM enable. RAM is enabled when the lower nibble is 0x0a
//	0x2000-0x3fff  lower 5 bits of the ROM bank number
//	0x4000-0x5fff  2-bit secondary register: upper ROM bank bits or RAM bank
//	0x6000-0x7fff  banking mode
type mbc1 struct {
	data []byte
	ram  []uint8

	numBanks int

	// the registers as last written
	ramEnable bool
	bankLo    uint8 // 5 bits
	bankHi    uint8 // 2 bits
	mode      uint8 // 1 bit
}

func newMBC1(data []byte, hdr Header) (*mbc1, error) {
	if len(data) < hdr.ROMSize {
		return nil, curated.Errorf(MalformedImage, "image smaller than declared ROM size")
	}

	return &mbc1{
		data:     data,
		ram:      make([]uint8, hdr.RAMSize),
		numBanks: hdr.NumROMBanks(),
		bankLo:   0x01,
	}, nil
}

func (m *mbc1) ID() string {
	return "MBC1"
}

// CurrentBank returns the bank visible in the switchable area. The 5-bit
// register never contributes zero, the controller bumps it to one, which is
// why banks 0x00, 0x20, 0x40 and 0x60 can never appear here. The result is
// reduced modulo the number of banks in the image, mirroring how the unused
// upper address lines are simply not connected on smaller ROM chips.
func (m *mbc1) CurrentBank() int {
	bank := int(m.bankHi)<<5 | int(m.bankLo)
	return bank % m.numBanks
}

func (m *mbc1) Read(address uint16) uint8 {
	var idx int

	if address < memorymap.OriginCartBanked {
		// in mode 1 the secondary register also affects the fixed area
		if m.mode == 0x01 {
			idx = ((int(m.bankHi) << 5) % m.numBanks) * bankSize
		}
		idx += int(address)
	} else {
		idx = m.CurrentBank()*bankSize + int(address-memorymap.OriginCartBanked)
	}

	if idx >= len(m.data) {
		return 0xff
	}
	return m.data[idx]
}

func (m *mbc1) Write(address uint16, data uint8) {
	switch address >> 13 {
	case 0x00:
		m.ramEnable = data&0x0f == 0x0a
	case 0x01:
		m.bankLo = data & 0x1f
		if m.bankLo == 0x00 {
			m.bankLo = 0x01
		}
	case 0x02:
		m.bankHi = data & 0x03
	case 0x03:
		m.mode = data & 0x01
	}
}

// ramOffset folds the RAM bank register into the offset. In mode 0 the
// secondary register is ignored and RAM accesses always hit bank zero.
func (m *mbc1) ramOffset(offset uint16) int {
	if m.mode == 0x01 {
		return int(m.bankHi)*0x2000 + int(offset)
	}
	return int(offset)
}

func (m *mbc1) ReadRAM(offset uint16) uint8 {
	if !m.ramEnable {
		return 0xff
	}
	idx := m.ramOffset(offset)
	if idx >= len(m.ram) {
		return 0xff
	}
	return m.ram[idx]
}

func (m *mbc1) WriteRAM(offset uint16, data uint8) {
	if !m.ramEnable {
		return
	}
	idx := m.ramOffset(offset)
	if idx >= len(m.ram) {
		return
	}
	m.ram[idx] = data
}
