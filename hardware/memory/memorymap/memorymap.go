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

// Package memorymap describes the partitioning of the 16-bit address space of
// the DMG. Unlike many other machines of the era there is no mirroring or
// partial decoding to worry about; every address belongs to exactly one area.
// The one wrinkle is echo RAM, which shadows work RAM. MapAddress() folds an
// echo address onto the work RAM area so that the rest of the emulation never
// has to think about it.
package memorymap

// Area represents the different areas of the address space.
type Area int

// The different areas of the address space. Every address maps to exactly one
// of these.
const (
	Undefined Area = iota
	Cartridge
	VRAM
	CartRAM
	WRAM
	EchoRAM
	OAM
	Unusable
	IO
	HRAM
	InterruptEnable
)

func (a Area) String() string {
	switch a {
	case Cartridge:
		return "Cartridge"
	case VRAM:
		return "VRAM"
	case CartRAM:
		return "CartRAM"
	case WRAM:
		return "WRAM"
	case EchoRAM:
		return "EchoRAM"
	case OAM:
		return "OAM"
	case Unusable:
		return "Unusable"
	case IO:
		return "IO"
	case HRAM:
		return "HRAM"
	case InterruptEnable:
		return "InterruptEnable"
	}

	return "undefined"
}

// The origin and memtop addresses of each area.
const (
	OriginCart     uint16 = 0x0000
	MemtopCart     uint16 = 0x7fff
	OriginVRAM     uint16 = 0x8000
	MemtopVRAM     uint16 = 0x9fff
	OriginCartRAM  uint16 = 0xa000
	MemtopCartRAM  uint16 = 0xbfff
	OriginWRAM     uint16 = 0xc000
	MemtopWRAM     uint16 = 0xdfff
	OriginEchoRAM  uint16 = 0xe000
	MemtopEchoRAM  uint16 = 0xfdff
	OriginOAM      uint16 = 0xfe00
	MemtopOAM      uint16 = 0xfe9f
	OriginUnusable uint16 = 0xfea0
	MemtopUnusable uint16 = 0xfeff
	OriginIO       uint16 = 0xff00
	MemtopIO       uint16 = 0xff7f
	OriginHRAM     uint16 = 0xff80
	MemtopHRAM     uint16 = 0xfffe
	AddrIntrEnable uint16 = 0xffff
)

// Other memory landmarks. The boot ROM shadows the bottom of the cartridge
// area until it is switched out; the cartridge header sits immediately after
// the reset vector space.
const (
	MemtopBoot       uint16 = 0x00ff
	OriginHeader     uint16 = 0x0100
	MemtopHeader     uint16 = 0x014f
	OriginCartBanked uint16 = 0x4000
)

// MapAddress returns the area an address refers to and the normalised form of
// the address: the offset of the address from the start of the area. Echo RAM
// is folded onto WRAM, so a mapped EchoRAM address is returned as area WRAM
// with the equivalent WRAM offset.
func MapAddress(address uint16) (uint16, Area) {
	switch {
	case address <= MemtopCart:
		return address, Cartridge
	case address <= MemtopVRAM:
		return address - OriginVRAM, VRAM
	case address <= MemtopCartRAM:
		return address - OriginCartRAM, CartRAM
	case address <= MemtopWRAM:
		return address - OriginWRAM, WRAM
	case address <= MemtopEchoRAM:
		return address - OriginEchoRAM, WRAM
	case address <= MemtopOAM:
		return address - OriginOAM, OAM
	case address <= MemtopUnusable:
		return address - OriginUnusable, Unusable
	case address <= MemtopIO:
		return address - OriginIO, IO
	case address <= MemtopHRAM:
		return address - OriginHRAM, HRAM
	}

	return 0, InterruptEnable
}
