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

// Package addresses names the hardware registers of the DMG. These are the
// addresses in the IO page (0xff00 to 0xff7f) plus the interrupt enable
// register at the very top of the address space.
//
// The names are the conventional ones from the hardware documentation. We
// prefer these to descriptive names because they are what appears in every
// datasheet, disassembly and test ROM.
package addresses

// Addresses of the hardware registers in the IO page.
const (
	JOYP uint16 = 0xff00 // joypad matrix select/read
	SB   uint16 = 0xff01 // serial transfer data
	SC   uint16 = 0xff02 // serial transfer control
	DIV  uint16 = 0xff04 // divider register
	TIMA uint16 = 0xff05 // timer counter
	TMA  uint16 = 0xff06 // timer modulo
	TAC  uint16 = 0xff07 // timer control
	IF   uint16 = 0xff0f // interrupt request flags
	LCDC uint16 = 0xff40 // LCD control
	STAT uint16 = 0xff41 // LCD status
	SCY  uint16 = 0xff42 // background scroll Y
	SCX  uint16 = 0xff43 // background scroll X
	LY   uint16 = 0xff44 // current scanline
	LYC  uint16 = 0xff45 // scanline compare
	DMA  uint16 = 0xff46 // OAM DMA source page
	BGP  uint16 = 0xff47 // background palette
	OBP0 uint16 = 0xff48 // object palette 0
	OBP1 uint16 = 0xff49 // object palette 1
	WY   uint16 = 0xff4a // window Y position
	WX   uint16 = 0xff4b // window X position
	BOOT uint16 = 0xff50 // boot ROM disable
	IE   uint16 = 0xffff // interrupt enable flags
)

// Reset vectors and interrupt vectors.
const (
	// execution begins here once the boot sequence has completed.
	ResetPC uint16 = 0x0100

	// interrupt service vectors in priority order.
	VectorVBlank  uint16 = 0x0040
	VectorLCDStat uint16 = 0x0048
	VectorTimer   uint16 = 0x0050
	VectorSerial  uint16 = 0x0058
	VectorJoypad  uint16 = 0x0060
)
