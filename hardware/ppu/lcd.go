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

package ppu

// Mode identifies what the PPU is doing at any given moment. The value is
// what appears in the lower two bits of the STAT register.
type Mode uint8

// The four modes of the PPU. During a visible scanline the PPU moves through
// OAMScan, PixelTransfer and HBlank; VBlank covers the ten scanlines below
// the visible screen.
const (
	HBlank Mode = iota
	VBlank
	OAMScan
	PixelTransfer
)

func (m Mode) String() string {
	switch m {
	case HBlank:
		return "HBlank"
	case VBlank:
		return "VBlank"
	case OAMScan:
		return "OAMScan"
	case PixelTransfer:
		return "PixelTransfer"
	}
	return "unknown"
}

// dot counts within a scanline at which the mode changes. pixel transfer
// length actually varies with scroll and sprite load on real hardware; the
// fixed length used here is the documented minimum
const (
	clksOAMScan       = 80
	clksPixelTransfer = 172
	clksTransferEnd   = clksOAMScan + clksPixelTransfer
)

// bits of the LCDC register.
const (
	lcdcEnable    = 0x80
	lcdcBGTileMap = 0x08
	lcdcTileData  = 0x10
	lcdcBGEnable  = 0x01
)

// bits of the STAT register. the lower three bits are read-only status, the
// upper four enable the different STAT interrupt conditions.
const (
	statCoincidence     = 0x04
	statIntrHBlank      = 0x08
	statIntrVBlank      = 0x10
	statIntrOAMScan     = 0x20
	statIntrCoincidence = 0x40
)

// Enabled returns true if the LCD is switched on.
func (ppu *PPU) Enabled() bool {
	return ppu.lcdc&lcdcEnable == lcdcEnable
}

// bgTileMapOrigin returns the VRAM offset of the background tile map
// selected by LCDC.
func (ppu *PPU) bgTileMapOrigin() uint16 {
	if ppu.lcdc&lcdcBGTileMap == lcdcBGTileMap {
		return 0x1c00
	}
	return 0x1800
}

// tileRowAddress returns the VRAM offset of a row of tile pixel data. In the
// unsigned addressing mode tiles count up from the start of VRAM; in the
// signed mode the tile number is an offset around 0x1000.
func (ppu *PPU) tileRowAddress(tile uint8, row uint16) uint16 {
	if ppu.lcdc&lcdcTileData == lcdcTileData {
		return uint16(tile)*16 + row*2
	}
	return uint16(0x1000+int(int8(tile))*16) + row*2
}
