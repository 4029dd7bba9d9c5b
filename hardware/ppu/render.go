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

// renderScanline draws the background layer for the current scanline into
// the framebuffer. Called once per scanline, at the moment the pixel
// transfer completes.
//
// The background is a 256 by 256 pixel plane assembled from 8 by 8 tiles,
// wrapping at the edges. The scroll registers place the screen within the
// plane. A tile row is two bytes: the low byte holds the low bit of each
// pixel, the high byte the high bit, most significant bit leftmost.
func (ppu *PPU) renderScanline() {
	if ppu.lcdc&lcdcBGEnable == 0 {
		// a disabled background renders as shade zero
		base := int(ppu.ly) * HorizPixels
		for x := 0; x < HorizPixels; x++ {
			ppu.frame[base+x] = 0
		}
		return
	}

	mapOrigin := ppu.bgTileMapOrigin()
	y := uint16(ppu.ly+ppu.scy) & 0xff
	tileRow := y >> 3
	pixelRow := y & 0x07

	base := int(ppu.ly) * HorizPixels
	for x := 0; x < HorizPixels; x++ {
		bx := uint16(uint8(x)+ppu.scx) & 0xff
		tileCol := bx >> 3

		tile := ppu.vram[mapOrigin+tileRow*32+tileCol]
		rowAddr := ppu.tileRowAddress(tile, pixelRow)
		lo := ppu.vram[rowAddr]
		hi := ppu.vram[rowAddr+1]

		bit := 7 - (bx & 0x07)
		colour := (lo>>bit)&0x01 | ((hi>>bit)&0x01)<<1

		// map through the background palette
		shade := (ppu.bgp >> (colour * 2)) & 0x03

		ppu.frame[base+x] = shade
	}
}
