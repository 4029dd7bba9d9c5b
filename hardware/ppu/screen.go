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

// Dimensions of the visible screen.
const (
	ClksScanline     = 456
	ScanlinesVisible = 144
	ScanlinesTotal   = 154
	HorizPixels      = 160
)

// Framebuffer is one complete frame of the display. Each element is a shade
// between 0 (lightest) and 3 (darkest), after mapping through the background
// palette register.
type Framebuffer [ScanlinesVisible * HorizPixels]uint8

// At returns the shade at the coordinates.
func (fb *Framebuffer) At(x, y int) uint8 {
	return fb[y*HorizPixels+x]
}

// Renderer implementations consume frames as the emulation produces them.
//
// For an interactive emulation the renderer would be the display window; in
// a test it can be anything that wants to inspect the picture. NewFrame is
// called at the moment the PPU enters the vertical blank, with a copy of the
// framebuffer; the renderer is free to keep it.
type Renderer interface {
	NewFrame(frame Framebuffer)
}
