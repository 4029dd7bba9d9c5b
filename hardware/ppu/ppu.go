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

// Package ppu implements the picture processing unit of the DMG.
//
// The PPU walks every scanline through the same sequence of modes: an OAM
// scan, the pixel transfer, and the horizontal blank. Below the visible
// screen are ten scanlines of vertical blank. One scanline is 456 cycles and
// a complete frame is 154 scanlines; the PPU consumes cycles one per dot so
// the mode and scanline counters here move in lockstep with the CPU.
//
// The PPU owns video RAM and the sprite attribute table and arbitrates CPU
// access to them. During pixel transfer the video RAM belongs to the PPU and
// CPU reads return 0xff; similarly for the attribute table during the OAM
// scan. The locks disappear when the LCD is off.
//
// Rendering is background only. The window and sprite layers are accepted at
// the register level but do not reach the framebuffer.
package ppu

import (
	"fmt"

	"github.com/jetsetilly/gopherdmg/hardware/interrupts"
)

// PPU implements the picture processing unit.
type PPU struct {
	irq *interrupts.Interrupts

	vram [0x2000]uint8
	oam  [0xa0]uint8

	// registers. stat holds only the writable interrupt-enable bits; the
	// status bits are composed at read time
	lcdc uint8
	stat uint8
	scy  uint8
	scx  uint8
	ly   uint8
	lyc  uint8
	bgp  uint8
	obp0 uint8
	obp1 uint8
	wy   uint8
	wx   uint8

	mode Mode

	// dot position within the current scanline
	dot int

	frame    Framebuffer
	renderer Renderer

	// frame count since reset. incremented on entry to vertical blank
	frameNum int
}

// NewPPU is the preferred method of initialisation for the PPU type.
func NewPPU(irq *interrupts.Interrupts) *PPU {
	ppu := &PPU{irq: irq}
	ppu.Reset()
	return ppu
}

// Attach a renderer to receive completed frames. A nil value detaches.
func (ppu *PPU) Attach(renderer Renderer) {
	ppu.renderer = renderer
}

func (ppu *PPU) String() string {
	return fmt.Sprintf("LY=%d dot=%d %s", ppu.ly, ppu.dot, ppu.mode.String())
}

// Reset the PPU to the power-on state. Video RAM and the attribute table are
// not cleared, matching the real machine where their content is arbitrary at
// power-on.
func (ppu *PPU) Reset() {
	ppu.lcdc = 0x00
	ppu.stat = 0x00
	ppu.scy = 0x00
	ppu.scx = 0x00
	ppu.ly = 0x00
	ppu.lyc = 0x00
	ppu.bgp = 0x00
	ppu.wy = 0x00
	ppu.wx = 0x00
	ppu.mode = HBlank
	ppu.dot = 0
	ppu.frameNum = 0
}

// Mode returns the current mode of the PPU.
func (ppu *PPU) Mode() Mode {
	return ppu.mode
}

// FrameNum returns the number of frames completed since reset.
func (ppu *PPU) FrameNum() int {
	return ppu.frameNum
}

// Frame returns the framebuffer as it currently stands. The frame is only
// complete on entry to the vertical blank; renderers attached with Attach()
// see only complete frames.
func (ppu *PPU) Frame() *Framebuffer {
	return &ppu.frame
}

// Step the PPU forward. The cycles value is the duration of the instruction
// the CPU has just executed; the PPU consumes one cycle per dot.
func (ppu *PPU) Step(cycles int) {
	if !ppu.Enabled() {
		return
	}

	for i := 0; i < cycles; i++ {
		ppu.tick()
	}
}

// tick advances the PPU by a single dot.
func (ppu *PPU) tick() {
	ppu.dot++
	if ppu.dot == ClksScanline {
		ppu.dot = 0
		ppu.ly++
		if ppu.ly == ScanlinesTotal {
			ppu.ly = 0
		}
		ppu.compareLYC()
	}

	if ppu.ly >= ScanlinesVisible {
		if ppu.ly == ScanlinesVisible && ppu.dot == 0 {
			ppu.setMode(VBlank)
		}
		return
	}

	switch ppu.dot {
	case 0:
		ppu.setMode(OAMScan)
	case clksOAMScan:
		ppu.setMode(PixelTransfer)
	case clksTransferEnd:
		// the picture for this scanline is fixed at the moment the PPU
		// releases the video RAM
		ppu.renderScanline()
		ppu.setMode(HBlank)
	}
}

// setMode changes mode and raises whatever interrupts the new mode calls
// for.
func (ppu *PPU) setMode(mode Mode) {
	ppu.mode = mode

	switch mode {
	case HBlank:
		if ppu.stat&statIntrHBlank != 0 {
			ppu.irq.Raise(interrupts.LCDStat)
		}
	case VBlank:
		ppu.frameNum++
		if ppu.renderer != nil {
			ppu.renderer.NewFrame(ppu.frame)
		}
		ppu.irq.Raise(interrupts.VBlank)
		if ppu.stat&statIntrVBlank != 0 {
			ppu.irq.Raise(interrupts.LCDStat)
		}
	case OAMScan:
		if ppu.stat&statIntrOAMScan != 0 {
			ppu.irq.Raise(interrupts.LCDStat)
		}
	}
}

// compareLYC runs the scanline comparator. Called whenever LY or LYC
// changes.
func (ppu *PPU) compareLYC() {
	if ppu.ly == ppu.lyc && ppu.stat&statIntrCoincidence != 0 {
		ppu.irq.Raise(interrupts.LCDStat)
	}
}

// ReadVRAM reads a byte of video RAM on behalf of the CPU. The offset is
// relative to the start of the area. During pixel transfer the RAM belongs
// to the PPU and the CPU sees 0xff.
func (ppu *PPU) ReadVRAM(offset uint16) uint8 {
	if ppu.Enabled() && ppu.mode == PixelTransfer {
		return 0xff
	}
	return ppu.vram[offset]
}

// WriteVRAM writes a byte of video RAM on behalf of the CPU. Writes during
// pixel transfer are lost.
func (ppu *PPU) WriteVRAM(offset uint16, data uint8) {
	if ppu.Enabled() && ppu.mode == PixelTransfer {
		return
	}
	ppu.vram[offset] = data
}

// ReadOAM reads a byte of the sprite attribute table on behalf of the CPU.
func (ppu *PPU) ReadOAM(offset uint16) uint8 {
	if ppu.Enabled() && (ppu.mode == OAMScan || ppu.mode == PixelTransfer) {
		return 0xff
	}
	return ppu.oam[offset]
}

// WriteOAM writes a byte of the sprite attribute table on behalf of the CPU.
func (ppu *PPU) WriteOAM(offset uint16, data uint8) {
	if ppu.Enabled() && (ppu.mode == OAMScan || ppu.mode == PixelTransfer) {
		return
	}
	ppu.oam[offset] = data
}

// WriteOAMDMA writes a byte of the attribute table during an OAM DMA
// transfer. DMA bypasses the mode locks.
func (ppu *PPU) WriteOAMDMA(offset uint16, data uint8) {
	ppu.oam[offset] = data
}

// ReadRegister reads one of the PPU registers. The offset is the IO page
// offset of the register.
func (ppu *PPU) ReadRegister(offset uint16) uint8 {
	switch offset {
	case 0x40:
		return ppu.lcdc
	case 0x41:
		v := uint8(0x80) | ppu.stat
		if !ppu.Enabled() {
			return v
		}
		if ppu.ly == ppu.lyc {
			v |= statCoincidence
		}
		return v | uint8(ppu.mode)
	case 0x42:
		return ppu.scy
	case 0x43:
		return ppu.scx
	case 0x44:
		// LY reads zero while the LCD is off
		if !ppu.Enabled() {
			return 0x00
		}
		return ppu.ly
	case 0x45:
		return ppu.lyc
	case 0x47:
		return ppu.bgp
	case 0x48:
		return ppu.obp0
	case 0x49:
		return ppu.obp1
	case 0x4a:
		return ppu.wy
	case 0x4b:
		return ppu.wx
	}
	return 0xff
}

// WriteRegister writes one of the PPU registers.
func (ppu *PPU) WriteRegister(offset uint16, data uint8) {
	switch offset {
	case 0x40:
		wasEnabled := ppu.Enabled()
		ppu.lcdc = data
		if wasEnabled && !ppu.Enabled() {
			// switching the LCD off abandons the current frame
			ppu.ly = 0
			ppu.dot = 0
			ppu.mode = HBlank
		} else if !wasEnabled && ppu.Enabled() {
			// the first frame starts at the top with an OAM scan
			ppu.ly = 0
			ppu.dot = 0
			ppu.mode = OAMScan
		}
	case 0x41:
		// only the interrupt-enable bits are writable
		ppu.stat = data & 0x78
	case 0x42:
		ppu.scy = data
	case 0x43:
		ppu.scx = data
	case 0x44:
		// LY is read-only
	case 0x45:
		ppu.lyc = data
		if ppu.Enabled() {
			ppu.compareLYC()
		}
	case 0x47:
		ppu.bgp = data
	case 0x48:
		ppu.obp0 = data
	case 0x49:
		ppu.obp1 = data
	case 0x4a:
		ppu.wy = data
	case 0x4b:
		ppu.wx = data
	}
}
