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

package ppu_test

import (
	"testing"

	"github.com/jetsetilly/gopherdmg/hardware/interrupts"
	"github.com/jetsetilly/gopherdmg/hardware/ppu"
	"github.com/jetsetilly/gopherdmg/test"
)

// register offsets in the IO page, avoiding a dependency on the addresses
// package in these tests
const (
	regLCDC = 0x40
	regSTAT = 0x41
	regSCY  = 0x42
	regLY   = 0x44
	regLYC  = 0x45
	regBGP  = 0x47
)

func newTestPPU() (*ppu.PPU, *interrupts.Interrupts) {
	irq := interrupts.NewInterrupts()
	irq.WriteEnable(0xff)
	p := ppu.NewPPU(irq)
	p.WriteRegister(regLCDC, 0x91)
	return p, irq
}

func TestDisabledLCD(t *testing.T) {
	irq := interrupts.NewInterrupts()
	p := ppu.NewPPU(irq)

	// LY reads zero and stays zero while the LCD is off
	p.Step(456 * 10)
	test.Equate(t, p.ReadRegister(regLY), 0x00)

	// no locks while the LCD is off
	p.WriteVRAM(0x0000, 0x42)
	test.Equate(t, p.ReadVRAM(0x0000), 0x42)
	p.WriteOAM(0x0000, 0x42)
	test.Equate(t, p.ReadOAM(0x0000), 0x42)
}

func TestModeSequence(t *testing.T) {
	p, _ := newTestPPU()

	// scanline starts with the OAM scan
	test.Equate(t, p.Mode().String(), ppu.OAMScan.String())

	p.Step(79)
	test.Equate(t, p.Mode().String(), ppu.OAMScan.String())
	p.Step(1)
	test.Equate(t, p.Mode().String(), ppu.PixelTransfer.String())

	p.Step(171)
	test.Equate(t, p.Mode().String(), ppu.PixelTransfer.String())
	p.Step(1)
	test.Equate(t, p.Mode().String(), ppu.HBlank.String())

	// remainder of the scanline is hblank. the next line starts with
	// another OAM scan
	p.Step(456 - 252 - 1)
	test.Equate(t, p.Mode().String(), ppu.HBlank.String())
	p.Step(1)
	test.Equate(t, p.ReadRegister(regLY), 0x01)
	test.Equate(t, p.Mode().String(), ppu.OAMScan.String())
}

func TestVBlankTiming(t *testing.T) {
	p, irq := newTestPPU()

	// run to the end of the visible screen
	p.Step(456 * 144)
	test.Equate(t, p.ReadRegister(regLY), 144)
	test.Equate(t, p.Mode().String(), ppu.VBlank.String())

	src, ok := irq.Pending()
	test.ExpectedSuccess(t, ok)
	test.Equate(t, src.String(), interrupts.VBlank.String())

	// ten scanlines of vblank then back to the top
	p.Step(456 * 10)
	test.Equate(t, p.ReadRegister(regLY), 0x00)
	test.Equate(t, p.Mode().String(), ppu.OAMScan.String())
	test.Equate(t, p.FrameNum(), 1)
}

func TestFrameDuration(t *testing.T) {
	p, _ := newTestPPU()

	// one frame is exactly 70224 cycles
	p.Step(456 * 154)
	test.Equate(t, p.FrameNum(), 1)
	test.Equate(t, p.ReadRegister(regLY), 0x00)

	p.Step(456 * 154 * 3)
	test.Equate(t, p.FrameNum(), 4)
}

func TestLYCCoincidence(t *testing.T) {
	p, irq := newTestPPU()
	p.WriteRegister(regLYC, 2)
	p.WriteRegister(regSTAT, 0x40)

	// coincidence bit is clear until LY reaches LYC
	test.Equate(t, p.ReadRegister(regSTAT)&0x04, 0x00)
	irq.WriteRequest(0x00)

	p.Step(456 * 2)
	test.Equate(t, p.ReadRegister(regLY), 0x02)
	test.Equate(t, p.ReadRegister(regSTAT)&0x04, 0x04)

	src, ok := irq.Pending()
	test.ExpectedSuccess(t, ok)
	test.Equate(t, src.String(), interrupts.LCDStat.String())
}

func TestSTATBits(t *testing.T) {
	p, _ := newTestPPU()

	// bit 7 reads high, mode bits reflect the current mode, only the
	// enable bits are writable
	p.WriteRegister(regSTAT, 0xff)
	stat := p.ReadRegister(regSTAT)
	test.Equate(t, stat&0x80, 0x80)
	test.Equate(t, stat&0x03, uint8(ppu.OAMScan))
}

func TestVRAMLock(t *testing.T) {
	p, _ := newTestPPU()

	// during the OAM scan video RAM is still accessible but the attribute
	// table is not
	p.WriteVRAM(0x0000, 0x42)
	test.Equate(t, p.ReadVRAM(0x0000), 0x42)
	test.Equate(t, p.ReadOAM(0x0000), 0xff)
	p.WriteOAM(0x0000, 0x42)

	// during pixel transfer both are locked
	p.Step(80)
	test.Equate(t, p.ReadVRAM(0x0000), 0xff)
	p.WriteVRAM(0x0000, 0x13)
	test.Equate(t, p.ReadOAM(0x0000), 0xff)

	// in hblank everything is accessible again. the locked writes were
	// lost
	p.Step(172)
	test.Equate(t, p.ReadVRAM(0x0000), 0x42)
	test.Equate(t, p.ReadOAM(0x0000), 0x00)

	// DMA writes bypass the locks
	p.Step(456 - 252) // next line, OAM scan
	p.WriteOAMDMA(0x0001, 0x99)
	p.WriteRegister(regLCDC, 0x11)
	test.Equate(t, p.ReadOAM(0x0001), 0x99)
}

func TestBackgroundRender(t *testing.T) {
	irq := interrupts.NewInterrupts()
	p := ppu.NewPPU(irq)

	// tile 1 is solid colour 3: every row 0xff 0xff
	for i := 0; i < 16; i++ {
		p.WriteVRAM(uint16(0x0010+i), 0xff)
	}

	// first two entries of the tile map: tile 1 then tile 0
	p.WriteVRAM(0x1800, 0x01)
	p.WriteVRAM(0x1801, 0x00)

	// identity palette, unsigned tile addressing, background on
	p.WriteRegister(regBGP, 0xe4)
	p.WriteRegister(regLCDC, 0x91)

	// render a full frame
	p.Step(456 * 154)

	fb := p.Frame()
	for x := 0; x < 8; x++ {
		test.Equate(t, fb.At(x, 0), 0x03)
	}
	for x := 8; x < 16; x++ {
		test.Equate(t, fb.At(x, 0), 0x00)
	}
}

func TestBackgroundPalette(t *testing.T) {
	irq := interrupts.NewInterrupts()
	p := ppu.NewPPU(irq)

	for i := 0; i < 16; i++ {
		p.WriteVRAM(uint16(0x0010+i), 0xff)
	}
	p.WriteVRAM(0x1800, 0x01)

	// palette maps colour 3 to shade 0
	p.WriteRegister(regBGP, 0x24)
	p.WriteRegister(regLCDC, 0x91)

	p.Step(456 * 154)
	test.Equate(t, p.Frame().At(0, 0), 0x00)
}

func TestScroll(t *testing.T) {
	irq := interrupts.NewInterrupts()
	p := ppu.NewPPU(irq)

	for i := 0; i < 16; i++ {
		p.WriteVRAM(uint16(0x0010+i), 0xff)
	}

	// tile 1 in the second row of the tile map
	p.WriteVRAM(0x1820, 0x01)

	p.WriteRegister(regBGP, 0xe4)
	p.WriteRegister(regLCDC, 0x91)

	// without scroll, screen row zero shows tile map row zero: blank
	p.Step(456 * 154)
	test.Equate(t, p.Frame().At(0, 0), 0x00)

	// scroll down one tile row
	p.WriteRegister(regSCY, 8)
	p.Step(456 * 154)
	test.Equate(t, p.Frame().At(0, 0), 0x03)
}

type frameCounter struct {
	frames int
	last   ppu.Framebuffer
}

func (fc *frameCounter) NewFrame(frame ppu.Framebuffer) {
	fc.frames++
	fc.last = frame
}

func TestRenderer(t *testing.T) {
	p, _ := newTestPPU()

	fc := &frameCounter{}
	p.Attach(fc)

	// the renderer sees one frame per vblank
	p.Step(456 * 154 * 2)
	test.Equate(t, fc.frames, 2)
}
