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

package digest_test

import (
	"testing"

	"github.com/jetsetilly/gopherdmg/digest"
	"github.com/jetsetilly/gopherdmg/hardware/interrupts"
	"github.com/jetsetilly/gopherdmg/hardware/ppu"
	"github.com/jetsetilly/gopherdmg/test"
)

// register offsets in the IO page
const (
	regLCDC = 0x40
	regBGP  = 0x47
)

// runFrames builds a PPU with a single tile visible and hashes the requested
// number of frames.
func runFrames(t *testing.T, shade uint8, numFrames int) *digest.Video {
	t.Helper()

	irq := interrupts.NewInterrupts()
	p := ppu.NewPPU(irq)

	dig := digest.NewVideo()
	p.Attach(dig)

	// a solid tile 1 in the top left corner of the background map
	for i := uint16(0); i < 16; i += 2 {
		p.WriteVRAM(0x0010+i, 0xff)
	}
	p.WriteVRAM(0x1800, 0x01)
	p.WriteRegister(regBGP, shade<<2) // BGP maps colour 1
	p.WriteRegister(regLCDC, 0x91)    // LCD on

	p.Step(ppu.ClksScanline * ppu.ScanlinesTotal * numFrames)
	return dig
}

func TestDeterministicHash(t *testing.T) {
	a := runFrames(t, 0x03, 2)
	b := runFrames(t, 0x03, 2)

	test.Equate(t, a.FrameNum(), 2)
	test.Equate(t, a.Hash(), b.Hash())
}

func TestHashTracksVideoContent(t *testing.T) {
	a := runFrames(t, 0x03, 1)
	b := runFrames(t, 0x01, 1)

	test.ExpectedFailure(t, a.Hash() == b.Hash())
}

func TestHashChains(t *testing.T) {
	a := runFrames(t, 0x03, 1)
	b := runFrames(t, 0x03, 2)

	// the same image but a different number of frames produces a different
	// chained hash
	test.ExpectedFailure(t, a.Hash() == b.Hash())
}

func TestResetDigest(t *testing.T) {
	dig := runFrames(t, 0x03, 1)

	dig.ResetDigest()
	test.Equate(t, dig.FrameNum(), 0)
	test.Equate(t, dig.Hash(), "0000000000000000000000000000000000000000")
}
