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

package memory_test

import (
	"testing"

	"github.com/jetsetilly/gopherdmg/hardware/interrupts"
	"github.com/jetsetilly/gopherdmg/hardware/memory"
	"github.com/jetsetilly/gopherdmg/hardware/memory/cartridge"
	"github.com/jetsetilly/gopherdmg/hardware/ppu"
	"github.com/jetsetilly/gopherdmg/hardware/serial"
	"github.com/jetsetilly/gopherdmg/hardware/timer"
	"github.com/jetsetilly/gopherdmg/test"
)

func newTestMemory(t *testing.T) *memory.Memory {
	t.Helper()

	img := make([]byte, 0x8000)
	copy(img[0x0134:], "TEST")
	for i := range img {
		if i >= 0x0200 {
			img[i] = uint8(i)
		}
	}

	cart, err := cartridge.NewCartridge(img)
	test.ExpectedSuccess(t, err)

	irq := interrupts.NewInterrupts()
	p := ppu.NewPPU(irq)
	tmr := timer.NewTimer(irq)
	ser := serial.NewSerial(irq)

	return memory.NewMemory(cart, p, tmr, ser, irq)
}

func TestRAMRoundTrip(t *testing.T) {
	mem := newTestMemory(t)

	mem.Write(0xc000, 0x42)
	test.Equate(t, mem.Read(0xc000), 0x42)

	mem.Write(0xdfff, 0x13)
	test.Equate(t, mem.Read(0xdfff), 0x13)

	mem.Write(0xff80, 0x99)
	test.Equate(t, mem.Read(0xff80), 0x99)
	mem.Write(0xfffe, 0x55)
	test.Equate(t, mem.Read(0xfffe), 0x55)
}

func TestEchoRAM(t *testing.T) {
	mem := newTestMemory(t)

	// the echo area shadows work RAM in both directions
	mem.Write(0xc000, 0x42)
	test.Equate(t, mem.Read(0xe000), 0x42)

	mem.Write(0xfdff, 0x13)
	test.Equate(t, mem.Read(0xddff), 0x13)
}

func TestROMIsReadOnly(t *testing.T) {
	mem := newTestMemory(t)

	v := mem.Read(0x0200)
	mem.Write(0x0200, ^v)
	test.Equate(t, mem.Read(0x0200), v)
}

func TestUnmappedAddresses(t *testing.T) {
	mem := newTestMemory(t)

	// the unusable area above the attribute table
	test.Equate(t, mem.Read(0xfea0), 0xff)
	mem.Write(0xfea0, 0x42)
	test.Equate(t, mem.Read(0xfea0), 0xff)

	// an unmapped IO register
	test.Equate(t, mem.Read(0xff7f), 0xff)
	mem.Write(0xff7f, 0x42)
	test.Equate(t, mem.Read(0xff7f), 0xff)
}

func TestJoypadIdle(t *testing.T) {
	mem := newTestMemory(t)

	// with no input device attached every button reads released whatever
	// half of the matrix is selected
	mem.Write(0xff00, 0x20)
	test.Equate(t, mem.Read(0xff00)&0x0f, 0x0f)
	mem.Write(0xff00, 0x10)
	test.Equate(t, mem.Read(0xff00)&0x0f, 0x0f)
}

func TestBootOverlay(t *testing.T) {
	mem := newTestMemory(t)

	boot := make([]uint8, 0x100)
	for i := range boot {
		boot[i] = 0xaa
	}
	mem.LoadBoot(boot)

	test.ExpectedSuccess(t, mem.BootEnabled())
	test.Equate(t, mem.Read(0x0000), 0xaa)
	test.Equate(t, mem.Read(0x00ff), 0xaa)

	// addresses beyond the overlay come from the cartridge
	test.Equate(t, mem.Read(0x0200), 0x00)

	// a write to the BOOT register switches the overlay out for good
	mem.Write(0xff50, 0x01)
	test.ExpectedFailure(t, mem.BootEnabled())
	test.Equate(t, mem.Read(0x0000), 0x00)
}

func TestOAMDMA(t *testing.T) {
	mem := newTestMemory(t)

	// stage a recognisable pattern in work RAM
	for i := uint16(0); i < 0xa0; i++ {
		mem.Write(0xc000+i, uint8(i))
	}

	// transfer from page 0xc0
	mem.Write(0xff46, 0xc0)

	// the DMA register reads back the last written value
	test.Equate(t, mem.Read(0xff46), 0xc0)

	// the transfer took 640 cycles, claimed exactly once
	test.Equate(t, mem.ClaimDMACycles(), 640)
	test.Equate(t, mem.ClaimDMACycles(), 0)

	// LCD is off so the attribute table is readable directly
	for i := uint16(0); i < 0xa0; i++ {
		test.Equate(t, mem.Read(0xfe00+i), uint8(i))
	}
}
