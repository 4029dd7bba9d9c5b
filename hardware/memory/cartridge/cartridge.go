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
	"fmt"

	"github.com/jetsetilly/gopherdmg/curated"
	"github.com/jetsetilly/gopherdmg/logger"
)

// error patterns raised by this package.
const (
	// the image names a bank controller the emulation does not implement
	UnsupportedCartridge = "unsupported cartridge type (%#02x)"

	// the image declares itself CGB-only. the DMG cannot run it
	UnsupportedConsole = "unsupported console (CGB only image)"

	// the image cannot be parsed
	MalformedImage = "malformed cartridge image: %v"
)

// size of one ROM bank in bytes.
const bankSize = 0x4000

// mapper is the interface between the cartridge and the bank controller
// implementations.
type mapper interface {
	// id of the controller for logging and the String() function
	ID() string

	// read/write in the ROM area (0x0000 to 0x7fff). writes address the
	// controller's registers, not the ROM itself
	Read(address uint16) uint8
	Write(address uint16, data uint8)

	// read/write in the cartridge RAM area. offset is relative to the start
	// of the area
	ReadRAM(offset uint16) uint8
	WriteRAM(offset uint16, data uint8)

	// the 16k bank currently visible in the switchable area
	CurrentBank() int
}

// Cartridge is the cartridge attached to the machine: a parsed header plus
// the bank controller the header named.
type Cartridge struct {
	Header Header
	mapper mapper
}

// NewCartridge is the preferred method of initialisation for the Cartridge
// type. The data slice is the complete image; it is retained, not copied.
func NewCartridge(data []byte) (*Cartridge, error) {
	hdr, err := parseHeader(data)
	if err != nil {
		return nil, err
	}

	if hdr.CGBOnly() {
		return nil, curated.Errorf(UnsupportedConsole)
	}

	cart := &Cartridge{Header: hdr}

	switch hdr.Type {
	case 0x00, 0x08, 0x09:
		cart.mapper, err = newROMOnly(data, hdr)
	case 0x01, 0x02, 0x03:
		cart.mapper, err = newMBC1(data, hdr)
	default:
		return nil, curated.Errorf(UnsupportedCartridge, hdr.Type)
	}
	if err != nil {
		return nil, err
	}

	logger.Logf("cartridge", "%s", cart.String())

	return cart, nil
}

func (cart *Cartridge) String() string {
	return fmt.Sprintf("%s [%s] rom=%dk ram=%dk", cart.Header.Title, cart.mapper.ID(),
		cart.Header.ROMSize/1024, cart.Header.RAMSize/1024)
}

// Read a byte from the ROM area of the cartridge.
func (cart *Cartridge) Read(address uint16) uint8 {
	return cart.mapper.Read(address)
}

// Write a byte to the ROM area of the cartridge. This is how the bank
// controller registers are accessed.
func (cart *Cartridge) Write(address uint16, data uint8) {
	cart.mapper.Write(address, data)
}

// ReadRAM reads a byte from the cartridge RAM area.
func (cart *Cartridge) ReadRAM(offset uint16) uint8 {
	return cart.mapper.ReadRAM(offset)
}

// WriteRAM writes a byte to the cartridge RAM area.
func (cart *Cartridge) WriteRAM(offset uint16, data uint8) {
	cart.mapper.WriteRAM(offset, data)
}

// CurrentBank returns the 16k ROM bank currently visible in the switchable
// area.
func (cart *Cartridge) CurrentBank() int {
	return cart.mapper.CurrentBank()
}
