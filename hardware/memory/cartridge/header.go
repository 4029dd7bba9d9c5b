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
	"strings"

	"github.com/jetsetilly/gopherdmg/curated"
)

// header field offsets in the image.
const (
	offsetTitle   = 0x0134
	offsetCGBFlag = 0x0143
	offsetType    = 0x0147
	offsetROMSize = 0x0148
	offsetRAMSize = 0x0149

	// the smallest possible image: everything up to and including the header
	minImageSize = 0x0150
)

// Header is the parsed form of the cartridge header. The header occupies the
// area from 0x0100 to 0x014f of every image.
type Header struct {
	// title as stored at 0x0134, trimmed of trailing zeroes
	Title string

	// the CGB compatibility flag shares the last byte of the title field
	CGBFlag uint8

	// the raw type byte. the bank controller is selected from this
	Type uint8

	// decoded sizes in bytes
	ROMSize int
	RAMSize int
}

// CGBOnly returns true if the image declares that it only works on the later
// colour machine.
func (hdr Header) CGBOnly() bool {
	return hdr.CGBFlag == 0xc0
}

// NumROMBanks returns the number of 16k ROM banks.
func (hdr Header) NumROMBanks() int {
	return hdr.ROMSize / bankSize
}

// parseHeader reads the header fields from the image data.
func parseHeader(data []byte) (Header, error) {
	if len(data) < minImageSize {
		return Header{}, curated.Errorf(MalformedImage, "too small for a header")
	}

	hdr := Header{
		CGBFlag: data[offsetCGBFlag],
		Type:    data[offsetType],
	}

	// title field is zero padded. the CGB flag byte is excluded when it is
	// in use
	title := data[offsetTitle : offsetCGBFlag+1]
	if hdr.CGBFlag == 0x80 || hdr.CGBFlag == 0xc0 {
		title = title[:len(title)-1]
	}
	if idx := strings.IndexByte(string(title), 0x00); idx >= 0 {
		title = title[:idx]
	}
	hdr.Title = string(title)

	// ROM size byte n means 32k shifted left n times
	n := data[offsetROMSize]
	if n > 0x08 {
		return Header{}, curated.Errorf(MalformedImage, "unknown ROM size byte")
	}
	hdr.ROMSize = 0x8000 << n

	switch data[offsetRAMSize] {
	case 0x00:
		hdr.RAMSize = 0
	case 0x01:
		hdr.RAMSize = 0x0800
	case 0x02:
		hdr.RAMSize = 0x2000
	case 0x03:
		hdr.RAMSize = 0x8000
	case 0x04:
		hdr.RAMSize = 0x20000
	case 0x05:
		hdr.RAMSize = 0x10000
	default:
		return Header{}, curated.Errorf(MalformedImage, "unknown RAM size byte")
	}

	return hdr, nil
}
