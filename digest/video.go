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

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/jetsetilly/gopherdmg/hardware/ppu"
)

// Video is an implementation of the ppu.Renderer interface. It generates a
// SHA-1 value of the frame chained with the value of the previous frame. It
// does not display the image anywhere.
//
// Note that the use of SHA-1 is fine for this application because this is
// not a cryptographic task.
type Video struct {
	digest   [sha1.Size]byte
	buffer   []byte
	frameNum int
}

// NewVideo is the preferred method of initialisation for the Video type.
// Attach the result to the PPU to start hashing frames.
func NewVideo() *Video {
	dig := &Video{}

	// the buffer holds the previous digest value followed by the frame
	dig.buffer = make([]byte, sha1.Size+len(ppu.Framebuffer{}))

	return dig
}

// Hash implements the Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Video) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
	dig.frameNum = 0
}

// FrameNum returns the number of frames hashed since the last reset.
func (dig *Video) FrameNum() int {
	return dig.frameNum
}

// NewFrame implements the ppu.Renderer interface.
func (dig *Video) NewFrame(frame ppu.Framebuffer) {
	// chain fingerprints by copying the value of the last fingerprint to
	// the head of the buffer
	copy(dig.buffer, dig.digest[:])
	copy(dig.buffer[sha1.Size:], frame[:])
	dig.digest = sha1.Sum(dig.buffer)
	dig.frameNum++
}
