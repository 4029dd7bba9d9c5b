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

// Package cartridge fully implements the cartridge of the DMG, including the
// bank controller chips found in the cartridge casing.
//
// When a cartridge is attached the header is parsed and the appropriate bank
// controller is selected from the type byte. Images that name a controller
// the emulation does not support are rejected at attach time with a curated
// error; this is deliberate fail-fast behaviour, an unsupported controller
// would misbehave in ways that are very hard to diagnose from inside a
// running program.
//
// Supported controllers are the flat 32k ROM arrangement and the MBC1. The
// MBC1 implementation covers the full register file: the 5-bit bank number
// (and its zero alias), the 2-bit secondary register, the banking mode flag
// and RAM enable.
package cartridge
