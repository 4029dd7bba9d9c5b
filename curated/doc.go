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

// Package curated is a helper package for the plain errors type in Go. Curated
// errors are created with the Errorf() function and can be tested against a
// pattern with the Is() and Has() functions.
//
// Error patterns for the emulation are declared in the package that raises
// them. For example, the cartridge package declares the pattern used when a
// ROM image requests a bank controller that is not supported.
package curated
