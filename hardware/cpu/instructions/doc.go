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

// Package instructions defines every instruction in the SM83 instruction
// set: the primary opcode page and the CB page reached through the 0xcb
// prefix byte.
//
// The tables are built at package initialisation. The middle half of the
// primary page (the register loads and the accumulator arithmetic) and the
// whole of the CB page are perfectly regular so those definitions are
// generated; the rest are enumerated.
//
// Cycle counts are durations in cycles of the 4MHz master clock, the unit
// used throughout the emulation. A definition carries two counts for the
// conditional branch instructions because a taken branch is slower than one
// that falls through.
package instructions
