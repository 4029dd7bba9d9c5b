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

// Package cpu implements the SM83 core found in the DMG. Its sole entry
// point is the ExecuteInstruction() function, which services at most one
// pending interrupt, fetches, decodes and executes one instruction, and
// returns the number of cycles all of that took. The caller is responsible
// for distributing those cycles to the rest of the machine.
//
// The core is driven through the Memory interface. Every memory access the
// instruction makes goes through that interface, in the same order as the
// real CPU makes them.
//
// Registers are public and can be inspected or poked between calls to
// ExecuteInstruction(). The LastResult field describes the most recently
// executed instruction and is the source of the execution trace.
package cpu
