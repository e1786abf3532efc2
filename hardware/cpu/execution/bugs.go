// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

package execution

// Bug is a known hardware bug that was triggered during the execution of an
// instruction. The 6502 has some known bugs which can catch people out.
type Bug string

// List of known bugs.
const (
	NoBug Bug = ""

	// JMP (indirect) with a pointer at the last byte of a page takes the high
	// byte of the target address from the first byte of the same page
	JmpIndirectAddressingBug Bug = "indirect addressing bug"

	// (indirect,X) and (indirect),Y with a pointer at the last byte of the
	// zero page take the high byte of the pointer from address 0x00
	IndexedIndirectAddressingBug Bug = "indexed indirect addressing bug"

	// zero page indexing wraps around to the start of the zero page rather
	// than into page one
	ZeroPageIndexBug Bug = "zero page index bug"
)
