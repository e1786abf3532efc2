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

package instructions

// AddressingMode describes the method data for the instruction should be received.
type AddressingMode int

// List of supported addressing modes.
const (
	// zero value. a definition with this addressing mode has not been
	// initialised correctly
	Unknown AddressingMode = iota

	Implied
	Accumulator // implied but operating on the accumulator
	Immediate
	Relative // relative addressing is used for branch instructions

	Absolute // abs
	ZeroPage // zpg
	Indirect // ind

	IndexedIndirect // (ind,X)
	IndirectIndexed // (ind), Y

	AbsoluteIndexedX // abs,X
	AbsoluteIndexedY // abs,Y

	ZeroPageIndexedX // zpg,X
	ZeroPageIndexedY // zpg,Y
)

func (m AddressingMode) String() string {
	switch m {
	case Implied:
		return "Implied"
	case Accumulator:
		return "Accumulator"
	case Immediate:
		return "Immediate"
	case Relative:
		return "Relative"
	case Absolute:
		return "Absolute"
	case ZeroPage:
		return "ZeroPage"
	case Indirect:
		return "Indirect"
	case IndexedIndirect:
		return "IndexedIndirect"
	case IndirectIndexed:
		return "IndirectIndexed"
	case AbsoluteIndexedX:
		return "AbsoluteIndexedX"
	case AbsoluteIndexedY:
		return "AbsoluteIndexedY"
	case ZeroPageIndexedX:
		return "ZeroPageIndexedX"
	case ZeroPageIndexedY:
		return "ZeroPageIndexedY"
	}
	return "Unknown"
}

// Bytes returns the number of bytes an instruction using the addressing mode
// occupies, including the opcode. Returns zero for the Unknown mode.
func (m AddressingMode) Bytes() int {
	switch m {
	case Implied, Accumulator:
		return 1
	case Immediate, Relative, ZeroPage, ZeroPageIndexedX, ZeroPageIndexedY, IndexedIndirect, IndirectIndexed:
		return 2
	case Absolute, AbsoluteIndexedX, AbsoluteIndexedY, Indirect:
		return 3
	}
	return 0
}

// IsIndexed returns true if the addressing mode adds an index register to a
// base address.
func (m AddressingMode) IsIndexed() bool {
	switch m {
	case IndexedIndirect, IndirectIndexed, AbsoluteIndexedX, AbsoluteIndexedY, ZeroPageIndexedX, ZeroPageIndexedY:
		return true
	}
	return false
}
