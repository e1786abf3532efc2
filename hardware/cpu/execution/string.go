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

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/mos6502/hardware/cpu/instructions"
)

// Style is the type used to specify what to include in a disassembly string.
type Style int

// style flags to hint at what to include when creating disassembly output.
const (
	StyleFlagAddress Style = 0x01 << iota
	StyleFlagByteCode
	StyleFlagCycles
	StyleFlagNotes
	StyleFlagColumns
)

// compound styles.
const (
	StyleBrief = StyleFlagAddress
	StyleFull  = StyleFlagAddress | StyleFlagByteCode | StyleFlagCycles | StyleFlagNotes | StyleFlagColumns
)

// Has tests to see if style has the supplied flag in its definition.
func (style Style) Has(flag Style) bool {
	return style&flag == flag
}

func (r Result) String() string {
	return r.GetString(StyleBrief)
}

// GetString returns a human readable version of the Result. The content and
// layout of the string depend on the style argument.
func (r Result) GetString(style Style) string {
	var hex string
	var programCounter string
	var operator, operand string
	var notes []string

	if r.Final && style.Has(StyleFlagAddress) {
		programCounter = fmt.Sprintf("%04x", r.Address)
	}

	if r.Defn == nil {
		// nothing has been decoded yet
		operator = "???"
	} else {
		operator = r.Defn.Operator.String()

		switch r.Defn.AddressingMode.Bytes() {
		case 2:
			operand = fmt.Sprintf("$%02x", uint8(r.InstructionData))
		case 3:
			operand = fmt.Sprintf("$%04x", r.InstructionData)
		}

		// operand is not yet known
		if r.ByteCount < r.Defn.Bytes && operand != "" {
			operand = strings.Repeat("?", len(operand)-1)
		}

		if r.Final && style.Has(StyleFlagByteCode) {
			switch r.Defn.AddressingMode.Bytes() {
			case 3:
				hex = fmt.Sprintf("%02x %02x %02x", r.Defn.OpCode, uint8(r.InstructionData), uint8(r.InstructionData>>8))
			case 2:
				hex = fmt.Sprintf("%02x %02x", r.Defn.OpCode, uint8(r.InstructionData))
			default:
				hex = fmt.Sprintf("%02x", r.Defn.OpCode)
			}
		}

		// decorate operand with addressing mode indicators
		switch r.Defn.AddressingMode {
		case instructions.Accumulator:
			operand = "A"
		case instructions.Immediate:
			operand = fmt.Sprintf("#%s", operand)
		case instructions.Relative:
			if r.Final {
				operand = fmt.Sprintf("$%04x", r.BranchTarget())
			}
		case instructions.Indirect:
			operand = fmt.Sprintf("(%s)", operand)
		case instructions.IndexedIndirect:
			operand = fmt.Sprintf("(%s,X)", operand)
		case instructions.IndirectIndexed:
			operand = fmt.Sprintf("(%s),Y", operand)
		case instructions.AbsoluteIndexedX, instructions.ZeroPageIndexedX:
			operand = fmt.Sprintf("%s,X", operand)
		case instructions.AbsoluteIndexedY, instructions.ZeroPageIndexedY:
			operand = fmt.Sprintf("%s,Y", operand)
		}
	}

	if style.Has(StyleFlagCycles) && r.Final {
		notes = append(notes, fmt.Sprintf("[%d]", r.Cycles))
	}

	if style.Has(StyleFlagNotes) {
		if n := r.Notes(); n != "" {
			notes = append(notes, n)
		}
	}

	if style.Has(StyleFlagColumns) {
		hex = columnise(hex, 8)
		programCounter = columnise(programCounter, 4)
		operator = columnise(operator, 3)
		operand = columnise(operand, 9)
	}

	// remove empty columns
	cols := make([]string, 0, 5)
	for _, c := range []string{programCounter, hex, operator, operand, strings.Join(notes, " ")} {
		if strings.TrimSpace(c) != "" || style.Has(StyleFlagColumns) {
			cols = append(cols, c)
		}
	}

	return strings.TrimRight(strings.Join(cols, " "), " ")
}

// Notes returns a description of the noteworthy events that occurred during
// the execution. Returns the empty string if there is nothing to note.
func (r Result) Notes() string {
	var notes []string
	if r.PageFault {
		notes = append(notes, "page-fault")
	}
	if r.CPUBug != NoBug {
		notes = append(notes, fmt.Sprintf("* %s *", r.CPUBug))
	}
	return strings.Join(notes, " ")
}

// columnise forces the string into the given width. used for outputting
// disassembly into columns.
func columnise(s string, width int) string {
	if width > len(s) {
		return fmt.Sprintf("%s%s", s, strings.Repeat(" ", width-len(s)))
	}
	return s[:width]
}
