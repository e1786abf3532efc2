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

package disassembly

import (
	"github.com/jetsetilly/mos6502/hardware/cpu/execution"
)

// EntryLevel describes the level of the Entry.
type EntryLevel int

// List of valid EntryLevel in increasing reliability.
//
// Decoded entries have been decoded as though every byte is the start of a
// valid instruction. Blessed entries have been reached by following the flow
// of the program.
const (
	EntryLevelDecoded EntryLevel = iota
	EntryLevelBlessed
)

func (l EntryLevel) String() string {
	switch l {
	case EntryLevelDecoded:
		return "decoded"
	case EntryLevelBlessed:
		return "blessed"
	}
	return "unknown"
}

// Entry is a disassembled instruction.
type Entry struct {
	Level EntryLevel

	// the instruction as it would be executed with the register values at
	// the time of disassembly
	Result execution.Result
}

func (e *Entry) String() string {
	return e.Result.GetString(execution.StyleBrief)
}

// Mnemonic of the instruction.
func (e *Entry) Mnemonic() string {
	return e.Result.Defn.Operator.String()
}

// Operand of the instruction, decorated according to the addressing mode.
func (e *Entry) Operand() string {
	s := e.Result.GetString(0)
	m := e.Mnemonic()
	if len(s) <= len(m) {
		return ""
	}
	return s[len(m)+1:]
}
