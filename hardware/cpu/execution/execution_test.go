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

package execution_test

import (
	"testing"

	"github.com/jetsetilly/mos6502/hardware/cpu/execution"
	"github.com/jetsetilly/mos6502/hardware/cpu/instructions"
	"github.com/jetsetilly/mos6502/test"
)

func defn(opcode uint8) *instructions.Definition {
	return instructions.GetDefinitions()[opcode]
}

func TestValidity(t *testing.T) {
	// LDA immediate
	r := execution.Result{
		Defn:      defn(0xa9),
		ByteCount: 2,
		Cycles:    2,
		Final:     true,
	}
	test.ExpectSuccess(t, r.IsValid())

	// not finalised
	r.Final = false
	test.ExpectFailure(t, r.IsValid())
	r.Final = true

	// wrong number of bytes
	r.ByteCount = 1
	test.ExpectFailure(t, r.IsValid())
	r.ByteCount = 2

	// page fault on an instruction that isn't sensitive to it
	r.PageFault = true
	test.ExpectFailure(t, r.IsValid())

	// LDA absolute,X with page fault
	r = execution.Result{
		Defn:      defn(0xbd),
		ByteCount: 3,
		Cycles:    5,
		PageFault: true,
		Final:     true,
	}
	test.ExpectSuccess(t, r.IsValid())
	r.Cycles = 4
	test.ExpectFailure(t, r.IsValid())

	// STA absolute,X is never page sensitive
	r = execution.Result{
		Defn:      defn(0x9d),
		ByteCount: 3,
		Cycles:    5,
		Final:     true,
	}
	test.ExpectSuccess(t, r.IsValid())
}

func TestBranchValidity(t *testing.T) {
	// BNE
	r := execution.Result{
		Defn:      defn(0xd0),
		ByteCount: 2,
		Cycles:    2,
		Final:     true,
	}
	test.ExpectSuccess(t, r.IsValid())

	r.BranchSuccess = true
	test.ExpectFailure(t, r.IsValid())
	r.Cycles = 3
	test.ExpectSuccess(t, r.IsValid())

	r.PageFault = true
	test.ExpectFailure(t, r.IsValid())
	r.Cycles = 4
	test.ExpectSuccess(t, r.IsValid())

	// page fault is impossible if the branch wasn't taken
	r.BranchSuccess = false
	r.Cycles = 2
	test.ExpectFailure(t, r.IsValid())
}

func TestBranchTarget(t *testing.T) {
	r := execution.Result{
		Defn:            defn(0xd0),
		Address:         0xbead,
		InstructionData: 0x40,
	}
	test.ExpectEquality(t, r.BranchTarget(), uint16(0xbeef))

	r.InstructionData = 0xfe
	test.ExpectEquality(t, r.BranchTarget(), uint16(0xbead))
}

func TestString(t *testing.T) {
	r := execution.Result{
		Defn:            defn(0xa9),
		ByteCount:       2,
		Address:         0xc000,
		InstructionData: 0x01,
		Cycles:          2,
		Final:           true,
	}
	test.ExpectEquality(t, r.String(), "c000 LDA #$01")
	test.ExpectEquality(t, r.GetString(execution.StyleFull), "c000 a9 01    LDA #$01      [2]")

	r = execution.Result{
		Defn:            defn(0x6c),
		ByteCount:       3,
		Address:         0x0600,
		InstructionData: 0x02ff,
		Cycles:          5,
		CPUBug:          execution.JmpIndirectAddressingBug,
		Final:           true,
	}
	test.ExpectEquality(t, r.String(), "0600 JMP ($02ff)")
	test.ExpectEquality(t, r.GetString(execution.StyleFlagNotes), "JMP ($02ff) * indirect addressing bug *")

	r = execution.Result{
		Defn:            defn(0xb1),
		ByteCount:       2,
		Address:         0x0600,
		InstructionData: 0x10,
		Cycles:          6,
		PageFault:       true,
		Final:           true,
	}
	test.ExpectEquality(t, r.GetString(execution.StyleFlagCycles|execution.StyleFlagNotes), "LDA ($10),Y [6] page-fault")

	r = execution.Result{
		Defn:            defn(0xd0),
		ByteCount:       2,
		Address:         0xbead,
		InstructionData: 0x40,
		Cycles:          2,
		Final:           true,
	}
	test.ExpectEquality(t, r.String(), "bead BNE $beef")

	r = execution.Result{
		Defn:      defn(0x0a),
		ByteCount: 1,
		Address:   0x0600,
		Cycles:    2,
		Final:     true,
	}
	test.ExpectEquality(t, r.String(), "0600 ASL A")

	// partially decoded instruction
	r = execution.Result{
		Defn:      defn(0xad),
		ByteCount: 1,
	}
	test.ExpectEquality(t, r.String(), "LDA ????")

	r = execution.Result{}
	test.ExpectEquality(t, r.String(), "???")
}
