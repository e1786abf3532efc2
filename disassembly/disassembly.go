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
	"fmt"

	"github.com/jetsetilly/mos6502/curated"
	"github.com/jetsetilly/mos6502/hardware/cpu"
	"github.com/jetsetilly/mos6502/hardware/cpu/instructions"
	"github.com/jetsetilly/mos6502/hardware/memory"
)

// DisasmError is the pattern for errors returned by the disassembly package.
const DisasmError = "disassembly: %v"

// Disassembly represents the disassembly of a region of memory.
type Disassembly struct {
	// first address of the disassembled region
	Origin uint16

	mem *memory.Memory

	// indexed by address minus Origin. nil entries could not be decoded
	entries []*Entry
}

// FromMemory disassembles length bytes of the CPU's memory starting at
// origin. The CPU is not affected by the disassembly.
func FromMemory(mc *cpu.CPU, origin uint16, length int) (*Disassembly, error) {
	if length <= 0 || int(origin)+length > 0x10000 {
		return nil, curated.Errorf(DisasmError, fmt.Sprintf("invalid range (%#04x, %d bytes)", origin, length))
	}

	dsm := &Disassembly{
		Origin:  origin,
		mem:     mc.Mem,
		entries: make([]*Entry, length),
	}

	err := dsm.decode(mc)
	if err != nil {
		return nil, err
	}

	dsm.bless(mc.Mem.Read16(memory.Reset))

	return dsm, nil
}

// Len returns the number of bytes covered by the disassembly.
func (dsm *Disassembly) Len() int {
	return len(dsm.entries)
}

func (dsm *Disassembly) inRange(address uint16) bool {
	return address >= dsm.Origin && int(address-dsm.Origin) < len(dsm.entries)
}

// GetEntryByAddress returns the Entry at the address. Returns false if there is
// no instruction that can be decoded at that address.
func (dsm *Disassembly) GetEntryByAddress(address uint16) (*Entry, bool) {
	if !dsm.inRange(address) {
		return nil, false
	}
	e := dsm.entries[address-dsm.Origin]
	return e, e != nil
}

// decode every address as though it was the start of an instruction.
func (dsm *Disassembly) decode(mc *cpu.CPU) error {
	for i := range dsm.entries {
		r, err := mc.Decode(dsm.Origin + uint16(i))
		if err != nil {
			if curated.Is(err, cpu.UnimplementedInstruction) {
				continue
			}
			return curated.Errorf(DisasmError, err)
		}

		// instructions that run past the end of the region are not included
		if i+r.ByteCount > len(dsm.entries) {
			continue
		}

		dsm.entries[i] = &Entry{
			Level:  EntryLevelDecoded,
			Result: r,
		}
	}

	return nil
}

// bless the entries that follow on from the origin and the start address.
// branch, JMP and JSR destinations are followed. a sequence ends with an
// instruction that does not continue to the next instruction or with an entry
// that could not be decoded.
func (dsm *Disassembly) bless(start uint16) {
	blessings := []uint16{dsm.Origin}
	if start != dsm.Origin && dsm.inRange(start) {
		blessings = append(blessings, start)
	}

	for len(blessings) > 0 {
		a := blessings[0]
		blessings = blessings[1:]

		for {
			e, ok := dsm.GetEntryByAddress(a)
			if !ok || e.Level == EntryLevelBlessed {
				break
			}
			e.Level = EntryLevelBlessed

			defn := e.Result.Defn
			if defn.IsBranch() {
				blessings = append(blessings, e.Result.BranchTarget())
			}

			switch defn.Operator {
			case instructions.Jsr:
				// the sequence continues after the JSR because the subroutine
				// will probably return
				blessings = append(blessings, e.Result.InstructionData)
			case instructions.Jmp:
				if defn.AddressingMode == instructions.Absolute {
					blessings = append(blessings, e.Result.InstructionData)
				}
			}

			if endsSequence(defn) {
				break
			}

			a += uint16(e.Result.ByteCount)
		}
	}
}

func endsSequence(defn *instructions.Definition) bool {
	switch defn.Operator {
	case instructions.Jmp, instructions.Rts, instructions.Rti, instructions.Brk:
		return true
	}
	return false
}
