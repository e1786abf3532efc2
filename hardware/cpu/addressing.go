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

package cpu

import (
	"github.com/jetsetilly/mos6502/curated"
	"github.com/jetsetilly/mos6502/hardware/cpu/execution"
	"github.com/jetsetilly/mos6502/hardware/cpu/instructions"
	"github.com/jetsetilly/mos6502/hardware/memory"
)

// AddrResult is the outcome of resolving the addressing mode of an
// instruction.
type AddrResult struct {
	// the effective address. for the Immediate mode this is the operand itself
	// and for the Accumulator mode it is the value of the accumulator at the
	// time of resolution
	Value uint16

	Mode instructions.AddressingMode

	// the base address and the effective address are in different pages. only
	// the Relative and the indexed absolute modes set this field
	PageCross bool

	// the hardware bug triggered during resolution, if any
	Bug execution.Bug
}

// Resolve returns the operand byte for the addressing result.
func (ar AddrResult) Resolve(mc *CPU) (uint8, error) {
	switch ar.Mode {
	case instructions.Implied, instructions.Immediate:
		return uint8(ar.Value), nil
	case instructions.Accumulator:
		return mc.A.Value(), nil
	case instructions.Unknown:
		return 0, curated.Errorf(UnknownAddressingMode, ar.Mode)
	}
	return mc.Mem.Read(ar.Value), nil
}

// resolve consumes the operand bytes for the addressing mode.
func (mc *CPU) resolve(mode instructions.AddressingMode) (AddrResult, error) {
	switch mode {
	case instructions.Implied:
		return mc.implied(), nil
	case instructions.Accumulator:
		return mc.accumulator(), nil
	case instructions.Immediate:
		return mc.immediate(), nil
	case instructions.Relative:
		return mc.relative(), nil
	case instructions.ZeroPage:
		return mc.zeroPage(), nil
	case instructions.ZeroPageIndexedX:
		return mc.zeroPageIndexed(mc.X.Value(), mode), nil
	case instructions.ZeroPageIndexedY:
		return mc.zeroPageIndexed(mc.Y.Value(), mode), nil
	case instructions.Absolute:
		return mc.absolute(), nil
	case instructions.AbsoluteIndexedX:
		return mc.absoluteIndexed(mc.X.Value(), mode), nil
	case instructions.AbsoluteIndexedY:
		return mc.absoluteIndexed(mc.Y.Value(), mode), nil
	case instructions.Indirect:
		return mc.indirect(), nil
	case instructions.IndexedIndirect:
		return mc.indexedIndirect(), nil
	case instructions.IndirectIndexed:
		return mc.indirectIndexed(), nil
	}
	return AddrResult{}, curated.Errorf(UnknownAddressingMode, mode)
}

func (mc *CPU) implied() AddrResult {
	return AddrResult{Mode: instructions.Implied}
}

func (mc *CPU) accumulator() AddrResult {
	return AddrResult{
		Value: uint16(mc.A.Value()),
		Mode:  instructions.Accumulator,
	}
}

func (mc *CPU) immediate() AddrResult {
	return AddrResult{
		Value: uint16(mc.read8BitPC()),
		Mode:  instructions.Immediate,
	}
}

// the offset is relative to the PC after the operand has been read
func (mc *CPU) relative() AddrResult {
	offset := mc.read8BitPC()
	pc := mc.PC.Address()
	target := pc + uint16(int8(offset))

	return AddrResult{
		Value:     target,
		Mode:      instructions.Relative,
		PageCross: memory.CrossesPageBoundary(pc, target),
	}
}

func (mc *CPU) zeroPage() AddrResult {
	return AddrResult{
		Value: uint16(mc.read8BitPC()),
		Mode:  instructions.ZeroPage,
	}
}

// the index is added to the operand with 8 bit arithmetic. the effective
// address never leaves the zero page
func (mc *CPU) zeroPageIndexed(index uint8, mode instructions.AddressingMode) AddrResult {
	base := mc.read8BitPC()
	ar := AddrResult{
		Value: uint16(base + index),
		Mode:  mode,
	}
	if uint16(base)+uint16(index) > 0xff {
		ar.Bug = execution.ZeroPageIndexBug
	}
	return ar
}

func (mc *CPU) absolute() AddrResult {
	return AddrResult{
		Value: mc.read16BitPC(),
		Mode:  instructions.Absolute,
	}
}

func (mc *CPU) absoluteIndexed(index uint8, mode instructions.AddressingMode) AddrResult {
	base := mc.read16BitPC()
	address := base + uint16(index)
	return AddrResult{
		Value:     address,
		Mode:      mode,
		PageCross: memory.CrossesPageBoundary(base, address),
	}
}

// if the pointer is at the end of a page then the MSB of the target address
// is read from the start of the same page
func (mc *CPU) indirect() AddrResult {
	pointer := mc.read16BitPC()
	ar := AddrResult{Mode: instructions.Indirect}

	if pointer&0x00ff == 0x00ff {
		lo := mc.Mem.Read(pointer)
		hi := mc.Mem.Read(pointer & 0xff00)
		ar.Value = uint16(hi)<<8 | uint16(lo)
		ar.Bug = execution.JmpIndirectAddressingBug
	} else {
		ar.Value = mc.Mem.Read16(pointer)
	}

	return ar
}

// (zp,X)
func (mc *CPU) indexedIndirect() AddrResult {
	pointer := mc.read8BitPC() + mc.X.Value()
	ar := AddrResult{
		Value: mc.Mem.ReadZeroPage16(pointer),
		Mode:  instructions.IndexedIndirect,
	}
	if pointer == 0xff {
		ar.Bug = execution.IndexedIndirectAddressingBug
	}
	return ar
}

// (zp),Y
func (mc *CPU) indirectIndexed() AddrResult {
	pointer := mc.read8BitPC()
	base := mc.Mem.ReadZeroPage16(pointer)
	address := base + uint16(mc.Y.Value())
	ar := AddrResult{
		Value:     address,
		Mode:      instructions.IndirectIndexed,
		PageCross: memory.CrossesPageBoundary(base, address),
	}
	if pointer == 0xff {
		ar.Bug = execution.IndexedIndirectAddressingBug
	}
	return ar
}
