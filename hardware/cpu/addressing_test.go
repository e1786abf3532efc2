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
	"testing"

	"github.com/jetsetilly/mos6502/curated"
	"github.com/jetsetilly/mos6502/hardware/cpu/execution"
	"github.com/jetsetilly/mos6502/hardware/cpu/instructions"
	"github.com/jetsetilly/mos6502/test"
)

func TestImmediate(t *testing.T) {
	mc := NewCPU(nil)
	mc.PC.Load(0xfe)
	mc.Mem.Write(0xfe, 0xbe)

	ar := mc.immediate()
	test.ExpectEquality(t, ar.Value, uint16(0xbe))
	test.ExpectEquality(t, ar.Mode, instructions.Immediate)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0xff))

	v, err := ar.Resolve(mc)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0xbe))
}

func TestAccumulator(t *testing.T) {
	mc := NewCPU(nil)
	mc.A.Load(0x42)

	ar := mc.accumulator()
	test.ExpectEquality(t, ar.Mode, instructions.Accumulator)

	v, err := ar.Resolve(mc)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0x42))
}

func TestRelative(t *testing.T) {
	mc := NewCPU(nil)

	// the BNE instruction starts at 0xbead. the offset is relative to the
	// address following the operand (0xbeaf)
	mc.PC.Load(0xbeae)
	mc.Mem.Write(0xbeae, 0x40)
	ar := mc.relative()
	test.ExpectEquality(t, ar.Value, uint16(0xbeef))
	test.ExpectEquality(t, ar.PageCross, false)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0xbeaf))

	// backwards into the previous page
	mc.PC.Load(0x0200)
	mc.Mem.Write(0x0200, 0xfd)
	ar = mc.relative()
	test.ExpectEquality(t, ar.Value, uint16(0x01fe))
	test.ExpectEquality(t, ar.PageCross, true)

	// forwards into the next page
	mc.PC.Load(0x02f0)
	mc.Mem.Write(0x02f0, 0x7f)
	ar = mc.relative()
	test.ExpectEquality(t, ar.Value, uint16(0x0370))
	test.ExpectEquality(t, ar.PageCross, true)
}

func TestZeroPage(t *testing.T) {
	mc := NewCPU(nil)
	mc.PC.Load(0x0e)
	mc.Mem.Write(0x0e, 0x05)
	mc.Mem.Write(0x05, 0x99)

	ar := mc.zeroPage()
	test.ExpectEquality(t, ar.Value, uint16(0x05))

	v, err := ar.Resolve(mc)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0x99))
}

func TestZeroPageIndexed(t *testing.T) {
	mc := NewCPU(nil)

	mc.PC.Load(0xfe)
	mc.Mem.Write(0xfe, 0xbe)
	ar := mc.zeroPageIndexed(mc.X.Value(), instructions.ZeroPageIndexedX)
	test.ExpectEquality(t, ar.Value, uint16(0xbe))
	test.ExpectEquality(t, ar.Bug, execution.NoBug)

	// index wraps around to the start of the zero page
	mc.PC.Load(0x0600)
	mc.Mem.Write(0x0600, 0xff)
	mc.Y.Load(0x02)
	ar = mc.zeroPageIndexed(mc.Y.Value(), instructions.ZeroPageIndexedY)
	test.ExpectEquality(t, ar.Value, uint16(0x01))
	test.ExpectEquality(t, ar.Mode, instructions.ZeroPageIndexedY)
	test.ExpectEquality(t, ar.PageCross, false)
	test.ExpectEquality(t, ar.Bug, execution.ZeroPageIndexBug)
}

func TestAbsolute(t *testing.T) {
	mc := NewCPU(nil)
	mc.PC.Load(0xfe)
	mc.Mem.Write(0xfe, 0xef, 0xbe)

	ar := mc.absolute()
	test.ExpectEquality(t, ar.Value, uint16(0xbeef))
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x100))
}

func TestAbsoluteIndexed(t *testing.T) {
	mc := NewCPU(nil)

	mc.PC.Load(0xfe)
	mc.X.Load(0x01)
	mc.Mem.Write(0xfe, 0xee, 0xbe)
	ar := mc.absoluteIndexed(mc.X.Value(), instructions.AbsoluteIndexedX)
	test.ExpectEquality(t, ar.Value, uint16(0xbeef))
	test.ExpectEquality(t, ar.PageCross, false)

	mc.PC.Load(0xfe)
	mc.Y.Load(0x01)
	ar = mc.absoluteIndexed(mc.Y.Value(), instructions.AbsoluteIndexedY)
	test.ExpectEquality(t, ar.Value, uint16(0xbeef))
	test.ExpectEquality(t, ar.Mode, instructions.AbsoluteIndexedY)

	// 0x01ff + 0x01 crosses into the next page
	mc.PC.Load(0x0600)
	mc.Mem.Write(0x0600, 0xff, 0x01)
	ar = mc.absoluteIndexed(mc.X.Value(), instructions.AbsoluteIndexedX)
	test.ExpectEquality(t, ar.Value, uint16(0x0200))
	test.ExpectEquality(t, ar.PageCross, true)

	// wraps around the top of memory
	mc.PC.Load(0x0600)
	mc.Mem.Write(0x0600, 0xff, 0xff)
	ar = mc.absoluteIndexed(mc.X.Value(), instructions.AbsoluteIndexedX)
	test.ExpectEquality(t, ar.Value, uint16(0x0000))
	test.ExpectEquality(t, ar.PageCross, true)
}

func TestIndirect(t *testing.T) {
	mc := NewCPU(nil)

	mc.PC.Load(0x0600)
	mc.Mem.Write(0x0600, 0x00, 0x03)
	mc.Mem.Write(0x0300, 0xef, 0xbe)
	ar := mc.indirect()
	test.ExpectEquality(t, ar.Value, uint16(0xbeef))
	test.ExpectEquality(t, ar.Bug, execution.NoBug)

	// pointer at the end of a page. the MSB of the target address comes from
	// the start of the same page
	mc.PC.Load(0x0600)
	mc.Mem.Write(0x0600, 0xff, 0x02)
	mc.Mem.Write(0x02ff, 0x34)
	mc.Mem.Write(0x0200, 0x12)
	mc.Mem.Write(0x0300, 0x56)
	ar = mc.indirect()
	test.ExpectEquality(t, ar.Value, uint16(0x1234))
	test.ExpectEquality(t, ar.Bug, execution.JmpIndirectAddressingBug)
}

func TestIndexedIndirect(t *testing.T) {
	mc := NewCPU(nil)

	mc.PC.Load(0xfd)
	mc.X.Load(0x01)
	mc.Mem.Write(0xfd, 0xbd)
	mc.Mem.Write(0xbe, 0xef)
	ar := mc.indexedIndirect()
	test.ExpectEquality(t, ar.Value, uint16(0x00ef))
	test.ExpectEquality(t, ar.Bug, execution.NoBug)

	// pointer at the end of the zero page
	mc.PC.Load(0x0600)
	mc.Mem.Write(0x0600, 0xfe)
	mc.Mem.Write(0xff, 0x34)
	mc.Mem.Write(0x00, 0x12)
	ar = mc.indexedIndirect()
	test.ExpectEquality(t, ar.Value, uint16(0x1234))
	test.ExpectEquality(t, ar.Bug, execution.IndexedIndirectAddressingBug)

	// index addition wraps within the zero page
	mc.PC.Load(0x0600)
	mc.X.Load(0x10)
	mc.Mem.Write(0x0600, 0xf8)
	mc.Mem.Write(0x08, 0x00, 0x07)
	ar = mc.indexedIndirect()
	test.ExpectEquality(t, ar.Value, uint16(0x0700))
}

func TestIndirectIndexed(t *testing.T) {
	mc := NewCPU(nil)

	mc.PC.Load(0xfd)
	mc.Y.Load(0x01)
	mc.Mem.Write(0xfd, 0xfe, 0xee, 0xbe)
	ar := mc.indirectIndexed()
	test.ExpectEquality(t, ar.Value, uint16(0xbeef))
	test.ExpectEquality(t, ar.PageCross, false)

	// index addition crosses a page
	mc.PC.Load(0x0600)
	mc.Mem.Write(0x0600, 0x10)
	mc.Mem.Write(0x10, 0xff, 0x01)
	ar = mc.indirectIndexed()
	test.ExpectEquality(t, ar.Value, uint16(0x0200))
	test.ExpectEquality(t, ar.PageCross, true)
}

func TestUnknownAddressingMode(t *testing.T) {
	mc := NewCPU(nil)

	_, err := mc.resolve(instructions.Unknown)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, UnknownAddressingMode), true)

	_, err = AddrResult{Mode: instructions.Unknown}.Resolve(mc)
	test.ExpectEquality(t, curated.Is(err, UnknownAddressingMode), true)
}

func TestResolveAllModes(t *testing.T) {
	// every addressing mode used by the instruction table must be resolvable
	mc := NewCPU(nil)
	for _, defn := range instructions.GetDefinitions() {
		if defn == nil {
			continue
		}
		mc.PC.Load(0x0600)
		ar, err := mc.resolve(defn.AddressingMode)
		test.ExpectSuccess(t, err, defn)
		test.ExpectEquality(t, ar.Mode, defn.AddressingMode, defn)
		test.ExpectEquality(t, int(mc.PC.Address()-0x0600), defn.AddressingMode.Bytes()-1, defn)
	}
}
