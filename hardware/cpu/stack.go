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
	"github.com/jetsetilly/mos6502/logger"
)

// Push writes the value to the stack page and decrements the stack pointer.
//
// Returns the StackOverflow error if the stack pointer wraps around and the
// cpu.abortOnStackFault preference is set.
func (mc *CPU) Push(v uint8) error {
	mc.Mem.Write(mc.SP.Address(), v)
	if mc.SP.Push() {
		return mc.stackFault(StackOverflow)
	}
	return nil
}

// Pop increments the stack pointer and returns the value on the stack page
// that it then points to.
//
// Returns the StackUnderflow error if the stack pointer wraps around and the
// cpu.abortOnStackFault preference is set.
func (mc *CPU) Pop() (uint8, error) {
	if mc.SP.Pop() {
		if err := mc.stackFault(StackUnderflow); err != nil {
			return 0, err
		}
	}
	return mc.Mem.Read(mc.SP.Address()), nil
}

// PushPC pushes a 16 bit address to the stack. The MSB is pushed first.
func (mc *CPU) PushPC(address uint16) error {
	if err := mc.Push(uint8(address >> 8)); err != nil {
		return err
	}
	return mc.Push(uint8(address))
}

// PopPC pops a 16 bit address from the stack. The LSB is popped first.
func (mc *CPU) PopPC() (uint16, error) {
	lo, err := mc.Pop()
	if err != nil {
		return 0, err
	}
	hi, err := mc.Pop()
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

func (mc *CPU) stackFault(pattern string) error {
	err := curated.Errorf(pattern, mc.LastResult.Address)
	if mc.prefs.AbortOnStackFault.Get().(bool) {
		return err
	}
	logger.Log(logger.Allow, "CPU", err)
	return nil
}
