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

package registers

import (
	"fmt"
)

// StackPage is the page of memory addressed by the stack pointer.
const StackPage = uint16(0x0100)

// StackPointer is the 8 bit SP register. The stack grows downwards through
// page one of memory.
type StackPointer struct {
	value uint8
}

// NewStackPointer is the preferred method of initialisation for
// StackPointer.
func NewStackPointer(val uint8) StackPointer {
	return StackPointer{value: val}
}

// Label returns an identifying string for the SP.
func (sp StackPointer) Label() string {
	return "SP"
}

func (sp StackPointer) String() string {
	return fmt.Sprintf("%02x", sp.value)
}

// Value returns the current value of the SP.
func (sp StackPointer) Value() uint8 {
	return sp.value
}

// Address returns the memory address the SP points to.
func (sp StackPointer) Address() uint16 {
	return StackPage | uint16(sp.value)
}

// Load a value into the SP.
func (sp *StackPointer) Load(val uint8) {
	sp.value = val
}

// Push moves the SP down by one, after the value has been written to
// Address(). Returns true if the SP has wrapped around the stack page.
func (sp *StackPointer) Push() (wrapped bool) {
	wrapped = sp.value == 0x00
	sp.value--
	return wrapped
}

// Pop moves the SP up by one, before the value is read from Address().
// Returns true if the SP has wrapped around the stack page.
func (sp *StackPointer) Pop() (wrapped bool) {
	wrapped = sp.value == 0xff
	sp.value++
	return wrapped
}
