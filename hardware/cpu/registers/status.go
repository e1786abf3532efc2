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
	"strings"
)

// the bits of the status register in its uint8 form.
const (
	negativeBit    = 0x80
	overflowBit    = 0x40
	unusedBit      = 0x20
	breakBit       = 0x10
	decimalBit     = 0x08
	interruptBit   = 0x04
	zeroBit        = 0x02
	carryBit       = 0x01
	statusRegLabel = "SR"
)

// StatusRegister is the special purpose register that stores the flags of the CPU.
type StatusRegister struct {
	Negative         bool
	Overflow         bool
	Break            bool
	DecimalMode      bool
	InterruptDisable bool
	Zero             bool
	Carry            bool
}

// NewStatusRegister is the preferred method of initialisation for the status
// register.
func NewStatusRegister() StatusRegister {
	return StatusRegister{}
}

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return statusRegLabel
}

// String returns the flags as a string. Set flags are upper case, cleared
// flags lower case. The unused bit is shown as a hyphen.
//
//	nv-bdizc
func (sr StatusRegister) String() string {
	s := strings.Builder{}

	flag := func(set bool, r rune) {
		if set {
			s.WriteRune(r - 'a' + 'A')
		} else {
			s.WriteRune(r)
		}
	}

	flag(sr.Negative, 'n')
	flag(sr.Overflow, 'v')
	s.WriteRune('-')
	flag(sr.Break, 'b')
	flag(sr.DecimalMode, 'd')
	flag(sr.InterruptDisable, 'i')
	flag(sr.Zero, 'z')
	flag(sr.Carry, 'c')

	return s.String()
}

// Reset status flags to initial state.
func (sr *StatusRegister) Reset() {
	sr.FromValue(0)
}

// Value converts the StatusRegister struct into a value suitable for pushing
// onto the stack. The unused bit is always set.
func (sr StatusRegister) Value() uint8 {
	v := uint8(unusedBit)

	if sr.Negative {
		v |= negativeBit
	}
	if sr.Overflow {
		v |= overflowBit
	}
	if sr.Break {
		v |= breakBit
	}
	if sr.DecimalMode {
		v |= decimalBit
	}
	if sr.InterruptDisable {
		v |= interruptBit
	}
	if sr.Zero {
		v |= zeroBit
	}
	if sr.Carry {
		v |= carryBit
	}

	return v
}

// FromValue converts an 8 bit integer (taken from the stack, for example) to
// the StatusRegister struct receiver.
func (sr *StatusRegister) FromValue(v uint8) {
	sr.Negative = v&negativeBit == negativeBit
	sr.Overflow = v&overflowBit == overflowBit
	sr.Break = v&breakBit == breakBit
	sr.DecimalMode = v&decimalBit == decimalBit
	sr.InterruptDisable = v&interruptBit == interruptBit
	sr.Zero = v&zeroBit == zeroBit
	sr.Carry = v&carryBit == carryBit
}
