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
	"github.com/jetsetilly/mos6502/hardware/cpu/instructions"
)

// Effect is a decoded instruction. It is created once the opcode and operand
// bytes have been read and describes everything that is required to complete
// the instruction. The Effect is applied to the CPU with apply().
type Effect struct {
	Operator instructions.Operator
	Category instructions.EffectCategory
	Addr     AddrResult

	// the number of cycles the instruction takes, including any penalties
	Cycles int

	// an extra cycle has been added because of a page crossing
	PageFault bool

	// the instruction is a branch and the branch will be taken
	Branch bool
}

// decode creates an Effect for the instruction. The status register is
// consulted for branch instructions but no state is changed.
func (mc *CPU) decode(defn *instructions.Definition, ar AddrResult) Effect {
	eff := Effect{
		Operator: defn.Operator,
		Category: defn.Effect,
		Addr:     ar,
		Cycles:   defn.Cycles,
	}

	if defn.IsBranch() {
		if mc.branchCondition(defn.Operator) {
			eff.Branch = true
			eff.Cycles++
			if ar.PageCross {
				eff.PageFault = true
				eff.Cycles++
			}
		}
	} else if defn.PageSensitive && ar.PageCross {
		eff.PageFault = true
		eff.Cycles++
	}

	return eff
}

// branchCondition returns true if the branch operator will branch given the
// current state of the status register.
func (mc *CPU) branchCondition(op instructions.Operator) bool {
	switch op {
	case instructions.Bcc:
		return !mc.Status.Carry
	case instructions.Bcs:
		return mc.Status.Carry
	case instructions.Beq:
		return mc.Status.Zero
	case instructions.Bmi:
		return mc.Status.Negative
	case instructions.Bne:
		return !mc.Status.Zero
	case instructions.Bpl:
		return !mc.Status.Negative
	case instructions.Bvc:
		return !mc.Status.Overflow
	case instructions.Bvs:
		return mc.Status.Overflow
	}
	return false
}
