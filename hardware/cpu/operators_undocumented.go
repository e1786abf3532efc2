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
	"github.com/jetsetilly/mos6502/hardware/cpu/registers"
)

// undocumented applies the undocumented operators. most of them are the
// composition of two documented operations applied to the same address.
//
// returns the value to be written back for RMW instructions.
func (mc *CPU) undocumented(eff Effect, value uint8) (uint8, error) {
	switch eff.Operator {
	case instructions.NOP, instructions.DOP, instructions.TOP:
		// operand has been read and is ignored

	case instructions.SBC:
		// identical to the documented SBC immediate
		mc.sbc(value)

	case instructions.LAX:
		mc.A.Load(value)
		mc.X.Load(value)
		mc.setZN(value)

	case instructions.SAX:
		mc.store(eff.Addr, mc.A.Value()&mc.X.Value())

	case instructions.DCP:
		value = mc.dec(value)
		mc.compare(mc.A.Value(), value)

	case instructions.ISC:
		value = mc.inc(value)
		mc.sbc(value)

	case instructions.SLO:
		value = mc.asl(value)
		mc.ora(value)

	case instructions.RLA:
		value = mc.rol(value)
		mc.and(value)

	case instructions.SRE:
		value = mc.lsr(value)
		mc.eor(value)

	case instructions.RRA:
		value = mc.ror(value)
		mc.adc(value)

	case instructions.ANC:
		// bit 7 of the result is copied into the carry flag as though ASL had
		// been performed
		mc.and(value)
		mc.Status.Carry = mc.Status.Negative

	case instructions.ASR:
		mc.and(value)
		mc.A.Load(mc.lsr(mc.A.Value()))

	case instructions.ARR:
		mc.A.AND(value)
		mc.A.ROR(mc.Status.Carry)
		mc.setZN(mc.A.Value())
		mc.Status.Carry = mc.A.Value()&0x40 == 0x40
		mc.Status.Overflow = (mc.A.Value()>>6)&0x01 != (mc.A.Value()>>5)&0x01

	case instructions.AXS:
		// the subtraction behaves like CMP as far as the flags are concerned
		r := registers.NewRegister(mc.A.Value()&mc.X.Value(), "axs")
		mc.Status.Carry, _ = r.Subtract(value, true)
		mc.X.Load(r.Value())
		mc.setZN(r.Value())

	case instructions.XAA:
		// the real instruction is unstable. this is the most common
		// interpretation
		mc.A.Load(mc.X.Value() & value)
		mc.setZN(mc.A.Value())

	case instructions.AHX:
		mc.store(eff.Addr, mc.A.Value()&mc.X.Value()&highByteInc(eff.Addr))

	case instructions.TAS:
		mc.SP.Load(mc.A.Value() & mc.X.Value())
		mc.store(eff.Addr, mc.SP.Value()&highByteInc(eff.Addr))

	case instructions.SHY:
		mc.store(eff.Addr, mc.Y.Value()&highByteInc(eff.Addr))

	case instructions.SHX:
		mc.store(eff.Addr, mc.X.Value()&highByteInc(eff.Addr))

	case instructions.LAS:
		value &= mc.SP.Value()
		mc.A.Load(value)
		mc.X.Load(value)
		mc.SP.Load(value)
		mc.setZN(value)

	default:
		return value, unknownOperator(eff.Operator)
	}

	return value, nil
}

// the high byte of the effective address plus one. used by the unstable store
// instructions
func highByteInc(ar AddrResult) uint8 {
	return uint8(ar.Value>>8) + 1
}
