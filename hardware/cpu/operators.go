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
	"fmt"

	"github.com/jetsetilly/mos6502/hardware/cpu/instructions"
	"github.com/jetsetilly/mos6502/hardware/cpu/registers"
	"github.com/jetsetilly/mos6502/hardware/memory"
)

// apply the decoded instruction to the CPU.
func (mc *CPU) apply(eff Effect) error {
	var value uint8
	var err error

	// read operand
	if eff.Category == instructions.Read || eff.Category == instructions.RMW {
		value, err = eff.Addr.Resolve(mc)
		if err != nil {
			return err
		}
	}

	switch eff.Operator {
	case instructions.Nop:
		// does nothing

	case instructions.Cli:
		mc.Status.InterruptDisable = false

	case instructions.Sei:
		mc.Status.InterruptDisable = true

	case instructions.Clc:
		mc.Status.Carry = false

	case instructions.Sec:
		mc.Status.Carry = true

	case instructions.Cld:
		mc.Status.DecimalMode = false

	case instructions.Sed:
		mc.Status.DecimalMode = true

	case instructions.Clv:
		mc.Status.Overflow = false

	case instructions.Pha:
		err = mc.Push(mc.A.Value())

	case instructions.Pla:
		value, err = mc.Pop()
		mc.A.Load(value)
		mc.setZN(value)

	case instructions.Php:
		err = mc.Push(mc.Status.Value())

	case instructions.Plp:
		value, err = mc.Pop()
		mc.Status.FromValue(value)

	case instructions.Txa:
		mc.A.Load(mc.X.Value())
		mc.setZN(mc.A.Value())

	case instructions.Tax:
		mc.X.Load(mc.A.Value())
		mc.setZN(mc.X.Value())

	case instructions.Tay:
		mc.Y.Load(mc.A.Value())
		mc.setZN(mc.Y.Value())

	case instructions.Tya:
		mc.A.Load(mc.Y.Value())
		mc.setZN(mc.A.Value())

	case instructions.Tsx:
		mc.X.Load(mc.SP.Value())
		mc.setZN(mc.X.Value())

	case instructions.Txs:
		mc.SP.Load(mc.X.Value())

	case instructions.Eor:
		mc.eor(value)

	case instructions.Ora:
		mc.ora(value)

	case instructions.And:
		mc.and(value)

	case instructions.Lda:
		mc.A.Load(value)
		mc.setZN(value)

	case instructions.Ldx:
		mc.X.Load(value)
		mc.setZN(value)

	case instructions.Ldy:
		mc.Y.Load(value)
		mc.setZN(value)

	case instructions.Sta:
		mc.store(eff.Addr, mc.A.Value())

	case instructions.Stx:
		mc.store(eff.Addr, mc.X.Value())

	case instructions.Sty:
		mc.store(eff.Addr, mc.Y.Value())

	case instructions.Inx:
		mc.X.Load(mc.inc(mc.X.Value()))

	case instructions.Iny:
		mc.Y.Load(mc.inc(mc.Y.Value()))

	case instructions.Dex:
		mc.X.Load(mc.dec(mc.X.Value()))

	case instructions.Dey:
		mc.Y.Load(mc.dec(mc.Y.Value()))

	case instructions.Asl:
		value = mc.asl(value)

	case instructions.Lsr:
		value = mc.lsr(value)

	case instructions.Rol:
		value = mc.rol(value)

	case instructions.Ror:
		value = mc.ror(value)

	case instructions.Inc:
		value = mc.inc(value)

	case instructions.Dec:
		value = mc.dec(value)

	case instructions.Adc:
		mc.adc(value)

	case instructions.Sbc:
		mc.sbc(value)

	case instructions.Cmp:
		mc.compare(mc.A.Value(), value)

	case instructions.Cpx:
		mc.compare(mc.X.Value(), value)

	case instructions.Cpy:
		mc.compare(mc.Y.Value(), value)

	case instructions.Bit:
		mc.Status.Negative = value&0x80 == 0x80
		mc.Status.Overflow = value&0x40 == 0x40
		mc.Status.Zero = mc.A.Value()&value == 0

	case instructions.Bcc, instructions.Bcs, instructions.Beq, instructions.Bmi,
		instructions.Bne, instructions.Bpl, instructions.Bvc, instructions.Bvs:
		if eff.Branch {
			mc.PC.Load(eff.Addr.Value)
		}

	case instructions.Jmp:
		mc.PC.Load(eff.Addr.Value)

	case instructions.Jsr:
		// the address pushed to the stack is the address of the last byte of
		// the JSR instruction
		err = mc.PushPC(mc.PC.Address() - 1)
		if err != nil {
			return err
		}
		mc.PC.Load(eff.Addr.Value)

	case instructions.Rts:
		var address uint16
		address, err = mc.PopPC()
		if err != nil {
			return err
		}
		mc.PC.Load(address)
		mc.PC.Add(1)

	case instructions.Brk:
		// BRK has a padding byte that is read and ignored. the address pushed
		// to the stack is therefore the address of the BRK instruction plus two
		mc.read8BitPC()
		err = mc.PushPC(mc.PC.Address())
		if err != nil {
			return err
		}
		mc.Status.Break = true
		err = mc.Push(mc.Status.Value())
		if err != nil {
			return err
		}
		mc.Status.InterruptDisable = true
		mc.PC.Load(mc.Mem.Read16(memory.IRQ))

	case instructions.Rti:
		value, err = mc.Pop()
		if err != nil {
			return err
		}
		mc.Status.FromValue(value)

		// unlike RTS there is no need to add one to return address
		var address uint16
		address, err = mc.PopPC()
		if err != nil {
			return err
		}
		mc.PC.Load(address)

	default:
		value, err = mc.undocumented(eff, value)
	}

	if err != nil {
		return err
	}

	// for RMW instructions: write altered value back to memory or to the
	// accumulator
	if eff.Category == instructions.RMW {
		mc.store(eff.Addr, value)
	}

	return nil
}

// store writes the value to the location described by the addressing result.
// the accumulator is the target for the Accumulator addressing mode.
func (mc *CPU) store(ar AddrResult, value uint8) {
	if ar.Mode == instructions.Accumulator {
		mc.A.Load(value)
		return
	}
	mc.Mem.Write(ar.Value, value)
}

func (mc *CPU) setZN(value uint8) {
	mc.Status.Zero = value == 0
	mc.Status.Negative = value&0x80 == 0x80
}

func (mc *CPU) adc(value uint8) {
	mc.Status.Carry, mc.Status.Overflow = mc.A.Add(value, mc.Status.Carry)
	mc.setZN(mc.A.Value())
}

func (mc *CPU) sbc(value uint8) {
	mc.Status.Carry, mc.Status.Overflow = mc.A.Subtract(value, mc.Status.Carry)
	mc.setZN(mc.A.Value())
}

func (mc *CPU) and(value uint8) {
	mc.A.AND(value)
	mc.setZN(mc.A.Value())
}

func (mc *CPU) ora(value uint8) {
	mc.A.ORA(value)
	mc.setZN(mc.A.Value())
}

func (mc *CPU) eor(value uint8) {
	mc.A.EOR(value)
	mc.setZN(mc.A.Value())
}

// compare is a subtraction that doesn't store the result. carry is set if
// reg >= value
func (mc *CPU) compare(reg uint8, value uint8) {
	r := registers.NewRegister(reg, "cmp")
	mc.Status.Carry, _ = r.Subtract(value, true)
	mc.setZN(r.Value())
}

func (mc *CPU) inc(value uint8) uint8 {
	value++
	mc.setZN(value)
	return value
}

func (mc *CPU) dec(value uint8) uint8 {
	value--
	mc.setZN(value)
	return value
}

func (mc *CPU) asl(value uint8) uint8 {
	r := registers.NewRegister(value, "asl")
	mc.Status.Carry = r.ASL()
	mc.setZN(r.Value())
	return r.Value()
}

func (mc *CPU) lsr(value uint8) uint8 {
	r := registers.NewRegister(value, "lsr")
	mc.Status.Carry = r.LSR()
	mc.setZN(r.Value())
	return r.Value()
}

func (mc *CPU) rol(value uint8) uint8 {
	r := registers.NewRegister(value, "rol")
	mc.Status.Carry = r.ROL(mc.Status.Carry)
	mc.setZN(r.Value())
	return r.Value()
}

func (mc *CPU) ror(value uint8) uint8 {
	r := registers.NewRegister(value, "ror")
	mc.Status.Carry = r.ROR(mc.Status.Carry)
	mc.setZN(r.Value())
	return r.Value()
}

func unknownOperator(op instructions.Operator) error {
	return fmt.Errorf("cpu: unknown operator (%s)", op)
}
