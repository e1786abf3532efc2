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

package instructions

// Operator defines which operation an instruction performs.
type Operator int

// List of documented operators.
const (
	NoOperator Operator = iota

	Adc
	And
	Asl
	Bcc
	Bcs
	Beq
	Bit
	Bmi
	Bne
	Bpl
	Brk
	Bvc
	Bvs
	Clc
	Cld
	Cli
	Clv
	Cmp
	Cpx
	Cpy
	Dec
	Dex
	Dey
	Eor
	Inc
	Inx
	Iny
	Jmp
	Jsr
	Lda
	Ldx
	Ldy
	Lsr
	Nop
	Ora
	Pha
	Php
	Pla
	Plp
	Rol
	Ror
	Rti
	Rts
	Sbc
	Sec
	Sed
	Sei
	Sta
	Stx
	Sty
	Tax
	Tay
	Tsx
	Txa
	Txs
	Tya
)

// List of undocumented operators. The names are all upper case to
// distinguish them from the documented operators.
const (
	// implied no-operation
	NOP Operator = iota + Tya + 1
	// double NOP. reads and discards an operand byte
	DOP
	// triple NOP. reads and discards an absolute operand
	TOP
	// LDA + LDX
	LAX
	// store A AND X
	SAX
	// identical to the documented SBC immediate
	SBC
	// DEC + CMP
	DCP
	// INC + SBC
	ISC
	// ASL + ORA
	SLO
	// ROL + AND
	RLA
	// LSR + EOR
	SRE
	// ROR + ADC
	RRA
	// AND with N copied to C
	ANC
	// AND + LSR. also known as ALR
	ASR
	// AND + ROR with unusual flags
	ARR
	// X = (A AND X) - operand. also known as SBX
	AXS
	// unstable. A = X AND operand
	XAA
	// store A AND X AND (high byte + 1)
	AHX
	// SP = A AND X then store SP AND (high byte + 1)
	TAS
	// store Y AND (high byte + 1)
	SHY
	// store X AND (high byte + 1)
	SHX
	// A, X and SP = memory AND SP
	LAS
)

// the mnemonic for each operator. undocumented operators use the most common
// name, which is sometimes the same as a documented operator.
var mnemonics = map[Operator]string{
	Adc: "ADC",
	And: "AND",
	Asl: "ASL",
	Bcc: "BCC",
	Bcs: "BCS",
	Beq: "BEQ",
	Bit: "BIT",
	Bmi: "BMI",
	Bne: "BNE",
	Bpl: "BPL",
	Brk: "BRK",
	Bvc: "BVC",
	Bvs: "BVS",
	Clc: "CLC",
	Cld: "CLD",
	Cli: "CLI",
	Clv: "CLV",
	Cmp: "CMP",
	Cpx: "CPX",
	Cpy: "CPY",
	Dec: "DEC",
	Dex: "DEX",
	Dey: "DEY",
	Eor: "EOR",
	Inc: "INC",
	Inx: "INX",
	Iny: "INY",
	Jmp: "JMP",
	Jsr: "JSR",
	Lda: "LDA",
	Ldx: "LDX",
	Ldy: "LDY",
	Lsr: "LSR",
	Nop: "NOP",
	Ora: "ORA",
	Pha: "PHA",
	Php: "PHP",
	Pla: "PLA",
	Plp: "PLP",
	Rol: "ROL",
	Ror: "ROR",
	Rti: "RTI",
	Rts: "RTS",
	Sbc: "SBC",
	Sec: "SEC",
	Sed: "SED",
	Sei: "SEI",
	Sta: "STA",
	Stx: "STX",
	Sty: "STY",
	Tax: "TAX",
	Tay: "TAY",
	Tsx: "TSX",
	Txa: "TXA",
	Txs: "TXS",
	Tya: "TYA",
	NOP: "NOP",
	DOP: "DOP",
	TOP: "TOP",
	LAX: "LAX",
	SAX: "SAX",
	SBC: "SBC",
	DCP: "DCP",
	ISC: "ISC",
	SLO: "SLO",
	RLA: "RLA",
	SRE: "SRE",
	RRA: "RRA",
	ANC: "ANC",
	ASR: "ASR",
	ARR: "ARR",
	AXS: "AXS",
	XAA: "XAA",
	AHX: "AHX",
	TAS: "TAS",
	SHY: "SHY",
	SHX: "SHX",
	LAS: "LAS",
}

// String returns the mnemonic for the operator.
func (op Operator) String() string {
	if m, ok := mnemonics[op]; ok {
		return m
	}
	return "???"
}
