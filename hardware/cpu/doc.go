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

// Package cpu emulates the MOS 6502 microprocessor. Like all 8-bit processors
// of the era, the 6502 executes instructions according to the single byte
// value read from an address pointed to by the program counter. This single
// byte is the opcode and is looked up in the instruction table. The
// instruction definition for that opcode is then used to move execution of
// the program forward.
//
// Memory is a flat 64KiB array. Programs are placed into memory with
// LoadProgram(), which also sets the reset vector to the start of the program
// and the IRQ/BRK vector to the top of memory. An unhandled BRK will
// therefore cause the CPU to halt.
//
//	mc := cpu.NewCPU(nil)
//	mc.LoadProgram(0x0600, program)
//	err := mc.Run()
//
// The Step() function advances the CPU by a single cycle. An instruction
// costing N cycles is executed by the first of N calls to Step(). The
// remaining calls do nothing but count down the pending cycles.
//
// Execution of an instruction happens in two phases. The decode phase reads
// the opcode and operands, advancing the program counter, and produces an
// Effect value. The Effect contains everything needed to complete the
// instruction, including the number of cycles the instruction will take. The
// Effect is then applied to the CPU.
//
// The LastResult field can be probed for information about the last
// instruction executed. See the execution package for more information. Very
// useful for debuggers.
package cpu
