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

// Package registers implements the three types of registers found in the 6502:
//
//	8 bit registers (A, X and Y)
//	the program counter
//	the stack pointer
//	the status register
//
// The 8 bit registers implement the arithmetic and logical operations of the
// CPU. Flags are not set by the registers. That is the job of the CPU, which
// is the only thing that knows which flags an instruction affects. For
// instance, in the CPU, we might have this sequence of function calls:
//
//	a.Load(10)
//	a.Subtract(11, true)
//	sr.Zero = a.IsZero()
//
// In this case, the zero flag in the status register will be false.
//
// The stack pointer is an 8 bit value that always addresses page one of
// memory. Push and Pop report when the pointer wraps around the page so that
// the CPU can treat the event as a fault.
package registers
