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

// Package instructions defines the instruction set of the 6502, including the
// undocumented instructions that are stable enough to be used by real
// software.
//
// The table of definitions is generated from instructions.csv by the program
// in the generator directory. Use "go generate" after changing the CSV file.
//
// Definitions are retrieved by opcode with the GetDefinitions() function. An
// opcode with no definition is nil in the table. The KIL (or JAM) opcodes are
// not defined.
package instructions

//go:generate go run ./generator
