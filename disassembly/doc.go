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

// Package disassembly decodes 6502 programs from the memory of a CPU without
// executing them.
//
// Every address in the program is first decoded as though it was the start of
// an instruction. Entries are then blessed by following the flow of the
// program from the origin and the reset vector. Blessed entries are deemed to
// be real instructions and everything else is presented as data.
package disassembly
