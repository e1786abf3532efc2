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

// Package memory implements the address space of the 6502. Memory is a flat
// 64KiB array of bytes. There are no mapped devices and no mirrors.
//
// 16 bit values are little-endian. Reads of 16 bit values that begin at the
// last byte of the address space wrap around to the first byte.
//
// Address arithmetic is the responsibility of the caller. The helper
// functions in this package are all total: every uint16 is a valid address
// and no function returns an error.
package memory
