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

// Package cartridgeloader reads 6502 program images from disk or over HTTP
// and prepares them for loading into memory with cpu.LoadProgram().
//
// An image may be preceded by a header that is not part of the program. A
// fixed number of leading bytes can be skipped with the Skip field. iNES
// images, as used by NES emulators, are recognised by their magic number and
// the header (and the trainer if present) is removed. In that case only the
// PRG ROM section of the file is kept.
package cartridgeloader
