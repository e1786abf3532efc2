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

// Package hardware is the base package for the 6502 emulation. The cpu
// sub-package contains the CPU and the memory sub-package the flat 64KB
// address space it operates on. Configuration of the CPU is in the
// preferences sub-package.
//
// There is no bus or memory mapped device in the emulation. Programs are
// loaded directly into memory with cpu.LoadProgram() and run with either
// Run() or Step().
package hardware
