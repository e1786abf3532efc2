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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/mos6502/hardware/cpu"
	"github.com/jetsetilly/mos6502/hardware/cpu/execution"
	"github.com/jetsetilly/mos6502/test"
)

// the address at which test programs are loaded
const origin = 0x0600

// newCPU creates a CPU with the default preferences, loads the program at
// origin and resets the CPU.
func newCPU(t *testing.T, program ...uint8) *cpu.CPU {
	t.Helper()
	mc := cpu.NewCPU(nil)
	mc.LoadProgram(origin, program)
	mc.Reset()
	return mc
}

// step executes the next instruction and checks the validity of the result.
func step(t *testing.T, mc *cpu.CPU) execution.Result {
	t.Helper()
	test.DemandSuccess(t, mc.ExecuteInstruction())
	test.DemandSuccess(t, mc.LastResult.IsValid())
	return mc.LastResult
}
