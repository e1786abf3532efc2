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
	"io"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/mos6502/hardware/cpu/execution"
)

// the part of the CPU that is included in the output of Visualise(). memory
// is not included
type visualisation struct {
	PC         uint16
	A          uint8
	X          uint8
	Y          uint8
	SP         uint8
	Status     string
	State      string
	Cycles     uint64
	LastResult *execution.Result
}

// Visualise writes a graphviz representation of the CPU registers and the
// last execution result to output.
func (mc *CPU) Visualise(output io.Writer) {
	res := mc.LastResult
	memviz.Map(output, &visualisation{
		PC:         mc.PC.Address(),
		A:          mc.A.Value(),
		X:          mc.X.Value(),
		Y:          mc.Y.Value(),
		SP:         mc.SP.Value(),
		Status:     mc.Status.String(),
		State:      mc.state.String(),
		Cycles:     mc.cycles,
		LastResult: &res,
	})
}
