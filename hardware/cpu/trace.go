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
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/mos6502/hardware/cpu/execution"
)

// the style used for trace output
const traceStyle = execution.StyleFlagAddress | execution.StyleFlagByteCode | execution.StyleFlagCycles | execution.StyleFlagColumns

// trace writes a single line describing the last instruction and the state of
// the registers after it has executed.
func (mc *CPU) trace() {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%-34s %s=%s %s=%s %s=%s %s=%s %s=%s",
		mc.LastResult.GetString(traceStyle),
		mc.A.Label(), mc.A, mc.X.Label(), mc.X, mc.Y.Label(), mc.Y,
		mc.SP.Label(), mc.SP, mc.Status.Label(), mc.Status))
	if notes := mc.LastResult.Notes(); notes != "" {
		s.WriteString(" ")
		s.WriteString(notes)
	}
	s.WriteString("\n")

	// the line is written in one call so that filtering writers see complete
	// lines
	io.WriteString(mc.Trace, s.String())
}
