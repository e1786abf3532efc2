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

package disassembly

import (
	"fmt"
	"io"

	"github.com/jetsetilly/mos6502/hardware/cpu/execution"
)

// Write the disassembly to output. Blessed entries are written using the
// supplied style and all other bytes are written as data.
func (dsm *Disassembly) Write(output io.Writer, style execution.Style) error {
	for i := 0; i < len(dsm.entries); {
		address := dsm.Origin + uint16(i)

		e := dsm.entries[i]
		if e != nil && e.Level == EntryLevelBlessed {
			if err := dsm.WriteLine(output, style, e); err != nil {
				return err
			}
			i += e.Result.ByteCount
			continue
		}

		if _, err := fmt.Fprintf(output, "%s\n", dsm.data(style, address)); err != nil {
			return err
		}
		i++
	}

	return nil
}

// WriteLine writes a single Entry to output.
func (dsm *Disassembly) WriteLine(output io.Writer, style execution.Style, e *Entry) error {
	_, err := fmt.Fprintf(output, "%s\n", e.Result.GetString(style))
	return err
}

// data line in a layout similar to an instruction of the same style.
func (dsm *Disassembly) data(style execution.Style, address uint16) string {
	d := dsm.mem.Read(address)

	s := fmt.Sprintf("%04x", address)
	if style.Has(execution.StyleFlagByteCode) {
		if style.Has(execution.StyleFlagColumns) {
			s = fmt.Sprintf("%s %-8s", s, fmt.Sprintf("%02x", d))
		} else {
			s = fmt.Sprintf("%s %02x", s, d)
		}
	}

	return fmt.Sprintf("%s .byte $%02x", s, d)
}
