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

package memory

import (
	"fmt"
	"io"
	"strings"
)

// the number of bytes on each line of a dump
const dumpWidth = 16

// Dump writes a hex dump of memory between the from and to addresses
// (inclusive) to output. Each line shows the address of the first byte, the
// hex values of the bytes and the printable ASCII values of the bytes.
//
//	0200: 01 05 00 00 00 00 00 00 00 00 00 00 00 00 00 00  ................
func (mem *Memory) Dump(output io.Writer, from uint16, to uint16) error {
	if to < from {
		return fmt.Errorf("memory: dump range is backwards (%04x to %04x)", from, to)
	}

	hex := strings.Builder{}
	asc := strings.Builder{}

	flush := func(address int) error {
		_, err := fmt.Fprintf(output, "%04x: %-*s %s\n", address, dumpWidth*3, hex.String(), asc.String())
		hex.Reset()
		asc.Reset()
		return err
	}

	// int rather than uint16 so that a dump ending at 0xffff terminates
	line := int(from)
	for a := int(from); a <= int(to); a++ {
		d := mem.data[a]
		hex.WriteString(fmt.Sprintf("%02x ", d))
		if d >= 0x20 && d < 0x7f {
			asc.WriteByte(d)
		} else {
			asc.WriteByte('.')
		}

		if (a-int(from))%dumpWidth == dumpWidth-1 {
			if err := flush(line); err != nil {
				return err
			}
			line = a + 1
		}
	}

	if hex.Len() > 0 {
		return flush(line)
	}

	return nil
}
