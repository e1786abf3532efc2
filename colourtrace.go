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

package main

import (
	"bytes"
	"io"
	"strings"

	"github.com/jetsetilly/mos6502/ansi"
)

// colourTrace colourises trace output line by line. Lines that are not in the
// trace format are written unchanged.
type colourTrace struct {
	output io.Writer

	// terminal is in raw mode and needs a carriage return with every newline
	crlf bool

	// incomplete line from previous writes
	buf []byte
}

func newColourTrace(output io.Writer, crlf bool) *colourTrace {
	return &colourTrace{
		output: output,
		crlf:   crlf,
	}
}

// Write implements the io.Writer interface.
func (ct *colourTrace) Write(p []byte) (int, error) {
	ct.buf = append(ct.buf, p...)
	for {
		i := bytes.IndexByte(ct.buf, '\n')
		if i < 0 {
			break
		}
		line := string(ct.buf[:i])
		ct.buf = ct.buf[i+1:]
		if err := ct.writeLine(line); err != nil {
			return 0, err
		}
	}
	return len(p), nil
}

// width of the status register in the trace output
const statusWidth = 8

func (ct *colourTrace) writeLine(line string) error {
	s := strings.Builder{}

	regs := strings.Index(line, " A=")
	sr := strings.Index(line, "SR=")
	if len(line) < 4 || regs < 4 || sr < regs || len(line) < sr+3+statusWidth {
		s.WriteString(line)
	} else {
		notes := sr + 3 + statusWidth
		s.WriteString(ansi.DimPens["cyan"])
		s.WriteString(line[:4])
		s.WriteString(ansi.Pens["yellow"])
		s.WriteString(line[4:regs])
		s.WriteString(ansi.NormalPen)
		s.WriteString(line[regs:notes])
		if notes < len(line) {
			s.WriteString(ansi.Pens["red"])
			s.WriteString(line[notes:])
			s.WriteString(ansi.NormalPen)
		}
	}

	if ct.crlf {
		s.WriteString("\r")
	}
	s.WriteString("\n")

	_, err := io.WriteString(ct.output, s.String())
	return err
}
