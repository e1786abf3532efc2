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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/mos6502/ansi"
	"github.com/jetsetilly/mos6502/modalflag"
	"github.com/jetsetilly/mos6502/test"
)

// LDA #$01; STA $0200; BRK
var program = []byte{0xa9, 0x01, 0x8d, 0x00, 0x02, 0x00}

func runArgs(t *testing.T, trace bool, args ...string) (string, error) {
	t.Helper()

	dir := t.TempDir()
	args = append([]string{"-prefsfile", filepath.Join(dir, "preferences")}, args...)

	out := &test.CompareWriter{}
	md := &modalflag.Modes{Output: out}
	md.NewArgs(args)
	err := run(md, out, trace)
	return out.String(), err
}

func writeProgram(t *testing.T, data []byte) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "program.bin")
	test.DemandSuccess(t, os.WriteFile(fn, data, 0o600))
	return fn
}

func TestRun(t *testing.T) {
	fn := writeProgram(t, program)

	out, err := runArgs(t, false, fn)
	test.ExpectSuccess(t, err)

	// BRK with the default IRQ vector halts the CPU
	test.ExpectEquality(t, strings.Contains(out, "PC=ffff A=01"), true)
	test.ExpectEquality(t, strings.Contains(out, "[13 cycles]"), true)
}

func TestRunDump(t *testing.T) {
	fn := writeProgram(t, append([]byte{0xff, 0xff, 0xff}, program...))

	out, err := runArgs(t, false, "-skip", "3", "-dump", fn)
	test.ExpectSuccess(t, err)

	// three bytes were pushed by BRK. the stack pointer was 0xfd before the
	// push
	test.ExpectEquality(t, strings.Contains(out, "SP=fa"), true)
	test.ExpectEquality(t, strings.Contains(out, "0000: 00 00"), true)
	test.ExpectEquality(t, strings.Contains(out, "01f0: "), true)
}

func TestRunPrefs(t *testing.T) {
	fn := writeProgram(t, program)

	out, err := runArgs(t, false, "-prefs", "cpu.initialSP::0xff", fn)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, strings.Contains(out, "SP=fc"), true)
}

func TestRunOrigin(t *testing.T) {
	fn := writeProgram(t, program)

	out, err := runArgs(t, true, "-origin", "0x1000", fn)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, strings.HasPrefix(out, "1000 a9 01"), true)
}

func TestTrace(t *testing.T) {
	fn := writeProgram(t, program)

	out, err := runArgs(t, true, fn)
	test.ExpectSuccess(t, err)

	lines := strings.Split(out, "\n")
	test.DemandEquality(t, len(lines) > 3, true)
	test.ExpectEquality(t, lines[0], "0600 a9 01    LDA #$01      [2]    A=01 X=00 Y=00 SP=fd SR=nv-bdizc")
	test.ExpectEquality(t, lines[1], "0602 8d 00 02 STA $0200     [4]    A=01 X=00 Y=00 SP=fd SR=nv-bdizc")
	test.ExpectEquality(t, strings.HasPrefix(lines[2], "0605 00       BRK"), true)
}

func TestRunErrors(t *testing.T) {
	fn := writeProgram(t, program)

	_, err := runArgs(t, false)
	test.ExpectFailure(t, err)

	_, err = runArgs(t, false, fn, fn)
	test.ExpectFailure(t, err)

	_, err = runArgs(t, false, "-step", fn)
	test.ExpectFailure(t, err)

	_, err = runArgs(t, false, filepath.Join(t.TempDir(), "missing.bin"))
	test.ExpectFailure(t, err)

	_, err = runArgs(t, false, "-origin", "0xfffe", fn)
	test.ExpectFailure(t, err)

	// undefined opcode
	fn = writeProgram(t, []byte{0x02})
	_, err = runArgs(t, false, fn)
	test.ExpectFailure(t, err)
}

func TestColourTrace(t *testing.T) {
	out := &bytes.Buffer{}
	ct := newColourTrace(out, false)

	// line is split over two writes
	_, err := ct.Write([]byte("0600 a9 01    LDA #$01      [2]    A=01 X=00 Y=00 SP=fd SR=nv-bd"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, out.Len(), 0)
	_, err = ct.Write([]byte("izc page-fault\nunformatted\n"))
	test.ExpectSuccess(t, err)

	expected := ansi.DimPens["cyan"] + "0600" +
		ansi.Pens["yellow"] + " a9 01    LDA #$01      [2]   " +
		ansi.NormalPen + " A=01 X=00 Y=00 SP=fd SR=nv-bdizc" +
		ansi.Pens["red"] + " page-fault" + ansi.NormalPen + "\n" +
		"unformatted\n"
	test.ExpectEquality(t, out.String(), expected)

	out.Reset()
	ct = newColourTrace(out, true)
	_, err = ct.Write([]byte("unformatted\n"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, out.String(), "unformatted\r\n")
}

func TestWaitForKey(t *testing.T) {
	cont, err := waitForKey(strings.NewReader(" "))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, cont, true)

	cont, err = waitForKey(strings.NewReader("q"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, cont, false)

	cont, err = waitForKey(strings.NewReader("\x03"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, cont, false)

	cont, err = waitForKey(strings.NewReader(""))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, cont, false)
}

func TestDisasm(t *testing.T) {
	// BRK padding byte is required for the BRK to be disassembled
	fn := writeProgram(t, append(program, 0x00))

	out := &bytes.Buffer{}
	md := &modalflag.Modes{Output: out}
	md.NewArgs([]string{fn})
	test.ExpectSuccess(t, disasm(md, out))
	test.ExpectEquality(t, out.String(), "0600 LDA #$01\n0602 STA $0200\n0605 BRK\n")

	out.Reset()
	md.NewArgs([]string{"-grep", "sta", fn})
	test.ExpectSuccess(t, disasm(md, out))
	test.ExpectEquality(t, out.String(), "0602 STA $0200\n")

	out.Reset()
	md.NewArgs([]string{})
	test.ExpectFailure(t, disasm(md, out))
}
