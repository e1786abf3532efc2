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

package performance_test

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"testing"

	"github.com/jetsetilly/mos6502/curated"
	"github.com/jetsetilly/mos6502/hardware/cpu"
	"github.com/jetsetilly/mos6502/performance"
	"github.com/jetsetilly/mos6502/test"
)

func TestParseProfileString(t *testing.T) {
	p, err := performance.ParseProfileString("none")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileNone)

	p, err = performance.ParseProfileString("cpu, MEM")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileMem)

	p, err = performance.ParseProfileString("all")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileAll)

	_, err = performance.ParseProfileString("cpu,disk")
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, performance.PerformanceError), true)
}

func TestRunProfiler(t *testing.T) {
	hdr := filepath.Join(t.TempDir(), "test")

	var ran bool
	err := performance.RunProfiler(performance.ProfileCPU|performance.ProfileMem, hdr, func() error {
		ran = true
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ran, true)

	_, err = os.Stat(hdr + "_cpu.profile")
	test.ExpectSuccess(t, err)
	_, err = os.Stat(hdr + "_mem.profile")
	test.ExpectSuccess(t, err)
	_, err = os.Stat(hdr + "_trace.profile")
	test.ExpectFailure(t, err)
}

func TestCheck(t *testing.T) {
	hdr := filepath.Join(t.TempDir(), "test")

	// INX; JMP $0600
	mc := cpu.NewCPU(nil)
	mc.LoadProgram(0x0600, []uint8{0xe8, 0x4c, 0x00, 0x06})

	out := &bytes.Buffer{}
	test.DemandSuccess(t, performance.Check(out, performance.ProfileNone, hdr, mc, "50ms"))
	test.ExpectEquality(t, regexp.MustCompile(`^[0-9.]+ MHz \([0-9]+ cycles in [0-9.]+ seconds\) [0-9.]+%\n$`).MatchString(out.String()), true)
	test.ExpectEquality(t, mc.Cycles() > 0, true)
}

func TestCheckRestart(t *testing.T) {
	hdr := filepath.Join(t.TempDir(), "test")

	// program halts immediately and is restarted. BRK is used so that the
	// stack would be exhausted if the CPU was not powered on with every
	// restart
	mc := cpu.NewCPU(nil)
	mc.LoadProgram(0x0600, []uint8{0x00, 0x00})

	out := &bytes.Buffer{}
	test.DemandSuccess(t, performance.Check(out, performance.ProfileNone, hdr, mc, "20ms"))

	m := regexp.MustCompile(`\(([0-9]+) cycles`).FindStringSubmatch(out.String())
	test.DemandEquality(t, len(m), 2)
	n, err := strconv.Atoi(m[1])
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n > 7, true)
}

func TestCheckErrors(t *testing.T) {
	hdr := filepath.Join(t.TempDir(), "test")
	mc := cpu.NewCPU(nil)
	mc.LoadProgram(0x0600, []uint8{0x02})

	out := &bytes.Buffer{}
	test.ExpectFailure(t, performance.Check(out, performance.ProfileNone, hdr, mc, "not a duration"))
	test.ExpectFailure(t, performance.Check(out, performance.ProfileNone, hdr, mc, "0s"))

	// undefined opcode
	err := performance.Check(out, performance.ProfileNone, hdr, mc, "20ms")
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Has(err, cpu.UnimplementedInstruction), true)
}

func TestCalcMHz(t *testing.T) {
	mhz, accuracy := performance.CalcMHz(2000000, 2.0)
	test.ExpectApproximate(t, mhz, 1.0, 0.001)
	test.ExpectApproximate(t, accuracy, 100.0, 0.001)

	mhz, _ = performance.CalcMHz(100, 0)
	test.ExpectEquality(t, mhz, 0.0)
}
