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

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/mos6502/curated"
	"github.com/jetsetilly/mos6502/hardware/cpu"
)

// PerformanceError is the pattern for errors returned by the package.
const PerformanceError = "performance: %v"

// NominalMHz is the clock speed of the 6502 against which the emulation is
// measured.
const NominalMHz = 1.0

// the number of CPU cycles between checks of the timer. checking the timer on
// every cycle is relatively expensive
const performanceBrake = 1000

// sentinal error returned by the runner.
var timedOut = errors.New("performance timed out")

// Check the performance of the emulation by running the program loaded into
// the CPU for the specified duration. The CPU is powered on before the
// measurement begins and again whenever the program halts. Memory is not
// cleared between runs.
//
// Profile files are named with the filenameHeader prefix.
func Check(output io.Writer, profile Profile, filenameHeader string, mc *cpu.CPU, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf(PerformanceError, err)
	}
	if dur <= 0 {
		return curated.Errorf(PerformanceError, fmt.Sprintf("duration must be positive (%s)", duration))
	}

	var cycles uint64
	var elapsed time.Duration

	runner := func() error {
		timesUp := make(chan bool, 1)
		t := time.AfterFunc(dur, func() {
			timesUp <- true
		})
		defer t.Stop()

		start := time.Now()
		defer func() {
			elapsed = time.Since(start)
		}()

		mc.PowerOn()

		brake := 0
		for {
			ok, err := mc.Step()
			if err != nil {
				return err
			}
			if !ok {
				cycles += mc.Cycles()
				mc.PowerOn()
			}

			brake++
			if brake >= performanceBrake {
				brake = 0
				select {
				case <-timesUp:
					return timedOut
				default:
				}
			}
		}
	}

	err = RunProfiler(profile, filenameHeader, runner)
	if err != nil && !errors.Is(err, timedOut) {
		return curated.Errorf(PerformanceError, err)
	}

	cycles += mc.Cycles()
	mhz, accuracy := CalcMHz(cycles, elapsed.Seconds())
	fmt.Fprintf(output, "%.2f MHz (%d cycles in %.2f seconds) %.1f%%\n", mhz, cycles, elapsed.Seconds(), accuracy)

	return nil
}

// CalcMHz returns the effective clock speed of the emulation and the
// percentage of NominalMHz that represents.
func CalcMHz(cycles uint64, seconds float64) (float64, float64) {
	if seconds <= 0 {
		return 0, 0
	}
	mhz := float64(cycles) / seconds / 1000000
	return mhz, mhz / NominalMHz * 100
}
