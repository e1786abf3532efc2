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

package random_test

import (
	"testing"

	"github.com/jetsetilly/mos6502/random"
	"github.com/jetsetilly/mos6502/test"
)

type clock struct {
	cycles uint64
}

func (c *clock) Cycles() uint64 {
	return c.cycles
}

func TestRandom(t *testing.T) {
	a := random.NewRandom(&clock{cycles: 1000})
	b := random.NewRandom(&clock{cycles: 1000})
	a.ZeroSeed = true
	b.ZeroSeed = true

	for i := 1; i < 256; i++ {
		test.ExpectEquality(t, a.Rewindable(i), b.Rewindable(i))
	}
}

func TestRewindableRange(t *testing.T) {
	clk := &clock{}
	rnd := random.NewRandom(clk)

	for i := 0; i < 1000; i++ {
		clk.cycles = uint64(i)
		v := rnd.Rewindable(256)
		test.ExpectSuccess(t, v >= 0 && v < 256)

		// same clock, same number
		test.ExpectEquality(t, rnd.Rewindable(256), v)
	}
}
