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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/mos6502/hardware/cpu/registers"
	"github.com/jetsetilly/mos6502/test"
)

func TestStatusRegister(t *testing.T) {
	sr := registers.NewStatusRegister()
	test.ExpectEquality(t, sr.String(), "nv-bdizc")
	test.ExpectEquality(t, sr.Value(), uint8(0x20))

	sr.Negative = true
	sr.Zero = true
	test.ExpectEquality(t, sr.String(), "Nv-bdiZc")
	test.ExpectEquality(t, sr.Value(), uint8(0xa2))

	sr.Reset()
	test.ExpectEquality(t, sr.String(), "nv-bdizc")

	sr.FromValue(0xff)
	test.ExpectEquality(t, sr.String(), "NV-BDIZC")
	test.ExpectEquality(t, sr.Label(), "SR")
}

func TestStatusRegisterRoundTrip(t *testing.T) {
	var sr registers.StatusRegister

	for v := 0; v <= 0xff; v++ {
		sr.FromValue(uint8(v))
		test.ExpectEquality(t, sr.Value(), uint8(v)|0x20, v)
	}
}
