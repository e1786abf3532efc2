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

package prefs_test

import (
	"testing"

	"github.com/jetsetilly/mos6502/prefs"
	"github.com/jetsetilly/mos6502/test"
)

func TestCommandLineStackValues(t *testing.T) {
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	prefs.PushCommandLineStack("cpu.initialSP::0xff")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "cpu.initialSP::0xff")

	// whitespace around keys and values is ignored
	prefs.PushCommandLineStack("  cpu.initialSP::  0xff ")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "cpu.initialSP::0xff")

	// unclaimed entries are returned sorted by key
	prefs.PushCommandLineStack("cpu.randomState::true; cpu.abortOnStackFault::false")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "cpu.abortOnStackFault::false; cpu.randomState::true")

	// malformed entries are dropped
	prefs.PushCommandLineStack("cpu.randomState")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
	prefs.PushCommandLineStack("cpu.randomState;cpu.initialSP::0x80")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "cpu.initialSP::0x80")
}

func TestCommandLineClaim(t *testing.T) {
	prefs.PushCommandLineStack("cpu.initialSP::0x80; cpu.breakFlagOnReset")

	ok, _ := prefs.GetCommandLinePref("cpu.breakFlagOnReset")
	test.ExpectFailure(t, ok)

	ok, v := prefs.GetCommandLinePref("cpu.initialSP")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, prefs.Value("0x80"))

	// a claimed value can not be claimed twice
	ok, _ = prefs.GetCommandLinePref("cpu.initialSP")
	test.ExpectFailure(t, ok)

	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
}

func TestCommandLineStack(t *testing.T) {
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)

	prefs.PushCommandLineStack("cpu.initialSP::0xff")
	prefs.PushCommandLineStack("cpu.randomState::true")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 2)

	// groups are popped in reverse order
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "cpu.randomState::true")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "cpu.initialSP::0xff")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
}
