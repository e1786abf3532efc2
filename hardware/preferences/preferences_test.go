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

package preferences_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/mos6502/hardware/preferences"
	"github.com/jetsetilly/mos6502/prefs"
	"github.com/jetsetilly/mos6502/test"
)

func TestDefaults(t *testing.T) {
	p := preferences.NewDefaultPreferences()
	test.ExpectEquality(t, p.RandomState.Get().(bool), false)
	test.ExpectEquality(t, p.AbortOnStackFault.Get().(bool), true)
	test.ExpectEquality(t, p.BreakFlagOnReset.Get().(bool), false)
	test.ExpectEquality(t, p.InitialSP.Get().(int), 0xfd)

	// not attached to a file
	test.ExpectFailure(t, p.Save())
	test.ExpectFailure(t, p.Load())
}

func TestInitialSPRange(t *testing.T) {
	p := preferences.NewDefaultPreferences()
	test.ExpectFailure(t, p.InitialSP.Set(0x100))
	test.ExpectFailure(t, p.InitialSP.Set(-1))
	test.ExpectEquality(t, p.InitialSP.Get().(int), 0xfd)
	test.ExpectSuccess(t, p.InitialSP.Set("0xff"))
	test.ExpectEquality(t, p.InitialSP.Get().(int), 0xff)
}

func TestSaveAndLoad(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "preferences")

	p, err := preferences.NewPreferences(pth)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, p.InitialSP.Set(0xff))
	test.ExpectSuccess(t, p.AbortOnStackFault.Set(false))
	test.DemandSuccess(t, p.Save())

	_, err = os.Stat(pth)
	test.DemandSuccess(t, err)

	q, err := preferences.NewPreferences(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.InitialSP.Get().(int), 0xff)
	test.ExpectEquality(t, q.AbortOnStackFault.Get().(bool), false)
	test.ExpectEquality(t, q.RandomState.Get().(bool), false)
}

func TestCommandLine(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "preferences")

	prefs.PushCommandLineStack("cpu.breakFlagOnReset::true")
	p, err := preferences.NewPreferences(pth)
	test.DemandSuccess(t, err)
	prefs.PopCommandLineStack()

	test.ExpectEquality(t, p.BreakFlagOnReset.Get().(bool), true)
}
