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

package preferences

import (
	"fmt"

	"github.com/jetsetilly/mos6502/prefs"
	"github.com/jetsetilly/mos6502/resources"
)

// Preferences defines and collates all the preference values used by the CPU.
type Preferences struct {
	dsk *prefs.Disk

	// initialise registers to an unknown state on power-on
	RandomState prefs.Bool

	// stack underflow and overflow stop execution with an error. if this is
	// false then the stack pointer wraps around inside the stack page and the
	// event is logged
	AbortOnStackFault prefs.Bool

	// value of the break flag in the status register on power-on
	BreakFlagOnReset prefs.Bool

	// value of the stack pointer on power-on
	InitialSP prefs.Int
}

func (p *Preferences) String() string {
	if p.dsk == nil {
		return ""
	}
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences
// type. Values are loaded from the file at path. An empty path means the
// default preferences file in the resources directory.
func NewPreferences(path string) (*Preferences, error) {
	p := NewDefaultPreferences()

	var err error

	if path == "" {
		path, err = resources.JoinPath(prefs.DefaultPrefsFile)
		if err != nil {
			return nil, err
		}
	}

	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("cpu.randomState", &p.RandomState)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("cpu.abortOnStackFault", &p.AbortOnStackFault)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("cpu.breakFlagOnReset", &p.BreakFlagOnReset)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("cpu.initialSP", &p.InitialSP)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Load()
	if err != nil {
		return nil, err
	}

	return p, nil
}

// NewDefaultPreferences returns an instance of Preferences with default values
// that is not attached to a preferences file. Calls to Load() and Save() will
// fail.
func NewDefaultPreferences() *Preferences {
	p := &Preferences{}

	p.InitialSP.SetHookPre(func(v prefs.Value) error {
		n, ok := v.(int)
		if !ok {
			return nil
		}
		if n < 0 || n > 0xff {
			return fmt.Errorf("preferences: stack pointer value out of range (%#x)", n)
		}
		return nil
	})

	p.SetDefaults()

	return p
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	_ = p.RandomState.Set(false)
	_ = p.AbortOnStackFault.Set(true)
	_ = p.BreakFlagOnReset.Set(false)
	_ = p.InitialSP.Set(0xfd)
}

// Load CPU preferences from disk.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return fmt.Errorf("preferences: no preferences file")
	}
	return p.dsk.Load()
}

// Save current CPU preferences to disk.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return fmt.Errorf("preferences: no preferences file")
	}
	return p.dsk.Save()
}
