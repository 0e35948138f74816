// This file is part of Tapedeck.
//
// Tapedeck is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Tapedeck is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Tapedeck.  If not, see <https://www.gnu.org/licenses/>.

package prefs_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/tapedeck/prefs"
	"github.com/jetsetilly/tapedeck/test"
)

func TestBool(t *testing.T) {
	var v prefs.Bool
	test.ExpectEquality(t, v.String(), "false")

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectEquality(t, v.Get().(bool), true)
	test.ExpectSuccess(t, v.Set("foo"))
	test.ExpectEquality(t, v.Get().(bool), false)
	test.ExpectSuccess(t, v.Set("TRUE"))
	test.ExpectEquality(t, v.String(), "true")
	test.ExpectFailure(t, v.Set(10))

	test.ExpectSuccess(t, v.Reset())
	test.ExpectEquality(t, v.Get().(bool), false)
}

func TestInt(t *testing.T) {
	var v prefs.Int
	test.ExpectEquality(t, v.String(), "0")

	test.ExpectSuccess(t, v.Set(10))
	test.ExpectEquality(t, v.Get().(int), 10)
	test.ExpectSuccess(t, v.Set(int64(20)))
	test.ExpectEquality(t, v.Get().(int), 20)
	test.ExpectSuccess(t, v.Set(" 30"))
	test.ExpectEquality(t, v.String(), "30")
	test.ExpectFailure(t, v.Set("foo"))
	test.ExpectFailure(t, v.Set(1.5))

	// a failed set leaves the value unchanged
	test.ExpectEquality(t, v.Get().(int), 30)
}

func TestString(t *testing.T) {
	var v prefs.String
	test.ExpectEquality(t, v.String(), "")
	test.ExpectSuccess(t, v.Set("COLOR"))
	test.ExpectEquality(t, v.Get().(string), "COLOR")
	test.ExpectSuccess(t, v.Set(100))
	test.ExpectEquality(t, v.String(), "100")
}

func TestHook(t *testing.T) {
	var v prefs.Int
	var seen int
	v.SetHook(func(nv prefs.Value) error {
		seen = nv.(int)
		return nil
	})
	test.ExpectSuccess(t, v.Set(99))
	test.ExpectEquality(t, seen, 99)
}

func TestDisk(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs.toml")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var cells prefs.Int
	var echo prefs.Bool
	var term prefs.String
	test.ExpectSuccess(t, dsk.Add("engine.cells", &cells))
	test.ExpectSuccess(t, dsk.Add("engine.echo", &echo))
	test.ExpectSuccess(t, dsk.Add("debugger.term", &term))
	test.ExpectFailure(t, dsk.Add("engine.cells", &cells))
	test.ExpectFailure(t, dsk.Add("", &cells))

	// loading a missing file is not an error
	test.ExpectSuccess(t, dsk.Load())
	test.ExpectEquality(t, cells.Get().(int), 0)

	test.DemandSuccess(t, cells.Set(1000))
	test.DemandSuccess(t, echo.Set(true))
	test.DemandSuccess(t, term.Set("LINER"))
	test.DemandSuccess(t, dsk.Save())

	b, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.HasPrefix(string(b), prefs.WarningBoilerPlate))
	test.ExpectSuccess(t, strings.Contains(string(b), "[engine]"))
	test.ExpectSuccess(t, strings.Contains(string(b), "cells = 1000"))

	test.ExpectEquality(t, dsk.String(), "debugger.term :: LINER\nengine.cells :: 1000\nengine.echo :: true\n")

	// a second disk reads the values back
	dsk2, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var cells2 prefs.Int
	var term2 prefs.String
	test.ExpectSuccess(t, dsk2.Add("engine.cells", &cells2))
	test.ExpectSuccess(t, dsk2.Add("debugger.term", &term2))
	test.DemandSuccess(t, dsk2.Load())
	test.ExpectEquality(t, cells2.Get().(int), 1000)
	test.ExpectEquality(t, term2.String(), "LINER")

	// saving from the second disk keeps the value it knows nothing about
	test.DemandSuccess(t, dsk2.Save())
	test.DemandSuccess(t, echo.Set(false))
	test.DemandSuccess(t, dsk.Load())
	test.ExpectEquality(t, echo.Get().(bool), true)

	test.DemandSuccess(t, dsk.Reset())
	test.ExpectEquality(t, cells.Get().(int), 0)
}

func TestDiskBadFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs.toml")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("[engine\ncells = "), 0600))

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var cells prefs.Int
	test.DemandSuccess(t, dsk.Add("engine.cells", &cells))
	test.ExpectFailure(t, dsk.Load())

	test.DemandSuccess(t, os.WriteFile(fn, []byte("[engine]\ncells = \"lots\"\n"), 0600))
	test.ExpectFailure(t, dsk.Load())

	_, err = prefs.NewDisk("")
	test.ExpectFailure(t, err)
}
