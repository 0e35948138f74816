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

package disassembly_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/tapedeck/curated"
	"github.com/jetsetilly/tapedeck/disassembly"
	"github.com/jetsetilly/tapedeck/program"
	"github.com/jetsetilly/tapedeck/test"
)

func TestEntries(t *testing.T) {
	prog, err := program.Load("+[>[-]<]")
	test.DemandSuccess(t, err)

	dsm := disassembly.FromProgram(prog)
	test.DemandEquality(t, dsm.Len(), 8)

	e, ok := dsm.Get(3)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, e.Instruction, program.LoopOpen)
	test.ExpectEquality(t, e.Depth, 2)
	test.ExpectEquality(t, e.Partner, 5)
	test.ExpectSuccess(t, e.IsBracket)

	e, _ = dsm.Get(0)
	test.ExpectEquality(t, e.Depth, 0)
	test.ExpectFailure(t, e.IsBracket)

	_, ok = dsm.Get(8)
	test.ExpectFailure(t, ok)
	_, ok = dsm.Get(-1)
	test.ExpectFailure(t, ok)

	test.ExpectEquality(t, len(dsm.Range(6, 10)), 2)
	test.ExpectEquality(t, len(dsm.Range(-2, 3)), 3)
	test.ExpectEquality(t, len(dsm.Range(8, 1)), 0)
}

func TestWrite(t *testing.T) {
	prog, err := program.Load("+[-]")
	test.DemandSuccess(t, err)
	dsm := disassembly.FromProgram(prog)

	var w test.Writer
	test.DemandSuccess(t, dsm.Write(&w, disassembly.WriteAttr{Partner: true}))
	test.ExpectEquality(t, w.String(), "0  +\n1  [  -> 3\n2    -\n3  ]  <- 1\n")

	w.Clear()
	e, _ := dsm.Get(1)
	attr := disassembly.WriteAttr{
		Mnemonic: true,
		Depth:    true,
		Prefix: func(e disassembly.Entry) string {
			return "> "
		},
	}
	test.DemandSuccess(t, dsm.WriteLine(&w, attr, e))
	test.ExpectEquality(t, w.String(), "> 1  [  loop open   depth 1\n")
}

func TestFromFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prog.bf")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("hello, world."), 0600))

	dsm, err := disassembly.FromFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, dsm.Len(), 2)

	_, err = disassembly.FromFile(filepath.Join(t.TempDir(), "missing.bf"))
	test.ExpectSuccess(t, curated.Is(err, program.FileError))
}
