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

package debugger

import (
	"strings"
	"testing"

	"github.com/jetsetilly/tapedeck/curated"
	"github.com/jetsetilly/tapedeck/engine"
	"github.com/jetsetilly/tapedeck/program"
	"github.com/jetsetilly/tapedeck/test"
)

func TestMaxCellsVisible(t *testing.T) {
	test.ExpectEquality(t, maxCellsVisible(80), 27)
	test.ExpectEquality(t, maxCellsVisible(26), 9)
	test.ExpectEquality(t, maxCellsVisible(25), 8)
}

func TestMemdump(t *testing.T) {
	prog, err := program.Load(strings.Repeat(">", 99) + strings.Repeat("+", 11))
	test.DemandSuccess(t, err)

	eng, err := engine.New(prog, engine.Config{
		Cells:  120,
		Input:  strings.NewReader(""),
		Output: &test.Writer{},
	})
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, eng.RunToCompletion())
	test.DemandEquality(t, eng.Pointer(), 99)

	// only the last two digits of the index are shown
	s, err := memdump(eng, memdumpArgs{offset: 98, width: 3, upper: true})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s, "98|99|00\n00|0B|00\n   ^^")

	_, err = memdump(eng, memdumpArgs{width: 9, columns: 20})
	test.ExpectSuccess(t, curated.Is(err, MemdumpTooWide))
	test.ExpectEquality(t, err.Error(), "debugger: memdump: a terminal of 20 columns can show 7 cells (asked for 9)")

	_, err = memdump(eng, memdumpArgs{width: 7, columns: 20})
	test.ExpectSuccess(t, err)

	_, err = memdump(eng, memdumpArgs{offset: -1, width: 3})
	test.ExpectSuccess(t, curated.Is(err, MemdumpOffset))

	_, err = memdump(eng, memdumpArgs{offset: 118, width: 3})
	test.ExpectSuccess(t, curated.Is(err, MemdumpOutOfBounds))

	_, err = memdump(eng, memdumpArgs{offset: 117, width: 3})
	test.ExpectSuccess(t, err)

	_, err = memdump(eng, memdumpArgs{width: 0})
	test.ExpectSuccess(t, curated.Is(err, MemdumpEvenWidth))
}
