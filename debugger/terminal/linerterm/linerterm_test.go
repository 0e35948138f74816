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

package linerterm

import (
	"testing"

	"github.com/jetsetilly/tapedeck/debugger/terminal"
	"github.com/jetsetilly/tapedeck/test"
)

func TestTrimHistory(t *testing.T) {
	test.ExpectEquality(t, trimHistory("", 10), "")
	test.ExpectEquality(t, trimHistory("run\nstep\n", 10), "run\nstep\n")
	test.ExpectEquality(t, trimHistory("run\nstep\nbreak 5\n", 2), "step\nbreak 5\n")
	test.ExpectEquality(t, trimHistory("run\nstep\n", 0), "")
}

func TestOutput(t *testing.T) {
	w := &test.Writer{}
	lt := NewLinerTerminal(10)
	lt.output = w

	lt.TermPrintLine(terminal.StyleFeedback, "hello")
	lt.TermPrintLine(terminal.StyleEcho, "run")
	lt.TermPrintLine(terminal.StyleError, "bad")
	test.ExpectEquality(t, w.String(), "hello\n* bad\n")

	w.Clear()
	lt.Silence(true)
	lt.TermPrintLine(terminal.StyleFeedback, "hello")
	test.ExpectEquality(t, w.String(), "")

	// cleanup without initialisation is safe
	lt.CleanUp()
}
