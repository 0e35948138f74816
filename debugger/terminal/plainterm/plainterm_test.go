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

package plainterm_test

import (
	"io"
	"strings"
	"testing"

	"github.com/jetsetilly/tapedeck/debugger/terminal"
	"github.com/jetsetilly/tapedeck/debugger/terminal/plainterm"
	"github.com/jetsetilly/tapedeck/test"
)

func TestPlainTerminal(t *testing.T) {
	w := &test.Writer{}
	pt := plainterm.NewPlainTerminal(strings.NewReader("run\r\nbreak 5\nquit"), w)
	test.DemandSuccess(t, pt.Initialise())
	defer pt.CleanUp()

	test.ExpectFailure(t, pt.IsInteractive())

	p := terminal.NewPrompt(0, "+", false)

	s, err := pt.TermRead(p)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "run")

	s, err = pt.TermRead(p)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "break 5")

	s, err = pt.TermRead(p)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "quit")

	_, err = pt.TermRead(p)
	test.ExpectEquality(t, err, io.EOF)

	// prompt is not printed for non-interactive input
	test.ExpectEquality(t, w.String(), "")

	pt.TermPrintLine(terminal.StyleFeedback, "hello")
	pt.TermPrintLine(terminal.StyleEcho, "echo")
	pt.TermPrintLine(terminal.StyleError, "bad")
	test.ExpectEquality(t, w.String(), "hello\n* bad\n")

	w.Clear()
	pt.Silence(true)
	pt.TermPrintLine(terminal.StyleFeedback, "hello")
	pt.TermPrintLine(terminal.StyleError, "bad")
	test.ExpectEquality(t, w.String(), "* bad\n")
}
