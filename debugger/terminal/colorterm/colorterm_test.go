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

//go:build !windows

package colorterm_test

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/jetsetilly/tapedeck/debugger/terminal"
	"github.com/jetsetilly/tapedeck/debugger/terminal/colorterm"
	"github.com/jetsetilly/tapedeck/debugger/terminal/commandline"
	"github.com/jetsetilly/tapedeck/test"
)

func newTerminal(t *testing.T, keys string) (*colorterm.ColorTerminal, *os.File) {
	t.Helper()

	in, inw, err := os.Pipe()
	test.DemandSuccess(t, err)
	_, err = inw.WriteString(keys)
	test.DemandSuccess(t, err)
	inw.Close()

	outr, out, err := os.Pipe()
	test.DemandSuccess(t, err)

	// drain output so that writes never block
	go func() {
		_, _ = io.Copy(io.Discard, outr)
	}()

	t.Cleanup(func() {
		in.Close()
		out.Close()
	})

	ct := colorterm.NewColorTerminal(in, out)
	test.DemandSuccess(t, ct.Initialise())

	return ct, out
}

func TestLineEditing(t *testing.T) {
	ct, _ := newTerminal(t, "ab\x7fc\rxy\x1b[Dz\r\x1b[A\x1b[A\r")
	defer ct.CleanUp()

	p := terminal.NewPrompt(0, "+", false)

	s, err := ct.TermRead(p)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "ac")

	// cursor moved back one before inserting
	s, err = ct.TermRead(p)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "xzy")

	// two steps back through the history
	s, err = ct.TermRead(p)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "ac")

	_, err = ct.TermRead(p)
	test.ExpectEquality(t, err, io.EOF)
}

func TestTabCompletion(t *testing.T) {
	ct, _ := newTerminal(t, "ru\t\rbr\x03")
	defer ct.CleanUp()

	cmds, err := commandline.ParseCommandTemplate([]string{"RUN (IGNORE)", "BREAK %N"})
	test.DemandSuccess(t, err)
	ct.RegisterTabCompletion(commandline.NewTabCompletion(cmds))

	p := terminal.NewPrompt(0, "+", false)

	s, err := ct.TermRead(p)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, strings.TrimSpace(s), "RUN")

	_, err = ct.TermRead(p)
	test.ExpectEquality(t, err, terminal.UserInterrupt)
}
