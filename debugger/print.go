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
	"bytes"
	"fmt"
	"strings"

	"github.com/jetsetilly/tapedeck/debugger/terminal"
)

// printLine prints a single line to the terminal using the style specified.
// The string is used as a fmt pattern for every style except the help style,
// whose text may contain placeholder directives from the command template.
func (dbg *Debugger) printLine(sty terminal.Style, s string, a ...interface{}) {
	if sty != terminal.StyleHelp {
		s = fmt.Sprintf(s, a...)
	}

	// remove all trailing newlines, and return if the resulting string is empty
	s = strings.TrimRight(s, "\n")
	if len(s) == 0 {
		return
	}

	for _, l := range strings.Split(s, "\n") {
		dbg.term.TermPrintLine(sty, l)
	}

	if sty.IncludeInScriptOutput() {
		dbg.scribe.WriteOutput(s)
	}
}

// styleWriter implements the io.Writer interface. it is useful for when an
// io.Writer is required and you want to direct the output to the terminal.
// allows the application of a single style.
type styleWriter struct {
	dbg   *Debugger
	style terminal.Style
}

func (dbg *Debugger) printStyle(sty terminal.Style) *styleWriter {
	return &styleWriter{
		dbg:   dbg,
		style: sty,
	}
}

func (wrt styleWriter) Write(p []byte) (n int, err error) {
	wrt.dbg.printLine(wrt.style, "%s", string(p))
	return len(p), nil
}

// programOutput collects output from the program being debugged. Complete
// lines are printed as soon as they are available. Partial lines are printed
// when flush() is called.
type programOutput struct {
	dbg *Debugger
	buf []byte
}

func (out *programOutput) Write(p []byte) (int, error) {
	out.buf = append(out.buf, p...)
	for {
		i := bytes.IndexByte(out.buf, '\n')
		if i < 0 {
			break
		}
		out.print(string(out.buf[:i]))
		out.buf = out.buf[i+1:]
	}
	return len(p), nil
}

func (out *programOutput) flush() {
	if len(out.buf) == 0 {
		return
	}
	out.print(string(out.buf))
	out.buf = out.buf[:0]
}

// empty lines from the program are printed, unlike empty lines sent to
// printLine()
func (out *programOutput) print(s string) {
	out.dbg.term.TermPrintLine(terminal.StyleProgramOutput, s)
	out.dbg.scribe.WriteOutput(s)
}
