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

package easyterm

import (
	"fmt"
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Terminal is the main container for posix terminals. Usually embedded in
// other struct types.
type Terminal struct {
	input  *os.File
	output *os.File

	// whether input is a real terminal
	isTerm bool

	canAttr    unix.Termios
	cbreakAttr unix.Termios
	rawAttr    unix.Termios
}

// Initialise the fields in the Terminal struct.
func (et *Terminal) Initialise(inputFile *os.File, outputFile *os.File) error {
	if inputFile == nil {
		return fmt.Errorf("easyterm: terminal requires an input file")
	}
	if outputFile == nil {
		return fmt.Errorf("easyterm: terminal requires an output file")
	}

	et.input = inputFile
	et.output = outputFile
	et.isTerm = term.IsTerminal(int(et.input.Fd()))

	if !et.isTerm {
		return nil
	}

	if err := termios.Tcgetattr(et.input.Fd(), &et.canAttr); err != nil {
		return fmt.Errorf("easyterm: %w", err)
	}

	// cbreak and raw modes are both derived from the canonical attributes
	et.cbreakAttr = et.canAttr
	termios.Cfmakecbreak(&et.cbreakAttr)
	et.rawAttr = et.canAttr
	termios.Cfmakeraw(&et.rawAttr)

	return nil
}

// CleanUp returns the terminal to canonical mode.
func (et *Terminal) CleanUp() {
	et.CanonicalMode()
}

// IsTerminal returns true if the input file is a real terminal.
func (et *Terminal) IsTerminal() bool {
	return et.isTerm
}

// TermPrint writes the string to the output file.
func (et *Terminal) TermPrint(s string) {
	if et.output == nil {
		return
	}
	_, _ = et.output.WriteString(s)
}

// Geometry returns the number of columns and rows of the output terminal.
func (et *Terminal) Geometry() (int, int, error) {
	if et.output == nil {
		return 0, 0, fmt.Errorf("easyterm: no output file")
	}
	return term.GetSize(int(et.output.Fd()))
}

// CanonicalMode puts terminal into normal, everyday canonical mode.
func (et *Terminal) CanonicalMode() {
	if et.isTerm {
		_ = termios.Tcsetattr(et.input.Fd(), termios.TCIFLUSH, &et.canAttr)
	}
}

// CBreakMode puts terminal into cbreak mode. Input is available a character
// at a time but signals are still generated.
func (et *Terminal) CBreakMode() {
	if et.isTerm {
		_ = termios.Tcsetattr(et.input.Fd(), termios.TCIFLUSH, &et.cbreakAttr)
	}
}

// RawMode puts terminal into raw mode.
func (et *Terminal) RawMode() {
	if et.isTerm {
		_ = termios.Tcsetattr(et.input.Fd(), termios.TCIFLUSH, &et.rawAttr)
	}
}

// Flush makes sure the terminal's input buffer is empty.
func (et *Terminal) Flush() error {
	if !et.isTerm {
		return nil
	}
	return termios.Tcflush(et.input.Fd(), termios.TCIFLUSH)
}
