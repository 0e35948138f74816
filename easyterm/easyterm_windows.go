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

//go:build windows

package easyterm

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// Terminal provides the easyterm API under windows. Terminal modes cannot be
// changed.
type Terminal struct {
	input  *os.File
	output *os.File
	isTerm bool
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
	return nil
}

// CleanUp does nothing under windows.
func (et *Terminal) CleanUp() {}

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

// CanonicalMode does nothing under windows.
func (et *Terminal) CanonicalMode() {}

// CBreakMode does nothing under windows.
func (et *Terminal) CBreakMode() {}

// RawMode does nothing under windows.
func (et *Terminal) RawMode() {}

// Flush does nothing under windows.
func (et *Terminal) Flush() error {
	return nil
}
