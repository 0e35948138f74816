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

// Package colorterm implements the Terminal interface for the tapedeck
// debugger. It supports color output, history and tab completion.
package colorterm

import (
	"os"

	"github.com/jetsetilly/tapedeck/console"
	"github.com/jetsetilly/tapedeck/debugger/terminal"
	"github.com/jetsetilly/tapedeck/easyterm"
)

// ColorTerminal implements debugger UI interface with a basic ANSI terminal.
type ColorTerminal struct {
	easyterm.Terminal

	input  *os.File
	output *os.File

	reader         *console.RuneReader
	commandHistory []string
	tabCompletion  terminal.TabCompletion

	silenced bool
}

// NewColorTerminal creates a ColorTerminal that uses files other than stdin
// and stdout.
func NewColorTerminal(input *os.File, output *os.File) *ColorTerminal {
	return &ColorTerminal{
		input:  input,
		output: output,
	}
}

// Initialise perfoms any setting up required for the terminal.
func (ct *ColorTerminal) Initialise() error {
	if ct.input == nil {
		ct.input = os.Stdin
	}
	if ct.output == nil {
		ct.output = os.Stdout
	}

	err := ct.Terminal.Initialise(ct.input, ct.output)
	if err != nil {
		return err
	}

	ct.commandHistory = make([]string, 0)
	ct.reader = console.NewRuneReader(ct.input)

	return nil
}

// CleanUp perfoms any cleaning up required for the terminal.
func (ct *ColorTerminal) CleanUp() {
	ct.TermPrint("\r")
	_ = ct.Flush()
	ct.Terminal.CleanUp()
}

// RegisterTabCompletion adds an implementation of TabCompletion to the
// ColorTerminal.
func (ct *ColorTerminal) RegisterTabCompletion(tc terminal.TabCompletion) {
	ct.tabCompletion = tc
}

// IsInteractive implements the terminal.Input interface.
func (ct *ColorTerminal) IsInteractive() bool {
	return true
}

// Silence implements the terminal.Terminal interface.
func (ct *ColorTerminal) Silence(silenced bool) {
	ct.silenced = silenced
}
