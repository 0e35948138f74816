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

// Package linerterm implements the Terminal interface for the tapedeck
// debugger using the liner package for line editing. History is kept
// between sessions in the resource directory.
package linerterm

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jetsetilly/tapedeck/debugger/terminal"
	"github.com/jetsetilly/tapedeck/paths"
	"github.com/peterh/liner"
)

const historyFile = "history"

// LinerTerminal is a terminal with line editing, history and tab completion.
type LinerTerminal struct {
	state  *liner.State
	output io.Writer

	historyPath   string
	historyLength int

	silenced bool
}

// NewLinerTerminal is the preferred method of initialisation for the
// LinerTerminal type. The historyLength argument is the maximum number of
// history entries kept between sessions.
func NewLinerTerminal(historyLength int) *LinerTerminal {
	return &LinerTerminal{
		historyLength: historyLength,
	}
}

// Initialise perfoms any setting up required for the terminal.
func (lt *LinerTerminal) Initialise() error {
	lt.output = os.Stdout

	lt.state = liner.NewLiner()
	lt.state.SetCtrlCAborts(true)
	lt.state.SetTabCompletionStyle(liner.TabCircular)

	var err error
	lt.historyPath, err = paths.ResourcePath("", historyFile)
	if err != nil {
		return fmt.Errorf("linerterm: %w", err)
	}

	if f, err := os.Open(lt.historyPath); err == nil {
		_, _ = lt.state.ReadHistory(f)
		f.Close()
	}

	return nil
}

// CleanUp saves the history and restores the terminal.
func (lt *LinerTerminal) CleanUp() {
	if lt.state == nil {
		return
	}

	if lt.historyPath != "" {
		b := &bytes.Buffer{}
		if _, err := lt.state.WriteHistory(b); err == nil {
			_ = os.WriteFile(lt.historyPath, []byte(trimHistory(b.String(), lt.historyLength)), 0600)
		}
	}

	_ = lt.state.Close()
	lt.state = nil
}

// trimHistory keeps the last n lines of the history.
func trimHistory(history string, n int) string {
	lines := strings.Split(strings.TrimRight(history, "\n"), "\n")
	if len(lines) == 1 && lines[0] == "" {
		return ""
	}
	if n >= 0 && len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// RegisterTabCompletion adds an implementation of TabCompletion to the
// terminal.
func (lt *LinerTerminal) RegisterTabCompletion(tc terminal.TabCompletion) {
	if lt.state == nil {
		return
	}
	lt.state.SetCompleter(tc.Completions)
}

// IsInteractive implements the terminal.Input interface.
func (lt *LinerTerminal) IsInteractive() bool {
	return liner.TerminalSupported()
}

// Silence implements the terminal.Terminal interface.
func (lt *LinerTerminal) Silence(silenced bool) {
	lt.silenced = silenced
}

// TermRead implements the terminal.Input interface.
func (lt *LinerTerminal) TermRead(prompt terminal.Prompt) (string, error) {
	s, err := lt.state.Prompt(prompt.String())
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", terminal.UserInterrupt
		}
		return "", err
	}

	if strings.TrimSpace(s) != "" {
		lt.state.AppendHistory(s)
	}

	return s, nil
}

// TermPrintLine implements the terminal.Output interface.
func (lt *LinerTerminal) TermPrintLine(style terminal.Style, s string) {
	if lt.silenced && style != terminal.StyleError {
		return
	}

	if style == terminal.StyleEcho {
		return
	}

	if style == terminal.StyleError {
		s = fmt.Sprintf("* %s", s)
	}

	io.WriteString(lt.output, s)
	io.WriteString(lt.output, "\n")
}
