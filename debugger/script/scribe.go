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

package script

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// Scribe can be used again after a Start()/End() cycle. Commands are
// committed to the file when the next command is written or when the session
// ends. Output from commands that failed can be discarded with Rollback().
type Scribe struct {
	file       *os.File
	scriptfile string

	inputLine  string
	outputLine string
}

// IsActive returns true if a script is currently being captured.
func (scr *Scribe) IsActive() bool {
	return scr.file != nil
}

// Filename returns the name of the script being captured.
func (scr *Scribe) Filename() string {
	return scr.scriptfile
}

// StartSession a new script. The file must not already exist.
func (scr *Scribe) StartSession(scriptfile string) error {
	if scr.IsActive() {
		return fmt.Errorf("script: scribe already active")
	}

	if _, err := os.Stat(scriptfile); !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("script: file already exists: %s", scriptfile)
	}

	f, err := os.Create(scriptfile)
	if err != nil {
		return fmt.Errorf("script: cannot create new script file: %w", err)
	}

	scr.file = f
	scr.scriptfile = scriptfile

	return nil
}

// EndSession the current scribe session.
func (scr *Scribe) EndSession() error {
	if !scr.IsActive() {
		return nil
	}

	defer func() {
		scr.file = nil
		scr.scriptfile = ""
		scr.inputLine = ""
		scr.outputLine = ""
	}()

	// if commit causes an error, continue with the close and return the
	// commit error if the close succeeds
	err := scr.Commit()

	if errClose := scr.file.Close(); errClose != nil {
		return fmt.Errorf("script: %w", errClose)
	}

	return err
}

// Rollback undoes calls to WriteInput() and WriteOutput() since the last
// Commit().
func (scr *Scribe) Rollback() {
	scr.inputLine = ""
	scr.outputLine = ""
}

// WriteInput writes user-input to the open script file.
func (scr *Scribe) WriteInput(command string) {
	if !scr.IsActive() {
		return
	}

	_ = scr.Commit()
	if command != "" {
		scr.inputLine = fmt.Sprintf("%s\n", command)
	}
}

// WriteOutput writes the output of the most recent command as a comment.
func (scr *Scribe) WriteOutput(result string) {
	if !scr.IsActive() || scr.inputLine == "" {
		return
	}

	for _, l := range strings.Split(result, "\n") {
		scr.outputLine = fmt.Sprintf("%s%s %s\n", scr.outputLine, commentLine, l)
	}
}

// Commit most recent calls to WriteInput() and WriteOutput().
func (scr *Scribe) Commit() error {
	if !scr.IsActive() {
		return nil
	}

	defer func() {
		scr.inputLine = ""
		scr.outputLine = ""
	}()

	for _, s := range []string{scr.inputLine, scr.outputLine} {
		if s == "" {
			continue
		}
		n, err := io.WriteString(scr.file, s)
		if err != nil {
			return fmt.Errorf("script: %w", err)
		}
		if n != len(s) {
			return fmt.Errorf("script: output truncated")
		}
	}

	return nil
}
