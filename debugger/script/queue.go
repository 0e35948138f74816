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
	"io/fs"
	"os"
	"strings"
)

// commentLine prefixes lines in a script that are not commands.
const commentLine = "#"

// Line is a single command taken from the queue.
type Line struct {
	Entry string

	// the command came from a script file rather than from the user
	Batch bool
}

// Queue normalises input into commands and dishes out those commands one at
// a time. Used by interactive terminals and scripts.
type Queue struct {
	lines []Line
}

// More returns true if there are more commands in the queue.
func (q *Queue) More() bool {
	return len(q.lines) > 0
}

// Next command in the queue.
func (q *Queue) Next() (Line, bool) {
	if len(q.lines) > 0 {
		ln := q.lines[0]
		q.lines = q.lines[1:]
		return ln, true
	}
	return Line{}, false
}

// Clear removes all commands from the queue.
func (q *Queue) Clear() {
	q.lines = q.lines[:0]
}

// Push input line onto the end of the queue.
func (q *Queue) Push(input string) {
	q.lines = append(q.lines, split(input, false)...)
}

// Load script into the queue. The script is placed in front of any commands
// already in the queue.
func (q *Queue) Load(filename string) error {
	b, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("script: no such file: %s", filename)
		}
		return fmt.Errorf("script: %w", err)
	}

	q.lines = append(split(string(b), true), q.lines...)

	return nil
}

func split(input string, batch bool) []Line {
	// replace windows and mac line endings with unix line endings
	input = strings.ReplaceAll(input, "\r\n", "\n")
	input = strings.ReplaceAll(input, "\r", "\n")

	var lines []Line

	for _, s := range strings.Split(input, "\n") {
		if strings.HasPrefix(strings.TrimSpace(s), commentLine) {
			continue
		}

		// commands can be separated by semi-colons as well as newlines
		for _, c := range strings.Split(s, ";") {
			c = strings.TrimSpace(c)
			if len(c) > 0 {
				lines = append(lines, Line{Entry: c, Batch: batch})
			}
		}
	}

	return lines
}
