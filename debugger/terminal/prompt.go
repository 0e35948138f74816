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

package terminal

import (
	"fmt"
	"strings"
)

// Prompt specifies the prompt text and the prompt style.
type Prompt struct {
	// the content
	Content string

	// the program has reached the end and must be reset before running
	Halted bool

	// commands are being read from a script
	Scripted bool
}

// String returns the prompt with "standard" decoration.
func (p Prompt) String() string {
	s := strings.Builder{}
	s.WriteString("[ ")
	if p.Scripted {
		s.WriteString("(script) ")
	}
	s.WriteString(strings.TrimSpace(p.Content))
	s.WriteString(" ]")

	if p.Halted {
		s.WriteString(" . ")
	} else {
		s.WriteString(" >> ")
	}

	return s.String()
}

// NewPrompt creates a prompt showing the instruction pointer and the
// instruction at that position.
func NewPrompt(ip int, instruction string, halted bool) Prompt {
	if halted {
		return Prompt{Content: fmt.Sprintf("%d end", ip), Halted: true}
	}
	return Prompt{Content: fmt.Sprintf("%d %s", ip, instruction)}
}
