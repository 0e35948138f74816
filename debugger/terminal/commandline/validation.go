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

package commandline

import (
	"fmt"
	"strings"
)

// Validate input string against command defintions.
func (cmds Commands) Validate(input string) error {
	return cmds.ValidateTokens(TokeniseInput(input))
}

// ValidateTokens like Validate, but works on tokens rather than an input
// string. An empty list of tokens is valid.
func (cmds Commands) ValidateTokens(tokens *Tokens) error {
	if tokens.Len() == 0 {
		return nil
	}

	cmd := strings.ToUpper(tokens.tokens[0])
	n, ok := cmds.Index[cmd]
	if !ok {
		return fmt.Errorf("unrecognised command (%s)", tokens.tokens[0])
	}

	m := newMatcher(tokens.tokens)
	if m.match(n, 0, func(i int) bool {
		if i == len(m.tokens) {
			return true
		}
		m.fail(i)
		return false
	}) {
		return nil
	}

	if m.furthest >= 0 {
		arg := m.tokens[m.furthest]

		if cmd == cmds.helpCommand {
			return fmt.Errorf("no help for %s", strings.ToUpper(arg))
		}

		return fmt.Errorf("unrecognised argument (%s) for %s", arg, cmd)
	}

	if m.wanted != nil {
		return fmt.Errorf("%s required for %s", m.wanted.usage(), cmd)
	}

	return fmt.Errorf("invalid arguments for %s", cmd)
}
