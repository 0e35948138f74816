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
	"strings"
	"unicode"
	"unicode/utf8"
)

// TabCompletion keeps track of the most recent tab completion attempt.
type TabCompletion struct {
	cmds *Commands

	matches        []string
	match          int
	lastCompletion string
}

// NewTabCompletion initialises a new TabCompletion instance. Completion
// options are taken from the Commands instance.
func NewTabCompletion(cmds *Commands) *TabCompletion {
	return &TabCompletion{cmds: cmds}
}

// Complete transforms the input such that the last word in the input is
// expanded to meet the closest match allowed by the template. Subsequent
// calls to Complete() without an intervening call to Reset() will cycle
// through the original available options.
func (tc *TabCompletion) Complete(input string) string {
	if len(tc.matches) > 0 && input == tc.lastCompletion {
		tc.match = (tc.match + 1) % len(tc.matches)
		tc.lastCompletion = tc.matches[tc.match]
		return tc.lastCompletion
	}

	tc.matches = tc.cmds.Completions(input)
	tc.match = 0
	if len(tc.matches) == 0 {
		tc.lastCompletion = ""
		return input
	}

	tc.lastCompletion = tc.matches[0]
	return tc.lastCompletion
}

// Reset is used to clear an outstanding completion session.
func (tc *TabCompletion) Reset() {
	tc.matches = tc.matches[:0]
	tc.lastCompletion = ""
}

// Completions returns every completion of the input. It does not affect the
// tab completion session.
func (tc *TabCompletion) Completions(input string) []string {
	return tc.cmds.Completions(input)
}

// Completions returns every possible completion of the last word in the
// input. Each completion is the entire input line with the last word replaced
// and a trailing space.
func (cmds Commands) Completions(input string) []string {
	fields := strings.Fields(input)

	// if the input does not end with a space then the last field is the word
	// being completed
	var partial string
	if r, _ := utf8.DecodeLastRuneInString(input); len(fields) > 0 && !unicode.IsSpace(r) {
		partial = strings.ToUpper(fields[len(fields)-1])
		fields = fields[:len(fields)-1]
	}

	var candidates []string
	if len(fields) == 0 {
		candidates = cmds.Keywords()
	} else {
		n, ok := cmds.Index[strings.ToUpper(fields[0])]
		if !ok {
			return nil
		}
		m := newMatcher(fields)
		m.match(n, 0, func(_ int) bool { return false })
		candidates = m.candidates
	}

	prefix := strings.Join(fields, " ")
	if prefix != "" {
		prefix += " "
	}

	var completions []string
	seen := make(map[string]bool)
	for _, c := range candidates {
		if seen[c] || !strings.HasPrefix(c, partial) {
			continue
		}
		seen[c] = true
		completions = append(completions, prefix+c+" ")
	}

	return completions
}
