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
	"strconv"
	"strings"
)

type nodeType int

const (
	nodeSequence nodeType = iota
	nodeRequired
	nodeOptional
	nodeRepeat
	nodeKeyword
	nodePlaceholder
)

// node is an element in the command tree. Sequence and group nodes have
// children. For group nodes each child is an alternative and each alternative
// is itself a sequence.
type node struct {
	typ nodeType

	// keyword in upper case or placeholder directive (eg. "%N")
	tag string

	// friendly name for placeholders
	label string

	children []*node
}

// the canonical template form of the node.
func (n *node) String() string {
	switch n.typ {
	case nodeKeyword:
		return n.tag
	case nodePlaceholder:
		if n.label != "" {
			return fmt.Sprintf("%%<%s>%s", n.label, n.tag[1:])
		}
		return n.tag
	case nodeSequence:
		return n.join(" ", (*node).String)
	case nodeRequired:
		return fmt.Sprintf("[%s]", n.join("|", (*node).String))
	case nodeOptional:
		return fmt.Sprintf("(%s)", n.join("|", (*node).String))
	case nodeRepeat:
		return fmt.Sprintf("{%s}", n.join("|", (*node).String))
	}
	return ""
}

// the usage form of the node. placeholders are shown as <label>.
func (n *node) usage() string {
	switch n.typ {
	case nodeKeyword:
		return n.tag
	case nodePlaceholder:
		if n.label != "" {
			return fmt.Sprintf("<%s>", n.label)
		}
		switch n.tag {
		case "%N":
			return "<number>"
		case "%P":
			return "<float>"
		case "%F":
			return "<file>"
		}
		return "<string>"
	case nodeSequence:
		return n.join(" ", (*node).usage)
	case nodeRequired:
		return fmt.Sprintf("[%s]", n.join("|", (*node).usage))
	case nodeOptional:
		return fmt.Sprintf("(%s)", n.join("|", (*node).usage))
	case nodeRepeat:
		return fmt.Sprintf("{%s}", n.join("|", (*node).usage))
	}
	return ""
}

func (n *node) join(sep string, f func(*node) string) string {
	s := make([]string, len(n.children))
	for i, c := range n.children {
		s[i] = f(c)
	}
	return strings.Join(s, sep)
}

// accepts returns true if the token satisfies a keyword or placeholder node.
func (n *node) accepts(tok string) bool {
	switch n.typ {
	case nodeKeyword:
		return strings.ToUpper(tok) == n.tag
	case nodePlaceholder:
		switch n.tag {
		case "%N":
			_, err := ParseNumber(tok)
			return err == nil
		case "%P":
			_, err := strconv.ParseFloat(tok, 64)
			return err == nil
		}
		return true
	}
	return false
}

// matcher walks the node tree against a list of tokens. Matching is by
// backtracking. Each match function is given a continuation that is called
// with the index of the next unmatched token.
type matcher struct {
	tokens []string

	// the furthest token that failed to match. -1 if every token encountered
	// was matched
	furthest int

	// the first node that was wanted after the last token
	wanted *node

	// every keyword that could follow the last token
	candidates []string
}

func newMatcher(tokens []string) *matcher {
	return &matcher{
		tokens:   tokens,
		furthest: -1,
	}
}

func (m *matcher) fail(i int) {
	if i > m.furthest {
		m.furthest = i
	}
}

func (m *matcher) match(n *node, i int, k func(int) bool) bool {
	switch n.typ {
	case nodeSequence:
		return m.sequence(n.children, i, k)

	case nodeRequired:
		for _, c := range n.children {
			if m.match(c, i, k) {
				return true
			}
		}
		return false

	case nodeOptional:
		for _, c := range n.children {
			if m.match(c, i, k) {
				return true
			}
		}
		return k(i)

	case nodeRepeat:
		for _, c := range n.children {
			// each repetition must consume at least one token
			if m.match(c, i, func(j int) bool {
				return j > i && m.match(n, j, k)
			}) {
				return true
			}
		}
		return k(i)

	case nodeKeyword, nodePlaceholder:
		if i >= len(m.tokens) {
			if m.wanted == nil {
				m.wanted = n
			}
			if n.typ == nodeKeyword {
				m.candidates = append(m.candidates, n.tag)
			}
			return false
		}
		if !n.accepts(m.tokens[i]) {
			m.fail(i)
			return false
		}
		return k(i + 1)
	}

	return false
}

func (m *matcher) sequence(nodes []*node, i int, k func(int) bool) bool {
	if len(nodes) == 0 {
		return k(i)
	}
	return m.match(nodes[0], i, func(j int) bool {
		return m.sequence(nodes[1:], j, k)
	})
}
