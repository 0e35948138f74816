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
	"sort"
	"strings"
	"unicode"
)

// ParseCommandTemplate turns a string representation of a command template
// into a machine friendly representation.
func ParseCommandTemplate(template []string) (*Commands, error) {
	cmds := &Commands{
		Index: make(map[string]*node),
	}

	for _, defn := range template {
		n, err := parseDefinition(defn)
		if err != nil {
			return nil, err
		}

		tag := n.children[0].tag
		if _, ok := cmds.Index[tag]; ok {
			return nil, fmt.Errorf("parser: %s: command defined more than once", tag)
		}

		cmds.cmds = append(cmds.cmds, n)
		cmds.Index[tag] = n
	}

	sort.Stable(cmds)

	return cmds, nil
}

type parser struct {
	defn []rune
	pos  int
}

func parseDefinition(defn string) (*node, error) {
	p := &parser{defn: []rune(strings.TrimSpace(defn))}

	n, err := p.sequence("")
	if err != nil {
		return nil, fmt.Errorf("parser: %s: %w (char %d)", defn, err, p.pos)
	}

	// a closing bracket will have stopped the sequence early
	if !p.end() {
		return nil, fmt.Errorf("parser: %s: unexpected %c (char %d)", defn, p.peek(), p.pos)
	}

	if len(n.children) == 0 || n.children[0].typ != nodeKeyword {
		return nil, fmt.Errorf("parser: %s: definition must begin with a keyword", defn)
	}

	return n, nil
}

func (p *parser) end() bool {
	return p.pos >= len(p.defn)
}

func (p *parser) peek() rune {
	return p.defn[p.pos]
}

func (p *parser) skipSpace() {
	for !p.end() && unicode.IsSpace(p.peek()) {
		p.pos++
	}
}

// sequence parses items until the end of the definition or until one of the
// runes in stop is encountered. The stop rune is not consumed.
func (p *parser) sequence(stop string) (*node, error) {
	seq := &node{typ: nodeSequence}

	for {
		p.skipSpace()
		if p.end() {
			return seq, nil
		}

		r := p.peek()
		if strings.ContainsRune(stop, r) {
			return seq, nil
		}

		var n *node
		var err error

		switch r {
		case '[':
			n, err = p.group(nodeRequired, ']')
		case '(':
			n, err = p.group(nodeOptional, ')')
		case '{':
			n, err = p.group(nodeRepeat, '}')
		case ']', ')', '}', '|':
			// an unexpected closing rune. the caller will deal with it
			return seq, nil
		case '%':
			n, err = p.placeholder()
		default:
			n, err = p.keyword()
		}

		if err != nil {
			return nil, err
		}

		seq.children = append(seq.children, n)
	}
}

func (p *parser) group(typ nodeType, closing rune) (*node, error) {
	// consume opening rune
	p.pos++

	grp := &node{typ: typ}

	for {
		alt, err := p.sequence("|" + string(closing))
		if err != nil {
			return nil, err
		}
		if len(alt.children) == 0 {
			return nil, fmt.Errorf("empty alternative in group")
		}
		grp.children = append(grp.children, alt)

		if p.end() {
			return nil, fmt.Errorf("unterminated group")
		}

		switch p.peek() {
		case '|':
			p.pos++
		case closing:
			p.pos++
			return grp, nil
		default:
			return nil, fmt.Errorf("mismatched group (%c)", p.peek())
		}
	}
}

func (p *parser) placeholder() (*node, error) {
	// consume percent sign
	p.pos++

	n := &node{typ: nodePlaceholder}

	if !p.end() && p.peek() == '<' {
		p.pos++
		start := p.pos
		for !p.end() && p.peek() != '>' {
			p.pos++
		}
		if p.end() {
			return nil, fmt.Errorf("unterminated placeholder label")
		}
		n.label = string(p.defn[start:p.pos])
		p.pos++
	}

	if p.end() {
		return nil, fmt.Errorf("incomplete placeholder")
	}

	switch unicode.ToUpper(p.peek()) {
	case 'N', 'P', 'S', 'F':
		n.tag = "%" + string(unicode.ToUpper(p.peek()))
	default:
		return nil, fmt.Errorf("unknown placeholder directive (%c)", p.peek())
	}
	p.pos++

	// placeholders must be separated from anything that follows
	if !p.end() && !unicode.IsSpace(p.peek()) && !strings.ContainsRune("|])}", p.peek()) {
		return nil, fmt.Errorf("placeholder must be followed by a space")
	}

	return n, nil
}

func (p *parser) keyword() (*node, error) {
	start := p.pos
	for !p.end() {
		r := p.peek()
		if unicode.IsSpace(r) || strings.ContainsRune("[](){}|", r) {
			break
		}
		if r == '%' {
			return nil, fmt.Errorf("placeholder must be separated from keyword")
		}
		p.pos++
	}
	return &node{
		typ: nodeKeyword,
		tag: strings.ToUpper(string(p.defn[start:p.pos])),
	}, nil
}
