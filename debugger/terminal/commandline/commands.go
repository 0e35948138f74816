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

// Commands is the root of the node tree.
type Commands struct {
	// Index of commands by keyword
	Index map[string]*node

	cmds []*node

	helpCommand string
	helps       map[string]string
}

// Len implements Sort package interface.
func (cmds Commands) Len() int {
	return len(cmds.cmds)
}

// Less implements Sort package interface.
func (cmds Commands) Less(i int, j int) bool {
	return cmds.cmds[i].children[0].tag < cmds.cmds[j].children[0].tag
}

// Swap implements Sort package interface.
func (cmds Commands) Swap(i int, j int) {
	cmds.cmds[i], cmds.cmds[j] = cmds.cmds[j], cmds.cmds[i]
}

// String returns the template form of every command, one per line.
func (cmds Commands) String() string {
	s := strings.Builder{}
	for _, c := range cmds.cmds {
		s.WriteString(c.String())
		s.WriteString("\n")
	}
	return strings.TrimRight(s.String(), "\n")
}

// Keywords returns the list of command keywords in alphabetical order.
func (cmds Commands) Keywords() []string {
	k := make([]string, len(cmds.cmds))
	for i, c := range cmds.cmds {
		k[i] = c.children[0].tag
	}
	return k
}

// AddHelp adds a help command to an already prepared Commands type. The help
// command takes any of the existing commands as an optional argument.
func (cmds *Commands) AddHelp(helpCommand string, helps map[string]string) error {
	helpCommand = strings.ToUpper(helpCommand)

	if _, ok := cmds.Index[helpCommand]; ok {
		return fmt.Errorf("%s: already defined", helpCommand)
	}

	defn := strings.Builder{}
	defn.WriteString(helpCommand)
	defn.WriteString(" (")
	for _, k := range cmds.Keywords() {
		defn.WriteString(k)
		defn.WriteString("|")
	}
	defn.WriteString(helpCommand)
	defn.WriteString(")")

	n, err := parseDefinition(defn.String())
	if err != nil {
		return err
	}

	cmds.cmds = append(cmds.cmds, n)
	cmds.Index[helpCommand] = n
	cmds.helpCommand = helpCommand
	cmds.helps = helps

	return nil
}

// HelpOverview returns a columnised list of all commands.
func (cmds Commands) HelpOverview() string {
	longest := 0
	for _, k := range cmds.Keywords() {
		if len(k) > longest {
			longest = len(k)
		}
	}

	cols := 80 / (longest + 3)
	if cols < 1 {
		cols = 1
	}

	s := strings.Builder{}
	for i, k := range cmds.Keywords() {
		s.WriteString(fmt.Sprintf("%-*s", longest+3, k))
		if i%cols == cols-1 {
			s.WriteString("\n")
		}
	}

	return strings.TrimRight(s.String(), " \n")
}

// Help returns the help text and usage for the command.
func (cmds Commands) Help(keyword string) string {
	keyword = strings.ToUpper(keyword)

	helpTxt, ok := cmds.helps[keyword]
	if !ok {
		return fmt.Sprintf("no help for %s", keyword)
	}

	s := strings.Builder{}
	s.WriteString(helpTxt)
	if cmd, ok := cmds.Index[keyword]; ok {
		s.WriteString("\n\n  Usage: ")
		s.WriteString(cmd.usage())
	}

	return s.String()
}

// Usage returns the usage string for the command.
func (cmds Commands) Usage(keyword string) string {
	if cmd, ok := cmds.Index[strings.ToUpper(keyword)]; ok {
		return cmd.usage()
	}
	return ""
}
