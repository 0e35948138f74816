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

package disassembly

import (
	"io"
	"strings"
)

// WriteAttr controls what is printed by the Write*() functions.
type WriteAttr struct {
	Mnemonic bool
	Depth    bool
	Partner  bool

	// prefix is called for every entry and the result is printed before the
	// index. it is the responsibility of the function to return strings of
	// the same length for every entry
	Prefix func(e Entry) string
}

// Write the entire listing to io.Writer.
func (dsm *Disassembly) Write(output io.Writer, attr WriteAttr) error {
	for _, e := range dsm.entries {
		if err := dsm.WriteLine(output, attr, e); err != nil {
			return err
		}
	}
	return nil
}

// WriteLine writes a single entry to io.Writer.
func (dsm *Disassembly) WriteLine(output io.Writer, attr WriteAttr, e Entry) error {
	s := strings.Builder{}

	if attr.Prefix != nil {
		s.WriteString(attr.Prefix(e))
	}

	s.WriteString(dsm.GetField(FldIndex, e))
	s.WriteString("  ")
	indent := e.Depth
	if e.IsBracket {
		indent--
	}
	s.WriteString(strings.Repeat("  ", indent))
	s.WriteString(dsm.GetField(FldInstruction, e))

	if attr.Mnemonic {
		s.WriteString("  ")
		s.WriteString(dsm.GetField(FldMnemonic, e))
	}
	if attr.Depth {
		s.WriteString("  ")
		s.WriteString(dsm.GetField(FldDepth, e))
	}
	if attr.Partner && e.IsBracket {
		s.WriteString("  ")
		s.WriteString(dsm.GetField(FldPartner, e))
	}

	_, err := io.WriteString(output, strings.TrimRight(s.String(), " \n")+"\n")
	return err
}
