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
	"fmt"

	"github.com/jetsetilly/tapedeck/program"
)

// Entry is a single decoded instruction in a program.
type Entry struct {
	Index       int
	Instruction program.Instruction

	// loop nesting depth of the instruction. the brackets of a loop are at
	// the depth of the loop they open and close
	Depth int

	// index of the matching bracket. only valid if IsBracket is true
	Partner   int
	IsBracket bool
}

// Field identifies a column in a listing.
type Field int

// List of valid Field values.
const (
	FldIndex Field = iota
	FldInstruction
	FldMnemonic
	FldDepth
	FldPartner
)

// GetField returns the formatted field. Fields are padded so that entries
// line up when printed one after another. The width of the index field is
// taken from the Disassembly the entry belongs to.
func (dsm *Disassembly) GetField(fld Field, e Entry) string {
	switch fld {
	case FldIndex:
		return fmt.Sprintf("%*d", dsm.indexWidth, e.Index)
	case FldInstruction:
		return e.Instruction.String()
	case FldMnemonic:
		return fmt.Sprintf("%-10s", e.Instruction.Mnemonic())
	case FldDepth:
		return fmt.Sprintf("depth %-2d", e.Depth)
	case FldPartner:
		if !e.IsBracket {
			return ""
		}
		if e.Instruction == program.LoopOpen {
			return fmt.Sprintf("-> %d", e.Partner)
		}
		return fmt.Sprintf("<- %d", e.Partner)
	}
	return ""
}
