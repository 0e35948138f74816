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

// Disassembly is the decoded listing of a program.
type Disassembly struct {
	entries []Entry

	// number of digits required for the largest index
	indexWidth int
}

// FromProgram creates a listing of a loaded program.
func FromProgram(prog *program.Program) *Disassembly {
	dsm := &Disassembly{
		entries:    make([]Entry, prog.Len()),
		indexWidth: len(fmt.Sprintf("%d", max(prog.Len()-1, 0))),
	}

	for i := range dsm.entries {
		e := Entry{
			Index:       i,
			Instruction: prog.At(i),
			Depth:       prog.Brackets().Depth(i),
		}
		e.Partner, e.IsBracket = prog.Brackets().Partner(i)
		dsm.entries[i] = e
	}

	return dsm
}

// FromFile loads and creates a listing of the named program.
func FromFile(filename string) (*Disassembly, error) {
	prog, err := program.LoadFile(filename)
	if err != nil {
		return nil, err
	}
	return FromProgram(prog), nil
}

// Len returns the number of entries in the listing.
func (dsm *Disassembly) Len() int {
	return len(dsm.entries)
}

// Get the entry at index.
func (dsm *Disassembly) Get(index int) (Entry, bool) {
	if index < 0 || index >= len(dsm.entries) {
		return Entry{}, false
	}
	return dsm.entries[index], true
}

// Range returns up to count entries starting at index from. The range is
// clipped to the listing.
func (dsm *Disassembly) Range(from int, count int) []Entry {
	from = max(from, 0)
	to := min(from+max(count, 0), len(dsm.entries))
	if from >= to {
		return nil
	}
	return dsm.entries[from:to]
}
