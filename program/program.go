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

package program

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/jetsetilly/tapedeck/curated"
)

// Sentinal error patterns.
const (
	FileError = "program: file: %s: %v"
)

// Program is an immutable list of instructions together with the resolved
// loop brackets.
type Program struct {
	instructions []Instruction
	brackets     *BracketIndex
}

// Load filters the source text, keeping only instruction symbols, and
// resolves the loop brackets. A source with no instructions is valid and
// results in an empty program.
func Load(source string) (*Program, error) {
	prog := &Program{
		instructions: make([]Instruction, 0, len(source)),
	}

	for _, r := range source {
		if in, ok := Decode(r); ok {
			prog.instructions = append(prog.instructions, in)
		}
	}

	var err error
	prog.brackets, err = NewBracketIndex(prog.instructions)
	if err != nil {
		return nil, err
	}

	return prog, nil
}

// LoadFile reads the named file and loads its contents.
func LoadFile(filename string) (*Program, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return nil, curated.Errorf(FileError, filename, "file not found")
		case errors.Is(err, fs.ErrPermission):
			return nil, curated.Errorf(FileError, filename, "permission denied")
		}
		return nil, curated.Errorf(FileError, filename, err)
	}
	return Load(string(b))
}

// Len returns the number of instructions in the program.
func (prog *Program) Len() int {
	return len(prog.instructions)
}

// At returns the instruction at index i. It will panic if i is out of range.
func (prog *Program) At(i int) Instruction {
	return prog.instructions[i]
}

// Brackets returns the BracketIndex for the program.
func (prog *Program) Brackets() *BracketIndex {
	return prog.brackets
}

// String returns the filtered source.
func (prog *Program) String() string {
	s := strings.Builder{}
	s.Grow(len(prog.instructions))
	for _, in := range prog.instructions {
		s.WriteByte(byte(in))
	}
	return s.String()
}
