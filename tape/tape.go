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

package tape

import (
	"github.com/jetsetilly/tapedeck/curated"
)

// DefaultCapacity is the number of cells in a tape if no other value is
// specified.
const DefaultCapacity = 30000

// Sentinal error patterns.
const (
	InvalidCapacity = "tape: invalid capacity (%d)"
	InvalidRange    = "tape: invalid range (%d to %d)"
)

// Tape is a circular array of cells and a pointer into that array.
type Tape struct {
	cells []byte
	ptr   int
}

// New is the preferred method of initialisation for the Tape type. The
// capacity must be greater than zero.
func New(capacity int) (*Tape, error) {
	if capacity <= 0 {
		return nil, curated.Errorf(InvalidCapacity, capacity)
	}
	return &Tape{
		cells: make([]byte, capacity),
	}, nil
}

// Len returns the number of cells in the tape.
func (tp *Tape) Len() int {
	return len(tp.cells)
}

// Pointer returns the index of the current cell.
func (tp *Tape) Pointer() int {
	return tp.ptr
}

// Advance moves the pointer forward by one cell.
func (tp *Tape) Advance() {
	tp.ptr++
	if tp.ptr >= len(tp.cells) {
		tp.ptr = 0
	}
}

// Retreat moves the pointer back by one cell.
func (tp *Tape) Retreat() {
	if tp.ptr == 0 {
		tp.ptr = len(tp.cells)
	}
	tp.ptr--
}

// Read returns the value of the current cell.
func (tp *Tape) Read() byte {
	return tp.cells[tp.ptr]
}

// Write sets the value of the current cell.
func (tp *Tape) Write(v byte) {
	tp.cells[tp.ptr] = v
}

// Increment adds one to the current cell.
func (tp *Tape) Increment() {
	tp.cells[tp.ptr]++
}

// Decrement subtracts one from the current cell.
func (tp *Tape) Decrement() {
	tp.cells[tp.ptr]--
}

// Reset zeroes every cell and returns the pointer to the first cell.
func (tp *Tape) Reset() {
	clear(tp.cells)
	tp.ptr = 0
}

// Peek returns a copy of the cells from index from up to but not including
// index to.
func (tp *Tape) Peek(from int, to int) ([]byte, error) {
	if from < 0 || to > len(tp.cells) || from > to {
		return nil, curated.Errorf(InvalidRange, from, to)
	}
	c := make([]byte, to-from)
	copy(c, tp.cells[from:to])
	return c, nil
}
