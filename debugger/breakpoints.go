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

package debugger

import (
	"slices"

	"github.com/jetsetilly/tapedeck/curated"
)

// Sentinal error patterns.
const (
	BreakpointExists   = "debugger: breakpoint already exists at index %d"
	BreakpointPastEnd  = "debugger: breakpoint index %d is past the end of the program (%d instructions)"
	BreakpointInvalid  = "debugger: invalid breakpoint index (%d)"
	BreakpointNotFound = "debugger: no breakpoint at index %d"
)

// Breakpoints is an ordered set of instruction indices at which a run of the
// program should halt.
type Breakpoints struct {
	indices []int
}

// Add a breakpoint at instruction index. The index must be inside a program of
// programLen instructions.
func (bp *Breakpoints) Add(index int, programLen int) error {
	if index < 0 {
		return curated.Errorf(BreakpointInvalid, index)
	}
	if index >= programLen {
		return curated.Errorf(BreakpointPastEnd, index, programLen)
	}

	i, found := slices.BinarySearch(bp.indices, index)
	if found {
		return curated.Errorf(BreakpointExists, index)
	}
	bp.indices = slices.Insert(bp.indices, i, index)

	return nil
}

// Remove the breakpoint at instruction index.
func (bp *Breakpoints) Remove(index int) error {
	i, found := slices.BinarySearch(bp.indices, index)
	if !found {
		return curated.Errorf(BreakpointNotFound, index)
	}
	bp.indices = slices.Delete(bp.indices, i, i+1)
	return nil
}

// List returns a copy of the breakpoint indices in ascending order.
func (bp *Breakpoints) List() []int {
	return slices.Clone(bp.indices)
}

// Clear all breakpoints.
func (bp *Breakpoints) Clear() {
	bp.indices = bp.indices[:0]
}

// Len returns the number of breakpoints.
func (bp *Breakpoints) Len() int {
	return len(bp.indices)
}

// Has returns true if there is a breakpoint at the instruction index.
func (bp *Breakpoints) Has(index int) bool {
	_, found := slices.BinarySearch(bp.indices, index)
	return found
}

// Next returns the first breakpoint strictly after the instruction index.
func (bp *Breakpoints) Next(index int) (int, bool) {
	i, found := slices.BinarySearch(bp.indices, index)
	if found {
		i++
	}
	if i >= len(bp.indices) {
		return 0, false
	}
	return bp.indices[i], true
}
