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
	"github.com/jetsetilly/tapedeck/curated"
)

// Sentinal error patterns.
const (
	UnmatchedLoop = "program: unmatched loop bracket at index %d"
)

// BracketIndex records the partner of every loop bracket in a program. The
// partner of an open bracket is the matching close bracket and vice versa.
type BracketIndex struct {
	// indexed by instruction position. non-bracket positions are -1
	partner []int

	// number of bracket pairs
	pairs int
}

// NewBracketIndex scans the instructions from left to right and pairs each
// close bracket with the most recent unpaired open bracket. An unpaired
// bracket of either kind results in an UnmatchedLoop error.
func NewBracketIndex(instructions []Instruction) (*BracketIndex, error) {
	bi := &BracketIndex{
		partner: make([]int, len(instructions)),
	}

	var open []int

	for i, in := range instructions {
		bi.partner[i] = -1

		switch in {
		case LoopOpen:
			open = append(open, i)
		case LoopClose:
			if len(open) == 0 {
				return nil, curated.Errorf(UnmatchedLoop, i)
			}
			o := open[len(open)-1]
			open = open[:len(open)-1]
			bi.partner[o] = i
			bi.partner[i] = o
			bi.pairs++
		}
	}

	// report the innermost unclosed bracket
	if len(open) > 0 {
		return nil, curated.Errorf(UnmatchedLoop, open[len(open)-1])
	}

	return bi, nil
}

// Partner returns the index of the bracket paired with the bracket at index
// i. The boolean is false if there is no bracket at i.
func (bi *BracketIndex) Partner(i int) (int, bool) {
	if i < 0 || i >= len(bi.partner) || bi.partner[i] == -1 {
		return -1, false
	}
	return bi.partner[i], true
}

// Pair is an open bracket and its matching close bracket.
type Pair struct {
	Open  int
	Close int
}

// Pairs returns all bracket pairs in order of the open bracket position.
func (bi *BracketIndex) Pairs() []Pair {
	p := make([]Pair, 0, bi.pairs)
	for i, o := range bi.partner {
		if o > i {
			p = append(p, Pair{Open: i, Close: o})
		}
	}
	return p
}

// Depth returns the loop nesting depth at index i. A bracket counts as
// being inside the loop it delimits.
func (bi *BracketIndex) Depth(i int) int {
	var d int
	for _, p := range bi.Pairs() {
		if p.Open > i {
			break
		}
		if i <= p.Close {
			d++
		}
	}
	return d
}
