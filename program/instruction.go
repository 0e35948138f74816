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

import "fmt"

// Instruction is a single program symbol.
type Instruction byte

// List of valid instructions.
const (
	Forward   Instruction = '>'
	Backward  Instruction = '<'
	Increment Instruction = '+'
	Decrement Instruction = '-'
	Output    Instruction = '.'
	Input     Instruction = ','
	LoopOpen  Instruction = '['
	LoopClose Instruction = ']'
)

// Decode returns the instruction for the rune and whether the rune is a valid
// instruction symbol.
func Decode(r rune) (Instruction, bool) {
	if r >= 0x80 {
		return 0, false
	}
	switch in := Instruction(r); in {
	case Forward, Backward, Increment, Decrement, Output, Input, LoopOpen, LoopClose:
		return in, true
	}
	return 0, false
}

// IsBracket returns true for LoopOpen and LoopClose.
func (in Instruction) IsBracket() bool {
	return in == LoopOpen || in == LoopClose
}

func (in Instruction) String() string {
	return string(rune(in))
}

// Mnemonic returns a short descriptive name for the instruction.
func (in Instruction) Mnemonic() string {
	switch in {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	case Increment:
		return "increment"
	case Decrement:
		return "decrement"
	case Output:
		return "output"
	case Input:
		return "input"
	case LoopOpen:
		return "loop open"
	case LoopClose:
		return "loop close"
	}
	return fmt.Sprintf("unknown (%#02x)", byte(in))
}
