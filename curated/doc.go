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

// Package curated is a helper package for the error type. Curated errors are
// created with Errorf() and identified later by the pattern they were created
// with, rather than by the formatted message.
//
//	e := curated.Errorf(tape.InvalidCapacity, 0)
//
//	if curated.Is(e, tape.InvalidCapacity) {
//		fmt.Println("true")
//	}
//
// The Has() function looks through the chain of wrapped curated errors for a
// pattern:
//
//	f := curated.Errorf("debugger: %v", e)
//
//	if curated.Has(f, tape.InvalidCapacity) {
//		fmt.Println("true")
//	}
//
// Wrapping the same context more than once does not repeat it in the
// formatted message. For example:
//
//	a := curated.Errorf("engine: %v", curated.Errorf("engine: %v", io.EOF))
//	fmt.Println(a)
//
// will print:
//
//	engine: EOF
//
// Any error values passed to Errorf() are reachable with the standard
// errors.Is() and errors.As() functions, so an io.EOF from an input channel can
// be tested for even when it has been curated along the way.
package curated
