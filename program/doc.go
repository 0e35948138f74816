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

// Package program loads source text into an immutable sequence of
// instructions. Any character in the source that is not one of the eight
// instruction symbols is discarded.
//
// Loop brackets are resolved at load time by the BracketIndex type. A program
// with unbalanced brackets cannot be loaded.
//
//	prog, err := program.Load("+[>,.<]")
//	if curated.Is(err, program.UnmatchedLoop) {
//		...
//	}
package program
