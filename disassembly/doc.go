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

// Package disassembly creates listings of loaded programs. Each instruction
// in the program is described by an Entry, which records the loop depth of
// the instruction and, for loop brackets, the index of the partner bracket.
//
// For quick listings the Write() function can be used. The debugger uses
// WriteLine() so that it can decorate each entry with markers for the
// instruction pointer and breakpoints.
package disassembly
