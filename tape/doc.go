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

// Package tape implements the memory of the virtual machine. A tape is a
// fixed number of byte sized cells and a pointer to the current cell.
//
// Both the pointer and the cell values wrap. Moving the pointer backwards from
// the first cell will place it at the last cell and decrementing a cell with
// the value zero will result in the value 255.
package tape
