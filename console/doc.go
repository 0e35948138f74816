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

// Package console provides the interactive input and output used by the
// engine when no other input or output has been specified.
//
// Input is read one character at a time. If the input is a real terminal it
// is put into cbreak mode for the duration of the read so that the user does
// not have to press return after every character. Only ASCII characters are
// accepted. Other characters are logged and ignored.
//
// Nothing is read from the input beyond the character being returned. The
// same file can therefore be shared with a line based reader, such as the
// debugger's terminal, without either swallowing the other's input. The
// RuneReader type is provided for that purpose.
package console
