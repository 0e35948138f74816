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

// Package script allows the debugger to record and replay debugging scripts.
//
// The Scribe type records commands entered by the user, along with the
// output of those commands, to a script file. Output lines are written as
// comments and so are ignored when the script is replayed.
//
// The Queue type normalises input into individual commands. A single line of
// input can contain several commands separated by semi-colons. Scripts are
// loaded into a Queue and are replayed a command at a time. Comment lines
// begin with the # symbol.
package script
