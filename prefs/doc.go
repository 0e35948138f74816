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

// Package prefs facilitates the storage of preferences on disk. Preference
// values are of the types defined in this package (Bool, Int and String) and
// are associated with a key in a Disk instance.
//
// The file is written in TOML. Keys are dotted and the part before the last
// dot becomes the table name. For example the key "debugger.term" is written
// as:
//
//	[debugger]
//	term = "COLOR"
//
// Values given on the command line can override values from the file. The
// command line stack is pushed before a Disk is loaded and any key found there
// takes precedence over the value in the file.
package prefs
