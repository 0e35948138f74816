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

package terminal

// Style is used to identify the category of text being sent to the
// Terminal.TermPrintLine() function.
type Style int

// List of terminal styles.
const (
	// input from the user being echoed back to the user. echoed input has
	// been "normalised" (eg. capitalised, leading space removed, etc.)
	StyleEcho Style = iota

	// information from the internal help system
	StyleHelp

	// information from a command
	StyleFeedback

	// the current instruction, printed after every step
	StyleInstruction

	// the program listing
	StyleListing

	// output from the program being debugged
	StyleProgramOutput

	// entries from the log
	StyleLog

	// an error has occurred
	StyleError
)

// IncludeInScriptOutput returns true if the style should be included in a
// transcript of a script.
func (s Style) IncludeInScriptOutput() bool {
	switch s {
	case StyleEcho, StyleHelp, StyleLog:
		return false
	}
	return true
}
