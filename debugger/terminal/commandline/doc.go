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

// Package commandline facilitates parsing of command line input. Given a
// command template, it can be used to tokenise and validate user input. It
// also functions as a tab-completion engine, implementing the
// terminal.TabCompletion interface.
//
// The Commands type is the base product of the package. To create an instance
// of Commands, use ParseCommandTemplate() with a suitable template. An
// example template would be:
//
//	template := []string {
//		"LIST",
//		"PRINT [%<message>S]",
//		"SORT (RISING|FALLING)",
//		"PICK %<index>N {%<index>N}",
//	}
//
// Template syntax:
//
//	[a|b]     required group. one of the alternatives must match
//	(a|b)     optional group. zero or one of the alternatives can match
//	{a|b}     repeat group. zero or more of the alternatives can match
//	%N        placeholder for a number (decimal, hex with 0x or $ prefix)
//	%P        placeholder for a floating point number
//	%S        placeholder for any string
//	%F        placeholder for a filename
//
// A placeholder can be given a label, which is used in usage strings. For
// example, %<index>N. Alternatives in a group can be sequences of more than
// one argument and groups can be nested.
//
// The first word of each template entry is the command keyword. Keywords are
// matched case-insensitively.
//
// Once parsed, the resulting Commands instance can be used to validate input.
//
//	cmds, _ := ParseCommandTemplate(template)
//	toks := TokeniseInput("list")
//	err := cmds.ValidateTokens(toks)
//	if err != nil {
//		panic("validation failed")
//	}
//
// Once validated the tokens can be processed with the Get() function, safe in
// the knowledge that they are in the form required by the template.
//
// The TabCompletion type is used to transform input such that it more closely
// resembles a valid command according to the supplied template.
//
//	tbc := NewTabCompletion(cmds)
//	inp := tbc.Complete("LIS")
//
// In this instance the value of inp will be "LIST " (note the trailing space).
// Given a number of options to use for the completion, the first option will
// be returned first followed by the second, third, etc. on subsequent calls to
// Complete(). A tab completion session can be terminated with a call to
// Reset().
package commandline
