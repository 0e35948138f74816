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

//go:build !windows

package colorterm

import (
	"unicode"
	"unicode/utf8"

	"github.com/jetsetilly/tapedeck/ansi"
	"github.com/jetsetilly/tapedeck/debugger/terminal"
	"github.com/jetsetilly/tapedeck/easyterm"
)

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(prompt terminal.Prompt) (string, error) {
	if ct.silenced {
		return "", nil
	}

	ct.RawMode()
	defer ct.CanonicalMode()

	p := prompt.String()

	// the input line and the cursor position within the line. the cursor is
	// counted in runes
	var input []rune
	cursor := 0

	// history is the index of the history entry being shown. buffInput is the
	// input that was being typed before the user started moving through the
	// history
	history := len(ct.commandHistory)
	var buffInput []rune

	// the method for cursor placement is as follows:
	//	1. store current cursor position
	//	2. clear the current line
	//	3. output the prompt
	//	4. output the input buffer
	//	5. restore the cursor position
	//
	// for this to work we need to place the cursor in it's initial position
	ct.TermPrint("\r")
	ct.TermPrint(ansi.CursorMove(utf8.RuneCountInString(p)))

	for {
		ct.TermPrint(ansi.CursorStore)
		ct.TermPrint(ansi.ClearLine)
		ct.TermPrint("\r")
		ct.TermPrint(ansi.PenStyles["bold"])
		ct.TermPrint(p)
		ct.TermPrint(ansi.NormalPen)
		ct.TermPrint(string(input))
		ct.TermPrint(ansi.CursorRestore)

		r, _, err := ct.reader.ReadRune()
		if err != nil {
			return "", err
		}

		if r != easyterm.KeyTab && ct.tabCompletion != nil {
			ct.tabCompletion.Reset()
		}

		switch r {
		case easyterm.KeyTab:
			if ct.tabCompletion != nil {
				s := []rune(ct.tabCompletion.Complete(string(input[:cursor])))
				d := len(s) - cursor
				input = append(s, input[cursor:]...)
				ct.TermPrint(ansi.CursorMove(d))
				cursor += d
			}

		case easyterm.KeyCtrlC:
			ct.TermPrint("\r\n")
			return "", terminal.UserInterrupt

		case easyterm.KeyCtrlD:
			if len(input) == 0 {
				ct.TermPrint("\r\n")
				return "", terminal.UserInterrupt
			}

		case easyterm.KeyCarriageReturn, easyterm.KeyLineFeed:
			s := string(input)

			// do not add consecutive duplicates to the history
			if len(s) > 0 {
				if len(ct.commandHistory) == 0 || ct.commandHistory[len(ct.commandHistory)-1] != s {
					ct.commandHistory = append(ct.commandHistory, s)
				}
			}

			ct.TermPrint("\r\n")
			return s, nil

		case easyterm.KeyEsc:
			r, _, err := ct.reader.ReadRune()
			if err != nil {
				return "", err
			}
			if r != easyterm.EscCursor {
				continue // for loop
			}

			r, _, err = ct.reader.ReadRune()
			if err != nil {
				return "", err
			}

			switch r {
			case easyterm.CursorUp:
				if history > 0 {
					if history == len(ct.commandHistory) {
						buffInput = append(buffInput[:0], input...)
					}
					history--
					input = []rune(ct.commandHistory[history])
					ct.TermPrint(ansi.CursorMove(len(input) - cursor))
					cursor = len(input)
				}
			case easyterm.CursorDown:
				if history < len(ct.commandHistory) {
					history++
					if history == len(ct.commandHistory) {
						input = append([]rune{}, buffInput...)
					} else {
						input = []rune(ct.commandHistory[history])
					}
					ct.TermPrint(ansi.CursorMove(len(input) - cursor))
					cursor = len(input)
				}
			case easyterm.CursorForward:
				if cursor < len(input) {
					ct.TermPrint(ansi.CursorForwardOne)
					cursor++
				}
			case easyterm.CursorBackward:
				if cursor > 0 {
					ct.TermPrint(ansi.CursorBackwardOne)
					cursor--
				}
			case easyterm.EscDelete:
				// delete key is followed by a tilde
				_, _, _ = ct.reader.ReadRune()
				if cursor < len(input) {
					input = append(input[:cursor], input[cursor+1:]...)
					history = len(ct.commandHistory)
				}
			}

		case easyterm.KeyBackspace, '\b':
			if cursor > 0 {
				input = append(input[:cursor-1], input[cursor:]...)
				ct.TermPrint(ansi.CursorBackwardOne)
				cursor--
				history = len(ct.commandHistory)
			}

		default:
			if unicode.IsPrint(r) {
				input = append(input[:cursor], append([]rune{r}, input[cursor:]...)...)
				ct.TermPrint(ansi.CursorForwardOne)
				cursor++
				history = len(ct.commandHistory)
			}
		}
	}
}
