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

package commandline_test

import (
	"testing"

	"github.com/jetsetilly/tapedeck/debugger/terminal/commandline"
	"github.com/jetsetilly/tapedeck/test"
)

func TestValidation_required(t *testing.T) {
	cmds, err := commandline.ParseCommandTemplate([]string{
		"BREAK %<index>N {%<index>N}",
		"LIST [BREAKS]",
	})
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, cmds.Validate("break 10"))
	test.ExpectSuccess(t, cmds.Validate("BREAK 10 11 0x0c $0d"))
	test.ExpectSuccess(t, cmds.Validate("list breaks"))

	err = cmds.Validate("break")
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, err.Error(), "<index> required for BREAK")

	err = cmds.Validate("break 10 foo")
	test.ExpectEquality(t, err.Error(), "unrecognised argument (foo) for BREAK")

	err = cmds.Validate("list")
	test.ExpectEquality(t, err.Error(), "BREAKS required for LIST")

	err = cmds.Validate("list traps")
	test.ExpectEquality(t, err.Error(), "unrecognised argument (traps) for LIST")
}

func TestValidation_optional(t *testing.T) {
	cmds, err := commandline.ParseCommandTemplate([]string{
		"RUN (IGNORE) (RESET)",
		"MEMDUMP (%<offset>N) (WIDTH %<width>N) (UPPER)",
	})
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, cmds.Validate("run"))
	test.ExpectSuccess(t, cmds.Validate("run ignore"))
	test.ExpectSuccess(t, cmds.Validate("run reset"))
	test.ExpectSuccess(t, cmds.Validate("run ignore reset"))
	test.ExpectFailure(t, cmds.Validate("run reset ignore"))

	test.ExpectSuccess(t, cmds.Validate("memdump"))
	test.ExpectSuccess(t, cmds.Validate("memdump 100"))
	test.ExpectSuccess(t, cmds.Validate("memdump width 9"))
	test.ExpectSuccess(t, cmds.Validate("memdump 100 width 9 upper"))
	test.ExpectSuccess(t, cmds.Validate("memdump upper"))

	err = cmds.Validate("memdump width")
	test.ExpectFailure(t, err)

	err = cmds.Validate("memdump 100 200")
	test.ExpectEquality(t, err.Error(), "unrecognised argument (200) for MEMDUMP")
}

func TestValidation_alternatives(t *testing.T) {
	cmds, err := commandline.ParseCommandTemplate([]string{
		"SCRIPT [RECORD %<new file>F|END|%<file>F]",
		"PREFS (SAVE|LOAD)",
	})
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, cmds.Validate("script end"))
	test.ExpectSuccess(t, cmds.Validate("script record foo.txt"))
	test.ExpectSuccess(t, cmds.Validate("script foo.txt"))
	test.ExpectFailure(t, cmds.Validate("script"))
	test.ExpectSuccess(t, cmds.Validate("prefs"))
	test.ExpectSuccess(t, cmds.Validate("prefs Save"))
	test.ExpectFailure(t, cmds.Validate("prefs save load"))
}

func TestValidation_commands(t *testing.T) {
	cmds, err := commandline.ParseCommandTemplate([]string{"RUN"})
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, cmds.AddHelp("HELP", nil))

	// empty input is valid
	test.ExpectSuccess(t, cmds.Validate(""))
	test.ExpectSuccess(t, cmds.Validate("   "))

	err = cmds.Validate("walk")
	test.ExpectEquality(t, err.Error(), "unrecognised command (walk)")

	err = cmds.Validate("run fast")
	test.ExpectEquality(t, err.Error(), "unrecognised argument (fast) for RUN")

	test.ExpectSuccess(t, cmds.Validate("help run"))
	err = cmds.Validate("help walk")
	test.ExpectEquality(t, err.Error(), "no help for WALK")
}

func TestTokens(t *testing.T) {
	tk := commandline.TokeniseInput("  break   $10 20 ")
	test.ExpectEquality(t, tk.Len(), 3)
	test.ExpectEquality(t, tk.String(), "break 0x10 20")

	s, ok := tk.Get()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, s, "break")

	s, ok = tk.Peek()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, s, "0x10")
	test.ExpectEquality(t, tk.Remaining(), 2)
	test.ExpectEquality(t, tk.Remainder(), "0x10 20")

	tk.Unget()
	s, _ = tk.Get()
	test.ExpectEquality(t, s, "break")

	tk.End()
	test.ExpectSuccess(t, tk.IsEnd())
	_, ok = tk.Get()
	test.ExpectFailure(t, ok)

	tk.Reset()
	test.ExpectEquality(t, tk.Remaining(), 3)
}

func TestParseNumber(t *testing.T) {
	n, err := commandline.ParseNumber("10")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 10)

	// leading zeros are decimal
	n, err = commandline.ParseNumber("010")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 10)

	n, err = commandline.ParseNumber("0x0c")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 12)

	n, err = commandline.ParseNumber("$0d")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 13)

	n, err = commandline.ParseNumber("-1")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, -1)

	for _, tok := range []string{"", "-", "$", "0x", "foo", "1.5", "0x-1", "$+1", "--1"} {
		_, err = commandline.ParseNumber(tok)
		test.ExpectFailure(t, err, tok)
	}
}
