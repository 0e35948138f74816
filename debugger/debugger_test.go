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

package debugger_test

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/tapedeck/debugger"
	"github.com/jetsetilly/tapedeck/debugger/terminal"
	"github.com/jetsetilly/tapedeck/debugger/terminal/plainterm"
	"github.com/jetsetilly/tapedeck/engine"
	"github.com/jetsetilly/tapedeck/test"
)

// mockTerm feeds a fixed list of commands to the debugger and records
// everything the debugger prints, except for echoed input.
type mockTerm struct {
	inputs  []string
	prompts []string
	output  []string
}

func (trm *mockTerm) Initialise() error {
	return nil
}

func (trm *mockTerm) CleanUp() {
}

func (trm *mockTerm) RegisterTabCompletion(_ terminal.TabCompletion) {
}

func (trm *mockTerm) Silence(_ bool) {
}

func (trm *mockTerm) IsInteractive() bool {
	return false
}

func (trm *mockTerm) TermRead(prompt terminal.Prompt) (string, error) {
	trm.prompts = append(trm.prompts, prompt.String())
	if len(trm.inputs) == 0 {
		return "", io.EOF
	}
	s := trm.inputs[0]
	trm.inputs = trm.inputs[1:]
	return s, nil
}

func (trm *mockTerm) TermPrintLine(sty terminal.Style, s string) {
	if sty == terminal.StyleEcho {
		return
	}
	trm.output = append(trm.output, s)
}

// cmpOutput compares the entire output with the expected lines
func (trm *mockTerm) cmpOutput(t *testing.T, expected ...string) {
	t.Helper()
	if !test.ExpectEquality(t, len(trm.output), len(expected)) {
		t.Log(strings.Join(trm.output, "\n"))
		return
	}
	for i := range expected {
		test.ExpectEquality(t, trm.output[i], expected[i])
	}
}

func newDebugger(t *testing.T, source string, input string, commands ...string) (*debugger.Debugger, *mockTerm) {
	t.Helper()

	t.Setenv("TAPEDECK_HOME", t.TempDir())

	fn := filepath.Join(t.TempDir(), "prog.bf")
	test.DemandSuccess(t, os.WriteFile(fn, []byte(source), 0600))

	trm := &mockTerm{inputs: commands}
	dbg, err := debugger.NewDebugger(trm, fn, engine.Config{
		Input: strings.NewReader(input),
	}, nil)
	test.DemandSuccess(t, err)

	return dbg, trm
}

func TestDebuggerBreakpoints(t *testing.T) {
	dbg, trm := newDebugger(t, "++++++++++>>>>>>>>>>", "",
		"break 5 12",
		"break 5",
		"break 20",
		"run",
		"run",
		"run",
		"run",
		"list",
		"drop 5 6",
		"run reset",
		"quit",
		"list",
	)

	test.DemandSuccess(t, dbg.Start(""))

	trm.cmpOutput(t,
		"breakpoint added at index 5",
		"breakpoint added at index 12",
		"debugger: breakpoint already exists at index 5",
		"debugger: breakpoint index 20 is past the end of the program (20 instructions)",
		"breakpoint found at index 5",
		"breakpoint found at index 12",
		"reached end of program",
		"debugger: past end of program (reset required)",
		"breakpoints:",
		"  5: increment",
		"  12: forward",
		"breakpoint dropped at index 5",
		"debugger: no breakpoint at index 6",
		"breakpoint found at index 12",
	)

	// commands after QUIT are never read
	test.ExpectEquality(t, len(trm.inputs), 1)

	test.ExpectEquality(t, trm.prompts[0], "[ 0 + ] >> ")
	test.ExpectEquality(t, trm.prompts[4], "[ 5 + ] >> ")
	test.ExpectEquality(t, trm.prompts[6], "[ 20 end ] . ")
}

func TestDebuggerProgramOutput(t *testing.T) {
	dbg, trm := newDebugger(t, ",[.,]", "Hi\nyo",
		"run",
		"status",
	)

	test.DemandSuccess(t, dbg.Start(""))

	trm.cmpOutput(t,
		"Hi",
		"yo",
		"engine: i/o: EOF",
		"instruction pointer: 3 (, input)",
		"tape pointer: 0 of 30000",
		"cell value: 111 (0x6f)",
		"breakpoints: 0",
	)
}

func TestDebuggerStep(t *testing.T) {
	dbg, trm := newDebugger(t, "+[-]", "",
		"step",
		"step 2",
		"step",
		"step",
		"disasm 0",
		"reset",
		"break 2",
		"disasm",
		"step 0",
	)

	test.DemandSuccess(t, dbg.Start(""))

	trm.cmpOutput(t,
		"1  [  loop open",
		"3  ]  loop close",
		"4 end of program",
		"debugger: past end of program (reset required)",
		"   0  +",
		"   1  [  -> 3",
		"   2    -",
		"   3  ]  <- 1",
		"program reset",
		"breakpoint added at index 2",
		" > 0  +",
		"   1  [  -> 3",
		"*  2    -",
		"   3  ]  <- 1",
		"step count must be greater than zero (0)",
	)
}

func TestDebuggerMemdump(t *testing.T) {
	dbg, trm := newDebugger(t, "->++>+++<", "",
		"run",
		"memdump",
		"memdump width 3 upper",
		"memdump 3 width 3",
		"memdump width 4",
		"memdump 29999",
	)

	test.DemandSuccess(t, dbg.Start(""))

	trm.cmpOutput(t,
		"reached end of program",
		"00|01|02|03|04|05|06|07|08",
		"ff|02|03|00|00|00|00|00|00",
		"   ^^",
		"00|01|02",
		"FF|02|03",
		"   ^^",
		"03|04|05",
		"00|00|00",
		"debugger: memdump: width must be an odd number (4)",
		"debugger: memdump: end of dump (30008) is 8 cells past the end of the tape (30000)",
	)
}

func TestDebuggerValidation(t *testing.T) {
	dbg, trm := newDebugger(t, "+", "",
		"bogus",
		"break",
		"run now",
		"help step",
	)

	test.DemandSuccess(t, dbg.Start(""))

	trm.cmpOutput(t,
		"unrecognised command (bogus)",
		"<index> required for BREAK",
		"unrecognised argument (now) for RUN",
		"Execute the next instruction, or the next N instructions. Breakpoints are not checked.",
		"",
		"  Usage: STEP (<count>)",
	)
}

func TestDebuggerScript(t *testing.T) {
	dir := t.TempDir()
	rec := filepath.Join(dir, "rec.script")

	dbg, trm := newDebugger(t, "++++++++", "",
		"script record "+rec,
		"break 3",
		"bogus",
		"script end",
		"clear",
		"script "+rec,
		"list",
	)

	test.DemandSuccess(t, dbg.Start(""))

	trm.cmpOutput(t,
		"recording commands to "+rec,
		"breakpoint added at index 3",
		"unrecognised command (bogus)",
		"script "+rec+" recorded",
		"breakpoints cleared",
		"breakpoint added at index 3",
		"breakpoints:",
		"  3: increment",
	)

	b, err := os.ReadFile(rec)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(b), "break 3\n# breakpoint added at index 3\n")
}

func TestDebuggerInitScript(t *testing.T) {
	init := filepath.Join(t.TempDir(), "init.script")
	test.DemandSuccess(t, os.WriteFile(init, []byte("break 2\nbogus\nbreak 3\n"), 0600))

	dbg, trm := newDebugger(t, "++++++++", "", "list")
	test.DemandSuccess(t, dbg.Start(init))

	// an error in the script abandons the rest of the script
	trm.cmpOutput(t,
		"breakpoint added at index 2",
		"unrecognised command (bogus)",
		"breakpoints:",
		"  2: increment",
	)

	dbg, _ = newDebugger(t, "+", "")
	test.ExpectFailure(t, dbg.Start(filepath.Join(t.TempDir(), "missing.script")))
}

func TestDebuggerReload(t *testing.T) {
	dbg, trm := newDebugger(t, "+++", "",
		"break 1",
		"reload",
		"list",
	)

	test.DemandSuccess(t, dbg.Start(""))

	trm.cmpOutput(t,
		"breakpoint added at index 1",
		"program reloaded (3 instructions)",
		"no breakpoints",
	)
}

func TestDebuggerPrefs(t *testing.T) {
	dbg, trm := newDebugger(t, "+", "", "prefs")
	test.DemandSuccess(t, dbg.Start(""))
	trm.cmpOutput(t, "preferences are not available")

	home := t.TempDir()
	t.Setenv("TAPEDECK_HOME", home)
	prf, err := debugger.NewPreferences()
	test.DemandSuccess(t, err)

	fn := filepath.Join(t.TempDir(), "prog.bf")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("+"), 0600))
	trm = &mockTerm{inputs: []string{"prefs", "prefs save"}}
	dbg, err = debugger.NewDebugger(trm, fn, engine.Config{}, prf)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, dbg.Start(""))

	trm.cmpOutput(t,
		"debugger.historylength :: 500",
		"debugger.term :: COLOR",
		"engine.cells :: 30000",
		"engine.echo :: false",
		"preferences saved",
	)

	_, err = os.Stat(filepath.Join(home, "prefs.toml"))
	test.ExpectSuccess(t, err)
}

func TestDebuggerMemviz(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prog.dot")

	dbg, trm := newDebugger(t, "+[-]", "",
		"break 2",
		"memviz "+fn,
		"memviz "+fn,
	)
	test.DemandSuccess(t, dbg.Start(""))

	trm.cmpOutput(t,
		"breakpoint added at index 2",
		"memviz written to "+fn,
		"memviz: file already exists ("+fn+")",
	)

	b, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(b), "digraph"))
}

// consolePipe returns a file that reads back the content string, for use as
// the console input of the program being debugged.
func consolePipe(t *testing.T, content string) *os.File {
	t.Helper()

	r, w, err := os.Pipe()
	test.DemandSuccess(t, err)
	t.Cleanup(func() { _ = r.Close() })

	_, err = w.WriteString(content)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, w.Close())

	return r
}

func TestDebuggerConsoleEcho(t *testing.T) {
	t.Setenv("TAPEDECK_HOME", t.TempDir())

	fn := filepath.Join(t.TempDir(), "prog.bf")
	source := strings.Repeat("+", 65) + ".,."
	test.DemandSuccess(t, os.WriteFile(fn, []byte(source), 0600))

	// with echo the character read from the console appears in the program
	// output, and the output pending at the time of the read is printed first
	trm := &mockTerm{inputs: []string{"run"}}
	dbg, err := debugger.NewDebugger(trm, fn, engine.Config{
		Console: consolePipe(t, "z"),
		Echo:    true,
	}, nil)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, dbg.Start(""))
	trm.cmpOutput(t,
		"A",
		"zz",
		"reached end of program",
	)

	// without echo
	trm = &mockTerm{inputs: []string{"run"}}
	dbg, err = debugger.NewDebugger(trm, fn, engine.Config{
		Console: consolePipe(t, "z"),
	}, nil)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, dbg.Start(""))
	trm.cmpOutput(t,
		"A",
		"z",
		"reached end of program",
	)
}

func TestDebuggerSharedConsole(t *testing.T) {
	t.Setenv("TAPEDECK_HOME", t.TempDir())

	fn := filepath.Join(t.TempDir(), "prog.bf")
	test.DemandSuccess(t, os.WriteFile(fn, []byte(",."), 0600))

	// the terminal and the program read from the same file. neither should
	// consume input intended for the other
	pipe := consolePipe(t, "run\nxquit\n")
	w := &test.Writer{}
	trm := plainterm.NewPlainTerminal(pipe, w)

	dbg, err := debugger.NewDebugger(trm, fn, engine.Config{
		Console: pipe,
	}, nil)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, dbg.Start(""))

	test.ExpectEquality(t, w.String(), "x\nreached end of program\n")
}

func TestDebuggerDecimalBreakpoint(t *testing.T) {
	dbg, trm := newDebugger(t, "++++++++++++", "",
		"break 010",
		"break 0x0b",
		"list",
	)

	test.DemandSuccess(t, dbg.Start(""))

	// a leading zero does not mean octal
	trm.cmpOutput(t,
		"breakpoint added at index 10",
		"breakpoint added at index 11",
		"breakpoints:",
		"  10: increment",
		"  11: increment",
	)
}
