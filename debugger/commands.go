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

package debugger

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/tapedeck/curated"
	"github.com/jetsetilly/tapedeck/debugger/terminal"
	"github.com/jetsetilly/tapedeck/debugger/terminal/commandline"
	"github.com/jetsetilly/tapedeck/disassembly"
	"github.com/jetsetilly/tapedeck/logger"
)

// default number of instructions shown by the DISASM command and the number
// of those that come before the current instruction
const (
	disasmCount   = 11
	disasmContext = 5
)

// parseNumber is only used on tokens that have been validated against the
// command template so the error can be ignored
func parseNumber(tok string) int {
	n, _ := commandline.ParseNumber(tok)
	return n
}

// parseCommand scans user input for a valid command and acts upon it.
func (dbg *Debugger) parseCommand(input string) error {
	tokens := commandline.TokeniseInput(input)

	if err := dbg.cmds.ValidateTokens(tokens); err != nil {
		return err
	}

	tokens.Reset()
	command, ok := tokens.Get()
	if !ok {
		return nil
	}

	switch strings.ToUpper(command) {
	default:
		return fmt.Errorf("%s is not yet implemented", command)

	case cmdHelp:
		keyword, ok := tokens.Get()
		if ok {
			dbg.printLine(terminal.StyleHelp, dbg.cmds.Help(keyword))
		} else {
			dbg.printLine(terminal.StyleHelp, dbg.cmds.HelpOverview())
		}

	case cmdQuit:
		dbg.running = false

	case cmdRun:
		var ignore bool
		for tok, ok := tokens.Get(); ok; tok, ok = tokens.Get() {
			switch strings.ToUpper(tok) {
			case "IGNORE":
				ignore = true
			case "RESET":
				dbg.ses.Reset()
			}
		}

		h, err := dbg.ses.Run(ignore)
		dbg.output.flush()
		if err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, "%s", h)

	case cmdStep:
		count := 1
		if tok, ok := tokens.Get(); ok {
			count = parseNumber(tok)
			if count < 1 {
				return fmt.Errorf("step count must be greater than zero (%d)", count)
			}
		}

		if dbg.ses.Engine().Halted() {
			return curated.Errorf(PastEnd)
		}

		_, err := dbg.ses.Step(count)
		dbg.output.flush()
		if err != nil {
			return err
		}
		dbg.printInstruction()

	case cmdReset:
		dbg.ses.Reset()
		dbg.printLine(terminal.StyleFeedback, "program reset")

	case cmdReload:
		if err := dbg.ses.Reload(); err != nil {
			return err
		}
		dbg.dsm = disassembly.FromProgram(dbg.ses.Program())
		dbg.logf("reloaded %s", dbg.ses.Filename())
		dbg.printLine(terminal.StyleFeedback, "program reloaded (%d instructions)", dbg.ses.Program().Len())

	case cmdBreak:
		for tok, ok := tokens.Get(); ok; tok, ok = tokens.Get() {
			idx := parseNumber(tok)
			if err := dbg.ses.Breakpoints().Add(idx, dbg.ses.Program().Len()); err != nil {
				dbg.printLine(terminal.StyleError, "%v", err)
				continue
			}
			dbg.printLine(terminal.StyleFeedback, "breakpoint added at index %d", idx)
		}

	case cmdDrop:
		for tok, ok := tokens.Get(); ok; tok, ok = tokens.Get() {
			idx := parseNumber(tok)
			if err := dbg.ses.Breakpoints().Remove(idx); err != nil {
				dbg.printLine(terminal.StyleError, "%v", err)
				continue
			}
			dbg.printLine(terminal.StyleFeedback, "breakpoint dropped at index %d", idx)
		}

	case cmdClear:
		dbg.ses.Breakpoints().Clear()
		dbg.printLine(terminal.StyleFeedback, "breakpoints cleared")

	case cmdList:
		bps := dbg.ses.Breakpoints().List()
		if len(bps) == 0 {
			dbg.printLine(terminal.StyleFeedback, "no breakpoints")
			return nil
		}
		dbg.printLine(terminal.StyleFeedback, "breakpoints:")
		for _, idx := range bps {
			dbg.printLine(terminal.StyleFeedback, "  %d: %s", idx, dbg.ses.Program().At(idx).Mnemonic())
		}

	case cmdStatus:
		eng := dbg.ses.Engine()
		if eng.Halted() {
			dbg.printLine(terminal.StyleFeedback, "instruction pointer: %d (end of program)", eng.IP())
		} else {
			in := eng.Program().At(eng.IP())
			dbg.printLine(terminal.StyleFeedback, "instruction pointer: %d (%s %s)", eng.IP(), in, in.Mnemonic())
		}
		dbg.printLine(terminal.StyleFeedback, "tape pointer: %d of %d", eng.Pointer(), eng.Cells())
		dbg.printLine(terminal.StyleFeedback, "cell value: %d (%#02x)", eng.Cell(), eng.Cell())
		dbg.printLine(terminal.StyleFeedback, "breakpoints: %d", dbg.ses.Breakpoints().Len())

	case cmdMemdump:
		args := memdumpArgs{
			width:   defaultMemdumpWidth,
			columns: dbg.columns(),
		}
		for tok, ok := tokens.Get(); ok; tok, ok = tokens.Get() {
			switch strings.ToUpper(tok) {
			case "WIDTH":
				tok, _ = tokens.Get()
				args.width = parseNumber(tok)
			case "UPPER":
				args.upper = true
			default:
				args.offset = parseNumber(tok)
			}
		}

		s, err := memdump(dbg.ses.Engine(), args)
		if err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, "%s", s)

	case cmdDisasm:
		from := max(dbg.ses.Engine().IP()-disasmContext, 0)
		count := disasmCount
		if tok, ok := tokens.Get(); ok {
			from = parseNumber(tok)
		}
		if tok, ok := tokens.Get(); ok {
			count = parseNumber(tok)
		}

		entries := dbg.dsm.Range(from, count)
		if len(entries) == 0 {
			return fmt.Errorf("no instructions in range (%d to %d)", from, from+count-1)
		}

		attr := disassembly.WriteAttr{
			Partner: true,
			Prefix:  dbg.disasmMarkers,
		}
		for _, e := range entries {
			if err := dbg.dsm.WriteLine(dbg.printStyle(terminal.StyleListing), attr, e); err != nil {
				return err
			}
		}

	case cmdScript:
		tok, _ := tokens.Get()
		switch strings.ToUpper(tok) {
		case "RECORD":
			fn, _ := tokens.Get()
			if err := dbg.scribe.StartSession(fn); err != nil {
				return err
			}
			dbg.logf("recording script %s", fn)
			dbg.printLine(terminal.StyleFeedback, "recording commands to %s", fn)
		case "END":
			if !dbg.scribe.IsActive() {
				return fmt.Errorf("no script is being recorded")
			}
			fn := dbg.scribe.Filename()

			// the END command itself is not part of the recording
			dbg.scribe.Rollback()
			if err := dbg.scribe.EndSession(); err != nil {
				return err
			}
			dbg.printLine(terminal.StyleFeedback, "script %s recorded", fn)
		default:
			if dbg.scribe.IsActive() && dbg.scribe.Filename() == tok {
				return fmt.Errorf("cannot run a script while it is being recorded")
			}
			if err := dbg.queue.Load(tok); err != nil {
				return err
			}
		}

	case cmdLog:
		tok, ok := tokens.Get()
		switch {
		case !ok:
			if dbg.log.Len() == 0 {
				dbg.printLine(terminal.StyleFeedback, "log is empty")
				return nil
			}
			dbg.log.Write(dbg.printStyle(terminal.StyleLog))
		case strings.ToUpper(tok) == "CLEAR":
			dbg.log.Clear()
			dbg.printLine(terminal.StyleFeedback, "log cleared")
		default:
			dbg.log.Tail(dbg.printStyle(terminal.StyleLog), parseNumber(tok))
		}

	case cmdMemviz:
		fn, _ := tokens.Get()
		fn, err := dbg.memviz(fn)
		if err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, "memviz written to %s", fn)

	case cmdPrefs:
		if dbg.prefs == nil {
			return fmt.Errorf("preferences are not available")
		}
		tok, _ := tokens.Get()
		switch strings.ToUpper(tok) {
		case "SAVE":
			if err := dbg.prefs.Save(); err != nil {
				return err
			}
			dbg.printLine(terminal.StyleFeedback, "preferences saved")
		case "DEFAULTS":
			dbg.prefs.SetDefaults()
			dbg.printLine(terminal.StyleFeedback, "preferences set to default values")
		default:
			dbg.printLine(terminal.StyleFeedback, "%s", dbg.prefs)
		}
	}

	return nil
}

// markers for the DISASM command. the first column shows breakpoints and the
// second column shows the instruction pointer
func (dbg *Debugger) disasmMarkers(e disassembly.Entry) string {
	s := []byte("   ")
	if dbg.ses.Breakpoints().Has(e.Index) {
		s[0] = '*'
	}
	if dbg.ses.Engine().IP() == e.Index {
		s[1] = '>'
	}
	return string(s)
}

// print the next instruction to be executed
func (dbg *Debugger) printInstruction() {
	eng := dbg.ses.Engine()
	if eng.Halted() {
		dbg.printLine(terminal.StyleInstruction, "%d end of program", eng.IP())
		return
	}
	e, _ := dbg.dsm.Get(eng.IP())
	_ = dbg.dsm.WriteLine(dbg.printStyle(terminal.StyleInstruction), disassembly.WriteAttr{
		Mnemonic: true,
	}, e)
}

// logging from the debugger goes to the same log as the engine
func (dbg *Debugger) logf(pattern string, args ...any) {
	dbg.log.Logf(logger.Allow, "debugger", pattern, args...)
}
