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
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jetsetilly/tapedeck/debugger/script"
	"github.com/jetsetilly/tapedeck/debugger/terminal"
	"github.com/jetsetilly/tapedeck/debugger/terminal/commandline"
	"github.com/jetsetilly/tapedeck/disassembly"
	"github.com/jetsetilly/tapedeck/engine"
	"github.com/jetsetilly/tapedeck/logger"
	"golang.org/x/term"
)

// Debugger is the basic debugging frontend for the engine.
type Debugger struct {
	ses  *Session
	dsm  *disassembly.Disassembly
	term terminal.Terminal

	// preferences may be nil, in which case the PREFS command is unavailable
	prefs *Preferences

	// the parsed command template
	cmds *commandline.Commands

	// commands waiting to be executed and the recording of new scripts
	queue  script.Queue
	scribe script.Scribe

	// output from the program being debugged
	output *programOutput

	log *logger.Logger

	// returns the width of the terminal. a value of zero or less means the
	// width is not known
	columns func() int

	// the debugger input loop continues while running is true
	running bool
}

// NewDebugger creates and initialises everything required for a new debugging
// session of the program in filename.
//
// If cfg.Output is nil, output from the program is printed to the terminal.
// If cfg.Input is nil, input is read from the console, which is cfg.Console or
// stdin, with echo to the terminal if cfg.Echo is set. If cfg.Log is nil the
// central logger is used.
func NewDebugger(term terminal.Terminal, filename string, cfg engine.Config, prefs *Preferences) (*Debugger, error) {
	if term == nil {
		return nil, fmt.Errorf("debugger: no terminal")
	}

	dbg := &Debugger{
		term:    term,
		prefs:   prefs,
		log:     logger.Central(),
		columns: terminalColumns,
	}
	dbg.output = &programOutput{dbg: dbg}

	if cfg.Log == nil {
		cfg.Log = dbg.log
	}

	// the debugger provides the console itself. the program's output goes to
	// the terminal so echoing is honoured whether or not an output has been
	// specified
	if cfg.Input == nil {
		var echo io.Writer
		if cfg.Echo {
			echo = dbg.output
		}
		con, err := newConsoleInput(dbg, cfg.Console, echo, cfg.Log)
		if err != nil {
			return nil, fmt.Errorf("debugger: %w", err)
		}
		cfg.Input = con
	}

	if cfg.Output == nil {
		cfg.Output = dbg.output
	}

	var err error

	dbg.cmds, err = commandline.ParseCommandTemplate(commandTemplate)
	if err != nil {
		return nil, fmt.Errorf("debugger: %w", err)
	}
	if err := dbg.cmds.AddHelp(cmdHelp, helps); err != nil {
		return nil, fmt.Errorf("debugger: %w", err)
	}

	dbg.ses, err = NewSession(filename, cfg)
	if err != nil {
		return nil, fmt.Errorf("debugger: %w", err)
	}
	dbg.dsm = disassembly.FromProgram(dbg.ses.Program())

	return dbg, nil
}

func terminalColumns() int {
	cols, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0
	}
	return cols
}

// Session returns the debugging session.
func (dbg *Debugger) Session() *Session {
	return dbg.ses
}

// Start the main debugger sequence. The initScript is run before any input is
// read from the terminal. The function returns when the QUIT command is
// entered or when the terminal has no more input.
func (dbg *Debugger) Start(initScript string) error {
	if err := dbg.term.Initialise(); err != nil {
		return fmt.Errorf("debugger: %w", err)
	}
	defer dbg.term.CleanUp()

	dbg.term.RegisterTabCompletion(commandline.NewTabCompletion(dbg.cmds))

	if initScript != "" {
		if err := dbg.queue.Load(initScript); err != nil {
			return fmt.Errorf("debugger: %w", err)
		}
		dbg.logf("running init script %s", initScript)
	}

	dbg.running = true
	defer func() {
		if err := dbg.scribe.EndSession(); err != nil {
			dbg.printLine(terminal.StyleError, "%v", err)
		}
	}()

	for dbg.running {
		ln, ok := dbg.queue.Next()
		if !ok {
			input, err := dbg.term.TermRead(dbg.prompt())
			if err != nil {
				if errors.Is(err, io.EOF) || errors.Is(err, terminal.UserInterrupt) {
					return nil
				}
				return fmt.Errorf("debugger: %w", err)
			}
			dbg.queue.Push(input)
			continue
		}

		if ln.Batch {
			dbg.printLine(terminal.StyleEcho, "%s", ln.Entry)
		} else {
			dbg.scribe.WriteInput(ln.Entry)
		}

		err := dbg.parseCommand(ln.Entry)
		dbg.output.flush()

		if err != nil {
			dbg.scribe.Rollback()
			dbg.printLine(terminal.StyleError, "%v", err)

			// a failing command ends any script that is running
			if ln.Batch {
				dbg.queue.Clear()
			}
		}
	}

	return nil
}

func (dbg *Debugger) prompt() terminal.Prompt {
	eng := dbg.ses.Engine()

	var p terminal.Prompt
	if eng.Halted() {
		p = terminal.NewPrompt(eng.IP(), "", true)
	} else {
		p = terminal.NewPrompt(eng.IP(), eng.Program().At(eng.IP()).String(), false)
	}
	p.Scripted = dbg.scribe.IsActive()

	return p
}
