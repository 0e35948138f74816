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
	"github.com/jetsetilly/tapedeck/curated"
	"github.com/jetsetilly/tapedeck/engine"
	"github.com/jetsetilly/tapedeck/program"
)

// Sentinal error patterns.
const (
	ReloadError = "debugger: reload: %v"
)

// Session owns everything required to debug a single program. The breakpoint
// set belongs to the session and not to the engine, so it survives a Reset().
type Session struct {
	// filename is empty if the session was created from source text
	filename string
	source   string

	cfg engine.Config

	prog *program.Program
	eng  *engine.Engine
	bps  Breakpoints
	ctrl *Controller
}

// NewSession loads the program in filename and creates an engine for it.
func NewSession(filename string, cfg engine.Config) (*Session, error) {
	prog, err := program.LoadFile(filename)
	if err != nil {
		return nil, err
	}

	ses := &Session{
		filename: filename,
		source:   prog.String(),
		cfg:      cfg,
	}

	if err := ses.attach(prog); err != nil {
		return nil, err
	}

	return ses, nil
}

// NewSessionFromSource creates a session for a program that has no backing
// file. Reload() for such a session rebuilds from the original source text.
func NewSessionFromSource(source string, cfg engine.Config) (*Session, error) {
	prog, err := program.Load(source)
	if err != nil {
		return nil, err
	}

	ses := &Session{
		source: source,
		cfg:    cfg,
	}

	if err := ses.attach(prog); err != nil {
		return nil, err
	}

	return ses, nil
}

func (ses *Session) attach(prog *program.Program) error {
	eng, err := engine.New(prog, ses.cfg)
	if err != nil {
		return err
	}
	ses.prog = prog
	ses.eng = eng
	ses.ctrl = NewController(eng, &ses.bps)
	return nil
}

// Reset the engine. Breakpoints are kept.
func (ses *Session) Reset() {
	ses.eng.Reset()
}

// Reload the program from its file. If the program cannot be loaded the
// session is left unchanged. A successful reload clears the breakpoints.
func (ses *Session) Reload() error {
	var prog *program.Program
	var err error

	if ses.filename == "" {
		prog, err = program.Load(ses.source)
	} else {
		prog, err = program.LoadFile(ses.filename)
	}
	if err != nil {
		return curated.Errorf(ReloadError, err)
	}

	// the engine is created before any session state is touched
	eng, err := engine.New(prog, ses.cfg)
	if err != nil {
		return curated.Errorf(ReloadError, err)
	}

	ses.prog = prog
	ses.source = prog.String()
	ses.eng = eng
	ses.bps.Clear()
	ses.ctrl = NewController(eng, &ses.bps)

	return nil
}

// Run the program until a breakpoint or the end of the program.
func (ses *Session) Run(ignoreBreakpoints bool) (Halt, error) {
	return ses.ctrl.Run(ignoreBreakpoints)
}

// Step the program count times, regardless of breakpoints. Returns the
// number of instructions executed.
func (ses *Session) Step(count int) (int, error) {
	var n int
	for n < count {
		ok, err := ses.eng.Step()
		if err != nil {
			return n, err
		}
		if !ok {
			break
		}
		n++
	}
	return n, nil
}

// Filename returns the file the program was loaded from.
func (ses *Session) Filename() string {
	return ses.filename
}

// Program returns the loaded program.
func (ses *Session) Program() *program.Program {
	return ses.prog
}

// Engine returns the engine executing the program.
func (ses *Session) Engine() *engine.Engine {
	return ses.eng
}

// Breakpoints returns the breakpoint set for the session.
func (ses *Session) Breakpoints() *Breakpoints {
	return &ses.bps
}
