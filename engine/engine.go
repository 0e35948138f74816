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

package engine

import (
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/jetsetilly/tapedeck/curated"
	"github.com/jetsetilly/tapedeck/logger"
	"github.com/jetsetilly/tapedeck/program"
	"github.com/jetsetilly/tapedeck/tape"
)

// Sentinal error patterns.
const (
	IOError = "engine: i/o: %v"
)

// Engine executes a single program.
type Engine struct {
	prog *program.Program
	tape *tape.Tape
	ip   int

	input  io.ByteReader
	output io.ByteWriter

	log logger.Observer
}

// New is the preferred method of initialisation for the Engine type.
func New(prog *program.Program, cfg Config) (*Engine, error) {
	cfg.normalise()

	tp, err := tape.New(cfg.Cells)
	if err != nil {
		return nil, err
	}

	cfg.Log.Logf(logger.Allow, "engine", "allocated %s bytes", humanize.FormatInteger("# ###.", cfg.Cells))
	if cfg.Cells >= cfg.LargeTape {
		cfg.Log.Logf(logger.Allow, "engine", "large tape (%s cells) may be slow to inspect in the debugger", humanize.FormatInteger("# ###.", cfg.Cells))
	}

	eng := &Engine{
		prog:   prog,
		tape:   tp,
		output: newOutput(cfg.Output),
		log:    cfg.Log,
	}

	// echo only makes sense when the user is typing at the console and the
	// console is also where the output is going
	var echo io.Writer
	if cfg.Echo && cfg.Input == nil && cfg.Output == nil {
		echo = os.Stdout
	}

	eng.input, err = newInput(cfg.Input, cfg.Console, echo, cfg.Log)
	if err != nil {
		return nil, err
	}

	cfg.Log.Logf(logger.Allow, "engine", "program of %d instructions loaded", prog.Len())

	return eng, nil
}

// Step executes the instruction at the instruction pointer. It returns false
// if the engine is halted, in which case nothing is executed.
//
// If there is an I/O error the instruction is not completed and the
// instruction pointer is not advanced.
func (eng *Engine) Step() (bool, error) {
	if eng.Halted() {
		return false, nil
	}

	switch eng.prog.At(eng.ip) {
	case program.Forward:
		eng.tape.Advance()
	case program.Backward:
		eng.tape.Retreat()
	case program.Increment:
		eng.tape.Increment()
	case program.Decrement:
		eng.tape.Decrement()
	case program.Output:
		if err := eng.output.WriteByte(eng.tape.Read()); err != nil {
			return false, curated.Errorf(IOError, err)
		}
	case program.Input:
		b, err := eng.input.ReadByte()
		if err != nil {
			return false, curated.Errorf(IOError, err)
		}
		eng.tape.Write(b)
	case program.LoopOpen:
		if eng.tape.Read() == 0 {
			eng.ip, _ = eng.prog.Brackets().Partner(eng.ip)
		}
	case program.LoopClose:
		if eng.tape.Read() != 0 {
			eng.ip, _ = eng.prog.Brackets().Partner(eng.ip)
		}
	}

	eng.ip++

	return true, nil
}

// RunToCompletion steps the engine until it is halted.
func (eng *Engine) RunToCompletion() error {
	for {
		ok, err := eng.Step()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
}

// Reset returns the instruction pointer to the start of the program and
// clears the tape.
func (eng *Engine) Reset() {
	eng.ip = 0
	eng.tape.Reset()
}

// IP returns the instruction pointer.
func (eng *Engine) IP() int {
	return eng.ip
}

// Halted returns true if the instruction pointer is at or beyond the end of
// the program.
func (eng *Engine) Halted() bool {
	return eng.ip >= eng.prog.Len()
}

// Program returns the program being executed.
func (eng *Engine) Program() *program.Program {
	return eng.prog
}

// Pointer returns the tape pointer.
func (eng *Engine) Pointer() int {
	return eng.tape.Pointer()
}

// Cell returns the value of the current tape cell.
func (eng *Engine) Cell() byte {
	return eng.tape.Read()
}

// Cells returns the number of cells in the tape.
func (eng *Engine) Cells() int {
	return eng.tape.Len()
}

// Peek returns a copy of the tape cells from index from up to but not
// including index to.
func (eng *Engine) Peek(from int, to int) ([]byte, error) {
	return eng.tape.Peek(from, to)
}

// CleanUp returns the interactive console, if it is in use, to canonical
// mode. It can be called while another goroutine is blocked in Step().
func (eng *Engine) CleanUp() {
	if c, ok := eng.input.(interface{ CleanUp() }); ok {
		c.CleanUp()
	}
}
