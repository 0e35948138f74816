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

	"github.com/jetsetilly/tapedeck/curated"
	"github.com/jetsetilly/tapedeck/engine"
)

// Sentinal error patterns.
const (
	PastEnd = "debugger: past end of program (reset required)"
)

// HaltReason describes why a run of the program stopped.
type HaltReason int

// List of valid HaltReason values.
const (
	ReachedEnd HaltReason = iota
	BreakpointFound
)

// Halt is the result of a successful call to Controller.Run().
type Halt struct {
	Reason HaltReason

	// the breakpoint that caused the halt. only meaningful if Reason is
	// BreakpointFound
	Index int
}

func (h Halt) String() string {
	if h.Reason == BreakpointFound {
		return fmt.Sprintf("breakpoint found at index %d", h.Index)
	}
	return "reached end of program"
}

// Controller advances an engine until a breakpoint or the end of the program
// is reached.
type Controller struct {
	eng *engine.Engine
	bps *Breakpoints
}

// NewController is the preferred method of initialisation for the Controller
// type.
func NewController(eng *engine.Engine, bps *Breakpoints) *Controller {
	return &Controller{
		eng: eng,
		bps: bps,
	}
}

// Run the engine. If ignore is true then breakpoints are not checked.
//
// A breakpoint at the current instruction pointer is skipped because it is
// where the previous run stopped. A halted engine must be reset before it can
// run again.
func (ctrl *Controller) Run(ignore bool) (Halt, error) {
	if ctrl.eng.Halted() {
		return Halt{}, curated.Errorf(PastEnd)
	}

	next, ok := ctrl.bps.Next(ctrl.eng.IP())
	if ignore || !ok {
		if err := ctrl.eng.RunToCompletion(); err != nil {
			return Halt{}, err
		}
		return Halt{Reason: ReachedEnd}, nil
	}

	for {
		ok, err := ctrl.eng.Step()
		if err != nil {
			return Halt{}, err
		}
		if !ok {
			return Halt{Reason: ReachedEnd}, nil
		}

		// a loop jump can carry the instruction pointer past the breakpoint
		// and the end of the program in one step. the breakpoint is reported
		// and the end of the program is found by the next run
		if ctrl.eng.IP() >= next {
			return Halt{Reason: BreakpointFound, Index: next}, nil
		}
	}
}
