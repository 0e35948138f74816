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
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/jetsetilly/tapedeck/curated"
	"github.com/jetsetilly/tapedeck/debugger"
	"github.com/jetsetilly/tapedeck/engine"
	"github.com/jetsetilly/tapedeck/program"
	"github.com/jetsetilly/tapedeck/test"
)

func newEngine(t *testing.T, source string, input string) (*engine.Engine, *test.Writer) {
	t.Helper()

	prog, err := program.Load(source)
	test.DemandSuccess(t, err)

	var w test.Writer
	eng, err := engine.New(prog, engine.Config{
		Cells:  100,
		Input:  strings.NewReader(input),
		Output: &w,
	})
	test.DemandSuccess(t, err)

	return eng, &w
}

func TestControllerBreakpoints(t *testing.T) {
	eng, _ := newEngine(t, "++++++++++>>>>>>>>>>", "")
	test.DemandEquality(t, eng.Program().Len(), 20)

	var bps debugger.Breakpoints
	test.DemandSuccess(t, bps.Add(5, 20))
	test.DemandSuccess(t, bps.Add(12, 20))
	ctrl := debugger.NewController(eng, &bps)

	h, err := ctrl.Run(false)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, h.Reason, debugger.BreakpointFound)
	test.ExpectEquality(t, h.Index, 5)
	test.ExpectEquality(t, h.String(), "breakpoint found at index 5")
	test.ExpectEquality(t, eng.IP(), 5)
	test.ExpectEquality(t, eng.Cell(), byte(5))

	h, err = ctrl.Run(false)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, h.Reason, debugger.BreakpointFound)
	test.ExpectEquality(t, h.Index, 12)
	test.ExpectEquality(t, eng.IP(), 12)

	h, err = ctrl.Run(false)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, h.Reason, debugger.ReachedEnd)
	test.ExpectEquality(t, h.String(), "reached end of program")
	test.ExpectSuccess(t, eng.Halted())

	// running a halted engine is refused until it is reset
	_, err = ctrl.Run(false)
	test.ExpectSuccess(t, curated.Is(err, debugger.PastEnd))
	test.ExpectEquality(t, eng.IP(), 20)

	eng.Reset()
	h, err = ctrl.Run(false)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, h.Index, 5)
}

func TestControllerIgnore(t *testing.T) {
	eng, _ := newEngine(t, "++++++++++>>>>>>>>>>", "")

	var bps debugger.Breakpoints
	test.DemandSuccess(t, bps.Add(5, 20))
	ctrl := debugger.NewController(eng, &bps)

	h, err := ctrl.Run(true)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, h.Reason, debugger.ReachedEnd)
	test.ExpectEquality(t, eng.Pointer(), 10)
}

func TestControllerNoBreakpoints(t *testing.T) {
	eng, w := newEngine(t, "++++++++[>++++++++<-]>+.", "")

	var bps debugger.Breakpoints
	ctrl := debugger.NewController(eng, &bps)

	h, err := ctrl.Run(false)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, h.Reason, debugger.ReachedEnd)
	test.ExpectSuccess(t, w.Compare("A"))
}

func TestControllerLoop(t *testing.T) {
	eng, _ := newEngine(t, "+++[>+<-]", "")

	var bps debugger.Breakpoints
	test.DemandSuccess(t, bps.Add(5, eng.Program().Len()))
	ctrl := debugger.NewController(eng, &bps)

	// halts before the instruction at the breakpoint is executed
	h, err := ctrl.Run(false)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, h.Reason, debugger.BreakpointFound)
	test.ExpectEquality(t, eng.IP(), 5)
	test.ExpectEquality(t, eng.Pointer(), 1)
	test.ExpectEquality(t, eng.Cell(), byte(0))

	// only breakpoints after the instruction pointer are considered so the
	// remaining iterations of the loop run to the end
	h, err = ctrl.Run(false)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, h.Reason, debugger.ReachedEnd)

	cells, err := eng.Peek(0, 2)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cells[0], byte(0))
	test.ExpectEquality(t, cells[1], byte(3))
}

func TestControllerIOError(t *testing.T) {
	eng, w := newEngine(t, "++++++++++[>,.<-]", "Hi")

	var bps debugger.Breakpoints
	ctrl := debugger.NewController(eng, &bps)

	_, err := ctrl.Run(false)
	test.ExpectSuccess(t, curated.Is(err, engine.IOError))
	test.ExpectSuccess(t, errors.Is(err, io.EOF))
	test.ExpectSuccess(t, w.Compare("Hi"))
	test.ExpectFailure(t, eng.Halted())
}

func TestControllerJumpPastEnd(t *testing.T) {
	// the loop is skipped in one step, landing beyond both the breakpoint
	// and the final instruction
	eng, _ := newEngine(t, "[+]", "")

	var bps debugger.Breakpoints
	test.DemandSuccess(t, bps.Add(1, 3))
	ctrl := debugger.NewController(eng, &bps)

	h, err := ctrl.Run(false)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, h.Reason, debugger.BreakpointFound)
	test.ExpectEquality(t, h.Index, 1)
	test.ExpectEquality(t, eng.IP(), 3)
	test.ExpectSuccess(t, eng.Halted())

	_, err = ctrl.Run(false)
	test.ExpectSuccess(t, curated.Is(err, debugger.PastEnd))
}
