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
	"testing"

	"github.com/jetsetilly/tapedeck/curated"
	"github.com/jetsetilly/tapedeck/debugger"
	"github.com/jetsetilly/tapedeck/test"
)

func TestBreakpointsOrdering(t *testing.T) {
	var bps debugger.Breakpoints

	for _, i := range []int{12, 5, 19, 0} {
		test.ExpectSuccess(t, bps.Add(i, 20))
	}

	l := bps.List()
	test.DemandEquality(t, len(l), 4)
	for i, v := range []int{0, 5, 12, 19} {
		test.ExpectEquality(t, l[i], v)
	}

	// the returned list is a copy
	l[0] = 100
	test.ExpectEquality(t, bps.List()[0], 0)
	test.ExpectSuccess(t, bps.Has(5))
	test.ExpectFailure(t, bps.Has(6))
}

func TestBreakpointsErrors(t *testing.T) {
	var bps debugger.Breakpoints

	test.DemandSuccess(t, bps.Add(5, 20))

	err := bps.Add(5, 20)
	test.ExpectSuccess(t, curated.Is(err, debugger.BreakpointExists))
	test.ExpectEquality(t, err.Error(), "debugger: breakpoint already exists at index 5")

	err = bps.Add(20, 20)
	test.ExpectSuccess(t, curated.Is(err, debugger.BreakpointPastEnd))

	err = bps.Add(-1, 20)
	test.ExpectSuccess(t, curated.Is(err, debugger.BreakpointInvalid))

	err = bps.Remove(6)
	test.ExpectSuccess(t, curated.Is(err, debugger.BreakpointNotFound))
	test.ExpectEquality(t, err.Error(), "debugger: no breakpoint at index 6")

	// failures leave the set unchanged
	test.ExpectEquality(t, bps.Len(), 1)

	test.ExpectSuccess(t, bps.Remove(5))
	test.ExpectEquality(t, bps.Len(), 0)
	test.ExpectFailure(t, bps.Remove(5))
}

func TestBreakpointsNext(t *testing.T) {
	var bps debugger.Breakpoints

	_, ok := bps.Next(0)
	test.ExpectFailure(t, ok)

	test.DemandSuccess(t, bps.Add(5, 20))
	test.DemandSuccess(t, bps.Add(12, 20))

	n, ok := bps.Next(0)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, n, 5)

	// a breakpoint at the index itself is skipped
	n, ok = bps.Next(5)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, n, 12)

	n, ok = bps.Next(6)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, n, 12)

	_, ok = bps.Next(12)
	test.ExpectFailure(t, ok)

	bps.Clear()
	test.ExpectEquality(t, bps.Len(), 0)
	_, ok = bps.Next(0)
	test.ExpectFailure(t, ok)
}
