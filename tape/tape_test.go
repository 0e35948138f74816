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

package tape_test

import (
	"testing"

	"github.com/jetsetilly/tapedeck/curated"
	"github.com/jetsetilly/tapedeck/tape"
	"github.com/jetsetilly/tapedeck/test"
)

func TestCapacity(t *testing.T) {
	_, err := tape.New(0)
	test.ExpectSuccess(t, curated.Is(err, tape.InvalidCapacity))
	test.ExpectEquality(t, err.Error(), "tape: invalid capacity (0)")

	_, err = tape.New(-10)
	test.ExpectSuccess(t, curated.Is(err, tape.InvalidCapacity))

	tp, err := tape.New(tape.DefaultCapacity)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, tp.Len(), 30000)
	test.ExpectEquality(t, tp.Pointer(), 0)
	test.ExpectEquality(t, tp.Read(), byte(0))
}

func TestPointerWrap(t *testing.T) {
	tp, err := tape.New(5)
	test.DemandSuccess(t, err)

	tp.Retreat()
	test.ExpectEquality(t, tp.Pointer(), 4)
	tp.Advance()
	test.ExpectEquality(t, tp.Pointer(), 0)

	// advancing by the capacity returns to the starting cell
	for i := 0; i < tp.Len(); i++ {
		tp.Advance()
	}
	test.ExpectEquality(t, tp.Pointer(), 0)

	for i := 0; i < tp.Len(); i++ {
		tp.Retreat()
	}
	test.ExpectEquality(t, tp.Pointer(), 0)

	// single cell tape
	tp, err = tape.New(1)
	test.DemandSuccess(t, err)
	tp.Advance()
	test.ExpectEquality(t, tp.Pointer(), 0)
	tp.Retreat()
	test.ExpectEquality(t, tp.Pointer(), 0)
}

func TestCellWrap(t *testing.T) {
	tp, err := tape.New(3)
	test.DemandSuccess(t, err)

	tp.Decrement()
	test.ExpectEquality(t, tp.Read(), byte(255))
	tp.Increment()
	test.ExpectEquality(t, tp.Read(), byte(0))

	tp.Write(255)
	tp.Increment()
	test.ExpectEquality(t, tp.Read(), byte(0))
}

func TestResetAndPeek(t *testing.T) {
	tp, err := tape.New(4)
	test.DemandSuccess(t, err)

	tp.Write(10)
	tp.Advance()
	tp.Write(20)
	tp.Advance()
	tp.Write(30)

	c, err := tp.Peek(0, 4)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(c), string([]byte{10, 20, 30, 0}))

	// the returned slice is a copy
	c[0] = 99
	tp.Retreat()
	tp.Retreat()
	test.ExpectEquality(t, tp.Read(), byte(10))

	_, err = tp.Peek(2, 5)
	test.ExpectSuccess(t, curated.Is(err, tape.InvalidRange))
	_, err = tp.Peek(3, 2)
	test.ExpectFailure(t, err)

	tp.Advance()
	tp.Reset()
	test.ExpectEquality(t, tp.Pointer(), 0)
	c, _ = tp.Peek(0, 4)
	test.ExpectEquality(t, string(c), string([]byte{0, 0, 0, 0}))
}
