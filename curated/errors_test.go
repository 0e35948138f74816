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

package curated_test

import (
	"errors"
	"io"
	"testing"

	"github.com/jetsetilly/tapedeck/curated"
	"github.com/jetsetilly/tapedeck/test"
)

const testPattern = "test error: %s"
const wrapPattern = "wrapped: %v"

func TestIs(t *testing.T) {
	e := curated.Errorf(testPattern, "foo")
	test.ExpectEquality(t, e.Error(), "test error: foo")
	test.ExpectSuccess(t, curated.Is(e, testPattern))
	test.ExpectFailure(t, curated.Is(e, wrapPattern))
	test.ExpectSuccess(t, curated.IsAny(e))

	// plain errors are never curated
	test.ExpectFailure(t, curated.IsAny(errors.New("plain")))
	test.ExpectFailure(t, curated.Is(nil, testPattern))
}

func TestHas(t *testing.T) {
	e := curated.Errorf(testPattern, "foo")
	f := curated.Errorf(wrapPattern, e)
	test.ExpectEquality(t, f.Error(), "wrapped: test error: foo")
	test.ExpectFailure(t, curated.Is(f, testPattern))
	test.ExpectSuccess(t, curated.Has(f, testPattern))
	test.ExpectSuccess(t, curated.Has(f, wrapPattern))
}

func TestDeduplication(t *testing.T) {
	e := curated.Errorf("engine: %v", curated.Errorf("engine: %v", io.EOF))
	test.ExpectEquality(t, e.Error(), "engine: EOF")
}

func TestUnwrap(t *testing.T) {
	e := curated.Errorf(wrapPattern, curated.Errorf("engine: %v", io.EOF))
	test.ExpectSuccess(t, errors.Is(e, io.EOF))
	test.ExpectFailure(t, errors.Is(e, io.ErrUnexpectedEOF))
}
