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

package console_test

import (
	"io"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/jetsetilly/tapedeck/console"
	"github.com/jetsetilly/tapedeck/test"
)

func TestRuneReader(t *testing.T) {
	src := strings.NewReader("aé€\xffz")
	rr := console.NewRuneReader(src)

	r, n, err := rr.ReadRune()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r, 'a')
	test.ExpectEquality(t, n, 1)

	// nothing beyond the first rune has been read
	test.ExpectEquality(t, src.Len(), len("é€\xffz"))

	r, n, err = rr.ReadRune()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r, 'é')
	test.ExpectEquality(t, n, 2)

	r, n, err = rr.ReadRune()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r, '€')
	test.ExpectEquality(t, n, 3)

	r, _, err = rr.ReadRune()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r, utf8.RuneError)

	r, _, err = rr.ReadRune()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r, 'z')

	_, _, err = rr.ReadRune()
	test.ExpectEquality(t, err, io.EOF)
}

func TestRuneReaderTruncated(t *testing.T) {
	rr := console.NewRuneReader(strings.NewReader("\xe2\x82"))
	_, _, err := rr.ReadRune()
	test.ExpectEquality(t, err, io.ErrUnexpectedEOF)
}
