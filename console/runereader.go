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

package console

import (
	"io"
	"unicode/utf8"
)

// RuneReader decodes UTF-8 from an io.Reader one byte at a time. Unlike
// bufio.Reader it never reads ahead of the rune being returned.
type RuneReader struct {
	r   io.Reader
	buf [utf8.UTFMax]byte
}

// NewRuneReader is the preferred method of initialisation for the RuneReader
// type.
func NewRuneReader(r io.Reader) *RuneReader {
	return &RuneReader{r: r}
}

// ReadRune implements the io.RuneReader interface. Invalid encodings are
// returned as utf8.RuneError.
func (rr *RuneReader) ReadRune() (rune, int, error) {
	if _, err := io.ReadFull(rr.r, rr.buf[:1]); err != nil {
		return 0, 0, err
	}

	b := rr.buf[0]
	if b < utf8.RuneSelf {
		return rune(b), 1, nil
	}

	// length of the sequence from the leading byte
	var n int
	switch {
	case b&0xe0 == 0xc0:
		n = 2
	case b&0xf0 == 0xe0:
		n = 3
	case b&0xf8 == 0xf0:
		n = 4
	default:
		return utf8.RuneError, 1, nil
	}

	if _, err := io.ReadFull(rr.r, rr.buf[1:n]); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return 0, 0, err
	}

	r, _ := utf8.DecodeRune(rr.buf[:n])
	return r, n, nil
}
