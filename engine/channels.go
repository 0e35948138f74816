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

	"github.com/jetsetilly/tapedeck/console"
	"github.com/jetsetilly/tapedeck/logger"
)

// streamInput reads bytes from an io.Reader one at a time.
type streamInput struct {
	r   io.Reader
	buf [1]byte
}

func (s *streamInput) ReadByte() (byte, error) {
	if _, err := io.ReadFull(s.r, s.buf[:]); err != nil {
		return 0, err
	}
	return s.buf[0], nil
}

// streamOutput writes bytes to an io.Writer one at a time.
type streamOutput struct {
	w io.Writer
}

func (s *streamOutput) WriteByte(b byte) error {
	_, err := s.w.Write([]byte{b})
	return err
}

func newInput(r io.Reader, consoleFile *os.File, echo io.Writer, log logger.Observer) (io.ByteReader, error) {
	if r == nil {
		return console.NewInput(consoleFile, echo, log)
	}
	if br, ok := r.(io.ByteReader); ok {
		return br, nil
	}
	return &streamInput{r: r}, nil
}

func newOutput(w io.Writer) io.ByteWriter {
	if w == nil {
		return console.NewOutput(os.Stdout)
	}
	if bw, ok := w.(io.ByteWriter); ok {
		return bw
	}
	return &streamOutput{w: w}
}
