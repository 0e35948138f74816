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
	"os"
	"unicode/utf8"

	"github.com/jetsetilly/tapedeck/easyterm"
	"github.com/jetsetilly/tapedeck/logger"
)

// Input reads single ASCII characters from a file, usually stdin.
type Input struct {
	easyterm.Terminal

	reader *RuneReader

	// characters read are echoed to this writer if it is not nil
	echo io.Writer

	log logger.Observer
}

// NewInput is the preferred method of initialisation for the Input type. If
// echo is not nil then every accepted character is written to it.
func NewInput(file *os.File, echo io.Writer, log logger.Observer) (*Input, error) {
	if log == nil {
		log = logger.Discard
	}

	in := &Input{
		reader: NewRuneReader(file),
		echo:   echo,
		log:    log,
	}

	// easyterm requires an output file. it is never written to
	if err := in.Terminal.Initialise(file, os.Stdout); err != nil {
		return nil, err
	}

	return in, nil
}

// ReadByte implements the io.ByteReader interface.
func (in *Input) ReadByte() (byte, error) {
	in.CBreakMode()
	defer in.CanonicalMode()

	for {
		r, _, err := in.reader.ReadRune()
		if err != nil {
			return 0, err
		}

		if r == utf8.RuneError || r >= 0x80 {
			in.log.Logf(logger.Allow, "console", "ignoring non-ascii input (%q)", r)
			continue
		}

		if in.echo != nil {
			if _, err := in.echo.Write([]byte{byte(r)}); err != nil {
				return 0, err
			}
		}

		return byte(r), nil
	}
}

// Output writes single bytes to a writer, usually stdout.
type Output struct {
	w io.Writer
}

// NewOutput is the preferred method of initialisation for the Output type.
func NewOutput(w io.Writer) *Output {
	return &Output{w: w}
}

// WriteByte implements the io.ByteWriter interface. Bytes are written
// immediately.
func (out *Output) WriteByte(b byte) error {
	_, err := out.w.Write([]byte{b})
	return err
}
