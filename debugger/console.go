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
	"io"
	"os"

	"github.com/jetsetilly/tapedeck/console"
	"github.com/jetsetilly/tapedeck/logger"
)

// consoleInput is the program's input when no other input has been
// specified. Pending program output is printed before every read so that
// any prompt from the program is visible.
type consoleInput struct {
	dbg *Debugger
	in  *console.Input
}

func newConsoleInput(dbg *Debugger, file *os.File, echo io.Writer, log logger.Observer) (*consoleInput, error) {
	if file == nil {
		file = os.Stdin
	}
	in, err := console.NewInput(file, echo, log)
	if err != nil {
		return nil, err
	}
	return &consoleInput{dbg: dbg, in: in}, nil
}

// ReadByte implements the io.ByteReader interface.
func (con *consoleInput) ReadByte() (byte, error) {
	con.dbg.output.flush()
	return con.in.ReadByte()
}

// Read implements the io.Reader interface. At most one byte is read.
func (con *consoleInput) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	b, err := con.ReadByte()
	if err != nil {
		return 0, err
	}
	p[0] = b
	return 1, nil
}

// CleanUp returns the console to canonical mode.
func (con *consoleInput) CleanUp() {
	con.in.CleanUp()
}
