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

	"github.com/jetsetilly/tapedeck/logger"
	"github.com/jetsetilly/tapedeck/tape"
)

// Config specifies how a new engine is to be created.
type Config struct {
	// number of tape cells. if the value is zero then tape.DefaultCapacity is
	// used
	Cells int

	// explicit input and output. if either is nil then the interactive console
	// is used for that channel
	Input  io.Reader
	Output io.Writer

	// echo characters read from the interactive console. only honoured if
	// Input and Output are both nil
	Echo bool

	// the file used by the interactive console. if nil then os.Stdin is used
	Console *os.File

	// where to send log entries. if nil then logger.Discard is used
	Log logger.Observer

	// the number of cells at which a large tape warning is logged. if the
	// value is zero then LargeTape is used
	LargeTape int
}

// LargeTape is the default number of cells above which a warning is logged
// when an engine is created.
const LargeTape = 10000000

func (cfg *Config) normalise() {
	if cfg.Cells == 0 {
		cfg.Cells = tape.DefaultCapacity
	}
	if cfg.LargeTape == 0 {
		cfg.LargeTape = LargeTape
	}
	if cfg.Log == nil {
		cfg.Log = logger.Discard
	}
	if cfg.Console == nil {
		cfg.Console = os.Stdin
	}
}
