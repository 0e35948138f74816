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
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/tapedeck/paths"
)

// memviz writes a graphviz representation of the loaded program and the
// breakpoint set to a file. If filename is empty a unique filename is created
// in the resource directory. Returns the name of the file written to.
//
// The tape is not included because it would produce a graph of tens of
// thousands of nodes.
func (dbg *Debugger) memviz(filename string) (string, error) {
	if filename == "" {
		pth, err := paths.ResourcePath("memviz", paths.UniqueFilename("memviz", dbg.ses.Filename(), "dot"))
		if err != nil {
			return "", fmt.Errorf("memviz: %w", err)
		}
		filename = pth
	}

	if _, err := os.Stat(filename); !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("memviz: file already exists (%s)", filename)
	}

	f, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("memviz: %w", err)
	}

	memviz.Map(f, dbg.ses.Program(), dbg.ses.Breakpoints())

	if err := f.Close(); err != nil {
		return "", fmt.Errorf("memviz: %w", err)
	}

	dbg.logf("memviz written to %s", filename)

	return filename, nil
}
