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
	"fmt"
	"strings"

	"github.com/jetsetilly/tapedeck/curated"
	"github.com/jetsetilly/tapedeck/engine"
)

// Sentinal error patterns.
const (
	MemdumpEvenWidth   = "debugger: memdump: width must be an odd number (%d)"
	MemdumpTooWide     = "debugger: memdump: a terminal of %d columns can show %d cells (asked for %d)"
	MemdumpOutOfBounds = "debugger: memdump: end of dump (%d) is %d cells past the end of the tape (%d)"
	MemdumpOffset      = "debugger: memdump: invalid offset (%d)"
)

// default number of cells shown by the MEMDUMP command
const defaultMemdumpWidth = 9

// every cell is two characters wide with a one character separator. there is
// no separator after the last cell
func maxCellsVisible(columns int) int {
	return (columns + 1) / 3
}

type memdumpArgs struct {
	offset int
	width  int
	upper  bool

	// width of the terminal. a value of zero or less means the width is
	// unknown and is not checked
	columns int
}

// memdump formats width cells of the tape starting at offset. The first row
// shows the last two digits of each cell index and the second row shows the
// value of each cell. If the tape pointer is in the dumped range then a
// third row marks the cell it points to.
func memdump(eng *engine.Engine, args memdumpArgs) (string, error) {
	if args.width <= 0 || args.width%2 == 0 {
		return "", curated.Errorf(MemdumpEvenWidth, args.width)
	}

	if args.columns > 0 && args.width > maxCellsVisible(args.columns) {
		return "", curated.Errorf(MemdumpTooWide, args.columns, maxCellsVisible(args.columns), args.width)
	}

	if args.offset < 0 {
		return "", curated.Errorf(MemdumpOffset, args.offset)
	}

	end := args.offset + args.width
	if end > eng.Cells() {
		return "", curated.Errorf(MemdumpOutOfBounds, end, end-eng.Cells(), eng.Cells())
	}

	cells, err := eng.Peek(args.offset, end)
	if err != nil {
		return "", err
	}

	hex := "%02x"
	if args.upper {
		hex = "%02X"
	}

	index := make([]string, 0, len(cells))
	data := make([]string, 0, len(cells))
	marker := make([]string, 0, len(cells))
	var marked bool

	for i, v := range cells {
		idx := args.offset + i
		index = append(index, fmt.Sprintf("%02d", idx%100))
		data = append(data, fmt.Sprintf(hex, v))
		if idx == eng.Pointer() {
			marker = append(marker, "^^")
			marked = true
		} else {
			marker = append(marker, "  ")
		}
	}

	s := strings.Builder{}
	s.WriteString(strings.Join(index, "|"))
	s.WriteString("\n")
	s.WriteString(strings.Join(data, "|"))
	if marked {
		s.WriteString("\n")
		s.WriteString(strings.TrimRight(strings.Join(marker, " "), " "))
	}

	return s.String(), nil
}
