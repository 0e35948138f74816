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

// Package ansi builds ANSI escape sequences for colouring terminal output
// and for moving the cursor.
package ansi

import (
	"fmt"
	"strings"
)

// ansi colours
const (
	black = iota
	red
	green
	yellow
	blue
	magenta
	cyan
	white
)

// ansi attributes
const (
	bold      = 1
	dim       = 2
	underline = 4
	inverse   = 7
)

// List of ANSI cursor and line sequences.
const (
	NormalPen         = "\033[0m"
	ClearLine         = "\033[2K"
	CursorStore       = "\0337"
	CursorRestore     = "\0338"
	CursorForwardOne  = "\033[1C"
	CursorBackwardOne = "\033[1D"
)

// CursorMove returns the sequence to move the cursor n columns. Negative
// values move the cursor backwards.
func CursorMove(n int) string {
	switch {
	case n > 0:
		return fmt.Sprintf("\033[%dC", n)
	case n < 0:
		return fmt.Sprintf("\033[%dD", -n)
	}
	return ""
}

// Pens, DimPens and PenStyles are the pre-built escape sequences for the
// most commonly used colours and styles.
var (
	Pens      map[string]string
	DimPens   map[string]string
	PenStyles map[string]string
)

var colours = []string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}

func init() {
	Pens = make(map[string]string)
	DimPens = make(map[string]string)
	PenStyles = make(map[string]string)

	for _, c := range colours {
		Pens[c], _ = Build(c, true, "")
		DimPens[c], _ = Build(c, true, "dim")
	}

	PenStyles["bold"], _ = Build("", false, "bold")
	PenStyles["underline"], _ = Build("", false, "underline")
	PenStyles["inverse"], _ = Build("", false, "inverse")
}

// Build returns the escape sequence for the named pen colour and attribute.
// Either can be empty.
func Build(pen string, bright bool, attribute string) (string, error) {
	var codes []string

	if pen != "" {
		c := -1
		for i := range colours {
			if strings.EqualFold(colours[i], pen) {
				c = i
				break
			}
		}
		if c == -1 {
			return "", fmt.Errorf("ansi: unknown pen (%s)", pen)
		}

		if bright {
			codes = append(codes, fmt.Sprintf("9%d", c))
		} else {
			codes = append(codes, fmt.Sprintf("3%d", c))
		}
	}

	switch strings.ToLower(attribute) {
	case "":
	case "bold":
		codes = append(codes, fmt.Sprintf("%d", bold))
	case "dim":
		codes = append(codes, fmt.Sprintf("%d", dim))
	case "underline":
		codes = append(codes, fmt.Sprintf("%d", underline))
	case "inverse":
		codes = append(codes, fmt.Sprintf("%d", inverse))
	default:
		return "", fmt.Errorf("ansi: unknown attribute (%s)", attribute)
	}

	return fmt.Sprintf("\033[%sm", strings.Join(codes, ";")), nil
}
