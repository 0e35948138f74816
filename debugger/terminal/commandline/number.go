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

package commandline

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseNumber converts a token to an integer in the way the %N placeholder
// expects. Numbers are decimal unless prefixed with 0x or $, in which case
// they are hexadecimal. A leading zero does not mean octal.
func ParseNumber(tok string) (int, error) {
	s := tok

	var neg bool
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}

	base := 10
	switch {
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		s = s[2:]
		base = 16
	case strings.HasPrefix(s, "$"):
		s = s[1:]
		base = 16
	}

	// the sign has already been dealt with
	if s == "" || s[0] == '+' || s[0] == '-' {
		return 0, fmt.Errorf("not a number (%s)", tok)
	}

	n, err := strconv.ParseInt(s, base, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number (%s)", tok)
	}

	if neg {
		n = -n
	}

	return int(n), nil
}
