// This file is part of dbg2mlb.
//
// dbg2mlb is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// dbg2mlb is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with dbg2mlb.  If not, see <https://www.gnu.org/licenses/>.

package memorymap

import (
	"fmt"
	"strings"
)

// Summary returns a string showing each Region of the 16 bit address space
// for the specified Expansion type.
func Summary(exp Expansion) string {
	s := strings.Builder{}

	current := Classify(0, exp)
	start := 0

	for a := 1; a <= MemtopPRGROM; a++ {
		r := Classify(a, exp)
		if r != current {
			s.WriteString(fmt.Sprintf("%04x -> %04x\t%s (%s)\n", start, a-1, current, current.Tag()))
			current = r
			start = a
		}
	}

	// last line of summary
	s.WriteString(fmt.Sprintf("%04x -> %04x\t%s (%s)\n", start, MemtopPRGROM, current, current.Tag()))

	return s.String()
}
