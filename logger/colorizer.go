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

package logger

import (
	"bytes"
	"io"

	"github.com/fatih/color"
)

// Colorizer applies basic coloring rules to logging output. The tag of each
// line is highlighted, the detail is left as it is.
//
// Coloring is disabled automatically by the color package if the output is
// not a terminal.
type Colorizer struct {
	out io.Writer
	tag *color.Color
}

// NewColorizer is the preferred method if initialisation for the Colorizer type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{
		out: out,
		tag: color.New(color.FgCyan),
	}
}

// Write implements the io.Writer interface.
func (c Colorizer) Write(p []byte) (n int, err error) {
	for _, l := range bytes.SplitAfter(p, []byte("\n")) {
		if len(l) == 0 {
			continue // for loop
		}

		var m int
		if i := bytes.Index(l, []byte(": ")); i > 0 {
			_, err = c.tag.Fprint(c.out, string(l[:i]))
			if err != nil {
				return n, err
			}
			m, err = c.out.Write(l[i:])
			n += i + m
		} else {
			m, err = c.out.Write(l)
			n += m
		}

		if err != nil {
			return n, err
		}
	}

	return n, nil
}
