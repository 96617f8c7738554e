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

package labels

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/dbg2mlb/memorymap"
)

// Label is a single line of an MLB file.
type Label struct {
	Region memorymap.Region

	// the symbol's value as declared in the debug file
	Address int

	// the value written to the MLB file. for PRG-ROM labels this is the
	// position in the ROM image, for everything else it is the same as
	// Address
	Value int

	// end of the range if the label covers more than one byte
	End    int
	HasEnd bool

	Name    string
	Comment string
}

// String returns the label in MLB format:
//
//	<region>:<value>[-<end>]:<name>[:<comment>]
//
// Values are lower case hex without padding. The colon after the value is
// always present, even if the name is empty.
func (l Label) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s:%x", l.Region.Tag(), l.Value))
	if l.HasEnd {
		s.WriteString(fmt.Sprintf("-%x", l.End))
	}
	s.WriteString(":")
	s.WriteString(l.Name)
	if l.Comment != "" {
		s.WriteString(":")
		s.WriteString(escapeComment(l.Comment))
	}
	return s.String()
}

// mesen comments are single line with escaped newlines
func escapeComment(c string) string {
	c = strings.ReplaceAll(c, "\r", "")
	return strings.ReplaceAll(c, "\n", `\n`)
}
