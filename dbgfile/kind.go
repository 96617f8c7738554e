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

package dbgfile

import (
	"strings"

	"github.com/jetsetilly/dbg2mlb/curated"
)

// Kind is the type of a record in the debug file.
type Kind int

// List of valid Kind values. The order is the order in which the record
// kinds are documented by the cc65 project.
const (
	KindVersion Kind = iota
	KindInfo
	KindCSym
	KindFile
	KindLib
	KindLine
	KindMod
	KindScope
	KindSeg
	KindSpan
	KindSym
	KindType

	numKinds
)

var kindNames = [numKinds]string{
	"version",
	"info",
	"csym",
	"file",
	"lib",
	"line",
	"mod",
	"scope",
	"seg",
	"span",
	"sym",
	"type",
}

func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return "unknown"
	}
	return kindNames[k]
}

// Kinds returns every valid Kind in order.
func Kinds() []Kind {
	k := make([]Kind, numKinds)
	for i := range k {
		k[i] = Kind(i)
	}
	return k
}

// ParseKind returns the Kind named by the string. Names are as they appear
// in the debug file and are case sensitive.
func ParseKind(s string) (Kind, error) {
	s = strings.TrimSpace(s)
	for i, n := range kindNames {
		if n == s {
			return Kind(i), nil
		}
	}
	return numKinds, curated.Errorf(UnknownRecordKind, s)
}
