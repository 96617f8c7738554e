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

// Error patterns for the dbgfile package. See the curated package for how to
// test for them.
const (
	SourceUnavailable = "source unavailable: %v"
	SourceError       = "error reading source: %v"
	LineError         = "line %d: %v"

	UnknownRecordKind = "unknown record kind: %q"
	MalformedRecord   = "malformed %s record: %v"
	MissingField      = "missing field: %s"
	InvalidField      = "invalid %s field: %q"

	MissingFile    = "missing file: %d"
	MissingSegment = "missing segment: %d"
	MissingSpan    = "missing span: %d"
	MissingScope   = "missing scope: %d"
	MissingSymbol  = "missing symbol: %d"
)
