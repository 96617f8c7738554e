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

// Package dbgfile reads the debug information files written by the cc65 tool
// chain (ld65 --dbgfile). The file is line oriented. Each line is a record
// kind followed by a tab and a comma separated list of key=value fields:
//
//	seg	id=0,name="CODE",start=0x008000,size=0x0123,addrsize=absolute,type=ro,oname="cart.nes",ooffs=16
//
// DecodeFields() turns the field list into a Fields map. No type conversion
// takes place at that point.
//
// The Store type holds the decoded records. Records are added with the
// Record() or RecordLine() functions and most are indexed by the numeric id
// field. Only the records needed to resolve symbol addresses are kept in
// typed tables: files, segments, spans, scopes and symbols. The version and
// info records are singletons. Other record kinds are counted and discarded.
//
// Read() and ReadFile() create a Store from a complete debug file. A Store
// is only written to while it is being read. After that, lookups with the
// Symbol(), Scope(), Span() and Segment() functions are read-only and fail
// with an error if the id does not exist.
package dbgfile
