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

// Package labels turns the symbols in a dbgfile.Store into Mesen labels.
//
// Each label symbol is classified into a memorymap.Region by its value. For
// symbols in PRG-ROM the value is then translated from the CPU address to
// the symbol's position in the ROM image. That translation needs the
// segment the symbol belongs to, which is found through the symbol's scope:
//
//	symbol -> scope -> span -> segment
//
// A symbol without a scope of its own uses the scope of its parent symbol.
// A scope can cover spans in more than one segment, in which case the span
// with the smallest id is used. The Resolver type does this part of the
// work and the Classifier type uses it to create Label values.
//
// Labels() and Convert() apply the Classifier to every symbol in a store. By
// default the first failure stops the conversion and no output is produced.
// The Lenient field of the Config type changes this so that failing symbols
// are skipped and the failures are reported together.
package labels
