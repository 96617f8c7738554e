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

// Package memorymap describes the NES CPU address space as seen by the Mesen
// label format. Every address belongs to exactly one Region and each Region
// has a single letter tag that is used in an MLB file.
//
// The $6000 to $7fff range is cartridge expansion RAM. Whether that RAM is
// battery backed (Save RAM) or not (Work RAM) depends on the cartridge and
// cannot be known from the debug file. The Expansion type selects which.
//
// The Summary() function prints the map for a given Expansion type.
package memorymap
