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

// Error patterns for the labels package.
const (
	UnresolvedScope       = "unresolved scope for %s: %v"
	InconsistentRomSymbol = "inconsistent PRG-ROM symbol %s: %v"
	InvalidConfiguration  = "invalid configuration: %v"
	SymbolError           = "symbol %s: %v"
	SinkUnavailable       = "sink unavailable: %v"
	SinkError             = "error writing labels: %v"
)
