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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes and
// allows different flags for each mode.
//
// Arguments are given to NewArgs() and then Parse() is called with no
// arguments:
//
//	md = Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("CONVERT", "LIST")
//	_, _ = md.Parse()
//
// Parse() checks whether the first argument after the flags is one of the
// sub-modes. If it is, the mode is recorded and the argument is consumed. If
// it isn't, the first sub-mode is assumed. Sub-mode comparisons are case
// insensitive.
//
// Once the mode is known, NewMode() starts a new set of flags for that mode
// and Parse() is called again:
//
//	switch md.Mode() {
//	case "CONVERT":
//		md.NewMode()
//		base := md.AddString("base", "0x10", "PRG-ROM base offset")
//		p, err := md.Parse()
//		...
//	}
//
// Non-flag arguments are then available through RemainingArgs() and
// GetArg().
//
// Requests for help (the -help or -h flag) are handled automatically.
// Parse() returns ParseHelp in that case and the help text will have been
// written to the Output field.
package modalflag
