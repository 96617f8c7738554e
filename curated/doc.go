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

// Package curated is a helper package for the plain Go language error type.
// Curated errors are created with Errorf(), which takes a pattern and values
// in the same way as fmt.Errorf(). The pattern is remembered and is what
// identifies the error later on.
//
// Patterns are declared as string constants by the package that creates
// the error. For example, the dbgfile package declares:
//
//	const MissingSpan = "missing span: %d"
//
// and a caller can test for it with Is() or Has():
//
//	if curated.Is(err, dbgfile.MissingSpan) {
//		...
//	}
//
// Is() only checks the outermost error. Has() checks the entire chain,
// following curated values and anything that implements Unwrap(). So for:
//
//	e := curated.Errorf(dbgfile.MissingSpan, 7)
//	f := curated.Errorf("symbol %s: %v", "reset", e)
//
// Has(f, dbgfile.MissingSpan) is true but Is(f, dbgfile.MissingSpan) is
// not.
//
// The Error() implementation normalises the message chain so that
// duplicate adjacent parts are not repeated. Parts are separated by the
// sub-string ": ", as suggested on p239 of "The Go Programming Language"
// (Donovan, Kernighan). Wrapping an error in a pattern that begins with the
// same part is therefore harmless:
//
//	a := curated.Errorf("labels: %v", curated.Errorf("labels: no output"))
//
// prints as "labels: no output".
//
// Curated errors implement Unwrap() []error, returning any error values, so
// they also work with errors.Is() from the standard library and with
// multierror collections.
package curated
