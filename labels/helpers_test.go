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

package labels_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/dbg2mlb/dbgfile"
	"github.com/jetsetilly/dbg2mlb/test"
)

// readLines creates a store from the lines of a debug file.
func readLines(t *testing.T, lines ...string) *dbgfile.Store {
	t.Helper()
	st, err := dbgfile.Read(strings.NewReader(strings.Join(lines, "\n")))
	test.DemandSuccess(t, err)
	return st
}

// symbol returns the symbol with the id, failing the test if it is missing.
func symbol(t *testing.T, st *dbgfile.Store, id int) *dbgfile.Symbol {
	t.Helper()
	sym, err := st.Symbol(id)
	test.DemandSuccess(t, err)
	return sym
}
