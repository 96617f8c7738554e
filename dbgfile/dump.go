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
	"io"

	"github.com/k0kubun/pp/v3"
)

// Dump writes every record in the store to the io.Writer. The output is
// intended for debugging and its format is not stable.
func (st *Store) Dump(output io.Writer, coloring bool) error {
	d := struct {
		Version  *Version
		Info     *Info
		Files    []*File
		Segments []*Segment
		Spans    []*Span
		Scopes   []*Scope
		Symbols  []*Symbol
	}{
		Version:  st.version,
		Info:     st.info,
		Files:    st.Files(),
		Segments: st.Segments(),
		Spans:    st.Spans(),
		Scopes:   st.Scopes(),
		Symbols:  st.Symbols(),
	}

	printer := pp.New()
	printer.SetColoringEnabled(coloring)
	printer.SetExportedOnly(true)
	_, err := printer.Fprintln(output, d)
	return err
}
