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
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
)

// Summary writes a human readable overview of the store: the version, the
// number of records of each kind, the segments and the source files.
func (st *Store) Summary(output io.Writer) {
	if v, ok := st.Version(); ok {
		fmt.Fprintf(output, "%s\n\n", v)
	} else {
		fmt.Fprintf(output, "no version information\n\n")
	}

	inf, hasInfo := st.Info()

	table := tablewriter.NewWriter(output)
	table.SetHeader([]string{"Kind", "Declared", "Read", "Kept"})
	for _, k := range Kinds() {
		if k == KindVersion || k == KindInfo {
			continue // for loop
		}

		declared := "-"
		if hasInfo {
			if n, ok := inf.Counts[k]; ok {
				declared = strconv.Itoa(n)
			}
		}

		kept := "yes"
		if Discarded(k) {
			kept = "no"
		}

		table.Append([]string{k.String(), declared, strconv.Itoa(st.Count(k)), kept})
	}
	table.Render()

	segs := st.Segments()
	if len(segs) > 0 {
		fmt.Fprintf(output, "\nSegments\n")
		table = tablewriter.NewWriter(output)
		table.SetHeader([]string{"ID", "Name", "Start", "Size", "Type", "Output Offset"})
		for _, seg := range segs {
			ooffs := "-"
			if seg.HasOutputOffset {
				ooffs = strconv.Itoa(seg.OutputOffset)
			}
			table.Append([]string{
				strconv.Itoa(seg.ID),
				seg.Name,
				fmt.Sprintf("%04x", seg.Start),
				fmt.Sprintf("%04x", seg.Size),
				seg.Type,
				ooffs,
			})
		}
		table.Render()
	}

	files := st.Files()
	if len(files) > 0 {
		fmt.Fprintf(output, "\nFiles\n")
		table = tablewriter.NewWriter(output)
		table.SetHeader([]string{"ID", "Name", "Size", "Modified"})
		for _, fl := range files {
			mod := "-"
			if !fl.ModTime.IsZero() {
				mod = humanize.Time(fl.ModTime)
			}
			table.Append([]string{
				strconv.Itoa(fl.ID),
				fl.Name,
				humanize.Bytes(uint64(fl.Size)),
				mod,
			})
		}
		table.Render()
	}
}
