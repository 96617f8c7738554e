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

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
)

// List writes the labels as a table. Unlike Write() the table includes the
// region name and the CPU address of each label.
func List(output io.Writer, labels []*Label) {
	table := tablewriter.NewWriter(output)
	table.SetHeader([]string{"Tag", "Region", "Address", "Value", "Name"})
	table.SetAutoFormatHeaders(false)

	for _, l := range labels {
		value := fmt.Sprintf("%x", l.Value)
		if l.HasEnd {
			value = fmt.Sprintf("%x-%x", l.Value, l.End)
		}

		table.Append([]string{
			l.Region.Tag(),
			l.Region.String(),
			fmt.Sprintf("%04x", l.Address),
			value,
			l.Name,
		})
	}

	table.Render()
}
