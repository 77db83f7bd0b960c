package render

import (
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/giantswarm/mmaictl/internal/flatten"
)

const (
	columnCluster = "CLUSTER"
	columnValue   = "VALUE"
)

// writeTable prints one row per entry. Columns are the union of the
// entries' flattened keys in first-seen order, preceded by a cluster column
// for grouped documents. Cells an entry lacks stay empty.
func writeTable(w io.Writer, d Document) error {
	rows := make([]flatten.Flat, len(d.Entries))
	var columns []string
	seen := make(map[string]bool)
	for i, e := range d.Entries {
		var root flatten.Prefix
		if d.NamesOnly {
			root = "name"
		}
		rows[i] = flatten.Flatten(e.Record, root)
		for _, key := range rows[i].Keys() {
			if !seen[key] {
				seen[key] = true
				columns = append(columns, key)
			}
		}
	}

	header := make([]string, 0, len(columns)+1)
	if d.Grouped {
		header = append(header, columnCluster)
	}
	for _, c := range columns {
		if c == "" {
			c = columnValue
		}
		header = append(header, c)
	}

	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader(header)
	for i, e := range d.Entries {
		row := make([]string, 0, len(header))
		if d.Grouped {
			row = append(row, e.Context)
		}
		for _, c := range columns {
			v, ok := rows[i].Get(c)
			if !ok {
				row = append(row, "")
				continue
			}
			row = append(row, v.Display())
		}
		table.Append(row)
	}
	table.Render()
	return nil
}
