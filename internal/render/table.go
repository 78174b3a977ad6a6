// Package render turns uniform record sequences into fixed-width text
// tables or pretty-printed JSON for terminal output.
package render

import (
	"fmt"
	"io"
	"strings"
)

// maxColumnWidth caps every column so one long value cannot blow out the row.
const maxColumnWidth = 40

// missingValue is printed for absent or null record values.
const missingValue = "N/A"

// Column declares one table column: the record key to read, the header
// label, and an optional formatter applied to present values.
type Column struct {
	Key    string
	Label  string
	Format func(interface{}) string
}

// Table writes records as a fixed-width table: a header line, a dash rule,
// one line per record, and a trailing "N result(s)" count. An empty input
// prints only a notice, with no header or rule.
func Table(w io.Writer, columns []Column, records []map[string]interface{}) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}

	widths := make([]int, len(columns))
	cells := make([][]string, len(records))
	for i, col := range columns {
		widths[i] = len(col.Label)
	}
	for r, record := range records {
		row := make([]string, len(columns))
		for i, col := range columns {
			value := cellValue(col, record)
			row[i] = value
			if len(value) > widths[i] {
				widths[i] = len(value)
			}
		}
		cells[r] = row
	}
	for i := range widths {
		if widths[i] > maxColumnWidth {
			widths[i] = maxColumnWidth
		}
	}

	labels := make([]string, len(columns))
	for i, col := range columns {
		labels[i] = pad(col.Label, widths[i])
	}
	header := strings.Join(labels, "  ")
	fmt.Fprintln(w, header)
	fmt.Fprintln(w, strings.Repeat("-", len(header)))

	for _, row := range cells {
		for i, value := range row {
			row[i] = pad(value, widths[i])
		}
		fmt.Fprintln(w, strings.Join(row, "  "))
	}

	fmt.Fprintf(w, "\n%d result(s)\n", len(records))
}

// cellValue resolves one cell: formatter output for present values, the
// raw value otherwise, and the missing placeholder for absent/null keys.
func cellValue(col Column, record map[string]interface{}) string {
	value, ok := record[col.Key]
	if !ok || value == nil {
		return missingValue
	}
	if col.Format != nil {
		return col.Format(value)
	}
	return fmt.Sprintf("%v", value)
}

// pad truncates value to width, then right-pads it with spaces to width.
func pad(value string, width int) string {
	if len(value) > width {
		value = value[:width]
	}
	return value + strings.Repeat(" ", width-len(value))
}
