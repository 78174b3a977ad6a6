package render

import (
	"fmt"
	"io"
)

// Detail writes a single record as aligned "Label: value" lines, one per
// declared column. Absent values render the same placeholder as Table.
func Detail(w io.Writer, columns []Column, record map[string]interface{}) {
	width := 0
	for _, col := range columns {
		if len(col.Label) > width {
			width = len(col.Label)
		}
	}
	for _, col := range columns {
		fmt.Fprintf(w, "%-*s %s\n", width+1, col.Label+":", cellValue(col, record))
	}
}
