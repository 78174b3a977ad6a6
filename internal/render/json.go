package render

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSON pretty-prints v with two-space indentation and a trailing newline.
func JSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
