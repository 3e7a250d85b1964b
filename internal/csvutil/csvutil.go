// File: internal/csvutil/csvutil.go
// Brief: CSV table encoding for list output.

// Package csvutil provides csvutil helpers.

package csvutil

import (
	"encoding/csv"
	"io"
)

// WriteTable encodes a header row and data rows as CSV. Rows shorter than
// the header are padded with empty cells so every record has the same
// width.
func WriteTable(w io.Writer, header []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	if len(header) > 0 {
		if err := cw.Write(header); err != nil {
			return err
		}
	}
	for _, row := range rows {
		if len(header) > 0 && len(row) < len(header) {
			padded := make([]string, len(header))
			copy(padded, row)
			row = padded
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
