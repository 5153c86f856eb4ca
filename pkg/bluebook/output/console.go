package output

import (
	"encoding/csv"
	"io"
)

// Print writes t to w as CSV, header first.
func Print(w io.Writer, t Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Header); err != nil {
		return err
	}
	return cw.WriteAll(t.Rows)
}
