package audit

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// PrintHistory renders audit records as a table, numbered in the order
// DeleteRecord expects.
func PrintHistory(w io.Writer, records []ExportRecord) error {
	if len(records) == 0 {
		fmt.Fprintln(w, "No exports recorded.")
		return nil
	}
	table := tablewriter.NewWriter(w)
	table.Header("#", "TIME (UTC)", "FORMAT", "RECORDS", "BYTES", "CHECKSUM", "OUTPUT")
	for i, r := range records {
		row := []string{
			strconv.Itoa(i),
			r.Timestamp.UTC().Format("2006-01-02 15:04:05"),
			r.Format,
			strconv.Itoa(r.Records),
			strconv.FormatInt(r.Bytes, 10),
			r.Checksum,
			r.Output,
		}
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}
