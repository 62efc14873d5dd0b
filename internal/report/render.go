package report

import (
	"fmt"
	"io"
	"iter"

	"github.com/olekukonko/tablewriter"

	"github.com/neoexport/neoexport/internal/types"
)

// TableOptions controls PrintTable.
type TableOptions struct {
	// Limit caps the number of rendered rows; 0 renders everything.
	Limit   int
	NoColor bool
}

// PrintTable renders close approaches as a bordered terminal table followed
// by a count footer. Records past Limit are counted but not rendered.
func PrintTable(w io.Writer, results iter.Seq[types.CloseApproach], opts TableOptions) error {
	total := 0
	var rows [][]string
	for ca := range results {
		if err := ca.Validate(); err != nil {
			return fmt.Errorf("record %d: %w", total, err)
		}
		total++
		if opts.Limit > 0 && len(rows) >= opts.Limit {
			continue
		}
		row := csvRow(ca)
		if !opts.NoColor {
			row[6] = colorHazard(ca.NEO.Hazardous)
		}
		rows = append(rows, row)
	}
	if total == 0 {
		fmt.Fprintln(w, "No close approaches.")
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Header("DATETIME (UTC)", "DISTANCE (AU)", "VELOCITY (KM/S)", "DESIGNATION", "NAME", "DIAMETER (KM)", "HAZARDOUS")
	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return err
	}
	if len(rows) < total {
		fmt.Fprintf(w, "Showing %d of %d close approaches\n", len(rows), total)
	} else {
		fmt.Fprintf(w, "Close approaches: %d\n", total)
	}
	return nil
}

func colorHazard(h bool) string {
	if h {
		return "\x1b[31mTrue\x1b[0m" // red
	}
	return "False"
}
