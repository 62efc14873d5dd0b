package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"iter"

	"github.com/neoexport/neoexport/internal/types"
)

// CSVHeader is the fixed first row of every CSV export.
//
// Rows end in \r\n. Fields are quoted when they contain a comma, a quote or
// a line break, and also when they start with a space or tab; a name with a
// leading space is written quoted. Readers accept it quoted or bare.
var CSVHeader = []string{
	"datetime_utc",
	"distance_au",
	"velocity_km_s",
	"designation",
	"name",
	"diameter_km",
	"potentially_hazardous",
}

// CSVOptions tunes the row format.
type CSVOptions struct {
	// UseLF terminates rows with \n instead of \r\n.
	UseLF bool
}

// EncodeCSV writes the header and one row per close approach, in input order,
// and returns the number of rows written after the header.
func EncodeCSV(w io.Writer, results iter.Seq[types.CloseApproach], opts CSVOptions) (int, error) {
	cw := csv.NewWriter(w)
	cw.UseCRLF = !opts.UseLF
	if err := cw.Write(CSVHeader); err != nil {
		return 0, err
	}
	n := 0
	for ca := range results {
		if err := ca.Validate(); err != nil {
			cw.Flush()
			return n, fmt.Errorf("record %d: %w", n, err)
		}
		if err := cw.Write(csvRow(ca)); err != nil {
			return n, err
		}
		n++
	}
	cw.Flush()
	return n, cw.Error()
}

func csvRow(ca types.CloseApproach) []string {
	return []string{
		ca.TimeString(),
		textFloat(ca.Distance),
		textFloat(ca.Velocity),
		ca.NEO.Designation,
		ca.NEO.DisplayName(),
		textFloat(ca.NEO.DiameterKM()),
		textBool(ca.NEO.Hazardous),
	}
}

// WriteCSV creates or truncates path and writes results to it as CSV.
func WriteCSV(path string, results iter.Seq[types.CloseApproach]) error {
	_, err := writeFile(path, func(w io.Writer) (int, error) {
		return EncodeCSV(w, results, CSVOptions{})
	})
	return err
}
