package core

import (
	"io"

	"github.com/neoexport/neoexport/internal/report"
)

// MarshalApproaches writes results as the JSON document, for pipelines that
// want the document on an arbitrary writer.
func MarshalApproaches(w io.Writer, results []CloseApproach) error {
	_, err := report.EncodeJSON(w, Values(results))
	return err
}

// UnmarshalApproaches decodes a JSON document, including NaN diameters.
func UnmarshalApproaches(r io.Reader) ([]CloseApproach, error) {
	return report.DecodeJSON(r)
}

// ReadFile reads a CSV or JSON export, chosen by extension.
func ReadFile(path string) ([]CloseApproach, error) {
	return report.ReadFile(path)
}
