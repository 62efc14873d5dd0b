package core

import (
	"iter"

	"github.com/neoexport/neoexport/internal/report"
	"github.com/neoexport/neoexport/internal/types"
)

// Re-export selected internal types as a stable public API surface.
// These are type aliases so external consumers can depend on a stable path.
type CloseApproach = types.CloseApproach
type NearEarthObject = types.NearEarthObject
type Summary = report.Summary

var (
	ErrMissingNEO       = types.ErrMissingNEO
	ErrBlankDesignation = types.ErrBlankDesignation
	ErrUnknownFormat    = report.ErrUnknownFormat
)

// WriteCSV writes results to path as CSV rows under the fixed header.
func WriteCSV(path string, results iter.Seq[CloseApproach]) error {
	return report.WriteCSV(path, results)
}

// WriteJSON writes results to path as a single JSON array.
func WriteJSON(path string, results iter.Seq[CloseApproach]) error {
	return report.WriteJSON(path, results)
}

// Write picks CSV or JSON from the path extension.
func Write(path string, results iter.Seq[CloseApproach]) (Summary, error) {
	return report.Export(path, "", results, report.Options{})
}

// Values adapts a slice to the sequence the writers consume.
func Values(records []CloseApproach) iter.Seq[CloseApproach] {
	return types.Values(records)
}

// StringPtr builds an optional NearEarthObject name.
func StringPtr(s string) *string {
	return types.StringPtr(s)
}

// FloatPtr builds an optional NearEarthObject diameter in kilometers.
func FloatPtr(f float64) *float64 {
	return types.FloatPtr(f)
}
