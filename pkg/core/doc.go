// Package core provides a small, stable facade over neoexport's internal
// serializers for external integrations. It re-exports a narrow API surface
// so callers can depend on a stable import path without importing internal
// packages.
//
// Example:
//
//	records := []core.CloseApproach{ /* ... */ }
//	if err := core.WriteCSV("approaches.csv", core.Values(records)); err != nil { /* handle */ }
//	_ = core.MarshalApproaches(os.Stdout, records)
package core
