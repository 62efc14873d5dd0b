// Package metrics exposes Prometheus counters for export runs.
package metrics
