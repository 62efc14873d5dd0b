package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	recordsWrittenTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "neoexport_records_written_total",
			Help: "Total number of close approaches written.",
		},
		[]string{"format"},
	)

	exportsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "neoexport_exports_total",
			Help: "Total number of export runs by outcome.",
		},
		[]string{"format", "result"},
	)

	exportBytesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "neoexport_bytes_written_total",
			Help: "Total number of output bytes written.",
		},
		[]string{"format"},
	)

	exportDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "neoexport_export_duration_seconds",
			Help:    "Export duration in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"format"},
	)
)

func init() {
	prometheus.MustRegister(recordsWrittenTotal)
	prometheus.MustRegister(exportsTotal)
	prometheus.MustRegister(exportBytesTotal)
	prometheus.MustRegister(exportDurationSeconds)
}

// ObserveExport records the outcome of one export run.
func ObserveExport(format string, records int, bytes int64, seconds float64, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	exportsTotal.WithLabelValues(format, result).Inc()
	recordsWrittenTotal.WithLabelValues(format).Add(float64(records))
	exportBytesTotal.WithLabelValues(format).Add(float64(bytes))
	exportDurationSeconds.WithLabelValues(format).Observe(seconds)
}

// WriteTextfile dumps the default registry to path in the Prometheus text
// format, for pickup by node_exporter's textfile collector.
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
