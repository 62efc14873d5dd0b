package metrics

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveExport(t *testing.T) {
	before := testutil.ToFloat64(recordsWrittenTotal.WithLabelValues("csv"))
	okBefore := testutil.ToFloat64(exportsTotal.WithLabelValues("csv", "ok"))
	errBefore := testutil.ToFloat64(exportsTotal.WithLabelValues("csv", "error"))

	ObserveExport("csv", 3, 120, 0.01, nil)
	ObserveExport("csv", 0, 0, 0.01, errors.New("boom"))

	if got := testutil.ToFloat64(recordsWrittenTotal.WithLabelValues("csv")) - before; got != 3 {
		t.Fatalf("expected 3 records counted, got %v", got)
	}
	if got := testutil.ToFloat64(exportsTotal.WithLabelValues("csv", "ok")) - okBefore; got != 1 {
		t.Fatalf("expected 1 ok export, got %v", got)
	}
	if got := testutil.ToFloat64(exportsTotal.WithLabelValues("csv", "error")) - errBefore; got != 1 {
		t.Fatalf("expected 1 failed export, got %v", got)
	}
}

func TestWriteTextfile(t *testing.T) {
	ObserveExport("json", 1, 10, 0.001, nil)
	path := filepath.Join(t.TempDir(), "neoexport.prom")
	if err := WriteTextfile(path); err != nil {
		t.Fatalf("WriteTextfile: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(b), "neoexport_records_written_total") {
		t.Fatalf("expected records counter in textfile; got: %s", b)
	}
}
