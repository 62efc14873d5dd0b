package audit

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"go.uber.org/multierr"

	"github.com/neoexport/neoexport/internal/report"
)

type ExportRecord struct {
	Timestamp time.Time `json:"timestamp"`
	ExportID  string    `json:"export_id"`
	Output    string    `json:"output"`
	Format    string    `json:"format"`
	Inputs    []string  `json:"inputs,omitempty"`
	Records   int       `json:"records"`
	Bytes     int64     `json:"bytes"`
	Checksum  string    `json:"checksum"`
	Duration  string    `json:"duration"`
}

type AuditLog struct {
	logPath string
}

// NewAuditLog places the log under dir/.git when dir is a repository root,
// otherwise directly in dir.
func NewAuditLog(dir string) *AuditLog {
	gitDir := filepath.Join(dir, ".git")
	logPath := filepath.Join(dir, ".neoexport_audit.jsonl")
	if st, err := os.Stat(gitDir); err == nil && st.IsDir() {
		logPath = filepath.Join(gitDir, "neoexport_audit.jsonl")
	}
	return &AuditLog{logPath: logPath}
}

// Path returns the log file location.
func (a *AuditLog) Path() string { return a.logPath }

// LoadHistory returns logged exports, newest first. Malformed lines are skipped.
func (a *AuditLog) LoadHistory() ([]ExportRecord, error) {
	records, err := a.read()
	if err != nil {
		return nil, err
	}
	slices.Reverse(records)
	return records, nil
}

// LogExport appends record, assigning an export ID when it has none.
func (a *AuditLog) LogExport(record ExportRecord) error {
	if record.ExportID == "" {
		record.ExportID = fmt.Sprintf("export_%d", time.Now().UnixNano())
	}
	return a.write(os.O_APPEND, record)
}

// DeleteRecord removes the record at index in LoadHistory order.
func (a *AuditLog) DeleteRecord(index int) error {
	records, err := a.read()
	if err != nil {
		return err
	}
	if index < 0 || index >= len(records) {
		return fmt.Errorf("invalid index: %d", index)
	}
	// records are in file order, index counts from the newest
	at := len(records) - 1 - index
	return a.write(os.O_TRUNC, slices.Delete(records, at, at+1)...)
}

// read returns the records in file order.
func (a *AuditLog) read() ([]ExportRecord, error) {
	f, err := os.Open(a.logPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open audit log: %w", err)
	}
	defer f.Close()

	var records []ExportRecord
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for sc.Scan() {
		var r ExportRecord
		if json.Unmarshal(sc.Bytes(), &r) == nil {
			records = append(records, r)
		}
	}
	return records, sc.Err()
}

// write opens the log with mode (os.O_APPEND or os.O_TRUNC) and encodes
// records one per line.
func (a *AuditLog) write(mode int, records ...ExportRecord) (err error) {
	// owner-only: the log lists local file paths
	f, err := os.OpenFile(a.logPath, os.O_CREATE|os.O_WRONLY|mode, 0600)
	if err != nil {
		return fmt.Errorf("failed to open audit log: %w", err)
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()

	enc := json.NewEncoder(f)
	for _, r := range records {
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("failed to write audit record: %w", err)
		}
	}
	return nil
}

func CreateExportRecord(sum report.Summary, inputs []string) ExportRecord {
	return ExportRecord{
		Timestamp: time.Now().UTC(),
		Output:    sum.Path,
		Format:    string(sum.Format),
		Inputs:    inputs,
		Records:   sum.Records,
		Bytes:     sum.Bytes,
		Checksum:  sum.ChecksumHex(),
		Duration:  sum.Duration.String(),
	}
}
