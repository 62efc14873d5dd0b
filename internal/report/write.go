package report

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/go-logr/logr"
	"go.uber.org/multierr"

	"github.com/neoexport/neoexport/internal/types"
)

// Format names an output encoding.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// ErrUnknownFormat is returned for formats and extensions with no writer.
var ErrUnknownFormat = errors.New("unknown output format")

// Formats lists the supported formats in display order.
func Formats() []Format { return []Format{FormatCSV, FormatJSON} }

// ParseFormat accepts a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatCSV, FormatJSON:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// FormatForPath derives the format from the file extension.
func FormatForPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: %s has no extension", ErrUnknownFormat, path)
	}
	return ParseFormat(ext)
}

// Options controls Export.
type Options struct {
	CSV CSVOptions
	Log logr.Logger
	// SourceErr reports a failure of the results sequence itself, such as an
	// unreadable input. It is checked once the sequence is drained; a JSON
	// document is not written when it returns an error.
	SourceErr func() error
}

// Summary describes a finished export.
type Summary struct {
	Path     string
	Format   Format
	Records  int
	Bytes    int64
	Checksum uint64 // xxhash64 of the bytes written
	Duration time.Duration
}

// ChecksumHex returns the checksum as 16 hex digits.
func (s Summary) ChecksumHex() string {
	return fmt.Sprintf("%016x", s.Checksum)
}

type countingWriter struct{ n int64 }

func (c *countingWriter) Write(p []byte) (int, error) {
	c.n += int64(len(p))
	return len(p), nil
}

// Export writes results to path in the given format and reports what was
// written. An empty format is derived from the path extension.
func Export(path string, format Format, results iter.Seq[types.CloseApproach], opts Options) (Summary, error) {
	log := opts.Log
	if log.GetSink() == nil {
		log = logr.Discard()
	}
	if format == "" {
		f, err := FormatForPath(path)
		if err != nil {
			return Summary{Path: path}, err
		}
		format = f
	}
	sourceErr := func() error {
		if opts.SourceErr == nil {
			return nil
		}
		return opts.SourceErr()
	}
	start := time.Now()
	sum := Summary{Path: path, Format: format}
	digest := xxhash.New()
	counter := &countingWriter{}
	tee := func(w io.Writer) io.Writer { return io.MultiWriter(w, digest, counter) }

	var err error
	switch format {
	case FormatCSV:
		sum.Records, err = writeFile(path, func(w io.Writer) (int, error) {
			return EncodeCSV(tee(w), results, opts.CSV)
		})
		if err == nil {
			err = sourceErr()
		}
	case FormatJSON:
		var doc []byte
		doc, sum.Records, err = MarshalDocument(results)
		if err == nil {
			err = sourceErr()
		}
		if err != nil {
			break
		}
		_, err = writeFile(path, func(w io.Writer) (int, error) {
			_, werr := tee(w).Write(doc)
			return sum.Records, werr
		})
	default:
		return sum, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	sum.Bytes = counter.n
	sum.Checksum = digest.Sum64()
	sum.Duration = time.Since(start)
	if err != nil {
		log.Error(err, "export failed", "path", path, "format", format, "records", sum.Records)
		return sum, err
	}
	log.V(1).Info("export written", "path", path, "format", format, "records", sum.Records, "bytes", sum.Bytes, "checksum", sum.ChecksumHex())
	return sum, nil
}

// writeFile creates or truncates path, hands it to encode and closes it on
// every path out. A close error is reported alongside any encode error.
func writeFile(path string, encode func(io.Writer) (int, error)) (n int, err error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create output: %w", err)
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()
	n, err = encode(f)
	if err != nil {
		return n, fmt.Errorf("write %s: %w", path, err)
	}
	return n, nil
}
