package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"slices"
	"strconv"

	"github.com/neoexport/neoexport/internal/types"
)

// ErrBadHeader is returned when a CSV input does not start with CSVHeader.
var ErrBadHeader = errors.New("unexpected csv header")

// Float is a document number that also accepts the NaN, Infinity and
// -Infinity literals once DecodeJSON has quoted them.
type Float float64

func (f *Float) UnmarshalJSON(b []byte) error {
	switch string(b) {
	case `"NaN"`:
		*f = Float(math.NaN())
		return nil
	case `"Infinity"`:
		*f = Float(math.Inf(1))
		return nil
	case `"-Infinity"`:
		*f = Float(math.Inf(-1))
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*f = Float(v)
	return nil
}

var nonFinite = [][]byte{[]byte("-Infinity"), []byte("Infinity"), []byte("NaN")}

// quoteNonFinite wraps bare NaN/Infinity tokens outside of strings in quotes
// so encoding/json can parse the document.
func quoteNonFinite(data []byte) []byte {
	out := make([]byte, 0, len(data)+16)
	inString, escaped := false, false
	for i := 0; i < len(data); i++ {
		c := data[i]
		if inString {
			out = append(out, c)
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		if c == '"' {
			inString = true
			out = append(out, c)
			continue
		}
		matched := false
		for _, tok := range nonFinite {
			if bytes.HasPrefix(data[i:], tok) {
				out = append(out, '"')
				out = append(out, tok...)
				out = append(out, '"')
				i += len(tok) - 1
				matched = true
				break
			}
		}
		if !matched {
			out = append(out, c)
		}
	}
	return out
}

// DecodeJSON parses a document produced by EncodeJSON.
func DecodeJSON(r io.Reader) ([]types.CloseApproach, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var entries []Entry
	if err := json.Unmarshal(quoteNonFinite(data), &entries); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	out := make([]types.CloseApproach, 0, len(entries))
	for i, e := range entries {
		ca, err := e.CloseApproach()
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		out = append(out, ca)
	}
	return out, nil
}

// DecodeCSV parses rows produced by EncodeCSV. Empty names and nan diameters
// come back as absent values.
func DecodeCSV(r io.Reader) ([]types.CloseApproach, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(CSVHeader)
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if !slices.Equal(header, CSVHeader) {
		return nil, fmt.Errorf("%w: %v", ErrBadHeader, header)
	}
	var out []types.CloseApproach
	for {
		row, err := cr.Read()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		ca, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", len(out)+1, err)
		}
		out = append(out, ca)
	}
}

func parseRow(row []string) (types.CloseApproach, error) {
	var ca types.CloseApproach
	t, err := types.ParseTime(row[0])
	if err != nil {
		return ca, err
	}
	dist, err := strconv.ParseFloat(row[1], 64)
	if err != nil {
		return ca, err
	}
	vel, err := strconv.ParseFloat(row[2], 64)
	if err != nil {
		return ca, err
	}
	hazardous, err := strconv.ParseBool(row[6])
	if err != nil {
		return ca, err
	}
	neo := &types.NearEarthObject{Designation: row[3], Hazardous: hazardous}
	if row[4] != "" {
		neo.Name = types.StringPtr(row[4])
	}
	d, err := strconv.ParseFloat(row[5], 64)
	if err != nil {
		return ca, err
	}
	if !math.IsNaN(d) {
		neo.Diameter = types.FloatPtr(d)
	}
	ca = types.CloseApproach{Time: t, Distance: dist, Velocity: vel, NEO: neo}
	return ca, ca.Validate()
}

// ReadJSON reads a document file.
func ReadJSON(path string) ([]types.CloseApproach, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeJSON(f)
}

// ReadCSV reads a row-format file.
func ReadCSV(path string) ([]types.CloseApproach, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeCSV(f)
}

// ReadFile picks the reader from the file extension.
func ReadFile(path string) ([]types.CloseApproach, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	switch format {
	case FormatCSV:
		return ReadCSV(path)
	default:
		return ReadJSON(path)
	}
}
