package report

import (
	"fmt"
	"io"
	"iter"
	"math"

	"github.com/neoexport/neoexport/internal/types"
)

// Entry is one element of the JSON document.
type Entry struct {
	DatetimeUTC string   `json:"datetime_utc"`
	DistanceAU  Float    `json:"distance_au"`
	VelocityKMS Float    `json:"velocity_km_s"`
	NEO         NEOEntry `json:"neo"`
}

// NEOEntry is the nested object describing the approaching body.
type NEOEntry struct {
	Designation          string `json:"designation"`
	Name                 string `json:"name"`
	DiameterKM           Float  `json:"diameter_km"`
	PotentiallyHazardous bool   `json:"potentially_hazardous"`
}

// NewEntry maps a close approach to its document entry. Absent names become
// "" and absent diameters NaN.
func NewEntry(ca types.CloseApproach) (Entry, error) {
	if err := ca.Validate(); err != nil {
		return Entry{}, err
	}
	return Entry{
		DatetimeUTC: ca.TimeString(),
		DistanceAU:  Float(ca.Distance),
		VelocityKMS: Float(ca.Velocity),
		NEO: NEOEntry{
			Designation:          ca.NEO.Designation,
			Name:                 ca.NEO.DisplayName(),
			DiameterKM:           Float(ca.NEO.DiameterKM()),
			PotentiallyHazardous: ca.NEO.Hazardous,
		},
	}, nil
}

// CloseApproach converts a decoded entry back into a record.
func (e Entry) CloseApproach() (types.CloseApproach, error) {
	t, err := types.ParseTime(e.DatetimeUTC)
	if err != nil {
		return types.CloseApproach{}, fmt.Errorf("datetime_utc: %w", err)
	}
	neo := &types.NearEarthObject{
		Designation: e.NEO.Designation,
		Hazardous:   e.NEO.PotentiallyHazardous,
	}
	if e.NEO.Name != "" {
		neo.Name = types.StringPtr(e.NEO.Name)
	}
	if d := float64(e.NEO.DiameterKM); !math.IsNaN(d) {
		neo.Diameter = types.FloatPtr(d)
	}
	ca := types.CloseApproach{
		Time:     t,
		Distance: float64(e.DistanceAU),
		Velocity: float64(e.VelocityKMS),
		NEO:      neo,
	}
	return ca, ca.Validate()
}

// AppendJSON appends the entry with ", " and ": " separators.
func (e Entry) AppendJSON(dst []byte) []byte {
	dst = append(dst, `{"datetime_utc": `...)
	dst = appendJSONString(dst, e.DatetimeUTC)
	dst = append(dst, `, "distance_au": `...)
	dst = appendJSONFloat(dst, float64(e.DistanceAU))
	dst = append(dst, `, "velocity_km_s": `...)
	dst = appendJSONFloat(dst, float64(e.VelocityKMS))
	dst = append(dst, `, "neo": {"designation": `...)
	dst = appendJSONString(dst, e.NEO.Designation)
	dst = append(dst, `, "name": `...)
	dst = appendJSONString(dst, e.NEO.Name)
	dst = append(dst, `, "diameter_km": `...)
	dst = appendJSONFloat(dst, float64(e.NEO.DiameterKM))
	dst = append(dst, `, "potentially_hazardous": `...)
	if e.NEO.PotentiallyHazardous {
		dst = append(dst, "true"...)
	} else {
		dst = append(dst, "false"...)
	}
	return append(dst, "}}"...)
}

// BuildDocument collects one entry per close approach, in input order.
func BuildDocument(results iter.Seq[types.CloseApproach]) ([]Entry, error) {
	entries := []Entry{}
	for ca := range results {
		e, err := NewEntry(ca)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", len(entries), err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// MarshalDocument builds the full document and serializes it as a single
// JSON array. It returns the encoded bytes and the number of entries.
func MarshalDocument(results iter.Seq[types.CloseApproach]) ([]byte, int, error) {
	entries, err := BuildDocument(results)
	if err != nil {
		return nil, 0, err
	}
	buf := make([]byte, 0, 2+len(entries)*192)
	buf = append(buf, '[')
	for i, e := range entries {
		if i > 0 {
			buf = append(buf, ", "...)
		}
		buf = e.AppendJSON(buf)
	}
	buf = append(buf, ']')
	return buf, len(entries), nil
}

// EncodeJSON writes results to w as one JSON document. Nothing is written
// unless every record serializes.
func EncodeJSON(w io.Writer, results iter.Seq[types.CloseApproach]) (int, error) {
	doc, n, err := MarshalDocument(results)
	if err != nil {
		return 0, err
	}
	if _, err := w.Write(doc); err != nil {
		return 0, err
	}
	return n, nil
}

// WriteJSON creates or truncates path and writes results to it as a JSON
// document. The document is built before the file is opened, so a record
// that fails validation leaves an existing file untouched.
func WriteJSON(path string, results iter.Seq[types.CloseApproach]) error {
	doc, n, err := MarshalDocument(results)
	if err != nil {
		return err
	}
	_, err = writeFile(path, func(w io.Writer) (int, error) {
		_, err := w.Write(doc)
		return n, err
	})
	return err
}
