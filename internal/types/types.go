package types

import (
	"errors"
	"iter"
	"math"
	"slices"
	"strings"
	"time"
)

// TimeLayout is the minute-resolution UTC form used in every output format.
const TimeLayout = "2006-01-02 15:04"

var (
	// ErrMissingNEO is returned when a close approach has no associated object.
	ErrMissingNEO = errors.New("close approach has no near-earth object")
	// ErrBlankDesignation is returned when an object's designation is empty.
	ErrBlankDesignation = errors.New("near-earth object has a blank designation")
)

// NearEarthObject is the body a close approach belongs to. Name and Diameter
// are optional; nil means the source did not provide a value.
type NearEarthObject struct {
	Designation string
	Name        *string
	Diameter    *float64 // kilometres
	Hazardous   bool
}

// DisplayName returns the name, or "" when the object is unnamed.
func (n NearEarthObject) DisplayName() string {
	if n.Name == nil {
		return ""
	}
	return *n.Name
}

// DiameterKM returns the diameter in kilometres, or NaN when it is unknown.
// A zero diameter is a real value and is returned as zero.
func (n NearEarthObject) DiameterKM() float64 {
	if n.Diameter == nil {
		return math.NaN()
	}
	return *n.Diameter
}

// CloseApproach is a single pass of a near-earth object by the planet.
type CloseApproach struct {
	Time     time.Time
	Distance float64 // astronomical units
	Velocity float64 // km/s relative to the planet
	NEO      *NearEarthObject
}

// TimeString formats Time in UTC with minute resolution.
func (ca CloseApproach) TimeString() string {
	return ca.Time.UTC().Format(TimeLayout)
}

// Validate reports whether the record can be serialized.
func (ca CloseApproach) Validate() error {
	if ca.NEO == nil {
		return ErrMissingNEO
	}
	if strings.TrimSpace(ca.NEO.Designation) == "" {
		return ErrBlankDesignation
	}
	return nil
}

// Values adapts a slice to the single-pass sequence the writers consume.
func Values(records []CloseApproach) iter.Seq[CloseApproach] {
	return slices.Values(records)
}

// ParseTime parses the TimeLayout form back into a UTC time.
func ParseTime(s string) (time.Time, error) {
	return time.ParseInLocation(TimeLayout, s, time.UTC)
}

// StringPtr builds an optional name.
func StringPtr(s string) *string {
	return &s
}

// FloatPtr builds an optional diameter.
func FloatPtr(f float64) *float64 {
	return &f
}
