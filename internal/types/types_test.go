package types

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNearEarthObject_Defaults(t *testing.T) {
	neo := NearEarthObject{Designation: "2020 AB"}
	assert.Equal(t, "", neo.DisplayName())
	assert.True(t, math.IsNaN(neo.DiameterKM()))

	neo.Name = StringPtr("Apophis")
	neo.Diameter = FloatPtr(0)
	assert.Equal(t, "Apophis", neo.DisplayName())
	assert.Equal(t, 0.0, neo.DiameterKM(), "zero diameter is a real value")
}

func TestCloseApproach_TimeString(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	ca := CloseApproach{Time: time.Date(2025, 1, 1, 2, 0, 45, 0, loc)}
	assert.Equal(t, "2025-01-01 00:00", ca.TimeString())

	back, err := ParseTime(ca.TimeString())
	assert.NoError(t, err)
	assert.True(t, back.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestCloseApproach_Validate(t *testing.T) {
	tests := []struct {
		name string
		ca   CloseApproach
		want error
	}{
		{name: "valid", ca: CloseApproach{NEO: &NearEarthObject{Designation: "433"}}},
		{name: "missing neo", ca: CloseApproach{}, want: ErrMissingNEO},
		{name: "blank designation", ca: CloseApproach{NEO: &NearEarthObject{Designation: "  "}}, want: ErrBlankDesignation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ca.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestValues_PreservesOrder(t *testing.T) {
	in := []CloseApproach{
		{Distance: 1, NEO: &NearEarthObject{Designation: "a"}},
		{Distance: 2, NEO: &NearEarthObject{Designation: "b"}},
	}
	var got []string
	for ca := range Values(in) {
		got = append(got, ca.NEO.Designation)
	}
	assert.Equal(t, []string{"a", "b"}, got)
}
