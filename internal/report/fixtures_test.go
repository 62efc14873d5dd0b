package report

import (
	"time"

	"github.com/neoexport/neoexport/internal/types"
)

// scenario is an unnamed object of unknown size.
func scenario() types.CloseApproach {
	return types.CloseApproach{
		Time:     time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		Distance: 0.3,
		Velocity: 5.1,
		NEO:      &types.NearEarthObject{Designation: "2020 AB", Hazardous: true},
	}
}

func named() types.CloseApproach {
	return types.CloseApproach{
		Time:     time.Date(2029, 4, 13, 21, 46, 0, 0, time.UTC),
		Distance: 0.000254099,
		Velocity: 7.42,
		NEO: &types.NearEarthObject{
			Designation: "99942",
			Name:        types.StringPtr("Apophis"),
			Diameter:    types.FloatPtr(0.37),
		},
	}
}
