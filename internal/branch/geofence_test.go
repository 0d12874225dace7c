package branch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func gpsBranch(lat, lng float64, radius *float64) *Branch {
	return &Branch{
		ID:              1,
		Name:            "Makati HQ",
		GPSLatitude:     &lat,
		GPSLongitude:    &lng,
		GPSRadiusMeters: radius,
	}
}

func TestValidateLocation_NoGPSConfigured(t *testing.T) {
	ok, reason := ValidateLocation(&Branch{ID: 1, Name: "Makati HQ"}, 14.5547, 121.0244)
	assert.True(t, ok)
	assert.Equal(t, "No GPS configured for branch", reason)
}

func TestValidateLocation_NilBranch(t *testing.T) {
	ok, _ := ValidateLocation(nil, 14.5547, 121.0244)
	assert.True(t, ok)
}

func TestValidateLocation_WithinDefaultRadius(t *testing.T) {
	b := gpsBranch(14.5547, 121.0244, nil)
	// Roughly 55 meters north of the branch.
	ok, reason := ValidateLocation(b, 14.5552, 121.0244)
	assert.True(t, ok)
	assert.Contains(t, reason, "Within")
}

func TestValidateLocation_OutsideDefaultRadius(t *testing.T) {
	b := gpsBranch(14.5547, 121.0244, nil)
	// Roughly 550 meters north of the branch.
	ok, reason := ValidateLocation(b, 14.5597, 121.0244)
	assert.False(t, ok)
	assert.Contains(t, reason, "away from branch")
	assert.Contains(t, reason, "max: 100m")
}

func TestValidateLocation_CustomRadius(t *testing.T) {
	radius := 1000.0
	b := gpsBranch(14.5547, 121.0244, &radius)
	ok, _ := ValidateLocation(b, 14.5597, 121.0244)
	assert.True(t, ok)
}

func TestHaversine_SamePointIsZero(t *testing.T) {
	assert.Zero(t, haversineMeters(14.5547, 121.0244, 14.5547, 121.0244))
}
