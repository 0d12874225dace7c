package branch

import (
	"fmt"
	"math"
)

const (
	earthRadiusMeters   = 6371000.0
	defaultRadiusMeters = 100.0
)

// haversineMeters computes the great-circle distance between two points.
func haversineMeters(lat1, lng1, lat2, lng2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

// ValidateLocation checks a reported point against the branch geofence.
// Geofencing is opt-in: a branch without configured coordinates accepts
// every location.
func ValidateLocation(b *Branch, lat, lng float64) (bool, string) {
	if b == nil || b.GPSLatitude == nil || b.GPSLongitude == nil {
		return true, "No GPS configured for branch"
	}

	radius := defaultRadiusMeters
	if b.GPSRadiusMeters != nil && *b.GPSRadiusMeters > 0 {
		radius = *b.GPSRadiusMeters
	}

	distance := haversineMeters(*b.GPSLatitude, *b.GPSLongitude, lat, lng)
	if distance <= radius {
		return true, fmt.Sprintf("Within %dm of branch", int(distance))
	}
	return false, fmt.Sprintf("Location is %dm away from branch (max: %dm)", int(distance), int(radius))
}
