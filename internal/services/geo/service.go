package geo

import (
	"errors"
	"fmt"
	"math"
)

var ErrValidation = errors.New("validation error")

const earthRadiusKM = 6371.0

// DistanceKM returns the great-circle distance between two coordinates.
func DistanceKM(lat1, lon1, lat2, lon2 float64) float64 {
	toRad := func(v float64) float64 { return v * math.Pi / 180 }
	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKM * c
}

// DistanceBetween degrades gracefully: when either side has no
// coordinates the distance is simply unknown, never an error.
func DistanceBetween(lat1, lon1, lat2, lon2 *float64) *float64 {
	if lat1 == nil || lon1 == nil || lat2 == nil || lon2 == nil {
		return nil
	}
	if ValidateCoordinates(*lat1, *lon1) != nil || ValidateCoordinates(*lat2, *lon2) != nil {
		return nil
	}

	distance := DistanceKM(*lat1, *lon1, *lat2, *lon2)
	return &distance
}

func ValidateCoordinates(lat, lon float64) error {
	if math.IsNaN(lat) || math.IsNaN(lon) || math.IsInf(lat, 0) || math.IsInf(lon, 0) {
		return fmt.Errorf("invalid coordinates: %w", ErrValidation)
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return fmt.Errorf("coordinates out of range: %w", ErrValidation)
	}
	return nil
}
