package geo

import (
	"math"
	"testing"
)

func TestDistanceKMKnownPair(t *testing.T) {
	// Mumbai to Pune is roughly 120 km by great circle.
	got := DistanceKM(19.0760, 72.8777, 18.5204, 73.8567)
	if math.Abs(got-120) > 10 {
		t.Fatalf("unexpected distance: got %.1f want ~120", got)
	}
}

func TestDistanceKMZeroForSamePoint(t *testing.T) {
	if got := DistanceKM(28.6139, 77.2090, 28.6139, 77.2090); got > 0.001 {
		t.Fatalf("expected zero distance, got %f", got)
	}
}

func TestDistanceBetweenMissingCoordinates(t *testing.T) {
	lat := 19.0760
	lon := 72.8777

	if got := DistanceBetween(nil, &lon, &lat, &lon); got != nil {
		t.Fatalf("expected nil distance for missing requester latitude")
	}
	if got := DistanceBetween(&lat, &lon, &lat, nil); got != nil {
		t.Fatalf("expected nil distance for missing candidate longitude")
	}

	got := DistanceBetween(&lat, &lon, &lat, &lon)
	if got == nil || *got > 0.001 {
		t.Fatalf("expected zero distance for identical coordinates, got %v", got)
	}
}

func TestDistanceBetweenRejectsOutOfRange(t *testing.T) {
	bad := 200.0
	lat := 19.0760
	lon := 72.8777
	if got := DistanceBetween(&bad, &lon, &lat, &lon); got != nil {
		t.Fatalf("expected nil distance for out of range latitude")
	}
}

func TestValidateCoordinates(t *testing.T) {
	if err := ValidateCoordinates(19.0760, 72.8777); err != nil {
		t.Fatalf("valid coordinates rejected: %v", err)
	}
	if err := ValidateCoordinates(91, 0); err == nil {
		t.Fatalf("expected error for latitude out of range")
	}
	if err := ValidateCoordinates(math.NaN(), 0); err == nil {
		t.Fatalf("expected error for NaN latitude")
	}
}
