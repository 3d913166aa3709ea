// Package geo provides the equirectangular distance approximation used to
// derive road edge costs from geographic coordinates.
package geo

import "math"

// EarthRadiusMeters is the mean Earth radius used by the equirectangular
// approximation (spec.md §3).
const EarthRadiusMeters = 6371000.0

// Distance returns the equirectangular-approximation distance in meters
// between two points given in degrees.
//
// Trig is computed in double precision and the final result is rounded to
// single precision at the boundary, matching the Design Notes'
// floating-point-determinism rule (spec.md §9) — this keeps scenario
// expected values reproducible regardless of what precision the caller's
// road.Node coordinates are stored in.
func Distance(lat1, lon1, lat2, lon2 float32) float32 {
	phi1 := toRadians(float64(lat1))
	phi2 := toRadians(float64(lat2))
	meanPhi := (phi1 + phi2) / 2

	x := toRadians(float64(lon2)-float64(lon1)) * math.Cos(meanPhi)
	y := phi2 - phi1

	d := math.Sqrt(x*x+y*y) * EarthRadiusMeters
	return float32(d)
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
