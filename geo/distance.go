package geo

import "math"

const (
	// EarthRadiusKm is the assumed radius of the sphere, in kilometers.
	EarthRadiusKm = 6366.0

	// degToRad converts degrees to radians for both endpoints.
	degToRad = math.Pi / 180
)

// Point is anything with a latitude and longitude in degrees.
type Point interface {
	Lat() float64
	Lng() float64
}

// DistanceKm returns the great-circle distance in kilometers between
// (lat1, lng1) and (lat2, lng2), all given in degrees.
//
// The result is non-negative and symmetric in its two endpoints.
// Identical points yield exactly 0.
func DistanceKm(lat1, lng1, lat2, lng2 float64) float64 {
	// acos near 1 is ill-conditioned; rounding would turn 0 into ~1e-4 km.
	if lat1 == lat2 && lng1 == lng2 {
		return 0
	}

	a1 := lat1 * degToRad
	a2 := lng1 * degToRad
	b1 := lat2 * degToRad
	b2 := lng2 * degToRad

	// cos(c) = sin φ1 sin φ2 + cos φ1 cos φ2 cos(λ2-λ1), expanded on both longitudes.
	t1 := math.Cos(a1) * math.Cos(a2) * math.Cos(b1) * math.Cos(b2)
	t2 := math.Cos(a1) * math.Sin(a2) * math.Cos(b1) * math.Sin(b2)
	t3 := math.Sin(a1) * math.Sin(b1)

	return EarthRadiusKm * math.Acos(clamp(t1+t2+t3))
}

// Between returns DistanceKm for two Points.
func Between(p, q Point) float64 {
	return DistanceKm(p.Lat(), p.Lng(), q.Lat(), q.Lng())
}

// clamp keeps rounding noise out of Acos's domain.
func clamp(x float64) float64 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return x
}
