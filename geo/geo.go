// Package geo provides great-circle math on a spherical-Earth model.
package geo

import "math"

// EARTH_RADIUS_M is the mean Earth radius of the sphere model.
const EARTH_RADIUS_M = 6371000.0

// DistanceMeters returns the haversine distance between two coordinates,
// rounded to the nearest meter. Symmetric, non-negative, zero for
// coincident points.
func DistanceMeters(lat1, lng1, lat2, lng2 float64) float64 {
	phi1 := radians(lat1)
	phi2 := radians(lat2)
	dPhi := radians(lat2 - lat1)
	dLambda := radians(lng2 - lng1)

	sinPhi := math.Sin(dPhi / 2)
	sinLambda := math.Sin(dLambda / 2)
	a := sinPhi*sinPhi + math.Cos(phi1)*math.Cos(phi2)*sinLambda*sinLambda
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return math.Round(EARTH_RADIUS_M * c)
}

// Displace returns the coordinate reached by traveling distanceM meters
// from (lat, lng) along the given bearing (degrees clockwise from north).
// Inverse of DistanceMeters within floating-point tolerance.
func Displace(lat, lng, distanceM, bearingDeg float64) (float64, float64) {
	phi1 := radians(lat)
	lambda1 := radians(lng)
	theta := radians(bearingDeg)
	delta := distanceM / EARTH_RADIUS_M

	sinPhi2 := math.Sin(phi1)*math.Cos(delta) + math.Cos(phi1)*math.Sin(delta)*math.Cos(theta)
	phi2 := math.Asin(sinPhi2)
	lambda2 := lambda1 + math.Atan2(
		math.Sin(theta)*math.Sin(delta)*math.Cos(phi1),
		math.Cos(delta)-math.Sin(phi1)*sinPhi2,
	)

	// normalize longitude to [-180, 180)
	lng2 := math.Mod(degrees(lambda2)+540, 360) - 180
	return degrees(phi2), lng2
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
