// Package geo implements the pure distance computation and admission
// decision used by the completion paths. The same formula runs on the
// client (offline pre-validation) and on the server (authoritative
// check), so rejection messages carry consistent numbers.
package geo

import "math"

const (
	// EarthRadiusMeters средний радиус Земли для haversine
	EarthRadiusMeters = 6371000.0

	// DefaultRadiusMeters радиус геозоны вокруг адреса пациента
	DefaultRadiusMeters = 50.0
)

// Distance returns the great-circle distance in meters between two
// points using the haversine formula
func Distance(lat1, lng1, lat2, lng2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusMeters * c
}

// Admits reports whether a measured distance falls within the geofence
// threshold
func Admits(distanceMeters, thresholdMeters float64) bool {
	return distanceMeters <= thresholdMeters
}
