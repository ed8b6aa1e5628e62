package generator

import "math"

const (
	earthRadiusMiles         = 3959
	earthRadiusNauticalMiles = 3440

	// Conversion used when a route stores its distance in nautical
	// miles but the empty-legs pricing path works in statute miles.
	statuteMilesPerNauticalMile = 1.15078
)

// MilesBetween returns the great-circle distance between two points in
// statute miles.
func MilesBetween(lat1, lon1, lat2, lon2 float64) float64 {
	return haversine(lat1, lon1, lat2, lon2, earthRadiusMiles)
}

// NauticalMilesBetween returns the great-circle distance between two
// points in nautical miles.
func NauticalMilesBetween(lat1, lon1, lat2, lon2 float64) float64 {
	return haversine(lat1, lon1, lat2, lon2, earthRadiusNauticalMiles)
}

func haversine(lat1, lon1, lat2, lon2, radius float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return radius * c
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
