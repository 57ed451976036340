// Package geo provides great-circle distance math shared by the event and
// venue aggregators.
package geo

import "math"

// earthRadiusMiles is the mean Earth radius in statute miles.
const earthRadiusMiles = 3959.0

// DistanceMiles returns the haversine distance between two coordinate pairs
// in miles, rounded to one decimal place.
func DistanceMiles(lat1, lon1, lat2, lon2 float64) float64 {
	latDistance := toRadians(lat2 - lat1)
	lonDistance := toRadians(lon2 - lon1)

	a := math.Sin(latDistance/2)*math.Sin(latDistance/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(lonDistance/2)*math.Sin(lonDistance/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return math.Round(earthRadiusMiles*c*10) / 10
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
