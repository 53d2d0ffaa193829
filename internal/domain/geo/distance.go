// Package geo holds the great-circle math shared by the checkpoint queries.
package geo

import (
	"math"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
)

// EarthRadiusMeters is the mean Earth radius of the spherical approximation.
const EarthRadiusMeters = 6371000.0

// DistanceMeters returns the Haversine distance between two coordinates in meters.
// NaN inputs propagate; callers validate ranges first.
func DistanceMeters(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lon1Rad := lon1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	lon2Rad := lon2 * math.Pi / 180

	deltaLat := lat2Rad - lat1Rad
	deltaLon := lon2Rad - lon1Rad

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusMeters * c
}

// IsValidCoordinate rejects NaN, infinities and out-of-range degrees.
func IsValidCoordinate(lat, lon float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lon) ||
		math.IsInf(lat, 0) || math.IsInf(lon, 0) {
		return false
	}

	return lat >= -90 && lat <= 90 &&
		lon >= -180 && lon <= 180
}

// BoundAround returns a lat/lon box that contains every point within radiusMeters
// of the center. It is only a prefilter: corners lie farther than the radius.
func BoundAround(lat, lon, radiusMeters float64) orb.Bound {
	// orb measures with the equatorial radius; scale so the box edges sit at
	// radiusMeters on our sphere.
	scaled := radiusMeters * orb.EarthRadius / EarthRadiusMeters
	bound := orbgeo.NewBoundAroundPoint(orb.Point{lon, lat}, scaled)

	// Clamp to valid ranges; near the poles the box can spill over.
	bound.Min[1] = math.Max(bound.Min[1], -90)
	bound.Max[1] = math.Min(bound.Max[1], 90)
	bound.Min[0] = math.Max(bound.Min[0], -180)
	bound.Max[0] = math.Min(bound.Max[0], 180)

	return bound
}
