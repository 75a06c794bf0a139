package domain

import "math"

// Earth radius used by the spherical distance model.
const earthRadiusKm = 6371.0

// Immutable geographic coordinates (latitude, longitude).
type Coordinate struct {
	Lat float64 `json:"lat" bson:"lat"`
	Lng float64 `json:"lng" bson:"lng"`
}

// Valid reports whether the coordinate lies inside representable
// lat/lng ranges and both components are finite numbers.
func (c Coordinate) Valid() bool {
	if math.IsNaN(c.Lat) || math.IsNaN(c.Lng) || math.IsInf(c.Lat, 0) || math.IsInf(c.Lng, 0) {
		return false
	}
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}

// HaversineKm returns the great-circle distance between a and b in
// kilometers on a spherical Earth model.
//
// The function is symmetric and returns exactly zero for identical
// inputs. It performs no range validation: out-of-range coordinates
// yield degenerate but finite output. Validating ranges is the
// ingress adapter's job, not this function's.
func HaversineKm(a, b Coordinate) float64 {
	dLat := radians(b.Lat - a.Lat)
	dLng := radians(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(a.Lat))*math.Cos(radians(b.Lat))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }
