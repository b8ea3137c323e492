package chinacoord

import (
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// meanEarthRadius is the IUGG mean radius in meters.
const meanEarthRadius = 6371008.8

// Coordinate is a latitude/longitude pair in degrees. No normalization is
// applied to either field.
type Coordinate[T any] struct {
	Lat T
	Lng T
}

// Point is a BD09MC position in meters.
type Point[T any] struct {
	X T
	Y T
}

// LatLng returns c as an s2.LatLng.
func LatLng(c Coordinate[float64]) s2.LatLng {
	return s2.LatLngFromDegrees(c.Lat, c.Lng)
}

// FromLatLng returns the Coordinate of ll.
func FromLatLng(ll s2.LatLng) Coordinate[float64] {
	return Coordinate[float64]{Lat: ll.Lat.Degrees(), Lng: ll.Lng.Degrees()}
}

// Displacement returns the great circle distance between a and b in meters on
// a spherical Earth, which is accurate enough to size datum offsets.
func Displacement(a, b Coordinate[float64]) float64 {
	var angle s1.Angle = LatLng(a).Distance(LatLng(b))
	return angle.Radians() * meanEarthRadius
}

// ToFloat64Coordinate converts c to float64 for display.
func ToFloat64Coordinate[T any](b Backend[T], c Coordinate[T]) Coordinate[float64] {
	return Coordinate[float64]{Lat: b.Float64(c.Lat), Lng: b.Float64(c.Lng)}
}

// ToFloat64Point converts p to float64 for display.
func ToFloat64Point[T any](b Backend[T], p Point[T]) Point[float64] {
	return Point[float64]{X: b.Float64(p.X), Y: b.Float64(p.Y)}
}
