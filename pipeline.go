package chinacoord

import "fmt"

// WGS84ToBD09 converts WGS84 to BD09 through GCJ02.
func (c *Converter[T]) WGS84ToBD09(p Coordinate[T]) Coordinate[T] {
	return c.GCJ02ToBD09(c.WGS84ToGCJ02(p))
}

// BD09ToWGS84 converts BD09 to WGS84 through GCJ02.
func (c *Converter[T]) BD09ToWGS84(p Coordinate[T]) Coordinate[T] {
	return c.GCJ02ToWGS84(c.BD09ToGCJ02(p))
}

// WGS84ToBD09MC converts WGS84 to BD09MC through GCJ02 and BD09.
func (c *Converter[T]) WGS84ToBD09MC(p Coordinate[T]) Point[T] {
	return c.BD09ToBD09MC(c.WGS84ToBD09(p))
}

// BD09MCToWGS84 converts BD09MC to WGS84 through BD09 and GCJ02.
func (c *Converter[T]) BD09MCToWGS84(p Point[T]) Coordinate[T] {
	return c.BD09ToWGS84(c.BD09MCToBD09(p))
}

// GCJ02ToBD09MC converts GCJ02 to BD09MC through BD09.
func (c *Converter[T]) GCJ02ToBD09MC(p Coordinate[T]) Point[T] {
	return c.BD09ToBD09MC(c.GCJ02ToBD09(p))
}

// BD09MCToGCJ02 converts BD09MC to GCJ02 through BD09.
func (c *Converter[T]) BD09MCToGCJ02(p Point[T]) Coordinate[T] {
	return c.BD09ToGCJ02(c.BD09MCToBD09(p))
}

// Convert converts the pair (a, b) from one datum to another. Geographic
// datums take and return (latitude, longitude) in degrees, BD09MC takes and
// returns (X, Y) in meters. Converting a datum to itself returns the input.
func (c *Converter[T]) Convert(from, to Datum, a, b T) (T, T, error) {
	if !from.Valid() {
		return a, b, fmt.Errorf("%w: %d", ErrUnsupportedDatum, int(from))
	}
	if !to.Valid() {
		return a, b, fmt.Errorf("%w: %d", ErrUnsupportedDatum, int(to))
	}
	if from == to {
		return a, b, nil
	}

	if from == BD09MC {
		p := c.fromPoint(to, Point[T]{X: a, Y: b})
		return p.Lat, p.Lng, nil
	}
	ll := Coordinate[T]{Lat: a, Lng: b}
	if to == BD09MC {
		var p Point[T]
		switch from {
		case WGS84:
			p = c.WGS84ToBD09MC(ll)
		case GCJ02:
			p = c.GCJ02ToBD09MC(ll)
		case BD09:
			p = c.BD09ToBD09MC(ll)
		}
		return p.X, p.Y, nil
	}

	switch {
	case from == WGS84 && to == GCJ02:
		ll = c.WGS84ToGCJ02(ll)
	case from == WGS84 && to == BD09:
		ll = c.WGS84ToBD09(ll)
	case from == GCJ02 && to == WGS84:
		ll = c.GCJ02ToWGS84(ll)
	case from == GCJ02 && to == BD09:
		ll = c.GCJ02ToBD09(ll)
	case from == BD09 && to == WGS84:
		ll = c.BD09ToWGS84(ll)
	case from == BD09 && to == GCJ02:
		ll = c.BD09ToGCJ02(ll)
	}
	return ll.Lat, ll.Lng, nil
}

func (c *Converter[T]) fromPoint(to Datum, p Point[T]) Coordinate[T] {
	switch to {
	case WGS84:
		return c.BD09MCToWGS84(p)
	case GCJ02:
		return c.BD09MCToGCJ02(p)
	}
	return c.BD09MCToBD09(p)
}
