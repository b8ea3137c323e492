package chinacoord

import "errors"

// band is a bandSpec parsed into a backend.
type band[T any] struct {
	threshold T
	catchAll  bool
	n         [10]T
}

// bandTable is ordered by descending threshold and ends with a catch-all.
type bandTable[T any] []band[T]

func compileBands[T any](l *literals[T], specs []bandSpec) (bandTable[T], error) {
	if len(specs) == 0 || specs[len(specs)-1].threshold != "" {
		return nil, errors.New("band table must end with a catch-all band")
	}
	t := make(bandTable[T], len(specs))
	for i, s := range specs {
		if s.threshold == "" {
			t[i].catchAll = true
		} else {
			t[i].threshold = l.parse(s.threshold)
		}
		for j, c := range s.coeffs {
			t[i].n[j] = l.parse(c)
		}
	}
	return t, l.err
}

// lookup returns the first band whose threshold is <= v. NaN falls through
// to the catch-all.
func (t bandTable[T]) lookup(b Backend[T], v T) *band[T] {
	nan := b.IsNaN(v)
	for i := range t {
		if t[i].catchAll || !nan && b.Cmp(v, t[i].threshold) >= 0 {
			return &t[i]
		}
	}
	return &t[len(t)-1]
}

// linear returns n0 + n1·v.
func (bd *band[T]) linear(b Backend[T], v T) T {
	return b.Add(bd.n[0], b.Mul(bd.n[1], v))
}

// polynomial evaluates the degree 6 polynomial in t = v/n9. The evaluation
// order is part of the result: the running power is built by repeated
// multiplication and the last two terms share it.
func (bd *band[T]) polynomial(b Backend[T], v, two T) T {
	n := &bd.n
	t := b.Quo(v, n[9])
	p := b.Pow(t, two)

	y := b.Add(b.Add(n[2], b.Mul(n[3], t)), b.Mul(n[4], p))
	p = b.Mul(p, t)
	y = b.Add(y, b.Mul(n[5], p))
	p = b.Mul(p, t)
	y = b.Add(y, b.Mul(n[6], p))
	p = b.Mul(p, t)
	return b.Add(y, b.Mul(b.Add(n[7], b.Mul(n[8], t)), p))
}

// wrap folds v into [-half, half] by whole periods. Values already in range,
// the bounds included, are returned unchanged.
func wrap[T any](b Backend[T], v, half, period T) T {
	if b.Cmp(v, half) > 0 {
		return b.Sub(v, b.Mul(period, b.Floor(b.Quo(b.Add(v, half), period))))
	}
	if b.Cmp(v, b.Neg(half)) < 0 {
		return b.Sub(v, b.Mul(period, b.Ceil(b.Quo(b.Sub(v, half), period))))
	}
	return v
}

// clampY limits a BD09MC northing to the range covered by the tables.
func (c *Converter[T]) clampY(y T) T {
	b := c.b
	if b.Cmp(y, c.k.maxY) > 0 {
		return c.k.maxY
	}
	if b.Cmp(y, c.k.minY) < 0 {
		return c.k.minY
	}
	return y
}

// BD09ToBD09MC projects a BD09 coordinate into BD09MC meters.
func (c *Converter[T]) BD09ToBD09MC(p Coordinate[T]) Point[T] {
	b := c.b
	lng := wrap(b, p.Lng, c.k.halfTurn, c.k.fullTurn)
	absLat := b.Abs(p.Lat)
	bd := c.toMC.lookup(b, absLat)

	x := bd.linear(b, b.Abs(lng))
	if b.Sign(lng) < 0 {
		x = b.Neg(x)
	}

	y := bd.polynomial(b, absLat, c.k.two)
	if b.Sign(p.Lat) < 0 {
		y = b.Neg(y)
	}
	return Point[T]{X: x, Y: c.clampY(y)}
}

// BD09MCToBD09 is the inverse projection of BD09ToBD09MC.
func (c *Converter[T]) BD09MCToBD09(p Point[T]) Coordinate[T] {
	b := c.b
	x := wrap(b, p.X, c.k.halfEquator, c.k.equator)
	y := c.clampY(p.Y)
	absY := b.Abs(y)
	bd := c.fromMC.lookup(b, absY)

	lat := bd.polynomial(b, absY, c.k.two)
	if b.Sign(y) < 0 {
		lat = b.Neg(lat)
	}

	lng := bd.linear(b, b.Abs(x))
	if b.Sign(x) < 0 {
		lng = b.Neg(lng)
	}
	return Coordinate[T]{Lat: lat, Lng: lng}
}
