package chinacoord

// GCJ02ToBD09 converts GCJ02 to BD09 by perturbing the point's polar radius
// and angle and shifting the result.
func (c *Converter[T]) GCJ02ToBD09(p Coordinate[T]) Coordinate[T] {
	b, k := c.b, &c.k
	r := b.Add(
		b.Sqrt(b.Add(b.Pow(p.Lat, k.two), b.Pow(p.Lng, k.two))),
		b.Mul(k.radiusWobble, b.Sin(b.Mul(p.Lat, k.xPi))))
	theta := b.Add(
		b.Atan2(p.Lat, p.Lng),
		b.Mul(k.angleWobble, b.Cos(b.Mul(p.Lng, k.xPi))))
	return Coordinate[T]{
		Lat: b.Add(b.Mul(r, b.Sin(theta)), k.bdLatShift),
		Lng: b.Add(b.Mul(r, b.Cos(theta)), k.bdLngShift),
	}
}

// BD09ToGCJ02 undoes the shift first and then applies the perturbations
// with reversed sign.
func (c *Converter[T]) BD09ToGCJ02(p Coordinate[T]) Coordinate[T] {
	b, k := c.b, &c.k
	lat := b.Sub(p.Lat, k.bdLatShift)
	lng := b.Sub(p.Lng, k.bdLngShift)
	r := b.Sub(
		b.Sqrt(b.Add(b.Pow(lat, k.two), b.Pow(lng, k.two))),
		b.Mul(k.radiusWobble, b.Sin(b.Mul(lat, k.xPi))))
	theta := b.Sub(
		b.Atan2(lat, lng),
		b.Mul(k.angleWobble, b.Cos(b.Mul(lng, k.xPi))))
	return Coordinate[T]{
		Lat: b.Mul(r, b.Sin(theta)),
		Lng: b.Mul(r, b.Cos(theta)),
	}
}
