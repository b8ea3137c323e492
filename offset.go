package chinacoord

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// inChina reports whether the point lies in the bounding box the geofence
// uses. The box is inclusive on every side and contains no NaN.
func (c *Converter[T]) inChina(p Coordinate[T]) bool {
	b, k := c.b, &c.k
	if b.IsNaN(p.Lat) || b.IsNaN(p.Lng) {
		return false
	}
	return b.Cmp(p.Lat, k.minLat) >= 0 &&
		b.Cmp(p.Lat, k.maxLat) <= 0 &&
		b.Cmp(p.Lng, k.minLng) >= 0 &&
		b.Cmp(p.Lng, k.maxLng) <= 0
}

// bypassed reports whether the geofence leaves p uncorrected.
func (c *Converter[T]) bypassed(p Coordinate[T], direction string) bool {
	if !c.borderDetection || c.inChina(p) {
		return false
	}
	if ce := c.logger.Check(zapcore.DebugLevel, "outside China, offset not applied"); ce != nil {
		ce.Write(
			zap.String("direction", direction),
			zap.Float64("lat", c.b.Float64(p.Lat)),
			zap.Float64("lng", c.b.Float64(p.Lng)),
		)
	}
	return true
}

// gcjOffset returns the GCJ02 correction in degrees at p. WGS84ToGCJ02 adds
// it; GCJ02ToWGS84 subtracts the correction evaluated at its own input, so
// the pair is only approximately inverse.
func (c *Converter[T]) gcjOffset(p Coordinate[T]) (dLat, dLng T) {
	b, k := c.b, &c.k

	n := b.Sub(p.Lat, k.centerLat)
	e := b.Sub(p.Lng, k.centerLng)

	nPi := b.Mul(n, k.pi)
	ePi := b.Mul(e, k.pi)
	ne := b.Mul(n, e)
	sqrtE := b.Sqrt(b.Abs(e))
	common := b.Mul(k.twenty, b.Add(b.Sin(b.Mul(ePi, k.six)), b.Sin(b.Mul(ePi, k.two))))

	latRad := b.Mul(p.Lat, k.pi180)
	sinLat := b.Sin(latRad)
	w := b.Sub(k.one, b.Mul(k.offset, b.Pow(sinLat, k.two)))
	radius := b.Quo(k.axis, b.Sqrt(w))

	// latitude series
	s := b.Add(common, b.Mul(k.twenty, b.Sin(nPi)))
	s = b.Add(s, b.Mul(k.forty, b.Sin(b.Quo(nPi, k.three))))
	s = b.Add(s, b.Mul(k.oneSixty, b.Sin(b.Quo(nPi, k.twelve))))
	s = b.Add(s, b.Mul(k.threeTwenty, b.Sin(b.Quo(nPi, k.thirty))))
	s = b.Quo(s, k.oneAndHalf)
	s = b.Add(s, b.Mul(n, k.three))
	s = b.Add(s, b.Mul(e, k.two))
	s = b.Add(s, b.Quo(ne, k.ten))
	s = b.Add(s, b.Quo(b.Add(b.Pow(n, k.two), sqrtE), k.five))
	s = b.Sub(s, k.hundred)
	dLat = b.Quo(b.Mul(b.Quo(b.Quo(s, radius), k.oneMinusOffset), w), k.pi180)

	// longitude series
	s = b.Add(common, b.Mul(k.twenty, b.Sin(ePi)))
	s = b.Add(s, b.Mul(k.forty, b.Sin(b.Quo(ePi, k.three))))
	s = b.Add(s, b.Mul(k.oneFifty, b.Sin(b.Quo(ePi, k.twelve))))
	s = b.Add(s, b.Mul(k.threeHundred, b.Sin(b.Quo(ePi, k.thirty))))
	s = b.Quo(s, k.oneAndHalf)
	s = b.Add(s, b.Mul(n, k.two))
	s = b.Add(s, e)
	s = b.Add(s, b.Quo(b.Add(b.Add(b.Pow(e, k.two), ne), sqrtE), k.ten))
	s = b.Add(s, k.threeHundred)
	dLng = b.Quo(b.Quo(b.Quo(s, radius), b.Cos(latRad)), k.pi180)
	return dLat, dLng
}

// WGS84ToGCJ02 applies the GCJ02 offset to a WGS84 coordinate.
func (c *Converter[T]) WGS84ToGCJ02(p Coordinate[T]) Coordinate[T] {
	if c.bypassed(p, "WGS84->GCJ02") {
		return p
	}
	dLat, dLng := c.gcjOffset(p)
	return Coordinate[T]{Lat: c.b.Add(p.Lat, dLat), Lng: c.b.Add(p.Lng, dLng)}
}

// GCJ02ToWGS84 removes the GCJ02 offset. It is a single step approximation:
// the offset is evaluated at the GCJ02 point instead of the unknown WGS84
// one, leaving an error of up to about 1e-4 degrees.
func (c *Converter[T]) GCJ02ToWGS84(p Coordinate[T]) Coordinate[T] {
	if c.bypassed(p, "GCJ02->WGS84") {
		return p
	}
	dLat, dLng := c.gcjOffset(p)
	return Coordinate[T]{Lat: c.b.Sub(p.Lat, dLat), Lng: c.b.Sub(p.Lng, dLng)}
}
