package chinacoord

import "github.com/cockroachdb/apd/v3"

// reductionDigits lets arguments up to 1e24 radians be reduced modulo 2π
// without losing digits of the remainder; larger arguments get a freshly
// computed π.
const reductionDigits = 24

var (
	decOne     = apd.New(1, 0)
	decTwo     = apd.New(2, 0)
	decHalf    = apd.New(5, -1)
	decThree   = apd.New(3, 0)
	decFour    = apd.New(4, 0)
	decAtanMax = apd.New(1, -2)
	decSinMax  = apd.New(1, -2)
)

// adjusted returns the exponent of the most significant digit of d.
func adjusted(d *apd.Decimal) int64 {
	return int64(d.Exponent) + d.NumDigits() - 1
}

// negligible reports whether adding term to sum can no longer change sum at
// precision digits.
func negligible(term, sum *apd.Decimal, precision uint32) bool {
	if term.IsZero() {
		return true
	}
	if sum.IsZero() {
		return false
	}
	return adjusted(sum)-adjusted(term) > int64(precision)
}

// machinPi computes π = 16·atan(1/5) - 4·atan(1/239) at c's precision.
func machinPi(c *apd.Context) *apd.Decimal {
	inv5, inv239 := new(apd.Decimal), new(apd.Decimal)
	c.Quo(inv5, decOne, apd.New(5, 0))
	c.Quo(inv239, decOne, apd.New(239, 0))

	a := atanSeries(c, inv5)
	c.Mul(a, a, apd.New(16, 0))
	s := atanSeries(c, inv239)
	c.Mul(s, s, apd.New(4, 0))

	pi := new(apd.Decimal)
	c.Sub(pi, a, s)
	return pi
}

// atanSeries sums a - a³/3 + a⁵/5 - ... for |a| < 1.
func atanSeries(c *apd.Context, a *apd.Decimal) *apd.Decimal {
	negSq := new(apd.Decimal)
	c.Mul(negSq, a, a)
	c.Neg(negSq, negSq)

	sum := new(apd.Decimal).Set(a)
	power := new(apd.Decimal).Set(a)
	term := new(apd.Decimal)
	for k := int64(3); ; k += 2 {
		c.Mul(power, power, negSq)
		c.Quo(term, power, apd.New(k, 0))
		if negligible(term, sum, c.Precision) {
			return sum
		}
		c.Add(sum, sum, term)
	}
}

// sinSeries sums r - r³/3! + r⁵/5! - ... for small |r|.
func sinSeries(c *apd.Context, r *apd.Decimal) *apd.Decimal {
	negSq := new(apd.Decimal)
	c.Mul(negSq, r, r)
	c.Neg(negSq, negSq)

	sum := new(apd.Decimal).Set(r)
	term := new(apd.Decimal).Set(r)
	for k := int64(2); ; k += 2 {
		c.Mul(term, term, negSq)
		c.Quo(term, term, apd.New(k*(k+1), 0))
		if negligible(term, sum, c.Precision) {
			return sum
		}
		c.Add(sum, sum, term)
	}
}

// reduce returns x - 2πn, n = floor(x/2π + 1/2), rounded to work precision.
// The result lies in [-π, π].
func (b *DecimalBackend) reduce(x *apd.Decimal) *apd.Decimal {
	c, twoPi := b.red, b.twoPiRed
	if extra := adjusted(x); extra > reductionDigits {
		c = newContext(b.work.Precision + uint32(extra) + guardDigits)
		twoPi = new(apd.Decimal)
		c.Mul(twoPi, machinPi(c), decTwo)
	}

	n := new(apd.Decimal)
	c.Quo(n, x, twoPi)
	c.Add(n, n, decHalf)
	c.Floor(n, n)

	r := new(apd.Decimal)
	c.Mul(r, n, twoPi)
	c.Sub(r, x, r)
	b.work.Round(r, r)
	return r
}

func (b *DecimalBackend) sin(x *apd.Decimal) *apd.Decimal {
	return b.sinReduced(b.reduce(x))
}

// cos x = sin(π/2 - r) with r = x reduced to [-π, π].
func (b *DecimalBackend) cos(x *apd.Decimal) *apd.Decimal {
	r := b.reduce(x)
	b.work.Sub(r, b.halfPi, r)
	return b.sinReduced(r)
}

// sinReduced divides r by 3 until it is below decSinMax, sums the series
// and climbs back with sin 3a = 3·sin a - 4·sin³ a.
func (b *DecimalBackend) sinReduced(r *apd.Decimal) *apd.Decimal {
	c := b.work
	a := new(apd.Decimal).Set(r)
	abs := new(apd.Decimal)
	steps := 0
	for c.Abs(abs, a); abs.Cmp(decSinMax) > 0; c.Abs(abs, a) {
		c.Quo(a, a, decThree)
		steps++
	}

	s := sinSeries(c, a)
	cube := new(apd.Decimal)
	for ; steps > 0; steps-- {
		c.Mul(cube, s, s)
		c.Mul(cube, cube, s)
		c.Mul(cube, cube, decFour)
		c.Mul(s, s, decThree)
		c.Sub(s, s, cube)
	}
	return s
}

// atan is the principal arctangent of a non-NaN z at work precision.
func (b *DecimalBackend) atan(z *apd.Decimal) *apd.Decimal {
	c := b.work
	res := new(apd.Decimal)
	if !isFinite(z) {
		res.Set(b.halfPi)
		res.Negative = z.Negative
		return res
	}

	a := new(apd.Decimal)
	c.Abs(a, z)
	invert := a.Cmp(decOne) > 0
	if invert {
		c.Quo(a, decOne, a)
	}

	// atan a = 2·atan(a / (1 + sqrt(1 + a²))), until a is below decAtanMax
	scale := int64(1)
	tmp := new(apd.Decimal)
	for a.Cmp(decAtanMax) > 0 {
		c.Mul(tmp, a, a)
		c.Add(tmp, tmp, decOne)
		c.Sqrt(tmp, tmp)
		c.Add(tmp, tmp, decOne)
		c.Quo(a, a, tmp)
		scale *= 2
	}

	res = atanSeries(c, a)
	c.Mul(res, res, apd.New(scale, 0))
	if invert {
		c.Sub(res, b.halfPi, res)
	}
	if z.Sign() < 0 {
		c.Neg(res, res)
	}
	return res
}

// atan2 follows math.Atan2 for finite arguments and the common infinite
// cases.
func (b *DecimalBackend) atan2(y, x *apd.Decimal) *apd.Decimal {
	c := b.work
	res := new(apd.Decimal)
	switch {
	case !isFinite(x) && !isFinite(y):
		// ±π/4 or ±3π/4
		c.Quo(res, b.halfPi, decTwo)
		if x.Negative {
			c.Mul(res, res, decThree)
		}
		res.Negative = y.Negative
		return res
	case !isFinite(y):
		res.Set(b.halfPi)
		res.Negative = y.Negative
		return res
	case !isFinite(x):
		if x.Negative {
			res.Set(b.pi)
			res.Negative = y.Negative
		}
		return res
	case x.IsZero():
		if y.IsZero() {
			return res
		}
		res.Set(b.halfPi)
		res.Negative = y.Negative
		return res
	}

	q := new(apd.Decimal)
	c.Quo(q, y, x)
	res = b.atan(q)
	if x.Negative {
		if y.Negative {
			c.Sub(res, res, b.pi)
		} else {
			c.Add(res, res, b.pi)
		}
	}
	return res
}
