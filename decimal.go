package chinacoord

import (
	"errors"

	"github.com/cockroachdb/apd/v3"
)

// DefaultPrecision is the number of significant digits used by
// NewDecimalConverter callers that have no better idea.
const DefaultPrecision = 200

// guardDigits are carried by the series evaluations on top of the
// configured precision before the result is rounded back.
const guardDigits = 16

// DecimalBackend is an arbitrary precision Backend over *apd.Decimal. The
// precision is fixed when the backend is built and travels with it in an
// apd.Context; there is no package level precision setting.
type DecimalBackend struct {
	ctx  *apd.Context // configured precision, every result is rounded to it
	work *apd.Context // precision + guardDigits, for series
	red  *apd.Context // work + reductionDigits, for trigonometric argument reduction

	piRed    *apd.Decimal
	twoPiRed *apd.Decimal
	pi       *apd.Decimal // at work precision
	halfPi   *apd.Decimal
	piOut    *apd.Decimal // at configured precision
}

var _ Backend[*apd.Decimal] = (*DecimalBackend)(nil)

// NewDecimalBackend constructs a DecimalBackend that carries precision
// significant decimal digits.
func NewDecimalBackend(precision uint32) (*DecimalBackend, error) {
	if precision == 0 {
		return nil, errors.New("precision must be greater than zero")
	}
	b := &DecimalBackend{
		ctx:  newContext(precision),
		work: newContext(precision + guardDigits),
		red:  newContext(precision + guardDigits + reductionDigits),
	}
	b.piRed = machinPi(b.red)
	b.twoPiRed = op(func(d *apd.Decimal) (apd.Condition, error) {
		return b.red.Mul(d, b.piRed, apd.New(2, 0))
	})
	b.pi = op(func(d *apd.Decimal) (apd.Condition, error) { return b.work.Round(d, b.piRed) })
	b.halfPi = op(func(d *apd.Decimal) (apd.Condition, error) {
		return b.work.Quo(d, b.pi, apd.New(2, 0))
	})
	b.piOut = b.round(b.pi)
	return b, nil
}

// newContext returns a context with all traps disabled: division by zero
// produces an infinity and invalid operations produce NaN instead of errors.
func newContext(precision uint32) *apd.Context {
	c := apd.BaseContext.WithPrecision(precision)
	c.Traps = 0
	return c
}

// Precision returns the number of significant digits of the backend.
func (b *DecimalBackend) Precision() uint32 { return b.ctx.Precision }

func (b *DecimalBackend) Parse(s string) (*apd.Decimal, error) {
	d, _, err := b.ctx.NewFromString(s)
	if err != nil {
		return nil, &ParseError{Literal: s, Err: err}
	}
	return d, nil
}

func (b *DecimalBackend) Int(n int64) *apd.Decimal { return new(apd.Decimal).SetInt64(n) }

func (b *DecimalBackend) Pi() *apd.Decimal { return new(apd.Decimal).Set(b.piOut) }

// op runs f into a fresh decimal. With traps disabled apd reports
// exceptional results through the value itself; a residual error turns the
// result into NaN so the backend stays total.
func op(f func(d *apd.Decimal) (apd.Condition, error)) *apd.Decimal {
	d := new(apd.Decimal)
	if _, err := f(d); err != nil {
		d.Form = apd.NaN
	}
	return d
}

func (b *DecimalBackend) round(x *apd.Decimal) *apd.Decimal {
	return op(func(d *apd.Decimal) (apd.Condition, error) { return b.ctx.Round(d, x) })
}

func (b *DecimalBackend) Add(x, y *apd.Decimal) *apd.Decimal {
	return op(func(d *apd.Decimal) (apd.Condition, error) { return b.ctx.Add(d, x, y) })
}

func (b *DecimalBackend) Sub(x, y *apd.Decimal) *apd.Decimal {
	return op(func(d *apd.Decimal) (apd.Condition, error) { return b.ctx.Sub(d, x, y) })
}

func (b *DecimalBackend) Mul(x, y *apd.Decimal) *apd.Decimal {
	return op(func(d *apd.Decimal) (apd.Condition, error) { return b.ctx.Mul(d, x, y) })
}

func (b *DecimalBackend) Quo(x, y *apd.Decimal) *apd.Decimal {
	return op(func(d *apd.Decimal) (apd.Condition, error) { return b.ctx.Quo(d, x, y) })
}

func (b *DecimalBackend) Neg(x *apd.Decimal) *apd.Decimal {
	return op(func(d *apd.Decimal) (apd.Condition, error) { return b.ctx.Neg(d, x) })
}

func (b *DecimalBackend) Abs(x *apd.Decimal) *apd.Decimal {
	return op(func(d *apd.Decimal) (apd.Condition, error) { return b.ctx.Abs(d, x) })
}

func (b *DecimalBackend) Sqrt(x *apd.Decimal) *apd.Decimal {
	return op(func(d *apd.Decimal) (apd.Condition, error) { return b.ctx.Sqrt(d, x) })
}

func (b *DecimalBackend) Pow(x, y *apd.Decimal) *apd.Decimal {
	return op(func(d *apd.Decimal) (apd.Condition, error) { return b.ctx.Pow(d, x, y) })
}

func (b *DecimalBackend) Floor(x *apd.Decimal) *apd.Decimal {
	return op(func(d *apd.Decimal) (apd.Condition, error) { return b.ctx.Floor(d, x) })
}

func (b *DecimalBackend) Ceil(x *apd.Decimal) *apd.Decimal {
	return op(func(d *apd.Decimal) (apd.Condition, error) { return b.ctx.Ceil(d, x) })
}

func (b *DecimalBackend) Sin(x *apd.Decimal) *apd.Decimal {
	if !isFinite(x) {
		return nan()
	}
	return b.round(b.sin(x))
}

func (b *DecimalBackend) Cos(x *apd.Decimal) *apd.Decimal {
	if !isFinite(x) {
		return nan()
	}
	return b.round(b.cos(x))
}

func (b *DecimalBackend) Atan2(y, x *apd.Decimal) *apd.Decimal {
	if isNaN(x) || isNaN(y) {
		return nan()
	}
	return b.round(b.atan2(y, x))
}

// Cmp orders NaN equal to everything. Callers that must not select on NaN
// check IsNaN first.
func (b *DecimalBackend) Cmp(x, y *apd.Decimal) int {
	if isNaN(x) || isNaN(y) {
		return 0
	}
	return x.Cmp(y)
}

func (b *DecimalBackend) Sign(x *apd.Decimal) int {
	if isNaN(x) {
		return 0
	}
	return x.Sign()
}

func (b *DecimalBackend) IsNaN(x *apd.Decimal) bool { return isNaN(x) }

// Float64 returns the nearest float64. Values outside the float64 range
// become ±Inf or 0.
func (b *DecimalBackend) Float64(x *apd.Decimal) float64 {
	f, _ := x.Float64()
	return f
}

func (b *DecimalBackend) String(x *apd.Decimal) string { return x.String() }

func isNaN(x *apd.Decimal) bool {
	return x.Form == apd.NaN || x.Form == apd.NaNSignaling
}

func isFinite(x *apd.Decimal) bool { return x.Form == apd.Finite }

func nan() *apd.Decimal { return &apd.Decimal{Form: apd.NaN} }
