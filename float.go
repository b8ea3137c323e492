package chinacoord

import (
	"math"
	"strconv"
)

// Float64Backend is the native double precision Backend.
type Float64Backend struct{}

var _ Backend[float64] = Float64Backend{}

func (Float64Backend) Parse(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &ParseError{Literal: s, Err: err}
	}
	return f, nil
}

func (Float64Backend) Int(n int64) float64 { return float64(n) }
func (Float64Backend) Pi() float64 { return math.Pi }

// The explicit float64 conversions keep the compiler from fusing a
// multiply and a following add into one FMA instruction, which would round
// differently from the decimal backend's operation sequence.

func (Float64Backend) Add(x, y float64) float64 { return float64(x + y) }
func (Float64Backend) Sub(x, y float64) float64 { return float64(x - y) }
func (Float64Backend) Mul(x, y float64) float64 { return float64(x * y) }
func (Float64Backend) Quo(x, y float64) float64 { return float64(x / y) }

func (Float64Backend) Neg(x float64) float64 { return -x }
func (Float64Backend) Abs(x float64) float64 { return math.Abs(x) }
func (Float64Backend) Sqrt(x float64) float64 { return math.Sqrt(x) }
func (Float64Backend) Sin(x float64) float64 { return math.Sin(x) }
func (Float64Backend) Cos(x float64) float64 { return math.Cos(x) }
func (Float64Backend) Atan2(y, x float64) float64 { return math.Atan2(y, x) }
func (Float64Backend) Pow(x, y float64) float64 { return math.Pow(x, y) }
func (Float64Backend) Floor(x float64) float64 { return math.Floor(x) }
func (Float64Backend) Ceil(x float64) float64 { return math.Ceil(x) }
func (Float64Backend) IsNaN(x float64) bool { return math.IsNaN(x) }
func (Float64Backend) Float64(x float64) float64 { return x }
func (Float64Backend) String(x float64) string { return strconv.FormatFloat(x, 'g', -1, 64) }

func (Float64Backend) Cmp(x, y float64) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

func (Float64Backend) Sign(x float64) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}
