package chinacoord

import "fmt"

// Backend provides the arithmetic a Converter runs on. Every conversion is
// written once against this interface, so a float64 result and a decimal
// result for the same input come from the same sequence of operations.
//
// Implementations must be safe for concurrent use and must not mutate their
// arguments.
type Backend[T any] interface {
	// Parse converts a decimal literal such as "31.242273" into a T.
	Parse(s string) (T, error)
	// Int returns n as a T.
	Int(n int64) T
	// Pi returns π at the backend's precision.
	Pi() T

	Add(x, y T) T
	Sub(x, y T) T
	Mul(x, y T) T
	Quo(x, y T) T
	Neg(x T) T
	Abs(x T) T
	Sqrt(x T) T
	Sin(x T) T
	Cos(x T) T
	Atan2(y, x T) T
	Pow(x, y T) T
	Floor(x T) T
	Ceil(x T) T

	// Cmp returns -1, 0 or +1 depending on whether x is less than, equal
	// to or greater than y.
	Cmp(x, y T) int
	// Sign returns -1, 0 or +1 depending on the sign of x.
	Sign(x T) int
	// IsNaN reports whether x is not a number. Cmp and Sign give 0 for
	// NaN, so range checks must test it first.
	IsNaN(x T) bool

	Float64(x T) float64
	String(x T) string
}

// ParseError is returned when a numeric literal cannot be parsed by a
// Backend.
type ParseError struct {
	Literal string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("chinacoord: invalid numeric literal %q: %s", e.Literal, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// literals parses compiled-in decimal literals into a backend, keeping the
// first failure.
type literals[T any] struct {
	b   Backend[T]
	err error
}

func (l *literals[T]) parse(s string) T {
	v, err := l.b.Parse(s)
	if err != nil && l.err == nil {
		l.err = err
	}
	return v
}
