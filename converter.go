package chinacoord

import (
	"errors"
	"fmt"

	"github.com/cockroachdb/apd/v3"
	"go.uber.org/zap"
)

// constants holds every literal the formulas use, parsed once into the
// converter's backend.
type constants[T any] struct {
	one, two, three, five, six, ten, twelve, twenty, thirty, forty, hundred T
	oneAndHalf, oneFifty, oneSixty, threeHundred, threeTwenty             T

	pi, pi180, xPi T

	// Krasovsky 1940 semi-major axis and the eccentricity squared used by
	// the GCJ02 offset
	axis, offset, oneMinusOffset T
	centerLat, centerLng         T

	// geofence
	minLat, maxLat, minLng, maxLng T

	// GCJ02 <-> BD09
	radiusWobble, angleWobble T
	bdLatShift, bdLngShift    T

	// BD09 <-> BD09MC
	halfTurn, fullTurn   T
	halfEquator, equator T
	minY, maxY           T
}

func newConstants[T any](l *literals[T]) constants[T] {
	b := l.b
	k := constants[T]{
		one:          b.Int(1),
		two:          b.Int(2),
		three:        b.Int(3),
		five:         b.Int(5),
		six:          b.Int(6),
		ten:          b.Int(10),
		twelve:       b.Int(12),
		twenty:       b.Int(20),
		thirty:       b.Int(30),
		forty:        b.Int(40),
		hundred:      b.Int(100),
		oneAndHalf:   l.parse("1.5"),
		oneFifty:     b.Int(150),
		oneSixty:     b.Int(160),
		threeHundred: b.Int(300),
		threeTwenty:  b.Int(320),

		pi: b.Pi(),

		axis:      b.Int(6378245),
		offset:    l.parse("0.006693421622965943"),
		centerLat: b.Int(35),
		centerLng: b.Int(105),

		minLat: l.parse("17.95752"),
		maxLat: l.parse("53.56082"),
		minLng: l.parse("73.55"),
		maxLng: l.parse("134.75"),

		radiusWobble: l.parse("0.00002"),
		angleWobble:  l.parse("0.000003"),
		bdLatShift:   l.parse("0.006"),
		bdLngShift:   l.parse("0.0065"),

		halfTurn:    b.Int(180),
		fullTurn:    b.Int(360),
		halfEquator: l.parse("20037726.372307256"),
		equator:     l.parse("40075452.744614512"),
		minY:        b.Int(-16022031),
		maxY:        b.Int(19429903),
	}
	k.pi180 = b.Quo(k.pi, k.halfTurn)
	k.xPi = b.Mul(k.pi180, b.Int(3000))
	k.oneMinusOffset = b.Sub(k.one, k.offset)
	return k
}

// Converter converts coordinates between WGS84, GCJ02, BD09 and BD09MC using
// the arithmetic of its Backend. A Converter is immutable and safe for
// concurrent use.
type Converter[T any] struct {
	b      Backend[T]
	k      constants[T]
	toMC   bandTable[T]
	fromMC bandTable[T]

	borderDetection bool
	logger          *zap.Logger
}

type settings struct {
	borderDetection bool
	logger          *zap.Logger
}

// Option configures a Converter.
type Option func(*settings)

// WithBorderDetection makes WGS84 <-> GCJ02 return points outside the China
// bounding box unchanged. It is off by default, in which case the offset is
// applied everywhere.
func WithBorderDetection(enabled bool) Option {
	return func(s *settings) { s.borderDetection = enabled }
}

// WithLogger sets the logger used for debug output. The default discards
// everything.
func WithLogger(logger *zap.Logger) Option {
	return func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewConverter constructs a Converter on top of b.
func NewConverter[T any](b Backend[T], opts ...Option) (*Converter[T], error) {
	if b == nil {
		return nil, errors.New("missing backend")
	}
	s := settings{logger: zap.NewNop()}
	for _, o := range opts {
		o(&s)
	}

	l := &literals[T]{b: b}
	c := &Converter[T]{
		b:               b,
		k:               newConstants(l),
		borderDetection: s.borderDetection,
		logger:          s.logger,
	}
	if l.err != nil {
		return nil, fmt.Errorf("error parsing constants: %w", l.err)
	}
	var err error
	if c.toMC, err = compileBands(l, bd09ToMCBands[:]); err != nil {
		return nil, fmt.Errorf("error parsing BD09 -> BD09MC table: %w", err)
	}
	if c.fromMC, err = compileBands(l, mcToBD09Bands[:]); err != nil {
		return nil, fmt.Errorf("error parsing BD09MC -> BD09 table: %w", err)
	}
	return c, nil
}

// NewFloat64Converter constructs a Converter using float64 arithmetic.
func NewFloat64Converter(opts ...Option) (*Converter[float64], error) {
	return NewConverter[float64](Float64Backend{}, opts...)
}

// NewDecimalConverter constructs a Converter using decimal arithmetic with
// precision significant digits.
func NewDecimalConverter(precision uint32, opts ...Option) (*Converter[*apd.Decimal], error) {
	b, err := NewDecimalBackend(precision)
	if err != nil {
		return nil, err
	}
	return NewConverter[*apd.Decimal](b, opts...)
}

// Backend returns the converter's arithmetic.
func (c *Converter[T]) Backend() Backend[T] { return c.b }

// BorderDetection reports whether the geofence is enabled.
func (c *Converter[T]) BorderDetection() bool { return c.borderDetection }

// ParseCoordinate builds a Coordinate from decimal text, so that decimal
// backends see the literal rather than its float64 approximation.
func (c *Converter[T]) ParseCoordinate(lat, lng string) (Coordinate[T], error) {
	la, err := c.b.Parse(lat)
	if err != nil {
		return Coordinate[T]{}, err
	}
	ln, err := c.b.Parse(lng)
	if err != nil {
		return Coordinate[T]{}, err
	}
	return Coordinate[T]{Lat: la, Lng: ln}, nil
}

// ParsePoint builds a BD09MC Point from decimal text.
func (c *Converter[T]) ParsePoint(x, y string) (Point[T], error) {
	px, err := c.b.Parse(x)
	if err != nil {
		return Point[T]{}, err
	}
	py, err := c.b.Parse(y)
	if err != nil {
		return Point[T]{}, err
	}
	return Point[T]{X: px, Y: py}, nil
}
