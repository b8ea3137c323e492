package chinacoord

import (
	"errors"
	"fmt"
	"strings"
)

// Datum identifies one of the supported coordinate systems.
type Datum int

const (
	// WGS84 is the GPS datum, latitude and longitude in degrees.
	WGS84 Datum = iota + 1
	// GCJ02 is the offset datum required for public maps in China.
	GCJ02
	// BD09 is Baidu's further offset datum ("bd09ll"), in degrees.
	BD09
	// BD09MC is BD09 projected to planar meters ("bd09mc").
	BD09MC
)

// ErrUnsupportedDatum is returned for datums this package does not know.
var ErrUnsupportedDatum = errors.New("unsupported datum")

var datumNames = map[Datum]string{
	WGS84:  "WGS84",
	GCJ02:  "GCJ02",
	BD09:   "BD09",
	BD09MC: "BD09MC",
}

var datumAliases = map[string]Datum{
	"wgs84":  WGS84,
	"wgs-84": WGS84,
	"gps":    WGS84,
	"gcj02":  GCJ02,
	"gcj-02": GCJ02,
	"mars":   GCJ02,
	"bd09":   BD09,
	"bd-09":  BD09,
	"bd09ll": BD09,
	"bd09mc": BD09MC,
}

func (d Datum) String() string {
	if s, ok := datumNames[d]; ok {
		return s
	}
	return fmt.Sprintf("Datum(%d)", int(d))
}

// Valid reports whether d is one of the declared datums.
func (d Datum) Valid() bool {
	_, ok := datumNames[d]
	return ok
}

// IsProjected reports whether coordinates in d are planar meters rather than
// degrees.
func (d Datum) IsProjected() bool { return d == BD09MC }

// ParseDatum parses a datum name, ignoring case and surrounding space.
func ParseDatum(s string) (Datum, error) {
	if d, ok := datumAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return d, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedDatum, s)
}
