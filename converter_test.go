package chinacoord_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marsgeo/chinacoord"
)

const (
	degreeEpsilon = 1e-9
	meterEpsilon  = 1e-6
)

// Tiananmen, used as WGS84/GCJ02/BD09 input, and a BD09MC point next to it.
var (
	beijing   = chinacoord.Coordinate[float64]{Lat: 39.908823, Lng: 116.39747}
	beijingMC = chinacoord.Point[float64]{X: 12958160.97, Y: 4825923.77}
)

func assertCoordinate(t *testing.T, want, got chinacoord.Coordinate[float64], eps float64) {
	t.Helper()
	assert.InDelta(t, want.Lat, got.Lat, eps, "latitude")
	assert.InDelta(t, want.Lng, got.Lng, eps, "longitude")
}

func assertPoint(t *testing.T, want, got chinacoord.Point[float64], eps float64) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, eps, "X")
	assert.InDelta(t, want.Y, got.Y, eps, "Y")
}

func TestGeographicDirections(t *testing.T) {
	conv := chinacoord.Default
	tests := []struct {
		name string
		fn   func(chinacoord.Coordinate[float64]) chinacoord.Coordinate[float64]
		want chinacoord.Coordinate[float64]
	}{
		{"WGS84ToGCJ02", conv.WGS84ToGCJ02, chinacoord.Coordinate[float64]{Lat: 39.91022649807321, Lng: 116.4037135824225}},
		{"GCJ02ToWGS84", conv.GCJ02ToWGS84, chinacoord.Coordinate[float64]{Lat: 39.90741950192679, Lng: 116.3912264175775}},
		{"WGS84ToBD09", conv.WGS84ToBD09, chinacoord.Coordinate[float64]{Lat: 39.9165658186413, Lng: 116.41008645442567}},
		{"BD09ToWGS84", conv.BD09ToWGS84, chinacoord.Coordinate[float64]{Lat: 39.90111213897066, Lng: 116.38483893202026}},
		{"GCJ02ToBD09", conv.GCJ02ToBD09, chinacoord.Coordinate[float64]{Lat: 39.915166241609555, Lng: 116.40384288960195}},
		{"BD09ToGCJ02", conv.BD09ToGCJ02, chinacoord.Coordinate[float64]{Lat: 39.90251308913337, Lng: 116.39107936140509}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertCoordinate(t, tt.want, tt.fn(beijing), degreeEpsilon)
		})
	}
}

func TestProjectedDirections(t *testing.T) {
	conv := chinacoord.Default
	to := []struct {
		name string
		fn   func(chinacoord.Coordinate[float64]) chinacoord.Point[float64]
		want chinacoord.Point[float64]
	}{
		{"WGS84ToBD09MC", conv.WGS84ToBD09MC, chinacoord.Point[float64]{X: 12958852.548628181, Y: 4826150.121493745}},
		{"GCJ02ToBD09MC", conv.GCJ02ToBD09MC, chinacoord.Point[float64]{X: 12958157.510608891, Y: 4825947.797749898}},
		{"BD09ToBD09MC", conv.BD09ToBD09MC, chinacoord.Point[float64]{X: 12957448.076064501, Y: 4825030.866960433}},
	}
	for _, tt := range to {
		t.Run(tt.name, func(t *testing.T) {
			assertPoint(t, tt.want, tt.fn(beijing), meterEpsilon)
		})
	}

	from := []struct {
		name string
		fn   func(chinacoord.Point[float64]) chinacoord.Coordinate[float64]
		want chinacoord.Coordinate[float64]
	}{
		{"BD09MCToBD09", conv.BD09MCToBD09, chinacoord.Coordinate[float64]{Lat: 39.91500010447077, Lng: 116.40387396550283}},
		{"BD09MCToGCJ02", conv.BD09MCToGCJ02, chinacoord.Coordinate[float64]{Lat: 39.90865715277378, Lng: 116.39750115107621}},
		{"BD09MCToWGS84", conv.BD09MCToWGS84, chinacoord.Coordinate[float64]{Lat: 39.90725365503397, Lng: 116.3912575836616}},
	}
	for _, tt := range from {
		t.Run(tt.name, func(t *testing.T) {
			assertCoordinate(t, tt.want, tt.fn(beijingMC), degreeEpsilon)
		})
	}
}

// BD09 (31.242273, 121.507782) is a point on the Bund in Shanghai.
func TestShanghaiFixture(t *testing.T) {
	want := chinacoord.Coordinate[float64]{Lat: 31.238651482561135, Lng: 121.49674262811048}

	got := chinacoord.Default.BD09ToWGS84(chinacoord.Coordinate[float64]{Lat: 31.242273, Lng: 121.507782})
	assertCoordinate(t, want, got, 1e-6)

	dec, err := chinacoord.NewDecimalConverter(chinacoord.DefaultPrecision)
	require.NoError(t, err)
	in, err := dec.ParseCoordinate("31.242273", "121.507782")
	require.NoError(t, err)
	out := chinacoord.ToFloat64Coordinate(dec.Backend(), dec.BD09ToWGS84(in))
	assertCoordinate(t, want, out, 1e-6)
}

func TestNewConverterErrors(t *testing.T) {
	_, err := chinacoord.NewConverter[float64](nil)
	assert.Error(t, err)

	_, err = chinacoord.NewDecimalConverter(0)
	assert.Error(t, err)
}

func TestParseCoordinate(t *testing.T) {
	conv := chinacoord.Default
	c, err := conv.ParseCoordinate("39.908823", "116.39747")
	require.NoError(t, err)
	assert.Equal(t, beijing, c)

	_, err = conv.ParseCoordinate("39.9", "east")
	var perr *chinacoord.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "east", perr.Literal)

	_, err = conv.ParsePoint("1x", "2")
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "1x", perr.Literal)
}
