package chinacoord_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/marsgeo/chinacoord"
)

var london = chinacoord.Coordinate[float64]{Lat: 51.5074, Lng: -0.1278}

func TestOffsetAppliedEverywhereByDefault(t *testing.T) {
	conv := chinacoord.Default
	assert.False(t, conv.BorderDetection())

	got := conv.WGS84ToGCJ02(london)
	assertCoordinate(t, chinacoord.Coordinate[float64]{Lat: 51.50472595478352, Lng: -0.10932835467395467}, got, degreeEpsilon)
}

func TestBorderDetection(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	conv, err := chinacoord.NewFloat64Converter(
		chinacoord.WithBorderDetection(true),
		chinacoord.WithLogger(zap.New(core)),
	)
	require.NoError(t, err)
	assert.True(t, conv.BorderDetection())

	assert.Equal(t, london, conv.WGS84ToGCJ02(london))
	assert.Equal(t, london, conv.GCJ02ToWGS84(london))
	require.Equal(t, 2, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.DebugLevel, entry.Level)
	assert.Equal(t, "WGS84->GCJ02", entry.ContextMap()["direction"])

	// inside the box, and on its corners, the offset still applies
	assert.Equal(t, chinacoord.Default.WGS84ToGCJ02(beijing), conv.WGS84ToGCJ02(beijing))
	for _, c := range []chinacoord.Coordinate[float64]{
		{Lat: 17.95752, Lng: 73.55},
		{Lat: 53.56082, Lng: 134.75},
	} {
		assert.NotEqual(t, c, conv.WGS84ToGCJ02(c))
	}
	assert.Equal(t, 2, logs.Len())

	// BD09 has no geofence of its own
	assert.NotEqual(t, london, conv.GCJ02ToBD09(london))
}

func TestBorderDetectionNaN(t *testing.T) {
	conv, err := chinacoord.NewFloat64Converter(chinacoord.WithBorderDetection(true))
	require.NoError(t, err)
	got := conv.WGS84ToGCJ02(chinacoord.Coordinate[float64]{Lat: math.NaN(), Lng: 120})
	assert.True(t, math.IsNaN(got.Lat))
	assert.Equal(t, 120.0, got.Lng)
	got = conv.GCJ02ToWGS84(chinacoord.Coordinate[float64]{Lat: 30, Lng: math.NaN()})
	assert.Equal(t, 30.0, got.Lat)
	assert.True(t, math.IsNaN(got.Lng))

	dec, err := chinacoord.NewDecimalConverter(32, chinacoord.WithBorderDetection(true))
	require.NoError(t, err)
	in, err := dec.ParseCoordinate("NaN", "120")
	require.NoError(t, err)
	out := chinacoord.ToFloat64Coordinate(dec.Backend(), dec.WGS84ToGCJ02(in))
	assert.True(t, math.IsNaN(out.Lat))
	assert.Equal(t, 120.0, out.Lng)

	// without the geofence the offset is computed and NaN spreads
	got = chinacoord.Default.WGS84ToGCJ02(chinacoord.Coordinate[float64]{Lat: math.NaN(), Lng: 120})
	assert.True(t, math.IsNaN(got.Lng))
}

func TestOffsetMagnitude(t *testing.T) {
	d := chinacoord.Displacement(beijing, chinacoord.Default.WGS84ToGCJ02(beijing))
	assert.Greater(t, d, 100.0)
	assert.Less(t, d, 1000.0)
}

// GCJ02ToWGS84 evaluates the offset at its own input, so the round trip is
// only approximate.
func TestOffsetRoundTrip(t *testing.T) {
	conv := chinacoord.Default
	for lat := 18.0; lat <= 53; lat += 1.5 {
		for lng := 74.0; lng <= 134; lng += 1.5 {
			in := chinacoord.Coordinate[float64]{Lat: lat, Lng: lng}
			out := conv.GCJ02ToWGS84(conv.WGS84ToGCJ02(in))
			require.InDelta(t, lat, out.Lat, 1e-4, "lat %v lng %v", lat, lng)
			require.InDelta(t, lng, out.Lng, 1e-4, "lat %v lng %v", lat, lng)
		}
	}
}

func TestPolarRoundTrip(t *testing.T) {
	conv := chinacoord.Default
	for lat := 18.0; lat <= 53; lat += 1.5 {
		for lng := 74.0; lng <= 134; lng += 1.5 {
			in := chinacoord.Coordinate[float64]{Lat: lat, Lng: lng}
			out := conv.BD09ToGCJ02(conv.GCJ02ToBD09(in))
			require.InDelta(t, lat, out.Lat, 1e-5, "lat %v lng %v", lat, lng)
			require.InDelta(t, lng, out.Lng, 1e-5, "lat %v lng %v", lat, lng)
		}
	}
}
