package chinacoord

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDatum(t *testing.T) {
	tests := []struct {
		in   string
		want Datum
	}{
		{"WGS84", WGS84},
		{" gps ", WGS84},
		{"wgs-84", WGS84},
		{"GCJ02", GCJ02},
		{"Mars", GCJ02},
		{"bd09", BD09},
		{"BD09LL", BD09},
		{"bd09mc", BD09MC},
	}
	for _, tt := range tests {
		d, err := ParseDatum(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, d, tt.in)
	}

	_, err := ParseDatum("utm")
	assert.True(t, errors.Is(err, ErrUnsupportedDatum))
	assert.Contains(t, err.Error(), `"utm"`)
}

func TestDatumString(t *testing.T) {
	for d, name := range datumNames {
		assert.Equal(t, name, d.String())
		assert.True(t, d.Valid())
		parsed, err := ParseDatum(name)
		require.NoError(t, err)
		assert.Equal(t, d, parsed)
	}
	assert.Equal(t, "Datum(7)", Datum(7).String())
	assert.False(t, Datum(0).Valid())

	assert.True(t, BD09MC.IsProjected())
	assert.False(t, BD09.IsProjected())
}
