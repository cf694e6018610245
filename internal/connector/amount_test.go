package connector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinorUnitConvertor(t *testing.T) {
	c := MinorUnitConvertor{}

	converted, err := c.ToConnector(1999, "USD")
	require.NoError(t, err)
	assert.Equal(t, int64(1999), converted)

	back, err := c.FromConnector(int64(1999), "USD")
	require.NoError(t, err)
	assert.Equal(t, int64(1999), back)
}

func TestStringMinorUnitConvertor(t *testing.T) {
	c := StringMinorUnitConvertor{}

	converted, err := c.ToConnector(1999, "USD")
	require.NoError(t, err)
	assert.Equal(t, "1999", converted)

	back, err := c.FromConnector("1999", "USD")
	require.NoError(t, err)
	assert.Equal(t, int64(1999), back)
}

func TestFloatMajorUnitConvertor(t *testing.T) {
	tests := []struct {
		name       string
		minorUnits int64
		currency   string
		wantFloat  float64
	}{
		{"usd two-decimal", 1999, "USD", 19.99},
		{"jpy zero-decimal", 1999, "JPY", 1999},
	}

	c := FloatMajorUnitConvertor{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			converted, err := c.ToConnector(tt.minorUnits, tt.currency)
			require.NoError(t, err)
			assert.InDelta(t, tt.wantFloat, converted, 0.001)

			back, err := c.FromConnector(converted, tt.currency)
			require.NoError(t, err)
			assert.Equal(t, tt.minorUnits, back)
		})
	}
}

func TestStringMajorUnitConvertor(t *testing.T) {
	c := StringMajorUnitConvertor{}

	converted, err := c.ToConnector(1999, "USD")
	require.NoError(t, err)
	assert.Equal(t, "19.99", converted)

	back, err := c.FromConnector("19.99", "USD")
	require.NoError(t, err)
	assert.Equal(t, int64(1999), back)
}

func TestStringMajorUnitConvertor_ZeroDecimalCurrency(t *testing.T) {
	c := StringMajorUnitConvertor{}

	converted, err := c.ToConnector(5000, "JPY")
	require.NoError(t, err)
	assert.Equal(t, "5000", converted)

	back, err := c.FromConnector("5000", "JPY")
	require.NoError(t, err)
	assert.Equal(t, int64(5000), back)
}

func TestConvertorFor(t *testing.T) {
	assert.IsType(t, FloatMajorUnitConvertor{}, ConvertorFor("generic"))
	assert.IsType(t, MinorUnitConvertor{}, ConvertorFor("mock"))
	assert.IsType(t, MinorUnitConvertor{}, ConvertorFor("unknown_connector"))
}

func TestToInt64_UnsupportedType(t *testing.T) {
	_, err := toInt64(3.14 + 2i)
	assert.Error(t, err)
}
