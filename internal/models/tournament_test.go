package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrize(t *testing.T) {
	d, err := ParsePrize("$10,000")
	require.NoError(t, err)
	assert.True(t, d.Equal(decimal.NewFromInt(10000)))

	d, err = ParsePrize("7500.50")
	require.NoError(t, err)
	assert.Equal(t, "7500.5", d.String())

	_, err = ParsePrize("")
	assert.Error(t, err)

	_, err = ParsePrize("ten dollars")
	assert.Error(t, err)
}

func TestFormatPrize(t *testing.T) {
	cases := map[string]decimal.Decimal{
		"$0":         decimal.Zero,
		"$500":       decimal.NewFromInt(500),
		"$5,000":     decimal.NewFromInt(5000),
		"$10,000":    decimal.NewFromInt(10000),
		"$1,234,567": decimal.NewFromInt(1234567),
		"$7,500.50":  decimal.RequireFromString("7500.5"),
	}
	for want, in := range cases {
		assert.Equal(t, want, FormatPrize(in))
	}
}
