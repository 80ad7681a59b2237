package renderer

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestFormatPercent(t *testing.T) {
	tests := []struct {
		v        string
		decimals int
		want     string
	}{
		{"5.5", 2, "+5.50%"},
		{"-3.333", 1, "-3.3%"},
		{"0", 2, "+0.00%"},
		{"9.095", 2, "+9.10%"},
		{"-9.095", 2, "-9.10%"},
		{"-0.001", 2, "-0.00%"},
		{"100", 0, "+100%"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatPercent(d(tt.v), tt.decimals), "FormatPercent(%s, %d)", tt.v, tt.decimals)
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		v        string
		decimals int
		want     string
	}{
		{"100.5", 4, "¥+100.5000"},
		{"-12.34567", 4, "¥-12.3457"},
		{"0", 4, "¥+0.0000"},
		{"1234567.8", 2, "¥+1234567.80"},
		{"1", 0, "¥+1"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatAmount(d(tt.v), tt.decimals), "FormatAmount(%s, %d)", tt.v, tt.decimals)
	}
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		v        string
		decimals int
		want     string
	}{
		{"9.999", 4, "¥9.9990"},
		{"11", 4, "¥11.0000"},
		{"0.00005", 4, "¥0.0001"},
		{"-2", 2, "¥-2.00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatPrice(d(tt.v), tt.decimals), "FormatPrice(%s, %d)", tt.v, tt.decimals)
	}
}

func TestFormatter_Huge(t *testing.T) {
	// larger than an int64 of minor units.
	got := FormatPrice(d("12345678901234567890.12345"), 4)
	assert.Equal(t, "¥12345678901234567890.1235", got)
}

func TestNewFormatter(t *testing.T) {
	f, err := NewFormatter("USD")
	require.NoError(t, err)
	assert.Equal(t, "USD", f.Currency())
	assert.Equal(t, "$+1.50", f.Amount(d("1.5"), 2))

	f, err = NewFormatter("EUR")
	require.NoError(t, err)
	assert.Equal(t, "€2.25", f.Price(d("2.25"), 2))

	_, err = NewFormatter("XXXX")
	assert.Error(t, err)
}
