package market

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMoney(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1000000", "$1,000,000.00"},
		{"975265", "$975,265.00"},
		{"247.35", "$247.35"},
		{"0", "$0.00"},
		{"0.005", "$0.01"},
		{"-1234.5", "-$1,234.50"},
		// beyond float64 precision
		{"12345678901234567.89", "$12,345,678,901,234,567.89"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Money(decimal.RequireFromString(tt.in)))
		})
	}
}

func TestSigned(t *testing.T) {
	assert.Equal(t, "+3.42", Signed(decimal.RequireFromString("3.42")))
	assert.Equal(t, "+0.00", Signed(decimal.Zero))
	assert.Equal(t, "-1.40", Signed(decimal.RequireFromString("-1.4")))
}

func TestLedger_Rejection(t *testing.T) {
	l := NewLedger(DefaultStartingCash)

	assert.Equal(t, "", l.Rejection("JPM", 10, jpmPrice))
	assert.Equal(t, "Cannot buy 0 JPM: quantity must be at least 1", l.Rejection("JPM", 0, jpmPrice))
	assert.Equal(t, "Cannot buy -5 JPM: quantity must be at least 1", l.Rejection("JPM", -5, jpmPrice))
	assert.Equal(t, "Cannot buy 5000 JPM: total $1,236,750.00 exceeds available cash $1,000,000.00",
		l.Rejection("JPM", 5000, jpmPrice))
}
