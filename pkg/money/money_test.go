package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "$0.00"},
		{"200", "$200.00"},
		{"1234.5", "$1,234.50"},
		{"1000000", "$1,000,000.00"},
		{"-12.345", "-$12.35"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(decimal.RequireFromString(tt.in)))
		})
	}
}

func TestQuantity(t *testing.T) {
	assert.Equal(t, "2", Quantity(decimal.RequireFromString("2.00")))
	assert.Equal(t, "1.5", Quantity(decimal.RequireFromString("1.50")))
}
