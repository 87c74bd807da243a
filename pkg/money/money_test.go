package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in      string
		want    Amount
		wantErr bool
	}{
		{"1", 100, false},
		{"1.0", 100, false},
		{"1.23", 123, false},
		{"1,23", 123, false},
		{"0.01", 1, false},
		{"1.005", 101, false}, // half-up rounding
		{"1.004", 100, false},
		{" 2.50 ", 250, false},
		{"10.00", 1000, false},
		{"-1", 0, true},
		{"+1", 0, true},
		{"0", 0, true},
		{"0.00", 0, true},
		{"abc", 0, true},
		{"1.2.3", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAmount(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAmount)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAmount_String(t *testing.T) {
	assert.Equal(t, "12.34", Amount(1234).String())
	assert.Equal(t, "0.05", Amount(5).String())
	assert.Equal(t, "-3.50", Amount(-350).String())
	assert.Equal(t, "0.00", Amount(0).String())
}

func TestAmount_Float64(t *testing.T) {
	assert.Equal(t, 11.5, Amount(1150).Float64())
}
