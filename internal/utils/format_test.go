package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{"zero", 0, "0"},
		{"rounds small values", 12.6, "13"},
		{"just below thousand", 999.4, "999"},
		{"thousand", 1000, "1.00 K"},
		{"thousands", 12346, "12.35 K"},
		{"millions", 2.5e6, "2.50 M"},
		{"billions", 7e9, "7.00 B"},
		{"trillions", 3.21e12, "3.21 T"},
		{"first letter suffix", 1e15, "1.00 aa"},
		{"last suffix", 4e33, "4.00 ag"},
		{"beyond last suffix", 1e37, "10000.00 ag"},
		{"negative", -2500, "-2.50 K"},
		{"infinity", math.Inf(1), "∞"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatAmount(tt.in))
		})
	}
}

func TestFormatRate(t *testing.T) {
	assert.Equal(t, "1/s", FormatRate(1))
}
