package economy

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func bruteForceCost(have, qty int, base, growth float64) float64 {
	total := 0.0
	for i := 0; i < qty; i++ {
		total += base * math.Pow(growth, float64(have+i))
	}
	return total
}

func TestCost_MatchesBruteForce(t *testing.T) {
	tests := []struct {
		name   string
		have   int
		qty    int
		base   float64
		growth float64
	}{
		{"first monkey", 0, 1, 1, 1.3},
		{"ten monkeys from zero", 0, 10, 1, 1.3},
		{"hundred zebras from 40", 40, 100, 5e4, 1.3},
		{"flat growth", 7, 12, 3, 1},
		{"gorillas from 3", 3, 25, 5e7, 1.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := bruteForceCost(tt.have, tt.qty, tt.base, tt.growth)
			got := Cost(tt.have, tt.qty, tt.base, tt.growth)
			assert.InEpsilon(t, want, got, 1e-9)
		})
	}
}

func TestCost_NonPositiveQuantityIsFree(t *testing.T) {
	assert.Equal(t, 0.0, Cost(5, 0, 1, 1.3))
	assert.Equal(t, 0.0, Cost(5, -3, 1, 1.3))
}

func TestCost_LargeQuantityStaysFinite(t *testing.T) {
	c := Cost(0, 2000, 1, 1.3)
	assert.False(t, math.IsNaN(c))
	assert.Greater(t, c, Cost(0, 1999, 1, 1.3))
}

func TestMaxAffordable_IsMaximal(t *testing.T) {
	budgets := []float64{0, 0.5, 1, 2.3, 3.99, 10, 99.5, 1234.5, 1e6, 1e9, 7.77e15}
	haves := []int{0, 1, 5, 24, 60}

	for _, have := range haves {
		for _, budget := range budgets {
			qty := MaxAffordable(have, 1, 1.3, budget)
			assert.GreaterOrEqual(t, qty, 0)
			assert.LessOrEqual(t, Cost(have, qty, 1, 1.3), budget, "have=%d budget=%v", have, budget)
			assert.Greater(t, Cost(have, qty+1, 1, 1.3), budget, "have=%d budget=%v", have, budget)
		}
	}
}

func TestMaxAffordable_ExactBoundary(t *testing.T) {
	// Budget equal to the exact cost of n units must buy all n
	for n := 1; n <= 60; n++ {
		budget := Cost(3, n, 5e4, 1.3)
		qty := MaxAffordable(3, 5e4, 1.3, budget)
		assert.Equal(t, n, qty, "n=%d", n)
	}
}

func TestMaxAffordable_BelowHeadIsZero(t *testing.T) {
	assert.Equal(t, 0, MaxAffordable(0, 5e4, 1.3, 49999))
}

func TestMaxAffordable_FlatGrowth(t *testing.T) {
	assert.Equal(t, 3, MaxAffordable(10, 4, 1, 12.5))
}
