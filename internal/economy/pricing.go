package economy

import "math"

// Cost returns the price of buying qty more units when have are already owned.
// Each successive unit costs base*growth^(have+i); the sum uses the closed form
// so it stays exact for quantities in the thousands.
func Cost(have, qty int, base, growth float64) float64 {
	if qty <= 0 {
		return 0
	}
	head := base * math.Pow(growth, float64(have))
	if growth == 1 {
		return head * float64(qty)
	}
	return head * (math.Pow(growth, float64(qty)) - 1) / (growth - 1)
}

// MaxAffordable returns the largest qty with Cost(have, qty, base, growth) <= budget.
// The closed-form inverse can land one off in either direction near the boundary,
// so the estimate is nudged until it is exact.
func MaxAffordable(have int, base, growth, budget float64) int {
	head := base * math.Pow(growth, float64(have))
	if head <= 0 || budget < head {
		return 0
	}

	var qty int
	if growth == 1 {
		qty = int(math.Floor(budget / head))
	} else {
		qty = int(math.Floor(math.Log(budget*(growth-1)/head+1) / math.Log(growth)))
	}
	if qty < 0 {
		qty = 0
	}

	for i := 0; i < maxBoundarySteps && qty > 0 && Cost(have, qty, base, growth) > budget; i++ {
		qty--
	}
	for i := 0; i < maxBoundarySteps && Cost(have, qty+1, base, growth) <= budget; i++ {
		qty++
	}
	return qty
}
