package utils

import (
	"math"
	"strconv"
)

// amountSuffixes are the short-scale display suffixes, one per factor of 1000
var amountSuffixes = []string{"", "K", "M", "B", "T", "aa", "ab", "ac", "ad", "ae", "af", "ag"}

// FormatAmount renders a resource amount for display.
// Values under 1000 print as whole numbers; larger values are scaled by 1000
// per suffix and printed with two decimals, e.g. "12.35 K" or "1.00 aa".
func FormatAmount(n float64) string {
	if math.IsInf(n, 0) || math.IsNaN(n) {
		return "∞"
	}
	if math.Abs(n) < 1000 {
		return strconv.FormatFloat(n, 'f', 0, 64)
	}

	idx := 0
	for math.Abs(n) >= 1000 && idx < len(amountSuffixes)-1 {
		n /= 1000
		idx++
	}
	return strconv.FormatFloat(n, 'f', 2, 64) + " " + amountSuffixes[idx]
}

// FormatRate renders a per-second rate
func FormatRate(n float64) string {
	return FormatAmount(n) + "/s"
}
