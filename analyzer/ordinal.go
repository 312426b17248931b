package analyzer

import (
	"fmt"
	"math"
)

// OrdinalSuffix renders the whole-number part of a grade level score as an
// ordinal, e.g. 8.21 → "8th", 2.9 → "3rd".
func OrdinalSuffix(score float64) string {
	n := int(math.Round(score))
	if n < 0 {
		n = -n
	}

	suffix := "th"
	// 11th, 12th and 13th break the usual last-digit rule.
	if n%100 < 11 || n%100 > 13 {
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}
