package recipe

import (
	"math"
	"strconv"
	"strings"
)

// Sanitize clamps a quantity to the non-negative finite range. NaN and
// infinities collapse to zero.
func Sanitize(value float64) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}
	return math.Max(value, 0)
}

// ParseQuantity reads user-entered text as grams or servings. Anything that
// does not parse as a decimal number counts as zero.
func ParseQuantity(raw string) float64 {
	raw = strings.TrimSpace(raw)
	// ParseFloat also reads hex floats such as "0x1p4"; those are not decimal.
	if strings.ContainsAny(raw, "xX") {
		return 0
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		// ParseFloat reports ±Inf with ErrRange for overflow; Sanitize maps both to zero.
		return 0
	}
	return Sanitize(value)
}
