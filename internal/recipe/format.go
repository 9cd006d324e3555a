package recipe

import (
	"math"
	"strconv"
)

// RatioUndefined is shown when a recipe has no energy to divide by.
const RatioUndefined = "—"

const snapThreshold = 0.005

// FormatNumber renders a quantity with two decimals. Values that would round
// to zero, including negative zero, render as "0.00".
func FormatNumber(value float64) string {
	if math.Abs(value) < snapThreshold {
		return "0.00"
	}
	return strconv.FormatFloat(value, 'f', 2, 64)
}

// FormatRatio renders protein divided by fat plus net carbs. Energy at or
// below the smallest positive normal float64 yields RatioUndefined.
func FormatRatio(m Macros) string {
	energy := m.Energy()
	if energy <= minPositive {
		return RatioUndefined
	}
	return strconv.FormatFloat(m.Protein/energy, 'f', 2, 64)
}

// FormatInputValue renders a decoded quantity for an editable field. Values
// that would display as zero become an empty field.
func FormatInputValue(value float64) string {
	if math.Abs(value) < snapThreshold {
		return ""
	}
	return strconv.FormatFloat(value, 'f', 2, 64)
}

// minPositive matches the smallest positive normal float64.
const minPositive = 0x1p-1022
