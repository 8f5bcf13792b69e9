package calculator

import (
	"math"

	"github.com/shopspring/decimal"
)

// Round2 rounds a money amount to cents, half away from zero, on the decimal
// representation of v rather than its binary one.
func Round2(v float64) float64 {
	return roundPlaces(v, 2)
}

func round4(v float64) float64 {
	return roundPlaces(v, 4)
}

func roundPlaces(v float64, places int32) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}

func ceilMonths(v float64) int {
	return int(math.Ceil(v - ceilTolerance))
}
