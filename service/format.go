package service

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var numberPrinter = message.NewPrinter(language.English)

// money formats an amount with thousands separators, e.g. ₹5,000,000.00.
func money(symbol string, v float64) string {
	if v < 0 {
		return "-" + symbol + numberPrinter.Sprintf("%.2f", math.Abs(v))
	}
	return symbol + numberPrinter.Sprintf("%.2f", v)
}

// wholeMoney formats an amount without decimals, e.g. ₹120,000.
func wholeMoney(symbol string, v float64) string {
	return symbol + numberPrinter.Sprintf("%.0f", math.Round(v))
}

func years(months int) float64 {
	return float64(months) / 12
}
