// Package budget estimates the total cost of a cycling trip from the
// resolved route, per-stop accommodation pricing, daily heuristics and
// visa fees, normalized into a single reference currency (EUR).
package budget

import (
	"log/slog"

	"golang.org/x/text/currency"
)

// Static exchange rates expressed as units per EUR. Simplified figures;
// a production deployment would feed these from a rates service.
var ratesPerEUR = map[string]float64{
	"EUR": 1.0,
	"USD": 1.1,
	"GBP": 0.85,
	"DKK": 7.45,
	"CZK": 25.0,
}

// ToEUR converts an amount into the reference currency by dividing by
// the static rate. An unknown currency code passes through at face
// value with a warning; this is a defined degradation, not an error.
func ToEUR(amount float64, code string) float64 {
	rate, ok := ratesPerEUR[code]
	if !ok {
		if _, err := currency.ParseISO(code); err != nil {
			slog.Default().Warn("unrecognized currency code, treating amount as EUR",
				"currency", code, "amount", amount)
		} else {
			slog.Default().Warn("no exchange rate for currency, treating amount as EUR",
				"currency", code, "amount", amount)
		}
		return amount
	}
	return amount / rate
}

// EURToUSD converts a reference-currency amount into USD using the
// same static rate table.
func EURToUSD(amount float64) float64 {
	return amount * ratesPerEUR["USD"]
}
