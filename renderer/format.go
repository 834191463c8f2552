package renderer

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Format controls how amounts are displayed.
//
// The zero Format prints amounts as exact decimals.
type Format struct {
	// Currency is an ISO 4217 code used to format amounts, like "BRL".
	Currency string
}

// currency returns the known currency of the format, or nil.
func (f Format) currency() *money.Currency {
	if f.Currency == "" {
		return nil
	}
	return money.GetCurrency(f.Currency)
}

// Amount formats d in the format currency, rounded to its minor unit. Without
// a known currency d is printed exactly.
func (f Format) Amount(d decimal.Decimal) string {
	cur := f.currency()
	if cur == nil {
		return d.String()
	}
	minor := d.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}

// KnownCurrency reports whether code is an ISO 4217 currency code.
func KnownCurrency(code string) bool {
	return money.GetCurrency(code) != nil
}
