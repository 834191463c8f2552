package budget

import (
	"github.com/etnz/budget/date"
	"github.com/shopspring/decimal"
)

// D is a helper for test to create a decimal from a literal string.
func D(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// FixedClock returns a clock option always evaluating on 'day'.
func FixedClock(day string) SessionOption {
	d := date.MustParse(day)
	return WithClock(func() date.Date { return d })
}
