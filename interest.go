package budget

import (
	"github.com/etnz/budget/date"
	"github.com/shopspring/decimal"
)

// InterestPrecision is the number of decimal places current values are rounded to.
const InterestPrecision = 12

// Growth returns principal*(1+rate)^days, rounded to InterestPrecision places.
// A negative 'days' (a date in the future) discounts the principal.
func Growth(principal, rate decimal.Decimal, days int) decimal.Decimal {
	if days == 0 {
		return principal
	}
	factor := decimal.NewFromInt(1).Add(rate).Pow(decimal.NewFromInt(int64(days)))
	return principal.Mul(factor).Round(InterestPrecision)
}

// ElapsedDays returns the whole days elapsed from 'since' to 'now'. Partial
// days do not exist at day granularity, so this is the floor of the elapsed time.
func ElapsedDays(since, now date.Date) int {
	return date.DaysBetween(since, now)
}

// value computes the current value of an investment record on 'now'.
func (r Record) value(now date.Date) decimal.Decimal {
	rate := r.InterestRate.Or(decimal.Zero)
	return Growth(r.Amount, rate, ElapsedDays(r.Date, now))
}

// Accrue recomputes the current value of every investment from its principal,
// rate and the days elapsed until the session date.
//
// It is idempotent: calling it twice on the same day gives the same values.
func (s *Session) Accrue() {
	now := s.today()
	for i, r := range s.records {
		if r.Category != Investment {
			continue
		}
		v := r.value(now)
		if old, ok := r.CurrentValue.Get(); !ok || !old.Equal(v) {
			s.log.Debug().Int("id", r.ID).Stringer("from", old).Stringer("to", v).Msg("accrue interest")
		}
		s.records[i].CurrentValue = Some(v)
	}
}
