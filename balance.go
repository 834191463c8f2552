package budget

import "github.com/shopspring/decimal"

// Balance returns the sum over all records of the amount plus, for
// investments, the current value.
//
// The principal of an investment is therefore counted twice: once as its
// amount and once inside its current value. Interest is not refreshed, see
// CurrentBalance.
func (s *Session) Balance() decimal.Decimal {
	balance := decimal.Zero
	for _, r := range s.records {
		balance = balance.Add(r.Amount).Add(r.currentValueOrZero())
	}
	return balance
}

// CurrentBalance accrues interest and returns the balance.
func (s *Session) CurrentBalance() decimal.Decimal {
	s.Accrue()
	return s.Balance()
}
