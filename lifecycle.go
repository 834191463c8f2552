package budget

import (
	"fmt"
	"slices"

	"github.com/etnz/budget/date"
	"github.com/shopspring/decimal"
)

// Entry describes a record to create.
type Entry struct {
	Category Category
	// Amount is the magnitude of the movement, it must not be negative.
	Amount decimal.Decimal
	Date   date.Date
	// InterestRate is the daily rate of an Investment. Ignored otherwise.
	InterestRate decimal.Decimal
}

// Create validates 'e' against the current balance and appends a new record.
//
// An expense requires a non negative balance (ErrNoIncomeYet) at least equal to
// its amount (ErrInsufficientFunds); an investment requires a balance at least
// equal to its amount. Interest is not refreshed before the check. On error the
// session is left unchanged.
func (s *Session) Create(e Entry) (Record, error) {
	if e.Amount.IsNegative() {
		return Record{}, fmt.Errorf("%w: amount %s must not be negative", ErrInvalidInput, e.Amount)
	}
	if e.Date.IsZero() {
		return Record{}, fmt.Errorf("%w: missing date", ErrInvalidInput)
	}

	balance := s.Balance()
	r := Record{Category: e.Category, Amount: e.Amount, Date: e.Date}
	switch e.Category {
	case Income:
	case Expense:
		if balance.IsNegative() {
			return Record{}, fmt.Errorf("%w: record an income before an expense, balance is %s", ErrNoIncomeYet, balance)
		}
		if balance.LessThan(e.Amount) {
			return Record{}, fmt.Errorf("%w: cannot spend %s, balance is %s", ErrInsufficientFunds, e.Amount, balance)
		}
		r.Amount = e.Amount.Neg()
	case Investment:
		if e.InterestRate.IsNegative() {
			return Record{}, fmt.Errorf("%w: interest rate %s must not be negative", ErrInvalidInput, e.InterestRate)
		}
		if balance.LessThan(e.Amount) {
			return Record{}, fmt.Errorf("%w: cannot invest %s, balance is %s", ErrInsufficientFunds, e.Amount, balance)
		}
		r.InterestRate = Some(e.InterestRate)
		r.CurrentValue = Some(r.value(s.today()))
	default:
		return Record{}, fmt.Errorf("%w: unknown category %d", ErrInvalidInput, int(e.Category))
	}

	r.ID = s.nextID
	s.nextID++
	s.records = append(s.records, r)
	s.log.Debug().Int("id", r.ID).Stringer("category", r.Category).Stringer("amount", r.Amount).Stringer("date", r.Date).Msg("create record")
	return r, nil
}

// Change lists the fields to replace in a record. Absent fields are left unchanged.
type Change struct {
	// Amount is a magnitude, its sign follows the record category.
	Amount   Option[decimal.Decimal]
	Category Option[Category]
	Date     Option[date.Date]
}

// IsZero reports whether the change does not replace anything.
func (c Change) IsZero() bool {
	return !c.Amount.IsSet() && !c.Category.IsSet() && !c.Date.IsSet()
}

// Update replaces the fields set in 'c' on the record 'id'.
//
// An unknown id is silently ignored, use Record to check for existence first.
// The balance is not checked again. The amount sign is normalized for the
// resulting category, a record becoming an investment gets a zero interest
// rate and any other category loses its interest rate and current value.
func (s *Session) Update(id int, c Change) {
	i := s.index(id)
	if i < 0 {
		s.log.Debug().Int("id", id).Msg("update unknown record ignored")
		return
	}
	r := s.records[i]

	r.Category = c.Category.Or(r.Category)
	r.Date = c.Date.Or(r.Date)
	amount := c.Amount.Or(r.Amount).Abs()
	switch r.Category {
	case Expense:
		r.Amount = amount.Neg()
		r.InterestRate, r.CurrentValue = None[decimal.Decimal](), None[decimal.Decimal]()
	case Income:
		r.Amount = amount
		r.InterestRate, r.CurrentValue = None[decimal.Decimal](), None[decimal.Decimal]()
	case Investment:
		r.Amount = amount
		r.InterestRate = Some(r.InterestRate.Or(decimal.Zero))
		r.CurrentValue = Some(r.value(s.today()))
	}

	s.records[i] = r
	s.log.Debug().Int("id", id).Stringer("category", r.Category).Stringer("amount", r.Amount).Stringer("date", r.Date).Msg("update record")
}

// Delete removes the record 'id'. It returns ErrNotFound if there is none.
func (s *Session) Delete(id int) error {
	i := s.index(id)
	if i < 0 {
		return fmt.Errorf("%w: no record with id %d", ErrNotFound, id)
	}
	s.records = slices.Delete(s.records, i, i+1)
	s.log.Debug().Int("id", id).Msg("delete record")
	return nil
}

// DeleteID parses 'raw' as an id and deletes that record, returning the parsed
// id. It returns ErrInvalidID if raw is not an integer.
func (s *Session) DeleteID(raw string) (int, error) {
	id, err := ParseID(raw)
	if err != nil {
		return 0, err
	}
	return id, s.Delete(id)
}
