package budget

import "errors"

// Errors returned by the ledger operations. They are wrapped with context, use
// errors.Is to test for them.
var (
	// ErrInvalidInput reports an unparseable number, date or category.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInsufficientFunds reports a movement bigger than the balance.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrNoIncomeYet reports an expense recorded while the balance is negative.
	ErrNoIncomeYet = errors.New("no income yet")
	// ErrNotFound reports an unknown record id.
	ErrNotFound = errors.New("record not found")
	// ErrInvalidID reports an id that is not an integer.
	ErrInvalidID = errors.New("invalid record id")
	// ErrInvalidFilter reports a malformed filter configuration.
	ErrInvalidFilter = errors.New("invalid filter")
)
