package budget

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Category is the kind of movement a Record represents.
type Category int

const (
	// Income is money coming in, stored with a positive amount.
	Income Category = iota + 1
	// Expense is money going out, stored with a negative amount.
	Expense
	// Investment is money set aside to grow at a daily interest rate.
	Investment
)

// Categories lists every category in display order.
var Categories = []Category{Income, Expense, Investment}

// String returns the persisted name of the category.
func (c Category) String() string {
	switch c {
	case Income:
		return "receita"
	case Expense:
		return "despesa"
	case Investment:
		return "investimento"
	default:
		return "unknown"
	}
}

// Label returns a human readable name for the category.
func (c Category) Label() string {
	switch c {
	case Income:
		return "Income"
	case Expense:
		return "Expense"
	case Investment:
		return "Investment"
	default:
		return "Unknown"
	}
}

// ParseCategory parses a category from its persisted name ("receita",
// "despesa", "investimento") or its english name, case insensitive.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "receita", "income":
		return Income, nil
	case "despesa", "expense":
		return Expense, nil
	case "investimento", "investment":
		return Investment, nil
	default:
		return 0, fmt.Errorf("%w: unknown category %q want one of receita, despesa, investimento", ErrInvalidInput, s)
	}
}

func (c Category) MarshalJSON() ([]byte, error) {
	switch c {
	case Income, Expense, Investment:
		return json.Marshal(c.String())
	default:
		return nil, fmt.Errorf("cannot marshal unknown category %d", int(c))
	}
}

func (c *Category) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	v, err := ParseCategory(s)
	if err != nil {
		return err
	}
	*c = v
	return nil
}
