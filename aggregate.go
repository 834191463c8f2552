package budget

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// CategoryTotal is a sum over the records of one category.
type CategoryTotal struct {
	Category Category
	Total    decimal.Decimal
}

// Row returns the columns [category, total].
func (t CategoryTotal) Row() []string {
	return []string{t.Category.String(), t.Total.String()}
}

// MonthTotal sums the records of one month.
type MonthTotal struct {
	Month      int // 1 to 12, whatever the year
	Income     decimal.Decimal
	Expense    decimal.Decimal
	Investment decimal.Decimal // invested principal
	Interest   decimal.Decimal // current value minus principal
	Balance    decimal.Decimal // sum of the four above
}

// Row returns the columns [month, income, expense, investment, interest, balance].
func (t MonthTotal) Row() []string {
	return []string{
		strconv.Itoa(t.Month),
		t.Income.String(),
		t.Expense.String(),
		t.Investment.String(),
		t.Interest.String(),
		t.Balance.String(),
	}
}

// ByCategory sums the amount of records per category. Categories appear in
// the order of their first record; a category without records is omitted.
func (s *Session) ByCategory() []CategoryTotal {
	var totals []CategoryTotal
	index := make(map[Category]int)
	for _, r := range s.records {
		i, ok := index[r.Category]
		if !ok {
			i = len(totals)
			index[r.Category] = i
			totals = append(totals, CategoryTotal{Category: r.Category, Total: decimal.Zero})
		}
		totals[i].Total = totals[i].Total.Add(r.Amount)
	}
	return totals
}

// ByMonth accrues interest and sums records per month number. Months appear in
// the order of their first record, not in chronological order, and records of
// the same month in different years share the same total.
func (s *Session) ByMonth() []MonthTotal {
	s.Accrue()
	var totals []MonthTotal
	index := make(map[int]int)
	for _, r := range s.records {
		i, ok := index[r.Month()]
		if !ok {
			i = len(totals)
			index[r.Month()] = i
			totals = append(totals, MonthTotal{
				Month:      r.Month(),
				Income:     decimal.Zero,
				Expense:    decimal.Zero,
				Investment: decimal.Zero,
				Interest:   decimal.Zero,
				Balance:    decimal.Zero,
			})
		}
		t := &totals[i]
		switch r.Category {
		case Income:
			t.Income = t.Income.Add(r.Amount)
		case Expense:
			t.Expense = t.Expense.Add(r.Amount)
		case Investment:
			t.Investment = t.Investment.Add(r.Amount)
			t.Interest = t.Interest.Add(r.currentValueOrZero().Sub(r.Amount))
		}
		t.Balance = t.Income.Add(t.Expense).Add(t.Investment).Add(t.Interest)
	}
	return totals
}

// Totals accrues interest and returns, for every category, the sum of the
// absolute amounts plus the current value of investments. All categories are
// present, in the Categories order.
func (s *Session) Totals() []CategoryTotal {
	s.Accrue()
	totals := make([]CategoryTotal, len(Categories))
	for i, c := range Categories {
		totals[i] = CategoryTotal{Category: c, Total: decimal.Zero}
	}
	for _, r := range s.records {
		for i := range totals {
			if totals[i].Category == r.Category {
				totals[i].Total = totals[i].Total.Add(r.Amount.Abs()).Add(r.currentValueOrZero())
			}
		}
	}
	return totals
}
