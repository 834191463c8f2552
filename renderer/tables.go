package renderer

import (
	"fmt"

	"github.com/etnz/budget"
	"github.com/shopspring/decimal"
)

// Records renders records as a table in the ledger order.
func Records(records []budget.Record, f Format) string {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		row := r.Row()
		row[2] = f.Amount(r.Amount)
		if v, ok := r.CurrentValue.Get(); ok {
			row[5] = f.Amount(v)
		}
		rows = append(rows, row)
	}
	return renderTable(table{
		Title:  "Records",
		Header: []string{"ID", "Category", "Amount", "Date", "Rate", "Current value"},
		Rows:   rows,
		Empty:  "No records found.",
	})
}

// Categories renders the totals per category.
func Categories(totals []budget.CategoryTotal, f Format) string {
	return renderTable(table{
		Title:  "By category",
		Header: []string{"Category", "Total"},
		Rows:   categoryRows(totals, f),
		Empty:  "No records found.",
	})
}

// Totals renders the absolute totals of every category.
func Totals(totals []budget.CategoryTotal, f Format) string {
	return renderTable(table{
		Title:  "Totals",
		Header: []string{"Category", "Total"},
		Rows:   categoryRows(totals, f),
		Empty:  "No records found.",
	})
}

func categoryRows(totals []budget.CategoryTotal, f Format) [][]string {
	rows := make([][]string, 0, len(totals))
	for _, t := range totals {
		rows = append(rows, []string{t.Category.String(), f.Amount(t.Total)})
	}
	return rows
}

// Months renders the totals per month.
func Months(totals []budget.MonthTotal, f Format) string {
	rows := make([][]string, 0, len(totals))
	for _, t := range totals {
		row := t.Row()
		for i, d := range []decimal.Decimal{t.Income, t.Expense, t.Investment, t.Interest, t.Balance} {
			row[i+1] = f.Amount(d)
		}
		rows = append(rows, row)
	}
	return renderTable(table{
		Title:  "By month",
		Header: []string{"Month", "Income", "Expense", "Investment", "Interest", "Balance"},
		Rows:   rows,
		Empty:  "No records found.",
	})
}

// Balance renders the ledger balance.
func Balance(balance decimal.Decimal, f Format) string {
	return fmt.Sprintf("**Balance:** %s\n", f.Amount(balance))
}
