package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/budget"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type addCmd struct {
	category string
	amount   string
	date     string
	rate     string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record an income, an expense or an investment" }
func (*addCmd) Usage() string {
	return `bgt add -type <type> -amount <amount> [-date <DD/MM/YYYY>] [-rate <rate>]

Record a movement in the ledger.

An expense cannot exceed the balance, and cannot be recorded before an income.
An investment cannot exceed the balance either, its interest rate is daily:
0.01 grows the investment by 1% each day.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.category, "type", "", "movement type: receita, despesa or investimento (income, expense, investment)")
	f.StringVar(&c.amount, "amount", "", "amount of the movement, not negative")
	f.StringVar(&c.date, "date", "", "date of the movement, DD/MM/YYYY. Defaults to today")
	f.StringVar(&c.rate, "rate", "0", "daily interest rate of an investment, like 0.01 for 1%")
}

// entry builds the entry described by the flags.
func (c *addCmd) entry() (budget.Entry, error) {
	var e budget.Entry
	var err error
	if e.Category, err = budget.ParseCategory(c.category); err != nil {
		return e, err
	}
	if e.Amount, err = budget.ParseAmount(c.amount); err != nil {
		return e, err
	}
	e.Date = today()
	if c.date != "" {
		if e.Date, err = parseDate(c.date); err != nil {
			return e, err
		}
	}
	e.InterestRate = decimal.Zero
	if e.Category == budget.Investment {
		if e.InterestRate, err = budget.ParseRate(c.rate); err != nil {
			return e, err
		}
	}
	return e, nil
}

func (c *addCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	e, err := c.entry()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	return withSession(ctx, func(s *budget.Session) subcommands.ExitStatus {
		r, err := s.Create(e)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(stdout, "Record %d added.\n", r.ID)
		return subcommands.ExitSuccess
	})
}
