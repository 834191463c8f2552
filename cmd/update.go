package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/budget"
	"github.com/google/subcommands"
)

type updateCmd struct {
	id       string
	amount   string
	category string
	date     string
}

func (*updateCmd) Name() string     { return "update" }
func (*updateCmd) Synopsis() string { return "change the amount, type or date of a record" }
func (*updateCmd) Usage() string {
	return `bgt update -id <id> [-amount <amount>] [-type <type>] [-date <DD/MM/YYYY>]

Change a record. Fields without a flag are left unchanged.

The new amount is stored with the sign of the record type. Balance checks are
not applied to updates.
`
}

func (c *updateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "id of the record to update")
	f.StringVar(&c.amount, "amount", "", "new amount")
	f.StringVar(&c.category, "type", "", "new type: receita, despesa or investimento")
	f.StringVar(&c.date, "date", "", "new date, DD/MM/YYYY")
}

// change builds the change described by the flags.
func (c *updateCmd) change() (budget.Change, error) {
	var ch budget.Change
	if c.amount != "" {
		a, err := budget.ParseAmount(c.amount)
		if err != nil {
			return ch, err
		}
		ch.Amount = budget.Some(a)
	}
	if c.category != "" {
		cat, err := budget.ParseCategory(c.category)
		if err != nil {
			return ch, err
		}
		ch.Category = budget.Some(cat)
	}
	if c.date != "" {
		d, err := parseDate(c.date)
		if err != nil {
			return ch, err
		}
		ch.Date = budget.Some(d)
	}
	return ch, nil
}

func (c *updateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	id, err := budget.ParseID(c.id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	ch, err := c.change()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if ch.IsZero() {
		fmt.Fprintln(os.Stderr, "Error: nothing to update, use -amount, -type or -date")
		return subcommands.ExitUsageError
	}

	return withSession(ctx, func(s *budget.Session) subcommands.ExitStatus {
		if _, ok := s.Record(id); !ok {
			fmt.Fprintf(os.Stderr, "Error: %v: no record with id %d\n", budget.ErrNotFound, id)
			return subcommands.ExitFailure
		}
		s.Update(id, ch)
		fmt.Fprintf(stdout, "Record %d updated.\n", id)
		return subcommands.ExitSuccess
	})
}
