package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/budget"
	"github.com/etnz/budget/renderer"
	"github.com/google/subcommands"
)

type lsCmd struct {
	day      string
	month    string
	year     string
	category string
	atMost   string
	atLeast  string
}

func (*lsCmd) Name() string     { return "ls" }
func (*lsCmd) Synopsis() string { return "list records, optionally filtered" }
func (*lsCmd) Usage() string {
	return `bgt ls [-day <d>] [-month <m>] [-year <y>] [-type <type>] [-at-most <amount>] [-at-least <amount>]

List the records in ledger order. Filters are combined.

With a single bound the signed amount is compared, so -at-most 100 lists every
expense. With both bounds the absolute amount is compared.
`
}

func (c *lsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.day, "day", "", "only records of that day of the month")
	f.StringVar(&c.month, "month", "", "only records of that month (1-12)")
	f.StringVar(&c.year, "year", "", "only records of that year")
	f.StringVar(&c.category, "type", "", "only records of that type")
	f.StringVar(&c.atMost, "at-most", "", "only records with an amount lower or equal")
	f.StringVar(&c.atLeast, "at-least", "", "only records with an amount greater or equal")
}

// config returns the filter configuration of the flags.
func (c *lsCmd) config() map[string]string {
	return map[string]string{
		budget.FilterDay:      c.day,
		budget.FilterMonth:    c.month,
		budget.FilterYear:     c.year,
		budget.FilterCategory: c.category,
		budget.FilterAtMost:   c.atMost,
		budget.FilterAtLeast:  c.atLeast,
	}
}

func (c *lsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	filter, err := budget.ParseFilter(c.config())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	return withSession(ctx, func(s *budget.Session) subcommands.ExitStatus {
		printMarkdown(renderer.Records(s.Select(filter), displayFormat()))
		return subcommands.ExitSuccess
	})
}
