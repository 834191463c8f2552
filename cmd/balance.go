package cmd

import (
	"context"
	"flag"

	"github.com/etnz/budget"
	"github.com/etnz/budget/renderer"
	"github.com/google/subcommands"
)

type balanceCmd struct{}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "print the ledger balance" }
func (*balanceCmd) Usage() string {
	return `bgt balance

Accrue interest and print the balance: the sum of every amount plus the current
value of every investment.
`
}

func (*balanceCmd) SetFlags(f *flag.FlagSet) {}

func (*balanceCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withSession(ctx, func(s *budget.Session) subcommands.ExitStatus {
		printMarkdown(renderer.Balance(s.CurrentBalance(), displayFormat()))
		return subcommands.ExitSuccess
	})
}
