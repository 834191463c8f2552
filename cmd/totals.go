package cmd

import (
	"context"
	"flag"

	"github.com/etnz/budget"
	"github.com/etnz/budget/renderer"
	"github.com/google/subcommands"
)

type totalsCmd struct{}

func (*totalsCmd) Name() string     { return "totals" }
func (*totalsCmd) Synopsis() string { return "print the total moved by each type" }
func (*totalsCmd) Usage() string {
	return `bgt totals

Print, for each type, the sum of the absolute amounts plus the current value of
investments.
`
}

func (*totalsCmd) SetFlags(f *flag.FlagSet) {}

func (*totalsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withSession(ctx, func(s *budget.Session) subcommands.ExitStatus {
		printMarkdown(renderer.Totals(s.Totals(), displayFormat()))
		return subcommands.ExitSuccess
	})
}
