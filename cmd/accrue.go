package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/budget"
	"github.com/google/subcommands"
)

type accrueCmd struct{}

func (*accrueCmd) Name() string     { return "accrue" }
func (*accrueCmd) Synopsis() string { return "update the current value of investments" }
func (*accrueCmd) Usage() string {
	return `bgt accrue

Compute the compound interest of every investment up to today and save it.
`
}

func (*accrueCmd) SetFlags(f *flag.FlagSet) {}

func (*accrueCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withSession(ctx, func(s *budget.Session) subcommands.ExitStatus {
		s.Accrue()
		fmt.Fprintf(stdout, "Interest accrued on %s.\n", s.Today())
		return subcommands.ExitSuccess
	})
}
