package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"

	"github.com/etnz/budget"
	"github.com/google/subcommands"
)

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write the ledger with up to date interest" }
func (*exportCmd) Usage() string {
	return `bgt export [-o <file>]

Accrue interest and write the ledger file. With -o, the records are also
written to <file>, "-" being the standard output.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "also write the records to that file, - for stdout")
}

func (c *exportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withSession(ctx, func(s *budget.Session) subcommands.ExitStatus {
		switch c.output {
		case "":
			fmt.Fprintf(stdout, "Report exported to %s.\n", *ledgerFile)
		case "-":
			s.Accrue()
			if err := budget.EncodeRecords(stdout, slices.Collect(s.Records())); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return subcommands.ExitFailure
			}
		default:
			if err := budget.SaveSession(c.output, s); err != nil {
				fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", c.output, err)
				return subcommands.ExitFailure
			}
			fmt.Fprintf(stdout, "Report exported to %s.\n", c.output)
		}
		return subcommands.ExitSuccess
	})
}
