package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/budget"
	"github.com/etnz/budget/renderer"
	"github.com/google/subcommands"
)

type groupCmd struct {
	by string
}

func (*groupCmd) Name() string     { return "group" }
func (*groupCmd) Synopsis() string { return "sum records by type or by month" }
func (*groupCmd) Usage() string {
	return `bgt group [-by type|month]

Sum the records by type, or by month number. Months of different years are
summed together.
`
}

func (c *groupCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.by, "by", "type", "grouping field: type (tipo) or month (mes)")
}

// groupBy renders the records of 's' grouped by 'by'.
func groupBy(s *budget.Session, by string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(by)) {
	case "type", "tipo":
		return renderer.Categories(s.ByCategory(), displayFormat()), nil
	case "month", "mes":
		return renderer.Months(s.ByMonth(), displayFormat()), nil
	default:
		return "", fmt.Errorf("%w: cannot group by %q, want type or month", budget.ErrInvalidInput, by)
	}
}

func (c *groupCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withSession(ctx, func(s *budget.Session) subcommands.ExitStatus {
		md, err := groupBy(s, c.by)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		printMarkdown(md)
		return subcommands.ExitSuccess
	})
}
