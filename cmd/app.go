// Package cmd implements the CLI application to manage a budget ledger.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/budget"
	"github.com/etnz/budget/date"
	"github.com/etnz/budget/internal/logger"
	"github.com/etnz/budget/renderer"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

// group is a set of subcommands listed together in the help.
type group struct {
	name     string
	commands []subcommands.Command
}

// groups lists every subcommand.
func groups() []group {
	return []group{
		{"records", []subcommands.Command{&addCmd{}, &updateCmd{}, &rmCmd{}, &lsCmd{}}},
		{"reports", []subcommands.Command{&balanceCmd{}, &groupCmd{}, &totalsCmd{}}},
		{"ledger", []subcommands.Command{&accrueCmd{}, &exportCmd{}, &queryCmd{}}},
		{"", []subcommands.Command{&menuCmd{}, &topicCmd{}}},
	}
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, g := range groups() {
		for _, cmd := range g.commands {
			c.Register(cmd, g.name)
		}
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	ledgerFile = flag.String("ledger-file", "registros.json", "Path to the ledger file (JSON array of records)")
	currency   = flag.String("currency", "", "ISO 4217 code used to display amounts, like BRL. Plain decimals when empty")
	raw        = flag.Bool("raw", false, "print markdown as is, without terminal styling")
	Verbose    = flag.Bool("v", false, "verbose logging")
)

// stdin, stdout and today are replaced in tests.
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
	today            = date.Today
)

// envFlags maps global flags to the environment variable holding their default value.
var envFlags = map[string]string{
	"ledger-file": EnvLedgerFile,
	"currency":    EnvCurrency,
	"v":           EnvVerbose,
}

// LoadEnv loads the .env files, the one in the working directory by default,
// and uses the environment to set the global flags of 'set'. Missing files are
// ignored. It must be called before the flags are parsed, so that the command
// line wins.
func LoadEnv(set *flag.FlagSet, files ...string) error {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("could not load environment: %w", err)
	}
	for name, env := range envFlags {
		v, ok := os.LookupEnv(env)
		if !ok || set.Lookup(name) == nil {
			continue
		}
		if err := set.Set(name, v); err != nil {
			return fmt.Errorf("invalid %s=%q: %w", env, v, err)
		}
	}
	return nil
}

// displayFormat returns the renderer format of the global flags.
func displayFormat() renderer.Format {
	return renderer.Format{Currency: *currency}
}

// OpenSession loads the ledger file into a session.
func OpenSession(ctx context.Context) (*budget.Session, error) {
	return budget.LoadSession(*ledgerFile,
		budget.WithLogger(logger.FromContext(ctx)),
		budget.WithClock(func() date.Date { return today() }),
	)
}

// CloseSession accrues and writes the session back into the ledger file.
func CloseSession(s *budget.Session) error {
	return budget.SaveSession(*ledgerFile, s)
}

// withSession runs 'run' on the ledger session and always flushes the session
// back to the ledger file, whatever 'run' returned.
func withSession(ctx context.Context, run func(s *budget.Session) subcommands.ExitStatus) subcommands.ExitStatus {
	s, err := OpenSession(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	status := run(s)
	if err := CloseSession(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving ledger %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}
	return status
}

// printMarkdown prints md on stdout, styled for the terminal unless -raw is set.
func printMarkdown(md string) {
	writeMarkdown(stdout, md)
}

func writeMarkdown(w io.Writer, md string) {
	if *raw {
		fmt.Fprint(w, md)
		return
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(120),
	)
	if err != nil {
		fmt.Fprint(w, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Fprint(w, md)
		return
	}
	fmt.Fprint(w, out)
}

// parseDate parses a user date, either day-first (DD/MM/YYYY) or ISO (YYYY-MM-DD).
func parseDate(s string) (date.Date, error) {
	if d, err := date.ParseInput(s); err == nil {
		return d, nil
	}
	d, err := date.Parse(s)
	if err != nil {
		return date.Date{}, fmt.Errorf("%w: date %q, want DD/MM/YYYY", budget.ErrInvalidInput, s)
	}
	return d, nil
}
