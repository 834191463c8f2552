package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/budget"
	"github.com/etnz/budget/renderer"
	"github.com/google/subcommands"
)

type menuCmd struct{}

func (*menuCmd) Name() string     { return "menu" }
func (*menuCmd) Synopsis() string { return "manage the ledger interactively" }
func (*menuCmd) Usage() string {
	return `bgt menu

Open the interactive menu. Invalid answers are asked again. The ledger is saved
when leaving the menu.
`
}

func (*menuCmd) SetFlags(f *flag.FlagSet) {}

func (*menuCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withSession(ctx, func(s *budget.Session) subcommands.ExitStatus {
		m := &menu{
			s:      s,
			in:     bufio.NewScanner(stdin),
			out:    stdout,
			format: displayFormat(),
		}
		m.run()
		return subcommands.ExitSuccess
	})
}

// menu is the interactive loop over a session.
type menu struct {
	s      *budget.Session
	in     *bufio.Scanner
	out    io.Writer
	format renderer.Format
	closed bool // input is exhausted
}

const menuOptions = `
Options:
1. Create record
2. List records
3. Update record
4. Delete record
5. Accrue interest
6. Export report
7. Group by
8. Exit
`

// run loops until the user exits or the input ends.
func (m *menu) run() {
	for !m.closed {
		fmt.Fprintln(m.out, strings.Repeat("-", 80))
		fmt.Fprintf(m.out, "Balance: %s\n", m.format.Amount(m.s.CurrentBalance()))
		fmt.Fprint(m.out, menuOptions)

		choice, ok := m.ask("Choose an option (1-8): ")
		if !ok {
			break
		}
		switch choice {
		case "1":
			m.create()
		case "2":
			m.list()
		case "3":
			m.update()
		case "4":
			m.delete()
		case "5":
			m.s.Accrue()
			fmt.Fprintln(m.out, "Interest accrued.")
		case "6":
			m.export()
		case "7":
			m.group()
		case "8":
			m.closed = true
		default:
			fmt.Fprintln(m.out, "Invalid option.")
		}
	}
	fmt.Fprintln(m.out, "Goodbye!")
}

// ask prints the prompt and reads a trimmed line. It returns false once the
// input is exhausted.
func (m *menu) ask(prompt string) (string, bool) {
	if m.closed {
		return "", false
	}
	fmt.Fprint(m.out, prompt)
	if !m.in.Scan() {
		m.closed = true
		fmt.Fprintln(m.out)
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

// retry asks until 'parse' accepts the answer. It returns false once the input
// is exhausted.
func (m *menu) retry(prompt string, parse func(string) error) bool {
	for {
		answer, ok := m.ask(prompt)
		if !ok {
			return false
		}
		err := parse(answer)
		if err == nil {
			return true
		}
		fmt.Fprintf(m.out, "Error: %v. Try again.\n", err)
	}
}

// optional is like retry but an empty answer is accepted without calling 'parse'.
func (m *menu) optional(prompt string, parse func(string) error) bool {
	return m.retry(prompt, func(s string) error {
		if s == "" {
			return nil
		}
		return parse(s)
	})
}

// confirm asks a yes or no question.
func (m *menu) confirm(prompt string) bool {
	answer, ok := m.ask(prompt + " [y/n]: ")
	if !ok {
		return false
	}
	switch strings.ToLower(answer) {
	case "y", "yes", "s", "sim":
		return true
	}
	return false
}

func (m *menu) create() {
	var e budget.Entry
	ok := m.retry("Type (receita/despesa/investimento): ", func(s string) (err error) {
		e.Category, err = budget.ParseCategory(s)
		return
	}) && m.retry("Amount: ", func(s string) (err error) {
		e.Amount, err = budget.ParseAmount(s)
		return
	}) && m.retry("Date (DD/MM/YYYY) [empty for today]: ", func(s string) (err error) {
		if s == "" {
			e.Date = today()
			return nil
		}
		e.Date, err = parseDate(s)
		return
	})
	if ok && e.Category == budget.Investment {
		ok = m.retry("Daily interest rate [0.01 -> 1%]: ", func(s string) (err error) {
			e.InterestRate, err = budget.ParseRate(s)
			return
		})
	}
	if !ok {
		return
	}
	r, err := m.s.Create(e)
	if err != nil {
		fmt.Fprintf(m.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(m.out, "Record %d added.\n", r.ID)
}

func (m *menu) list() {
	config := map[string]string{
		budget.FilterDay:      "",
		budget.FilterMonth:    "",
		budget.FilterYear:     "",
		budget.FilterCategory: "",
		budget.FilterAtMost:   "",
		budget.FilterAtLeast:  "",
	}
	read := func(key, prompt string) {
		if answer, ok := m.ask(prompt); ok {
			config[key] = answer
		}
	}
	if m.confirm("Filter by date?") {
		read(budget.FilterDay, "Day [empty for all]: ")
		read(budget.FilterMonth, "Month [empty for all]: ")
		read(budget.FilterYear, "Year [empty for all]: ")
	}
	if m.confirm("Filter by type?") {
		read(budget.FilterCategory, "Type: ")
	}
	if m.confirm("Filter by amount?") {
		read(budget.FilterAtMost, "At most [empty for none]: ")
		read(budget.FilterAtLeast, "At least [empty for none]: ")
	}
	if m.closed {
		return
	}

	filter, err := budget.ParseFilter(config)
	if err != nil {
		fmt.Fprintf(m.out, "Error: %v\n", err)
		return
	}
	writeMarkdown(m.out, renderer.Records(m.s.Select(filter), m.format))
}

func (m *menu) update() {
	var id int
	var c budget.Change
	ok := m.retry("ID of the record to update: ", func(s string) (err error) {
		id, err = budget.ParseID(s)
		return
	}) && m.optional("New amount [empty to keep]: ", func(s string) error {
		a, err := budget.ParseAmount(s)
		c.Amount = budget.Some(a)
		return err
	}) && m.optional("New type [empty to keep]: ", func(s string) error {
		cat, err := budget.ParseCategory(s)
		c.Category = budget.Some(cat)
		return err
	}) && m.optional("New date (DD/MM/YYYY) [empty to keep]: ", func(s string) error {
		d, err := parseDate(s)
		c.Date = budget.Some(d)
		return err
	})
	if !ok {
		return
	}
	if _, found := m.s.Record(id); !found {
		fmt.Fprintf(m.out, "Error: %v: no record with id %d\n", budget.ErrNotFound, id)
		return
	}
	m.s.Update(id, c)
	fmt.Fprintf(m.out, "Record %d updated.\n", id)
}

func (m *menu) delete() {
	raw, ok := m.ask("ID of the record to delete: ")
	if !ok {
		return
	}
	id, err := m.s.DeleteID(raw)
	if err != nil {
		fmt.Fprintf(m.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(m.out, "Record %d deleted.\n", id)
}

func (m *menu) export() {
	if err := CloseSession(m.s); err != nil {
		fmt.Fprintf(m.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(m.out, "Report exported to %s.\n", *ledgerFile)
}

func (m *menu) group() {
	by, ok := m.ask("Group by (type/month): ")
	if !ok {
		return
	}
	md, err := groupBy(m.s, by)
	if err != nil {
		fmt.Fprintf(m.out, "Error: %v\n", err)
		return
	}
	writeMarkdown(m.out, md)
}
