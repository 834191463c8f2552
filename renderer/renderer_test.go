package renderer

import (
	"bytes"
	"embed"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/etnz/budget"
	"github.com/etnz/budget/date"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

//go:embed testdata/*.md
var goldenFS embed.FS

var fixGoldens = flag.Bool("fix-goldens", false, "if true, update failing golden .md files with the received output")

func TestFixGoldensIsOff(t *testing.T) {
	if *fixGoldens {
		t.Fatal("-fix-goldens is enabled. This flag should only be used for updating test fixtures and must be disabled for regular tests.")
	}
}

func records() []budget.Record {
	return []budget.Record{
		{ID: 0, Category: budget.Income, Amount: budget.D("1000"), Date: date.MustParse("2024-01-10")},
		{ID: 1, Category: budget.Expense, Amount: budget.D("-150.25"), Date: date.MustParse("2024-01-11")},
		{ID: 2, Category: budget.Investment, Amount: budget.D("500"), Date: date.MustParse("2024-02-01"),
			InterestRate: budget.Some(budget.D("0.01")), CurrentValue: budget.Some(budget.D("505"))},
	}
}

func months() []budget.MonthTotal {
	return []budget.MonthTotal{
		{Month: 1, Income: budget.D("1000"), Expense: budget.D("-150.25"), Investment: budget.D("0"), Interest: budget.D("0"), Balance: budget.D("849.75")},
		{Month: 2, Income: budget.D("0"), Expense: budget.D("0"), Investment: budget.D("500"), Interest: budget.D("5"), Balance: budget.D("505")},
	}
}

func TestRender(t *testing.T) {
	usd := Format{Currency: "USD"}
	testCases := []struct {
		golden string
		got    string
	}{
		{"records.md", Records(records(), Format{})},
		{"records_usd.md", Records(records(), usd)},
		{"records_empty.md", Records(nil, Format{})},
		{"categories.md", Categories([]budget.CategoryTotal{
			{Category: budget.Income, Total: budget.D("1000")},
			{Category: budget.Expense, Total: budget.D("-150.25")},
			{Category: budget.Investment, Total: budget.D("500")},
		}, Format{})},
		{"totals.md", Totals([]budget.CategoryTotal{
			{Category: budget.Income, Total: budget.D("1000")},
			{Category: budget.Expense, Total: budget.D("150.25")},
			{Category: budget.Investment, Total: budget.D("1005")},
		}, Format{})},
		{"months.md", Months(months(), Format{})},
		{"months_empty.md", Months(nil, Format{})},
		{"balance.md", Balance(budget.D("1354.75"), Format{})},
		{"balance_usd.md", Balance(budget.D("1354.75"), usd)},
	}
	for _, tc := range testCases {
		t.Run(tc.golden, func(t *testing.T) {
			path := "testdata/" + tc.golden
			want, err := goldenFS.ReadFile(path)
			if err != nil {
				t.Fatalf("failed to read golden file %q: %v", path, err)
			}
			if tc.got == string(want) {
				return
			}
			if *fixGoldens {
				if err := os.WriteFile(filepath.FromSlash(path), []byte(tc.got), 0o644); err != nil {
					t.Fatalf("failed to fix golden file %q: %v", path, err)
				}
				t.Logf("fixed golden file %q", path)
				return
			}
			t.Errorf("rendered output mismatch for %q:\n--- want ---\n%s\n--- got ---\n%s", path, want, tc.got)
		})
	}
}

// tableRows parses md and returns the number of rows, header included, of
// its first table, or -1 if there is none.
func tableRows(t *testing.T, md string) int {
	t.Helper()
	source := []byte(md)
	doc := goldmark.New(goldmark.WithExtensions(extension.Table)).Parser().Parse(text.NewReader(source))
	rows := -1
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering || n.Kind() != extast.KindTable {
			return ast.WalkContinue, nil
		}
		rows = n.ChildCount()
		return ast.WalkStop, nil
	})
	if err != nil {
		t.Fatalf("walking markdown: %v", err)
	}
	return rows
}

func TestRender_ValidMarkdownTable(t *testing.T) {
	testCases := []struct {
		name string
		md   string
		want int
	}{
		{"records", Records(records(), Format{}), 4},
		{"records with currency", Records(records(), Format{Currency: "USD"}), 4},
		{"months", Months(months(), Format{}), 3},
		{"no records", Records(nil, Format{}), -1},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tableRows(t, tc.md); got != tc.want {
				t.Errorf("table rows = %d, want %d in:\n%s", got, tc.want, tc.md)
			}
		})
	}
}

func TestFormatAmount(t *testing.T) {
	testCases := []struct {
		format Format
		amount string
		want   string
	}{
		{Format{}, "1000.50", "1000.5"},
		{Format{}, "0.123456789012", "0.123456789012"},
		{Format{Currency: "USD"}, "1000.5", "$1,000.50"},
		{Format{Currency: "USD"}, "-150.25", "-$150.25"},
		{Format{Currency: "USD"}, "505.123", "$505.12"},
		{Format{Currency: "USD"}, "0", "$0.00"},
		{Format{Currency: "XYZ"}, "12.5", "12.5"},
	}
	for _, tc := range testCases {
		if got := tc.format.Amount(budget.D(tc.amount)); got != tc.want {
			t.Errorf("%+v.Amount(%s) = %q, want %q", tc.format, tc.amount, got, tc.want)
		}
	}
}

func TestKnownCurrency(t *testing.T) {
	if !KnownCurrency("BRL") {
		t.Error("KnownCurrency(BRL) = false, want true")
	}
	if KnownCurrency("XYZ") {
		t.Error("KnownCurrency(XYZ) = true, want false")
	}
}

func TestRenderTemplate_Errors(t *testing.T) {
	got := renderTemplate("missing", "templates/missing.md", nil, nil)
	if !bytes.Contains([]byte(got), []byte("error reading main template")) {
		t.Errorf("renderTemplate() = %q, want a read error", got)
	}
}
