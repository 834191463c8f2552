package budget

import (
	"errors"
	"testing"

	"github.com/etnz/budget/date"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

// filterLedger returns a session with records spread over dates, categories and amounts.
func filterLedger() *Session {
	return NewSession([]Record{
		{ID: 0, Category: Income, Amount: D("1000"), Date: date.MustParse("2024-01-10")},
		{ID: 1, Category: Expense, Amount: D("-50"), Date: date.MustParse("2024-01-15")},
		{ID: 2, Category: Investment, Amount: D("200"), Date: date.MustParse("2024-02-01"),
			InterestRate: Some(decimal.Zero), CurrentValue: Some(D("200"))},
		{ID: 3, Category: Income, Amount: D("80"), Date: date.MustParse("2023-02-20")},
	}, FixedClock("2024-03-01"))
}

func ids(records []Record) []int {
	out := []int{}
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}

func TestSelect(t *testing.T) {
	testCases := []struct {
		name   string
		filter Filter
		want   []int
	}{
		{
			name:   "no filter keeps everything in order",
			filter: Filter{},
			want:   []int{0, 1, 2, 3},
		},
		{
			name:   "day",
			filter: Filter{Day: Some(10)},
			want:   []int{0},
		},
		{
			name:   "month",
			filter: Filter{Month: Some(2)},
			want:   []int{2, 3},
		},
		{
			name:   "month and year",
			filter: Filter{Month: Some(2), Year: Some(2024)},
			want:   []int{2},
		},
		{
			name:   "year",
			filter: Filter{Year: Some(2023)},
			want:   []int{3},
		},
		{
			name:   "category",
			filter: Filter{Category: Some(Expense)},
			want:   []int{1},
		},
		{
			// Only the upper bound compares the signed amount: the expense of -50
			// is kept and so would be any expense, whatever its size.
			name:   "upper bound alone is signed",
			filter: Filter{AtMost: Some(D("100"))},
			want:   []int{1, 3},
		},
		{
			name:   "lower bound alone is signed",
			filter: Filter{AtLeast: Some(D("-60"))},
			want:   []int{0, 1, 2, 3},
		},
		{
			name:   "lower bound alone",
			filter: Filter{AtLeast: Some(D("100"))},
			want:   []int{0, 2},
		},
		{
			name:   "both bounds compare the absolute amount",
			filter: Filter{AtMost: Some(D("300")), AtLeast: Some(D("60"))},
			want:   []int{2, 3},
		},
		{
			name:   "both bounds are inclusive",
			filter: Filter{AtMost: Some(D("200")), AtLeast: Some(D("50"))},
			want:   []int{1, 2, 3},
		},
		{
			name:   "axes are combined",
			filter: Filter{Category: Some(Income), AtLeast: Some(D("100"))},
			want:   []int{0},
		},
		{
			name:   "nothing matches",
			filter: Filter{Day: Some(31)},
			want:   []int{},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ids(filterLedger().Select(tc.filter))
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Select() ids mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSelect_Accrues(t *testing.T) {
	s := NewSession([]Record{
		{ID: 0, Category: Investment, Amount: D("100"), Date: date.MustParse("2024-01-10"),
			InterestRate: Some(D("0.01")), CurrentValue: Some(D("100"))},
	}, FixedClock("2024-01-11"))

	got := s.Select(Filter{})

	if v, _ := got[0].CurrentValue.Get(); !v.Equal(D("101")) {
		t.Errorf("CurrentValue = %s, want 101", v)
	}
}

func filterConfig(kv ...string) map[string]string {
	m := map[string]string{
		FilterDay: "", FilterMonth: "", FilterYear: "",
		FilterCategory: "", FilterAtMost: "", FilterAtLeast: "",
	}
	for i := 0; i+1 < len(kv); i += 2 {
		m[kv[i]] = kv[i+1]
	}
	return m
}

func TestParseFilter(t *testing.T) {
	optCmp := cmp.AllowUnexported(Option[int]{}, Option[Category]{}, Option[decimal.Decimal]{})
	testCases := []struct {
		name   string
		config map[string]string
		want   Filter
	}{
		{
			name:   "all empty",
			config: filterConfig(),
			want:   Filter{},
		},
		{
			name:   "date parts",
			config: filterConfig(FilterDay, "5", FilterMonth, " 2 ", FilterYear, "2024"),
			want:   Filter{Day: Some(5), Month: Some(2), Year: Some(2024)},
		},
		{
			name:   "category",
			config: filterConfig(FilterCategory, "despesa"),
			want:   Filter{Category: Some(Expense)},
		},
		{
			name:   "menor_que is the upper bound",
			config: filterConfig(FilterAtMost, "100"),
			want:   Filter{AtMost: Some(D("100"))},
		},
		{
			name:   "maior_que is the lower bound",
			config: filterConfig(FilterAtLeast, "10.5"),
			want:   Filter{AtLeast: Some(D("10.5"))},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseFilter(tc.config)
			if err != nil {
				t.Fatalf("ParseFilter() unexpected error: %v", err)
			}
			if diff := cmp.Diff(tc.want, got, optCmp); diff != "" {
				t.Errorf("ParseFilter() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseFilter_Errors(t *testing.T) {
	missing := filterConfig()
	delete(missing, FilterYear)
	unknown := filterConfig()
	unknown["valor"] = "1"

	testCases := []struct {
		name   string
		config map[string]string
	}{
		{"missing key", missing},
		{"unknown key", unknown},
		{"nil config", nil},
		{"day not a number", filterConfig(FilterDay, "abc")},
		{"month not an integer", filterConfig(FilterMonth, "1.5")},
		{"upper bound not a number", filterConfig(FilterAtMost, "cem")},
		{"lower bound not a number", filterConfig(FilterAtLeast, "1,0,0")},
		{"unknown category", filterConfig(FilterCategory, "salario")},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseFilter(tc.config); !errors.Is(err, ErrInvalidFilter) {
				t.Errorf("ParseFilter() error = %v, want ErrInvalidFilter", err)
			}
		})
	}
}
