package budget

import (
	"testing"

	"github.com/etnz/budget/date"
	"github.com/google/go-cmp/cmp"
)

func TestRecord_Validate(t *testing.T) {
	on := date.MustParse("2024-01-10")
	testCases := []struct {
		name    string
		record  Record
		wantErr bool
	}{
		{"income", Record{Category: Income, Amount: D("1"), Date: on}, false},
		{"expense", Record{Category: Expense, Amount: D("-1"), Date: on}, false},
		{"investment", Record{Category: Investment, Amount: D("1"), Date: on, InterestRate: Some(D("0")), CurrentValue: Some(D("1"))}, false},
		{"negative id", Record{ID: -1, Category: Income, Amount: D("1"), Date: on}, true},
		{"missing date", Record{Category: Income, Amount: D("1")}, true},
		{"negative income", Record{Category: Income, Amount: D("-1"), Date: on}, true},
		{"positive expense", Record{Category: Expense, Amount: D("1"), Date: on}, true},
		{"expense with rate", Record{Category: Expense, Amount: D("-1"), Date: on, InterestRate: Some(D("0.1"))}, true},
		{"investment without current value", Record{Category: Investment, Amount: D("1"), Date: on, InterestRate: Some(D("0"))}, true},
		{"investment with negative rate", Record{Category: Investment, Amount: D("1"), Date: on, InterestRate: Some(D("-0.1")), CurrentValue: Some(D("1"))}, true},
		{"no category", Record{Amount: D("1"), Date: on}, true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.record.Validate(); (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestRecord_Row(t *testing.T) {
	testCases := []struct {
		record Record
		want   []string
	}{
		{
			record: Record{ID: 3, Category: Expense, Amount: D("-12.5"), Date: date.MustParse("2024-01-10")},
			want:   []string{"3", "despesa", "-12.5", "2024-01-10", "", ""},
		},
		{
			record: Record{ID: 4, Category: Investment, Amount: D("100"), Date: date.MustParse("2024-02-01"),
				InterestRate: Some(D("0.01")), CurrentValue: Some(D("102.01"))},
			want: []string{"4", "investimento", "100", "2024-02-01", "0.01", "102.01"},
		},
	}
	for _, tc := range testCases {
		if diff := cmp.Diff(tc.want, tc.record.Row()); diff != "" {
			t.Errorf("Row() mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestRecord_DateParts(t *testing.T) {
	r := Record{Date: date.MustParse("2023-11-07")}
	if r.Day() != 7 || r.Month() != 11 || r.Year() != 2023 {
		t.Errorf("date parts = %d/%d/%d, want 7/11/2023", r.Day(), r.Month(), r.Year())
	}
}
