package budget

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/etnz/budget/date"
	"github.com/shopspring/decimal"
)

// Record is a single movement in the ledger.
type Record struct {
	ID       int
	Category Category
	// Amount is signed: positive for Income, negative for Expense, and the
	// invested principal for Investment.
	Amount decimal.Decimal
	Date   date.Date
	// InterestRate is the daily rate of an Investment (0.01 is 1% a day).
	InterestRate Option[decimal.Decimal]
	// CurrentValue is the principal plus accrued interest of an Investment.
	CurrentValue Option[decimal.Decimal]
}

// Day returns the day of the month of the record date.
func (r Record) Day() int { return r.Date.Day() }

// Month returns the month number (1 to 12) of the record date.
func (r Record) Month() int { return int(r.Date.Month()) }

// Year returns the year of the record date.
func (r Record) Year() int { return r.Date.Year() }

// currentValueOrZero is the investment current value, zero for other categories.
func (r Record) currentValueOrZero() decimal.Decimal {
	return r.CurrentValue.Or(decimal.Zero)
}

// Validate checks the record invariants.
func (r Record) Validate() error {
	var errs error
	if r.ID < 0 {
		errs = errors.Join(errs, fmt.Errorf("negative id %d", r.ID))
	}
	if r.Date.IsZero() {
		errs = errors.Join(errs, errors.New("missing date"))
	}
	switch r.Category {
	case Income:
		if r.Amount.IsNegative() {
			errs = errors.Join(errs, fmt.Errorf("income amount must not be negative, got %s", r.Amount))
		}
		if r.InterestRate.IsSet() || r.CurrentValue.IsSet() {
			errs = errors.Join(errs, errors.New("income cannot have an interest rate or a current value"))
		}
	case Expense:
		if r.Amount.IsPositive() {
			errs = errors.Join(errs, fmt.Errorf("expense amount must not be positive, got %s", r.Amount))
		}
		if r.InterestRate.IsSet() || r.CurrentValue.IsSet() {
			errs = errors.Join(errs, errors.New("expense cannot have an interest rate or a current value"))
		}
	case Investment:
		if r.Amount.IsNegative() {
			errs = errors.Join(errs, fmt.Errorf("investment amount must not be negative, got %s", r.Amount))
		}
		if rate, ok := r.InterestRate.Get(); !ok {
			errs = errors.Join(errs, errors.New("investment without interest rate"))
		} else if rate.IsNegative() {
			errs = errors.Join(errs, fmt.Errorf("investment interest rate must not be negative, got %s", rate))
		}
		if !r.CurrentValue.IsSet() {
			errs = errors.Join(errs, errors.New("investment without current value"))
		}
	default:
		errs = errors.Join(errs, fmt.Errorf("unknown category %d", int(r.Category)))
	}
	if errs != nil {
		return fmt.Errorf("invalid record %d: %w", r.ID, errs)
	}
	return nil
}

// Row returns the record as the display columns
// [id, category, amount, date, interest rate, current value].
// Absent fields are empty strings.
func (r Record) Row() []string {
	row := []string{strconv.Itoa(r.ID), r.Category.String(), r.Amount.String(), r.Date.String(), "", ""}
	if rate, ok := r.InterestRate.Get(); ok {
		row[4] = rate.String()
	}
	if v, ok := r.CurrentValue.Get(); ok {
		row[5] = v.String()
	}
	return row
}

// recordDate is the persisted form of a date, the complete ISO string along
// with its parts.
type recordDate struct {
	Complete string `json:"completa"`
	Day      int    `json:"dia"`
	Month    int    `json:"mes"`
	Year     int    `json:"ano"`
}

func newRecordDate(d date.Date) recordDate {
	return recordDate{Complete: d.String(), Day: d.Day(), Month: int(d.Month()), Year: d.Year()}
}

// Date parses the complete date and checks the parts agree with it.
func (rd recordDate) Date() (date.Date, error) {
	d, err := date.Parse(rd.Complete)
	if err != nil {
		return date.Date{}, err
	}
	if d.Day() != rd.Day || int(d.Month()) != rd.Month || d.Year() != rd.Year {
		return date.Date{}, fmt.Errorf("date %q does not match day %d, month %d, year %d", rd.Complete, rd.Day, rd.Month, rd.Year)
	}
	return d, nil
}

// MarshalJSON implements the json.Marshaler interface for Record.
// Keys are written in a fixed order.
func (r Record) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", r.ID)
	w.Append("data", newRecordDate(r.Date))
	w.Append("tipo", r.Category)
	w.Append("valor", r.Amount)
	if rate, ok := r.InterestRate.Get(); ok {
		w.Append("taxa_juros", rate)
	}
	if v, ok := r.CurrentValue.Get(); ok {
		w.Append("montante", v)
	}
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Record.
func (r *Record) UnmarshalJSON(data []byte) error {
	var temp struct {
		ID           *int                `json:"id"`
		Date         recordDate          `json:"data"`
		Category     Category            `json:"tipo"`
		Amount       decimal.Decimal     `json:"valor"`
		InterestRate decimal.NullDecimal `json:"taxa_juros"`
		CurrentValue decimal.NullDecimal `json:"montante"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	if temp.ID == nil {
		return errors.New("record without id")
	}
	d, err := temp.Date.Date()
	if err != nil {
		return fmt.Errorf("record %d: %w", *temp.ID, err)
	}
	*r = Record{
		ID:       *temp.ID,
		Category: temp.Category,
		Amount:   temp.Amount,
		Date:     d,
	}
	if temp.InterestRate.Valid {
		r.InterestRate = Some(temp.InterestRate.Decimal)
	}
	if temp.CurrentValue.Valid {
		r.CurrentValue = Some(temp.CurrentValue.Decimal)
	}
	return nil
}
