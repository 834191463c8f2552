package budget

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Filter keys as used in a filter configuration map.
const (
	FilterDay      = "dia"
	FilterMonth    = "mes"
	FilterYear     = "ano"
	FilterCategory = "tipo"
	FilterAtMost   = "menor_que" // upper bound
	FilterAtLeast  = "maior_que" // lower bound
)

var filterKeys = []string{FilterDay, FilterMonth, FilterYear, FilterCategory, FilterAtMost, FilterAtLeast}

// Filter selects records. Every absent field accepts all records; set fields are ANDed.
//
// The amount bounds compare the absolute amount when both are set, but the
// signed amount when only one of them is.
type Filter struct {
	Day      Option[int]
	Month    Option[int]
	Year     Option[int]
	Category Option[Category]
	AtMost   Option[decimal.Decimal]
	AtLeast  Option[decimal.Decimal]
}

// ParseFilter builds a Filter from a configuration map holding exactly the keys
// dia, mes, ano, tipo, menor_que and maior_que. An empty value leaves that
// axis unconstrained.
//
// It returns ErrInvalidFilter for a missing or unknown key, or a value that
// cannot be parsed.
func ParseFilter(config map[string]string) (Filter, error) {
	var f Filter
	for key := range config {
		if !slices.Contains(filterKeys, key) {
			return Filter{}, fmt.Errorf("%w: unknown key %q", ErrInvalidFilter, key)
		}
	}
	for _, key := range filterKeys {
		if _, ok := config[key]; !ok {
			return Filter{}, fmt.Errorf("%w: missing key %q", ErrInvalidFilter, key)
		}
	}

	var err error
	if f.Day, err = parseIntOption(config, FilterDay); err != nil {
		return Filter{}, err
	}
	if f.Month, err = parseIntOption(config, FilterMonth); err != nil {
		return Filter{}, err
	}
	if f.Year, err = parseIntOption(config, FilterYear); err != nil {
		return Filter{}, err
	}
	if f.AtMost, err = parseDecimalOption(config, FilterAtMost); err != nil {
		return Filter{}, err
	}
	if f.AtLeast, err = parseDecimalOption(config, FilterAtLeast); err != nil {
		return Filter{}, err
	}
	if s := strings.TrimSpace(config[FilterCategory]); s != "" {
		c, err := ParseCategory(s)
		if err != nil {
			return Filter{}, fmt.Errorf("%w: %v", ErrInvalidFilter, err)
		}
		f.Category = Some(c)
	}
	return f, nil
}

func parseIntOption(config map[string]string, key string) (Option[int], error) {
	s := strings.TrimSpace(config[key])
	if s == "" {
		return None[int](), nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return None[int](), fmt.Errorf("%w: %s %q is not an integer", ErrInvalidFilter, key, s)
	}
	return Some(v), nil
}

func parseDecimalOption(config map[string]string, key string) (Option[decimal.Decimal], error) {
	s := strings.TrimSpace(config[key])
	if s == "" {
		return None[decimal.Decimal](), nil
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return None[decimal.Decimal](), fmt.Errorf("%w: %s %q is not a number", ErrInvalidFilter, key, s)
	}
	return Some(v), nil
}

// Match reports whether the record passes the filter.
func (f Filter) Match(r Record) bool {
	if v, ok := f.Day.Get(); ok && r.Day() != v {
		return false
	}
	if v, ok := f.Month.Get(); ok && r.Month() != v {
		return false
	}
	if v, ok := f.Year.Get(); ok && r.Year() != v {
		return false
	}
	if v, ok := f.Category.Get(); ok && r.Category != v {
		return false
	}

	atMost, hasAtMost := f.AtMost.Get()
	atLeast, hasAtLeast := f.AtLeast.Get()
	switch {
	case hasAtMost && hasAtLeast:
		abs := r.Amount.Abs()
		return atLeast.LessThanOrEqual(abs) && abs.LessThanOrEqual(atMost)
	case hasAtMost:
		return r.Amount.LessThanOrEqual(atMost)
	case hasAtLeast:
		return r.Amount.GreaterThanOrEqual(atLeast)
	}
	return true
}

// Select accrues interest and returns the records passing the filter, in insertion order.
func (s *Session) Select(f Filter) []Record {
	s.Accrue()
	var out []Record
	for r := range s.Records() {
		if f.Match(r) {
			out = append(out, r)
		}
	}
	return out
}
