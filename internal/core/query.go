package core

import (
	"sort"
	"strings"
)

type (
	// FilterSpec narrows which records are displayed or exported. It is
	// transient state, never persisted. Zero values mean "no constraint".
	FilterSpec struct {
		Search   string
		Category Category // empty = all categories
		From     Date     // inclusive lower bound, empty = unbounded
		To       Date     // inclusive upper bound, empty = unbounded
	}

	// CategoryTotal pairs a category with its summed spending.
	CategoryTotal struct {
		Category Category
		Total    Money
	}
)

// Matches reports whether the record passes every constraint in the spec.
func (s FilterSpec) Matches(r Record) bool {
	if s.Category != "" && r.Category != s.Category {
		return false
	}
	if q := strings.ToLower(strings.TrimSpace(s.Search)); q != "" {
		if !strings.Contains(strings.ToLower(r.Description), q) {
			return false
		}
	}
	if !s.From.IsZero() && r.Date < s.From {
		return false
	}
	if !s.To.IsZero() && r.Date > s.To {
		return false
	}
	return true
}

// Filtered returns the records passing the spec, newest date first. The
// sort is stable so same-day entries keep their collection order, which is
// newest-created-first since the mutator prepends. The input is never
// modified.
func Filtered(records []Record, spec FilterSpec) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if spec.Matches(r) {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	return out
}

// TotalsByCategory sums spending per category, one entry for every member
// of the enumeration in its fixed order, zero when nothing matched.
func TotalsByCategory(records []Record) []CategoryTotal {
	sums := make(map[Category]int64, len(categories))
	for _, r := range records {
		sums[r.Category] += r.Amount.Cents
	}
	out := make([]CategoryTotal, len(categories))
	for i, c := range categories {
		out[i] = CategoryTotal{Category: c, Total: Money{Cents: sums[c]}}
	}
	return out
}

// TotalSpent sums every amount in the collection.
func TotalSpent(records []Record) Money {
	var total Money
	for _, r := range records {
		total = total.Add(r.Amount)
	}
	return total
}

// MonthlySpent sums amounts for records whose date falls in the given
// yyyy-mm month.
func MonthlySpent(records []Record, yearMonth string) Money {
	var total Money
	for _, r := range records {
		if r.Date.YearMonth() == yearMonth {
			total = total.Add(r.Amount)
		}
	}
	return total
}

// TopCategory returns the entry with the largest total. Ties resolve to the
// earliest entry, so with totals in enumeration order an all-zero ledger
// still yields a deterministic answer (the first category).
func TopCategory(totals []CategoryTotal) CategoryTotal {
	if len(totals) == 0 {
		return CategoryTotal{}
	}
	top := totals[0]
	for _, t := range totals[1:] {
		if t.Total.Cents > top.Total.Cents {
			top = t
		}
	}
	return top
}
