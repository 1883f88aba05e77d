package core

import (
	"errors"
	"strings"
	"time"
)

const (
	CategoryFood           Category = "Food"
	CategoryTransportation Category = "Transportation"
	CategoryEntertainment  Category = "Entertainment"
	CategoryShopping       Category = "Shopping"
	CategoryBills          Category = "Bills"
	CategoryOther          Category = "Other"
)

// categories holds the closed enumeration in its fixed display order.
// Aggregation and tie-breaking both depend on this order.
var categories = []Category{
	CategoryFood,
	CategoryTransportation,
	CategoryEntertainment,
	CategoryShopping,
	CategoryBills,
	CategoryOther,
}

type (
	Category string

	// Record is one expense entry, the sole persisted entity.
	// ID and CreatedAt are assigned at creation and never change.
	Record struct {
		ID          string    `json:"id"`
		Description string    `json:"description"`
		Amount      Money     `json:"amount"`
		Category    Category  `json:"category"`
		Date        Date      `json:"date"`
		CreatedAt   time.Time `json:"createdAt"`
	}

	// Draft carries user-submitted fields before validation. Amount is the
	// raw input string so a failed parse can be reported as a validation
	// error rather than lost upstream.
	Draft struct {
		Description string
		Amount      string
		Category    Category
		Date        Date
	}
)

var (
	ErrEmptyDescription = errors.New("description cannot be empty")
	ErrMissingDate      = errors.New("a valid date is required")
	ErrInvalidAmount    = errors.New("amount must be a positive number")
)

// Categories returns the closed category enumeration in fixed order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// ParseCategory maps free text onto the enumeration, case-insensitively.
func ParseCategory(s string) (Category, bool) {
	s = strings.TrimSpace(s)
	for _, c := range categories {
		if strings.EqualFold(s, string(c)) {
			return c, true
		}
	}
	return CategoryOther, false
}

func (c Category) Valid() bool {
	for _, known := range categories {
		if c == known {
			return true
		}
	}
	return false
}

// Validate checks the draft in the order the form reports problems:
// description, date, amount. A malformed date string fails the same way
// as a missing one since neither can be stored.
func (d Draft) Validate() error {
	if strings.TrimSpace(d.Description) == "" {
		return ErrEmptyDescription
	}
	if err := d.Date.Validate(); err != nil {
		return ErrMissingDate
	}
	if _, err := ParseDecimalToCents(d.Amount); err != nil {
		return ErrInvalidAmount
	}
	return nil
}
