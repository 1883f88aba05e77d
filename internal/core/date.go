package core

import (
	"errors"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar day in yyyy-mm-dd form with no time component.
// Keeping the string form means lexicographic comparison is date-order
// correct, which the query engine relies on for sorting and range checks.
type Date string

// NewDate builds a Date from a wall-clock time, dropping the time of day.
func NewDate(t time.Time) Date {
	return Date(t.Format(dateLayout))
}

func (d Date) IsZero() bool {
	return d == ""
}

func (d Date) Validate() error {
	if d == "" {
		return errors.New("date cannot be empty")
	}
	if _, err := time.Parse(dateLayout, string(d)); err != nil {
		return err
	}
	return nil
}

// YearMonth returns the yyyy-mm prefix, or "" when the date is too short
// to carry one.
func (d Date) YearMonth() string {
	if len(d) < 7 {
		return ""
	}
	return string(d[:7])
}
