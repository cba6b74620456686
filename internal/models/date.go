package models

import (
	"fmt"
	"time"
)

// dateLayout is the wire format for calendar dates.
const dateLayout = "2006-01-02"

// Date is a calendar date with no time-of-day component. Two dates on the
// same calendar day compare equal regardless of the clock or zone the
// underlying value was built with.
type Date struct {
	t time.Time
}

// NewDate builds a Date from calendar components.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates a time.Time to its calendar date.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(value string) (Date, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return DateOf(t), nil
}

// civil returns the date truncated to midnight UTC, the canonical form all
// comparisons run on.
func (d Date) civil() time.Time {
	return time.Date(d.t.Year(), d.t.Month(), d.t.Day(), 0, 0, 0, 0, time.UTC)
}

// Year returns the calendar year.
func (d Date) Year() int { return d.t.Year() }

// Month returns the calendar month.
func (d Date) Month() time.Month { return d.t.Month() }

// Day returns the day of the month.
func (d Date) Day() int { return d.t.Day() }

// IsZero reports whether the date is the zero value.
func (d Date) IsZero() bool { return d.t.IsZero() }

// Equal reports whether two dates fall on the same calendar day.
func (d Date) Equal(other Date) bool { return d.civil().Equal(other.civil()) }

// Before reports whether d falls on an earlier calendar day than other.
func (d Date) Before(other Date) bool { return d.civil().Before(other.civil()) }

// After reports whether d falls on a later calendar day than other.
func (d Date) After(other Date) bool { return d.civil().After(other.civil()) }

// Format renders the date with the given time layout.
func (d Date) Format(layout string) string { return d.civil().Format(layout) }

// String renders the date as YYYY-MM-DD.
func (d Date) String() string { return d.civil().Format(dateLayout) }

// MarshalJSON writes the date as a quoted YYYY-MM-DD string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON accepts a YYYY-MM-DD string, or a full RFC3339 timestamp for
// compatibility with snapshots written by the original browser client, which
// stored dates as Date.toISOString(). Timestamps are truncated to their UTC
// calendar date.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid date %s: expected a quoted string", s)
	}
	s = s[1 : len(s)-1]

	if t, err := time.Parse(dateLayout, s); err == nil {
		*d = DateOf(t)
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", s, err)
	}
	*d = DateOf(t.UTC())
	return nil
}
