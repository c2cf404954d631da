package types

import (
	"fmt"
	"time"
)

// Date is a calendar date without a time component. Expense dates and
// the streak check marker use it in the YYYY-MM-DD format.
type Date time.Time

// NewDate returns a new Date.
func NewDate(year int, month time.Month, day int) Date {
	return Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the Date on which a time occurs in that time's location.
func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// ParseDate parses a string in RFC3339 full-date format.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, err
	}

	return DateOf(t), nil
}

// String returns the date formatted as YYYY-MM-DD.
func (d Date) String() string {
	year, month, day := time.Time(d).Date()
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// MarshalText implements the encoding.TextMarshaler interface.
// The zero value marshals to an empty string, which stands for
// "never set" in the persisted record.
func (d Date) MarshalText() ([]byte, error) {
	if d.IsZero() {
		return []byte{}, nil
	}

	return []byte(d.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (d *Date) UnmarshalText(data []byte) error {
	if len(data) == 0 {
		return nil
	}

	date, err := ParseDate(string(data))
	if err != nil {
		return err
	}

	*d = date
	return nil
}

// Month returns the month partition the date belongs to.
func (d Date) Month() Month {
	return MonthOf(time.Time(d))
}

// IsZero reports if the date is the zero value.
func (d Date) IsZero() bool {
	return time.Time(d).IsZero()
}

// AddDays adds a number of days and returns the resulting date.
func (d Date) AddDays(days int) Date {
	return Date(time.Time(d).AddDate(0, 0, days))
}

// Equal reports whether d and e represent the same calendar day.
func (d Date) Equal(e Date) bool {
	return d.String() == e.String()
}

// Before reports whether the date d is before e.
func (d Date) Before(e Date) bool {
	return time.Time(d).Before(time.Time(e))
}
