// The date token is the only part of a log line the search interprets.
// Date carries a calendar day with no time component; its canonical
// string form (YYYY-MM-DD) doubles as the byte prefix every matching
// line must start with, so matching is a plain prefix comparison with
// no per-line parsing.
package logslice

import (
	"fmt"
	"time"
)

// Date is a calendar date, the sole query key for an extraction.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseDate parses a date in strict YYYY-MM-DD form. Anything else —
// wrong separator, out-of-range day, trailing garbage — wraps
// ErrInvalidDate.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

// String returns the canonical YYYY-MM-DD form.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// prefix is the byte sequence a matching log line begins with.
func (d Date) prefix() []byte {
	return []byte(d.String())
}

// daysFrom returns the number of whole days from January 1 of year to d.
// Negative when d predates the reference year; the estimator accepts
// both signs unclamped.
func (d Date) daysFrom(year int) int {
	t := time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
	ref := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return int(t.Sub(ref) / (24 * time.Hour))
}
