package kpi

import (
	"fmt"
	"time"
)

// MonthStart truncates t to the first instant of its calendar month in UTC.
func MonthStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// ParseMonth accepts "YYYY-MM" or "YYYY-MM-DD" and returns the first day of
// that month in UTC.
func ParseMonth(s string) (time.Time, error) {
	for _, layout := range []string{"2006-01", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return MonthStart(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("parse month %q: want YYYY-MM or YYYY-MM-DD", s)
}

// MonthsBetween returns the number of whole calendar months from a to b.
// Both are truncated to month start first; a later a yields a negative count.
func MonthsBetween(a, b time.Time) int {
	a, b = MonthStart(a), MonthStart(b)
	return (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
}

// AddMonths returns the month start n calendar months after t.
func AddMonths(t time.Time, n int) time.Time {
	return MonthStart(t).AddDate(0, n, 0)
}

// FormatMonth renders a month as "YYYY-MM".
func FormatMonth(t time.Time) string {
	return t.UTC().Format("2006-01")
}
