// Package calendar holds the date arithmetic shared by the ledger, reports and
// savings plans. All dates are calendar days represented as UTC midnight.
package calendar

import (
	"strings"
	"time"
)

// Layouts accepted for user supplied dates, tried in order.
const (
	ISOLayout      = "2006-01-02"
	DayFirstLayout = "02.01.2006"
	MonthLayout    = "01.2006"
)

var inputLayouts = []string{ISOLayout, DayFirstLayout}

// ParseDate parses an ISO (YYYY-MM-DD) or day-first (DD.MM.YYYY) date.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range inputLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DateOf drops the clock part of t, keeping the calendar day as seen in t's location.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// MonthStart returns the first day of t's month.
func MonthStart(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}

// AddMonths shifts a month start by n months.
func AddMonths(monthStart time.Time, n int) time.Time {
	return MonthStart(monthStart).AddDate(0, n, 0)
}

// WholeMonths counts the months a plan spans from a to b. A partial trailing
// month counts as a full one, and the result is never below 1.
func WholeMonths(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()

	months := (by-ay)*12 + int(bm-am)
	if bd-ad >= 0 {
		months++
	}
	if months < 1 {
		return 1
	}
	return months
}

// DaysBetween returns the number of calendar days from a to b (negative if b is before a).
func DaysBetween(a, b time.Time) int {
	return int(DateOf(b).Sub(DateOf(a)).Hours() / 24)
}

// MinDate returns the earlier of a and b.
func MinDate(a, b time.Time) time.Time {
	if b.Before(a) {
		return b
	}
	return a
}

// FormatDay renders a date as DD.MM.YYYY.
func FormatDay(t time.Time) string { return t.Format(DayFirstLayout) }

// FormatMonth renders a month as MM.YYYY.
func FormatMonth(t time.Time) string { return t.Format(MonthLayout) }

// FormatISO renders a date as YYYY-MM-DD.
func FormatISO(t time.Time) string { return t.Format(ISOLayout) }
