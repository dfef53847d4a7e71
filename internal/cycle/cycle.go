// Package cycle holds the calendar arithmetic for monthly billing cycles.
package cycle

import (
	"fmt"
	"time"
)

// MonthLayout is the wire format of a reference month.
const MonthLayout = "2006-01"

// DateLayout is the wire format of a calendar date.
const DateLayout = "2006-01-02"

// ParseMonth parses a YYYY-MM reference month into the first day of that month (UTC).
func ParseMonth(s string) (time.Time, error) {
	t, err := time.Parse(MonthLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month %q: expected YYYY-MM", s)
	}
	return t, nil
}

// FormatMonth formats t as YYYY-MM.
func FormatMonth(t time.Time) string {
	return t.Format(MonthLayout)
}

// MonthStart returns midnight UTC of the first day of t's month.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// MonthEnd returns the last instant of t's month.
func MonthEnd(t time.Time) time.Time {
	return MonthStart(t).AddDate(0, 1, 0).Add(-time.Nanosecond)
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DueDateInMonth returns the due date for dueDay inside the month of ref.
// Days past the end of the month clamp to its last day (31 → 30 Apr, 28/29 Feb).
func DueDateInMonth(ref time.Time, dueDay int) time.Time {
	if dueDay < 1 {
		dueDay = 1
	}
	last := DaysIn(ref.Year(), ref.Month())
	if dueDay > last {
		dueDay = last
	}
	return time.Date(ref.Year(), ref.Month(), dueDay, 0, 0, 0, 0, time.UTC)
}

// NextDueDate adds one calendar month to due and forces the template's due day.
// The month step is taken from the first of the month so 31 Jan never spills into March.
func NextDueDate(due time.Time, dueDay int) time.Time {
	next := MonthStart(due).AddDate(0, 1, 0)
	return DueDateInMonth(next, dueDay)
}

// DueDateOnOrAfter returns the due date in ref's month, rolled forward one
// month at a time while it still lies before today.
func DueDateOnOrAfter(ref, today time.Time, dueDay int) time.Time {
	due := DueDateInMonth(ref, dueDay)
	floor := Day(today)
	for due.Before(floor) {
		due = NextDueDate(due, dueDay)
	}
	return due
}

// Day truncates t to midnight UTC of its calendar day.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// PreviousMonth returns the first day of the month before ref.
func PreviousMonth(ref time.Time) time.Time {
	return MonthStart(ref).AddDate(0, -1, 0)
}
