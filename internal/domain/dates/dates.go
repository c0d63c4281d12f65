package dates

import (
	"errors"
	"time"
)

// Domain errors.
var (
	ErrInvalidDate  = errors.New("date string matches no supported format")
	ErrInvalidRange = errors.New("custom range requires both start and end dates")
)

// ExportLayout is the date layout used for roster export (dd-MMM-yy).
const ExportLayout = "02-Jan-06"

// flexibleLayouts are tried in order by ParseFlexible. Order matters:
// earlier layouts win on ambiguous input.
var flexibleLayouts = []string{
	ExportLayout, // 05-Mar-24
	"02/01/2006", // 05/03/2024
	"02-01-2006", // 05-03-2024
}

// StartOfDay normalizes t to 00:00:00.000 of its calendar day in t's location.
// PRE: none
// POST: returned time is on the same calendar day as t with zero clock
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay normalizes t to the last representable instant of its calendar day.
// PRE: none
// POST: returned time is 23:59:59.999999999 of t's calendar day
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// AddMonths performs calendar-aware month addition with day-of-month clamping.
// Go's time.AddDate normalizes an overflowing day into the next month
// (Jan 31 + 1 month = Mar 3), which is not what a membership expiry needs:
// Jan 31 + 1 month must land on the last valid day of February.
// PRE: none
// POST: result's day-of-month is min(t.Day(), last day of target month)
func AddMonths(t time.Time, n int) time.Time {
	year, month, day := t.Date()
	firstOfTarget := time.Date(year, month+time.Month(n), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	lastDay := daysIn(firstOfTarget.Year(), firstOfTarget.Month())
	if day > lastDay {
		day = lastDay
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// DaysBetween returns the whole-day count from a to b, measured between the
// calendar day starts of the two instants so DST transitions don't skew the
// count. Negative when b is before a; callers clamp with max(0, ...) where a
// non-negative display is required.
// PRE: a and b are in comparable locations
// POST: DaysBetween(a, a.AddDate(0,0,n)) == n for any calendar day a
func DaysBetween(a, b time.Time) int {
	dayA := StartOfDay(a)
	dayB := StartOfDay(b)
	hours := dayB.Sub(dayA).Hours()
	// Round absorbs the +/-1h a DST boundary introduces.
	if hours < 0 {
		return int(hours/24 - 0.5)
	}
	return int(hours/24 + 0.5)
}

// ParseFlexible attempts the supported roster date layouts in priority order
// and returns the first successful parse.
// PRE: none
// POST: returns ErrInvalidDate when no layout matches
func ParseFlexible(s string) (time.Time, error) {
	for _, layout := range flexibleLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidDate
}

func daysIn(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
