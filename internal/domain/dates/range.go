package dates

import "time"

// Preset names for quick reporting ranges.
const (
	PresetToday     = "today"
	PresetYesterday = "yesterday"
	PresetThisWeek  = "this_week"
	PresetLastWeek  = "last_week"
	PresetThisMonth = "this_month"
	PresetLastMonth = "last_month"
	PresetCustom    = "custom"
)

// Range is a half-open [Start, End) interval.
type Range struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the half-open interval.
func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.Start) && t.Before(r.End)
}

// ResolveRange turns a preset name into a concrete [start, end) pair relative
// to now. Weeks start on Monday. For PresetCustom both bounds must be non-zero;
// a half-specified custom range is rejected rather than treated as unbounded.
// PRE: preset is one of the Preset constants
// POST: End is strictly after Start, or ErrInvalidRange is returned
func ResolveRange(preset string, now time.Time, customStart, customEnd time.Time) (Range, error) {
	today := StartOfDay(now)
	switch preset {
	case PresetToday:
		return Range{Start: today, End: today.AddDate(0, 0, 1)}, nil
	case PresetYesterday:
		return Range{Start: today.AddDate(0, 0, -1), End: today}, nil
	case PresetThisWeek:
		start := weekStart(today)
		return Range{Start: start, End: start.AddDate(0, 0, 7)}, nil
	case PresetLastWeek:
		start := weekStart(today).AddDate(0, 0, -7)
		return Range{Start: start, End: start.AddDate(0, 0, 7)}, nil
	case PresetThisMonth:
		start := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
		return Range{Start: start, End: start.AddDate(0, 1, 0)}, nil
	case PresetLastMonth:
		end := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
		return Range{Start: end.AddDate(0, -1, 0), End: end}, nil
	case PresetCustom:
		if customStart.IsZero() || customEnd.IsZero() {
			return Range{}, ErrInvalidRange
		}
		start := StartOfDay(customStart)
		end := StartOfDay(customEnd).AddDate(0, 0, 1)
		if !end.After(start) {
			return Range{}, ErrInvalidRange
		}
		return Range{Start: start, End: end}, nil
	default:
		return Range{}, ErrInvalidRange
	}
}

func weekStart(today time.Time) time.Time {
	offset := (int(today.Weekday()) + 6) % 7 // Monday=0 ... Sunday=6
	return today.AddDate(0, 0, -offset)
}
