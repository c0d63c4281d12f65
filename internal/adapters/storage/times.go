package storage

import (
	"fmt"
	"time"
)

// FormatTime serializes a timestamp for a TEXT column.
func FormatTime(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}

// storedTimeLayouts covers the formats older database files carry.
var storedTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05.999999999 -0700 MST",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

// ParseTime deserializes a TEXT column timestamp written by any past build.
// PRE: value is non-empty
// POST: returns the parsed time or an error naming the unsupported format
func ParseTime(value string) (time.Time, error) {
	for _, layout := range storedTimeLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported time format: %q", value)
}
