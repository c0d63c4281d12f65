package member

import (
	"time"

	"gymdesk/internal/domain/dates"
)

// Status of a membership relative to a reference instant.
const (
	StatusActive       = "active"
	StatusExpiringSoon = "expiring_soon"
	StatusExpired      = "expired"
)

// ExpiringSoonWindowDays is the far edge of the expiring-soon window,
// inclusive: a membership expiring today through seven days from today is
// "expiring soon". Every call site uses this single definition.
const ExpiringSoonWindowDays = 7

// Classification is the derived lifecycle state for one membership snapshot.
type Classification struct {
	Status        string
	DaysRemaining int // valid when Status != StatusExpired, always >= 0
	DaysOverdue   int // valid when Status == StatusExpired, always >= 1
}

// ExpiresToday reports the load-bearing zero boundary: an expiring-soon
// membership with no whole days left. Message text renders this as
// "expires today" rather than a day count.
func (c Classification) ExpiresToday() bool {
	return c.Status == StatusExpiringSoon && c.DaysRemaining == 0
}

// Classify derives the lifecycle status of a membership from its expiry
// timestamp and a reference now. Pure and deterministic: no clock reads,
// no persisted state, safe to re-evaluate on every snapshot.
// PRE: none
// POST: Expired iff expiry < StartOfDay(now); ExpiringSoon iff
// 0 <= days remaining <= ExpiringSoonWindowDays; Active otherwise
func Classify(expiry, now time.Time) Classification {
	todayStart := dates.StartOfDay(now)
	if expiry.Before(todayStart) {
		overdue := dates.DaysBetween(expiry, todayStart)
		if overdue < 1 {
			overdue = 1
		}
		return Classification{Status: StatusExpired, DaysOverdue: overdue}
	}
	remaining := dates.DaysBetween(todayStart, expiry)
	if remaining < 0 {
		remaining = 0
	}
	if remaining <= ExpiringSoonWindowDays {
		return Classification{Status: StatusExpiringSoon, DaysRemaining: remaining}
	}
	return Classification{Status: StatusActive, DaysRemaining: remaining}
}

// IsActive reports the dashboard definition of "active": any non-expired
// membership, inclusive of the expiring-soon subset.
func IsActive(expiry, now time.Time) bool {
	return !expiry.Before(dates.StartOfDay(now))
}
