package member

import (
	"testing"
	"time"
)

var refNow = time.Date(2026, 3, 5, 14, 30, 0, 0, time.Local)

func day(offset int) time.Time {
	return time.Date(2026, 3, 5, 0, 0, 0, 0, time.Local).AddDate(0, 0, offset)
}

// TestClassify_Boundaries tests the status at each edge of the windows.
func TestClassify_Boundaries(t *testing.T) {
	cases := []struct {
		name       string
		expiry     time.Time
		wantStatus string
		wantDays   int
	}{
		{"yesterday_is_expired", day(-1), StatusExpired, 0},
		{"last_instant_before_today_is_expired", day(0).Add(-time.Nanosecond), StatusExpired, 0},
		{"today_start_expires_today", day(0), StatusExpiringSoon, 0},
		{"later_today_expires_today", day(0).Add(18 * time.Hour), StatusExpiringSoon, 0},
		{"tomorrow", day(1), StatusExpiringSoon, 1},
		{"seven_days_still_expiring_soon", day(7), StatusExpiringSoon, 7},
		{"eight_days_is_active", day(8), StatusActive, 8},
		{"far_future_is_active", day(90), StatusActive, 90},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Classify(tc.expiry, refNow)
			if got.Status != tc.wantStatus {
				t.Errorf("status=%s want %s", got.Status, tc.wantStatus)
			}
			if got.Status != StatusExpired && got.DaysRemaining != tc.wantDays {
				t.Errorf("daysRemaining=%d want %d", got.DaysRemaining, tc.wantDays)
			}
		})
	}
}

// TestClassify_DaysOverdue tests overdue counting for expired memberships.
func TestClassify_DaysOverdue(t *testing.T) {
	got := Classify(day(-10), refNow)
	if got.Status != StatusExpired {
		t.Fatalf("status=%s want expired", got.Status)
	}
	if got.DaysOverdue != 10 {
		t.Errorf("daysOverdue=%d want 10", got.DaysOverdue)
	}
	// Expiry late yesterday is still at least one day overdue.
	got = Classify(day(0).Add(-time.Hour), refNow)
	if got.DaysOverdue != 1 {
		t.Errorf("daysOverdue=%d want 1", got.DaysOverdue)
	}
}

// TestClassify_ExpiresToday tests the zero-day boundary used by message text.
func TestClassify_ExpiresToday(t *testing.T) {
	if !Classify(day(0), refNow).ExpiresToday() {
		t.Error("expiry at today start should report ExpiresToday")
	}
	if Classify(day(1), refNow).ExpiresToday() {
		t.Error("expiry tomorrow should not report ExpiresToday")
	}
	if Classify(day(-1), refNow).ExpiresToday() {
		t.Error("expired membership should not report ExpiresToday")
	}
}

// TestIsActive_InclusiveOfToday tests the dashboard active definition.
func TestIsActive_InclusiveOfToday(t *testing.T) {
	if !IsActive(day(0), refNow) {
		t.Error("expiry today counts as active")
	}
	if !IsActive(day(3), refNow) {
		t.Error("expiring soon counts as active")
	}
	if IsActive(day(-1), refNow) {
		t.Error("expiry yesterday is not active")
	}
}

// TestClassify_Idempotent tests that repeated evaluation of the same snapshot
// yields identical results.
func TestClassify_Idempotent(t *testing.T) {
	first := Classify(day(4), refNow)
	for i := 0; i < 3; i++ {
		if got := Classify(day(4), refNow); got != first {
			t.Fatalf("classification changed on re-evaluation: %+v vs %+v", got, first)
		}
	}
}
