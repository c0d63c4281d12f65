package projections

import (
	"context"
	"time"

	domainCheckin "gymdesk/internal/domain/checkin"
	domainMember "gymdesk/internal/domain/member"
	domainPayment "gymdesk/internal/domain/payment"
)

// fixedNow pins the projection clock: Thursday, 5 March 2026.
var fixedNow = time.Date(2026, 3, 5, 11, 0, 0, 0, time.Local)

func stubClock() func() {
	orig := timeNow
	timeNow = func() time.Time { return fixedNow }
	return func() { timeNow = orig }
}

type mockMemberStore struct {
	members []domainMember.Member
	listErr error
}

// List returns the seeded snapshot in order.
// PRE: none
// POST: returns the seeded members or listErr
func (s *mockMemberStore) List(_ context.Context) ([]domainMember.Member, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.members, nil
}

type mockPaymentStore struct {
	payments []domainPayment.Payment
}

// ListInRange returns seeded payments with PaidAt in [start, end).
// PRE: end is after start
// POST: every returned payment falls in the half-open window
func (s *mockPaymentStore) ListInRange(_ context.Context, start, end time.Time) ([]domainPayment.Payment, error) {
	var out []domainPayment.Payment
	for _, p := range s.payments {
		if !p.PaidAt.Before(start) && p.PaidAt.Before(end) {
			out = append(out, p)
		}
	}
	return out, nil
}

type mockCheckInStore struct {
	checkIns []domainCheckin.CheckIn
}

// CountSince counts seeded check-ins at or after cutoff.
// PRE: none
// POST: result >= 0
func (s *mockCheckInStore) CountSince(_ context.Context, cutoff time.Time) (int, error) {
	n := 0
	for _, c := range s.checkIns {
		if !c.CheckedInAt.Before(cutoff) {
			n++
		}
	}
	return n, nil
}
