package projections

import (
	"context"
	"time"

	domainMember "gymdesk/internal/domain/member"
	domainPayment "gymdesk/internal/domain/payment"
	domainPlan "gymdesk/internal/domain/plan"
)

// timeNow is swapped in tests to pin the projection clock.
var timeNow = time.Now

// MemberStore interface for member snapshot queries.
type MemberStore interface {
	List(ctx context.Context) ([]domainMember.Member, error)
}

// PaymentStore interface for payment window queries.
type PaymentStore interface {
	ListInRange(ctx context.Context, start, end time.Time) ([]domainPayment.Payment, error)
}

// CheckInStore interface for visit count queries.
type CheckInStore interface {
	CountSince(ctx context.Context, cutoff time.Time) (int, error)
}

// PlanStore interface for plan price queries.
type PlanStore interface {
	List(ctx context.Context) ([]domainPlan.Plan, error)
}
