package projections

import (
	"context"

	"gymdesk/internal/domain/dates"
	"gymdesk/internal/domain/member"
)

// GetDashboardResult carries the front-desk overview numbers.
type GetDashboardResult struct {
	TotalMembers    int
	ActiveCount     int
	ExpiringCount   int
	ExpiredCount    int
	TotalDue        float64 // positive magnitude owed to the gym
	TotalAdvance    float64
	CheckInsToday   int
	CollectionToday float64 // all payments received today
}

// GetDashboardDeps holds dependencies for the dashboard projection.
type GetDashboardDeps struct {
	MemberStore  MemberStore
	PaymentStore PaymentStore
	CheckInStore CheckInStore
}

// QueryGetDashboard computes the landing-page counters from the current
// snapshot. Expiring-soon members are counted separately and also inside the
// active total kept by the analytics view; here the three statuses partition
// the membership.
// PRE: none
// POST: ActiveCount + ExpiringCount + ExpiredCount == TotalMembers
func QueryGetDashboard(ctx context.Context, deps GetDashboardDeps) (GetDashboardResult, error) {
	members, err := deps.MemberStore.List(ctx)
	if err != nil {
		return GetDashboardResult{}, err
	}

	now := timeNow()
	result := GetDashboardResult{TotalMembers: len(members)}
	for _, m := range members {
		switch member.Classify(m.ExpiryDate, now).Status {
		case member.StatusExpired:
			result.ExpiredCount++
		case member.StatusExpiringSoon:
			result.ExpiringCount++
		default:
			result.ActiveCount++
		}
	}
	result.TotalDue = member.TotalDue(members)
	result.TotalAdvance = member.TotalAdvance(members)

	today := dates.StartOfDay(now)
	result.CheckInsToday, err = deps.CheckInStore.CountSince(ctx, today)
	if err != nil {
		return GetDashboardResult{}, err
	}

	payments, err := deps.PaymentStore.ListInRange(ctx, today, today.AddDate(0, 0, 1))
	if err != nil {
		return GetDashboardResult{}, err
	}
	for _, p := range payments {
		result.CollectionToday += p.Amount
	}
	return result, nil
}
