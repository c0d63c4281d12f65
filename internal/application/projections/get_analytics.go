package projections

import (
	"context"
	"sort"
	"time"

	"gymdesk/internal/domain/dates"
	"gymdesk/internal/domain/member"
	"gymdesk/internal/domain/payment"
)

// MonthBucket is one month's signup count. Label is the calendar month in
// "Jan 2026" form; Month carries the sortable key.
type MonthBucket struct {
	Month time.Time // first day of the month
	Label string
	Count int
}

// PlanCount is one plan's member count.
type PlanCount struct {
	Plan  string
	Count int
}

// MonthlySignups groups members by the calendar month they joined, using
// PurchaseDate when present and StartDate otherwise. Only months present in
// the data get a bucket; gaps are not zero-filled. Buckets are ordered
// chronologically.
// PRE: none
// POST: one bucket per distinct month; empty input yields an empty sequence
func MonthlySignups(members []member.Member) []MonthBucket {
	counts := make(map[time.Time]int)
	for _, m := range members {
		joined := m.PurchaseDate
		if joined.IsZero() {
			joined = m.StartDate
		}
		if joined.IsZero() {
			continue
		}
		key := time.Date(joined.Year(), joined.Month(), 1, 0, 0, 0, 0, joined.Location())
		counts[key]++
	}
	buckets := make([]MonthBucket, 0, len(counts))
	for month, n := range counts {
		buckets = append(buckets, MonthBucket{
			Month: month,
			Label: month.Format("Jan 2006"),
			Count: n,
		})
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Month.Before(buckets[j].Month) })
	return buckets
}

// PlanPopularity counts members per plan, ordered by first appearance in the
// snapshot so repeated runs over the same data stay stable.
// PRE: none
// POST: one entry per distinct plan name; empty input yields an empty sequence
func PlanPopularity(members []member.Member) []PlanCount {
	index := make(map[string]int)
	var counts []PlanCount
	for _, m := range members {
		i, ok := index[m.Plan]
		if !ok {
			i = len(counts)
			index[m.Plan] = i
			counts = append(counts, PlanCount{Plan: m.Plan})
		}
		counts[i].Count++
	}
	return counts
}

// ActiveVsExpired splits the snapshot on the lifecycle classifier's expired
// boundary. Expiring-soon members count as active, including an expiry that
// falls on the current day.
// PRE: none
// POST: active + expired == len(members)
func ActiveVsExpired(members []member.Member, now time.Time) (active, expired int) {
	for _, m := range members {
		if member.Classify(m.ExpiryDate, now).Status == member.StatusExpired {
			expired++
			continue
		}
		active++
	}
	return active, expired
}

// Revenue sums the payments whose timestamp falls in r. The range is
// half-open: a payment exactly at r.End is excluded.
// PRE: none
// POST: empty input yields zero
func Revenue(payments []payment.Payment, r dates.Range) float64 {
	var sum float64
	for _, p := range payments {
		if r.Contains(p.PaidAt) {
			sum += p.Amount
		}
	}
	return sum
}

// GetAnalyticsQuery carries query parameters. The revenue window is named by
// preset; Custom requires both bounds.
type GetAnalyticsQuery struct {
	RevenuePreset string // one of the dates.Preset constants
	CustomStart   time.Time
	CustomEnd     time.Time
}

// GetAnalyticsResult carries the aggregated view.
type GetAnalyticsResult struct {
	MonthlySignups []MonthBucket
	PlanPopularity []PlanCount
	ActiveCount    int
	ExpiredCount   int
	Revenue        float64
	RevenueRange   dates.Range
}

// GetAnalyticsDeps holds dependencies for GetAnalytics.
type GetAnalyticsDeps struct {
	MemberStore  MemberStore
	PaymentStore PaymentStore
}

// QueryGetAnalytics computes the aggregate view over the current snapshot.
// PRE: a Custom preset carries both bounds
// POST: totals over empty stores are zero, never an error
func QueryGetAnalytics(ctx context.Context, query GetAnalyticsQuery, deps GetAnalyticsDeps) (GetAnalyticsResult, error) {
	r, err := dates.ResolveRange(query.RevenuePreset, timeNow(), query.CustomStart, query.CustomEnd)
	if err != nil {
		return GetAnalyticsResult{}, err
	}

	members, err := deps.MemberStore.List(ctx)
	if err != nil {
		return GetAnalyticsResult{}, err
	}
	payments, err := deps.PaymentStore.ListInRange(ctx, r.Start, r.End)
	if err != nil {
		return GetAnalyticsResult{}, err
	}

	active, expired := ActiveVsExpired(members, timeNow())
	return GetAnalyticsResult{
		MonthlySignups: MonthlySignups(members),
		PlanPopularity: PlanPopularity(members),
		ActiveCount:    active,
		ExpiredCount:   expired,
		Revenue:        Revenue(payments, r),
		RevenueRange:   r,
	}, nil
}
