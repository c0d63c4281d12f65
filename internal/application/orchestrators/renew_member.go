package orchestrators

import (
	"context"
	"errors"
	"log/slog"

	"gymdesk/internal/domain/dates"
	"gymdesk/internal/domain/history"
	"gymdesk/internal/domain/member"
	"gymdesk/internal/domain/payment"
	"gymdesk/internal/domain/plan"
)

// RenewMemberInput carries input for a membership renewal.
type RenewMemberInput struct {
	MemberID   string
	Plan       string // duration label; may differ from the current plan
	Discount   float64
	AmountPaid float64
}

// RenewMemberDeps holds dependencies for RenewMember.
type RenewMemberDeps struct {
	MemberStore  MemberStore
	PlanStore    PlanStore
	PaymentStore PaymentStore
	HistoryStore HistoryStore
	GenerateID   func() string
}

// ExecuteRenewMember coordinates a plan renewal. A renewal while the current
// period is still running extends from the stored expiry; a lapsed membership
// restarts from today. Unpaid portions accumulate on the existing balance.
// PRE: MemberID exists; Plan names a seeded plan
// POST: Member's StartDate/ExpiryDate/Plan replaced via the month-addition
// rule; DueAdvance moved by AmountPaid - FinalAmount; payment and history
// records appended
func ExecuteRenewMember(ctx context.Context, input RenewMemberInput, deps RenewMemberDeps) (member.Member, error) {
	m, err := deps.MemberStore.GetByID(ctx, input.MemberID)
	if err != nil {
		return member.Member{}, errors.New("member not found")
	}

	months, err := plan.DurationMonths(input.Plan)
	if err != nil {
		return member.Member{}, err
	}
	p, err := deps.PlanStore.GetByName(ctx, input.Plan)
	if err != nil {
		return member.Member{}, err
	}
	if input.Discount < 0 || input.Discount > p.Price {
		return member.Member{}, errors.New("discount must be between zero and the plan price")
	}
	if input.AmountPaid < 0 {
		return member.Member{}, errors.New("amount paid cannot be negative")
	}

	now := timeNow()
	start := dates.StartOfDay(now)
	if member.IsActive(m.ExpiryDate, now) {
		// Unused days are not forfeited: the new period begins at the
		// stored expiry.
		start = m.ExpiryDate
	}

	finalAmount := p.Price - input.Discount
	m.Plan = input.Plan
	m.StartDate = start
	m.ExpiryDate = dates.AddMonths(start, months)
	m.Price = p.Price
	m.Discount = input.Discount
	m.FinalAmount = finalAmount
	m.DueAdvance += input.AmountPaid - finalAmount
	m.PurchaseDate = now

	if err := m.Validate(); err != nil {
		return member.Member{}, err
	}
	if err := deps.MemberStore.Save(ctx, m); err != nil {
		return member.Member{}, err
	}

	if input.AmountPaid > 0 {
		pay := payment.Payment{
			ID:       deps.GenerateID(),
			MemberID: m.ID,
			Amount:   input.AmountPaid,
			Type:     payment.TypePurchase,
			PaidAt:   now,
		}
		if err := deps.PaymentStore.Append(ctx, pay); err != nil {
			return member.Member{}, err
		}
	}

	rec := history.Record{
		ID:              deps.GenerateID(),
		MemberID:        m.ID,
		Plan:            m.Plan,
		StartDate:       m.StartDate,
		ExpiryDate:      m.ExpiryDate,
		FinalAmount:     m.FinalAmount,
		TransactionDate: now,
	}
	if err := deps.HistoryStore.Append(ctx, rec); err != nil {
		return member.Member{}, err
	}

	slog.Info("member_renewed",
		"member_id", m.ID,
		"plan", m.Plan,
		"expiry", m.ExpiryDate,
		"due_advance", m.DueAdvance,
	)

	return m, nil
}
