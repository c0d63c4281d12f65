package orchestrators

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"gymdesk/internal/domain/dates"
	"gymdesk/internal/domain/member"
	"gymdesk/internal/domain/plan"
)

// UpdateMemberInput carries an operator edit of an existing member.
// Zero-valued date fields leave the stored value untouched.
type UpdateMemberInput struct {
	MemberID   string
	Name       string
	Contact    string
	Gender     string
	Plan       string    // changing the plan recomputes the expiry from StartDate
	StartDate  time.Time // optional
	ExpiryDate time.Time // optional direct override; expiry is a stored, editable field
	Photo      string
}

// UpdateMemberDeps holds dependencies for UpdateMember.
type UpdateMemberDeps struct {
	MemberStore MemberStore
	PlanStore   PlanStore
}

// ExecuteUpdateMember applies an operator edit. A plan change recomputes the
// expiry through the same month-addition rule as registration; an explicit
// ExpiryDate override wins over the recomputation. The expiry is never
// recomputed when the plan is unchanged.
// PRE: MemberID exists
// POST: Member persisted with edited fields; ExpiryDate >= StartDate
func ExecuteUpdateMember(ctx context.Context, input UpdateMemberInput, deps UpdateMemberDeps) (member.Member, error) {
	m, err := deps.MemberStore.GetByID(ctx, input.MemberID)
	if err != nil {
		return member.Member{}, errors.New("member not found")
	}

	if input.Name != "" {
		m.Name = input.Name
	}
	if input.Contact != "" {
		m.Contact = input.Contact
	}
	if input.Gender != "" {
		m.Gender = input.Gender
	}
	if input.Photo != "" {
		m.Photo = input.Photo
	}
	if !input.StartDate.IsZero() {
		m.StartDate = input.StartDate
	}

	planChanged := input.Plan != "" && input.Plan != m.Plan
	if planChanged {
		months, err := plan.DurationMonths(input.Plan)
		if err != nil {
			return member.Member{}, err
		}
		p, err := deps.PlanStore.GetByName(ctx, input.Plan)
		if err != nil {
			return member.Member{}, err
		}
		m.Plan = input.Plan
		m.Price = p.Price
		m.FinalAmount = p.Price - m.Discount
		m.ExpiryDate = dates.AddMonths(m.StartDate, months)
	}
	if !input.ExpiryDate.IsZero() {
		m.ExpiryDate = input.ExpiryDate
	}

	if err := m.Validate(); err != nil {
		return member.Member{}, err
	}
	if err := deps.MemberStore.Save(ctx, m); err != nil {
		return member.Member{}, err
	}

	slog.Info("member_updated", "member_id", m.ID, "plan_changed", planChanged)
	return m, nil
}
