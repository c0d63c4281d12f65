package orchestrators

import (
	"context"
	"errors"
	"log/slog"

	"gymdesk/internal/domain/checkin"
	"gymdesk/internal/domain/member"
)

// CheckInStore defines the append-only visit log interface.
type CheckInStore interface {
	Append(ctx context.Context, c checkin.CheckIn) error
}

// CheckInMemberInput carries input for the check-in orchestrator.
type CheckInMemberInput struct {
	MemberID string
}

// CheckInMemberDeps holds dependencies for CheckInMember.
type CheckInMemberDeps struct {
	MemberStore  MemberStore
	CheckInStore CheckInStore
	GenerateID   func() string
}

// ExecuteCheckInMember records a gym visit. Expired members may still walk in
// (the front desk handles renewal); the expired status is logged so the
// operator sees it.
// PRE: MemberID exists
// POST: CheckIn record appended with the current timestamp
func ExecuteCheckInMember(ctx context.Context, input CheckInMemberInput, deps CheckInMemberDeps) error {
	if input.MemberID == "" {
		return errors.New("member must be selected")
	}

	m, err := deps.MemberStore.GetByID(ctx, input.MemberID)
	if err != nil {
		return errors.New("member not found")
	}

	now := timeNow()
	c := checkin.CheckIn{
		ID:          deps.GenerateID(),
		MemberID:    m.ID,
		CheckedInAt: now,
	}
	if err := c.Validate(); err != nil {
		return err
	}
	if err := deps.CheckInStore.Append(ctx, c); err != nil {
		return err
	}

	status := member.Classify(m.ExpiryDate, now).Status
	slog.Info("member_checked_in", "member_id", m.ID, "name", m.Name, "status", status)
	return nil
}
