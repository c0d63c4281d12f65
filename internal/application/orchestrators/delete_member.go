package orchestrators

import (
	"context"
	"errors"
	"log/slog"
)

// DeleteMemberInput carries input for an explicit operator delete.
type DeleteMemberInput struct {
	MemberID string
}

// DeleteMemberDeps holds dependencies for DeleteMember.
type DeleteMemberDeps struct {
	MemberStore MemberStore
}

// ExecuteDeleteMember removes a member record. Payment, check-in and history
// logs are append-only and keep their rows for audit.
// PRE: MemberID exists
// POST: Member row removed
func ExecuteDeleteMember(ctx context.Context, input DeleteMemberInput, deps DeleteMemberDeps) error {
	m, err := deps.MemberStore.GetByID(ctx, input.MemberID)
	if err != nil {
		return errors.New("member not found")
	}
	if err := deps.MemberStore.Delete(ctx, m.ID); err != nil {
		return err
	}
	slog.Info("member_deleted", "member_id", m.ID, "name", m.Name)
	return nil
}
