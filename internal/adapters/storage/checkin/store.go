package checkin

import (
	"context"
	"time"

	domain "gymdesk/internal/domain/checkin"
)

// Store persists the append-only visit log.
type Store interface {
	Append(ctx context.Context, value domain.CheckIn) error
	ListByMemberID(ctx context.Context, memberID string) ([]domain.CheckIn, error)
	CountSince(ctx context.Context, cutoff time.Time) (int, error)
}
