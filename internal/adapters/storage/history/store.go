package history

import (
	"context"

	domain "gymdesk/internal/domain/history"
)

// Store persists the append-only membership transaction log.
type Store interface {
	Append(ctx context.Context, value domain.Record) error
	ListByMemberID(ctx context.Context, memberID string) ([]domain.Record, error)
}
