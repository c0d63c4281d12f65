package payment

import (
	"context"
	"time"

	domain "gymdesk/internal/domain/payment"
)

// Store persists the append-only payment log. There is no update or delete:
// payment records are immutable once written.
type Store interface {
	Append(ctx context.Context, value domain.Payment) error
	ListInRange(ctx context.Context, start, end time.Time) ([]domain.Payment, error)
	ListByMemberID(ctx context.Context, memberID string) ([]domain.Payment, error)
}
