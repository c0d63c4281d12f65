package member

import (
	"context"

	domain "gymdesk/internal/domain/member"
)

// Store persists Member state. The engine's projections operate on the
// snapshot returned by List; the store is the single writer.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Member, error)
	Save(ctx context.Context, value domain.Member) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Member, error)
}
