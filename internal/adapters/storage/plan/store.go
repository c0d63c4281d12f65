package plan

import (
	"context"

	domain "gymdesk/internal/domain/plan"
)

// Store persists Plan prices, keyed by duration label.
type Store interface {
	GetByName(ctx context.Context, name string) (domain.Plan, error)
	Save(ctx context.Context, value domain.Plan) error
	List(ctx context.Context) ([]domain.Plan, error)
}
