package orchestrators

import (
	"context"
	"log/slog"

	"gymdesk/internal/domain/plan"
)

// SeedPlanStore defines the plan persistence interface used by seeding.
type SeedPlanStore interface {
	GetByName(ctx context.Context, name string) (plan.Plan, error)
	Save(ctx context.Context, p plan.Plan) error
}

// SeedPlansDeps holds dependencies for the plan seeder.
type SeedPlansDeps struct {
	PlanStore SeedPlanStore
}

// ExecuteSeedPlans ensures the twelve canonical duration plans exist.
// Idempotent: existing plans keep their operator-set prices.
// PRE: store is reachable
// POST: every canonical label has a plan row
func ExecuteSeedPlans(ctx context.Context, deps SeedPlansDeps) error {
	created := 0
	for _, p := range plan.Defaults() {
		if _, err := deps.PlanStore.GetByName(ctx, p.Name); err == nil {
			continue
		}
		if err := deps.PlanStore.Save(ctx, p); err != nil {
			return err
		}
		created++
	}
	if created > 0 {
		slog.Info("plans_seeded", "created", created)
	}
	return nil
}
