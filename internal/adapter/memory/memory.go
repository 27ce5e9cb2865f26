// Package memory implements an in-memory plan repository for development
// and testing.
package memory

import (
	"context"
	"sort"
	"sync"

	"mealplanner/internal/domain"
)

// DB implements in-memory plan-history storage.
type DB struct {
	mu    sync.Mutex
	plans map[string]domain.PlanRecord
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{plans: make(map[string]domain.PlanRecord)}
}

// Ensure the interface is met.
var _ domain.PlanRepository = (*DB)(nil)

// SavePlan stores a generated plan record.
func (db *DB) SavePlan(ctx context.Context, rec domain.PlanRecord) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.plans[rec.ID] = rec
	return nil
}

// GetPlan returns the plan with the given id, or nil when absent.
func (db *DB) GetPlan(ctx context.Context, id string) (*domain.PlanRecord, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	rec, ok := db.plans[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

// ListRecentPlans returns the most recently created plans up to limit.
func (db *DB) ListRecentPlans(ctx context.Context, limit int) ([]domain.PlanRecord, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	out := make([]domain.PlanRecord, 0, len(db.plans))
	for _, rec := range db.plans {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
