package memory_test

import (
	"context"
	"testing"
	"time"

	"mealplanner/internal/adapter/memory"
	"mealplanner/internal/domain"
)

func record(id string, createdAt time.Time) domain.PlanRecord {
	return domain.PlanRecord{
		ID:        id,
		Title:     "Meal Plan (English)",
		Language:  domain.LanguageEnglish,
		Macros:    domain.MacroResult{TargetKcal: 1846.4375},
		PlanText:  "Day 1\n- Breakfast: oats",
		CreatedAt: createdAt,
	}
}

func TestSaveAndGetPlan(t *testing.T) {
	db := memory.New()
	ctx := context.Background()

	rec := record("a", time.Now())
	if err := db.SavePlan(ctx, rec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := db.GetPlan(ctx, "a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || got.PlanText != rec.PlanText {
		t.Fatalf("unexpected record: %+v", got)
	}
}

func TestGetPlan_Missing(t *testing.T) {
	db := memory.New()

	got, err := db.GetPlan(context.Background(), "nope")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for missing plan, got %+v", got)
	}
}

func TestListRecentPlans_OrderAndLimit(t *testing.T) {
	db := memory.New()
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for i, id := range []string{"old", "mid", "new"} {
		if err := db.SavePlan(ctx, record(id, base.Add(time.Duration(i)*time.Hour))); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	items, err := db.ListRecentPlans(ctx, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items; want 2", len(items))
	}
	if items[0].ID != "new" || items[1].ID != "mid" {
		t.Errorf("wrong order: %s, %s", items[0].ID, items[1].ID)
	}
}
