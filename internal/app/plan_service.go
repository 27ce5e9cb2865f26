// Package app holds the application services and business logic.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"mealplanner/internal/domain"
)

// ErrPlanGeneration marks a failure of the external text-generation call.
// The wrapped error keeps the underlying detail for the user-facing message.
var ErrPlanGeneration = errors.New("meal plan generation failed")

// ErrInvalidInput marks an out-of-range or malformed submission, rejected
// before the calculator runs.
var ErrInvalidInput = errors.New("invalid input")

// ErrPlanNotFound indicates that no plan exists for the requested id.
var ErrPlanNotFound = errors.New("plan not found")

// PlanService runs the submission pipeline: compute macros, build the
// prompt, call the generator once, and keep the result in history.
type PlanService struct {
	gen  domain.PlanGenerator
	repo domain.PlanRepository
}

// NewPlanService creates a PlanService wired to the given generator and
// repository ports.
func NewPlanService(gen domain.PlanGenerator, repo domain.PlanRepository) *PlanService {
	return &PlanService{gen: gen, repo: repo}
}

// Calculate validates the input and computes the macro targets without
// touching the generator.
func (s *PlanService) Calculate(in domain.CalculationInput) (domain.MacroResult, error) {
	if err := in.Validate(); err != nil {
		return domain.MacroResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return domain.ComputeMacros(in.Profile, in.Activity, in.Ratios), nil
}

// GeneratePlan runs the full pipeline for one submission. Exactly one
// generator exchange, no retry. On generator failure the computed
// MacroResult is still returned alongside the error so the caller can keep
// displaying it.
func (s *PlanService) GeneratePlan(ctx context.Context, in domain.CalculationInput, prefs domain.PlanPreferences) (domain.MacroResult, *domain.PlanRecord, error) {
	if err := in.Validate(); err != nil {
		return domain.MacroResult{}, nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := prefs.Validate(); err != nil {
		return domain.MacroResult{}, nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	macros := domain.ComputeMacros(in.Profile, in.Activity, in.Ratios)

	prompt := BuildPrompt(macros, prefs)
	text, err := s.gen.GeneratePlan(ctx, prompt)
	if err != nil {
		return macros, nil, fmt.Errorf("%w: %v", ErrPlanGeneration, err)
	}

	rec := domain.PlanRecord{
		ID:        uuid.NewString(),
		Title:     planTitle(prefs.Language),
		Language:  prefs.Language,
		Macros:    macros,
		PlanText:  text,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.SavePlan(ctx, rec); err != nil {
		return macros, nil, fmt.Errorf("save plan: %w", err)
	}
	return macros, &rec, nil
}

// PlanByID returns a stored plan, or ErrPlanNotFound.
func (s *PlanService) PlanByID(ctx context.Context, id string) (*domain.PlanRecord, error) {
	rec, err := s.repo.GetPlan(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, ErrPlanNotFound
	}
	return rec, nil
}

// RecentPlans returns the most recently generated plans up to limit.
func (s *PlanService) RecentPlans(ctx context.Context, limit int) ([]domain.PlanRecord, error) {
	return s.repo.ListRecentPlans(ctx, limit)
}

func planTitle(lang domain.Language) string {
	if lang == domain.LanguageSpanish {
		return "Meal Plan (Spanish)"
	}
	return "Meal Plan (English)"
}
