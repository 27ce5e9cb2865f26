package domain

import (
	"context"
	"fmt"
	"time"
)

// Language is the output language of the generated meal plan.
type Language string

// Valid Language values. These are the only two supported; the prompt
// builder deterministically falls back to English for anything else.
const (
	LanguageEnglish Language = "English"
	LanguageSpanish Language = "Spanish"
)

// PlanPreferences carries the free-text constraints for the meal-plan
// prompt. Independent of MacroResult; both feed the prompt builder.
type PlanPreferences struct {
	Allergies      string   `json:"allergies"`
	Dislikes       string   `json:"dislikes"`
	PreferredStore string   `json:"preferredStore"`
	WeeklyBudget   float64  `json:"weeklyBudget"`
	Language       Language `json:"language"`
}

// Validate enforces the preference ranges. The free-text fields are
// optional and passed through verbatim.
func (p PlanPreferences) Validate() error {
	if p.WeeklyBudget < 10 || p.WeeklyBudget > 1000 {
		return fmt.Errorf("weekly budget must be between 10 and 1000")
	}
	if p.Language != LanguageEnglish && p.Language != LanguageSpanish {
		return fmt.Errorf("language must be %q or %q", LanguageEnglish, LanguageSpanish)
	}
	return nil
}

// PlanRecord is one generated meal plan kept in history so its PDF can be
// served after generation. The plan text is an opaque pass-through payload
// from the generator; nothing in it is parsed.
type PlanRecord struct {
	ID        string      `json:"id"`
	Title     string      `json:"title"`
	Language  Language    `json:"language"`
	Macros    MacroResult `json:"macros"`
	PlanText  string      `json:"planText"`
	CreatedAt time.Time   `json:"createdAt"`
}

// PlanGenerator is the port for the hosted text-generation service:
// prompt in, plan text or error out. Exactly one exchange per call.
type PlanGenerator interface {
	GeneratePlan(ctx context.Context, prompt string) (string, error)
}

// PlanRepository is the port for plan-history persistence.
type PlanRepository interface {
	SavePlan(ctx context.Context, rec PlanRecord) error
	GetPlan(ctx context.Context, id string) (*PlanRecord, error)
	ListRecentPlans(ctx context.Context, limit int) ([]PlanRecord, error)
}
