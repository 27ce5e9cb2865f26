package app

import (
	"fmt"
	"math"

	"mealplanner/internal/domain"
)

// Language directives for the generator. Exactly two variants exist; the
// builder falls back to English for any unrecognized value.
const (
	directiveEnglish = "IMPORTANT: Respond entirely in English. " +
		"Use a clear, patient-friendly style."
	directiveSpanish = "IMPORTANT: Responde TODO en español, incluyendo encabezados, etiquetas y descripciones. " +
		"Usa un estilo claro y fácil de entender para pacientes."
)

// Placeholders substituted for empty free-text constraint fields.
const (
	placeholderNone  = "none specified"
	placeholderStore = "generic US supermarket"
)

const promptTemplate = `%s

You are a registered dietitian and meal-planning assistant.

Create a 7-day meal plan (breakfast, lunch, dinner, and 1-2 snacks per day)
for a single adult based on the following macro targets:

- Daily calories: %.0f kcal
- Protein: %.0f g/day
- Carbohydrates: %.0f g/day
- Fats: %.0f g/day

CONSTRAINTS:
- Allergies / must AVOID: %s
- Foods to avoid / dislikes: %s
- Weekly grocery budget: $%.2f for all 7 days
- Preferred grocery store or market: %s
- Use foods that are realistically available at that store.
- Keep recipes simple and realistic for a busy person.
- Reuse ingredients across meals to save cost and reduce waste.
- Keep daily totals reasonably close to the macro targets.
- Assume typical adult portion sizes; you may approximate macros.

OUTPUT FORMAT (plain text, no markdown tables):
Day 1
- Breakfast: ...
  Approx: X kcal, P: Y g, C: Z g, F: W g
- Snack: ...
- Lunch: ...
- Snack: ...
- Dinner: ...

Repeat for Days 1-7.

At the end, include:
1) A rough estimated daily calorie and macro summary per day.
2) A rough estimated daily and weekly cost.
3) One combined grocery list grouped by category:
   - Produce
   - Protein
   - Dairy
   - Grains / Starches
   - Pantry
   - Frozen
   - Other.
`

// BuildPrompt assembles the generator instruction from the computed macros
// and the user's preferences. Pure string assembly: the output is advisory
// text for a generative model, not a machine-parsed grammar.
func BuildPrompt(m domain.MacroResult, prefs domain.PlanPreferences) string {
	return fmt.Sprintf(promptTemplate,
		languageDirective(prefs.Language),
		math.Round(m.TargetKcal),
		math.Round(m.ProteinG),
		math.Round(m.CarbsG),
		math.Round(m.FatG),
		orPlaceholder(prefs.Allergies, placeholderNone),
		orPlaceholder(prefs.Dislikes, placeholderNone),
		prefs.WeeklyBudget,
		orPlaceholder(prefs.PreferredStore, placeholderStore),
	)
}

func languageDirective(lang domain.Language) string {
	switch lang {
	case domain.LanguageSpanish:
		return directiveSpanish
	default:
		return directiveEnglish
	}
}

func orPlaceholder(s, placeholder string) string {
	if s == "" {
		return placeholder
	}
	return s
}
