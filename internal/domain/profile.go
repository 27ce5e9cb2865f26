// Package domain holds the core types, enumerations and ports of the
// meal-planning pipeline.
package domain

import "fmt"

// Sex selects the Mifflin-St Jeor constant term.
type Sex string

// Valid Sex values.
const (
	SexMale   Sex = "M"
	SexFemale Sex = "F"
)

// WeightSource selects which body weight the macro grams are sized from.
// It never affects RMR or TDEE.
type WeightSource string

// Valid WeightSource values.
const (
	WeightSourceCurrent WeightSource = "Current"
	WeightSourceGoal    WeightSource = "Goal"
)

// Intensity is the weight-loss pace, mapped to a fixed daily calorie deficit.
type Intensity string

// Valid Intensity values.
const (
	IntensityGentle     Intensity = "Gentle"
	IntensityModerate   Intensity = "Moderate"
	IntensityAggressive Intensity = "Aggressive"
)

// Profile describes one person for one calculation. Built fresh from each
// form submission, never mutated.
type Profile struct {
	Sex             Sex          `json:"sex"`
	AgeYears        int          `json:"ageYears"`
	HeightCM        float64      `json:"heightCm"`
	WeightCurrentKG float64      `json:"weightCurrentKg"`
	WeightGoalKG    float64      `json:"weightGoalKg"`
	WeightSource    WeightSource `json:"weightSource"`
}

// ActivitySettings holds the TDEE multiplier and the chosen deficit pace.
type ActivitySettings struct {
	ActivityFactor float64   `json:"activityFactor"`
	Intensity      Intensity `json:"intensity"`
}

// MacroRatios sizes protein and fat in grams per kilogram of the reference
// weight; carbohydrates absorb whatever calorie budget remains.
type MacroRatios struct {
	ProteinGPerKG float64 `json:"proteinGPerKg"`
	FatGPerKG     float64 `json:"fatGPerKg"`
}

// CalculationInput is the full numeric input of one submission, validated at
// the boundary before the calculator runs.
type CalculationInput struct {
	Profile  Profile          `json:"profile"`
	Activity ActivitySettings `json:"activity"`
	Ratios   MacroRatios      `json:"ratios"`
}

// Validate enforces the documented input ranges. It rejects out-of-range
// values rather than clamping them; the only clamp in the system is the
// 1200 kcal floor inside ComputeMacros, which is a domain rule.
func (in CalculationInput) Validate() error {
	p := in.Profile
	if p.Sex != SexMale && p.Sex != SexFemale {
		return fmt.Errorf("sex must be %q or %q", SexMale, SexFemale)
	}
	if p.AgeYears < 12 || p.AgeYears > 100 {
		return fmt.Errorf("age must be between 12 and 100 years")
	}
	if p.HeightCM < 120 || p.HeightCM > 230 {
		return fmt.Errorf("height must be between 120 and 230 cm")
	}
	if p.WeightCurrentKG < 30 || p.WeightCurrentKG > 300 {
		return fmt.Errorf("current weight must be between 30 and 300 kg")
	}
	if p.WeightGoalKG < 30 || p.WeightGoalKG > 300 {
		return fmt.Errorf("goal weight must be between 30 and 300 kg")
	}
	if p.WeightSource != WeightSourceCurrent && p.WeightSource != WeightSourceGoal {
		return fmt.Errorf("weight source must be %q or %q", WeightSourceCurrent, WeightSourceGoal)
	}
	a := in.Activity
	if a.ActivityFactor < 1.1 || a.ActivityFactor > 2.5 {
		return fmt.Errorf("activity factor must be between 1.1 and 2.5")
	}
	if _, ok := deficitKcal[a.Intensity]; !ok {
		return fmt.Errorf("intensity must be %q, %q or %q",
			IntensityGentle, IntensityModerate, IntensityAggressive)
	}
	r := in.Ratios
	if r.ProteinGPerKG < 0.8 || r.ProteinGPerKG > 2.5 {
		return fmt.Errorf("protein ratio must be between 0.8 and 2.5 g/kg")
	}
	if r.FatGPerKG < 0.3 || r.FatGPerKG > 1.5 {
		return fmt.Errorf("fat ratio must be between 0.3 and 1.5 g/kg")
	}
	return nil
}
