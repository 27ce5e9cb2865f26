package domain

// Atwater energy densities, kcal per gram.
const (
	kcalPerGramProtein = 4
	kcalPerGramCarbs   = 4
	kcalPerGramFat     = 9
)

// targetKcalFloor is the hard safety bound on the daily calorie target.
// It is never bypassed, regardless of how aggressive the deficit is.
const targetKcalFloor = 1200

// deficitKcal maps a weight-loss intensity to its fixed daily calorie
// deficit. This table is the single source of truth for valid intensities;
// CalculationInput.Validate checks membership against it.
var deficitKcal = map[Intensity]float64{
	IntensityGentle:     250,
	IntensityModerate:   500,
	IntensityAggressive: 750,
}

// MacroResult is the computed energy and macro breakdown for one
// submission. Constructed once by ComputeMacros and never mutated.
type MacroResult struct {
	RMR        float64 `json:"rmr"`
	TDEE       float64 `json:"tdee"`
	TargetKcal float64 `json:"targetKcal"`
	ProteinG   float64 `json:"proteinG"`
	FatG       float64 `json:"fatG"`
	CarbsG     float64 `json:"carbsG"`
	ProteinPct float64 `json:"proteinPct"`
	FatPct     float64 `json:"fatPct"`
	CarbsPct   float64 `json:"carbsPct"`
}

// ComputeMacros calculates RMR, TDEE, the calorie target and the macro
// split using the Mifflin-St Jeor equation. Pure and total: it performs no
// I/O and never fails for numerically valid input; range validation is the
// caller's job.
//
// RMR and TDEE always use the current weight. The weight-source selector
// only switches the reference weight for protein/fat grams. The asymmetry
// is deliberate and preserved as-is.
func ComputeMacros(p Profile, a ActivitySettings, r MacroRatios) MacroResult {
	rmr := 10*p.WeightCurrentKG + 6.25*p.HeightCM - 5*float64(p.AgeYears)
	if p.Sex == SexMale {
		rmr += 5
	} else {
		rmr -= 161
	}

	tdee := rmr * a.ActivityFactor

	target := tdee - deficitKcal[a.Intensity]
	if target < targetKcalFloor {
		target = targetKcalFloor
	}

	refWeight := p.WeightCurrentKG
	if p.WeightSource == WeightSourceGoal {
		refWeight = p.WeightGoalKG
	}

	proteinG := refWeight * r.ProteinGPerKG
	fatG := refWeight * r.FatGPerKG

	kcalProtein := proteinG * kcalPerGramProtein
	kcalFat := fatG * kcalPerGramFat

	// Carbs absorb the remaining budget, clamped at zero: if protein and
	// fat already exceed the target they are not reduced.
	kcalCarbs := target - (kcalProtein + kcalFat)
	if kcalCarbs < 0 {
		kcalCarbs = 0
	}
	var carbsG float64
	if kcalCarbs > 0 {
		carbsG = kcalCarbs / kcalPerGramCarbs
	}

	// Unreachable given the floor, but guarded so a zero target can never
	// divide by zero.
	var proteinPct, fatPct, carbsPct float64
	if target > 0 {
		proteinPct = kcalProtein / target * 100
		fatPct = kcalFat / target * 100
		carbsPct = kcalCarbs / target * 100
	}

	return MacroResult{
		RMR:        rmr,
		TDEE:       tdee,
		TargetKcal: target,
		ProteinG:   proteinG,
		FatG:       fatG,
		CarbsG:     carbsG,
		ProteinPct: proteinPct,
		FatPct:     fatPct,
		CarbsPct:   carbsPct,
	}
}
