package curves

import "github.com/orbitalcompute/ocse/internal/model"

// ComputePerSatTFLOPs returns the nominal per-satellite compute throughput
// for a given year and scenario, derived from the power curve and the
// scenario's technology growth rate compounded from the base year.
func ComputePerSatTFLOPs(year int, params model.ScenarioParams) float64 {
	powerKW := PowerPerSatKW(year)
	techFactor := TechProgressFactor(year, params)
	const baseTFLOPsPerKW = 4.2 // base-year compute density
	return powerKW * baseTFLOPsPerKW * techFactor
}

// TechProgressFactor compounds the scenario's annual technology growth rate
// from the base year (2025) through the given year. Years before the base
// year return 1.0.
func TechProgressFactor(year int, params model.ScenarioParams) float64 {
	const baseYear = 2025
	if year <= baseYear {
		return 1.0
	}
	factor := 1.0
	for y := baseYear + 1; y <= year; y++ {
		factor *= params.TechGrowthPerYear
	}
	return factor
}

// ClassBShare returns the fraction of new launches that are Class-B, zero
// before the scenario's ClassBAvailableFrom year and ramping linearly to
// 0.30 over the five years after availability.
func ClassBShare(year int, params model.ScenarioParams) float64 {
	if year < params.ClassBAvailableFrom {
		return 0
	}
	const rampYears = 5
	const matureShare = 0.30
	yearsSinceAvailable := float64(year - params.ClassBAvailableFrom)
	if yearsSinceAvailable >= rampYears {
		return matureShare
	}
	return matureShare * (yearsSinceAvailable / rampYears)
}

// StrategyGrowthMultiplier scales launch cadence or deployment intensity
// based on the plan's launch strategy: heavy overshoots the base cadence,
// light undershoots it, medium is neutral.
func StrategyGrowthMultiplier(strategy model.LaunchStrategy) float64 {
	switch strategy {
	case model.LaunchHeavy:
		return 1.4
	case model.LaunchLight:
		return 0.65
	default:
		return 1.0
	}
}
