package curves

import "github.com/orbitalcompute/ocse/internal/model"

// OrbitAllocationShares returns the target Class-A shell split for a given
// compute strategy, normalized to sum to 1. LATENCY tilts toward low-LEO,
// COST tilts toward sun-synchronous (cheaper, denser shells), CARBON adds
// 0.20 to sun-synchronous before normalizing, and BALANCED uses the
// untilted baseline split.
func OrbitAllocationShares(strategy model.ComputeStrategy) model.ShellShares {
	shares := model.ShellShares{
		Low:     orbitAllocationBase["low"],
		Mid:     orbitAllocationBase["mid"],
		SunSync: orbitAllocationBase["sunSync"],
	}
	switch strategy {
	case model.StrategyLatency:
		shares.Low += 0.15
		shares.SunSync -= 0.15
	case model.StrategyCost:
		shares.SunSync += 0.15
		shares.Low -= 0.15
	case model.StrategyCarbon:
		shares.SunSync += 0.20
	}
	return shares.Normalize()
}

// LaunchCostPerKg returns the per-kilogram launch cost for a given year and
// scenario: the scenario's base cost compounded down by its annual decline
// rate from the base year (2025).
func LaunchCostPerKg(year int, params model.ScenarioParams) float64 {
	const baseYear = 2025
	if year <= baseYear {
		return params.BaseLaunchCostPerKg
	}
	cost := params.BaseLaunchCostPerKg
	for y := baseYear + 1; y <= year; y++ {
		cost *= params.LaunchCostDeclinePerYear
	}
	return cost
}

// BatterySpec returns the tabulated battery density and cost for a year.
func BatterySpec(year int) model.BatterySpec {
	return model.BatterySpec{
		DensityWhPerKg: interpolate(batteryDensityTable, year),
		CostPerKWh:     interpolate(batteryCostTable, year),
	}
}

// RadiationModel returns the radiation/ECC overhead parameters for a given
// year and orbital shell. TID and proton flux scale with both the per-shell
// altitude multiplier and a mild secular increase from solar-cycle drift.
func RadiationModel(year int, shell model.OrbitalShell) model.RadiationParams {
	multiplier, ok := radiationByShell[string(shell)]
	if !ok {
		multiplier = 1.0
	}
	const baseYear = 2025
	yearsElapsed := float64(year - baseYear)
	if yearsElapsed < 0 {
		yearsElapsed = 0
	}
	secularDrift := 1.0 + 0.01*yearsElapsed

	return model.RadiationParams{
		ECCOverhead:        baseRadiation.eccOverhead,
		RedundancyOverhead: baseRadiation.redundancyOverhead,
		MTBFReduction:      baseRadiation.mtbfReduction,
		AltitudeMultiplier: multiplier,
		TIDPerYear:         baseRadiation.tidPerYearBase * multiplier * secularDrift,
		ProtonFluxRelative: baseRadiation.protonFluxBase * multiplier,
	}
}

// shellLatencyMs is the one-way propagation + relay latency for a shell,
// lowest in low-LEO (closest to ground) and highest in sun-synchronous
// (farthest relay hops to reach a ground station in view).
var shellLatencyMs = map[model.OrbitalShell]float64{
	model.ShellLowLEO:  6,
	model.ShellMidLEO:  14,
	model.ShellSunSync: 22,
}

// OrbitLatencyMs is the share-weighted average orbit latency for a given
// shell allocation, used to compute the blended latency shown in economics.
func OrbitLatencyMs(shares model.ShellShares) float64 {
	return shares.Low*shellLatencyMs[model.ShellLowLEO] +
		shares.Mid*shellLatencyMs[model.ShellMidLEO] +
		shares.SunSync*shellLatencyMs[model.ShellSunSync]
}

// ShellCapacity returns the saturation satellite count for a shell, beyond
// which the congestion model's conjunction rate accelerates superlinearly.
// Sun-sync is the tightest (single local-time band), low-LEO the loosest.
func ShellCapacity(shell model.OrbitalShell) int {
	switch shell {
	case model.ShellLowLEO:
		return 14000
	case model.ShellMidLEO:
		return 9000
	case model.ShellSunSync:
		return 5000
	default:
		return 2000
	}
}
