// Package congestion implements the orbital congestion and debris model of
// spec §4.7: per-shell utilization, quadratic conjunction rate, decayed
// accumulated debris, and the resulting cost adder.
package congestion

import (
	"math"

	"github.com/orbitalcompute/ocse/internal/curves"
	"github.com/orbitalcompute/ocse/internal/model"
)

const (
	litFraction       = 0.70
	debrisDecayPerYear = 0.92
	downtimeValuePerHourUSD = 50000.0
)

// CongestionRequest bundles the per-year per-shell occupancy and history
// needed to assess congestion.
type CongestionRequest struct {
	Occupancy        model.ShellCounts
	PriorDebris      float64
	FailuresThisYear int
	LaunchCostPerKg  float64
}

// Assess computes this year's congestion and debris state.
func Assess(req CongestionRequest) model.CongestionResult {
	dominantShell, utilization := dominantOccupiedShell(req.Occupancy)

	conjunctionRate := utilization * utilization * 10.0 // quadratic in utilization

	debris := req.PriorDebris*debrisDecayPerYear + float64(req.FailuresThisYear)
	collisionProbability := clamp01(debris * utilization / 1e6)

	costAdder := conjunctionRate*downtimeValuePerHourUSD*24 + collisionProbability*req.LaunchCostPerKg*1000

	return model.CongestionResult{
		DominantShell:          dominantShell,
		ShellUtilization:       utilization,
		ConjunctionRate:        conjunctionRate,
		AccumulatedDebris:      debris,
		CollisionProbability:   collisionProbability,
		CongestionCostAdderUSD: costAdder,
	}
}

// dominantOccupiedShell returns the most-occupied shell by count and its
// utilization against that shell's tabulated capacity.
func dominantOccupiedShell(occupancy model.ShellCounts) (model.OrbitalShell, float64) {
	shell := model.ShellLowLEO
	count := occupancy.Low
	if occupancy.Mid > count {
		shell, count = model.ShellMidLEO, occupancy.Mid
	}
	if occupancy.SunSync > count {
		shell, count = model.ShellSunSync, occupancy.SunSync
	}

	capacity := float64(curves.ShellCapacity(shell)) * litFraction
	utilization := 0.0
	if capacity > 0 {
		utilization = float64(count) / capacity
	}
	return shell, utilization
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return math.Min(v, 1)
}
