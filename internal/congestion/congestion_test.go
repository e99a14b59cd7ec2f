package congestion

import (
	"testing"

	"github.com/orbitalcompute/ocse/internal/model"
)

func TestAssessDominantShellIsLargestOccupancy(t *testing.T) {
	res := Assess(CongestionRequest{
		Occupancy:       model.ShellCounts{Low: 100, Mid: 9000, SunSync: 50},
		LaunchCostPerKg: 200,
	})
	if res.DominantShell != model.ShellMidLEO {
		t.Errorf("dominant shell = %v, want mid", res.DominantShell)
	}
}

func TestAssessConjunctionRateGrowsWithUtilization(t *testing.T) {
	low := Assess(CongestionRequest{Occupancy: model.ShellCounts{Low: 100}, LaunchCostPerKg: 200})
	high := Assess(CongestionRequest{Occupancy: model.ShellCounts{Low: 10000}, LaunchCostPerKg: 200})
	if high.ConjunctionRate <= low.ConjunctionRate {
		t.Errorf("higher occupancy should raise conjunction rate: low=%v high=%v", low.ConjunctionRate, high.ConjunctionRate)
	}
}

func TestAssessDebrisDecaysWithoutNewFailures(t *testing.T) {
	res := Assess(CongestionRequest{
		Occupancy:        model.ShellCounts{Low: 100},
		PriorDebris:      1000,
		FailuresThisYear: 0,
		LaunchCostPerKg:  200,
	})
	if res.AccumulatedDebris >= 1000 {
		t.Errorf("debris should decay when there are no new failures: got %v", res.AccumulatedDebris)
	}
}

func TestAssessCollisionProbabilityBounded(t *testing.T) {
	res := Assess(CongestionRequest{
		Occupancy:        model.ShellCounts{Low: 1000000},
		PriorDebris:      1e12,
		FailuresThisYear: 1000000,
		LaunchCostPerKg:  200,
	})
	if res.CollisionProbability > 1 || res.CollisionProbability < 0 {
		t.Errorf("collision probability out of bounds: %v", res.CollisionProbability)
	}
}
