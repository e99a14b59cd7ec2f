package curves

import (
	"testing"

	"github.com/orbitalcompute/ocse/internal/model"
)

func TestInterpolateClampsOutsideRange(t *testing.T) {
	table := []point{{2025, 10}, {2030, 20}}

	if got := interpolate(table, 2000); got != 10 {
		t.Errorf("below range: got %v, want 10", got)
	}
	if got := interpolate(table, 2050); got != 20 {
		t.Errorf("above range: got %v, want 20", got)
	}
}

func TestInterpolateMidpoint(t *testing.T) {
	table := []point{{2020, 0}, {2030, 100}}
	if got := interpolate(table, 2025); got != 50 {
		t.Errorf("midpoint: got %v, want 50", got)
	}
}

func TestLaunchCadenceMonotonic(t *testing.T) {
	prev := LaunchCadence(2025)
	for year := 2026; year <= 2040; year++ {
		cur := LaunchCadence(year)
		if cur < prev {
			t.Fatalf("launch cadence decreased at year %d: %d -> %d", year, prev, cur)
		}
		prev = cur
	}
}

func TestPowerPerSatKWEndpoints(t *testing.T) {
	if got := PowerPerSatKW(2025); got != 150 {
		t.Errorf("base year power: got %v, want 150", got)
	}
	if got := PowerPerSatKW(2040); got != 1000 {
		t.Errorf("2040 power: got %v, want 1000", got)
	}
	if got := PowerPerSatKW(2045); got != 1000 {
		t.Errorf("beyond-2040 power should clamp: got %v, want 1000", got)
	}
}

func TestLegacyPowerPerSatKWUnwiredButCorrect(t *testing.T) {
	if got := LegacyPowerPerSatKW(2025); got != 5 {
		t.Errorf("legacy base year: got %v, want 5", got)
	}
	if got := LegacyPowerPerSatKW(2040); got != 150 {
		t.Errorf("legacy 2040: got %v, want 150", got)
	}
}

func TestClassBShareZeroBeforeAvailability(t *testing.T) {
	params := model.BaselineParams()
	if got := ClassBShare(params.ClassBAvailableFrom-1, params); got != 0 {
		t.Errorf("share before availability: got %v, want 0", got)
	}
}

func TestClassBShareMaturesAfterRamp(t *testing.T) {
	params := model.BaselineParams()
	got := ClassBShare(params.ClassBAvailableFrom+10, params)
	if got != 0.30 {
		t.Errorf("mature share: got %v, want 0.30", got)
	}
}

func TestOrbitAllocationSharesNormalized(t *testing.T) {
	for _, strategy := range []model.ComputeStrategy{
		model.StrategyLatency, model.StrategyCost, model.StrategyCarbon, model.StrategyBalanced,
	} {
		shares := OrbitAllocationShares(strategy)
		total := shares.Low + shares.Mid + shares.SunSync
		if total < 0.999 || total > 1.001 {
			t.Errorf("strategy %s: shares sum to %v, want 1.0", strategy, total)
		}
	}
}

func TestLaunchCostPerKgDeclines(t *testing.T) {
	params := model.BaselineParams()
	base := LaunchCostPerKg(2025, params)
	later := LaunchCostPerKg(2035, params)
	if later >= base {
		t.Errorf("launch cost should decline: base=%v later=%v", base, later)
	}
}

func TestStrategyGrowthMultiplierOrdering(t *testing.T) {
	heavy := StrategyGrowthMultiplier(model.LaunchHeavy)
	medium := StrategyGrowthMultiplier(model.LaunchMedium)
	light := StrategyGrowthMultiplier(model.LaunchLight)
	if !(heavy > medium && medium > light) {
		t.Errorf("expected heavy > medium > light, got %v, %v, %v", heavy, medium, light)
	}
}

func TestShellCapacityOrdering(t *testing.T) {
	if ShellCapacity(model.ShellLowLEO) <= ShellCapacity(model.ShellMidLEO) {
		t.Errorf("low-LEO capacity should exceed mid-LEO capacity")
	}
	if ShellCapacity(model.ShellMidLEO) <= ShellCapacity(model.ShellSunSync) {
		t.Errorf("mid-LEO capacity should exceed sun-sync capacity")
	}
}

func TestOrbitLatencyMsLowerForLatencyStrategy(t *testing.T) {
	latencyShares := OrbitAllocationShares(model.StrategyLatency)
	costShares := OrbitAllocationShares(model.StrategyCost)
	if OrbitLatencyMs(latencyShares) >= OrbitLatencyMs(costShares) {
		t.Errorf("LATENCY strategy's shell split should yield lower orbit latency than COST's: latency=%v cost=%v",
			OrbitLatencyMs(latencyShares), OrbitLatencyMs(costShares))
	}
}
