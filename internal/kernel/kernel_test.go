package kernel

import (
	"context"
	"testing"

	"github.com/orbitalcompute/ocse/internal/ledger"
	"github.com/orbitalcompute/ocse/internal/model"
)

func TestScenario1BaselineSingleYear(t *testing.T) {
	store := ledger.NewStore()
	_, err := RunScenarios(context.Background(), []ScenarioRequest{{
		Mode:      model.ScenarioBaseline,
		StartYear: 2025,
		EndYear:   2025,
		StrategyByYear: map[int]model.YearPlan{
			2025: model.BalancedPlan(),
		},
	}}, store)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	entry, ok := store.Get(2025, model.ScenarioBaseline)
	if !ok {
		t.Fatal("expected 2025 baseline entry")
	}
	if entry.SatellitesTotal <= 0 {
		t.Errorf("satellitesTotal = %d, want > 0", entry.SatellitesTotal)
	}
	if entry.OrbitComputeShare > 0.25 {
		t.Errorf("orbitComputeShare = %v, want <= 0.25", entry.OrbitComputeShare)
	}
}

func TestEntryRecordsDistinctGroundAndOrbitOPEX(t *testing.T) {
	store := ledger.NewStore()
	plans := map[int]model.YearPlan{}
	for y := 2025; y <= 2035; y++ {
		plans[y] = model.BalancedPlan()
	}
	_, err := RunScenarios(context.Background(), []ScenarioRequest{{
		Mode:           model.ScenarioBaseline,
		StartYear:      2025,
		EndYear:        2035,
		StrategyByYear: plans,
	}}, store)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	sawNonZeroShare := false
	for _, entry := range store.ForMode(model.ScenarioBaseline) {
		if entry.GroundOPEXUSD <= 0 {
			t.Errorf("year %d: GroundOPEXUSD = %v, want > 0", entry.Year, entry.GroundOPEXUSD)
		}
		if entry.OrbitOPEXUSD <= 0 {
			t.Errorf("year %d: OrbitOPEXUSD = %v, want > 0 (not the hardcoded zero)", entry.Year, entry.OrbitOPEXUSD)
		}
		if entry.OrbitComputeShare > 0 {
			sawNonZeroShare = true
			if entry.GroundOPEXUSD == entry.BlendedOPEXUSD {
				t.Errorf("year %d: GroundOPEXUSD should not equal the share-weighted BlendedOPEXUSD once orbit share is non-zero", entry.Year)
			}
		}
	}
	if !sawNonZeroShare {
		t.Fatal("expected orbit compute share to become non-zero somewhere in 2025-2035")
	}
}

func TestScenario2BaselineMultiYearGroundCostDecays(t *testing.T) {
	store := ledger.NewStore()
	plans := map[int]model.YearPlan{}
	for y := 2025; y <= 2030; y++ {
		plans[y] = model.BalancedPlan()
	}
	_, err := RunScenarios(context.Background(), []ScenarioRequest{{
		Mode:           model.ScenarioBaseline,
		StartYear:      2025,
		EndYear:        2030,
		StrategyByYear: plans,
	}}, store)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	entries := store.ForMode(model.ScenarioBaseline)
	if len(entries) != 6 {
		t.Fatalf("expected 6 entries, got %d", len(entries))
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].GroundUnitCostUSDPerPFLOP > entries[i-1].GroundUnitCostUSDPerPFLOP {
			t.Errorf("ground cost should decay: year %d (%v) > year %d (%v)",
				entries[i].Year, entries[i].GroundUnitCostUSDPerPFLOP, entries[i-1].Year, entries[i-1].GroundUnitCostUSDPerPFLOP)
		}
	}

	// The orbit share's growth cap is relative to the *prior year's own
	// share*, not a constant ceiling: across 6 years of compounding
	// at-most-5%-per-year growth, the final share should clear the single
	// first-ramp-year cap by a wide margin.
	last := entries[len(entries)-1]
	if last.OrbitComputeShare <= 0.05 {
		t.Errorf("expected orbit share to compound past the first-year ramp cap over 6 years, got %v at year %d",
			last.OrbitComputeShare, last.Year)
	}
}

func TestScenario4BearCostHeavySurvivalFloor(t *testing.T) {
	store := ledger.NewStore()
	plans := map[int]model.YearPlan{}
	for y := 2025; y <= 2035; y++ {
		plans[y] = model.YearPlan{
			ComputeStrategy:     model.StrategyCost,
			LaunchStrategy:      model.LaunchHeavy,
			DeploymentIntensity: 1.0,
		}
	}
	_, err := RunScenarios(context.Background(), []ScenarioRequest{{
		Mode:           model.ScenarioBear,
		StartYear:      2025,
		EndYear:        2035,
		StrategyByYear: plans,
	}}, store)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	entries := store.ForMode(model.ScenarioBear)
	for _, e := range entries {
		if e.SurvivalFraction < 0.92-1e-6 {
			t.Errorf("year %d survival %v below bear SAFE floor 0.92", e.Year, e.SurvivalFraction)
		}
	}
}

func TestScenario3BullCarbonSurvivalFloorAndCrossover(t *testing.T) {
	store := ledger.NewStore()
	plans := map[int]model.YearPlan{}
	for y := 2025; y <= 2035; y++ {
		plans[y] = model.YearPlan{
			ComputeStrategy:     model.StrategyCarbon,
			LaunchStrategy:      model.LaunchMedium,
			DeploymentIntensity: 1.0,
		}
	}
	_, err := RunScenarios(context.Background(), []ScenarioRequest{{
		Mode:           model.ScenarioBull,
		StartYear:      2025,
		EndYear:        2035,
		StrategyByYear: plans,
	}}, store)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	params := model.BullParams()
	entries := store.ForMode(model.ScenarioBull)
	if len(entries) != 11 {
		t.Fatalf("expected 11 entries, got %d", len(entries))
	}

	crossoverSeen := false
	for _, e := range entries {
		if e.SurvivalFraction < params.SafeSurvivalFloor-1e-6 {
			t.Errorf("year %d survival %v below bull SAFE floor %v", e.Year, e.SurvivalFraction, params.SafeSurvivalFloor)
		}
		if e.CumulativeOrbitalCarbonKg < 0 {
			t.Errorf("year %d cumulative orbit carbon went negative: %v", e.Year, e.CumulativeOrbitalCarbonKg)
		}
		if e.CarbonCrossoverTriggered {
			crossoverSeen = true
		}
	}
	if !crossoverSeen {
		t.Error("expected carbon_crossover_triggered to be true in at least one year through 2035")
	}

	// Cumulative orbit carbon is a running total: never decreases.
	for i := 1; i < len(entries); i++ {
		if entries[i].CumulativeOrbitalCarbonKg < entries[i-1].CumulativeOrbitalCarbonKg-1e-6 {
			t.Errorf("cumulative orbit carbon decreased from year %d to %d", entries[i-1].Year, entries[i].Year)
		}
	}
}

func TestScenario5StrategyBoundaryShiftsAllocationAndLatency(t *testing.T) {
	store := ledger.NewStore()
	plans := map[int]model.YearPlan{}
	for y := 2025; y <= 2030; y++ {
		plans[y] = model.YearPlan{ComputeStrategy: model.StrategyLatency, LaunchStrategy: model.LaunchLight, DeploymentIntensity: 1.0}
	}
	for y := 2031; y <= 2040; y++ {
		plans[y] = model.YearPlan{ComputeStrategy: model.StrategyCarbon, LaunchStrategy: model.LaunchMedium, DeploymentIntensity: 1.0}
	}
	_, err := RunScenarios(context.Background(), []ScenarioRequest{{
		Mode:           model.ScenarioBaseline,
		StartYear:      2025,
		EndYear:        2040,
		StrategyByYear: plans,
	}}, store)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	entries := store.ForMode(model.ScenarioBaseline)
	if len(entries) != 16 {
		t.Fatalf("expected 16 entries, got %d", len(entries))
	}

	lastLatencyEra, firstCarbonEra := entries[5], entries[6]
	if lastLatencyEra.Year != 2030 || firstCarbonEra.Year != 2031 {
		t.Fatalf("expected boundary entries at years 2030/2031, got %d/%d", lastLatencyEra.Year, firstCarbonEra.Year)
	}
	if lastLatencyEra.BlendedLatencyMs == firstCarbonEra.BlendedLatencyMs {
		t.Error("expected blended latency to change across the strategy boundary")
	}
	if lastLatencyEra.ShellSunSyncOccupancy == firstCarbonEra.ShellSunSyncOccupancy &&
		lastLatencyEra.ClassASunSync == firstCarbonEra.ClassASunSync {
		t.Error("expected sun-sync allocation to shift across the strategy boundary")
	}
}

func TestScenario6BusPowerOverrideExact(t *testing.T) {
	store := ledger.NewStore()
	baseline := ledger.NewStore()
	plans := map[int]model.YearPlan{}
	for y := 2025; y <= 2030; y++ {
		plans[y] = model.BalancedPlan()
	}

	overridden := 500.0
	_, err := RunScenarios(context.Background(), []ScenarioRequest{{
		Mode:           model.ScenarioBaseline,
		StartYear:      2025,
		EndYear:        2030,
		StrategyByYear: plans,
		Overrides:      model.PhysicsOverrides{BusPowerKW: &overridden},
	}}, store)
	if err != nil {
		t.Fatalf("overridden run failed: %v", err)
	}
	_, err = RunScenarios(context.Background(), []ScenarioRequest{{
		Mode:           model.ScenarioBaseline,
		StartYear:      2025,
		EndYear:        2030,
		StrategyByYear: plans,
	}}, baseline)
	if err != nil {
		t.Fatalf("default run failed: %v", err)
	}

	entry, _ := store.Get(2025, model.ScenarioBaseline)
	base, _ := baseline.Get(2025, model.ScenarioBaseline)
	if entry.PowerPerSatKW != 500 {
		t.Errorf("expected overridden bus power == 500, got %v", entry.PowerPerSatKW)
	}
	if entry.RadiatorAreaM2 <= base.RadiatorAreaM2 {
		t.Errorf("expected overridden radiator area (%v) to exceed default baseline's (%v) given higher bus power",
			entry.RadiatorAreaM2, base.RadiatorAreaM2)
	}
	if entry.BusTotalMassKg <= base.BusTotalMassKg {
		t.Errorf("expected overridden bus mass (%v) to exceed default baseline's (%v)",
			entry.BusTotalMassKg, base.BusTotalMassKg)
	}
}

func TestClassBShareZeroBeforeAvailability(t *testing.T) {
	store := ledger.NewStore()
	params := model.BaselineParams()
	plans := map[int]model.YearPlan{
		params.ClassBAvailableFrom - 1: model.BalancedPlan(),
	}
	_, err := RunScenarios(context.Background(), []ScenarioRequest{{
		Mode:           model.ScenarioBaseline,
		StartYear:      params.ClassBAvailableFrom - 1,
		EndYear:        params.ClassBAvailableFrom - 1,
		StrategyByYear: plans,
	}}, store)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	entry, _ := store.Get(params.ClassBAvailableFrom-1, model.ScenarioBaseline)
	if entry.ClassBSatellitesAlive != 0 {
		t.Errorf("expected zero Class-B satellites before availability, got %d", entry.ClassBSatellitesAlive)
	}
}

func TestRoundTripContinuationMatchesSinglePass(t *testing.T) {
	singlePass := ledger.NewStore()
	plans := map[int]model.YearPlan{}
	for y := 2025; y <= 2028; y++ {
		plans[y] = model.BalancedPlan()
	}
	_, err := RunScenarios(context.Background(), []ScenarioRequest{{
		Mode:           model.ScenarioBaseline,
		StartYear:      2025,
		EndYear:        2028,
		StrategyByYear: plans,
	}}, singlePass)
	if err != nil {
		t.Fatalf("single-pass run failed: %v", err)
	}

	twoPass := ledger.NewStore()
	results, err := RunScenarios(context.Background(), []ScenarioRequest{{
		Mode:           model.ScenarioBaseline,
		StartYear:      2025,
		EndYear:        2026,
		StrategyByYear: plans,
	}}, twoPass)
	if err != nil {
		t.Fatalf("first-half run failed: %v", err)
	}

	resumeFleet := results[0].FinalFleet
	resumePhysics := results[0].FinalPhysics
	_, err = RunScenarios(context.Background(), []ScenarioRequest{{
		Mode:           model.ScenarioBaseline,
		StartYear:      2027,
		EndYear:        2028,
		StrategyByYear: plans,
		ResumeFleet:    &resumeFleet,
		ResumePhysics:  &resumePhysics,
	}}, twoPass)
	if err != nil {
		t.Fatalf("second-half run failed: %v", err)
	}

	singleEntry, _ := singlePass.Get(2028, model.ScenarioBaseline)
	twoPassEntry, _ := twoPass.Get(2028, model.ScenarioBaseline)
	if singleEntry.SatellitesTotal != twoPassEntry.SatellitesTotal {
		t.Errorf("round-trip mismatch: single-pass satellitesTotal %d, resumed %d",
			singleEntry.SatellitesTotal, twoPassEntry.SatellitesTotal)
	}
}
