package launch

import (
	"testing"

	"github.com/orbitalcompute/ocse/internal/model"
)

func TestGateUnconstrainedAllowsAll(t *testing.T) {
	res := Gate(GateRequest{
		DesiredTotal: 100,
		NewATarget:   70,
		NewBTarget:   30,
		MassBudgetKg: 0,
		CostBudgetUSD: 0,
	})
	if res.Allowed != 100 || res.NewA != 70 || res.NewB != 30 {
		t.Errorf("unexpected gate result: %+v", res)
	}
}

func TestGateZeroBudgetWithPositiveAvgCostIsUnconstrained(t *testing.T) {
	// A zero budget paired with a real (positive) average mass/cost must
	// not be read as "budget of zero satellites": it means this kernel
	// hasn't wired a ceiling for that resource yet.
	res := Gate(GateRequest{
		DesiredTotal: 100,
		NewATarget:   70,
		NewBTarget:   30,
		MassBudgetKg: 0,
		AvgSatMassKg: 2500,
		CostBudgetUSD: 0,
		AvgSatCostUSD: 500_000,
	})
	if res.Allowed != 100 || res.NewA != 70 || res.NewB != 30 {
		t.Errorf("expected zero budget with positive avg cost to be unconstrained, got %+v", res)
	}
}

func TestGateMassConstrained(t *testing.T) {
	res := Gate(GateRequest{
		DesiredTotal: 100,
		NewATarget:   70,
		NewBTarget:   30,
		MassBudgetKg: 5000,
		AvgSatMassKg: 100, // allows 50
	})
	if res.Allowed != 50 {
		t.Fatalf("allowed = %d, want 50", res.Allowed)
	}
	if res.NewA+res.NewB != res.Allowed {
		t.Errorf("NewA+NewB = %d, want %d", res.NewA+res.NewB, res.Allowed)
	}
	// ratio preserved: 70/100 = 0.7 -> 35 of 50
	if res.NewA != 35 || res.NewB != 15 {
		t.Errorf("ratio not preserved: NewA=%d NewB=%d", res.NewA, res.NewB)
	}
}

func TestGateCostConstrainedTighterThanMass(t *testing.T) {
	res := Gate(GateRequest{
		DesiredTotal:  100,
		NewATarget:    50,
		NewBTarget:    50,
		MassBudgetKg:  100000,
		AvgSatMassKg:  100, // allows 1000
		CostBudgetUSD: 1000,
		AvgSatCostUSD: 100, // allows 10
	})
	if res.Allowed != 10 {
		t.Fatalf("allowed = %d, want 10 (cost-limited)", res.Allowed)
	}
}

func TestAllocateShellsRemainderToSunSync(t *testing.T) {
	shares := model.ShellShares{Low: 0.45, Mid: 0.35, SunSync: 0.20}
	counts := AllocateShells(10, shares)
	if counts.Total() != 10 {
		t.Errorf("shell counts total %d, want 10", counts.Total())
	}
}

func TestScheduledRetirementsLookback(t *testing.T) {
	deployed := model.DeploymentLedger{2025: 100, 2026: 50}
	if got := ScheduledRetirements(deployed, 2030, 5); got != 100 {
		t.Errorf("retirements = %d, want 100", got)
	}
	if got := ScheduledRetirements(deployed, 2031, 5); got != 50 {
		t.Errorf("retirements = %d, want 50", got)
	}
	if got := ScheduledRetirements(deployed, 2032, 5); got != 0 {
		t.Errorf("retirements = %d, want 0", got)
	}
}

func TestAllocateRetirementsProportional(t *testing.T) {
	occupancy := model.ShellCounts{Low: 50, Mid: 30, SunSync: 20}
	retired := AllocateRetirements(10, occupancy)
	if retired.Total() != 10 {
		t.Errorf("retired total %d, want 10", retired.Total())
	}
	if retired.Low < retired.Mid {
		t.Errorf("low occupancy is largest so its retirement share should be largest: %+v", retired)
	}
}

func TestLedgerCloneIndependence(t *testing.T) {
	l := NewLedger()
	l.DeployedByYearA[2025] = 10
	clone := l.Clone()
	clone.DeployedByYearA[2025] = 999

	if l.DeployedByYearA[2025] != 10 {
		t.Errorf("original ledger mutated by clone: got %d, want 10", l.DeployedByYearA[2025])
	}
}
