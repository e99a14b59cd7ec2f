// Package launch implements the launch admission gate, orbit allocator, and
// retirement ledger of spec §4.3/§4.4.
package launch

import "github.com/orbitalcompute/ocse/internal/model"

// GateRequest bundles the desired launch targets and the budgets that may
// constrain them.
type GateRequest struct {
	DesiredTotal  int
	NewATarget    int
	NewBTarget    int
	MassBudgetKg  float64
	AvgSatMassKg  float64
	CostBudgetUSD float64
	AvgSatCostUSD float64
}

// GateResult is the admitted (post-constraint) launch counts.
type GateResult struct {
	Allowed int
	NewA    int
	NewB    int
}

// Gate admits as many of the desired launches as the mass and cost budgets
// allow, preserving the requested A/B ratio exactly before rounding; any
// remainder from rounding is applied to Class A.
func Gate(req GateRequest) GateResult {
	allowed := req.DesiredTotal

	// A budget of 0 means "no constraint of this kind," not "zero budget":
	// callers that don't yet model a mass or cost ceiling pass 0 for both
	// fields and rely on AvgSat{Mass,Cost} having no effect.
	if req.MassBudgetKg > 0 && req.AvgSatMassKg > 0 {
		massLimited := int(req.MassBudgetKg / req.AvgSatMassKg)
		if massLimited < allowed {
			allowed = massLimited
		}
	}
	if req.CostBudgetUSD > 0 && req.AvgSatCostUSD > 0 {
		costLimited := int(req.CostBudgetUSD / req.AvgSatCostUSD)
		if costLimited < allowed {
			allowed = costLimited
		}
	}
	if allowed < 0 {
		allowed = 0
	}

	requestedTotal := req.NewATarget + req.NewBTarget
	if requestedTotal == 0 || allowed >= requestedTotal {
		return GateResult{Allowed: allowed, NewA: req.NewATarget, NewB: req.NewBTarget}
	}

	ratio := float64(allowed) / float64(requestedTotal)
	newB := int(float64(req.NewBTarget)*ratio + 0.5)
	if newB > allowed {
		newB = allowed
	}
	newA := allowed - newB

	return GateResult{Allowed: allowed, NewA: newA, NewB: newB}
}

// AllocateShells splits a count of new Class-A satellites across orbital
// shells per the given shares, rounding low and mid and absorbing the
// rounding remainder into sun-synchronous.
func AllocateShells(newA int, shares model.ShellShares) model.ShellCounts {
	normalized := shares.Normalize()
	low := int(float64(newA)*normalized.Low + 0.5)
	mid := int(float64(newA)*normalized.Mid + 0.5)
	sunSync := newA - low - mid
	if sunSync < 0 {
		sunSync = 0
	}
	return model.ShellCounts{Low: low, Mid: mid, SunSync: sunSync}
}
