package physics

import (
	"testing"

	"github.com/orbitalcompute/ocse/internal/model"
)

func baseState() model.PhysicsState {
	s := model.NewPhysicsState(model.RiskSafe)
	s.TempCoreC = 20
	s.RadiatorAreaM2 = 500
	return s
}

func baseRequest() PhysicsRequest {
	return PhysicsRequest{
		PowerTotalKW:      1000,
		FleetComputeFLOPS: 1e18,
		RadiatorAreaM2:    500,
		BackhaulFactor:    0.95,
		EclipseFraction:   0.35,
		EclipsePenalty:    0.5,
		HeatCeilingC:      60,
	}
}

func TestStepNominalRegimeWithAmpleRadiator(t *testing.T) {
	state := baseState()
	req := baseRequest()
	req.RadiatorAreaM2 = 5000
	state.RadiatorAreaM2 = 5000

	next := Step(state, req)
	if next.Regime != model.RegimeNominal {
		t.Errorf("expected nominal regime with ample radiator, got %v", next.Regime)
	}
}

func TestStepOverloadsWithUndersizedRadiator(t *testing.T) {
	state := baseState()
	state.RadiatorAreaM2 = 10
	req := baseRequest()
	req.RadiatorAreaM2 = 10

	next := Step(state, req)
	if next.Regime == model.RegimeNominal {
		t.Errorf("expected non-nominal regime with undersized radiator, got %v", next.Regime)
	}
}

func TestStepEmissivityNeverIncreases(t *testing.T) {
	state := baseState()
	state.RadiatorAreaM2 = 10
	req := baseRequest()
	req.RadiatorAreaM2 = 10

	next := Step(state, req)
	if next.Emissivity > state.Emissivity {
		t.Errorf("emissivity should never increase, went from %v to %v", state.Emissivity, next.Emissivity)
	}
}

func TestStepComputeRawNeverExceedsFleetCompute(t *testing.T) {
	state := baseState()
	req := baseRequest()
	next := Step(state, req)
	if next.ComputeRawFLOPS > req.FleetComputeFLOPS {
		t.Errorf("derated compute %v should never exceed raw fleet compute %v", next.ComputeRawFLOPS, req.FleetComputeFLOPS)
	}
}

func TestStepDerateChainIsDistinctAtEachStage(t *testing.T) {
	state := baseState()
	req := baseRequest()
	req.RadiatorAreaM2 = 5000
	state.RadiatorAreaM2 = 5000

	next := Step(state, req)
	if next.ComputeSustainedFLOPS > next.ComputeRawFLOPS {
		t.Errorf("sustained compute %v should never exceed raw compute %v", next.ComputeSustainedFLOPS, next.ComputeRawFLOPS)
	}
	if next.ComputeExportableFLOPS >= next.ComputeRawFLOPS {
		t.Errorf("exportable compute %v should be strictly less than raw compute %v under eclipse/backhaul losses",
			next.ComputeExportableFLOPS, next.ComputeRawFLOPS)
	}
	if next.ComputeExportableFLOPS > next.ComputeSustainedFLOPS {
		t.Errorf("exportable compute %v should never exceed sustained compute %v", next.ComputeExportableFLOPS, next.ComputeSustainedFLOPS)
	}
}

func TestComputeRawFLOPSForFleetScalesLinearly(t *testing.T) {
	one := ComputeRawFLOPSForFleet(10, 1)
	ten := ComputeRawFLOPSForFleet(10, 10)
	if ten != one*10 {
		t.Errorf("fleet compute should scale linearly: one=%v ten=%v", one, ten)
	}
}
