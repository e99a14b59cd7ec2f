// Package physics steps the thermal/power plant state forward one year at a
// time (spec §4.6): daily-resolution Euler integration of core temperature,
// the Nominal/Overload/Critical regime state machine, and the derate chain
// from raw fleet compute down to exportable compute.
package physics

import (
	"math"

	"github.com/orbitalcompute/ocse/internal/model"
)

const (
	stefanBoltzmann = 5.670374419e-8
	sinkTempK       = 200.0
	kelvinOffset    = 273.15

	electricalEfficiency = 0.85

	softCapC = 90.0
	hardCapC = 450.0

	emissivityDegradeFactor = 0.995

	hoursPerYear = 8760
	stepsPerYear = 365 // daily-resolution integration
	hoursPerStep = hoursPerYear / stepsPerYear
	secondsPerStep = hoursPerStep * 3600.0
)

// PhysicsRequest bundles the year's inputs to Step.
type PhysicsRequest struct {
	PowerTotalKW    float64
	FleetComputeFLOPS float64
	RadiatorAreaM2  float64

	BackhaulFactor   float64
	EclipseFraction  float64
	EclipsePenalty   float64

	HeatCeilingC float64
}

// Step advances the physics state by one simulated year, returning the new
// state. Re-evaluates the thermal regime every call; the only memory
// carried across years is state.Emissivity and state.TempCoreC.
func Step(state model.PhysicsState, req PhysicsRequest) model.PhysicsState {
	heatGenKW := req.PowerTotalKW * (1 - electricalEfficiency)

	tempCoreC := state.TempCoreC
	emissivity := state.Emissivity
	sustainedOverload := false

	var heatRejectKW float64
	for step := 0; step < stepsPerYear; step++ {
		tempCoreK := tempCoreC + kelvinOffset
		heatRejectKW = emissivity * stefanBoltzmann * state.RadiatorAreaM2 *
			(math.Pow(tempCoreK, 4) - math.Pow(sinkTempK, 4)) / 1000.0

		netHeatKW := heatGenKW - heatRejectKW
		deltaTempC := (netHeatKW * 1000.0 * secondsPerStep) / state.ThermalMassJPerC
		tempCoreC += deltaTempC

		if heatRejectKW > 0 && heatGenKW/heatRejectKW > 1 {
			sustainedOverload = true
		}
	}

	if sustainedOverload {
		emissivity *= emissivityDegradeFactor
	}

	regime := classifyRegime(heatGenKW, heatRejectKW, tempCoreC)

	survival := state.SurvivalFraction
	if regime == model.RegimeCritical {
		survival *= 0.5
	}
	if survival < 0.2 && tempCoreC > softCapC {
		tempCoreC *= 0.90 // forced 10%/year cooling to allow recovery
	}

	thermalDerate := 1.0
	if tempCoreC > req.HeatCeilingC {
		thermalDerate = math.Max(0.3, 1-(tempCoreC-req.HeatCeilingC)/40.0)
	}

	computeRaw := req.FleetComputeFLOPS * survival
	sustainedCompute := computeRaw * thermalDerate
	computeExportable := sustainedCompute * req.BackhaulFactor * (1 - req.EclipseFraction*req.EclipsePenalty)

	return model.PhysicsState{
		TempCoreC:               tempCoreC,
		Emissivity:              emissivity,
		RadiatorAreaM2:          state.RadiatorAreaM2,
		PowerTotalKW:            req.PowerTotalKW,
		ComputeRawFLOPS:         computeRaw,
		ComputeSustainedFLOPS:   sustainedCompute,
		ComputeExportableFLOPS:  computeExportable,
		BackhaulCapacityTBps:    state.BackhaulCapacityTBps,
		MaintenanceCapacityPods: state.MaintenanceCapacityPods,
		SurvivalFraction:        survival,
		EclipseFraction:         req.EclipseFraction,
		ShadowingLoss:           state.ShadowingLoss,
		ThermalMassJPerC:        state.ThermalMassJPerC,
		RiskMode:                state.RiskMode,
		Regime:                  regime,
	}
}

// classifyRegime re-derives the thermal regime from this year's heat
// balance and final core temperature.
func classifyRegime(heatGenKW, heatRejectKW, tempCoreC float64) model.ThermalRegime {
	util := 0.0
	if heatRejectKW > 0 {
		util = heatGenKW / heatRejectKW
	}
	switch {
	case tempCoreC > hardCapC:
		return model.RegimeCritical
	case util > 1:
		return model.RegimeOverload
	default:
		return model.RegimeNominal
	}
}

// ComputeRawFLOPSForFleet returns fleet-wide raw compute from per-satellite
// nominal throughput and live satellite counts, ahead of the survival
// derate applied inside Step.
func ComputeRawFLOPSForFleet(perSatTFLOPs float64, satellitesAlive int) float64 {
	const tflopsToFlops = 1e12
	return perSatTFLOPs * float64(satellitesAlive) * tflopsToFlops
}
