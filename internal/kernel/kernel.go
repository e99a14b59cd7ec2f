// Package kernel runs the year-step simulation pipeline: one tick folds
// fleet and physics state forward through launch, constraints, physics,
// congestion, and economics, and writes exactly one debug entry per
// (year, scenarioMode).
package kernel

import (
	"fmt"
	"math"

	"github.com/orbitalcompute/ocse/internal/busdesign"
	"github.com/orbitalcompute/ocse/internal/congestion"
	"github.com/orbitalcompute/ocse/internal/constraints"
	"github.com/orbitalcompute/ocse/internal/curves"
	"github.com/orbitalcompute/ocse/internal/economics"
	"github.com/orbitalcompute/ocse/internal/launch"
	"github.com/orbitalcompute/ocse/internal/ledger"
	"github.com/orbitalcompute/ocse/internal/model"
	"github.com/orbitalcompute/ocse/internal/physics"
)

const baseYear = 2025

// satelliteLifetimeYears is the operational lifetime used by the
// retirement ledger for both satellite classes.
const satelliteLifetimeYears = 7

// Kernel runs one scenario's year axis, owning the calibration state that
// must persist across years (spec Design Notes §9).
type Kernel struct {
	Params                  model.ScenarioParams
	cost                    economics.CostState
	cumulativeOrbitCarbonKg float64
	priorOrbitShare         float64
	priorOrbitUnitCost      float64
	priorGroundUnitCost     float64
	accumulatedDebris       float64
}

// NewKernel returns a kernel configured for one scenario's parameter
// bundle.
func NewKernel(params model.ScenarioParams) *Kernel {
	return &Kernel{Params: params}
}

// RunYear advances the fleet and physics state by one year and returns the
// resulting deployment result. Pure with respect to its inputs except for
// the kernel's own carried-forward state: cost calibration, prior orbit
// share and unit costs, cumulative orbit carbon, and accumulated debris.
func (k *Kernel) RunYear(
	prevFleet model.FleetState,
	prevPhysics model.PhysicsState,
	overrides model.PhysicsOverrides,
	plan model.YearPlan,
	year int,
) (model.YearDeploymentResult, error) {
	if year < baseYear {
		return model.YearDeploymentResult{}, fmt.Errorf("%w: year %d precedes base year %d", ledger.ErrConfig, year, baseYear)
	}

	yearIndex := year - baseYear
	params := k.Params

	ledgerA := launch.FromFleet(prevFleet)

	// --- 1. Launch gate and orbit/class allocation ---
	cadence := int(float64(curves.LaunchCadence(year)) * curves.StrategyGrowthMultiplier(plan.LaunchStrategy) * plan.DeploymentIntensity)
	classBShare := curves.ClassBShare(year, params)
	desiredB := int(float64(cadence) * classBShare)
	desiredA := cadence - desiredB

	launchCostPerKg := curves.LaunchCostPerKg(year, params)
	if overrides.LaunchCostPerKg != nil {
		launchCostPerKg = *overrides.LaunchCostPerKg
	}

	busPowerKW := curves.PowerPerSatKW(year)
	if overrides.BusPowerKW != nil {
		busPowerKW = *overrides.BusPowerKW
	}
	computeTFLOPs := curves.ComputePerSatTFLOPs(year, params)

	designReq := busdesign.DesignRequest{
		Year:                 year,
		Class:                model.ClassA,
		Shell:                model.ShellLowLEO,
		TargetTFLOPs:         computeTFLOPs,
		WattsPerTFLOP:        busPowerKW * (1 - 0.15) * 1000 / math.Max(computeTFLOPs, 1),
		TFLOPsPerKg:          12,
		ShieldingThicknessMM: 5,
		LifeYears:            satelliteLifetimeYears,
		RadiatorHotTempK:     radiatorHotTempK(overrides),
		SolarConstantWPerM2:  1361,
		PanelEfficiency:      0.30,
		DegradationOverLife:  0.15,
	}
	busA := busdesign.Design(designReq)
	designReqB := designReq
	designReqB.Class = model.ClassB
	designReqB.Shell = model.ShellSunSync
	busB := busdesign.Design(designReqB)

	avgSatMassKg := (busA.TotalMassKg + busB.TotalMassKg) / 2
	avgSatCostUSD := avgSatMassKg * launchCostPerKg

	gate := launch.Gate(launch.GateRequest{
		DesiredTotal:  cadence,
		NewATarget:    desiredA,
		NewBTarget:    desiredB,
		MassBudgetKg:  0, // unconstrained in this kernel; sandbox overrides may tighten later
		AvgSatMassKg:  avgSatMassKg,
		CostBudgetUSD: 0,
		AvgSatCostUSD: avgSatCostUSD,
	})

	shares := curves.OrbitAllocationShares(plan.ComputeStrategy)
	newAShells := launch.AllocateShells(gate.NewA, shares)

	retiredA := launch.ScheduledRetirements(ledgerA.DeployedByYearA, year, satelliteLifetimeYears)
	retiredB := launch.ScheduledRetirements(ledgerA.DeployedByYearB, year, satelliteLifetimeYears)
	retiredShells := launch.AllocateRetirements(retiredA, prevFleet.ClassACounts)

	nextFleet := prevFleet.Clone()
	nextFleet.ClassACounts = nextFleet.ClassACounts.Add(newAShells).Sub(retiredShells)
	nextFleet.ClassBCount = nextFleet.ClassBCount + gate.NewB - retiredB
	if nextFleet.ClassBCount < 0 {
		nextFleet.ClassBCount = 0
	}
	nextFleet.DeployedByYearA[year] = gate.NewA
	nextFleet.DeployedByYearB[year] = gate.NewB
	nextFleet.CumulativeLaunches += gate.Allowed
	nextFleet.CumulativeDeployedA += gate.NewA
	nextFleet.CumulativeDeployedB += gate.NewB

	// --- 2. Constraints ---
	fleetSize := nextFleet.SatellitesTotal()
	heatGenKW := busA.BusPowerKW*float64(nextFleet.ClassATotal()) + busB.BusPowerKW*float64(nextFleet.ClassBCount)
	heatRejectKW := estimateHeatReject(prevPhysics, overrides)

	failureRate := params.FailureRateBase
	repairCapacity := float64(fleetSize) * 0.08 * (1 + float64(yearIndex)*0.02)

	constraintRes := constraints.Solve(constraints.ConstraintRequest{
		HeatGenKW:                heatGenKW,
		HeatRejectKW:              heatRejectKW,
		ComputeDemandGbps:         float64(fleetSize) * 5,
		SatellitesTotal:           fleetSize,
		BackhaulPerSatTBps:        params.BackhaulPerSatTBps,
		RelayBackboneComplete:     nextFleet.ClassACounts.Low > 0 && nextFleet.ClassACounts.Mid > 0,
		FailureRate:               failureRate,
		FleetSize:                 fleetSize,
		RepairCapacity:            repairCapacity,
		AutonomyBase:              params.AutonomyLevel,
		Strategy:                  plan.ComputeStrategy,
		ThermalSurvival:           prevPhysics.SurvivalFraction,
		RiskMode:                  params.RiskMode,
		SafeSurvivalFloor:         params.SafeSurvivalFloor,
		CumulativeFailureSurvival: nextFleet.SurvivalFromCumulativeFailures(),
	})
	nextFleet.FailuresByYear[year] = constraintRes.FailuresThisYear
	nextFleet.CumulativeFailures += constraintRes.PermanentLoss

	// --- 3. Physics ---
	fleetComputeFLOPS := physics.ComputeRawFLOPSForFleet(busA.ComputeDeratedTFLOPs, nextFleet.ClassATotal()) +
		physics.ComputeRawFLOPSForFleet(busB.ComputeDeratedTFLOPs, nextFleet.ClassBCount)

	radiatorArea := busA.RadiatorAreaM2
	if overrides.RadiatorAreaM2 != nil {
		radiatorArea = *overrides.RadiatorAreaM2
	}
	emissivity := prevPhysics.Emissivity
	if overrides.Emissivity != nil {
		emissivity = *overrides.Emissivity
	}

	basePhysics := prevPhysics
	basePhysics.RadiatorAreaM2 = radiatorArea
	basePhysics.Emissivity = emissivity
	basePhysics.SurvivalFraction = constraintRes.SurvivalFraction

	physicsReq := physics.PhysicsRequest{
		PowerTotalKW:      heatGenKW / 0.85,
		FleetComputeFLOPS: fleetComputeFLOPS,
		RadiatorAreaM2:    radiatorArea,
		BackhaulFactor:    1 - constraintRes.BackhaulUtilization*0.3,
		EclipseFraction:   0.35,
		EclipsePenalty:    0.5,
		HeatCeilingC:      60,
	}
	nextPhysics := physics.Step(basePhysics, physicsReq)

	// --- 4. Congestion ---
	congestionRes := congestion.Assess(congestion.CongestionRequest{
		Occupancy:        nextFleet.ClassACounts,
		PriorDebris:      k.accumulatedDebris,
		FailuresThisYear: constraintRes.FailuresThisYear,
		LaunchCostPerKg:  launchCostPerKg,
	})
	k.accumulatedDebris = congestionRes.AccumulatedDebris

	// --- 5. Economics ---
	baseDemandFLOPS := 5e17
	totalDemand := economics.TotalDemandFLOPS(baseDemandFLOPS, params.DemandGrowthPerYear, yearIndex)

	share := economics.OrbitShare(economics.ShareRequest{
		ComputeExportableFLOPS: nextPhysics.ComputeExportableFLOPS,
		TotalDemandFLOPS:        totalDemand,
		YearIndex:               yearIndex,
		ScenarioMultiplier:      params.RampCapMultiplier,
		PreParityCap:            params.PreParityCap,
		PriorOrbitUnitCost:      k.priorOrbitUnitCost,
		PriorGroundUnitCost:     k.priorGroundUnitCost,
		PriorOrbitShare:         k.priorOrbitShare,
	})
	k.priorOrbitShare = share

	exportedPFLOPs := nextPhysics.ComputeExportableFLOPS / 1e15
	orbitOPEX := economics.OrbitOPEX(50000, fleetSize, 2_000_000, 1_000_000, congestionRes.CongestionCostAdderUSD)

	costRes := economics.Resolve(k.cost, economics.CostRequest{
		YearIndex:                yearIndex,
		OrbitOPEXUSD:             orbitOPEX,
		ExportedPFLOPs:           exportedPFLOPs,
		BaseGroundUnitCost:       4000,
		GroundLearningRate:       params.GroundLearningRate,
		OrbitLearningRate:        params.OrbitLearningRate,
		OrbitInitialCostMultiple: params.OrbitInitialCostMultiple,
	})
	k.cost = costRes.State
	k.priorOrbitUnitCost = costRes.OrbitUnitCostUSDPerPFLOP
	k.priorGroundUnitCost = costRes.GroundUnitCostUSDPerPFLOP

	groundOPEX := economics.GroundOPEX(50_000_000, 0.08, totalDemand/1e12)

	blend := economics.Blend(economics.BlendRequest{
		OrbitShare:            share,
		GroundCostUSDPerPFLOP: costRes.GroundUnitCostUSDPerPFLOP,
		OrbitCostUSDPerPFLOP:  costRes.OrbitUnitCostUSDPerPFLOP,
		GroundOPEXUSD:         groundOPEX,
		OrbitOPEXUSD:          orbitOPEX,
		GroundLatencyMs:       40,
		OrbitLatencyMs:        curves.OrbitLatencyMs(shares),
	})

	carbonRes := economics.Assess(economics.CarbonRequest{
		LaunchedMassKg:               float64(gate.Allowed) * avgSatMassKg,
		LaunchCarbonPerKg:            params.LaunchCarbonPerKg,
		RetiredCount:                 retiredA + retiredB,
		AvgSatMassKg:                 avgSatMassKg,
		CumulativeOrbitCarbonKg:      k.cumulativeOrbitCarbonKg,
		PowerTotalKW:                 nextPhysics.PowerTotalKW,
		GroundCarbonIntensityGPerKWh: 400,
		OrbitShare:                   share,
	})
	k.cumulativeOrbitCarbonKg = carbonRes.CumulativeOrbitCarbonKg

	entry := buildDebugEntry(year, params.Mode, nextFleet, nextPhysics, busA, constraintRes, congestionRes,
		share, costRes, blend, carbonRes, k.cost)

	return model.YearDeploymentResult{
		Year:                   year,
		ScenarioMode:           params.Mode,
		Fleet:                  nextFleet,
		Physics:                nextPhysics,
		BusDesignA:             busA,
		BusDesignB:             busB,
		NewA:                   newAShells,
		NewB:                   gate.NewB,
		RetiredA:               retiredA,
		RetiredB:               retiredB,
		Constraints:            constraintRes,
		Congestion:             congestionRes,
		ComputeExportableFLOPS: nextPhysics.ComputeExportableFLOPS,
		OrbitComputeShare:      share,
		Entry:                  entry,
	}, nil
}

func radiatorHotTempK(overrides model.PhysicsOverrides) float64 {
	if overrides.RadiatorTempC != nil {
		return *overrides.RadiatorTempC + 273.15
	}
	return 350
}

// estimateHeatReject derives this year's heat-rejection capacity from the
// carried-forward radiator state, ahead of the physics step that will
// re-derive the core temperature.
func estimateHeatReject(prev model.PhysicsState, overrides model.PhysicsOverrides) float64 {
	const stefanBoltzmann = 5.670374419e-8
	const sinkTempK = 200.0
	area := prev.RadiatorAreaM2
	if overrides.RadiatorAreaM2 != nil {
		area = *overrides.RadiatorAreaM2
	}
	if area == 0 {
		area = 100
	}
	emissivity := prev.Emissivity
	if overrides.Emissivity != nil {
		emissivity = *overrides.Emissivity
	}
	tempK := prev.TempCoreC + 273.15
	return emissivity * stefanBoltzmann * area * (math.Pow(tempK, 4) - math.Pow(sinkTempK, 4)) / 1000.0
}
