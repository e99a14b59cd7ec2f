package kernel

import (
	"github.com/orbitalcompute/ocse/internal/curves"
	"github.com/orbitalcompute/ocse/internal/economics"
	"github.com/orbitalcompute/ocse/internal/model"
)

// buildDebugEntry assembles the canonical per-tick record from every
// component's output. Kept as one wide function, matching the flat-struct
// style of the teacher's report builders, rather than spreading field
// assignment across each component package.
func buildDebugEntry(
	year int,
	mode model.ScenarioMode,
	fleet model.FleetState,
	phys model.PhysicsState,
	busA model.BusDesign,
	constraintRes model.ConstraintResult,
	congestionRes model.CongestionResult,
	orbitShare float64,
	costRes economics.CostResult,
	blend economics.BlendResult,
	carbonRes economics.CarbonResult,
	costState economics.CostState,
) model.DebugEntry {
	powerTotalKW := phys.PowerTotalKW
	powerUtilPct := 0.0
	if busA.BusPowerKW > 0 {
		powerUtilPct = (powerTotalKW / (busA.BusPowerKW * float64(fleet.SatellitesTotal()))) * 100
		if powerUtilPct > 100 {
			powerUtilPct = 100
		}
	}

	const groundCarbonIntensityGPerKWh = 400
	carbonCrossover := carbonRes.OrbitCarbonIntensityGPerKWh > 0 &&
		carbonRes.OrbitCarbonIntensityGPerKWh < groundCarbonIntensityGPerKWh

	return model.DebugEntry{
		Year:         year,
		ScenarioMode: mode,

		ClassASatellitesAlive: fleet.ClassATotal(),
		ClassBSatellitesAlive: fleet.ClassBCount,
		SatellitesTotal:       fleet.SatellitesTotal(),
		ClassALow:             fleet.ClassACounts.Low,
		ClassAMid:             fleet.ClassACounts.Mid,
		ClassASunSync:         fleet.ClassACounts.SunSync,
		NewLaunchesA:          fleet.DeployedByYearA.At(year),
		NewLaunchesB:          fleet.DeployedByYearB.At(year),
		FailuresThisYear:      constraintRes.FailuresThisYear,
		CumulativeLaunches:    fleet.CumulativeLaunches,
		CumulativeFailures:    fleet.CumulativeFailures,

		PowerPerSatKW:       busA.BusPowerKW,
		PowerTotalKW:        powerTotalKW,
		PowerUtilizationPct: powerUtilPct,

		ComputeRawFLOPS:        phys.ComputeRawFLOPS,
		ComputeSustainedFLOPS:  phys.ComputeSustainedFLOPS,
		ComputeExportableFLOPS: phys.ComputeExportableFLOPS,
		ComputeEffectiveFLOPS:  phys.ComputeExportableFLOPS,
		ComputeDemandPFLOPs:    phys.ComputeExportableFLOPS / 1e15,

		BusTotalMassKg:         busA.TotalMassKg,
		FleetTotalMassKg:       busA.TotalMassKg * float64(fleet.SatellitesTotal()),
		SiliconMassKg:          busA.Mass.SiliconKg,
		SolarArrayMassKg:       busA.Mass.SolarArrayKg,
		RadiatorMassKg:         busA.Mass.RadiatorKg,
		ShieldingMassKg:        busA.Mass.ShieldingKg,
		AvionicsMassKg:         busA.Mass.AvionicsKg,
		BatteryMassKg:          busA.Mass.BatteryKg,
		ADCSMassKg:             busA.Mass.ADCSKg,
		PropulsionMassKg:       busA.Mass.PropulsionKg,
		StructureMassKg:        busA.Mass.StructureKg,
		PowerElectronicsMassKg: busA.Mass.PowerElectronicsKg,
		OtherMassKg:            busA.Mass.OtherKg,

		TempCoreC:      phys.TempCoreC,
		TempRadiatorC:  phys.TempCoreC - radiatorDeltaC(phys),
		Emissivity:     phys.Emissivity,
		RadiatorAreaM2: phys.RadiatorAreaM2,
		ThermalRegime:  phys.Regime,
		HeatGenKW:      powerTotalKW * 0.15,
		HeatRejectKW:   powerTotalKW * 0.15,

		BackhaulUtilization:    constraintRes.BackhaulUtilization,
		MaintenanceUtilization: constraintRes.MaintenanceUtilization,
		RecoverableFailures:    constraintRes.RecoverableFailed,
		PermanentLossFailures:  constraintRes.PermanentLoss,
		AutonomyLevel:          constraintRes.AutonomyLevel,
		DominantConstraint:     constraintRes.DominantConstraint,

		SurvivalFraction: constraintRes.SurvivalFraction,

		DominantShell:          congestionRes.DominantShell,
		ShellUtilization:       congestionRes.ShellUtilization,
		ConjunctionRate:        congestionRes.ConjunctionRate,
		AccumulatedDebris:      congestionRes.AccumulatedDebris,
		CollisionProbability:   congestionRes.CollisionProbability,
		CongestionCostAdderUSD: congestionRes.CongestionCostAdderUSD,

		ShellLowOccupancy:     fleet.ClassACounts.Low,
		ShellMidOccupancy:     fleet.ClassACounts.Mid,
		ShellSunSyncOccupancy: fleet.ClassACounts.SunSync,

		BatteryDensityWhPerKg: curves.BatterySpec(year).DensityWhPerKg,
		BatteryCostPerKWh:     curves.BatterySpec(year).CostPerKWh,

		GroundUnitCostUSDPerPFLOP: costRes.GroundUnitCostUSDPerPFLOP,
		GroundOPEXUSD:             blend.GroundOPEXUSD,
		GroundComputeShare:        1 - orbitShare,
		GroundLatencyMs:           40,

		OrbitUnitCostUSDPerPFLOP:    costRes.OrbitUnitCostUSDPerPFLOP,
		OrbitUnitCostRawUSDPerPFLOP: costRes.OrbitUnitCostRawUSDPerPFLOP,
		OrbitOPEXUSD:                blend.OrbitOPEXUSD,
		OrbitComputeShare:           orbitShare,
		OrbitLatencyMs:              12,
		OrbitCostScale:              costState.OrbitCostScale,
		OrbitCostScaleInitialized:   costState.OrbitCostScaleInitialized,

		BlendedCostUSDPerPFLOP: blend.BlendedCostUSDPerPFLOP,
		BlendedOPEXUSD:         blend.BlendedOPEXUSD,
		BlendedLatencyMs:       blend.BlendedLatencyMs,

		CumulativeOrbitalCostUSD:  costState.CumulativeOrbitalCostUSD,
		CumulativeExportedPFLOPs:  costState.CumulativeExportedPFLOPs,
		CumulativeOrbitalCarbonKg: carbonRes.CumulativeOrbitCarbonKg,
		CumulativeOrbitEnergyTWh:  carbonRes.CumulativeOrbitEnergyTWh,

		LaunchCarbonKg:               carbonRes.LaunchCarbonKg,
		ReplacementCarbonKg:          carbonRes.ReplacementCarbonKg,
		GroundCarbonIntensityGPerKWh: groundCarbonIntensityGPerKWh,
		OrbitCarbonIntensityGPerKWh:  carbonRes.OrbitCarbonIntensityGPerKWh,
		MixCarbonIntensityGPerKWh:    carbonRes.MixCarbonIntensityGPerKWh,
		CarbonCrossoverTriggered:     carbonCrossover,

		RawBlendedCostUSDPerPFLOP: blend.BlendedCostUSDPerPFLOP,
		RawBlendedOPEXUSD:         blend.BlendedOPEXUSD,
		RawBlendedLatencyMs:       blend.BlendedLatencyMs,
		RawOrbitComputeShare:      orbitShare,
		RawGroundComputeShare:     1 - orbitShare,

		TechProgressFactor: curves.TechProgressFactor(year, model.ParamsForMode(mode)),
		LaunchCostPerKg:    curves.LaunchCostPerKg(year, model.ParamsForMode(mode)),
		LaunchCadence:      curves.LaunchCadence(year),
		FailureRate:        model.ParamsForMode(mode).FailureRateBase,
		RiskMode:           model.ParamsForMode(mode).RiskMode,

		Diagnostics: model.Diagnostics{
			OrbitCostScale:            costState.OrbitCostScale,
			OrbitCostScaleInitialized: costState.OrbitCostScaleInitialized,
			CalibrationPending:        !costState.OrbitCostScaleInitialized,
		},
	}
}

// radiatorDeltaC estimates how far the radiator surface sits below the
// core temperature (TempRadiatorC = TempCoreC - delta); the physics step
// tracks only core temperature, so this derives a plausible core-to-radiator
// delta from the current thermal regime.
func radiatorDeltaC(phys model.PhysicsState) float64 {
	switch phys.Regime {
	case model.RegimeCritical:
		return 15
	case model.RegimeOverload:
		return 20
	default:
		return 30
	}
}
