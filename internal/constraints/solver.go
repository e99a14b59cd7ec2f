// Package constraints implements the post-deployment, pre-physics
// constraint solver of spec §4.5: heat/backhaul/maintenance utilization,
// autonomy level, the dominant constraint, and the blended survival
// fraction.
package constraints

import (
	"math"

	"github.com/orbitalcompute/ocse/internal/model"
)

// ConstraintRequest bundles the solver's per-year inputs.
type ConstraintRequest struct {
	HeatGenKW    float64
	HeatRejectKW float64

	ComputeDemandGbps float64
	SatellitesTotal   int
	BackhaulPerSatTBps float64
	RelayBackboneComplete bool // false when low-LEO or mid-LEO shell is empty

	FailureRate    float64
	FleetSize      int
	RepairCapacity float64

	AutonomyBase   float64
	Strategy       model.ComputeStrategy

	ThermalSurvival         float64
	RiskMode                model.RiskMode
	SafeSurvivalFloor       float64
	CumulativeFailureSurvival float64
}

// Solve computes the year's constraint utilizations, failure counts, the
// dominant constraint, and the final blended survival fraction.
func Solve(req ConstraintRequest) model.ConstraintResult {
	heatUtil := 0.0
	if req.HeatRejectKW > 0 {
		heatUtil = req.HeatGenKW / req.HeatRejectKW
	}

	capacityFactor := 1.0
	if !req.RelayBackboneComplete {
		capacityFactor = 0.7
	}
	backhaulCapacityGbps := float64(req.SatellitesTotal) * req.BackhaulPerSatTBps * 1000.0 * capacityFactor
	backhaulUtil := 0.0
	if backhaulCapacityGbps > 0 {
		backhaulUtil = req.ComputeDemandGbps / backhaulCapacityGbps
	}
	if backhaulUtil > 1 {
		backhaulUtil = 1
	}

	failuresThisYear := int(req.FailureRate*float64(req.FleetSize) + 0.5)
	recoverable := failuresThisYear
	if float64(recoverable) > req.RepairCapacity {
		recoverable = int(req.RepairCapacity)
	}
	permanentLoss := failuresThisYear - recoverable
	maintenanceUtil := 0.0
	if req.RepairCapacity > 0 {
		maintenanceUtil = float64(failuresThisYear) / req.RepairCapacity
	}

	autonomy := req.AutonomyBase
	switch req.Strategy {
	case model.StrategyCost:
		autonomy *= 1.1
	case model.StrategyLatency:
		autonomy *= 0.9
	}
	if autonomy > 1 {
		autonomy = 1
	}

	dominant := dominantConstraint(heatUtil, backhaulUtil, maintenanceUtil, autonomy)

	survival := req.ThermalSurvival * math.Exp(-0.1*math.Max(0, maintenanceUtil-1))
	floor := survivalFloor(req.RiskMode, req.SafeSurvivalFloor)
	if survival < floor {
		survival = floor
	}
	survival = 0.7*survival + 0.3*req.CumulativeFailureSurvival

	return model.ConstraintResult{
		HeatUtilization:        heatUtil,
		BackhaulUtilization:    backhaulUtil,
		MaintenanceUtilization: maintenanceUtil,
		AutonomyLevel:          autonomy,
		FailuresThisYear:       failuresThisYear,
		RecoverableFailed:      recoverable,
		PermanentLoss:          permanentLoss,
		DominantConstraint:     dominant,
		SurvivalFraction:       survival,
	}
}

// survivalFloor returns the minimum survival fraction permitted for a risk
// mode: SAFE uses the scenario's own floor, AGGRESSIVE and YOLO relax it.
func survivalFloor(mode model.RiskMode, safeFloor float64) float64 {
	switch mode {
	case model.RiskAggressive:
		return 0.10
	case model.RiskYOLO:
		return 0.0
	default:
		return safeFloor
	}
}

func dominantConstraint(heat, backhaul, maintenance, autonomy float64) string {
	dominant := "heat"
	min := heat
	if backhaul < min {
		dominant, min = "backhaul", backhaul
	}
	if maintenance < min {
		dominant, min = "maintenance", maintenance
	}
	if autonomy < min {
		dominant = "autonomy"
	}
	return dominant
}
