package model

// ThermalRegime classifies the radiator/core-temperature state each tick.
// Transitions are re-evaluated every year; the only memory carried forward
// is PhysicsState.Emissivity and PhysicsState.TempCoreC.
type ThermalRegime string

const (
	RegimeNominal  ThermalRegime = "NOMINAL"
	RegimeOverload ThermalRegime = "OVERLOAD"
	RegimeCritical ThermalRegime = "CRITICAL"
)

// PhysicsState is the persistent thermal/power plant state carried from one
// year to the next by the simulation runner.
type PhysicsState struct {
	TempCoreC      float64
	Emissivity     float64
	RadiatorAreaM2 float64

	PowerTotalKW            float64
	ComputeRawFLOPS         float64 // fleet compute x survival, before thermal/backhaul/eclipse derates
	ComputeSustainedFLOPS   float64 // ComputeRawFLOPS x thermal derate
	ComputeExportableFLOPS  float64 // ComputeSustainedFLOPS x backhaul factor x (1 - eclipse penalty)
	BackhaulCapacityTBps    float64
	MaintenanceCapacityPods float64

	SurvivalFraction float64
	EclipseFraction  float64
	ShadowingLoss    float64

	ThermalMassJPerC float64
	RiskMode         RiskMode
	Regime           ThermalRegime
}

// NewPhysicsState returns the neutral plant state at the base year.
func NewPhysicsState(risk RiskMode) PhysicsState {
	return PhysicsState{
		Emissivity:       0.90,
		SurvivalFraction: 1.0,
		ThermalMassJPerC: 5.0e7,
		RiskMode:         risk,
		Regime:           RegimeNominal,
	}
}

// ConstraintResult is the constraint solver's per-year output (spec §4.5).
type ConstraintResult struct {
	HeatUtilization        float64
	BackhaulUtilization    float64
	MaintenanceUtilization float64
	AutonomyLevel          float64

	FailuresThisYear  int
	RecoverableFailed int
	PermanentLoss     int

	DominantConstraint string // "heat" | "backhaul" | "maintenance" | "autonomy"

	SurvivalFraction float64
}

// CongestionResult is the per-year congestion/debris output (spec §4.7).
type CongestionResult struct {
	DominantShell          OrbitalShell
	ShellUtilization       float64
	ConjunctionRate        float64
	AccumulatedDebris      float64
	CollisionProbability   float64
	CongestionCostAdderUSD float64
}
