// Package model holds the value types shared across the year-step kernel:
// scenario configuration, fleet and physics state, bus designs, and the
// canonical per-year debug entry. Types here carry no behavior beyond small
// derived-value helpers; the kernel packages own the algorithms.
package model

// ScenarioMode selects the exogenous parameter bundle for a run.
type ScenarioMode string

const (
	ScenarioBaseline ScenarioMode = "BASELINE"
	ScenarioBull     ScenarioMode = "ORBITAL_BULL"
	ScenarioBear     ScenarioMode = "ORBITAL_BEAR"
)

// ComputeStrategy is the user's per-year optimization target.
type ComputeStrategy string

const (
	StrategyLatency  ComputeStrategy = "LATENCY"
	StrategyCost     ComputeStrategy = "COST"
	StrategyCarbon   ComputeStrategy = "CARBON"
	StrategyBalanced ComputeStrategy = "BALANCED"
)

// LaunchStrategy is the user's per-year launch cadence target.
type LaunchStrategy string

const (
	LaunchHeavy  LaunchStrategy = "heavy"
	LaunchMedium LaunchStrategy = "medium"
	LaunchLight  LaunchStrategy = "light"
)

// RiskMode sets the floor under which survival_fraction cannot fall.
type RiskMode string

const (
	RiskSafe       RiskMode = "SAFE"
	RiskAggressive RiskMode = "AGGRESSIVE"
	RiskYOLO       RiskMode = "YOLO"
)

// SatelliteClass distinguishes the two bus archetypes.
type SatelliteClass string

const (
	ClassA SatelliteClass = "A" // general-purpose LEO compute
	ClassB SatelliteClass = "B" // sun-synchronous, compute-dense, gated by availability year
)

// ScenarioParams is the immutable exogenous trajectory for one run.
// Learning rates, FailureRateBase, AutonomyLevel, PreParityCap and
// SafeSurvivalFloor are fractions in [0,1]; the *PerYear fields are annual
// multipliers (growth above 1, decline below 1); OrbitInitialCostMultiple
// is >= 1.
type ScenarioParams struct {
	Mode ScenarioMode

	TechGrowthPerYear        float64
	LaunchCostDeclinePerYear float64
	DemandGrowthPerYear      float64
	GroundLearningRate       float64
	OrbitLearningRate        float64
	OrbitInitialCostMultiple float64

	FailureRateBase    float64
	AutonomyLevel      float64
	BackhaulPerSatTBps float64
	LaunchCarbonPerKg  float64
	PowerGrowthPerYear float64

	BaseLaunchCostPerKg float64
	RampCapMultiplier   float64 // bull 1.3, baseline 1.0, bear 0.6
	PreParityCap        float64 // bull 0.35, baseline 0.25, bear 0.15
	SafeSurvivalFloor   float64 // bull 0.98, baseline 0.95, bear 0.92

	ClassBAvailableFrom int
	RiskMode            RiskMode
}

// BaselineParams returns the BASELINE scenario's parameter bundle.
func BaselineParams() ScenarioParams {
	return ScenarioParams{
		Mode:                     ScenarioBaseline,
		TechGrowthPerYear:        1.12,
		LaunchCostDeclinePerYear: 0.93,
		DemandGrowthPerYear:      1.22,
		GroundLearningRate:       0.05,
		OrbitLearningRate:        0.08,
		OrbitInitialCostMultiple: 3.0,
		FailureRateBase:          0.03,
		AutonomyLevel:            0.6,
		BackhaulPerSatTBps:       2.0,
		LaunchCarbonPerKg:        2.5,
		PowerGrowthPerYear:       1.10,
		BaseLaunchCostPerKg:      200,
		RampCapMultiplier:        1.0,
		PreParityCap:             0.25,
		SafeSurvivalFloor:        0.95,
		ClassBAvailableFrom:      2029,
		RiskMode:                 RiskSafe,
	}
}

// BullParams returns the ORBITAL_BULL scenario's parameter bundle.
func BullParams() ScenarioParams {
	p := BaselineParams()
	p.Mode = ScenarioBull
	p.TechGrowthPerYear = 1.18
	p.LaunchCostDeclinePerYear = 0.88
	p.DemandGrowthPerYear = 1.28
	p.GroundLearningRate = 0.04
	p.OrbitLearningRate = 0.12
	p.OrbitInitialCostMultiple = 2.0
	p.FailureRateBase = 0.02
	p.BaseLaunchCostPerKg = 10
	p.RampCapMultiplier = 1.3
	p.PreParityCap = 0.35
	p.SafeSurvivalFloor = 0.98
	p.ClassBAvailableFrom = 2027
	return p
}

// BearParams returns the ORBITAL_BEAR scenario's parameter bundle.
func BearParams() ScenarioParams {
	p := BaselineParams()
	p.Mode = ScenarioBear
	p.TechGrowthPerYear = 1.08
	p.LaunchCostDeclinePerYear = 0.97
	p.DemandGrowthPerYear = 1.15
	p.GroundLearningRate = 0.06
	p.OrbitLearningRate = 0.05
	p.OrbitInitialCostMultiple = 4.0
	p.FailureRateBase = 0.05
	p.BaseLaunchCostPerKg = 500
	p.RampCapMultiplier = 0.6
	p.PreParityCap = 0.15
	p.SafeSurvivalFloor = 0.92
	p.ClassBAvailableFrom = 2032
	return p
}

// ParamsForMode resolves a ScenarioMode to its parameter bundle. Unknown
// modes are a ConfigError at the orchestrator boundary, not here — pure
// curve/param functions never fail, so this falls back to BASELINE.
func ParamsForMode(mode ScenarioMode) ScenarioParams {
	switch mode {
	case ScenarioBull:
		return BullParams()
	case ScenarioBear:
		return BearParams()
	default:
		return BaselineParams()
	}
}

// YearPlan is the user's decision for a single simulated year.
type YearPlan struct {
	ComputeStrategy     ComputeStrategy
	LaunchStrategy      LaunchStrategy
	DeploymentIntensity float64
}

// BalancedPlan is the substitute plan used when a simulated year has no
// entry in strategyByYear (spec's recoverable ConfigError).
func BalancedPlan() YearPlan {
	return YearPlan{
		ComputeStrategy:     StrategyBalanced,
		LaunchStrategy:      LaunchMedium,
		DeploymentIntensity: 1.0,
	}
}

// PhysicsOverrides holds the optional sandbox overrides as typed fields
// rather than a dynamic map, so unset fields are nil pointers. The kernel
// reads RadiatorAreaM2, Emissivity, BusPowerKW, RadiatorTempC and
// LaunchCostPerKg; LaunchCostImprovementRate, MooresLawDoublingYears,
// BatteryDensity and BatteryCost are carried but not read.
type PhysicsOverrides struct {
	RadiatorAreaM2            *float64
	Emissivity                *float64
	BusPowerKW                *float64
	RadiatorTempC             *float64
	LaunchCostPerKg           *float64
	LaunchCostImprovementRate *float64
	MooresLawDoublingYears    *float64
	BatteryDensity            *float64
	BatteryCost               *float64
}
