package model

import "strconv"

// Diagnostics carries the non-fatal diagnostic state of a DebugEntry. The
// kernel sets the CalibrationNotYetPossible state (CalibrationPending and the
// cost-scale fields); it applies no NumericOverflow clamp and never sets
// OverflowClamped or OverflowFields.
// InvariantViolation is fatal and never reaches a written entry (the run
// aborts first), so it has no field here.
type Diagnostics struct {
	OverflowClamped        bool
	OverflowFields         []string
	CalibrationPending     bool
	OrbitCostScale         float64
	OrbitCostScaleInitialized bool
}

// DebugEntry is the single canonical per-(year, scenarioMode) record every
// downstream chart, panel, and persistence layer reads from. The Raw* fields
// are twins of the headline display fields; the kernel clamps neither, so
// each Raw field holds the same value as its display twin.
type DebugEntry struct {
	Year         int
	ScenarioMode ScenarioMode

	// Fleet
	ClassASatellitesAlive int
	ClassBSatellitesAlive int
	SatellitesTotal       int
	ClassALow             int
	ClassAMid             int
	ClassASunSync         int
	NewLaunchesA          int
	NewLaunchesB          int
	RetiredA              int
	RetiredB              int
	FailuresThisYear      int
	CumulativeLaunches    int
	CumulativeFailures    int

	// Power
	PowerPerSatKW        float64
	PowerTotalKW         float64
	PowerUtilizationPct  float64

	// Compute (FLOPS internally, PFLOPs surfaced)
	ComputeRawFLOPS         float64
	ComputeSustainedFLOPS   float64
	ComputeExportableFLOPS  float64
	ComputeEffectiveFLOPS   float64 // == ComputeExportableFLOPS, invariant 2
	ComputeDemandPFLOPs     float64

	// Bus mass breakdown (per Class-A satellite, kg; FleetTotalMassKg is fleet-wide)
	BusTotalMassKg       float64
	FleetTotalMassKg     float64
	SiliconMassKg        float64
	SolarArrayMassKg     float64
	RadiatorMassKg       float64
	ShieldingMassKg      float64
	AvionicsMassKg       float64
	BatteryMassKg        float64
	ADCSMassKg           float64
	PropulsionMassKg     float64
	StructureMassKg      float64
	PowerElectronicsMassKg float64
	OtherMassKg          float64

	// Thermal
	TempCoreC       float64
	TempRadiatorC   float64
	Emissivity      float64
	RadiatorAreaM2  float64
	ThermalRegime   ThermalRegime
	HeatGenKW       float64
	HeatRejectKW    float64

	// Backhaul / maintenance / autonomy
	BackhaulUtilization    float64
	MaintenanceUtilization float64
	RecoverableFailures    int
	PermanentLossFailures  int
	AutonomyLevel          float64
	DominantConstraint     string

	// Survival
	SurvivalFraction float64

	// Congestion / debris
	DominantShell          OrbitalShell
	ShellUtilization       float64
	ConjunctionRate        float64
	AccumulatedDebris      float64
	CollisionProbability   float64
	CongestionCostAdderUSD float64

	// Shell breakdown (occupancy)
	ShellLowOccupancy     int
	ShellMidOccupancy     int
	ShellSunSyncOccupancy int

	// Battery
	BatteryDensityWhPerKg float64
	BatteryCostPerKWh     float64

	// Economics — ground
	GroundUnitCostUSDPerPFLOP float64
	GroundOPEXUSD             float64
	GroundComputeShare        float64
	GroundLatencyMs           float64

	// Economics — orbit
	OrbitUnitCostUSDPerPFLOP    float64
	OrbitUnitCostRawUSDPerPFLOP float64
	OrbitOPEXUSD                float64
	OrbitComputeShare           float64
	OrbitLatencyMs              float64
	OrbitCostScale              float64
	OrbitCostScaleInitialized   bool

	// Economics — mix / blended
	BlendedCostUSDPerPFLOP float64
	BlendedOPEXUSD         float64
	BlendedLatencyMs       float64

	// Economics — cumulative
	CumulativeOrbitalCostUSD   float64
	CumulativeExportedPFLOPs   float64
	CumulativeOrbitalCarbonKg  float64
	CumulativeOrbitEnergyTWh   float64

	// Carbon — annual
	LaunchCarbonKg      float64
	ReplacementCarbonKg float64
	GroundCarbonIntensityGPerKWh float64
	OrbitCarbonIntensityGPerKWh  float64
	MixCarbonIntensityGPerKWh    float64
	CarbonCrossoverTriggered     bool

	// Raw (unclamped) twins for the headline displayed metrics
	RawBlendedCostUSDPerPFLOP float64
	RawBlendedOPEXUSD         float64
	RawBlendedLatencyMs       float64
	RawOrbitComputeShare      float64
	RawGroundComputeShare     float64

	// Scenario diagnostics
	TechProgressFactor   float64
	LaunchCostPerKg      float64
	LaunchCadence        int
	FailureRate          float64
	RiskMode             RiskMode

	Diagnostics Diagnostics
}

// DebugEntryKey uniquely identifies a DebugEntry within a store.
type DebugEntryKey struct {
	Year         int
	ScenarioMode ScenarioMode
}

// KeyString renders the spec's "<year>_<scenarioMode>" export key.
func (k DebugEntryKey) KeyString() string {
	return strconv.Itoa(k.Year) + "_" + string(k.ScenarioMode)
}
