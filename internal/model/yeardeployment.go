package model

// YearDeploymentResult is the tick return value: counts, per-class per-sat
// values, constraints summary, effective compute, and physics snapshot.
// It is the in-memory sibling of the DebugEntry written for the same tick,
// which it carries in Entry; some of its values, such as BusDesignB, have
// no DebugEntry counterpart.
type YearDeploymentResult struct {
	Year         int
	ScenarioMode ScenarioMode

	Fleet   FleetState
	Physics PhysicsState

	BusDesignA BusDesign
	BusDesignB BusDesign

	NewA ShellCounts
	NewB int

	RetiredA int
	RetiredB int

	Constraints ConstraintResult
	Congestion  CongestionResult

	ComputeExportableFLOPS float64
	OrbitComputeShare      float64

	Entry DebugEntry
}
