package launch

import "github.com/orbitalcompute/ocse/internal/model"

// Ledger wraps the deployment and failure history as plain maps; FromFleet
// shares the fleet's maps rather than copying them. Branching a scenario
// means calling Clone, which deep-copies every map (spec Design Notes §9).
type Ledger struct {
	DeployedByYearA model.DeploymentLedger
	DeployedByYearB model.DeploymentLedger
	FailuresByYear  model.DeploymentLedger
}

// NewLedger returns an empty ledger.
func NewLedger() Ledger {
	return Ledger{
		DeployedByYearA: make(model.DeploymentLedger),
		DeployedByYearB: make(model.DeploymentLedger),
		FailuresByYear:  make(model.DeploymentLedger),
	}
}

// FromFleet builds a Ledger view over a fleet's deployment history.
func FromFleet(fleet model.FleetState) Ledger {
	return Ledger{
		DeployedByYearA: fleet.DeployedByYearA,
		DeployedByYearB: fleet.DeployedByYearB,
		FailuresByYear:  fleet.FailuresByYear,
	}
}

// Clone returns an independent deep copy.
func (l Ledger) Clone() Ledger {
	return Ledger{
		DeployedByYearA: l.DeployedByYearA.Clone(),
		DeployedByYearB: l.DeployedByYearB.Clone(),
		FailuresByYear:  l.FailuresByYear.Clone(),
	}
}

// ScheduledRetirements returns the count of satellites reaching end-of-life
// in the given year for a class with the given operational lifetime:
// whatever was deployed `lifetime` years earlier.
func ScheduledRetirements(deployedByYear model.DeploymentLedger, year, lifetime int) int {
	return deployedByYear.At(year - lifetime)
}

// AllocateRetirements distributes a total retirement count across shells
// proportionally to current per-shell occupancy: low and mid are rounded
// down, sunSync absorbs the remainder, and any part of that remainder above
// sunSync's occupancy is moved to low.
func AllocateRetirements(total int, occupancy model.ShellCounts) model.ShellCounts {
	if total <= 0 {
		return model.ShellCounts{}
	}
	fleetTotal := occupancy.Total()
	if fleetTotal <= 0 {
		return model.ShellCounts{}
	}
	low := total * occupancy.Low / fleetTotal
	mid := total * occupancy.Mid / fleetTotal
	sunSync := total - low - mid
	if sunSync > occupancy.SunSync {
		overflow := sunSync - occupancy.SunSync
		sunSync = occupancy.SunSync
		low += overflow
	}
	return model.ShellCounts{Low: low, Mid: mid, SunSync: sunSync}
}
