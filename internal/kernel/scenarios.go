package kernel

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/google/uuid"

	"github.com/orbitalcompute/ocse/internal/ledger"
	"github.com/orbitalcompute/ocse/internal/model"
)

// ScenarioRequest is one independent scenario run: its mode, year range,
// and per-year plan.
type ScenarioRequest struct {
	Mode          model.ScenarioMode
	StartYear     int
	EndYear       int
	StrategyByYear map[int]model.YearPlan
	Overrides      model.PhysicsOverrides

	// Resume point: if non-nil, the run continues from this fleet/physics
	// state instead of starting fresh at StartYear.
	ResumeFleet   *model.FleetState
	ResumePhysics *model.PhysicsState
}

// RunResult is one scenario's outcome: its run identifier and final
// fleet/physics state, suitable for Snapshot/Resume continuation.
type RunResult struct {
	RunID        string
	Mode         model.ScenarioMode
	FinalFleet   model.FleetState
	FinalPhysics model.PhysicsState
}

// RunScenarios runs each scenario's year axis sequentially (the kernel is
// single-threaded along the year axis per scenario) but fans the
// independent scenarios out across a bounded worker pool, grounded on the
// teacher's Engine.RunAll semaphore pattern. All runs append into the same
// store, partitioned by scenarioMode so there is no contention.
func RunScenarios(ctx context.Context, requests []ScenarioRequest, store *ledger.Store) ([]RunResult, error) {
	if len(requests) == 0 {
		return nil, fmt.Errorf("%w: no scenarios provided", ledger.ErrConfig)
	}

	results := make([]RunResult, len(requests))
	errs := make([]error, len(requests))

	sem := make(chan struct{}, runtime.NumCPU())
	var wg sync.WaitGroup

	for i, req := range requests {
		wg.Add(1)
		go func(idx int, r ScenarioRequest) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			result, err := runScenario(ctx, r, store)
			results[idx] = result
			errs[idx] = err
		}(i, req)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}

// runScenario executes one scenario's year axis, cancellable at tick
// boundaries only: a context cancellation is checked between years, never
// mid-tick, leaving a valid prefix in the store (spec §5).
func runScenario(ctx context.Context, req ScenarioRequest, store *ledger.Store) (RunResult, error) {
	if req.EndYear < req.StartYear {
		return RunResult{}, fmt.Errorf("%w: endYear %d before startYear %d", ledger.ErrConfig, req.EndYear, req.StartYear)
	}

	runID := uuid.NewString()
	params := model.ParamsForMode(req.Mode)
	k := NewKernel(params)

	fleet := model.NewFleetState()
	phys := model.NewPhysicsState(params.RiskMode)
	if req.ResumeFleet != nil {
		fleet = req.ResumeFleet.Clone()
	}
	if req.ResumePhysics != nil {
		phys = *req.ResumePhysics
	}

	var window []ledgerEntryYear
	for year := req.StartYear; year <= req.EndYear; year++ {
		select {
		case <-ctx.Done():
			return RunResult{RunID: runID, Mode: req.Mode, FinalFleet: fleet, FinalPhysics: phys}, ctx.Err()
		default:
		}

		plan, ok := req.StrategyByYear[year]
		if !ok {
			plan = model.BalancedPlan()
		}

		result, err := k.RunYear(fleet, phys, req.Overrides, plan, year)
		if err != nil {
			return RunResult{}, fmt.Errorf("scenario %s year %d: %w", req.Mode, year, err)
		}

		if err := ledger.Validate(result.Entry); err != nil {
			return RunResult{}, fmt.Errorf("scenario %s year %d: %w", req.Mode, year, err)
		}

		store.Append(result.Entry)
		window = append(window, ledgerEntryYear{year: year, entry: result.Entry})
		if len(window) >= 5 {
			if err := ledger.ValidateWindow(lastEntries(window, 5)); err != nil {
				return RunResult{}, fmt.Errorf("scenario %s window ending %d: %w", req.Mode, year, err)
			}
		}

		fleet = result.Fleet
		phys = result.Physics
	}

	return RunResult{RunID: runID, Mode: req.Mode, FinalFleet: fleet, FinalPhysics: phys}, nil
}

type ledgerEntryYear struct {
	year  int
	entry model.DebugEntry
}

func lastEntries(window []ledgerEntryYear, n int) []model.DebugEntry {
	if len(window) < n {
		n = len(window)
	}
	out := make([]model.DebugEntry, n)
	for i := 0; i < n; i++ {
		out[i] = window[len(window)-n+i].entry
	}
	return out
}
