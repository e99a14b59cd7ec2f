// Package orchestrator wires config, the kernel, the debug ledger, and
// reporting into the end-to-end run pipeline.
package orchestrator

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/orbitalcompute/ocse/internal/config"
	"github.com/orbitalcompute/ocse/internal/kernel"
	"github.com/orbitalcompute/ocse/internal/ledger"
	"github.com/orbitalcompute/ocse/internal/model"
	"github.com/orbitalcompute/ocse/internal/report"
)

// Orchestrator coordinates the end-to-end simulation pipeline.
type Orchestrator struct {
	Config config.Config
	Writer io.Writer
}

// New creates an orchestrator with the given config, writing progress to
// os.Stdout by default.
func New(cfg config.Config) *Orchestrator {
	return &Orchestrator{Config: cfg, Writer: os.Stdout}
}

// RunRequest is a single orchestrator invocation's inputs, beyond what's
// already fixed in Config.
type RunRequest struct {
	StrategyByYear map[int]model.YearPlan
	Overrides      model.PhysicsOverrides
}

// Run executes every configured scenario and returns the resulting debug
// store.
func (o *Orchestrator) Run(ctx context.Context, req RunRequest) (*ledger.Store, error) {
	cfg := o.Config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ledger.ErrConfig, err)
	}

	_, _ = fmt.Fprintf(o.Writer, "Running %d scenario(s) from %d to %d...\n",
		len(cfg.Run.Scenarios), cfg.Run.StartYear, cfg.Run.EndYear)

	plan := req.StrategyByYear
	if plan == nil {
		plan = defaultPlanEveryYear(cfg)
	}

	var requests []kernel.ScenarioRequest
	for _, s := range cfg.Run.Scenarios {
		requests = append(requests, kernel.ScenarioRequest{
			Mode:           model.ScenarioMode(s),
			StartYear:      cfg.Run.StartYear,
			EndYear:        cfg.Run.EndYear,
			StrategyByYear: plan,
			Overrides:      req.Overrides,
		})
	}

	store := ledger.NewStore()
	results, err := kernel.RunScenarios(ctx, requests, store)
	if err != nil {
		return nil, fmt.Errorf("running scenarios: %w", err)
	}

	for _, r := range results {
		_, _ = fmt.Fprintf(o.Writer, "Scenario %s complete (run %s)\n", r.Mode, r.RunID)
	}

	for _, s := range cfg.Run.Scenarios {
		mode := model.ScenarioMode(s)
		reporter := report.NewReporter(cfg.Output.Format, o.Writer)
		meta := report.ReportMeta{ScenarioMode: mode, StartYear: cfg.Run.StartYear, EndYear: cfg.Run.EndYear}
		if err := reporter.Report(store.ForMode(mode), meta); err != nil {
			return nil, fmt.Errorf("reporting scenario %s: %w", mode, err)
		}
	}

	return store, nil
}

func defaultPlanEveryYear(cfg config.Config) map[int]model.YearPlan {
	plan := model.YearPlan{
		ComputeStrategy:     model.ComputeStrategy(cfg.Run.Strategy),
		LaunchStrategy:      model.LaunchStrategy(cfg.Run.Launch),
		DeploymentIntensity: 1.0,
	}
	years := make(map[int]model.YearPlan)
	for y := cfg.Run.StartYear; y <= cfg.Run.EndYear; y++ {
		years[y] = plan
	}
	return years
}
