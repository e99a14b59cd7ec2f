package report

import (
	"io"

	"github.com/orbitalcompute/ocse/internal/model"
)

// MarkdownReporter outputs entries as a markdown table, for pasting into a
// run summary or PR description.
type MarkdownReporter struct {
	w io.Writer
}

func (r *MarkdownReporter) Report(entries []model.DebugEntry, meta ReportMeta) error {
	ew := &errWriter{w: r.w}

	ew.printf("## OCSE run `%s` — %s (%d-%d)\n\n", meta.RunID, meta.ScenarioMode, meta.StartYear, meta.EndYear)
	ew.printf("| Year | Satellites | Survival | Orbit Share | Blended $/PFLOP | Core °C | Regime |\n")
	ew.printf("|---|---|---|---|---|---|---|\n")

	for _, e := range entries {
		ew.printf("| %d | %d | %.1f%% | %.1f%% | %.0f | %.1f | %s |\n",
			e.Year, e.SatellitesTotal, e.SurvivalFraction*100, e.OrbitComputeShare*100,
			e.BlendedCostUSDPerPFLOP, e.TempCoreC, e.ThermalRegime)
	}

	return ew.err
}
