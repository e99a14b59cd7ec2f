package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/orbitalcompute/ocse/internal/model"
)

// TableReporter outputs entries as a formatted terminal table.
type TableReporter struct {
	w io.Writer
}

func (r *TableReporter) Report(entries []model.DebugEntry, meta ReportMeta) error {
	ew := &errWriter{w: r.w}

	ew.printf("\n")
	ew.printf("OCSE Run Report\n")
	ew.printf("%s\n", strings.Repeat("=", 60))
	ew.printf("Run:      %s\n", meta.RunID)
	ew.printf("Scenario: %s\n", meta.ScenarioMode)
	ew.printf("Years:    %d to %d\n", meta.StartYear, meta.EndYear)
	ew.printf("%s\n\n", strings.Repeat("=", 60))

	if len(entries) == 0 {
		ew.printf("No entries produced.\n")
		return ew.err
	}

	ew.printf("%-6s %8s %8s %8s %10s %10s %s\n",
		"Year", "Sats", "Survival", "OrbShr", "CostUSD", "TempC", "Regime")
	ew.printf("%s\n", strings.Repeat("-", 70))

	for _, e := range entries {
		ew.printf("%-6d %8d %7.1f%% %7.1f%% %10.0f %9.1f %s\n",
			e.Year, e.SatellitesTotal, e.SurvivalFraction*100, e.OrbitComputeShare*100,
			e.BlendedCostUSDPerPFLOP, e.TempCoreC, e.ThermalRegime)
	}

	return ew.err
}

// errWriter accumulates the first write error, letting the caller chain
// printf calls without checking an error after each one.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
