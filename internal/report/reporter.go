// Package report formats a scenario's debug ledger for human or machine
// consumption: a terminal table, JSON, or markdown.
package report

import (
	"io"

	"github.com/orbitalcompute/ocse/internal/model"
)

// Reporter writes a scenario's year-by-year entries to an output
// destination.
type Reporter interface {
	Report(entries []model.DebugEntry, meta ReportMeta) error
}

// ReportMeta carries the run's contextual metadata alongside its entries.
type ReportMeta struct {
	RunID        string
	ScenarioMode model.ScenarioMode
	StartYear    int
	EndYear      int
}

// NewReporter creates a reporter for the given format writing to w.
func NewReporter(format string, w io.Writer) Reporter {
	switch format {
	case "json":
		return &JSONReporter{w: w}
	case "markdown":
		return &MarkdownReporter{w: w}
	default:
		return &TableReporter{w: w}
	}
}
