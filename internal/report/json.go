package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/orbitalcompute/ocse/internal/model"
)

// JSONReporter outputs entries as indented JSON.
type JSONReporter struct {
	w io.Writer
}

type jsonOutput struct {
	Meta    ReportMeta          `json:"meta"`
	Entries []model.DebugEntry `json:"entries"`
}

func (r *JSONReporter) Report(entries []model.DebugEntry, meta ReportMeta) error {
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(jsonOutput{Meta: meta, Entries: entries}); err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}
	return nil
}
