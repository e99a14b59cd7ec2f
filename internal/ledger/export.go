package ledger

import (
	"encoding/json"
	"io"

	"github.com/orbitalcompute/ocse/internal/model"
)

// ExportJSON writes every entry in the store as an indented JSON object
// keyed by "<year>_<scenarioMode>", matching the teacher's report-writing
// style (SetIndent over a streaming encoder rather than json.MarshalIndent
// on the whole tree).
func ExportJSON(w io.Writer, s *Store) error {
	out := make(map[string]model.DebugEntry, s.Len())
	for _, e := range s.All() {
		key := model.DebugEntryKey{Year: e.Year, ScenarioMode: e.ScenarioMode}
		out[key.KeyString()] = e
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
