// Package ledger owns the append-only debug store keyed by (year,
// scenarioMode), its per-tick and every-5-years validation passes, and
// JSON export (spec §4.9).
package ledger

import (
	"sync"

	"github.com/orbitalcompute/ocse/internal/model"
)

// Store is the shared debug store. Concurrent scenario runs partition by
// scenarioMode and never contend on the same key, but Append still takes a
// lock — cheap, and safe if that assumption is ever violated.
type Store struct {
	mu      sync.Mutex
	entries map[model.DebugEntryKey]model.DebugEntry
	order   []model.DebugEntryKey
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{entries: make(map[model.DebugEntryKey]model.DebugEntry)}
}

// Append records one entry. Spec invariant 10 (reproducibility) requires
// every kernel invocation to write exactly one entry per (year, mode); a
// second Append for the same key is ignored, so a written entry is never
// mutated.
func (s *Store) Append(entry model.DebugEntry) {
	key := model.DebugEntryKey{Year: entry.Year, ScenarioMode: entry.ScenarioMode}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.entries[key]; exists {
		return
	}
	s.order = append(s.order, key)
	s.entries[key] = entry
}

// Get returns the entry for a (year, mode) key, if present.
func (s *Store) Get(year int, mode model.ScenarioMode) (model.DebugEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[model.DebugEntryKey{Year: year, ScenarioMode: mode}]
	return entry, ok
}

// ForMode returns every entry for a scenario mode, ordered by year.
func (s *Store) ForMode(mode model.ScenarioMode) []model.DebugEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []model.DebugEntry
	for _, key := range s.order {
		if key.ScenarioMode != mode {
			continue
		}
		out = append(out, s.entries[key])
	}
	return out
}

// All returns every entry in append order.
func (s *Store) All() []model.DebugEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.DebugEntry, 0, len(s.order))
	for _, key := range s.order {
		out = append(out, s.entries[key])
	}
	return out
}

// Len returns the number of entries in the store.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
