package catalog

import (
	"sort"
	"strings"
	"sync"

	"motoparts/internal/domain"
)

// Stats is recomputed on every catalog replace.
type Stats struct {
	Products   int `json:"products"`
	Categories int `json:"categories"`
	Brands     int `json:"brands"`
}

// State is the single source of truth for the in-memory catalog within one
// process. Every mutation is a whole-slice replace so concurrent readers
// never observe a half-updated array. Subscribers receive one notification
// per applied change.
type State struct {
	mu       sync.RWMutex
	records  []domain.Record
	snapshot string
	stats    Stats
	subs     []func([]domain.Record)
}

func NewState() *State { return &State{} }

// Records returns a copy of the current catalog.
func (s *State) Records() []domain.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Record, len(s.records))
	copy(out, s.records)
	return out
}

// LastSnapshot returns the serialization of the last applied catalog.
func (s *State) LastSnapshot() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

func (s *State) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stats
}

// Subscribe registers a listener called after every applied replace.
// Listeners run synchronously on the replacing goroutine; register once at
// wiring time.
func (s *State) Subscribe(fn func([]domain.Record)) {
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}

// Replace swaps the catalog and the last-seen snapshot, recomputes stats and
// notifies subscribers. Callers pass the snapshot they computed so the
// synchronizer's comparison and the applied state can never drift apart.
func (s *State) Replace(records []domain.Record, snapshot string) {
	cp := make([]domain.Record, len(records))
	copy(cp, records)

	s.mu.Lock()
	s.records = cp
	s.snapshot = snapshot
	s.stats = computeStats(cp)
	subs := make([]func([]domain.Record), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(cp)
	}
}

// CountByCategory reports how many records reference the category key.
func (s *State) CountByCategory(key string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, r := range s.records {
		if r.Category == key {
			n++
		}
	}
	return n
}

// CountByBrand reports how many records reference the brand
// (case-insensitive, matching the admin rules).
func (s *State) CountByBrand(brand string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, r := range s.records {
		if strings.EqualFold(r.Brand, brand) {
			n++
		}
	}
	return n
}

// DistinctBrands returns the sorted brand values present in the catalog,
// used for the public filter dropdowns.
func (s *State) DistinctBrands() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return distinct(s.records, func(r domain.Record) []string {
		if r.Brand == "" {
			return nil
		}
		return []string{r.Brand}
	})
}

// DistinctApplications returns the sorted union of every record's
// applications list.
func (s *State) DistinctApplications() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return distinct(s.records, func(r domain.Record) []string { return r.Applications })
}

func computeStats(records []domain.Record) Stats {
	cats := map[string]struct{}{}
	brands := map[string]struct{}{}
	for _, r := range records {
		if r.Category != "" {
			cats[r.Category] = struct{}{}
		}
		if r.Brand != "" {
			brands[r.Brand] = struct{}{}
		}
	}
	return Stats{Products: len(records), Categories: len(cats), Brands: len(brands)}
}

func distinct(records []domain.Record, pick func(domain.Record) []string) []string {
	seen := map[string]struct{}{}
	for _, r := range records {
		for _, v := range pick(r) {
			seen[v] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
