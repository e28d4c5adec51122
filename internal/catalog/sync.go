package catalog

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"motoparts/internal/domain"
	"motoparts/internal/log"
)

// Synchronizer keeps the in-memory catalog eventually consistent with
// whichever store is authoritative, across independent processes sharing the
// same data directory, without any shared notification channel. It simply
// re-reads storage on a fixed interval and applies the snapshot only when it
// changed.
//
// A save issued between two ticks needs no special casing: Save already
// replaced the state and its snapshot, so the next poll compares equal and
// is a no-op. Snapshot comparison makes the apply step idempotent.
type Synchronizer struct {
	facade   *Facade
	interval time.Duration
	id       string
	inFlight atomic.Bool
}

func NewSynchronizer(facade *Facade, interval time.Duration) *Synchronizer {
	if interval <= 0 {
		interval = 500 * time.Millisecond
	}
	return &Synchronizer{facade: facade, interval: interval, id: uuid.NewString()}
}

// Run ticks until ctx is canceled. Read failures are swallowed (logged,
// never surfaced); the ticker must never stop because of a transient error.
func (s *Synchronizer) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	log.Infof("sync.start", map[string]any{"sync_id": s.id, "interval": s.interval.String()})
	for {
		select {
		case <-ctx.Done():
			log.Infof("sync.stop", map[string]any{"sync_id": s.id})
			return
		case <-ticker.C:
			s.Tick()
		}
	}
}

// Tick performs one poll. Overlapping ticks are skipped: if a previous read
// is still in flight under slow storage, this tick does nothing rather than
// piling up concurrent reads.
func (s *Synchronizer) Tick() {
	if !s.inFlight.CompareAndSwap(false, true) {
		return
	}
	defer s.inFlight.Store(false)

	records, ok := s.read()
	if !ok {
		return
	}
	snapshot := Snapshot(records)
	if snapshot == s.facade.State().LastSnapshot() {
		return
	}
	s.facade.State().Replace(records, snapshot)
	log.Infof("sync.apply", map[string]any{"sync_id": s.id, "count": len(records)})
}

// read mirrors the load path's source order: structured store first, blob
// fallback second. A tick that finds nothing anywhere applies nothing.
func (s *Synchronizer) read() ([]domain.Record, bool) {
	if s.facade.structured != nil {
		records, err := s.facade.structured.LoadAll()
		if err != nil {
			log.Warnf("sync.read.structured", err, map[string]any{"sync_id": s.id})
		} else if len(records) > 0 {
			return records, true
		}
	}
	records, err := s.facade.blob.Load()
	if err != nil {
		log.Warnf("sync.read.blob", err, map[string]any{"sync_id": s.id})
		return nil, false
	}
	if len(records) == 0 {
		return nil, false
	}
	return records, true
}
