package catalog

import (
	"motoparts/internal/domain"
	"motoparts/internal/log"
)

// RecordStore is the slice of the structured store the facade depends on.
type RecordStore interface {
	ReplaceAll([]domain.Record) error
	LoadAll() ([]domain.Record, error)
}

// Facade is the single entry point the rest of the application uses for
// "give me the catalog" and "persist this catalog". It decides at runtime
// which backing store is authoritative and runs the one-time migration from
// the blob store into the structured store.
//
// While the structured store is open it is always authoritative and the
// blob write path stays disabled, so the two stores cannot silently diverge;
// the blob copy is only read when the structured store is unavailable or has
// never been populated.
type Facade struct {
	structured RecordStore // nil when disabled by config or unavailable
	blob       *Blob
	state      *State
}

func NewFacade(structured RecordStore, blob *Blob, state *State) *Facade {
	return &Facade{structured: structured, blob: blob, state: state}
}

// State exposes the in-memory catalog container this facade feeds.
func (f *Facade) State() *State { return f.state }

// Load resolves the authoritative catalog. It never returns an error: every
// step failure is logged and treated as "empty", falling through to the next
// source, and the built-in seed keeps the UI from ever starting blank.
func (f *Facade) Load() []domain.Record {
	if f.structured != nil {
		records, err := f.structured.LoadAll()
		if err != nil {
			log.Warnf("catalog.load.structured", err, nil)
		} else if len(records) > 0 {
			return records
		}
	}

	blobRecords, err := f.blob.Load()
	if err != nil {
		log.Warnf("catalog.load.blob", err, nil)
		blobRecords = nil
	}
	if len(blobRecords) > 0 {
		if f.structured != nil {
			// one-time promotion; the blob copy stays behind as a backup
			if err := f.structured.ReplaceAll(blobRecords); err != nil {
				log.Warnf("catalog.migrate", err, map[string]any{"count": len(blobRecords)})
			} else {
				log.Infof("catalog.migrate", map[string]any{"count": len(blobRecords)})
			}
		}
		return blobRecords
	}

	return domain.SeedRecords()
}

// LoadIntoState loads the catalog and applies it to the state container.
func (f *Facade) LoadIntoState() []domain.Record {
	records := f.Load()
	f.state.Replace(records, Snapshot(records))
	return records
}

// Save persists the full catalog to the authoritative store. On success the
// state container is replaced and subscribers notified. On failure (quota
// exceeded, storage error) the in-memory catalog is left exactly as it was,
// so unsaved edits are never silently treated as committed — and there is no
// fallback write to the other store.
func (f *Facade) Save(records []domain.Record) error {
	var err error
	if f.structured != nil {
		err = f.structured.ReplaceAll(records)
	} else {
		err = f.blob.Save(records)
	}
	if err != nil {
		log.Errorf("catalog.save", err, map[string]any{"count": len(records)})
		return err
	}
	f.state.Replace(records, Snapshot(records))
	log.Infof("catalog.save", map[string]any{"count": len(records)})
	return nil
}
