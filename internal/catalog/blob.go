package catalog

import (
	"encoding/json"
	"fmt"

	"motoparts/internal/domain"
	"motoparts/internal/kv"
)

// ProductsKey is the key-value store key holding the serialized catalog.
const ProductsKey = "motoparts_products"

// Blob stores the whole catalog as one JSON array under a fixed key in the
// key-value store. It is the fallback backend and the migration source.
type Blob struct {
	kv *kv.Store
}

func NewBlob(s *kv.Store) *Blob { return &Blob{kv: s} }

// Load returns the stored array, or nil when the key has never been
// written. A value that fails to parse reports kv.ErrCorrupt; callers treat
// that as empty and never repair the stored value.
func (b *Blob) Load() ([]domain.Record, error) {
	raw, ok, err := b.kv.Get(ProductsKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	var records []domain.Record
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("%w: %s", kv.ErrCorrupt, ProductsKey)
	}
	return records, nil
}

// Save serializes the full array under the fixed key. kv.ErrQuotaExceeded
// surfaces unchanged; image payloads embedded as text make this the usual
// failure mode of the fallback backend.
func (b *Blob) Save(records []domain.Record) error {
	if records == nil {
		records = []domain.Record{}
	}
	doc, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("catalog: encode blob: %w", err)
	}
	return b.kv.Set(ProductsKey, doc)
}
