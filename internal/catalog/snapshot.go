package catalog

import (
	"encoding/json"
	"sort"

	"motoparts/internal/domain"
)

// Snapshot produces the deterministic serialization used for change
// detection: records sorted by id, then marshaled. Storage order is
// unspecified, so sorting keeps snapshots comparable across reads.
// Whole-snapshot comparison is deliberately coarse; at tens to low hundreds
// of records it is far cheaper than a wasted re-render.
func Snapshot(records []domain.Record) string {
	sorted := make([]domain.Record, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })
	b, err := json.Marshal(sorted)
	if err != nil {
		return ""
	}
	return string(b)
}
