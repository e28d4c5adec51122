package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Record status values.
const (
	StatusActive       = "active"
	StatusInactive     = "inactive"
	StatusDiscontinued = "discontinued"
)

// GalleryMax caps how many gallery images a record may carry.
const GalleryMax = 10

// Record is one catalog item. The JSON shape is the persisted wire format
// shared by both backing stores and the import/export files.
type Record struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Code        string `json:"code"`
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`
	Brand       string `json:"brand,omitempty"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`

	Applications     []string `json:"applications,omitempty"`
	CompatibleModels []string `json:"compatibleModels,omitempty"`
	Years            []string `json:"years,omitempty"`

	Color          string `json:"color,omitempty"`
	Material       string `json:"material,omitempty"`
	Weight         string `json:"weight,omitempty"`
	OEM            string `json:"oem,omitempty"`
	Specifications string `json:"specifications,omitempty"`
	Warranty       string `json:"warranty,omitempty"`

	Image   string   `json:"image,omitempty"`
	Gallery []string `json:"gallery,omitempty"`

	Stock    int    `json:"stock"`
	MinStock int    `json:"minStock"`
	Status   string `json:"status"`

	SpecificFields map[string]string `json:"specificFields,omitempty"`
}

// UnmarshalJSON folds the legacy comma-joined fields (`application`, `year`)
// that older exports and old blob-store payloads still contain into the
// canonical list-valued fields. They are never written back.
func (r *Record) UnmarshalJSON(b []byte) error {
	type plain Record
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*r = Record(p)

	var legacy struct {
		Application string `json:"application"`
		Year        string `json:"year"`
	}
	if err := json.Unmarshal(b, &legacy); err != nil {
		return err
	}
	if len(r.Applications) == 0 && legacy.Application != "" {
		r.Applications = splitList(legacy.Application)
	}
	if len(r.Years) == 0 && legacy.Year != "" {
		r.Years = splitList(legacy.Year)
	}
	r.Normalize()
	return nil
}

// Normalize clamps inventory fields and fills enum defaults. Safe to call on
// records from any source; it never touches identity or descriptive fields.
func (r *Record) Normalize() {
	if r.Stock < 0 {
		r.Stock = 0
	}
	if r.MinStock < 0 {
		r.MinStock = 0
	}
	switch r.Status {
	case StatusActive, StatusInactive, StatusDiscontinued:
	default:
		r.Status = StatusActive
	}
	if len(r.SpecificFields) == 0 {
		r.SpecificFields = nil
	}
}

// HasImage reports whether the record carries any image payload. Callers must
// treat an empty string and an absent field the same way.
func (r *Record) HasImage() bool {
	return r.Image != "" || len(r.Gallery) > 0
}

// DisplayName synthesizes the admin list label: the base name plus up to two
// applications (or compatible models when no application is set) and a +N
// marker for the rest. Presentation only, never stored.
func (r *Record) DisplayName() string {
	items := r.Applications
	if len(items) == 0 {
		items = r.CompatibleModels
	}
	if len(items) == 0 {
		return r.Name
	}
	shown := items
	if len(shown) > 2 {
		shown = shown[:2]
	}
	label := r.Name + " " + strings.Join(shown, " / ")
	if extra := len(items) - 2; extra > 0 {
		label += fmt.Sprintf(" (+%d)", extra)
	}
	return label
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
