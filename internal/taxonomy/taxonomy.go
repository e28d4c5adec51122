// Package taxonomy manages the category/subcategory table and the brand
// registry. Both ship with built-in defaults and are extended by admin
// edits persisted in the key-value store: a modification overlay for
// built-in categories, a map of fully custom categories, and custom/removed
// brand lists.
package taxonomy

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"motoparts/internal/kv"
	"motoparts/internal/log"
)

// Key-value store keys, unchanged from the historical layout so existing
// data directories keep working.
const (
	ModificationsKey = "motoparts_subcategories_modifications"
	CustomKey        = "motoparts_custom_categories"
	CustomBrandsKey  = "motoparts_custom_brands"
	RemovedBrandsKey = "motoparts_removed_brands"
)

// Category is one taxonomy entry: a display label plus its subcategories.
type Category struct {
	Label string   `json:"label"`
	Items []string `json:"items"`
}

// Taxonomy maps category key to entry.
type Taxonomy map[string]Category

// deleted marks an overlay tombstone: a built-in category the admin removed.
func (c Category) deleted() bool { return c.Label == "" && c.Items == nil }

// Resolve layers the three sources with precedence custom > overlay > base.
// Overlay entries only apply to keys that exist in base; an empty overlay
// entry deletes the built-in key. The inputs are never mutated.
func Resolve(base, overlay, custom Taxonomy) Taxonomy {
	out := make(Taxonomy, len(base)+len(custom))
	for key, cat := range base {
		out[key] = cat
	}
	for key, cat := range overlay {
		if _, ok := base[key]; !ok {
			continue
		}
		if cat.deleted() {
			delete(out, key)
			continue
		}
		out[key] = cat
	}
	for key, cat := range custom {
		out[key] = cat
	}
	return out
}

// RefCounter answers how many catalog records reference a category or brand.
// The catalog state container implements it.
type RefCounter interface {
	CountByCategory(key string) int
	CountByBrand(brand string) int
}

// ReferenceError rejects a deletion that would orphan records.
type ReferenceError struct {
	Kind  string // "category" or "brand"
	Name  string
	Count int
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("taxonomy: %s %q is referenced by %d record(s)", e.Kind, e.Name, e.Count)
}

type Service struct {
	kv   *kv.Store
	refs RefCounter
}

func NewService(store *kv.Store, refs RefCounter) *Service {
	return &Service{kv: store, refs: refs}
}

// Categories returns the fully resolved taxonomy. Persisted layers that fail
// to load are logged and skipped, mirroring the load-never-fails policy of
// the persistence facade.
func (s *Service) Categories() Taxonomy {
	return Resolve(Defaults(), s.loadMap(ModificationsKey), s.loadMap(CustomKey))
}

// CategoryOf derives the category key from a subcategory name, or "" when no
// category lists it. Records always store the derived value; it is never
// trusted from form state.
func (s *Service) CategoryOf(subcategory string) string {
	if subcategory == "" {
		return ""
	}
	resolved := s.Categories()
	keys := make([]string, 0, len(resolved))
	for key := range resolved {
		keys = append(keys, key)
	}
	sort.Strings(keys) // deterministic when a subcategory appears twice
	for _, key := range keys {
		for _, item := range resolved[key].Items {
			if item == subcategory {
				return key
			}
		}
	}
	return ""
}

// AddCategory creates a custom category. The key must not collide with any
// resolved category.
func (s *Service) AddCategory(key, label string, items []string) error {
	key = strings.TrimSpace(key)
	if key == "" || strings.TrimSpace(label) == "" {
		return fmt.Errorf("taxonomy: category key and label are required")
	}
	if _, exists := s.Categories()[key]; exists {
		return fmt.Errorf("taxonomy: category %q already exists", key)
	}
	custom := s.loadMap(CustomKey)
	if custom == nil {
		custom = Taxonomy{}
	}
	custom[key] = Category{Label: label, Items: items}
	return s.saveMap(CustomKey, custom)
}

// UpdateCategory rewrites a category's label and items. Custom categories
// update in place; edits to built-in categories land in the overlay.
func (s *Service) UpdateCategory(key, label string, items []string) error {
	custom := s.loadMap(CustomKey)
	if _, ok := custom[key]; ok {
		custom[key] = Category{Label: label, Items: items}
		return s.saveMap(CustomKey, custom)
	}
	if _, ok := Defaults()[key]; !ok {
		return fmt.Errorf("taxonomy: unknown category %q", key)
	}
	overlay := s.loadMap(ModificationsKey)
	if overlay == nil {
		overlay = Taxonomy{}
	}
	overlay[key] = Category{Label: label, Items: items}
	return s.saveMap(ModificationsKey, overlay)
}

// DeleteCategory removes a category, refusing while any record references
// it. Custom categories are dropped from the custom map; built-in ones get
// an overlay tombstone so the deletion survives reloads.
func (s *Service) DeleteCategory(key string) error {
	if _, ok := s.Categories()[key]; !ok {
		return fmt.Errorf("taxonomy: unknown category %q", key)
	}
	if n := s.refs.CountByCategory(key); n > 0 {
		return &ReferenceError{Kind: "category", Name: key, Count: n}
	}
	custom := s.loadMap(CustomKey)
	if _, ok := custom[key]; ok {
		delete(custom, key)
		return s.saveMap(CustomKey, custom)
	}
	overlay := s.loadMap(ModificationsKey)
	if overlay == nil {
		overlay = Taxonomy{}
	}
	overlay[key] = Category{}
	return s.saveMap(ModificationsKey, overlay)
}

func (s *Service) loadMap(key string) Taxonomy {
	raw, ok, err := s.kv.Get(key)
	if err != nil {
		log.Warnf("taxonomy.load", err, map[string]any{"key": key})
		return nil
	}
	if !ok {
		return nil
	}
	var t Taxonomy
	if err := json.Unmarshal(raw, &t); err != nil {
		log.Warnf("taxonomy.load", err, map[string]any{"key": key})
		return nil
	}
	return t
}

func (s *Service) saveMap(key string, t Taxonomy) error {
	doc, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("taxonomy: encode %s: %w", key, err)
	}
	return s.kv.Set(key, doc)
}
