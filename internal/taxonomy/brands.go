package taxonomy

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"motoparts/internal/log"
)

// Brands resolves the registry: built-in ∪ custom, minus removed, sorted.
func (s *Service) Brands() []string {
	custom := s.loadBrandList(CustomBrandsKey)
	removed := s.loadBrandList(RemovedBrandsKey)

	out := map[string]struct{}{}
	for _, b := range BuiltinBrands() {
		out[b] = struct{}{}
	}
	for _, b := range custom {
		out[b] = struct{}{}
	}
	for _, b := range removed {
		delete(out, b)
	}
	brands := make([]string, 0, len(out))
	for b := range out {
		brands = append(brands, b)
	}
	sort.Strings(brands)
	return brands
}

// AddBrand registers a new custom brand (stored lowercase).
func (s *Service) AddBrand(name string) error {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return fmt.Errorf("taxonomy: brand name is required")
	}
	for _, b := range s.Brands() {
		if b == name {
			return fmt.Errorf("taxonomy: brand %q already exists", name)
		}
	}
	custom := s.loadBrandList(CustomBrandsKey)
	custom = append(custom, name)
	return s.saveBrandList(CustomBrandsKey, custom)
}

// RemoveBrand deletes a brand from the registry, refusing while any record
// references it. Custom brands are dropped from the custom list; built-in
// brands are recorded on the removed list.
func (s *Service) RemoveBrand(name string) error {
	if n := s.refs.CountByBrand(name); n > 0 {
		return &ReferenceError{Kind: "brand", Name: name, Count: n}
	}
	custom := s.loadBrandList(CustomBrandsKey)
	for i, b := range custom {
		if b == name {
			custom = append(custom[:i], custom[i+1:]...)
			return s.saveBrandList(CustomBrandsKey, custom)
		}
	}
	removed := s.loadBrandList(RemovedBrandsKey)
	for _, b := range removed {
		if b == name {
			return nil
		}
	}
	removed = append(removed, name)
	return s.saveBrandList(RemovedBrandsKey, removed)
}

// CheckRename validates that newName could take oldName's place in the
// registry, without changing anything. Callers that rewrite records before
// renaming run this first so a rejected rename never touches their data.
func (s *Service) CheckRename(oldName, newName string) error {
	newName = strings.ToLower(strings.TrimSpace(newName))
	if newName == "" {
		return fmt.Errorf("taxonomy: brand name is required")
	}
	if strings.EqualFold(oldName, newName) {
		return nil
	}
	for _, b := range s.Brands() {
		if b == newName {
			return fmt.Errorf("taxonomy: brand %q already exists", newName)
		}
	}
	return nil
}

// RenameBrand updates the registry entry. Rewriting the brand on records
// that reference it is the catalog service's job; this only touches the
// registry so the two stay composable.
func (s *Service) RenameBrand(oldName, newName string) error {
	newName = strings.ToLower(strings.TrimSpace(newName))
	if err := s.CheckRename(oldName, newName); err != nil {
		return err
	}
	if strings.EqualFold(oldName, newName) {
		return nil
	}
	custom := s.loadBrandList(CustomBrandsKey)
	for i, b := range custom {
		if b == oldName {
			custom[i] = newName
			return s.saveBrandList(CustomBrandsKey, custom)
		}
	}
	// renaming a built-in brand: retire the old name, add the new one
	if err := s.RemoveBrand(oldName); err != nil {
		return err
	}
	return s.AddBrand(newName)
}

func (s *Service) loadBrandList(key string) []string {
	raw, ok, err := s.kv.Get(key)
	if err != nil {
		log.Warnf("taxonomy.brands.load", err, map[string]any{"key": key})
		return nil
	}
	if !ok {
		return nil
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err != nil {
		log.Warnf("taxonomy.brands.load", err, map[string]any{"key": key})
		return nil
	}
	return list
}

func (s *Service) saveBrandList(key string, list []string) error {
	if list == nil {
		list = []string{}
	}
	doc, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("taxonomy: encode %s: %w", key, err)
	}
	return s.kv.Set(key, doc)
}
