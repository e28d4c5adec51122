package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"motoparts/internal/domain"
	"motoparts/internal/taxonomy"
)

// Service translates user intents (submit form, confirm delete, pick an
// import file) into full read-modify-write cycles through the facade.
type Service struct {
	facade *Facade
	tax    *taxonomy.Service
	now    func() time.Time

	// mu serializes the whole read-modify-write cycle of every mutation.
	// Without it two concurrent requests read the same slice and the second
	// save drops the first's change. Also guards lastID.
	mu     sync.Mutex
	lastID int64
}

func NewService(facade *Facade, tax *taxonomy.Service) *Service {
	return &Service{facade: facade, tax: tax, now: time.Now}
}

// Upsert creates or replaces one record and persists the full catalog.
// A zero id means create: identity is the wall-clock millisecond at the
// moment of creation, bumped when two creations land in the same tick so
// ids stay monotonic within a session. A set id replaces the stored record
// wholesale, never as a partial patch. The category is always recomputed
// from the subcategory; the form value is never trusted.
func (s *Service) Upsert(r domain.Record) (domain.Record, error) {
	if len(r.Gallery) > domain.GalleryMax {
		return r, fmt.Errorf("%w: %d images", ErrGalleryFull, len(r.Gallery))
	}
	r.Category = s.tax.CategoryOf(r.Subcategory)
	r.Normalize()

	s.mu.Lock()
	defer s.mu.Unlock()
	records := s.facade.State().Records()
	if r.ID == 0 {
		r.ID = s.nextID()
		if r.Code == "" {
			r.Code = fmt.Sprintf("AUTO-%d", r.ID)
		}
		records = append(records, r)
	} else {
		replaced := false
		for i := range records {
			if records[i].ID == r.ID {
				records[i] = r
				replaced = true
				break
			}
		}
		if !replaced {
			records = append(records, r)
		}
	}
	if err := s.facade.Save(records); err != nil {
		return r, err
	}
	return r, nil
}

// Delete removes the record with the given id and persists the rest.
func (s *Service) Delete(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	records := s.facade.State().Records()
	kept := records[:0]
	for _, r := range records {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	return s.facade.Save(kept)
}

// Import replaces the whole catalog with an externally supplied JSON array.
// The only shape check is "is the top level an array"; anything else is
// ErrFormat and the existing catalog stays untouched.
func (s *Service) Import(src io.Reader) (int, error) {
	data, err := io.ReadAll(src)
	if err != nil {
		return 0, fmt.Errorf("catalog: read import: %w", err)
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return 0, ErrFormat
	}
	var records []domain.Record
	if err := json.Unmarshal(trimmed, &records); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.facade.Save(records); err != nil {
		return 0, err
	}
	return len(records), nil
}

// Export writes the current catalog as pretty-printed JSON. Pure: no
// persistence side effect.
func (s *Service) Export(w io.Writer) error {
	records := s.facade.State().Records()
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

// ExportFilename embeds the current date, matching the historical download
// name.
func (s *Service) ExportFilename() string {
	return fmt.Sprintf("motoparts-produtos-%s.json", s.now().Format("2006-01-02"))
}

// RenameBrand rewrites the brand on every referencing record, persists the
// catalog, then updates the registry. The new name is validated against the
// registry up front: a rename that would be rejected must not have already
// rewritten records. Records then go before the registry so its reference
// guard sees zero remaining uses of the old name.
func (s *Service) RenameBrand(oldName, newName string) error {
	newName = strings.ToLower(strings.TrimSpace(newName))
	if err := s.tax.CheckRename(oldName, newName); err != nil {
		return err
	}
	if strings.EqualFold(oldName, newName) {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	records := s.facade.State().Records()
	changed := false
	for i := range records {
		if strings.EqualFold(records[i].Brand, oldName) {
			records[i].Brand = newName
			changed = true
		}
	}
	if changed {
		if err := s.facade.Save(records); err != nil {
			return err
		}
	}
	return s.tax.RenameBrand(oldName, newName)
}

// nextID assumes the caller holds mu.
func (s *Service) nextID() int64 {
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}
