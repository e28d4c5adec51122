// Package kv implements a single-file key-value store used as the fallback
// and side-table storage: one JSON document mapping string keys to raw JSON
// values, with a hard total-size quota.
package kv

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

var (
	// ErrQuotaExceeded is returned by Set when the serialized store would
	// exceed the configured quota. Nothing is written in that case.
	ErrQuotaExceeded = errors.New("kv: storage quota exceeded")

	// ErrCorrupt is returned when the backing file exists but does not parse.
	// The file is never auto-repaired or truncated; callers treat the read
	// as empty.
	ErrCorrupt = errors.New("kv: corrupt store file")
)

// DefaultQuota is the 5 MiB budget existing data directories were sized
// around.
const DefaultQuota = 5 << 20

// Store is a file-backed key-value store. Safe for concurrent use within a
// single process; cross-process writers are expected to be coordinated by
// the caller (the structured store owns the write path when it is open).
type Store struct {
	mu    sync.Mutex
	path  string
	quota int
}

// Open prepares a store at path. The file is created lazily on first Set.
func Open(path string, quota int) *Store {
	if quota <= 0 {
		quota = DefaultQuota
	}
	return &Store{path: path, quota: quota}
}

// Get returns the raw JSON value stored under key, or ok=false when the key
// (or the whole file) is absent.
func (s *Store) Get(key string) (json.RawMessage, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.read()
	if err != nil {
		return nil, false, err
	}
	v, ok := m[key]
	return v, ok, nil
}

// Set stores value under key, enforcing the quota on the full serialized
// document. A corrupt existing file fails the write rather than clobbering
// whatever is on disk.
func (s *Store) Set(key string, value json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.read()
	if err != nil {
		return err
	}
	m[key] = value

	doc, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("kv: encode: %w", err)
	}
	if len(doc) > s.quota {
		return fmt.Errorf("%w: %d bytes over %d", ErrQuotaExceeded, len(doc)-s.quota, s.quota)
	}
	return s.write(doc)
}

// Delete removes key. Missing keys are a no-op.
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.read()
	if err != nil {
		return err
	}
	if _, ok := m[key]; !ok {
		return nil
	}
	delete(m, key)
	doc, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("kv: encode: %w", err)
	}
	return s.write(doc)
}

func (s *Store) read() (map[string]json.RawMessage, error) {
	b, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]json.RawMessage{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("kv: read %s: %w", s.path, err)
	}
	m := map[string]json.RawMessage{}
	if len(b) == 0 {
		return m, nil
	}
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrCorrupt, s.path)
	}
	return m, nil
}

// write lands the document atomically: temp file in the same directory,
// then rename over the target.
func (s *Store) write(doc []byte) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("kv: mkdir %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".kv-*")
	if err != nil {
		return fmt.Errorf("kv: temp file: %w", err)
	}
	if _, err := tmp.Write(doc); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("kv: write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("kv: close: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("kv: rename: %w", err)
	}
	return nil
}
