package store

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"motoparts/internal/domain"
)

// ReplaceAll atomically clears the table and inserts the given records. On
// any failure the transaction rolls back and the previous contents survive.
func (s *Store) ReplaceAll(records []domain.Record) error {
	tx, err := s.db.Beginx()
	if err != nil {
		return fmt.Errorf("store: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM products`); err != nil {
		return fmt.Errorf("store: clear: %w", err)
	}
	for _, r := range records {
		if err := insertRecord(tx, r, false); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// LoadAll returns every stored record. Order is unspecified; callers must
// not rely on it. An empty store yields an empty slice, not an error.
func (s *Store) LoadAll() ([]domain.Record, error) {
	var rows []string
	if err := s.db.Select(&rows, `SELECT data FROM products`); err != nil {
		return nil, fmt.Errorf("store: load: %w", err)
	}
	out := make([]domain.Record, 0, len(rows))
	for _, raw := range rows {
		var r domain.Record
		if err := json.Unmarshal([]byte(raw), &r); err != nil {
			return nil, fmt.Errorf("store: decode record: %w", err)
		}
		out = append(out, r)
	}
	return out, nil
}

// Add inserts a single record and fails with ErrDuplicateID when the id is
// already present.
func (s *Store) Add(r domain.Record) error {
	tx, err := s.db.Beginx()
	if err != nil {
		return fmt.Errorf("store: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()
	if err := insertRecord(tx, r, false); err != nil {
		return err
	}
	return tx.Commit()
}

// Update upserts a single record.
func (s *Store) Update(r domain.Record) error {
	tx, err := s.db.Beginx()
	if err != nil {
		return fmt.Errorf("store: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()
	if err := insertRecord(tx, r, true); err != nil {
		return err
	}
	return tx.Commit()
}

// Remove deletes by id. Removing an absent id is a no-op.
func (s *Store) Remove(id int64) error {
	if _, err := s.db.Exec(`DELETE FROM products WHERE id = ?`, id); err != nil {
		return fmt.Errorf("store: remove %d: %w", id, err)
	}
	return nil
}

// Count returns the number of stored records.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.Get(&n, `SELECT COUNT(*) FROM products`); err != nil {
		return 0, fmt.Errorf("store: count: %w", err)
	}
	return n, nil
}

func insertRecord(tx *sqlx.Tx, r domain.Record, upsert bool) error {
	data, err := json.Marshal(&r)
	if err != nil {
		return fmt.Errorf("store: encode record %d: %w", r.ID, err)
	}
	stmt := `INSERT INTO products(id, name, category, brand, status, data) VALUES(?,?,?,?,?,?)`
	if upsert {
		stmt += ` ON CONFLICT(id) DO UPDATE SET
		  name=excluded.name, category=excluded.category, brand=excluded.brand,
		  status=excluded.status, data=excluded.data`
	}
	if _, err := tx.Exec(stmt, r.ID, r.Name, r.Category, r.Brand, r.Status, string(data)); err != nil {
		if !upsert && strings.Contains(err.Error(), "UNIQUE constraint") {
			return fmt.Errorf("%w: %d", ErrDuplicateID, r.ID)
		}
		return fmt.Errorf("store: insert %d: %w", r.ID, err)
	}
	return nil
}
