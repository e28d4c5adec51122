// Package store implements the structured record store: one SQLite row per
// catalog record, keyed by id, with secondary indexes for future queries.
// The full record JSON rides in a data column so the wire shape stays the
// single source of truth.
package store

import (
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

var (
	// ErrUnavailable wraps any failure to open or reach the database.
	ErrUnavailable = errors.New("store: unavailable")

	// ErrDuplicateID is returned by Add when the id already exists.
	ErrDuplicateID = errors.New("store: duplicate id")
)

type Store struct {
	db *sqlx.DB
}

// Open creates or opens the SQLite database at dsn and ensures the schema.
// SQLite supports a single writer, so the pool is capped at one connection;
// WAL mode keeps concurrent readers (other processes polling the same data
// dir) unblocked during writes.
func Open(dsn string) (*Store, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("%w: %s: %v", ErrUnavailable, pragma, err)
		}
	}
	if err := ensureSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS products(
  id       INTEGER PRIMARY KEY,
  name     TEXT NOT NULL DEFAULT '',
  category TEXT NOT NULL DEFAULT '',
  brand    TEXT NOT NULL DEFAULT '',
  status   TEXT NOT NULL DEFAULT 'active',
  data     TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_products_name     ON products(LOWER(name));
CREATE INDEX IF NOT EXISTS idx_products_category ON products(category);
CREATE INDEX IF NOT EXISTS idx_products_brand    ON products(brand);
CREATE INDEX IF NOT EXISTS idx_products_status   ON products(status);
`
	_, err := db.Exec(schema)
	return err
}
