// Package kv is a small key-value blob store on top of SQLite. Collections
// are persisted whole: one key, one encoded blob.
package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned by Get when no value exists for the key.
var ErrNotFound = errors.New("key not found")

// Store wraps a SQLite database holding a single blobs table.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the store at the given path. ":memory:" gives an
// in-memory store. WAL mode is enabled and the schema is created on open.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating store directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS blobs (
		key   TEXT PRIMARY KEY,
		value BLOB NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating blobs table: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the blob stored under key, or ErrNotFound.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM blobs WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("reading key %q: %w", key, err)
	}
	return value, nil
}

// Put writes the blob under key, replacing any existing value.
func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO blobs (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		return fmt.Errorf("writing key %q: %w", key, err)
	}
	return nil
}

// Delete removes the blob under key. Deleting a missing key is not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM blobs WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("deleting key %q: %w", key, err)
	}
	return nil
}
