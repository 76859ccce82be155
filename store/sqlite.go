package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/dylan/commitlabels/logging"
	_ "modernc.org/sqlite"
)

// SQLite is a KV backed by a single-table sqlite database.
type SQLite struct {
	db   *sql.DB
	path string
}

var (
	cache   = make(map[string]*SQLite)
	cacheMu sync.Mutex
)

// Open opens (or returns a cached) store at path, creating the database
// and its table when missing.
func Open(path string) (*SQLite, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving store path: %w", err)
	}

	cacheMu.Lock()
	defer cacheMu.Unlock()

	if s, ok := cache[abs]; ok {
		return s, nil
	}

	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return nil, fmt.Errorf("creating store directory: %w", err)
	}

	db, err := sql.Open("sqlite", abs)
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}
	// One connection keeps writes serialized without busy retries.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key   TEXT PRIMARY KEY,
		value BLOB NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating kv table: %w", err)
	}

	s := &SQLite{db: db, path: abs}
	cache[abs] = s

	log := logging.Component("store")
	log.Debug().Str("path", abs).Msg("store opened")
	return s, nil
}

// Path returns the database file path.
func (s *SQLite) Path() string {
	return s.path
}

func (s *SQLite) Get(key string) ([]byte, bool, error) {
	var value []byte
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading %q: %w", key, err)
	}
	return value, true, nil
}

func (s *SQLite) Set(key string, value []byte) error {
	_, err := s.db.Exec(`INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		return fmt.Errorf("writing %q: %w", key, err)
	}
	return nil
}

// Close closes the database and drops it from the cache.
func (s *SQLite) Close() error {
	cacheMu.Lock()
	delete(cache, s.path)
	cacheMu.Unlock()
	return s.db.Close()
}
