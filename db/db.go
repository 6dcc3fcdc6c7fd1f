// ABOUTME: Local store connection management and initialization
// ABOUTME: Opens the SQLite database in WAL mode and wraps it in a Store
package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/harperreed/shopbook/models"
)

// Store is the durable per-kind record store. All collaborator writes go
// through it; records are always written as unsynced.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the local database at path. An open failure
// is fatal for the session and wraps models.ErrStorageUnavailable; callers
// retry lazily by calling Open again, never in a loop.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("%w: create %s: %v", models.ErrStorageUnavailable, dir, err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", models.ErrStorageUnavailable, path, err)
	}

	// Single connection avoids database locked errors
	db.SetMaxOpenConns(1)

	if err := InitSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: init schema: %v", models.ErrStorageUnavailable, err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
