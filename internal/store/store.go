// Package store is the SQLite persistence behind the site: visitor metrics
// for the admin dashboard and per-visitor preferences such as the theme.
package store

import (
	"database/sql"
	"log"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"
)

// Store wraps the database handle.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the SQLite database at path and applies
// the schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrapf(err, "open database %s", path)
	}
	// SQLite serializes writers; a single connection also keeps in-memory
	// databases alive across queries.
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.Migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Migrate creates the tables. It is safe to run on every start.
func (s *Store) Migrate() error {
	createVisitorTable := `
	CREATE TABLE IF NOT EXISTS visitors (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		hashed_ip TEXT NOT NULL,  -- hashed, never the raw address
		user_agent TEXT,
		path TEXT,
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP
	)`
	if _, err := s.db.Exec(createVisitorTable); err != nil {
		return errors.Wrap(err, "create visitors table")
	}

	createPreferenceTable := `
	CREATE TABLE IF NOT EXISTS preferences (
		visitor_id TEXT NOT NULL,
		key TEXT NOT NULL,
		value TEXT NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (visitor_id, key)
	)`
	if _, err := s.db.Exec(createPreferenceTable); err != nil {
		return errors.Wrap(err, "create preferences table")
	}

	if _, err := s.db.Exec(`CREATE INDEX IF NOT EXISTS idx_visitors_timestamp ON visitors(timestamp)`); err != nil {
		return errors.Wrap(err, "create visitors index")
	}

	log.Println("Database schema ready")
	return nil
}
