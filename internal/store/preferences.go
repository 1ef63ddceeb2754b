package store

import (
	"database/sql"
	"time"

	"github.com/pkg/errors"

	"github.com/sophiafu/portfolio/internal/theme"
)

// Preferences is the key/value storage of one visitor.
type Preferences struct {
	store   *Store
	visitor string
}

var _ theme.Storage = (*Preferences)(nil)

// Preferences returns the storage of visitorID.
func (s *Store) Preferences(visitorID string) *Preferences {
	return &Preferences{store: s, visitor: visitorID}
}

func (p *Preferences) Get(key string) (string, bool, error) {
	var value string
	err := p.store.db.QueryRow(
		`SELECT value FROM preferences WHERE visitor_id = ? AND key = ?`,
		p.visitor, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrapf(err, "read preference %s", key)
	}
	return value, true, nil
}

func (p *Preferences) Set(key, value string) error {
	_, err := p.store.db.Exec(`
		INSERT INTO preferences (visitor_id, key, value, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(visitor_id, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, p.visitor, key, value, time.Now())
	if err != nil {
		return errors.Wrapf(err, "write preference %s", key)
	}
	return nil
}
