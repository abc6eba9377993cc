package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/grimoire-dev/grimoire/pkg/types"
)

// GetSetting returns the value stored for key, or ErrNotFound.
func (s *Store) GetSetting(key string) (string, error) {
	db, err := s.conn()
	if err != nil {
		return "", err
	}

	var value string
	err = db.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", types.ErrNotFound
		}
		return "", fmt.Errorf("getting setting %q: %w", key, err)
	}
	return value, nil
}

// SetSetting stores value under key. Last write wins; no history.
func (s *Store) SetSetting(key, value string) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	if _, err := db.Exec("INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)", key, value); err != nil {
		return fmt.Errorf("setting %q: %w", key, err)
	}
	return nil
}

// DeleteSetting removes key. Idempotent: deleting an absent key succeeds.
func (s *Store) DeleteSetting(key string) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	if _, err := db.Exec("DELETE FROM settings WHERE key = ?", key); err != nil {
		return fmt.Errorf("deleting setting %q: %w", key, err)
	}
	return nil
}
