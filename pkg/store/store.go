// Package store provides the public API for the SQLite-backed grimoire
// catalog, keeping the implementation internal.
package store

import (
	"github.com/grimoire-dev/grimoire/internal/sqlite"
	"github.com/grimoire-dev/grimoire/pkg/types"
)

// Store is the versioned item store: a types.Catalog and types.Settings
// over a single local SQLite file, with a rebuildable full-text index.
type Store interface {
	types.Catalog
	types.Settings

	// Open initializes the backing file and schema. Idempotent schema
	// setup; returns types.ErrAlreadyOpen on a second Open.
	Open(config types.Config) error

	// Close releases the backing file. Idempotent.
	Close() error

	// Reindex rebuilds the derived search index from the primary rows.
	Reindex() error
}

// New creates an unopened SQLite store.
//
// Example:
//
//	s := store.New()
//	err := s.Open(types.Config{DataDir: dir})
//	defer s.Close()
func New() Store {
	return sqlite.NewStore()
}
