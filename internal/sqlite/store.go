package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/grimoire-dev/grimoire/pkg/types"
)

// dbFileName is the backing file created inside Config.DataDir.
const dbFileName = "grimoire.db"

// timeLayout is the timestamp encoding for created_at/updated_at columns.
// Nanosecond precision keeps updated_at DESC ordering stable when two
// writes land within the same second; the fixed-width fraction (unlike
// RFC3339Nano, which trims trailing zeros) keeps string comparison in SQL
// consistent with time order.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// SettingDBID is the settings key holding the install identifier generated
// on first schema initialization.
const SettingDBID = "db_id"

var _ types.Catalog = (*Store)(nil)
var _ types.Settings = (*Store)(nil)

// Store is the SQLite-backed catalog. It owns the single backing file and
// is the only component that touches it. A Store is created by NewStore and
// unusable until Open succeeds.
type Store struct {
	mu   sync.RWMutex
	open bool
	db   *sql.DB
}

// NewStore creates an unopened store.
func NewStore() *Store {
	return &Store{}
}

// Open creates the data directory if needed, opens the backing file, and
// ensures the schema is current: tables, indexes, the search index and its
// sync triggers, plus any additive migrations an older store needs. Safe to
// call against a pre-existing, non-empty store. Returns ErrAlreadyOpen if
// the store is already open.
func (s *Store) Open(config types.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.open {
		return types.ErrAlreadyOpen
	}
	if err := config.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(config.DataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(config.DataDir, dbFileName))
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA foreign_keys = ON",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return fmt.Errorf("setting pragma: %w", err)
		}
	}

	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("initializing schema: %w", err)
		}
	}

	if err := migrate(db); err != nil {
		db.Close()
		return fmt.Errorf("migrating schema: %w", err)
	}

	if err := ensureDBID(db); err != nil {
		db.Close()
		return fmt.Errorf("assigning install id: %w", err)
	}

	s.db = db
	s.open = true
	return nil
}

// Close releases the database connection. Idempotent; after Close all
// operations return ErrStoreClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return nil
	}
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("closing database: %w", err)
	}
	s.db = nil
	s.open = false
	return nil
}

// conn returns the open database handle, or ErrStoreClosed.
func (s *Store) conn() (*sql.DB, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.open {
		return nil, types.ErrStoreClosed
	}
	return s.db, nil
}

// Reindex rebuilds the full-text index from the primary items table. The
// index is derived state; if it is ever lost or corrupted this restores it
// without touching any row data.
func (s *Store) Reindex() error {
	db, err := s.conn()
	if err != nil {
		return err
	}
	if _, err := db.Exec(`INSERT INTO items_fts(items_fts) VALUES('rebuild')`); err != nil {
		return fmt.Errorf("rebuilding search index: %w", err)
	}
	return nil
}

// migrate applies additive migrations bringing an older store up to the
// current shape without discarding data. Currently: the version column,
// which early stores lacked.
func migrate(db *sql.DB) error {
	hasVersion, err := columnExists(db, "items", "version")
	if err != nil {
		return err
	}
	if !hasVersion {
		if _, err := db.Exec("ALTER TABLE items ADD COLUMN version INTEGER NOT NULL DEFAULT 1"); err != nil {
			return fmt.Errorf("adding version column: %w", err)
		}
	}
	return nil
}

// columnExists probes table_info for a column name.
func columnExists(db *sql.DB, table, column string) (bool, error) {
	rows, err := db.Query(fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return false, fmt.Errorf("reading table info for %s: %w", table, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			cid        int
			name, typ  string
			notNull    int
			dflt       any
			primaryKey int
		)
		if err := rows.Scan(&cid, &name, &typ, &notNull, &dflt, &primaryKey); err != nil {
			return false, fmt.Errorf("scanning table info: %w", err)
		}
		if name == column {
			return true, nil
		}
	}
	return false, rows.Err()
}

// ensureDBID stores a generated install identifier in settings on first
// initialization. Existing stores keep theirs.
func ensureDBID(db *sql.DB) error {
	var existing string
	err := db.QueryRow("SELECT value FROM settings WHERE key = ?", SettingDBID).Scan(&existing)
	if err == nil {
		return nil
	}
	if err != sql.ErrNoRows {
		return err
	}

	id, err := uuid.NewV7()
	if err != nil {
		// v7 needs a time source; fall back to random.
		id = uuid.New()
	}
	_, err = db.Exec("INSERT INTO settings (key, value) VALUES (?, ?)", SettingDBID, id.String())
	return err
}

// nullable maps empty strings to NULL for optional columns.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// stringOr returns the string value of a nullable column.
func stringOr(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

// parseTime decodes a stored timestamp. RFC3339Nano accepts both the
// fixed-fraction layout written by this store and plain RFC3339 from older
// rows.
func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing timestamp %q: %w", s, err)
	}
	return t, nil
}
