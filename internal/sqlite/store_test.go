package sqlite

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grimoire-dev/grimoire/pkg/types"
)

// setupStore creates an open store over a temp directory, closed on test
// cleanup.
func setupStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore()
	require.NoError(t, s.Open(types.Config{DataDir: t.TempDir()}))
	t.Cleanup(func() { s.Close() })
	return s
}

// mustInsert persists a fresh prompt item and returns it.
func mustInsert(t *testing.T, s *Store, name, content string) *types.Item {
	t.Helper()
	item := types.NewItem(name, types.CategoryPrompt, content)
	require.NoError(t, s.Insert(item))
	return item
}

func TestOpenClose(t *testing.T) {
	dir := t.TempDir()

	s := NewStore()
	require.NoError(t, s.Open(types.Config{DataDir: dir}))
	require.ErrorIs(t, s.Open(types.Config{DataDir: dir}), types.ErrAlreadyOpen)

	require.NoError(t, s.Close())
	require.NoError(t, s.Close(), "close is idempotent")

	_, err := s.Get(1)
	assert.ErrorIs(t, err, types.ErrStoreClosed)
	assert.ErrorIs(t, s.Insert(types.NewItem("x", types.CategoryPrompt, "y")), types.ErrStoreClosed)
}

func TestOpenRejectsEmptyDataDir(t *testing.T) {
	s := NewStore()
	require.ErrorIs(t, s.Open(types.Config{}), types.ErrInvalidConfig)
}

func TestReopenKeepsData(t *testing.T) {
	dir := t.TempDir()

	s := NewStore()
	require.NoError(t, s.Open(types.Config{DataDir: dir}))
	item := types.NewItem("review", types.CategoryPrompt, "Review this diff")
	require.NoError(t, s.Insert(item))
	require.NoError(t, s.Close())

	// Schema setup runs again on the existing, non-empty store.
	s2 := NewStore()
	require.NoError(t, s2.Open(types.Config{DataDir: dir}))
	defer s2.Close()

	got, err := s2.Get(item.ID)
	require.NoError(t, err)
	assert.Equal(t, "review", got.Name)
	assert.Equal(t, int64(1), got.Version)
}

func TestInstallIDGeneratedOnce(t *testing.T) {
	dir := t.TempDir()

	s := NewStore()
	require.NoError(t, s.Open(types.Config{DataDir: dir}))
	id1, err := s.GetSetting(SettingDBID)
	require.NoError(t, err)
	_, err = uuid.Parse(id1)
	require.NoError(t, err, "db_id should be a UUID")
	require.NoError(t, s.Close())

	s2 := NewStore()
	require.NoError(t, s2.Open(types.Config{DataDir: dir}))
	defer s2.Close()
	id2, err := s2.GetSetting(SettingDBID)
	require.NoError(t, err)
	assert.Equal(t, id1, id2, "install id survives reopen")
}

func TestMigrationAddsVersionColumn(t *testing.T) {
	dir := t.TempDir()

	// Lay down a legacy store: items table without the version column,
	// one existing row.
	db, err := sql.Open("sqlite", filepath.Join(dir, dbFileName))
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE items (
	    id INTEGER PRIMARY KEY AUTOINCREMENT,
	    name TEXT NOT NULL UNIQUE,
	    category TEXT NOT NULL,
	    description TEXT,
	    content TEXT NOT NULL,
	    model TEXT, tools TEXT, allowed_tools TEXT, argument_hint TEXT,
	    permission_mode TEXT, skills TEXT, tags TEXT,
	    created_at TEXT NOT NULL,
	    updated_at TEXT NOT NULL
	)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO items (name, category, content, created_at, updated_at)
	    VALUES ('old', 'prompt', 'legacy body', '2024-01-02T15:04:05Z', '2024-01-02T15:04:05Z')`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	s := NewStore()
	require.NoError(t, s.Open(types.Config{DataDir: dir}))
	defer s.Close()

	items, err := s.ListRecent(10)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "old", items[0].Name)
	assert.Equal(t, int64(1), items[0].Version, "migrated rows default to version 1")

	// The migrated row predates the insert trigger, so it is not in the
	// index until a rebuild.
	require.NoError(t, s.Reindex())
	found, err := s.Search("legacy")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "old", found[0].Name)
}

func TestReindexRestoresLostIndex(t *testing.T) {
	s := setupStore(t)
	mustInsert(t, s, "review", "unique searchable body")
	mustInsert(t, s, "deploy", "another body entirely")

	require.NoError(t, s.Reindex())

	found, err := s.Search("searchable")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "review", found[0].Name)
}
