// Package sqlite implements the SQLite storage backend for the grimoire
// catalog: the primary items table, the item_versions snapshot table, the
// settings table, and the items_fts full-text index kept in sync by
// triggers.
package sqlite

// Table DDL. All statements are idempotent so schema setup can run on
// every open against a pre-existing store.
const (
	createItems = `CREATE TABLE IF NOT EXISTS items (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL UNIQUE,
    category TEXT NOT NULL CHECK(category IN ('prompt', 'agent', 'skill', 'command')),
    description TEXT,
    content TEXT NOT NULL,

    model TEXT,
    tools TEXT,
    allowed_tools TEXT,
    argument_hint TEXT,
    permission_mode TEXT,
    skills TEXT,

    tags TEXT,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL,
    version INTEGER NOT NULL DEFAULT 1
);`

	createItemVersions = `CREATE TABLE IF NOT EXISTS item_versions (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    item_id INTEGER NOT NULL,
    version INTEGER NOT NULL,

    name TEXT NOT NULL,
    category TEXT NOT NULL,
    description TEXT,
    content TEXT NOT NULL,
    model TEXT,
    tools TEXT,
    allowed_tools TEXT,
    argument_hint TEXT,
    permission_mode TEXT,
    skills TEXT,
    tags TEXT,

    created_at TEXT NOT NULL,

    FOREIGN KEY (item_id) REFERENCES items(id) ON DELETE CASCADE
);`

	createSettings = `CREATE TABLE IF NOT EXISTS settings (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);`
)

// Full-text search over name, description, content, and tags. items_fts is
// an external-content table over items, so it stores no copy of the row
// data and can be rebuilt from the primary table at any time.
const createItemsFTS = `CREATE VIRTUAL TABLE IF NOT EXISTS items_fts USING fts5(
    name, description, content, tags,
    content='items',
    content_rowid='id'
);`

// Triggers keeping items_fts consistent with items on every row mutation.
// The update trigger removes the old entry before inserting the new one; a
// stale entry left behind would corrupt ranking.
const (
	triggerItemsInsert = `CREATE TRIGGER IF NOT EXISTS items_ai AFTER INSERT ON items BEGIN
    INSERT INTO items_fts(rowid, name, description, content, tags)
    VALUES (new.id, new.name, new.description, new.content, new.tags);
END;`

	triggerItemsDelete = `CREATE TRIGGER IF NOT EXISTS items_ad AFTER DELETE ON items BEGIN
    INSERT INTO items_fts(items_fts, rowid, name, description, content, tags)
    VALUES ('delete', old.id, old.name, old.description, old.content, old.tags);
END;`

	triggerItemsUpdate = `CREATE TRIGGER IF NOT EXISTS items_au AFTER UPDATE ON items BEGIN
    INSERT INTO items_fts(items_fts, rowid, name, description, content, tags)
    VALUES ('delete', old.id, old.name, old.description, old.content, old.tags);
    INSERT INTO items_fts(rowid, name, description, content, tags)
    VALUES (new.id, new.name, new.description, new.content, new.tags);
END;`
)

// Index DDL for common queries.
const (
	idxItemsCategory = `CREATE INDEX IF NOT EXISTS idx_items_category ON items(category);`
	idxItemsUpdated  = `CREATE INDEX IF NOT EXISTS idx_items_updated ON items(updated_at DESC);`
	idxVersionsItem  = `CREATE INDEX IF NOT EXISTS idx_versions_item ON item_versions(item_id, version DESC);`
)

// schemaDDL lists all schema statements in dependency order.
var schemaDDL = []string{
	createItems,
	createItemVersions,
	createSettings,
	createItemsFTS,
	triggerItemsInsert,
	triggerItemsDelete,
	triggerItemsUpdate,
	idxItemsCategory,
	idxItemsUpdated,
	idxVersionsItem,
}
