package types

// CategoryCount is one row of the category aggregate: a category observed
// in the store and its item count. Categories with zero items are absent.
type CategoryCount struct {
	Category Category
	Count    int
}

// TagCount is one row of the derived tag frequency table.
type TagCount struct {
	Tag   string
	Count int
}

// Catalog is the storage contract consumed by the UI layer. All operations
// are synchronous; mutating calls must come from a single writer (the store
// does not guard the snapshot-then-write sequence against concurrent
// writers on the same backing file).
type Catalog interface {
	// Insert persists a new item, assigning its identifier and version 1.
	// Returns *ValidationError for missing required fields and
	// ErrDuplicateName when the name is taken.
	Insert(item *Item) error

	// Get returns the current row for id, or ErrNotFound. Never touches
	// snapshots.
	Get(id int64) (*Item, error)

	// Update snapshots the persisted state of the item, then writes the
	// given field values with the version incremented by one and a
	// refreshed UpdatedAt. Returns ErrMissingID for unpersisted items and
	// ErrNotFound when the identifier does not exist.
	Update(item *Item) error

	// Delete removes the item, its snapshots, and its search index entry.
	// Deleting a nonexistent identifier is not an error.
	Delete(id int64) error

	// ListRecent returns up to limit items ordered by UpdatedAt descending.
	ListRecent(limit int) ([]*Item, error)

	// ListByCategory returns items of the category, most recently updated
	// first.
	ListByCategory(category Category) ([]*Item, error)

	// ListByTag returns items whose raw tag string contains tag as a
	// substring. Over-matches when one tag is a substring of another.
	ListByTag(tag string) ([]*Item, error)

	// Search returns items matching the full-text query, ordered by the
	// index's relevance ranking. An empty or whitespace query returns no
	// results without touching the index.
	Search(query string) ([]*Item, error)

	// CountByCategory returns item counts grouped by category, ordered by
	// category name.
	CountByCategory() ([]CategoryCount, error)

	// TagsWithCounts derives the tag frequency table: lowercased trimmed
	// comma-split tokens counted across all items, sorted by count
	// descending then tag ascending.
	TagsWithCounts() ([]TagCount, error)

	// ListVersions returns the current row first (IsCurrent set), then
	// snapshots in descending version order. Unknown identifiers yield an
	// empty slice, not an error.
	ListVersions(itemID int64) ([]ItemVersion, error)

	// GetVersion returns the current row when version matches it, a stored
	// snapshot otherwise, or ErrNotFound.
	GetVersion(itemID, version int64) (*ItemVersion, error)

	// RestoreVersion re-applies the field values of an old version through
	// the ordinary update path, producing a new, higher version. Returns
	// the restored item or ErrNotFound.
	RestoreVersion(itemID, version int64) (*Item, error)
}

// Settings is a flat key/value store persisted alongside the catalog.
// Last write wins; values carry no history.
type Settings interface {
	// GetSetting returns the value for key, or ErrNotFound.
	GetSetting(key string) (string, error)

	// SetSetting stores the value for key, replacing any previous value.
	SetSetting(key, value string) error

	// DeleteSetting removes the key. Idempotent.
	DeleteSetting(key string) error
}
