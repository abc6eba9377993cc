package sqlite

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/grimoire-dev/grimoire/pkg/types"
)

// itemColumns is the select list shared by every item query, in scanItem
// order.
const itemColumns = `id, name, category, description, content, model, tools,
       allowed_tools, argument_hint, permission_mode, skills,
       tags, created_at, updated_at, version`

// searchColumns qualifies every column with the items alias; the FTS table
// shares column names with items, so bare names would be ambiguous in the
// search join.
const searchColumns = `i.id, i.name, i.category, i.description, i.content, i.model, i.tools,
       i.allowed_tools, i.argument_hint, i.permission_mode, i.skills,
       i.tags, i.created_at, i.updated_at, i.version`

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanItem hydrates one items row.
func scanItem(row scanner) (*types.Item, error) {
	var (
		item                        types.Item
		category                    string
		description, model, tools   sql.NullString
		allowedTools, argumentHint  sql.NullString
		permissionMode, skills      sql.NullString
		tags                        sql.NullString
		createdAt, updatedAt        string
	)
	err := row.Scan(&item.ID, &item.Name, &category, &description, &item.Content,
		&model, &tools, &allowedTools, &argumentHint, &permissionMode, &skills,
		&tags, &createdAt, &updatedAt, &item.Version)
	if err != nil {
		return nil, err
	}

	item.Category = types.Category(category)
	item.Description = stringOr(description)
	item.Model = stringOr(model)
	item.Tools = stringOr(tools)
	item.AllowedTools = stringOr(allowedTools)
	item.ArgumentHint = stringOr(argumentHint)
	item.PermissionMode = stringOr(permissionMode)
	item.Skills = stringOr(skills)
	item.Tags = stringOr(tags)

	if item.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if item.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return &item, nil
}

// Insert persists a new item with version 1 and assigns its identifier.
// The search index gains an entry in the same transaction via the insert
// trigger.
func (s *Store) Insert(item *types.Item) error {
	db, err := s.conn()
	if err != nil {
		return err
	}
	if err := item.Validate(); err != nil {
		return err
	}

	var dupID int64
	err = db.QueryRow("SELECT id FROM items WHERE name = ?", item.Name).Scan(&dupID)
	if err == nil {
		return types.ErrDuplicateName
	}
	if err != sql.ErrNoRows {
		return fmt.Errorf("checking name uniqueness: %w", err)
	}

	now := time.Now().UTC()
	nowStr := now.Format(timeLayout)

	res, err := db.Exec(`INSERT INTO items (name, category, description, content, model, tools,
	        allowed_tools, argument_hint, permission_mode, skills, tags,
	        created_at, updated_at, version)
	    VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 1)`,
		item.Name, string(item.Category), nullable(item.Description), item.Content,
		nullable(item.Model), nullable(item.Tools), nullable(item.AllowedTools),
		nullable(item.ArgumentHint), nullable(item.PermissionMode), nullable(item.Skills),
		nullable(item.Tags), nowStr, nowStr)
	if err != nil {
		return fmt.Errorf("inserting item: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading inserted id: %w", err)
	}

	item.ID = id
	item.Version = 1
	item.CreatedAt = now
	item.UpdatedAt = now
	return nil
}

// Get returns the current row for id. Never touches snapshots.
func (s *Store) Get(id int64) (*types.Item, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	row := db.QueryRow("SELECT "+itemColumns+" FROM items WHERE id = ?", id)
	item, err := scanItem(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting item %d: %w", id, err)
	}
	return item, nil
}

// Update overwrites the item's row with the caller's field values. Before
// mutating it captures the current persisted state (not the caller's copy)
// as a snapshot at the current version, then writes the new values with the
// version incremented by exactly one and a refreshed updated_at. Snapshot
// and overwrite commit in a single transaction; the update trigger swaps
// the search index entry in the same transaction.
func (s *Store) Update(item *types.Item) error {
	db, err := s.conn()
	if err != nil {
		return err
	}
	if item.ID == 0 {
		return types.ErrMissingID
	}
	if err := item.Validate(); err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	row := tx.QueryRow("SELECT "+itemColumns+" FROM items WHERE id = ?", item.ID)
	current, err := scanItem(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return types.ErrNotFound
		}
		return fmt.Errorf("reading current item %d: %w", item.ID, err)
	}

	var dupID int64
	err = tx.QueryRow("SELECT id FROM items WHERE name = ? AND id != ?", item.Name, item.ID).Scan(&dupID)
	if err == nil {
		return types.ErrDuplicateName
	}
	if err != sql.ErrNoRows {
		return fmt.Errorf("checking name uniqueness: %w", err)
	}

	now := time.Now().UTC()

	if err := insertSnapshot(tx, current, now); err != nil {
		return fmt.Errorf("snapshotting item %d: %w", item.ID, err)
	}

	_, err = tx.Exec(`UPDATE items
	    SET name = ?, category = ?, description = ?, content = ?, model = ?,
	        tools = ?, allowed_tools = ?, argument_hint = ?, permission_mode = ?,
	        skills = ?, tags = ?, updated_at = ?, version = ?
	    WHERE id = ?`,
		item.Name, string(item.Category), nullable(item.Description), item.Content,
		nullable(item.Model), nullable(item.Tools), nullable(item.AllowedTools),
		nullable(item.ArgumentHint), nullable(item.PermissionMode), nullable(item.Skills),
		nullable(item.Tags), now.Format(timeLayout), current.Version+1, item.ID)
	if err != nil {
		return fmt.Errorf("updating item %d: %w", item.ID, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing update: %w", err)
	}

	item.Version = current.Version + 1
	item.CreatedAt = current.CreatedAt
	item.UpdatedAt = now
	return nil
}

// insertSnapshot writes the item's current field values into item_versions,
// tagged with the version they held.
func insertSnapshot(tx *sql.Tx, item *types.Item, now time.Time) error {
	_, err := tx.Exec(`INSERT INTO item_versions (item_id, version, name, category, description,
	        content, model, tools, allowed_tools, argument_hint, permission_mode,
	        skills, tags, created_at)
	    VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		item.ID, item.Version, item.Name, string(item.Category), nullable(item.Description),
		item.Content, nullable(item.Model), nullable(item.Tools), nullable(item.AllowedTools),
		nullable(item.ArgumentHint), nullable(item.PermissionMode), nullable(item.Skills),
		nullable(item.Tags), now.Format(timeLayout))
	return err
}

// Delete removes the item, all of its snapshots, and its search index entry
// (via the delete trigger). Deleting a nonexistent identifier succeeds.
func (s *Store) Delete(id int64) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM item_versions WHERE item_id = ?", id); err != nil {
		return fmt.Errorf("deleting item versions: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM items WHERE id = ?", id); err != nil {
		return fmt.Errorf("deleting item: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing delete: %w", err)
	}
	return nil
}

// ListRecent returns up to limit items, most recently updated first.
func (s *Store) ListRecent(limit int) ([]*types.Item, error) {
	return s.queryItems("SELECT "+itemColumns+" FROM items ORDER BY updated_at DESC LIMIT ?", limit)
}

// ListByCategory returns items of the category, most recently updated first.
func (s *Store) ListByCategory(category types.Category) ([]*types.Item, error) {
	return s.queryItems("SELECT "+itemColumns+" FROM items WHERE category = ? ORDER BY updated_at DESC",
		string(category))
}

// ListByTag returns items whose raw tag string contains tag as a substring.
// Deliberately loose: "go" also matches "golang".
func (s *Store) ListByTag(tag string) ([]*types.Item, error) {
	return s.queryItems("SELECT "+itemColumns+" FROM items WHERE tags LIKE ? ORDER BY updated_at DESC",
		"%"+tag+"%")
}

// Search returns items matching the full-text query, ranked by relevance.
// An empty or whitespace query is never issued against the index; it simply
// returns no results.
func (s *Store) Search(query string) ([]*types.Item, error) {
	if strings.TrimSpace(query) == "" {
		return []*types.Item{}, nil
	}

	return s.queryItems(`SELECT `+searchColumns+`
	    FROM items i
	    JOIN items_fts fts ON i.id = fts.rowid
	    WHERE items_fts MATCH ?
	    ORDER BY fts.rank`, query)
}

// queryItems runs an item select and hydrates every row.
func (s *Store) queryItems(query string, args ...any) ([]*types.Item, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying items: %w", err)
	}
	defer rows.Close()

	items := []*types.Item{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating items: %w", err)
	}
	return items, nil
}

// CountByCategory returns item counts grouped by category, ordered by
// category name. Categories with no items are absent.
func (s *Store) CountByCategory() ([]types.CategoryCount, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query("SELECT category, COUNT(*) FROM items GROUP BY category ORDER BY category")
	if err != nil {
		return nil, fmt.Errorf("counting by category: %w", err)
	}
	defer rows.Close()

	counts := []types.CategoryCount{}
	for rows.Next() {
		var (
			category string
			count    int
		)
		if err := rows.Scan(&category, &count); err != nil {
			return nil, fmt.Errorf("scanning category count: %w", err)
		}
		counts = append(counts, types.CategoryCount{Category: types.Category(category), Count: count})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating category counts: %w", err)
	}
	return counts, nil
}

// TagsWithCounts derives the tag frequency table from the denormalized tag
// strings. Re-derived on every call; nothing is cached.
func (s *Store) TagsWithCounts() ([]types.TagCount, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query("SELECT tags FROM items WHERE tags IS NOT NULL AND tags != ''")
	if err != nil {
		return nil, fmt.Errorf("querying tags: %w", err)
	}
	defer rows.Close()

	var tagStrings []string
	for rows.Next() {
		var tags string
		if err := rows.Scan(&tags); err != nil {
			return nil, fmt.Errorf("scanning tags: %w", err)
		}
		tagStrings = append(tagStrings, tags)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tags: %w", err)
	}

	return aggregateTags(tagStrings), nil
}
