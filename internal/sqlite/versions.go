package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/grimoire-dev/grimoire/pkg/types"
)

// versionColumns is the select list for item_versions queries, in
// scanVersion order.
const versionColumns = `id, item_id, version, name, category, description, content,
       model, tools, allowed_tools, argument_hint, permission_mode, skills,
       tags, created_at`

// scanVersion hydrates one item_versions row.
func scanVersion(row scanner) (*types.ItemVersion, error) {
	var (
		v                          types.ItemVersion
		category                   string
		description, model, tools  sql.NullString
		allowedTools, argumentHint sql.NullString
		permissionMode, skills     sql.NullString
		tags                       sql.NullString
		createdAt                  string
	)
	err := row.Scan(&v.ID, &v.ItemID, &v.Version, &v.Name, &category, &description,
		&v.Content, &model, &tools, &allowedTools, &argumentHint, &permissionMode,
		&skills, &tags, &createdAt)
	if err != nil {
		return nil, err
	}

	v.Category = types.Category(category)
	v.Description = stringOr(description)
	v.Model = stringOr(model)
	v.Tools = stringOr(tools)
	v.AllowedTools = stringOr(allowedTools)
	v.ArgumentHint = stringOr(argumentHint)
	v.PermissionMode = stringOr(permissionMode)
	v.Skills = stringOr(skills)
	v.Tags = stringOr(tags)

	if v.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	return &v, nil
}

// currentAsVersion presents the primary row as the head of the version
// list.
func currentAsVersion(item *types.Item) types.ItemVersion {
	return types.ItemVersion{
		ItemID:         item.ID,
		Version:        item.Version,
		Name:           item.Name,
		Category:       item.Category,
		Description:    item.Description,
		Content:        item.Content,
		Model:          item.Model,
		Tools:          item.Tools,
		AllowedTools:   item.AllowedTools,
		ArgumentHint:   item.ArgumentHint,
		PermissionMode: item.PermissionMode,
		Skills:         item.Skills,
		Tags:           item.Tags,
		CreatedAt:      item.UpdatedAt,
		IsCurrent:      true,
	}
}

// ListVersions returns the current row first, marked IsCurrent, followed by
// stored snapshots in descending version order. An unknown item yields an
// empty slice, not an error; callers that need to distinguish should Get
// the item first.
func (s *Store) ListVersions(itemID int64) ([]types.ItemVersion, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	versions := []types.ItemVersion{}

	current, err := s.Get(itemID)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return versions, nil
		}
		return nil, err
	}
	versions = append(versions, currentAsVersion(current))

	rows, err := db.Query("SELECT "+versionColumns+
		" FROM item_versions WHERE item_id = ? ORDER BY version DESC", itemID)
	if err != nil {
		return nil, fmt.Errorf("querying item versions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		v, err := scanVersion(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning item version: %w", err)
		}
		versions = append(versions, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating item versions: %w", err)
	}
	return versions, nil
}

// GetVersion returns the item's state at the given version: the primary row
// when the version matches it, a stored snapshot otherwise. Returns
// ErrNotFound when neither matches.
func (s *Store) GetVersion(itemID, version int64) (*types.ItemVersion, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	current, err := s.Get(itemID)
	if err == nil && current.Version == version {
		v := currentAsVersion(current)
		return &v, nil
	}
	if err != nil && !errors.Is(err, types.ErrNotFound) {
		return nil, err
	}

	row := db.QueryRow("SELECT "+versionColumns+
		" FROM item_versions WHERE item_id = ? AND version = ?", itemID, version)
	v, err := scanVersion(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting version %d of item %d: %w", version, itemID, err)
	}
	return v, nil
}

// RestoreVersion re-applies an old version's field values through the
// ordinary update path. History is append-only: the restored state becomes
// a new version strictly greater than any seen before, and the pre-restore
// state is snapshotted like any other overwrite. Returns the restored item.
func (s *Store) RestoreVersion(itemID, version int64) (*types.Item, error) {
	target, err := s.GetVersion(itemID, version)
	if err != nil {
		return nil, err
	}

	item := target.Item()
	if err := s.Update(item); err != nil {
		return nil, err
	}
	return item, nil
}
