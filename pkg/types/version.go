package types

import "time"

// ItemVersion is an immutable snapshot of an item's fields as they existed
// at a prior version, plus the current row when listed through
// ListVersions. Snapshots are written by the store before every overwrite;
// for an item currently at version N the snapshot table holds versions
// 1..N-1 and the primary row holds N, a dense sequence with no gaps.
type ItemVersion struct {
	// ID is the snapshot row identifier; zero when the entry reflects the
	// current primary row rather than a stored snapshot.
	ID int64

	// ItemID references the owning item. Back-reference only: snapshots
	// are deleted with the item but carry no other lifecycle coupling.
	ItemID int64

	// Version is the item version this snapshot captured.
	Version int64

	Name        string
	Category    Category
	Description string
	Content     string

	Model          string
	Tools          string
	AllowedTools   string
	ArgumentHint   string
	PermissionMode string
	Skills         string

	Tags string

	// CreatedAt is the snapshot timestamp, or the item's updated_at when
	// the entry is the current row.
	CreatedAt time.Time

	// IsCurrent marks the entry that reflects the primary row.
	IsCurrent bool
}

// Item materializes the snapshot as an item value carrying the owning
// item's identifier. Used by restore to feed the snapshot back through the
// ordinary update path.
func (v *ItemVersion) Item() *Item {
	return &Item{
		ID:             v.ItemID,
		Name:           v.Name,
		Category:       v.Category,
		Description:    v.Description,
		Content:        v.Content,
		Model:          v.Model,
		Tools:          v.Tools,
		AllowedTools:   v.AllowedTools,
		ArgumentHint:   v.ArgumentHint,
		PermissionMode: v.PermissionMode,
		Skills:         v.Skills,
		Tags:           v.Tags,
		Version:        v.Version,
	}
}
