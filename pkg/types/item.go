package types

import (
	"strings"
	"time"
)

// Item is a named, categorized text artifact. An item with ID zero has not
// been persisted yet; the store assigns the identifier on insert.
//
// Tags is a single comma-separated string, deliberately denormalized: tag
// membership and counts are derived at query time, never stored as a
// relation. Optional fields are empty strings when unset and persist as
// NULL.
type Item struct {
	ID          int64
	Name        string
	Category    Category
	Description string
	Content     string

	// Category-specific fields. Which of these are meaningful depends on
	// the category; the store persists all of them regardless.
	Model          string
	Tools          string
	AllowedTools   string
	ArgumentHint   string
	PermissionMode string
	Skills         string

	Tags      string
	CreatedAt time.Time
	UpdatedAt time.Time

	// Version starts at 1 on insert and increments by exactly one on every
	// successful update. It is never decremented or reused; restoring an
	// old version produces a new, higher version.
	Version int64
}

// NewItem returns an unpersisted item with the required fields set.
func NewItem(name string, category Category, content string) *Item {
	return &Item{Name: name, Category: category, Content: content}
}

// Validate checks the required-field rules for the item's category: name
// and content are always required; agents and skills additionally require a
// description. Returns a *ValidationError listing every problem, or nil.
func (i *Item) Validate() error {
	var problems []string

	if strings.TrimSpace(i.Name) == "" {
		problems = append(problems, "name is required")
	}
	if strings.TrimSpace(i.Content) == "" {
		problems = append(problems, "content is required")
	}
	if !ValidCategory(i.Category) {
		problems = append(problems, "unknown category "+string(i.Category))
	} else if i.Category.RequiresDescription() && strings.TrimSpace(i.Description) == "" {
		problems = append(problems, "description is required for "+string(i.Category)+" items")
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

// TagList splits the denormalized tag string on commas, trimming whitespace
// and dropping empty tokens. Case is preserved; aggregation lowercases.
func (i *Item) TagList() []string {
	if i.Tags == "" {
		return nil
	}
	var tags []string
	for _, tag := range strings.Split(i.Tags, ",") {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
