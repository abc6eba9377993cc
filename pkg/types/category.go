package types

// Category classifies a catalog item. The four values are fixed; each
// implies a different set of meaningful optional fields and different
// required-field rules (see Item.Validate).
type Category string

const (
	CategoryPrompt  Category = "prompt"
	CategoryAgent   Category = "agent"
	CategorySkill   Category = "skill"
	CategoryCommand Category = "command"
)

// validCategories is the set of recognized category values.
var validCategories = map[Category]bool{
	CategoryPrompt:  true,
	CategoryAgent:   true,
	CategorySkill:   true,
	CategoryCommand: true,
}

// ValidCategory reports whether c is one of the four fixed categories.
func ValidCategory(c Category) bool {
	return validCategories[c]
}

// AllCategories returns the four categories in display order.
func AllCategories() []Category {
	return []Category{CategoryPrompt, CategoryAgent, CategorySkill, CategoryCommand}
}

// DisplayName returns the plural, capitalized form used in listings.
func (c Category) DisplayName() string {
	switch c {
	case CategoryPrompt:
		return "Prompts"
	case CategoryAgent:
		return "Agents"
	case CategorySkill:
		return "Skills"
	case CategoryCommand:
		return "Commands"
	default:
		return string(c)
	}
}

// RequiresDescription reports whether items of this category must carry a
// non-empty description.
func (c Category) RequiresDescription() bool {
	return c == CategoryAgent || c == CategorySkill
}
