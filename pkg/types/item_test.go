package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemValidate(t *testing.T) {
	tests := []struct {
		name     string
		item     *Item
		problems int
	}{
		{
			name: "prompt with name and content is valid",
			item: NewItem("review", CategoryPrompt, "Review this diff"),
		},
		{
			name: "command with name and content is valid",
			item: NewItem("deploy", CategoryCommand, "/deploy"),
		},
		{
			name:     "agent without description is invalid",
			item:     NewItem("helper", CategoryAgent, "You are a helper"),
			problems: 1,
		},
		{
			name:     "skill without description is invalid",
			item:     NewItem("pdf", CategorySkill, "Extract text"),
			problems: 1,
		},
		{
			name: "agent with description is valid",
			item: func() *Item {
				i := NewItem("helper", CategoryAgent, "You are a helper")
				i.Description = "PR helper"
				return i
			}(),
		},
		{
			name:     "empty name is invalid",
			item:     NewItem("", CategoryPrompt, "body"),
			problems: 1,
		},
		{
			name:     "whitespace content is invalid",
			item:     NewItem("x", CategoryPrompt, "   "),
			problems: 1,
		},
		{
			name:     "unknown category is invalid",
			item:     NewItem("x", Category("spell"), "body"),
			problems: 1,
		},
		{
			name:     "multiple problems are all reported",
			item:     NewItem("", CategoryAgent, ""),
			problems: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.item.Validate()
			if tt.problems == 0 {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			require.True(t, IsValidation(err))
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Len(t, ve.Problems, tt.problems)
		})
	}
}

func TestSamePayloadDifferentCategory(t *testing.T) {
	// The same fields that fail validation as an agent pass as a prompt.
	agent := NewItem("x", CategoryAgent, "hello")
	require.Error(t, agent.Validate())

	prompt := NewItem("x", CategoryPrompt, "hello")
	require.NoError(t, prompt.Validate())
}

func TestTagList(t *testing.T) {
	tests := []struct {
		name string
		tags string
		want []string
	}{
		{name: "empty", tags: "", want: nil},
		{name: "single", tags: "go", want: []string{"go"}},
		{name: "trims whitespace", tags: " go , sqlite ", want: []string{"go", "sqlite"}},
		{name: "drops empty tokens", tags: "go,,sqlite,", want: []string{"go", "sqlite"}},
		{name: "preserves case", tags: "Go, SQLite", want: []string{"Go", "SQLite"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := NewItem("x", CategoryPrompt, "body")
			item.Tags = tt.tags
			assert.Equal(t, tt.want, item.TagList())
		})
	}
}

func TestCategory(t *testing.T) {
	assert.True(t, ValidCategory(CategoryPrompt))
	assert.True(t, ValidCategory(CategoryCommand))
	assert.False(t, ValidCategory(Category("spell")))

	assert.True(t, CategoryAgent.RequiresDescription())
	assert.True(t, CategorySkill.RequiresDescription())
	assert.False(t, CategoryPrompt.RequiresDescription())
	assert.False(t, CategoryCommand.RequiresDescription())

	assert.Equal(t, "Prompts", CategoryPrompt.DisplayName())
	assert.Len(t, AllCategories(), 4)
}

func TestVersionItemRoundTrip(t *testing.T) {
	v := ItemVersion{
		ItemID:      7,
		Version:     3,
		Name:        "review",
		Category:    CategoryPrompt,
		Description: "desc",
		Content:     "body",
		Tags:        "go",
	}
	item := v.Item()
	require.Equal(t, int64(7), item.ID)
	assert.Equal(t, int64(3), item.Version)
	assert.Equal(t, "review", item.Name)
	assert.Equal(t, "body", item.Content)
	assert.Equal(t, "go", item.Tags)
}
