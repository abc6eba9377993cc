// List command shows items by recency, category, or tag.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grimoire-dev/grimoire/pkg/types"
)

var (
	listCategory string
	listTag      string
	listLimit    int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List items",
	Long: `List shows items ordered by most recent update.

--category filters by exact category; --tag filters by substring match
against the raw tag string (so "go" also matches "golang").

Example:
  grimoire list
  grimoire list --limit 10
  grimoire list --category agent
  grimoire list --tag go --json`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listCategory, "category", "", "filter by category (prompt, agent, skill, command)")
	listCmd.Flags().StringVar(&listTag, "tag", "", "filter by tag substring")
	listCmd.Flags().IntVar(&listLimit, "limit", 50, "maximum number of results for the recency listing")
}

func runList(cmd *cobra.Command, args []string) error {
	var (
		items []*types.Item
		err   error
	)
	switch {
	case listCategory != "":
		items, err = catalog.ListByCategory(types.Category(listCategory))
	case listTag != "":
		items, err = catalog.ListByTag(listTag)
	default:
		items, err = catalog.ListRecent(listLimit)
	}
	if err != nil {
		return fmt.Errorf("list items: %w", err)
	}

	if flagJSON {
		return printJSON(items)
	}
	printItems(items)
	return nil
}
