// Search command runs a ranked full-text query.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>...",
	Short: "Full-text search over names, descriptions, content, and tags",
	Long: `Search queries the full-text index and returns items ordered by
relevance, not recency.

Example:
  grimoire search deploy
  grimoire search code review --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	items, err := catalog.Search(strings.Join(args, " "))
	if err != nil {
		return fmt.Errorf("search items: %w", err)
	}

	if flagJSON {
		return printJSON(items)
	}
	printItems(items)
	return nil
}
