// Reindex command rebuilds the full-text index from the primary rows.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var reindexCmd = &cobra.Command{
	Use:   "reindex",
	Short: "Rebuild the full-text search index",
	Long: `Reindex reconstructs the search index from the items table. The
index is derived state; run this if search results look wrong after a
crash or a file-level restore.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := catalog.Reindex(); err != nil {
			return fmt.Errorf("reindex: %w", err)
		}
		if !flagJSON {
			fmt.Println("Search index rebuilt")
		}
		return nil
	},
}
