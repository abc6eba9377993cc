// Delete command removes an item and its history.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an item by ID",
	Long: `Delete removes an item, its version history, and its search index
entry. Deleting an ID that does not exist is not an error.

Example:
  grimoire delete 3`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	if err := catalog.Delete(id); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}

	if flagJSON {
		return printJSON(map[string]any{"deleted": id})
	}
	fmt.Printf("Deleted item %d\n", id)
	return nil
}
