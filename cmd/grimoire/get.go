// Get command fetches one item by ID.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grimoire-dev/grimoire/pkg/types"
)

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show an item by ID",
	Long: `Get fetches the current state of an item.

Example:
  grimoire get 3
  grimoire get 3 --json`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	item, err := catalog.Get(id)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return fmt.Errorf("item %d not found", id)
		}
		return fmt.Errorf("get item: %w", err)
	}

	if flagJSON {
		return printJSON(item)
	}
	printItem(item)
	return nil
}
