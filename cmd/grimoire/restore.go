// Restore command re-applies an old version of an item.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grimoire-dev/grimoire/pkg/types"
)

var restoreCmd = &cobra.Command{
	Use:   "restore <id> <version>",
	Short: "Restore an item to a prior version",
	Long: `Restore re-applies the field values captured at an old version.
History is append-only: the restored state becomes a new, higher version
and the pre-restore state is snapshotted like any other update.

Example:
  grimoire restore 3 1`,
	Args: cobra.ExactArgs(2),
	RunE: runRestore,
}

func runRestore(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	version, err := parseID(args[1])
	if err != nil {
		return fmt.Errorf("invalid version %q", args[1])
	}

	item, err := catalog.RestoreVersion(id, version)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return fmt.Errorf("version %d of item %d not found", version, id)
		}
		return fmt.Errorf("restore version: %w", err)
	}

	if flagJSON {
		return printJSON(item)
	}
	fmt.Printf("Restored item %d to the state of version %d (now version %d)\n", id, version, item.Version)
	return nil
}
