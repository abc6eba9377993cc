// Settings commands manage the flat key/value settings table.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grimoire-dev/grimoire/pkg/types"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage settings",
	Long: `Settings stores flat key/value pairs alongside the catalog.
Last write wins; values keep no history.

Example:
  grimoire settings set editor vim
  grimoire settings get editor
  grimoire settings unset editor`,
}

var settingsGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print a setting value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := catalog.GetSetting(args[0])
		if err != nil {
			if errors.Is(err, types.ErrNotFound) {
				return fmt.Errorf("setting %q not found", args[0])
			}
			return fmt.Errorf("get setting: %w", err)
		}
		if flagJSON {
			return printJSON(map[string]string{args[0]: value})
		}
		fmt.Println(value)
		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Store a setting value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := catalog.SetSetting(args[0], args[1]); err != nil {
			return fmt.Errorf("set setting: %w", err)
		}
		if !flagJSON {
			fmt.Printf("Set %s\n", args[0])
		}
		return nil
	},
}

var settingsUnsetCmd = &cobra.Command{
	Use:   "unset <key>",
	Short: "Remove a setting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := catalog.DeleteSetting(args[0]); err != nil {
			return fmt.Errorf("unset setting: %w", err)
		}
		if !flagJSON {
			fmt.Printf("Unset %s\n", args[0])
		}
		return nil
	},
}

func init() {
	settingsCmd.AddCommand(settingsGetCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsUnsetCmd)
}
