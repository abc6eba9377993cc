// History command lists and inspects an item's version snapshots.
package main

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/grimoire-dev/grimoire/pkg/types"
)

var historyVersion int64

var historyCmd = &cobra.Command{
	Use:   "history <id>",
	Short: "Show an item's version history",
	Long: `History lists every version of an item: the current one first,
then snapshots in descending version order. Pass --version to show the
full state captured at one version.

Example:
  grimoire history 3
  grimoire history 3 --version 2`,
	Args: cobra.ExactArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().Int64Var(&historyVersion, "version", 0, "show the item state at this version")
}

func runHistory(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("version") {
		return showVersion(id, historyVersion)
	}

	versions, err := catalog.ListVersions(id)
	if err != nil {
		return fmt.Errorf("list versions: %w", err)
	}
	if len(versions) == 0 {
		return fmt.Errorf("item %d not found", id)
	}

	if flagJSON {
		return printJSON(versions)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "VERSION\tDATE\t")
	for _, v := range versions {
		marker := ""
		if v.IsCurrent {
			marker = "(latest)"
		}
		fmt.Fprintf(w, "v%d\t%s\t%s\n", v.Version, v.CreatedAt.Local().Format(time.RFC3339), marker)
	}
	w.Flush()
	return nil
}

// showVersion prints the full snapshot at one version.
func showVersion(id, version int64) error {
	v, err := catalog.GetVersion(id, version)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return fmt.Errorf("version %d of item %d not found", version, id)
		}
		return fmt.Errorf("get version: %w", err)
	}

	if flagJSON {
		return printJSON(v)
	}
	item := v.Item()
	item.UpdatedAt = v.CreatedAt
	printItem(item)
	return nil
}
