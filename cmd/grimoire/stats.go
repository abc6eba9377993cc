// Stats command prints the derived category and tag aggregates.
package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show category counts and the tag frequency table",
	Long: `Stats derives aggregates from the catalog: item counts per
category and tag frequencies parsed from the denormalized tag strings,
sorted by count descending then tag name.

Example:
  grimoire stats
  grimoire stats --json`,
	RunE: runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	categories, err := catalog.CountByCategory()
	if err != nil {
		return fmt.Errorf("count categories: %w", err)
	}
	tags, err := catalog.TagsWithCounts()
	if err != nil {
		return fmt.Errorf("count tags: %w", err)
	}

	if flagJSON {
		return printJSON(map[string]any{
			"categories": categories,
			"tags":       tags,
		})
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CATEGORY\tITEMS")
	for _, c := range categories {
		fmt.Fprintf(w, "%s\t%d\n", c.Category.DisplayName(), c.Count)
	}
	w.Flush()

	fmt.Println()

	w = tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TAG\tITEMS")
	for _, t := range tags {
		fmt.Fprintf(w, "%s\t%d\n", t.Tag, t.Count)
	}
	w.Flush()
	return nil
}
