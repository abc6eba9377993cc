// Shared helpers for grimoire CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/grimoire-dev/grimoire/pkg/types"
)

// parseID converts a command-line identifier argument.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid item id %q", arg)
	}
	return id, nil
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(output))
	return nil
}

// printItem writes one item in full.
func printItem(item *types.Item) {
	fmt.Printf("ID:          %d\n", item.ID)
	fmt.Printf("Name:        %s\n", item.Name)
	fmt.Printf("Category:    %s\n", item.Category)
	fmt.Printf("Version:     %d\n", item.Version)
	if item.Description != "" {
		fmt.Printf("Description: %s\n", item.Description)
	}
	if item.Model != "" {
		fmt.Printf("Model:       %s\n", item.Model)
	}
	if item.Tools != "" {
		fmt.Printf("Tools:       %s\n", item.Tools)
	}
	if item.AllowedTools != "" {
		fmt.Printf("Allowed:     %s\n", item.AllowedTools)
	}
	if item.ArgumentHint != "" {
		fmt.Printf("Arg hint:    %s\n", item.ArgumentHint)
	}
	if item.PermissionMode != "" {
		fmt.Printf("Permissions: %s\n", item.PermissionMode)
	}
	if item.Skills != "" {
		fmt.Printf("Skills:      %s\n", item.Skills)
	}
	if item.Tags != "" {
		fmt.Printf("Tags:        %s\n", item.Tags)
	}
	fmt.Printf("Updated:     %s\n", item.UpdatedAt.Local().Format(time.RFC3339))
	fmt.Println()
	fmt.Println(item.Content)
}

// printItems writes a tabular item listing.
func printItems(items []*types.Item) {
	if len(items) == 0 {
		fmt.Println("No items found.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tVERSION\tTAGS\tUPDATED")
	for _, item := range items {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\t%s\n",
			item.ID, item.Name, item.Category, item.Version, item.Tags,
			item.UpdatedAt.Local().Format("2006-01-02 15:04"))
	}
	w.Flush()
}
