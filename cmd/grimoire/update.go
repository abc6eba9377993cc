// Update command overwrites an item's fields, snapshotting the prior state.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/grimoire-dev/grimoire/pkg/types"
)

var (
	updName           string
	updCategory       string
	updDescription    string
	updContent        string
	updContentFile    string
	updModel          string
	updTools          string
	updAllowedTools   string
	updArgumentHint   string
	updPermissionMode string
	updSkills         string
	updTags           string
)

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update an item",
	Long: `Update overwrites fields of an existing item. Only the flags you pass
change; everything else keeps its current value. The prior state is
snapshotted into version history and the version increments by one.

Example:
  grimoire update 3 --content "New body"
  grimoire update 3 --tags "go, sqlite" --description "Store review prompt"`,
	Args: cobra.ExactArgs(1),
	RunE: runUpdate,
}

func init() {
	updateCmd.Flags().StringVar(&updName, "name", "", "new unique name")
	updateCmd.Flags().StringVar(&updCategory, "category", "", "new category")
	updateCmd.Flags().StringVar(&updDescription, "description", "", "new description")
	updateCmd.Flags().StringVar(&updContent, "content", "", "new body text")
	updateCmd.Flags().StringVar(&updContentFile, "file", "", "read new body text from a file")
	updateCmd.Flags().StringVar(&updModel, "model", "", "new model hint")
	updateCmd.Flags().StringVar(&updTools, "tools", "", "new tool list")
	updateCmd.Flags().StringVar(&updAllowedTools, "allowed-tools", "", "new allowed tool list")
	updateCmd.Flags().StringVar(&updArgumentHint, "argument-hint", "", "new argument hint")
	updateCmd.Flags().StringVar(&updPermissionMode, "permission-mode", "", "new permission mode")
	updateCmd.Flags().StringVar(&updSkills, "skills", "", "new skill list")
	updateCmd.Flags().StringVar(&updTags, "tags", "", "new comma-separated tags")
}

func runUpdate(cmd *cobra.Command, args []string) error {
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

	flags := cmd.Flags()
	if flags.Changed("name") {
		item.Name = updName
	}
	if flags.Changed("category") {
		item.Category = types.Category(updCategory)
	}
	if flags.Changed("description") {
		item.Description = updDescription
	}
	if flags.Changed("content") {
		item.Content = updContent
	}
	if flags.Changed("file") {
		data, err := os.ReadFile(updContentFile)
		if err != nil {
			return fmt.Errorf("read content file: %w", err)
		}
		item.Content = string(data)
	}
	if flags.Changed("model") {
		item.Model = updModel
	}
	if flags.Changed("tools") {
		item.Tools = updTools
	}
	if flags.Changed("allowed-tools") {
		item.AllowedTools = updAllowedTools
	}
	if flags.Changed("argument-hint") {
		item.ArgumentHint = updArgumentHint
	}
	if flags.Changed("permission-mode") {
		item.PermissionMode = updPermissionMode
	}
	if flags.Changed("skills") {
		item.Skills = updSkills
	}
	if flags.Changed("tags") {
		item.Tags = updTags
	}

	if err := catalog.Update(item); err != nil {
		return fmt.Errorf("update item: %w", err)
	}

	if flagJSON {
		return printJSON(item)
	}
	fmt.Printf("Updated item %d (now version %d)\n", item.ID, item.Version)
	return nil
}
