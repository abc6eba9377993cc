// Add command creates a new catalog item.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/grimoire-dev/grimoire/pkg/types"
)

var (
	addName           string
	addCategory       string
	addDescription    string
	addContent        string
	addContentFile    string
	addModel          string
	addTools          string
	addAllowedTools   string
	addArgumentHint   string
	addPermissionMode string
	addSkills         string
	addTags           string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new item",
	Long: `Add creates a new catalog item at version 1.

Name and content are always required; agents and skills additionally
require a description.

Example:
  grimoire add --name review --category prompt --content "Review this diff"
  grimoire add --name helper --category agent --description "PR helper" --file agent.md
  grimoire add --name deploy --category command --content "/deploy" --tags "ops, release"`,
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addName, "name", "", "unique item name (required)")
	addCmd.Flags().StringVar(&addCategory, "category", "", "category: prompt, agent, skill, or command (required)")
	addCmd.Flags().StringVar(&addDescription, "description", "", "item description (required for agents and skills)")
	addCmd.Flags().StringVar(&addContent, "content", "", "item body text")
	addCmd.Flags().StringVar(&addContentFile, "file", "", "read body text from a file instead of --content")
	addCmd.Flags().StringVar(&addModel, "model", "", "model hint")
	addCmd.Flags().StringVar(&addTools, "tools", "", "tool list")
	addCmd.Flags().StringVar(&addAllowedTools, "allowed-tools", "", "allowed tool list")
	addCmd.Flags().StringVar(&addArgumentHint, "argument-hint", "", "argument hint")
	addCmd.Flags().StringVar(&addPermissionMode, "permission-mode", "", "permission mode")
	addCmd.Flags().StringVar(&addSkills, "skills", "", "skill list")
	addCmd.Flags().StringVar(&addTags, "tags", "", "comma-separated tags")
	_ = addCmd.MarkFlagRequired("name")
	_ = addCmd.MarkFlagRequired("category")
}

func runAdd(cmd *cobra.Command, args []string) error {
	content := addContent
	if addContentFile != "" {
		data, err := os.ReadFile(addContentFile)
		if err != nil {
			return fmt.Errorf("read content file: %w", err)
		}
		content = string(data)
	}

	item := types.NewItem(addName, types.Category(addCategory), content)
	item.Description = addDescription
	item.Model = addModel
	item.Tools = addTools
	item.AllowedTools = addAllowedTools
	item.ArgumentHint = addArgumentHint
	item.PermissionMode = addPermissionMode
	item.Skills = addSkills
	item.Tags = addTags

	if err := catalog.Insert(item); err != nil {
		return fmt.Errorf("create item: %w", err)
	}

	if flagJSON {
		return printJSON(item)
	}
	fmt.Printf("Created item %d (%s, version %d)\n", item.ID, item.Name, item.Version)
	return nil
}
