// Package main provides the grimoire CLI: a local catalog of prompts,
// agents, skills, and slash commands with full-text search and per-item
// version history, backed by a single SQLite file.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/grimoire-dev/grimoire/internal/paths"
	"github.com/grimoire-dev/grimoire/pkg/store"
	"github.com/grimoire-dev/grimoire/pkg/types"
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
)

// configDataDir holds the data_dir value loaded from config.yaml. Set by
// PersistentPreRunE so all subcommands can use it.
var configDataDir string

// catalog is the store instance opened before every data command and closed
// after it.
var catalog store.Store

var rootCmd = &cobra.Command{
	Use:   "grimoire",
	Short: "Grimoire is a local catalog for prompts, agents, skills, and commands",
	Long: `Grimoire manages a personal catalog of small structured text artifacts:
prompts, agents, skills, and slash commands. Items carry category-specific
metadata and free-form tags, every overwrite snapshots the prior state, and
the body text is full-text searchable.`,
	PersistentPreRunE:  openCatalog,
	PersistentPostRunE: closeCatalog,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory holding grimoire.db (default: platform data dir)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(restoreCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(reindexCmd)
}

// openCatalog resolves directories, loads config.yaml, and opens the store.
func openCatalog(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	configDir, err := paths.ResolveConfigDir(flagConfigDir)
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}
	cfg, err := loadConfig(configDir)
	if err != nil {
		return err
	}
	configDataDir = cfg.GetString(cfgKeyDataDir)

	dataDir, err := paths.ResolveDataDir(flagDataDir, configDataDir)
	if err != nil {
		return fmt.Errorf("resolve data dir: %w", err)
	}

	catalog = store.New()
	if err := catalog.Open(types.Config{DataDir: dataDir}); err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	return nil
}

// closeCatalog releases the store if it was opened.
func closeCatalog(cmd *cobra.Command, args []string) error {
	if catalog != nil {
		return catalog.Close()
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
