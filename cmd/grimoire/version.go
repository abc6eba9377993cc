// Version command for the grimoire CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grimoire-dev/grimoire/pkg/grimoire"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the grimoire version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("grimoire", grimoire.Version)
	},
}
