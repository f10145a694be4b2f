// Package cmd implements tsxcheck's cobra command tree, grounded on
// the CWBudde-go-dws CLI's root/subcommand split (rootCmd +
// rootCmd.AddCommand in each subcommand's init).
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version is set by build flags; left as a dev default otherwise.
	Version = "dev"

	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "tsxcheck",
	Short: "Static analyzer for TSX",
	Long: `tsxcheck lexes, parses, and type-checks TSX source files: a
TypeScript-like language with union/intersection/conditional types,
interfaces, enums, and an ES-module import/export surface.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("tsxcheck version %s\n", Version))
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
