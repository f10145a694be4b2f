package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tsxcheck/tsxcheck/internal/replshell"
)

var replManifestPath string

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive tsxcheck session",
	Long: `repl starts a read-eval-print loop: each line is parsed as a
statement or declaration under the partial_syntax and
interpolation_points parse options, synthesised against a context that
persists for the lifetime of the session, and pretty-printed back.

Type :help inside the session for the list of REPL commands.`,
	Args: cobra.NoArgs,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)

	replCmd.Flags().StringVar(&replManifestPath, "config", "", "path to a tsxcheck.yaml manifest")
}

func runRepl(cmd *cobra.Command, args []string) error {
	manifest, err := loadManifest(replManifestPath)
	if err != nil {
		return err
	}

	shell := replshell.New(manifest.ParseOptions())
	shell.Start(cmd.OutOrStdout())
	return nil
}
