package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/tsxcheck/tsxcheck/internal/ast"
	tsxerrors "github.com/tsxcheck/tsxcheck/internal/errors"
	"github.com/tsxcheck/tsxcheck/internal/lexer"
	"github.com/tsxcheck/tsxcheck/internal/parser"
)

var (
	printManifestPath string
	printCompact      bool
)

var printCmd = &cobra.Command{
	Use:   "print <file>",
	Short: "Parse a file and pretty-print it back to source",
	Long: `print parses a file and pretty-prints the resulting AST back to
source text, following the manifest's print options (or the parser's
defaults). It exists as a round-trip testing aid: diffing a file
against its own "print" output surfaces anything the printer and
parser disagree on.

Pass - as the file name to read from stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: runPrint,
}

func init() {
	rootCmd.AddCommand(printCmd)

	printCmd.Flags().StringVar(&printManifestPath, "config", "", "path to a tsxcheck.yaml manifest")
	printCmd.Flags().BoolVar(&printCompact, "compact", false, "disable pretty-printing (single line, no indentation)")
}

func runPrint(cmd *cobra.Command, args []string) error {
	manifest, err := loadManifest(printManifestPath)
	if err != nil {
		return err
	}

	var content []byte
	filename := args[0]
	if filename == "-" {
		content, err = io.ReadAll(cmd.InOrStdin())
		filename = "<stdin>"
	} else {
		content, err = os.ReadFile(filename)
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", filename, err)
	}

	toStringOpts := manifest.ToStringOptions()
	if printCompact {
		toStringOpts.Pretty = false
	}

	program, err := parser.ParseProgram(lexer.New(string(content), filename), 1, manifest.ParseOptions())
	if err != nil {
		if report, ok := tsxerrors.AsReport(err); ok {
			return fmt.Errorf("%s: %s", report.Code, report.Message)
		}
		return err
	}

	sink := ast.NewStringSink(toStringOpts.MaxLineLength)
	ast.PrintProgram(sink, program, toStringOpts)
	fmt.Fprintln(cmd.OutOrStdout(), sink.String())
	return nil
}
