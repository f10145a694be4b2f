// Command tsxcheck is the CLI entry point: check, print, and repl
// subcommands over the lexer/parser/checker/module pipeline.
package main

import (
	"fmt"
	"os"

	"github.com/tsxcheck/tsxcheck/cmd/tsxcheck/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
