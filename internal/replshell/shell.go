// Package replshell is an interactive line-editing loop over the
// block driver (C6): it reads one statement-or-declaration at a time,
// parses it under partial_syntax + interpolation_points, synthesises
// it against a running checker.Context, and pretty-prints the result.
//
// Grounded on the teacher's internal/repl/repl.go: a liner.Liner
// instance for readline/history, colorized prompt via fatih/color, a
// :-prefixed command completer, and a history file under os.TempDir.
package replshell

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"

	"github.com/tsxcheck/tsxcheck/internal/ast"
	"github.com/tsxcheck/tsxcheck/internal/checker"
	tsxerrors "github.com/tsxcheck/tsxcheck/internal/errors"
	"github.com/tsxcheck/tsxcheck/internal/lexer"
	"github.com/tsxcheck/tsxcheck/internal/parser"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	dim    = color.New(color.Faint).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
)

// historyFileName mirrors the teacher's ".ailang_history" naming under
// os.TempDir.
const historyFileName = ".tsxcheck_history"

var replCommands = []string{":help", ":quit", ":reset", ":history", ":print"}

// Shell is one REPL session: a running checker context and the parse
// options it reads input under.
type Shell struct {
	env       *checker.Context
	source    ast.SourceID
	parseOpts parser.ParseOptions
	history   []string
}

// New creates a Shell with a fresh root checking context, honoring
// parseOpts for each line (PartialSyntax and InterpolationPoints are
// forced on regardless of the caller's options, matching spec.md §4.1
// /§4.3's marker mechanism being the REPL's primary use case for
// partial input).
func New(parseOpts parser.ParseOptions) *Shell {
	parseOpts.PartialSyntax = true
	parseOpts.InterpolationPoints = true
	return &Shell{
		env:       checker.NewRootContext().NewLexicalEnvironment(checker.ScopeLexical),
		source:    ast.SourceID(1),
		parseOpts: parseOpts,
	}
}

// Start runs the REPL loop, reading from a liner.Liner-managed
// terminal and writing prompts/results/errors to out.
func (s *Shell) Start(out io.Writer) {
	line := liner.NewLiner()
	defer line.Close()
	line.SetMultiLineMode(true)

	historyFile := filepath.Join(os.TempDir(), historyFileName)
	if f, err := os.Open(historyFile); err == nil {
		_, _ = line.ReadHistory(f)
		f.Close()
	}

	line.SetCompleter(func(input string) (c []string) {
		if strings.HasPrefix(input, ":") {
			for _, cmd := range replCommands {
				if strings.HasPrefix(cmd, input) {
					c = append(c, cmd)
				}
			}
		}
		return
	})

	fmt.Fprintf(out, "%s\n", bold("tsxcheck"))
	fmt.Fprintln(out, dim("Type :help for help, :quit to exit"))

	for {
		input, err := line.Prompt("tsx> ")
		if err == io.EOF {
			fmt.Fprintln(out, green("\nGoodbye!"))
			break
		}
		if err != nil {
			fmt.Fprintf(out, "%s: %v\n", red("Error"), err)
			continue
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		line.AppendHistory(input)
		s.history = append(s.history, input)

		if strings.HasPrefix(input, ":") {
			if input == ":quit" || input == ":q" {
				fmt.Fprintln(out, green("Goodbye!"))
				break
			}
			s.handleCommand(input, out)
			continue
		}

		s.Eval(input, out)
	}

	if f, err := os.Create(historyFile); err == nil {
		_, _ = line.WriteHistory(f)
		f.Close()
	}
}

// Eval parses and synthesises one line of TSX source against the
// shell's running context. A parse failure prints one structured
// diagnostic; otherwise any synthesis diagnostics are printed, followed
// by the input pretty-printed back to source.
func (s *Shell) Eval(input string, out io.Writer) {
	program, err := parser.ParseProgram(lexer.New(input, "<repl>"), s.source, s.parseOpts)
	if err != nil {
		if report, ok := tsxerrors.AsReport(err); ok {
			fmt.Fprintf(out, "%s %s: %s\n", red("error"), report.Code, report.Message)
		} else {
			fmt.Fprintf(out, "%s %v\n", red("error"), err)
		}
		return
	}

	diagnostics := &checker.Diagnostics{}
	checker.DefaultSynthesiser{}.SynthesiseModule(program, s.source, s.env, diagnostics)

	for _, report := range diagnostics.Reports {
		fmt.Fprintf(out, "%s %s: %s\n", red("error"), report.Code, report.Message)
	}

	sink := ast.NewStringSink(0)
	ast.PrintProgram(sink, program, ast.ToStringOptions{Pretty: true})
	fmt.Fprintln(out, green(sink.String()))
}

func (s *Shell) handleCommand(input string, out io.Writer) {
	switch {
	case input == ":help":
		fmt.Fprintln(out, "Commands: :help :quit :reset :history :print")
	case input == ":reset":
		s.env = checker.NewRootContext().NewLexicalEnvironment(checker.ScopeLexical)
		fmt.Fprintln(out, dim("context reset"))
	case input == ":history":
		for _, h := range s.history {
			fmt.Fprintln(out, h)
		}
	case input == ":print":
		for name := range s.env.Variables {
			fmt.Fprintln(out, name)
		}
	default:
		fmt.Fprintf(out, "%s unknown command: %s\n", red("error"), input)
	}
}
