// Package config loads a tsxcheck.yaml project manifest: module search
// paths and the on-disk defaults for the parse/print/visit option
// structs spec.md §6 enumerates, giving those structs a concrete
// configuration surface beyond Go literals.
//
// Grounded on the teacher's internal/eval_harness/spec.go
// (LoadSpec/yaml.Unmarshal pattern) for the loader shape, using
// gopkg.in/yaml.v3 as the teacher does.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tsxcheck/tsxcheck/internal/ast"
	"github.com/tsxcheck/tsxcheck/internal/parser"
)

// Manifest is the parsed contents of a tsxcheck.yaml project file.
type Manifest struct {
	// SearchPaths lists directories the module loader searches, in
	// order, for non-relative imports (internal/module.Loader).
	SearchPaths []string `yaml:"search_paths"`

	Parse ParseConfig `yaml:"parse"`
	Print PrintConfig `yaml:"print"`
	Visit VisitConfig `yaml:"visit"`
}

// ParseConfig mirrors parser.ParseOptions for on-disk configuration.
type ParseConfig struct {
	TypeAnnotations     *bool `yaml:"type_annotations"`
	PartialSyntax       bool  `yaml:"partial_syntax"`
	InterpolationPoints bool  `yaml:"interpolation_points"`
}

// PrintConfig mirrors ast.ToStringOptions.
type PrintConfig struct {
	Pretty                   bool `yaml:"pretty"`
	SingleStatementOnNewLine bool `yaml:"single_statement_on_new_line"`
	TrailingSemicolon        bool `yaml:"trailing_semicolon"`
	IncludeTypes             bool `yaml:"include_types"`
	ExpectMarkers            bool `yaml:"expect_markers"`
	MaxLineLength            int  `yaml:"max_line_length"`
}

// VisitConfig mirrors ast.VisitOptions.
type VisitConfig struct {
	VisitNestedBlocks bool `yaml:"visit_nested_blocks"`
	ReverseStatements bool `yaml:"reverse_statements"`
}

// Load reads and validates a tsxcheck.yaml manifest from path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	m := Default()
	if err := yaml.Unmarshal(data, m); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if len(m.SearchPaths) == 0 {
		m.SearchPaths = []string{"."}
	}

	return m, nil
}

// Default returns a Manifest matching parser.DefaultParseOptions, the
// printer zero-value defaults except for an 80-character
// MaxLineLength, and the visitor zero-value defaults, so an absent
// tsxcheck.yaml still yields a sensible configuration.
func Default() *Manifest {
	typeAnnotations := true
	return &Manifest{
		SearchPaths: []string{"."},
		Parse: ParseConfig{
			TypeAnnotations: &typeAnnotations,
		},
		Print: PrintConfig{
			MaxLineLength: 80,
		},
	}
}

// ParseOptions converts m.Parse into a parser.ParseOptions, defaulting
// TypeAnnotations to true when the manifest doesn't specify it.
func (m *Manifest) ParseOptions() parser.ParseOptions {
	opts := parser.DefaultParseOptions()
	if m.Parse.TypeAnnotations != nil {
		opts.TypeAnnotations = *m.Parse.TypeAnnotations
	}
	opts.PartialSyntax = m.Parse.PartialSyntax
	opts.InterpolationPoints = m.Parse.InterpolationPoints
	return opts
}

// ToStringOptions converts m.Print into an ast.ToStringOptions.
func (m *Manifest) ToStringOptions() ast.ToStringOptions {
	return ast.ToStringOptions{
		Pretty:                   m.Print.Pretty,
		SingleStatementOnNewLine: m.Print.SingleStatementOnNewLine,
		TrailingSemicolon:        m.Print.TrailingSemicolon,
		IncludeTypes:             m.Print.IncludeTypes,
		ExpectMarkers:            m.Print.ExpectMarkers,
		MaxLineLength:            m.Print.MaxLineLength,
	}
}

// VisitOptions converts m.Visit into an ast.VisitOptions.
func (m *Manifest) VisitOptions() ast.VisitOptions {
	return ast.VisitOptions{
		VisitNestedBlocks: m.Visit.VisitNestedBlocks,
		ReverseStatements: m.Visit.ReverseStatements,
	}
}
