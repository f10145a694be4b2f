package parser

import (
	"testing"

	"github.com/tsxcheck/tsxcheck/internal/ast"
)

// TestParseTypeAnnotationGoldenDump golden-compares the AST-JSON dump
// (ast.Print) of a representative sample of the type grammar, grounded
// on the teacher's internal/parser/type_test.go table-driven
// goldenCompare pattern.
func TestParseTypeAnnotationGoldenDump(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		golden string
	}{
		{"common_name", "string", "type/common_name"},
		{"union", "string | number", "type/union"},
		{"generic_name", "Array<string>", "type/generic_name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ty, err := ParseTypeAnnotationString(tt.input, DefaultParseOptions())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			goldenCompare(t, tt.golden, ast.Print(ty))
		})
	}
}
