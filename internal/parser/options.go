package parser

// ParseOptions is C3's enumerated set of parse-time knobs (spec.md
// §6). ToStringOptions and VisitOptions — the other two knob sets C3
// originally covers — live in internal/ast (ast.ToStringOptions,
// ast.VisitOptions) instead: both internal/ast/print.go and
// internal/ast/visit.go need them directly, and internal/parser
// already imports internal/ast, so keeping them there avoids an
// ast<->parser import cycle.
type ParseOptions struct {
	// TypeAnnotations, when false, means a `:` after a binding is not
	// consumed as a type annotation (spec.md §4.2 step 2).
	TypeAnnotations bool

	// PartialSyntax enables the partial-marker gate of §4.1 (and the
	// equivalent gate elsewhere).
	PartialSyntax bool

	// InterpolationPoints enables the statement-level `MARKER`
	// identifier as a placeholder (spec.md §4.3 step 1).
	InterpolationPoints bool
}

// DefaultParseOptions matches ordinary (non-partial, non-interpolated)
// source parsing with type annotations enabled.
func DefaultParseOptions() ParseOptions {
	return ParseOptions{TypeAnnotations: true}
}

// MarkerIdent is the reserved identifier spelling recognized as a
// statement-or-declaration placeholder under InterpolationPoints
// (spec.md §6).
const MarkerIdent = "MARKER"
