package ast

// ToStringOptions are the recognized pretty-printing knobs (spec.md
// §6). Printing and traversal live in this package rather than
// internal/parser to avoid a parser↔ast import cycle; internal/parser
// holds only the parse-time knobs (ParseOptions).
type ToStringOptions struct {
	Pretty                  bool
	SingleStatementOnNewLine bool
	TrailingSemicolon       bool
	IncludeTypes            bool
	ExpectMarkers           bool
	MaxLineLength           int
}

// VisitOptions are the recognized traversal knobs (spec.md §6).
type VisitOptions struct {
	VisitNestedBlocks bool
	ReverseStatements bool
}
