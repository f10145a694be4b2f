package parser

import "github.com/tsxcheck/tsxcheck/internal/ast"

// State is the parsing-state collaborator (C2, spec.md §2): it holds
// the keyword-position log IDE/source-map tooling wants and the
// interpolation-marker ID allocator partial-syntax mode needs. It does
// not track line starts directly — lexer.Token already carries a Line
// field, so the partial-syntax gate's "differs from anchor_start's
// line" check (spec.md §4.1) reads token.Line rather than
// recomputing it from a byte offset table.
type State struct {
	keywordPositions []ast.Span
	nextMarkerID     int
}

// NewState creates a fresh parsing state with the marker allocator
// starting at 1 (0 is reserved as "no marker").
func NewState() *State {
	return &State{nextMarkerID: 1}
}

// RecordKeyword appends span to the keyword-position log. Called by
// C5 when it consumes a leading `const`/`let` keyword (spec.md §4.2).
func (s *State) RecordKeyword(span ast.Span) {
	s.keywordPositions = append(s.keywordPositions, span)
}

// KeywordPositions returns the recorded keyword spans in encounter
// order.
func (s *State) KeywordPositions() []ast.Span {
	return s.keywordPositions
}

// NewMarkerID allocates the next opaque marker identifier, used by
// both the type-annotation Marker case (C4) and the block driver's
// MarkerItem case (C6).
func (s *State) NewMarkerID() int {
	id := s.nextMarkerID
	s.nextMarkerID++
	return id
}
