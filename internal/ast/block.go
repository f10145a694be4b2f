package ast

import "strings"

// StatementOrDeclaration is the variant the block driver (C6)
// accumulates: a Statement, a Declaration, or a partial-input Marker
// (spec.md §3).
type StatementOrDeclaration interface {
	Node
	statementOrDeclarationNode()
	// RequiresSemiColon reports whether the driver must consume a
	// trailing `;` after this item (spec.md §4.3).
	RequiresSemiColon() bool
}

// StatementItem wraps a Statement as a block item.
type StatementItem struct {
	Stmt Statement
	Span Span
}

func (i *StatementItem) statementOrDeclarationNode() {}
func (i *StatementItem) GetSpan() Span               { return i.Span }
func (i *StatementItem) String() string              { return i.Stmt.String() }
func (i *StatementItem) RequiresSemiColon() bool      { return i.Stmt.RequiresSemiColon() }

// DeclarationItem wraps a Declaration as a block item.
type DeclarationItem struct {
	Decl Declaration
	Span Span
}

func (i *DeclarationItem) statementOrDeclarationNode() {}
func (i *DeclarationItem) GetSpan() Span               { return i.Span }
func (i *DeclarationItem) String() string              { return i.Decl.String() }
func (i *DeclarationItem) RequiresSemiColon() bool      { return i.Decl.RequiresSemiColon() }

// MarkerItem is a zero-length in-grammar placeholder emitted only
// under interpolation-points parsing (spec.md §4.3 rule 1). It never
// requires a trailing semicolon.
type MarkerItem struct {
	MarkerID int
	Span     Span
}

func (i *MarkerItem) statementOrDeclarationNode() {}
func (i *MarkerItem) GetSpan() Span               { return i.Span }
func (i *MarkerItem) String() string              { return "" }
func (i *MarkerItem) RequiresSemiColon() bool     { return false }

// Block is an ordered, brace-delimited list of statement-or-declaration
// items. Identity/equality ignores Span (spec.md §3) — Equal below
// compares structurally via String, which never includes position
// data.
type Block struct {
	Items []StatementOrDeclaration
	Span  Span
}

func (b *Block) GetSpan() Span { return b.Span }
func (b *Block) String() string {
	parts := make([]string, len(b.Items))
	for i, it := range b.Items {
		parts[i] = it.String()
	}
	return "{ " + strings.Join(parts, "; ") + " }"
}

// Equal reports structural equality ignoring spans.
func (b *Block) Equal(other *Block) bool {
	if b == nil || other == nil {
		return b == other
	}
	return b.String() == other.String()
}

// BlockOrSingleStatement is the result of parsing either a
// brace-delimited Block or a lone Statement in contexts such as `if`
// bodies (spec.md §4.3 "Block-or-single-statement").
type BlockOrSingleStatement interface {
	Node
	blockOrSingleStatementNode()
}

// Braced wraps a brace-delimited Block.
type Braced struct {
	Block *Block
}

func (b Braced) blockOrSingleStatementNode() {}
func (b Braced) GetSpan() Span               { return b.Block.Span }
func (b Braced) String() string              { return b.Block.String() }

// SingleStatement wraps one Statement parsed without surrounding
// braces.
type SingleStatement struct {
	Stmt Statement
}

func (s SingleStatement) blockOrSingleStatementNode() {}
func (s SingleStatement) GetSpan() Span               { return s.Stmt.GetSpan() }
func (s SingleStatement) String() string              { return s.Stmt.String() }

// Program is the root of a parsed source file: a flat sequence of
// top-level statement-or-declaration items.
type Program struct {
	Items []StatementOrDeclaration
	Span  Span
}

func (p *Program) GetSpan() Span { return p.Span }
func (p *Program) String() string {
	parts := make([]string, len(p.Items))
	for i, it := range p.Items {
		parts[i] = it.String()
	}
	return strings.Join(parts, "\n")
}
