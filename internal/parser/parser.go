// Package parser turns a lexer.Lexer token stream into the ast
// package's trees: type annotations (C4), variable declarations (C5),
// and statement-or-declaration blocks (C6), on top of the C1 token
// stream adapter, C2 parsing state, and C3 parse options.
package parser

import (
	"github.com/tsxcheck/tsxcheck/internal/ast"
	"github.com/tsxcheck/tsxcheck/internal/lexer"
)

// Parser wires a token stream, parsing state, and parse options
// together, grounded on the teacher's Parser struct shape (l,
// curToken/peekToken, errors) adapted to spec.md §7's fail-fast
// contract: every parse* method returns (node, error) instead of
// appending to an errors slice.
type Parser struct {
	ts      *TokenStream
	state   *State
	options ParseOptions
	source  ast.SourceID

	lastEnd  int // end byte offset of the most recently consumed token
	lastLine int // line of the most recently consumed token
}

// New creates a Parser reading from lex, attributing spans to source,
// under options.
func New(lex *lexer.Lexer, source ast.SourceID, options ParseOptions) *Parser {
	return &Parser{
		ts:      NewTokenStream(lex),
		state:   NewState(),
		options: options,
		source:  source,
	}
}

// State exposes the parsing state, e.g. for callers inspecting the
// keyword-position log after a parse.
func (p *Parser) State() *State {
	return p.state
}

func (p *Parser) cur() lexer.Token {
	return p.ts.Peek()
}

func (p *Parser) peekN(n int) lexer.Token {
	return p.ts.PeekN(n)
}

func (p *Parser) curIs(kind lexer.TokenType) bool {
	return p.cur().Type == kind
}

// advance consumes and returns the current lookahead token, tracking
// its end offset for span composition.
func (p *Parser) advance() lexer.Token {
	tok := p.ts.Next()
	p.lastEnd = tok.End
	p.lastLine = tok.Line
	return tok
}

// expect consumes the lookahead if it has kind, otherwise returns a
// structured PAR001 error and consumes nothing.
func (p *Parser) expect(kind lexer.TokenType) (lexer.Token, error) {
	if !p.curIs(kind) {
		return lexer.Token{}, p.peekError(kind)
	}
	return p.advance(), nil
}

// skipComments discards any leading comment tokens (spec.md §4.1
// "Comment skip").
func (p *Parser) skipComments() {
	for p.cur().IsComment() {
		p.advance()
	}
}

// spanFrom builds a Span from start to the end of the most recently
// consumed token.
func (p *Parser) spanFrom(start int) ast.Span {
	end := p.lastEnd
	if end < start {
		end = start
	}
	return ast.Span{Start: start, End: end, Source: p.source}
}

// ParseTypeAnnotationString is a convenience entry point used by
// tests and callers that only need C4 in isolation: it parses exactly
// one type annotation from the start of src. Tokens after that
// annotation are left unread and are not reported as an error.
func ParseTypeAnnotationString(src string, options ParseOptions) (ast.TypeAnnotation, error) {
	p := New(lexer.New(src, "<string>"), ast.SourceID(1), options)
	ty, err := p.ParseTypeAnnotation(TypeParseFlags{})
	if err != nil {
		return nil, err
	}
	return ty, nil
}

// ParseProgram parses a whole source file as a flat sequence of
// top-level statement-or-declaration items (spec.md §4.3, applied at
// the root rather than inside a `{ }` block).
func ParseProgram(lex *lexer.Lexer, source ast.SourceID, options ParseOptions) (*ast.Program, error) {
	p := New(lex, source, options)
	start := p.cur().Start
	items, err := p.parseStatementsAndDeclarations()
	if err != nil {
		return nil, err
	}
	return &ast.Program{Items: items, Span: p.spanFrom(start)}, nil
}
