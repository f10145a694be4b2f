package parser

import (
	"fmt"

	"github.com/tsxcheck/tsxcheck/internal/ast"
	tsxerrors "github.com/tsxcheck/tsxcheck/internal/errors"
	"github.com/tsxcheck/tsxcheck/internal/lexer"
)

// ParserError is a structured parse failure, grounded on the teacher's
// ParserError/NewParserError pair but adapted to spec.md §7's fail-fast
// contract: the first violation unwinds the current parse as a
// returned error rather than accumulating into a slice.
type ParserError struct {
	Rep *tsxerrors.Report
}

func (e *ParserError) Error() string {
	return e.Rep.Code + ": " + e.Rep.Message
}

// Unwrap lets callers use errors.As(err, &tsxerrors.ReportError{}) or
// inspect the wrapped Report directly via tsxerrors.AsReport.
func (e *ParserError) Unwrap() error {
	return tsxerrors.WrapReport(e.Rep)
}

func newParserError(code string, span ast.Span, message string) *ParserError {
	return &ParserError{Rep: tsxerrors.New("parser", code, message).WithSpan(span)}
}

// report builds an error with the given code and message at tok's span.
func (p *Parser) report(code string, tok lexer.Token, message string) *ParserError {
	return newParserError(code, tokenSpan(p, tok), message)
}

// reportExpected builds a "expected X, got Y" PAR001 error for the
// current lookahead token.
func (p *Parser) reportExpected(expected ...lexer.TokenType) *ParserError {
	found := p.ts.Peek()
	names := make([]string, len(expected))
	for i, e := range expected {
		names[i] = e.String()
	}
	msg := fmt.Sprintf("expected %v, got %s", names, found.Type)
	err := newParserError(tsxerrors.PAR001, tokenSpan(p, found), msg)
	err.Rep.WithData("found", found.Type.String())
	return err
}

// peekError is the expect_next family's error path: the lookahead
// token did not match kind.
func (p *Parser) peekError(kind lexer.TokenType) *ParserError {
	return p.reportExpected(kind)
}

func tokenSpan(p *Parser, tok lexer.Token) ast.Span {
	return ast.Span{Start: tok.Start, End: tok.End, Source: p.source}
}
