package parser

import "github.com/tsxcheck/tsxcheck/internal/lexer"

// TokenStream wraps a lexer.Lexer with the lookahead contract C1 needs
// (spec.md §2/§6): peek, peekN, a mutable peek (peekMut) used to
// reglue `>>`/`>>>` into single `>` closes, next, a predicate-gated
// conditional next, and a non-consuming scan.
//
// Buffered-not-yet-returned tokens live in buf; peekMut mutates the
// buffered slot in place, which is exactly the strategy spec.md §9
// calls out as the chosen one over a synthetic-token fallback.
type TokenStream struct {
	lex *lexer.Lexer
	buf []lexer.Token
}

// NewTokenStream creates a TokenStream over lex.
func NewTokenStream(lex *lexer.Lexer) *TokenStream {
	return &TokenStream{lex: lex}
}

func (ts *TokenStream) fill(n int) {
	for len(ts.buf) <= n {
		ts.buf = append(ts.buf, ts.lex.NextToken())
	}
}

// Peek returns the next token without consuming it.
func (ts *TokenStream) Peek() lexer.Token {
	ts.fill(0)
	return ts.buf[0]
}

// PeekN returns the token k positions ahead (0 == Peek()) without
// consuming anything.
func (ts *TokenStream) PeekN(k int) lexer.Token {
	ts.fill(k)
	return ts.buf[k]
}

// PeekMut exposes the next token for in-place mutation — used to
// reglue `>>`/`>>>` (spec.md §4.1's generic-argument parsing rule).
func (ts *TokenStream) PeekMut(fn func(*lexer.Token)) {
	ts.fill(0)
	fn(&ts.buf[0])
}

// Next consumes and returns the next token.
func (ts *TokenStream) Next() lexer.Token {
	ts.fill(0)
	t := ts.buf[0]
	ts.buf = ts.buf[1:]
	return t
}

// ConditionalNext consumes and returns the next token only if pred
// matches it; otherwise it returns the zero Token and false, leaving
// the stream untouched.
func (ts *TokenStream) ConditionalNext(pred func(lexer.Token) bool) (lexer.Token, bool) {
	if pred(ts.Peek()) {
		return ts.Next(), true
	}
	return lexer.Token{}, false
}

// Scan returns the first upcoming token matching pred, and how many
// tokens ahead it is (0 == Peek()), without consuming anything. It
// returns ok=false if EOF is reached first.
func (ts *TokenStream) Scan(pred func(lexer.Token) bool) (depth int, ok bool) {
	for i := 0; ; i++ {
		t := ts.PeekN(i)
		if pred(t) {
			return i, true
		}
		if t.Type == lexer.EOF {
			return 0, false
		}
	}
}

// ExpectNext consumes the next token if it has kind, otherwise returns
// a structured *ParserError.
func (ts *TokenStream) ExpectNext(p *Parser, kind lexer.TokenType) (lexer.Token, error) {
	if ts.Peek().Type != kind {
		return lexer.Token{}, p.peekError(kind)
	}
	return ts.Next(), nil
}

// ExpectNextGetEnd consumes the next token if it has kind and returns
// its end byte offset, otherwise returns a structured *ParserError.
func (ts *TokenStream) ExpectNextGetEnd(p *Parser, kind lexer.TokenType) (int, error) {
	tok, err := ts.ExpectNext(p, kind)
	if err != nil {
		return 0, err
	}
	return tok.End, nil
}
