package parser

import (
	"github.com/tsxcheck/tsxcheck/internal/ast"
	"github.com/tsxcheck/tsxcheck/internal/lexer"
)

// Precedence levels for the minimal expression grammar (spec.md §1:
// expression parsing is a needed-but-secondary collaborator of C5/C6,
// not one of the three hard subsystems). Grounded on the teacher's
// Pratt-parser precedence-constant block, pared down to the operators
// this lexer actually tokenizes.
const (
	lowestPrecedence int = iota
	commaPrecedence
	orPrecedence   // |
	andPrecedence  // &
	callPrecedence // f(x), a.b
)

func infixPrecedence(t lexer.TokenType) int {
	switch t {
	case lexer.BITWISE_OR:
		return orPrecedence
	case lexer.BITWISE_AND:
		return andPrecedence
	case lexer.OPEN_PAREN, lexer.DOT, lexer.OPTIONAL_MEMBER:
		return callPrecedence
	default:
		return lowestPrecedence
	}
}

// ParseExpression parses a value-level expression, stopping before any
// infix operator whose precedence is <= minPrecedence. C5 calls this
// with commaPrecedence for declaration initializers, so a top-level
// `,` (never registered as an infix operator here) always ends the
// expression at the declaration item boundary.
func (p *Parser) ParseExpression(minPrecedence int) (ast.Expression, error) {
	left, err := p.parseExpressionPrimary()
	if err != nil {
		return nil, err
	}
	for {
		tok := p.cur()
		prec := infixPrecedence(tok.Type)
		if prec <= minPrecedence || prec == lowestPrecedence {
			return left, nil
		}
		left, err = p.parseExpressionInfix(left, tok)
		if err != nil {
			return nil, err
		}
	}
}

func (p *Parser) parseExpressionInfix(left ast.Expression, tok lexer.Token) (ast.Expression, error) {
	switch tok.Type {
	case lexer.DOT, lexer.OPTIONAL_MEMBER:
		p.advance()
		name, err := p.expect(lexer.IDENT)
		if err != nil {
			return nil, err
		}
		return &ast.MemberExpr{Object: left, Property: name.Literal, Span: p.spanFrom(left.GetSpan().Start)}, nil
	case lexer.OPEN_PAREN:
		p.advance()
		var args []ast.Expression
		for !p.curIs(lexer.CLOSE_PAREN) {
			arg, err := p.ParseExpression(commaPrecedence)
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.curIs(lexer.COMMA) {
				break
			}
			p.advance()
		}
		if _, err := p.expect(lexer.CLOSE_PAREN); err != nil {
			return nil, err
		}
		return &ast.CallExpr{Callee: left, Arguments: args, Span: p.spanFrom(left.GetSpan().Start)}, nil
	case lexer.BITWISE_OR, lexer.BITWISE_AND:
		p.advance()
		prec := infixPrecedence(tok.Type)
		right, err := p.ParseExpression(prec)
		if err != nil {
			return nil, err
		}
		return &ast.BinaryExpr{Operator: tok.Literal, Left: left, Right: right, Span: p.spanFrom(left.GetSpan().Start)}, nil
	default:
		return left, p.report(errUnexpectedInfix, tok, "unexpected infix operator")
	}
}

const errUnexpectedInfix = "PAR001"

func (p *Parser) parseExpressionPrimary() (ast.Expression, error) {
	tok := p.cur()
	switch tok.Type {
	case lexer.IDENT:
		p.advance()
		return &ast.Identifier{Name: tok.Literal, Span: tokenSpan(p, tok)}, nil
	case lexer.NUMBER_LITERAL:
		p.advance()
		return &ast.NumberLiteralExpr{Repr: tok.Literal, Span: tokenSpan(p, tok)}, nil
	case lexer.STRING_LITERAL:
		p.advance()
		return &ast.StringLiteralExpr{Value: tok.Literal, Quote: tok.Quote, Span: tokenSpan(p, tok)}, nil
	case lexer.TRUE, lexer.FALSE:
		p.advance()
		return &ast.BooleanLiteralExpr{Value: tok.Type == lexer.TRUE, Span: tokenSpan(p, tok)}, nil
	case lexer.OPEN_PAREN:
		start := tok.Start
		p.advance()
		inner, err := p.ParseExpression(lowestPrecedence)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.CLOSE_PAREN); err != nil {
			return nil, err
		}
		return &ast.ParenthesizedExpr{Inner: inner, Span: p.spanFrom(start)}, nil
	case lexer.OPEN_BRACKET:
		start := tok.Start
		p.advance()
		var elements []ast.Expression
		for !p.curIs(lexer.CLOSE_BRACKET) {
			el, err := p.ParseExpression(commaPrecedence)
			if err != nil {
				return nil, err
			}
			elements = append(elements, el)
			if !p.curIs(lexer.COMMA) {
				break
			}
			p.advance()
		}
		if _, err := p.expect(lexer.CLOSE_BRACKET); err != nil {
			return nil, err
		}
		return &ast.ArrayExpr{Elements: elements, Span: p.spanFrom(start)}, nil
	case lexer.OPEN_BRACE:
		start := tok.Start
		p.advance()
		var props []ast.ObjectProperty
		for !p.curIs(lexer.CLOSE_BRACE) {
			keyTok := p.cur()
			if keyTok.Type != lexer.IDENT && keyTok.Type != lexer.STRING_LITERAL {
				return nil, p.reportExpected(lexer.IDENT, lexer.STRING_LITERAL)
			}
			p.advance()
			if _, err := p.expect(lexer.COLON); err != nil {
				return nil, err
			}
			val, err := p.ParseExpression(commaPrecedence)
			if err != nil {
				return nil, err
			}
			props = append(props, ast.ObjectProperty{Key: keyTok.Literal, Value: val})
			if !p.curIs(lexer.COMMA) {
				break
			}
			p.advance()
		}
		if _, err := p.expect(lexer.CLOSE_BRACE); err != nil {
			return nil, err
		}
		return &ast.ObjectExpr{Properties: props, Span: p.spanFrom(start)}, nil
	default:
		return nil, p.report(errUnexpectedInfix, tok, "unexpected token in expression")
	}
}
