package parser

import (
	"github.com/tsxcheck/tsxcheck/internal/ast"
	tsxerrors "github.com/tsxcheck/tsxcheck/internal/errors"
	"github.com/tsxcheck/tsxcheck/internal/lexer"
)

// ParseVariableDeclaration parses C5's top-level form: `const ...;` or
// `let ...;`, grounded on
// _examples/original_source/parser/src/declarations/variable.rs.
func (p *Parser) ParseVariableDeclaration() (ast.VariableDeclaration, error) {
	tok := p.cur()
	switch tok.Type {
	case lexer.CONST:
		p.advance()
		p.state.RecordKeyword(tokenSpan(p, tok))
		items, err := p.parseConstDeclarationItems()
		if err != nil {
			return nil, err
		}
		return &ast.ConstDeclaration{Items: items, Span: p.spanFrom(tok.Start)}, nil
	case lexer.LET:
		p.advance()
		p.state.RecordKeyword(tokenSpan(p, tok))
		items, err := p.parseLetDeclarationItems()
		if err != nil {
			return nil, err
		}
		return &ast.LetDeclaration{Items: items, Span: p.spanFrom(tok.Start)}, nil
	default:
		return nil, p.report(tsxerrors.PAR004, tok, "expected 'const' or 'let'")
	}
}

func (p *Parser) parseConstDeclarationItems() ([]*ast.ConstDeclarationItem, error) {
	var items []*ast.ConstDeclarationItem
	for {
		item, err := p.parseConstDeclarationItem()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		if !p.curIs(lexer.COMMA) {
			return items, nil
		}
		p.advance()
	}
}

// parseConstDeclarationItem enforces spec.md §4.2 rule 3: a `const`
// binding's initializer is never optional.
func (p *Parser) parseConstDeclarationItem() (*ast.ConstDeclarationItem, error) {
	start := p.cur().Start
	name, err := p.parseWithCommentVariableField()
	if err != nil {
		return nil, err
	}
	var ty ast.TypeAnnotation
	if p.options.TypeAnnotations && p.curIs(lexer.COLON) {
		p.advance()
		ty, err = p.ParseTypeAnnotation(TypeParseFlags{})
		if err != nil {
			return nil, err
		}
	}
	assignTok := p.cur()
	if !p.curIs(lexer.ASSIGN) {
		return nil, p.report(tsxerrors.PAR006, assignTok, "const declaration requires an initializer")
	}
	p.advance()
	value, err := p.ParseExpression(commaPrecedence)
	if err != nil {
		return nil, err
	}
	return &ast.ConstDeclarationItem{
		Name:           name,
		TypeAnnotation: ty,
		Expression:     value,
		Span:           p.spanFrom(start),
	}, nil
}

func (p *Parser) parseLetDeclarationItems() ([]*ast.LetDeclarationItem, error) {
	var items []*ast.LetDeclarationItem
	for {
		item, err := p.parseLetDeclarationItem()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		if !p.curIs(lexer.COMMA) {
			return items, nil
		}
		p.advance()
	}
}

// parseLetDeclarationItem enforces spec.md §4.2 rule 5: a `let`
// binding's initializer is optional unless the binding itself is a
// destructuring pattern, in which case its absence is PAR005.
func (p *Parser) parseLetDeclarationItem() (*ast.LetDeclarationItem, error) {
	start := p.cur().Start
	name, err := p.parseWithCommentVariableField()
	if err != nil {
		return nil, err
	}
	var ty ast.TypeAnnotation
	if p.options.TypeAnnotations && p.curIs(lexer.COLON) {
		p.advance()
		ty, err = p.ParseTypeAnnotation(TypeParseFlags{})
		if err != nil {
			return nil, err
		}
	}
	var value ast.Expression
	if p.curIs(lexer.ASSIGN) {
		p.advance()
		value, err = p.ParseExpression(commaPrecedence)
		if err != nil {
			return nil, err
		}
	} else if !name.Field.IsName() {
		return nil, p.report(tsxerrors.PAR005, p.cur(), "destructuring binding requires an initializer")
	}
	return &ast.LetDeclarationItem{
		Name:           name,
		TypeAnnotation: ty,
		Expression:     value,
		Span:           p.spanFrom(start),
	}, nil
}

// parseWithCommentVariableField accumulates any leading comment tokens
// ahead of a binding pattern into WithComment.Leading, mirroring the
// teacher's comment-absorbing token-stream idiom.
func (p *Parser) parseWithCommentVariableField() (ast.WithComment, error) {
	var leading string
	for p.cur().IsComment() {
		leading = p.advance().Literal
	}
	field, err := p.parseVariableField()
	if err != nil {
		return ast.WithComment{}, err
	}
	return ast.WithComment{Leading: leading, Field: field}, nil
}

func (p *Parser) parseVariableField() (ast.VariableField, error) {
	tok := p.cur()
	switch tok.Type {
	case lexer.IDENT:
		p.advance()
		return &ast.NameField{Name: tok.Literal, Span: tokenSpan(p, tok)}, nil
	case lexer.OPEN_BRACKET:
		return p.parseArrayField()
	case lexer.OPEN_BRACE:
		return p.parseObjectField()
	default:
		return nil, p.reportExpected(lexer.IDENT, lexer.OPEN_BRACKET, lexer.OPEN_BRACE)
	}
}

func (p *Parser) parseArrayField() (*ast.ArrayField, error) {
	start := p.cur().Start
	p.advance() // [
	var elements []ast.ArrayFieldElement
	for !p.curIs(lexer.CLOSE_BRACKET) {
		if p.curIs(lexer.COMMA) {
			elements = append(elements, ast.ArrayFieldElement{})
			p.advance()
			continue
		}
		field, err := p.parseVariableField()
		if err != nil {
			return nil, err
		}
		var def ast.Expression
		if p.curIs(lexer.ASSIGN) {
			p.advance()
			def, err = p.ParseExpression(commaPrecedence)
			if err != nil {
				return nil, err
			}
		}
		elements = append(elements, ast.ArrayFieldElement{Field: field, Default: def})
		if !p.curIs(lexer.COMMA) {
			break
		}
		p.advance()
	}
	if _, err := p.expect(lexer.CLOSE_BRACKET); err != nil {
		return nil, err
	}
	return &ast.ArrayField{Elements: elements, Span: p.spanFrom(start)}, nil
}

func (p *Parser) parseObjectField() (*ast.ObjectField, error) {
	start := p.cur().Start
	p.advance() // {
	var props []ast.ObjectFieldProperty
	for !p.curIs(lexer.CLOSE_BRACE) {
		nameTok, err := p.expect(lexer.IDENT)
		if err != nil {
			return nil, err
		}
		var renamed ast.VariableField
		if p.curIs(lexer.COLON) {
			p.advance()
			renamed, err = p.parseVariableField()
			if err != nil {
				return nil, err
			}
		} else {
			renamed = &ast.NameField{Name: nameTok.Literal, Span: tokenSpan(p, nameTok)}
		}
		var def ast.Expression
		if p.curIs(lexer.ASSIGN) {
			p.advance()
			def, err = p.ParseExpression(commaPrecedence)
			if err != nil {
				return nil, err
			}
		}
		props = append(props, ast.ObjectFieldProperty{Name: nameTok.Literal, Renamed: renamed, Default: def})
		if !p.curIs(lexer.COMMA) {
			break
		}
		p.advance()
	}
	if _, err := p.expect(lexer.CLOSE_BRACE); err != nil {
		return nil, err
	}
	return &ast.ObjectField{Properties: props, Span: p.spanFrom(start)}, nil
}
