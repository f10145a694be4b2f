package parser

import (
	"github.com/tsxcheck/tsxcheck/internal/ast"
	tsxerrors "github.com/tsxcheck/tsxcheck/internal/errors"
	"github.com/tsxcheck/tsxcheck/internal/lexer"
)

// ParseBlock parses a brace-delimited sequence of statement-or-
// declaration items (C6), grounded on
// _examples/original_source/parser/src/block.rs's Block::from_reader.
func (p *Parser) ParseBlock() (*ast.Block, error) {
	open, err := p.expect(lexer.OPEN_BRACE)
	if err != nil {
		return nil, err
	}
	items, err := p.parseStatementsAndDeclarations()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.CLOSE_BRACE); err != nil {
		return nil, err
	}
	return &ast.Block{Items: items, Span: p.spanFrom(open.Start)}, nil
}

// ParseBlockOrSingleStatement parses either a brace-delimited Block or
// a lone Statement (spec.md §4.3 "Block-or-single-statement"),
// grounded on block.rs's BlockOrSingleStatement::from_reader: a single
// statement still has its own trailing semicolon enforced here, since
// it is not a block item accounted for by parseStatementsAndDeclarations.
func (p *Parser) ParseBlockOrSingleStatement() (ast.BlockOrSingleStatement, error) {
	if p.curIs(lexer.OPEN_BRACE) {
		block, err := p.ParseBlock()
		if err != nil {
			return nil, err
		}
		return ast.Braced{Block: block}, nil
	}
	stmt, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	if stmt.RequiresSemiColon() {
		if err := p.consumeOptionalSemiColon(); err != nil {
			return nil, err
		}
	}
	return ast.SingleStatement{Stmt: stmt}, nil
}

// parseStatementsAndDeclarations is the inner driver shared by
// ParseBlock and ParseProgram: loop until a closing brace or EOF,
// dispatching each item to a declaration or statement parse and
// enforcing the per-item semicolon rule (spec.md §4.3).
func (p *Parser) parseStatementsAndDeclarations() ([]ast.StatementOrDeclaration, error) {
	var items []ast.StatementOrDeclaration
	for {
		p.skipComments()
		if p.curIs(lexer.CLOSE_BRACE) || p.curIs(lexer.EOF) {
			return items, nil
		}

		itemStart := p.cur().Start

		if p.options.InterpolationPoints && p.curIs(lexer.IDENT) && p.cur().Literal == MarkerIdent {
			tok := p.advance()
			items = append(items, &ast.MarkerItem{MarkerID: p.state.NewMarkerID(), Span: ast.Span{Start: tok.Start, End: tok.Start, Source: p.source}})
			continue
		}

		var item ast.StatementOrDeclaration
		if isDeclarationStart(p.cur()) {
			decl, err := p.parseDeclaration()
			if err != nil {
				return nil, err
			}
			item = &ast.DeclarationItem{Decl: decl, Span: p.spanFrom(itemStart)}
		} else if (p.curIs(lexer.ENUM) || p.curIs(lexer.TYPE)) && !p.peekN(1).IsSymbol() {
			decl, err := p.parseDeclaration()
			if err != nil {
				return nil, err
			}
			item = &ast.DeclarationItem{Decl: decl, Span: p.spanFrom(itemStart)}
		} else {
			stmt, err := p.parseStatement()
			if err != nil {
				return nil, err
			}
			item = &ast.StatementItem{Stmt: stmt, Span: p.spanFrom(itemStart)}
		}

		items = append(items, item)
		if item.RequiresSemiColon() {
			if err := p.consumeOptionalSemiColon(); err != nil {
				return nil, err
			}
		}
	}
}

// isDeclarationStart reports whether tok unambiguously begins a
// declaration. `enum` and `type` are deliberately excluded: those two
// keywords double as plain identifiers, so the caller special-cases
// them by checking whether a symbol follows (block.rs's
// Declaration::is_declaration_start plus its enum/type fallthrough).
func isDeclarationStart(tok lexer.Token) bool {
	switch tok.Type {
	case lexer.CONST, lexer.LET, lexer.FUNCTION, lexer.INTERFACE, lexer.IMPORT, lexer.EXPORT:
		return true
	}
	return false
}

// consumeOptionalSemiColon enforces spec.md §4.3's automatic-semicolon-
// insertion tolerance: a `;` is consumed if present; otherwise absence
// is accepted only at a block/file boundary or when the next token
// starts a new line, else PAR007.
func (p *Parser) consumeOptionalSemiColon() error {
	if p.curIs(lexer.SEMI_COLON) {
		p.advance()
		return nil
	}
	if p.curIs(lexer.CLOSE_BRACE) || p.curIs(lexer.EOF) {
		return nil
	}
	if p.cur().Line != p.lastLine {
		return nil
	}
	return p.report(tsxerrors.PAR007, p.cur(), "expected ';'")
}

// parseDeclaration dispatches to one of C6's declaration-kind parsers.
func (p *Parser) parseDeclaration() (ast.Declaration, error) {
	tok := p.cur()
	switch tok.Type {
	case lexer.CONST, lexer.LET:
		return p.ParseVariableDeclaration()
	case lexer.FUNCTION:
		return p.parseFunctionDeclaration()
	case lexer.INTERFACE:
		return p.parseInterfaceDeclaration()
	case lexer.TYPE:
		return p.parseTypeAliasDeclaration()
	case lexer.ENUM:
		return p.parseEnumDeclaration()
	case lexer.IMPORT:
		return p.parseImportDeclaration()
	case lexer.EXPORT:
		return p.parseExportDeclaration()
	default:
		return nil, p.reportExpected(lexer.CONST, lexer.LET, lexer.FUNCTION,
			lexer.INTERFACE, lexer.TYPE, lexer.ENUM, lexer.IMPORT, lexer.EXPORT)
	}
}

func (p *Parser) parseTypeParameterList() ([]ast.TypeAnnotation, error) {
	if !p.curIs(lexer.OPEN_CHEVRON) {
		return nil, nil
	}
	p.advance()
	args, _, err := p.parseGenericArguments(false)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.CLOSE_CHEVRON); err != nil {
		return nil, err
	}
	return args, nil
}

func (p *Parser) parseFunctionDeclaration() (*ast.FunctionDeclaration, error) {
	start := p.cur().Start
	p.advance() // function
	nameTok, err := p.expect(lexer.IDENT)
	if err != nil {
		return nil, err
	}
	typeParams, err := p.parseTypeParameterList()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.OPEN_PAREN); err != nil {
		return nil, err
	}
	var params []ast.FunctionParameter
	for !p.curIs(lexer.CLOSE_PAREN) {
		pstart := p.cur().Start
		binding, err := p.parseWithCommentVariableField()
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
		var def ast.Expression
		if p.curIs(lexer.ASSIGN) {
			p.advance()
			def, err = p.ParseExpression(commaPrecedence)
			if err != nil {
				return nil, err
			}
		}
		params = append(params, ast.FunctionParameter{Name: binding, TypeAnnotation: ty, Default: def, Span: p.spanFrom(pstart)})
		if !p.curIs(lexer.COMMA) {
			break
		}
		p.advance()
	}
	if _, err := p.expect(lexer.CLOSE_PAREN); err != nil {
		return nil, err
	}
	var returnType ast.TypeAnnotation
	if p.options.TypeAnnotations && p.curIs(lexer.COLON) {
		p.advance()
		returnType, err = p.ParseTypeAnnotation(TypeParseFlags{})
		if err != nil {
			return nil, err
		}
	}
	body, err := p.ParseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.FunctionDeclaration{
		Name:           nameTok.Literal,
		TypeParameters: typeParams,
		Parameters:     params,
		ReturnType:     returnType,
		Body:           body,
		Span:           p.spanFrom(start),
	}, nil
}

func (p *Parser) parseTypeAliasDeclaration() (*ast.TypeAliasDeclaration, error) {
	start := p.cur().Start
	p.advance() // type
	nameTok, err := p.expect(lexer.IDENT)
	if err != nil {
		return nil, err
	}
	typeParams, err := p.parseTypeParameterList()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.ASSIGN); err != nil {
		return nil, err
	}
	value, err := p.ParseTypeAnnotation(TypeParseFlags{})
	if err != nil {
		return nil, err
	}
	return &ast.TypeAliasDeclaration{Name: nameTok.Literal, TypeParameters: typeParams, Value: value, Span: p.spanFrom(start)}, nil
}

func (p *Parser) parseInterfaceDeclaration() (*ast.InterfaceDeclaration, error) {
	start := p.cur().Start
	p.advance() // interface
	nameTok, err := p.expect(lexer.IDENT)
	if err != nil {
		return nil, err
	}
	typeParams, err := p.parseTypeParameterList()
	if err != nil {
		return nil, err
	}
	var extends []ast.TypeAnnotation
	if p.curIs(lexer.EXTENDS) {
		p.advance()
		for {
			ty, err := p.parseTypeAnnotationAnchored(TypeParseFlags{ReturnOnUnionOrIntersection: true}, nil)
			if err != nil {
				return nil, err
			}
			extends = append(extends, ty)
			if !p.curIs(lexer.COMMA) {
				break
			}
			p.advance()
		}
	}
	if _, err := p.expect(lexer.OPEN_BRACE); err != nil {
		return nil, err
	}
	var members []ast.ObjectMember
	for !p.curIs(lexer.CLOSE_BRACE) {
		m, err := p.parseObjectMember()
		if err != nil {
			return nil, err
		}
		members = append(members, m)
		if p.curIs(lexer.COMMA) || p.curIs(lexer.SEMI_COLON) {
			p.advance()
		}
	}
	if _, err := p.expect(lexer.CLOSE_BRACE); err != nil {
		return nil, err
	}
	return &ast.InterfaceDeclaration{Name: nameTok.Literal, TypeParameters: typeParams, Extends: extends, Members: members, Span: p.spanFrom(start)}, nil
}

func (p *Parser) parseEnumDeclaration() (*ast.EnumDeclaration, error) {
	start := p.cur().Start
	p.advance() // enum
	nameTok, err := p.expect(lexer.IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.OPEN_BRACE); err != nil {
		return nil, err
	}
	var members []ast.EnumMember
	for !p.curIs(lexer.CLOSE_BRACE) {
		memberTok, err := p.expect(lexer.IDENT)
		if err != nil {
			return nil, err
		}
		var value ast.Expression
		if p.curIs(lexer.ASSIGN) {
			p.advance()
			value, err = p.ParseExpression(commaPrecedence)
			if err != nil {
				return nil, err
			}
		}
		members = append(members, ast.EnumMember{Name: memberTok.Literal, Value: value})
		if !p.curIs(lexer.COMMA) {
			break
		}
		p.advance()
	}
	if _, err := p.expect(lexer.CLOSE_BRACE); err != nil {
		return nil, err
	}
	return &ast.EnumDeclaration{Name: nameTok.Literal, Members: members, Span: p.spanFrom(start)}, nil
}

func (p *Parser) parseImportDeclaration() (*ast.ImportDeclaration, error) {
	start := p.cur().Start
	p.advance() // import
	tok := p.cur()
	switch tok.Type {
	case lexer.STAR:
		p.advance()
		if _, err := p.expect(lexer.AS); err != nil {
			return nil, err
		}
		nsTok, err := p.expect(lexer.IDENT)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.FROM); err != nil {
			return nil, err
		}
		modTok, err := p.expect(lexer.STRING_LITERAL)
		if err != nil {
			return nil, err
		}
		return &ast.ImportDeclaration{Kind: ast.ImportAll, Namespace: nsTok.Literal, ModulePath: modTok.Literal, Span: p.spanFrom(start)}, nil
	case lexer.OPEN_BRACE:
		p.advance()
		var parts []ast.ImportSpecifier
		for !p.curIs(lexer.CLOSE_BRACE) {
			nameTok, err := p.expect(lexer.IDENT)
			if err != nil {
				return nil, err
			}
			alias := nameTok.Literal
			if p.curIs(lexer.AS) {
				p.advance()
				aliasTok, err := p.expect(lexer.IDENT)
				if err != nil {
					return nil, err
				}
				alias = aliasTok.Literal
			}
			parts = append(parts, ast.ImportSpecifier{Name: nameTok.Literal, Alias: alias})
			if !p.curIs(lexer.COMMA) {
				break
			}
			p.advance()
		}
		if _, err := p.expect(lexer.CLOSE_BRACE); err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.FROM); err != nil {
			return nil, err
		}
		modTok, err := p.expect(lexer.STRING_LITERAL)
		if err != nil {
			return nil, err
		}
		return &ast.ImportDeclaration{Kind: ast.ImportParts, Parts: parts, ModulePath: modTok.Literal, Span: p.spanFrom(start)}, nil
	case lexer.IDENT:
		p.advance()
		if _, err := p.expect(lexer.FROM); err != nil {
			return nil, err
		}
		modTok, err := p.expect(lexer.STRING_LITERAL)
		if err != nil {
			return nil, err
		}
		return &ast.ImportDeclaration{Kind: ast.ImportDefault, DefaultName: tok.Literal, ModulePath: modTok.Literal, Span: p.spanFrom(start)}, nil
	default:
		return nil, p.reportExpected(lexer.STAR, lexer.OPEN_BRACE, lexer.IDENT)
	}
}

func (p *Parser) parseExportDeclaration() (ast.Declaration, error) {
	start := p.cur().Start
	p.advance() // export
	tok := p.cur()
	switch tok.Type {
	case lexer.STAR:
		p.advance()
		var namespace string
		if p.curIs(lexer.AS) {
			p.advance()
			nsTok, err := p.expect(lexer.IDENT)
			if err != nil {
				return nil, err
			}
			namespace = nsTok.Literal
		}
		if _, err := p.expect(lexer.FROM); err != nil {
			return nil, err
		}
		modTok, err := p.expect(lexer.STRING_LITERAL)
		if err != nil {
			return nil, err
		}
		return &ast.ExportVariableDeclaration{Kind: ast.ReexportAll, Namespace: namespace, FromModule: modTok.Literal, Span: p.spanFrom(start)}, nil
	case lexer.OPEN_BRACE:
		p.advance()
		var specs []ast.ExportSpecifier
		for !p.curIs(lexer.CLOSE_BRACE) {
			nameTok, err := p.expect(lexer.IDENT)
			if err != nil {
				return nil, err
			}
			alias := nameTok.Literal
			if p.curIs(lexer.AS) {
				p.advance()
				aliasTok, err := p.expect(lexer.IDENT)
				if err != nil {
					return nil, err
				}
				alias = aliasTok.Literal
			}
			specs = append(specs, ast.ExportSpecifier{Name: nameTok.Literal, Alias: alias})
			if !p.curIs(lexer.COMMA) {
				break
			}
			p.advance()
		}
		if _, err := p.expect(lexer.CLOSE_BRACE); err != nil {
			return nil, err
		}
		kind := ast.ReexportNamed
		var from string
		if p.curIs(lexer.FROM) {
			p.advance()
			modTok, err := p.expect(lexer.STRING_LITERAL)
			if err != nil {
				return nil, err
			}
			from = modTok.Literal
			kind = ast.ReexportParts
		}
		return &ast.ExportVariableDeclaration{Kind: kind, Specifiers: specs, FromModule: from, Span: p.spanFrom(start)}, nil
	case lexer.DEFAULT:
		p.advance()
		expr, err := p.ParseExpression(lowestPrecedence)
		if err != nil {
			return nil, err
		}
		return &ast.ExportDefaultDeclaration{Expr: expr, Span: p.spanFrom(start)}, nil
	default:
		decl, err := p.parseDeclaration()
		if err != nil {
			return nil, err
		}
		return &ast.ExportDeclarationWrapper{Decl: decl, Span: p.spanFrom(start)}, nil
	}
}

// ---------------------------------------------------------------------
// Minimal statement grammar (spec.md §1: a needed-but-secondary
// collaborator, not one of the three hard subsystems). `return`, `if`
// and `else` are not lexer keywords (the lexer's keyword table is
// type-annotation-oriented), so they are recognized as contextual
// identifiers, the same idiom the teacher uses for soft keywords.

func (p *Parser) parseStatement() (ast.Statement, error) {
	tok := p.cur()
	if tok.Type == lexer.OPEN_BRACE {
		block, err := p.ParseBlock()
		if err != nil {
			return nil, err
		}
		return &ast.BlockStatement{Block: block, Span: block.Span}, nil
	}
	if tok.Type == lexer.IDENT && tok.Literal == "return" {
		p.advance()
		if p.curIs(lexer.SEMI_COLON) || p.curIs(lexer.CLOSE_BRACE) || p.curIs(lexer.EOF) {
			return &ast.ReturnStatement{Span: p.spanFrom(tok.Start)}, nil
		}
		expr, err := p.ParseExpression(lowestPrecedence)
		if err != nil {
			return nil, err
		}
		return &ast.ReturnStatement{Expr: expr, Span: p.spanFrom(tok.Start)}, nil
	}
	if tok.Type == lexer.IDENT && tok.Literal == "if" {
		return p.parseIfStatement(tok)
	}
	expr, err := p.ParseExpression(lowestPrecedence)
	if err != nil {
		return nil, err
	}
	return &ast.ExpressionStatement{Expr: expr, Span: expr.GetSpan()}, nil
}

func (p *Parser) parseIfStatement(tok lexer.Token) (*ast.IfStatement, error) {
	p.advance() // if
	if _, err := p.expect(lexer.OPEN_PAREN); err != nil {
		return nil, err
	}
	condition, err := p.ParseExpression(lowestPrecedence)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.CLOSE_PAREN); err != nil {
		return nil, err
	}
	consequent, err := p.parseBlockOrSingleStatementAsStatement()
	if err != nil {
		return nil, err
	}
	var alternate ast.Statement
	if p.curIs(lexer.IDENT) && p.cur().Literal == "else" {
		p.advance()
		alternate, err = p.parseBlockOrSingleStatementAsStatement()
		if err != nil {
			return nil, err
		}
	}
	return &ast.IfStatement{Condition: condition, Consequent: consequent, Alternate: alternate, Span: p.spanFrom(tok.Start)}, nil
}

// parseBlockOrSingleStatementAsStatement flattens
// ParseBlockOrSingleStatement's two cases into the plain Statement
// shape ast.IfStatement's branches use.
func (p *Parser) parseBlockOrSingleStatementAsStatement() (ast.Statement, error) {
	result, err := p.ParseBlockOrSingleStatement()
	if err != nil {
		return nil, err
	}
	switch v := result.(type) {
	case ast.Braced:
		return &ast.BlockStatement{Block: v.Block, Span: v.Block.Span}, nil
	case ast.SingleStatement:
		return v.Stmt, nil
	default:
		return nil, p.report(tsxerrors.PAR001, p.cur(), "unreachable block-or-single-statement case")
	}
}
