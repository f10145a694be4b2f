package parser

import (
	"github.com/tsxcheck/tsxcheck/internal/ast"
	tsxerrors "github.com/tsxcheck/tsxcheck/internal/errors"
	"github.com/tsxcheck/tsxcheck/internal/lexer"
)

// TypeParseFlags carries the two recursion flags spec.md §4.1 names
// alongside the entry contract: return_on_union_or_intersection and
// return_on_arrow.
type TypeParseFlags struct {
	ReturnOnUnionOrIntersection bool
	ReturnOnArrow               bool
}

// ParseTypeAnnotation is C4's public entry point: parse(reader, state,
// options) -> TypeAnnotation | ParseError (spec.md §4.1).
func (p *Parser) ParseTypeAnnotation(flags TypeParseFlags) (ast.TypeAnnotation, error) {
	return p.parseTypeAnnotationAnchored(flags, nil)
}

// parseTypeAnnotationAnchored is from_reader_with_config: anchor is the
// token position partial-syntax detection compares against (nil when
// there is none, e.g. at the top-level entry).
func (p *Parser) parseTypeAnnotationAnchored(flags TypeParseFlags, anchor *lexer.Token) (ast.TypeAnnotation, error) {
	if p.options.PartialSyntax {
		if marker, ok := p.maybeEmitPartialMarker(anchor); ok {
			return marker, nil
		}
	}

	p.skipComments()

	tok := p.advance()
	reference, done, err := p.parseTypePrimary(tok, flags, anchor)
	if err != nil {
		return nil, err
	}
	if done {
		return reference, nil
	}

	// Namespaced name: only one level (spec.md §4.1).
	if name, ok := reference.(*ast.NameType); ok && p.curIs(lexer.DOT) {
		p.advance()
		member, err := p.expect(lexer.IDENT)
		if err != nil {
			return nil, err
		}
		return &ast.NamespacedNameType{
			Namespace: name.Name,
			Member:    member.Literal,
			Span:      ast.Span{Start: name.Span.Start, End: member.End, Source: p.source},
		}, nil
	}

	// Generic suffix.
	if p.curIs(lexer.OPEN_CHEVRON) {
		name, ok := reference.(*ast.NameType)
		if !ok {
			bad := p.advance()
			return nil, newParserError(tsxerrors.PAR003, tokenSpan(p, bad), "type arguments are not valid on this reference")
		}
		p.advance()
		args, end, err := p.parseGenericArguments(flags.ReturnOnUnionOrIntersection)
		if err != nil {
			return nil, err
		}
		return &ast.GenericNameType{
			Name:      name.Name,
			Arguments: args,
			Span:      ast.Span{Start: name.Span.Start, End: end, Source: p.source},
		}, nil
	}

	// Array-and-index suffix loop.
	for p.curIs(lexer.OPEN_BRACKET) {
		start := reference.GetSpan().Start
		p.advance()
		if p.curIs(lexer.CLOSE_BRACKET) {
			closeTok := p.advance()
			reference = &ast.ArrayLiteralType{Inner: reference, Span: ast.Span{Start: start, End: closeTok.End, Source: p.source}}
			continue
		}
		indexer, err := p.ParseTypeAnnotation(TypeParseFlags{})
		if err != nil {
			return nil, err
		}
		closeTok, err := p.expect(lexer.CLOSE_BRACKET)
		if err != nil {
			return nil, err
		}
		reference = &ast.IndexType{On: reference, With: indexer, Span: ast.Span{Start: start, End: closeTok.End, Source: p.source}}
	}

	return p.parseTypePostfix(reference, flags, anchor)
}

// maybeEmitPartialMarker implements spec.md §4.1's partial-syntax
// gate: if the lookahead looks like it cannot start a type annotation
// here, emit a zero-length Marker instead of erroring.
func (p *Parser) maybeEmitPartialMarker(anchor *lexer.Token) (ast.TypeAnnotation, bool) {
	peek := p.cur()
	notTypeLike := false
	switch peek.Type {
	case lexer.CLOSE_PAREN, lexer.CLOSE_BRACKET, lexer.CLOSE_BRACE, lexer.COMMA, lexer.OPEN_CHEVRON:
		notTypeLike = true
	}
	if peek.Type.IsAssignment() {
		notTypeLike = true
	}
	if anchor != nil && peek.Type.IsStatementOrDeclarationStart() && peek.Line != anchor.Line {
		notTypeLike = true
	}
	if !notTypeLike {
		return nil, false
	}
	point := peek.Start
	if anchor != nil {
		point = anchor.Start
	}
	id := p.state.NewMarkerID()
	return &ast.MarkerType{MarkerID: id, Span: ast.Span{Start: point, End: point, Source: p.source}}, true
}

// parseTypePrimary dispatches on the just-consumed token tok, matching
// spec.md §4.1's primary-form table. done reports whether the result
// must be returned immediately, bypassing namespaced-name/generic/
// array/postfix suffix processing (true only for readonly and keyof).
func (p *Parser) parseTypePrimary(tok lexer.Token, flags TypeParseFlags, anchor *lexer.Token) (ast.TypeAnnotation, bool, error) {
	switch tok.Type {
	case lexer.TRUE, lexer.FALSE:
		return &ast.BooleanLiteralType{Value: tok.Type == lexer.TRUE, Span: tokenSpan(p, tok)}, false, nil
	case lexer.NUMBER_LITERAL:
		return &ast.NumberLiteralType{Repr: tok.Literal, Span: tokenSpan(p, tok)}, false, nil
	case lexer.STRING_LITERAL:
		return &ast.StringLiteralType{Value: tok.Literal, Quote: tok.Quote, Span: tokenSpan(p, tok)}, false, nil
	case lexer.AT:
		return p.parseDecoratedType(tok, anchor)
	case lexer.OPEN_PAREN:
		return p.parseParenOrFunctionLiteral(tok)
	case lexer.OPEN_CHEVRON:
		return p.parseGenericFunctionLiteral(tok)
	case lexer.OPEN_BRACE:
		return p.parseObjectLiteralType(tok)
	case lexer.OPEN_BRACKET:
		return p.parseTupleLiteralType(tok)
	case lexer.TEMPLATE_LITERAL_START:
		return p.parseTemplateLiteralType(tok)
	case lexer.READONLY:
		inner, err := p.ParseTypeAnnotation(TypeParseFlags{})
		if err != nil {
			return nil, false, err
		}
		return &ast.ReadonlyType{Inner: inner, Span: ast.Span{Start: tok.Start, End: inner.GetSpan().End, Source: p.source}}, true, nil
	case lexer.KEYOF:
		inner, err := p.ParseTypeAnnotation(TypeParseFlags{})
		if err != nil {
			return nil, false, err
		}
		return &ast.KeyOfType{Inner: inner, Span: ast.Span{Start: tok.Start, End: inner.GetSpan().End, Source: p.source}}, true, nil
	case lexer.NEW:
		return p.parseConstructorLiteral(tok)
	case lexer.IDENT:
		switch tok.Literal {
		case "string":
			return &ast.CommonNameType{Name: ast.CommonString, Span: tokenSpan(p, tok)}, false, nil
		case "number":
			return &ast.CommonNameType{Name: ast.CommonNumber, Span: tokenSpan(p, tok)}, false, nil
		case "boolean":
			return &ast.CommonNameType{Name: ast.CommonBoolean, Span: tokenSpan(p, tok)}, false, nil
		default:
			return &ast.NameType{Name: tok.Literal, Span: tokenSpan(p, tok)}, false, nil
		}
	default:
		return nil, false, p.report(tsxerrors.PAR009, tok, "invalid type annotation")
	}
}

func (p *Parser) parseDecoratedType(tok lexer.Token, anchor *lexer.Token) (ast.TypeAnnotation, bool, error) {
	name, err := p.expect(lexer.IDENT)
	if err != nil {
		return nil, false, err
	}
	inner, err := p.parseTypeAnnotationAnchored(TypeParseFlags{ReturnOnUnionOrIntersection: true}, anchor)
	if err != nil {
		return nil, false, err
	}
	return &ast.DecoratedType{
		Decorator: name.Literal,
		Inner:     inner,
		Span:      ast.Span{Start: tok.Start, End: inner.GetSpan().End, Source: p.source},
	}, false, nil
}

// parseParenOrFunctionLiteral disambiguates `(...)` by scanning forward
// for a balanced close paren followed by `=>` (spec.md §4.1).
func (p *Parser) parseParenOrFunctionLiteral(openTok lexer.Token) (ast.TypeAnnotation, bool, error) {
	depth := 1
	offset := 0
	for {
		t := p.peekN(offset)
		if t.Type == lexer.EOF {
			return nil, false, p.report(tsxerrors.PAR002, t, "unmatched parenthesis")
		}
		if t.Type == lexer.OPEN_PAREN {
			depth++
		} else if t.Type == lexer.CLOSE_PAREN {
			depth--
			if depth == 0 {
				break
			}
		}
		offset++
	}
	isArrow := p.peekN(offset+1).Type == lexer.ARROW

	if isArrow {
		params, err := p.parseTypeFunctionParametersSubOpenParen(openTok.Start)
		if err != nil {
			return nil, false, err
		}
		if _, err := p.expect(lexer.ARROW); err != nil {
			return nil, false, err
		}
		returnType, err := p.ParseTypeAnnotation(TypeParseFlags{})
		if err != nil {
			return nil, false, err
		}
		return &ast.FunctionLiteralType{
			Parameters: params,
			ReturnType: returnType,
			Span:       ast.Span{Start: openTok.Start, End: returnType.GetSpan().End, Source: p.source},
		}, false, nil
	}

	inner, err := p.ParseTypeAnnotation(TypeParseFlags{})
	if err != nil {
		return nil, false, err
	}
	closeTok, err := p.expect(lexer.CLOSE_PAREN)
	if err != nil {
		return nil, false, err
	}
	return &ast.ParenthesizedType{Inner: inner, Span: ast.Span{Start: openTok.Start, End: closeTok.End, Source: p.source}}, false, nil
}

func (p *Parser) parseGenericFunctionLiteral(openChevron lexer.Token) (ast.TypeAnnotation, bool, error) {
	typeParameters, _, err := p.parseGenericArguments(false)
	if err != nil {
		return nil, false, err
	}
	if _, err := p.expect(lexer.CLOSE_CHEVRON); err != nil {
		return nil, false, err
	}
	params, err := p.parseTypeFunctionParameters()
	if err != nil {
		return nil, false, err
	}
	if _, err := p.expect(lexer.ARROW); err != nil {
		return nil, false, err
	}
	returnType, err := p.ParseTypeAnnotation(TypeParseFlags{})
	if err != nil {
		return nil, false, err
	}
	return &ast.FunctionLiteralType{
		TypeParameters: typeParameters,
		Parameters:     params,
		ReturnType:     returnType,
		Span:           ast.Span{Start: openChevron.Start, End: returnType.GetSpan().End, Source: p.source},
	}, false, nil
}

func (p *Parser) parseConstructorLiteral(newTok lexer.Token) (ast.TypeAnnotation, bool, error) {
	var typeParameters []ast.TypeAnnotation
	if p.curIs(lexer.OPEN_CHEVRON) {
		p.advance()
		args, _, err := p.parseGenericArguments(false)
		if err != nil {
			return nil, false, err
		}
		if _, err := p.expect(lexer.CLOSE_CHEVRON); err != nil {
			return nil, false, err
		}
		typeParameters = args
	}
	params, err := p.parseTypeFunctionParameters()
	if err != nil {
		return nil, false, err
	}
	if _, err := p.expect(lexer.ARROW); err != nil {
		return nil, false, err
	}
	returnType, err := p.ParseTypeAnnotation(TypeParseFlags{})
	if err != nil {
		return nil, false, err
	}
	return &ast.ConstructorLiteralType{
		TypeParameters: typeParameters,
		Parameters:     params,
		ReturnType:     returnType,
		Span:           ast.Span{Start: newTok.Start, End: returnType.GetSpan().End, Source: p.source},
	}, false, nil
}

func (p *Parser) parseObjectLiteralType(openBrace lexer.Token) (ast.TypeAnnotation, bool, error) {
	var members []ast.ObjectMember
	for !p.curIs(lexer.CLOSE_BRACE) {
		member, err := p.parseObjectMember()
		if err != nil {
			return nil, false, err
		}
		members = append(members, member)
		if p.curIs(lexer.SEMI_COLON) || p.curIs(lexer.COMMA) {
			p.advance()
			continue
		}
		break
	}
	closeTok, err := p.expect(lexer.CLOSE_BRACE)
	if err != nil {
		return nil, false, err
	}
	return &ast.ObjectLiteralType{Members: members, Span: ast.Span{Start: openBrace.Start, End: closeTok.End, Source: p.source}}, false, nil
}

func (p *Parser) parseObjectMember() (ast.ObjectMember, error) {
	start := p.cur().Start
	readonly := false
	if p.curIs(lexer.READONLY) {
		p.advance()
		readonly = true
	}
	nameTok, err := p.expect(lexer.IDENT)
	if err != nil {
		return ast.ObjectMember{}, err
	}
	optional := false
	if p.curIs(lexer.QUESTION_MARK) {
		p.advance()
		optional = true
	}
	if _, err := p.expect(lexer.COLON); err != nil {
		return ast.ObjectMember{}, err
	}
	ty, err := p.ParseTypeAnnotation(TypeParseFlags{})
	if err != nil {
		return ast.ObjectMember{}, err
	}
	return ast.ObjectMember{
		Name:     nameTok.Literal,
		Type:     ty,
		Optional: optional,
		Readonly: readonly,
		Span:     p.spanFrom(start),
	}, nil
}

func (p *Parser) parseTupleLiteralType(openBracket lexer.Token) (ast.TypeAnnotation, bool, error) {
	var elements []ast.TupleElement
	for !p.curIs(lexer.CLOSE_BRACKET) {
		spread := ast.NonSpread
		if p.curIs(lexer.SPREAD) {
			p.advance()
			spread = ast.Spread
		}
		binder, err := p.parseAnnotationWithBinder()
		if err != nil {
			return nil, false, err
		}
		elements = append(elements, ast.TupleElement{Spread: spread, Binder: binder})
		if p.curIs(lexer.COMMA) {
			p.advance()
			continue
		}
		break
	}
	closeTok, err := p.expect(lexer.CLOSE_BRACKET)
	if err != nil {
		return nil, false, err
	}
	return &ast.TupleLiteralType{Elements: elements, Span: ast.Span{Start: openBracket.Start, End: closeTok.End, Source: p.source}}, false, nil
}

func (p *Parser) parseAnnotationWithBinder() (ast.AnnotationWithBinder, error) {
	start := p.cur().Start
	if p.curIs(lexer.IDENT) && p.peekN(1).Type == lexer.COLON {
		nameTok := p.advance()
		p.advance() // ':'
		ty, err := p.ParseTypeAnnotation(TypeParseFlags{})
		if err != nil {
			return nil, err
		}
		return &ast.AnnotatedBinder{Name: nameTok.Literal, Ty: ty, Span: p.spanFrom(start)}, nil
	}
	ty, err := p.ParseTypeAnnotation(TypeParseFlags{})
	if err != nil {
		return nil, err
	}
	return &ast.NoAnnotationBinder{Ty: ty, Span: p.spanFrom(start)}, nil
}

func (p *Parser) parseTemplateLiteralType(startTok lexer.Token) (ast.TypeAnnotation, bool, error) {
	var parts []ast.TemplateLiteralPart
	for {
		tok := p.advance()
		switch tok.Type {
		case lexer.TEMPLATE_LITERAL_CHUNK:
			parts = append(parts, ast.StaticPart{Value: tok.Literal})
		case lexer.TEMPLATE_LITERAL_EXPRESSION_START:
			binder, err := p.parseAnnotationWithBinder()
			if err != nil {
				return nil, false, err
			}
			if _, err := p.expect(lexer.TEMPLATE_LITERAL_EXPRESSION_END); err != nil {
				return nil, false, err
			}
			parts = append(parts, ast.DynamicPart{Binder: binder})
		case lexer.TEMPLATE_LITERAL_END:
			return &ast.TemplateLiteralType{Parts: parts, Span: ast.Span{Start: startTok.Start, End: tok.End, Source: p.source}}, false, nil
		default:
			return nil, false, p.report(tsxerrors.LEX003, tok, "unterminated template literal type")
		}
	}
}

// parseGenericArguments implements generic_arguments_from_reader_sub_open_angle:
// the `<` has already been consumed by the caller.
func (p *Parser) parseGenericArguments(returnOnUnionOrIntersection bool) ([]ast.TypeAnnotation, int, error) {
	var args []ast.TypeAnnotation
	for {
		arg, err := p.parseTypeAnnotationAnchored(TypeParseFlags{ReturnOnUnionOrIntersection: returnOnUnionOrIntersection}, nil)
		if err != nil {
			return nil, 0, err
		}
		args = append(args, arg)

		reglued := false
		var regluedEnd int
		p.ts.PeekMut(func(t *lexer.Token) {
			switch t.Type {
			case lexer.BITWISE_SHIFT_RIGHT:
				regluedEnd = t.Start + 1
				t.Start++
				t.Type = lexer.CLOSE_CHEVRON
				t.Literal = ">"
				reglued = true
			case lexer.BITWISE_SHIFT_RIGHT_UNSIGNED:
				regluedEnd = t.Start + 2
				t.Start += 2
				t.Type = lexer.CLOSE_CHEVRON
				t.Literal = ">"
				reglued = true
			}
		})
		if reglued {
			return args, regluedEnd, nil
		}

		tok := p.advance()
		switch tok.Type {
		case lexer.COMMA:
			continue
		case lexer.CLOSE_CHEVRON:
			return args, tok.End, nil
		default:
			return nil, 0, p.reportExpected(lexer.CLOSE_CHEVRON, lexer.COMMA)
		}
	}
}

func (p *Parser) parseTypeFunctionParameters() (ast.TypeFunctionParameters, error) {
	openTok, err := p.expect(lexer.OPEN_PAREN)
	if err != nil {
		return ast.TypeFunctionParameters{}, err
	}
	return p.parseTypeFunctionParametersSubOpenParen(openTok.Start)
}

// parseTypeFunctionParametersSubOpenParen assumes the opening `(` was
// already consumed at byte offset start.
func (p *Parser) parseTypeFunctionParametersSubOpenParen(start int) (ast.TypeFunctionParameters, error) {
	var params []ast.TypeFunctionParameter
	var rest *ast.TypeFunctionRestParameter

	for !p.curIs(lexer.CLOSE_PAREN) {
		pstart := p.cur().Start
		if p.curIs(lexer.SPREAD) {
			p.advance()
			nameTok, err := p.expect(lexer.IDENT)
			if err != nil {
				return ast.TypeFunctionParameters{}, err
			}
			if _, err := p.expect(lexer.COLON); err != nil {
				return ast.TypeFunctionParameters{}, err
			}
			ty, err := p.ParseTypeAnnotation(TypeParseFlags{})
			if err != nil {
				return ast.TypeFunctionParameters{}, err
			}
			rest = &ast.TypeFunctionRestParameter{Name: nameTok.Literal, Type: ty, Span: p.spanFrom(pstart)}
			break
		}

		nameTok, err := p.expect(lexer.IDENT)
		if err != nil {
			return ast.TypeFunctionParameters{}, err
		}
		isOptional := false
		if p.curIs(lexer.QUESTION_MARK) {
			p.advance()
			isOptional = true
		}
		if _, err := p.expect(lexer.COLON); err != nil {
			return ast.TypeFunctionParameters{}, err
		}
		ty, err := p.ParseTypeAnnotation(TypeParseFlags{})
		if err != nil {
			return ast.TypeFunctionParameters{}, err
		}
		name := nameTok.Literal
		params = append(params, ast.TypeFunctionParameter{
			Name: &name, Type: ty, IsOptional: isOptional, Span: p.spanFrom(pstart),
		})
		if p.curIs(lexer.COMMA) {
			p.advance()
			continue
		}
		break
	}

	closeTok, err := p.expect(lexer.CLOSE_PAREN)
	if err != nil {
		return ast.TypeFunctionParameters{}, err
	}
	return ast.TypeFunctionParameters{Parameters: params, Rest: rest, Span: ast.Span{Start: start, End: closeTok.End, Source: p.source}}, nil
}

// parseTypePostfix applies spec.md §4.1's single-inspection postfix
// dispatch: extends/is/union/intersection/arrow, or returns reference
// unchanged.
func (p *Parser) parseTypePostfix(reference ast.TypeAnnotation, flags TypeParseFlags, anchor *lexer.Token) (ast.TypeAnnotation, error) {
	switch p.cur().Type {
	case lexer.EXTENDS:
		p.advance()
		extendsType, err := p.parseTypeAnnotationAnchored(TypeParseFlags{ReturnOnUnionOrIntersection: true}, anchor)
		if err != nil {
			return nil, err
		}
		condition := ast.ExtendsCondition{Type: reference, Extends: extendsType}
		if _, err := p.expect(lexer.QUESTION_MARK); err != nil {
			return nil, err
		}
		resolveTrue, err := p.parseTypeConditionResult()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.COLON); err != nil {
			return nil, err
		}
		resolveFalse, err := p.parseTypeConditionResult()
		if err != nil {
			return nil, err
		}
		return &ast.ConditionalType{
			Condition: condition, ResolveTrue: resolveTrue, ResolveFalse: resolveFalse,
			Span: ast.Span{Start: reference.GetSpan().Start, End: p.lastEnd, Source: p.source},
		}, nil
	case lexer.IS:
		p.advance()
		isType, err := p.parseTypeAnnotationAnchored(TypeParseFlags{ReturnOnUnionOrIntersection: true}, anchor)
		if err != nil {
			return nil, err
		}
		condition := ast.IsCondition{Type: reference, Is: isType}
		if _, err := p.expect(lexer.QUESTION_MARK); err != nil {
			return nil, err
		}
		resolveTrue, err := p.parseTypeConditionResult()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.COLON); err != nil {
			return nil, err
		}
		resolveFalse, err := p.parseTypeConditionResult()
		if err != nil {
			return nil, err
		}
		return &ast.ConditionalType{
			Condition: condition, ResolveTrue: resolveTrue, ResolveFalse: resolveFalse,
			Span: ast.Span{Start: reference.GetSpan().Start, End: p.lastEnd, Source: p.source},
		}, nil
	case lexer.BITWISE_OR:
		if flags.ReturnOnUnionOrIntersection {
			return reference, nil
		}
		members := []ast.TypeAnnotation{reference}
		for p.curIs(lexer.BITWISE_OR) {
			p.advance()
			member, err := p.parseTypeAnnotationAnchored(TypeParseFlags{ReturnOnUnionOrIntersection: true}, anchor)
			if err != nil {
				return nil, err
			}
			members = append(members, member)
		}
		return &ast.UnionType{
			Members: members,
			Span:    ast.Span{Start: members[0].GetSpan().Start, End: members[len(members)-1].GetSpan().End, Source: p.source},
		}, nil
	case lexer.BITWISE_AND:
		if flags.ReturnOnUnionOrIntersection {
			return reference, nil
		}
		members := []ast.TypeAnnotation{reference}
		for p.curIs(lexer.BITWISE_AND) {
			p.advance()
			member, err := p.parseTypeAnnotationAnchored(TypeParseFlags{ReturnOnUnionOrIntersection: true}, anchor)
			if err != nil {
				return nil, err
			}
			members = append(members, member)
		}
		return &ast.IntersectionType{
			Members: members,
			Span:    ast.Span{Start: members[0].GetSpan().Start, End: members[len(members)-1].GetSpan().End, Source: p.source},
		}, nil
	case lexer.ARROW:
		if flags.ReturnOnArrow {
			return reference, nil
		}
		p.advance()
		returnType, err := p.parseTypeAnnotationAnchored(TypeParseFlags{ReturnOnUnionOrIntersection: true}, anchor)
		if err != nil {
			return nil, err
		}
		paramSpan := reference.GetSpan()
		return &ast.FunctionLiteralType{
			Parameters: ast.TypeFunctionParameters{
				Parameters: []ast.TypeFunctionParameter{{Type: reference, Span: paramSpan}},
				Span:       paramSpan,
			},
			ReturnType: returnType,
			Span:       ast.Span{Start: paramSpan.Start, End: returnType.GetSpan().End, Source: p.source},
		}, nil
	default:
		return reference, nil
	}
}

func (p *Parser) parseTypeConditionResult() (ast.TypeConditionResult, error) {
	if p.curIs(lexer.INFER) {
		p.advance()
		ty, err := p.ParseTypeAnnotation(TypeParseFlags{})
		if err != nil {
			return nil, err
		}
		return ast.InferResult{Type: ty}, nil
	}
	ty, err := p.ParseTypeAnnotation(TypeParseFlags{})
	if err != nil {
		return nil, err
	}
	return ast.ReferenceResult{Type: ty}, nil
}
