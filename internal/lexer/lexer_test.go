package lexer

import "testing"

func TestNextTokenPunctuationAndKeywords(t *testing.T) {
	input := `const x: readonly string[] = 5;
type T<A> = A extends string ? A : never;
new (a: number) => A<Array<string>>
a?.b >>> c >> d`

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{CONST, "const"},
		{IDENT, "x"},
		{COLON, ":"},
		{READONLY, "readonly"},
		{IDENT, "string"},
		{OPEN_BRACKET, "["},
		{CLOSE_BRACKET, "]"},
		{ASSIGN, "="},
		{NUMBER_LITERAL, "5"},
		{SEMI_COLON, ";"},

		{TYPE, "type"},
		{IDENT, "T"},
		{OPEN_CHEVRON, "<"},
		{IDENT, "A"},
		{CLOSE_CHEVRON, ">"},
		{ASSIGN, "="},
		{IDENT, "A"},
		{EXTENDS, "extends"},
		{IDENT, "string"},
		{QUESTION_MARK, "?"},
		{IDENT, "A"},
		{COLON, ":"},
		{IDENT, "never"},
		{SEMI_COLON, ";"},

		{NEW, "new"},
		{OPEN_PAREN, "("},
		{IDENT, "a"},
		{COLON, ":"},
		{IDENT, "number"},
		{CLOSE_PAREN, ")"},
		{ARROW, "=>"},
		{IDENT, "A"},
		{OPEN_CHEVRON, "<"},
		{IDENT, "Array"},
		{OPEN_CHEVRON, "<"},
		{IDENT, "string"},
		{BITWISE_SHIFT_RIGHT, ">>"},

		{IDENT, "a"},
	}

	l := New(input, "test.tsx")
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.expectedType {
			t.Fatalf("test[%d] - wrong type. expected=%s, got=%s (literal %q)", i, tt.expectedType, tok.Type, tok.Literal)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("test[%d] - wrong literal. expected=%q, got=%q", i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestNextTokenOptionalMemberAndShifts(t *testing.T) {
	input := "a?.b >>> c >> d > e"
	l := New(input, "test.tsx")

	expectAfterSkip := func(n int, want TokenType, wantLit string) {
		var tok Token
		for i := 0; i < n; i++ {
			tok = l.NextToken()
		}
		if tok.Type != want || tok.Literal != wantLit {
			t.Fatalf("expected %s %q, got %s %q", want, wantLit, tok.Type, tok.Literal)
		}
	}

	expectAfterSkip(1, IDENT, "a")
	expectAfterSkip(1, OPTIONAL_MEMBER, "?.")
	expectAfterSkip(1, IDENT, "b")
	expectAfterSkip(1, BITWISE_SHIFT_RIGHT_UNSIGNED, ">>>")
	expectAfterSkip(1, IDENT, "c")
	expectAfterSkip(1, BITWISE_SHIFT_RIGHT, ">>")
	expectAfterSkip(1, IDENT, "d")
	expectAfterSkip(1, CLOSE_CHEVRON, ">")
	expectAfterSkip(1, IDENT, "e")
}

func TestTemplateLiteral(t *testing.T) {
	input := "`test-${X}`"
	l := New(input, "test.tsx")

	want := []struct {
		typ TokenType
		lit string
	}{
		{TEMPLATE_LITERAL_START, "`"},
		{TEMPLATE_LITERAL_CHUNK, "test-"},
		{TEMPLATE_LITERAL_EXPRESSION_START, "${"},
		{IDENT, "X"},
		{TEMPLATE_LITERAL_EXPRESSION_END, "}"},
		{TEMPLATE_LITERAL_END, "`"},
		{EOF, ""},
	}
	for i, w := range want {
		tok := l.NextToken()
		if tok.Type != w.typ || tok.Literal != w.lit {
			t.Fatalf("test[%d] - expected %s %q, got %s %q", i, w.typ, w.lit, tok.Type, tok.Literal)
		}
	}
}

func TestTemplateLiteralWithNestedBraces(t *testing.T) {
	// the object literal's braces must not be mistaken for the end of
	// the template expression.
	input := "`x${ {a: 1} }y`"
	l := New(input, "test.tsx")

	var types []TokenType
	for {
		tok := l.NextToken()
		types = append(types, tok.Type)
		if tok.Type == EOF {
			break
		}
	}

	want := []TokenType{
		TEMPLATE_LITERAL_START,
		TEMPLATE_LITERAL_CHUNK,
		TEMPLATE_LITERAL_EXPRESSION_START,
		OPEN_BRACE, IDENT, COLON, NUMBER_LITERAL, CLOSE_BRACE,
		TEMPLATE_LITERAL_EXPRESSION_END,
		TEMPLATE_LITERAL_CHUNK,
		TEMPLATE_LITERAL_END,
		EOF,
	}
	if len(types) != len(want) {
		t.Fatalf("expected %d tokens, got %d: %v", len(want), len(types), types)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Fatalf("token[%d] - expected %s, got %s", i, want[i], types[i])
		}
	}
}

func TestStringLiteralQuoteTracking(t *testing.T) {
	l := New(`"a" 'b'`, "test.tsx")
	tok := l.NextToken()
	if tok.Quote != QuoteDouble || tok.Literal != "a" {
		t.Fatalf("expected double-quoted a, got %v", tok)
	}
	tok = l.NextToken()
	if tok.Quote != QuoteSingle || tok.Literal != "b" {
		t.Fatalf("expected single-quoted b, got %v", tok)
	}
}

func TestComments(t *testing.T) {
	l := New("// line\n/* block */const", "test.tsx")
	if tok := l.NextToken(); tok.Type != COMMENT {
		t.Fatalf("expected COMMENT, got %s", tok.Type)
	}
	if tok := l.NextToken(); tok.Type != MULTI_LINE_COMMENT {
		t.Fatalf("expected MULTI_LINE_COMMENT, got %s", tok.Type)
	}
	if tok := l.NextToken(); tok.Type != CONST {
		t.Fatalf("expected CONST, got %s", tok.Type)
	}
}

func TestIsStatementOrDeclarationStart(t *testing.T) {
	if !CONST.IsStatementOrDeclarationStart() {
		t.Fatal("const should start a declaration")
	}
	if OPEN_CHEVRON.IsStatementOrDeclarationStart() {
		t.Fatal("< should not start a statement or declaration")
	}
}
