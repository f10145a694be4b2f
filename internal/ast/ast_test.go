package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeAnnotationStringFormsMatchSourceSyntax(t *testing.T) {
	tests := []struct {
		name     string
		ty       TypeAnnotation
		expected string
	}{
		{"name", &NameType{Name: "something"}, "something"},
		{"common-name", &CommonNameType{Name: CommonString}, "string"},
		{
			"generic",
			&GenericNameType{Name: "Array", Arguments: []TypeAnnotation{&CommonNameType{Name: CommonString}}},
			"Array<string>",
		},
		{
			"union",
			&UnionType{Members: []TypeAnnotation{
				&CommonNameType{Name: CommonString},
				&CommonNameType{Name: CommonNumber},
			}},
			"string | number",
		},
		{
			"array-literal",
			&ArrayLiteralType{Inner: &CommonNameType{Name: CommonString}},
			"string[]",
		},
		{
			"readonly",
			&ReadonlyType{Inner: &ArrayLiteralType{Inner: &CommonNameType{Name: CommonString}}},
			"readonly string[]",
		},
		{
			"keyof",
			&KeyOfType{Inner: &NameType{Name: "T"}},
			"keyof T",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.ty.String())
		})
	}
}

func TestTupleLiteralStringWithNamedElement(t *testing.T) {
	tuple := &TupleLiteralType{
		Elements: []TupleElement{
			{Spread: NonSpread, Binder: &NoAnnotationBinder{Ty: &CommonNameType{Name: CommonNumber}}},
			{Spread: NonSpread, Binder: &AnnotatedBinder{Name: "x", Ty: &CommonNameType{Name: CommonString}}},
		},
	}
	assert.Equal(t, "[number, x: string]", tuple.String())
}

func TestTemplateLiteralString(t *testing.T) {
	tmpl := &TemplateLiteralType{
		Parts: []TemplateLiteralPart{
			StaticPart{Value: "test-"},
			DynamicPart{Binder: &NoAnnotationBinder{Ty: &NameType{Name: "X"}}},
		},
	}
	assert.Equal(t, "`test-${X}`", tmpl.String())
}

func TestBlockEqualityIgnoresSpan(t *testing.T) {
	a := &Block{
		Items: []StatementOrDeclaration{
			&DeclarationItem{Decl: &ConstDeclaration{Items: []*ConstDeclarationItem{
				{Name: WithComment{Field: &NameField{Name: "x"}}, Expression: &NumberLiteralExpr{Repr: "1"}},
			}}},
		},
		Span: Span{Start: 0, End: 20},
	}
	b := &Block{
		Items: a.Items,
		Span:  Span{Start: 100, End: 120},
	}
	assert.True(t, a.Equal(b))
}

func TestDestructuringFieldIsName(t *testing.T) {
	assert.True(t, (&NameField{Name: "x"}).IsName())
	assert.False(t, (&ArrayField{}).IsName())
	assert.False(t, (&ObjectField{}).IsName())
}

func TestRequiresSemiColonTable(t *testing.T) {
	assert.True(t, (&ConstDeclaration{}).RequiresSemiColon())
	assert.True(t, (&LetDeclaration{}).RequiresSemiColon())
	assert.True(t, (&ImportDeclaration{}).RequiresSemiColon())
	assert.True(t, (&ExportDefaultDeclaration{}).RequiresSemiColon())
	assert.True(t, (&ExportVariableDeclaration{Kind: ReexportAll}).RequiresSemiColon())
	assert.False(t, (&FunctionDeclaration{}).RequiresSemiColon())
	assert.False(t, (&TypeAliasDeclaration{}).RequiresSemiColon())
	assert.False(t, (&InterfaceDeclaration{}).RequiresSemiColon())
	assert.False(t, (&EnumDeclaration{}).RequiresSemiColon())

	marker := &MarkerItem{}
	assert.False(t, marker.RequiresSemiColon())

	wrapped := &ExportDeclarationWrapper{Decl: &FunctionDeclaration{}}
	assert.False(t, wrapped.RequiresSemiColon())
	wrappedVar := &ExportDeclarationWrapper{Decl: &ConstDeclaration{}}
	assert.True(t, wrappedVar.RequiresSemiColon())
}
