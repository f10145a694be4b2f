package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintTypeAnnotationRoundTripsSimpleForms(t *testing.T) {
	sink := NewStringSink(0)
	union := &UnionType{Members: []TypeAnnotation{
		&CommonNameType{Name: CommonString},
		&CommonNameType{Name: CommonNumber},
	}}
	PrintTypeAnnotation(sink, union, ToStringOptions{})
	assert.Equal(t, "string | number", sink.String())
}

func TestPrintTypeAnnotationMarkerPanicsOutsideExpectMarkers(t *testing.T) {
	sink := NewStringSink(0)
	marker := &MarkerType{MarkerID: 1}
	assert.Panics(t, func() {
		PrintTypeAnnotation(sink, marker, ToStringOptions{ExpectMarkers: false})
	})
	assert.NotPanics(t, func() {
		PrintTypeAnnotation(sink, marker, ToStringOptions{ExpectMarkers: true})
	})
}

func TestPrintTypeAnnotationNamespacedNamePanics(t *testing.T) {
	sink := NewStringSink(0)
	ns := &NamespacedNameType{Namespace: "NS", Member: "Member"}
	assert.Panics(t, func() {
		PrintTypeAnnotation(sink, ns, ToStringOptions{})
	})
}

func TestPrintBlockTrailingSemicolonOnlyOnLastItem(t *testing.T) {
	block := &Block{
		Items: []StatementOrDeclaration{
			&DeclarationItem{Decl: &ConstDeclaration{Items: []*ConstDeclarationItem{
				{Name: WithComment{Field: &NameField{Name: "a"}}, Expression: &NumberLiteralExpr{Repr: "1"}},
			}}},
			&DeclarationItem{Decl: &ConstDeclaration{Items: []*ConstDeclarationItem{
				{Name: WithComment{Field: &NameField{Name: "b"}}, Expression: &NumberLiteralExpr{Repr: "2"}},
			}}},
		},
	}
	sink := NewStringSink(0)
	PrintBlock(sink, block, 0, ToStringOptions{TrailingSemicolon: true})
	require.Equal(t, "{const a = 1;const b = 2;}", sink.String())
}

func TestDumpIncludesTypeDiscriminator(t *testing.T) {
	out := Print(&NameType{Name: "T"})
	assert.Contains(t, out, `"type": "Name"`)
	assert.Contains(t, out, `"name": "T"`)
}
