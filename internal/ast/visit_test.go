package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func nameDecl(name string) StatementOrDeclaration {
	return &DeclarationItem{Decl: &ConstDeclaration{Items: []*ConstDeclarationItem{
		{Name: WithComment{Field: &NameField{Name: name}}, Expression: &NumberLiteralExpr{Repr: "0"}},
	}}}
}

func TestVisitForwardOrder(t *testing.T) {
	block := &Block{Items: []StatementOrDeclaration{nameDecl("a"), nameDecl("b"), nameDecl("c")}}
	var order []string
	Visit(block, Visitor{
		OnStatementOrDeclaration: func(it StatementOrDeclaration) {
			order = append(order, it.String())
		},
	}, VisitOptions{})
	assert.Equal(t, []string{"const a = 0", "const b = 0", "const c = 0"}, order)
}

func TestVisitReverseOrder(t *testing.T) {
	block := &Block{Items: []StatementOrDeclaration{nameDecl("a"), nameDecl("b"), nameDecl("c")}}
	var order []string
	Visit(block, Visitor{
		OnStatementOrDeclaration: func(it StatementOrDeclaration) {
			order = append(order, it.String())
		},
	}, VisitOptions{ReverseStatements: true})
	assert.Equal(t, []string{"const c = 0", "const b = 0", "const a = 0"}, order)
}

func TestVisitMutUsesSameOrderRuleAsVisit(t *testing.T) {
	block := &Block{Items: []StatementOrDeclaration{nameDecl("a"), nameDecl("b"), nameDecl("c")}}
	var mutOrder []string
	VisitMut(block, MutatingVisitor{
		OnStatementOrDeclaration: func(it StatementOrDeclaration) StatementOrDeclaration {
			mutOrder = append(mutOrder, it.String())
			return nil
		},
	}, VisitOptions{ReverseStatements: true})

	block2 := &Block{Items: []StatementOrDeclaration{nameDecl("a"), nameDecl("b"), nameDecl("c")}}
	var visitOrder []string
	Visit(block2, Visitor{
		OnStatementOrDeclaration: func(it StatementOrDeclaration) {
			visitOrder = append(visitOrder, it.String())
		},
	}, VisitOptions{ReverseStatements: true})

	assert.Equal(t, visitOrder, mutOrder)
}

func TestVisitTypeAnnotationDescendsIntoChildren(t *testing.T) {
	ty := &ArrayLiteralType{Inner: &UnionType{Members: []TypeAnnotation{
		&CommonNameType{Name: CommonString},
		&CommonNameType{Name: CommonNumber},
	}}}
	var seen []string
	VisitTypeAnnotation(ty, Visitor{
		OnTypeAnnotation: func(t TypeAnnotation) {
			seen = append(seen, t.String())
		},
	})
	assert.Equal(t, []string{"string | number[]", "string | number", "string", "number"}, seen)
}
