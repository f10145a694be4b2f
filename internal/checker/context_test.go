package checker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootContextSeedsPrimitiveReferences(t *testing.T) {
	root := NewRootContext()

	expected := map[string]TypeID{
		"number":    NumberType,
		"string":    StringType,
		"boolean":   BooleanType,
		"null":      NullType,
		"undefined": UndefinedType,
		"void":      VoidType,
		"Array":     ArrayType,
		"Function":  FunctionType,
		"object":    ObjectType,
	}
	for name, want := range expected {
		got, ok := root.LookupType(name)
		require.True(t, ok, "expected %s to be seeded", name)
		assert.Equal(t, want, got)
	}

	assert.Equal(t, RootContextID, root.ID)
	assert.True(t, root.CanReferenceThis)
	assert.Nil(t, root.GetParent())

	undefinedVar, ok := root.LookupVariable("undefined")
	require.True(t, ok)
	current, ok := root.Facts.Get(undefinedVar.ID)
	require.True(t, ok)
	assert.Equal(t, UndefinedType, current)
	assert.Equal(t, Constant, undefinedVar.Mutability)
}

func TestLexicalEnvironmentInheritsFromParent(t *testing.T) {
	root := NewRootContext()
	child := root.NewLexicalEnvironment(ScopeLexical)

	assert.Same(t, root, child.GetParent())

	ty, ok := child.LookupType("string")
	require.True(t, ok)
	assert.Equal(t, StringType, ty)

	_, ok = child.LookupVariable("undefined")
	assert.True(t, ok, "child should see root's undefined binding")
}

func TestDeclareVariableRejectsRedeclarationInSameScope(t *testing.T) {
	root := NewRootContext()
	child := root.NewLexicalEnvironment(ScopeLexical)

	_, ok := child.DeclareVariable("x", Constant, 0)
	require.True(t, ok)

	_, ok = child.DeclareVariable("x", Constant, 5)
	assert.False(t, ok, "redeclaring x in the same scope must fail")
}

func TestNewTypeIDIsSharedAcrossContextTree(t *testing.T) {
	root := NewRootContext()
	child := root.NewLexicalEnvironment(ScopeLexical)

	first := root.NewTypeID()
	second := child.NewTypeID()
	assert.NotEqual(t, first, second, "type ids must be unique across the whole tree")
	assert.True(t, second > first)
}
