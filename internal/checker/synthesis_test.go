package checker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsxcheck/tsxcheck/internal/ast"
	"github.com/tsxcheck/tsxcheck/internal/lexer"
	"github.com/tsxcheck/tsxcheck/internal/parser"
)

func parseProgram(t *testing.T, src string) *ast.Program {
	t.Helper()
	program, err := parser.ParseProgram(lexer.New(src, "<test>"), ast.SourceID(1), parser.DefaultParseOptions())
	require.NoError(t, err)
	return program
}

func TestSynthesiseModuleBindsTopLevelDeclarations(t *testing.T) {
	program := parseProgram(t, `
		const x = 1;
		let y: string;
		export function f() {}
		export type T = string;
	`)

	c := NewChecker()
	module, diagnostics := c.SynthesiseModule(ast.SourceID(1), program, DefaultSynthesiser{})
	assert.Empty(t, diagnostics.Reports)

	got, ok := c.Lookup(ast.SourceID(1))
	require.True(t, ok)
	assert.Same(t, module, got)

	_, exported := module.Exported.Names["f"]
	assert.True(t, exported, "exported function must appear in Exported.Names")
	_, exported = module.Exported.Types["T"]
	assert.True(t, exported, "exported type alias must appear in Exported.Types")
	_, exported = module.Exported.Names["x"]
	assert.False(t, exported, "non-exported const must not appear in Exported")
}

func TestSynthesiseModuleTracksDestructuringFacts(t *testing.T) {
	program := parseProgram(t, `let {a, b: c} = o;`)

	c := NewChecker()
	module, _ := c.SynthesiseModule(ast.SourceID(2), program, DefaultSynthesiser{})

	require.Len(t, module.Content.Items, 1, "program retains the parsed declaration")
	assert.Len(t, module.Facts.VariableCurrentValue, 2, "both destructured names (a, c) get a Facts entry")
}

func TestSynthesiseModuleReexportResolvesAgainstLocalBinding(t *testing.T) {
	program := parseProgram(t, `
		const helper = 1;
		export { helper };
	`)

	c := NewChecker()
	module, _ := c.SynthesiseModule(ast.SourceID(3), program, DefaultSynthesiser{})

	_, ok := module.Exported.Names["helper"]
	require.True(t, ok)
}

func TestSynthesiseModuleFlagsUndeclaredInterfaceBase(t *testing.T) {
	program := parseProgram(t, `interface A extends Missing {}`)

	c := NewChecker()
	_, diagnostics := c.SynthesiseModule(ast.SourceID(4), program, DefaultSynthesiser{})

	require.Len(t, diagnostics.Reports, 1)
	assert.Equal(t, "CHK001", diagnostics.Reports[0].Code)
}
