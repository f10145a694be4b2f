package module

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tsxerrors "github.com/tsxcheck/tsxcheck/internal/errors"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNormalizeImportPath(t *testing.T) {
	cases := map[string]string{
		"./util.ts":       "./util",
		"./util":          "./util",
		"components/card": "components/card",
		"a\\b\\c.tsx":      "a/b/c",
	}
	for in, want := range cases {
		assert.Equal(t, want, normalizeImportPath(in))
	}
}

func TestLoaderLoadsSimpleModule(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "main.ts", `
		export const x = 1;
		export function f() {}
	`)

	loader := NewLoader([]string{dir})
	mod, err := loader.Load(filepath.Join(dir, "main.ts"))
	require.NoError(t, err)

	_, ok := mod.Synthesised.Exported.Names["x"]
	assert.True(t, ok)
	_, ok = mod.Synthesised.Exported.Names["f"]
	assert.True(t, ok)
}

func TestLoaderResolvesRelativeImports(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "util.ts", `export const helper = 1;`)
	writeFile(t, dir, "main.ts", `
		import { helper } from "./util";
	`)

	loader := NewLoader([]string{dir})
	mod, err := loader.Load(filepath.Join(dir, "main.ts"))
	require.NoError(t, err)
	assert.Equal(t, []string{"./util"}, mod.Dependencies)

	dep, ok := loader.cache["./util"]
	require.True(t, ok, "dependency should be cached under its normalized import path")
	_, exported := dep.Synthesised.Exported.Names["helper"]
	assert.True(t, exported)
}

func TestLoaderFlagsUnresolvedNamedImport(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "util.ts", `export const helper = 1;`)
	writeFile(t, dir, "main.ts", `
		import { missing } from "./util";
	`)

	loader := NewLoader([]string{dir})
	_, err := loader.Load(filepath.Join(dir, "main.ts"))
	require.Error(t, err)

	report, ok := tsxerrors.AsReport(err)
	require.True(t, ok)
	assert.Equal(t, tsxerrors.MOD003, report.Code)
}

func TestLoaderDetectsCircularImports(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.ts", `import { b } from "./b"; export const a = 1;`)
	writeFile(t, dir, "b.ts", `import { a } from "./a"; export const b = 1;`)

	loader := NewLoader([]string{dir})
	_, err := loader.Load(filepath.Join(dir, "a.ts"))
	require.Error(t, err)

	report, ok := tsxerrors.AsReport(err)
	require.True(t, ok)
	assert.Equal(t, tsxerrors.MOD002, report.Code)
}

func TestTopologicalSortOrdersDependenciesFirst(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "leaf.ts", `export const leaf = 1;`)
	writeFile(t, dir, "mid.ts", `import { leaf } from "./leaf"; export const mid = 1;`)
	writeFile(t, dir, "top.ts", `import { mid } from "./mid"; export const top = 1;`)

	loader := NewLoader([]string{dir})
	top, err := loader.Load(filepath.Join(dir, "top.ts"))
	require.NoError(t, err)

	order, err := loader.TopologicalSort()
	require.NoError(t, err)

	index := make(map[string]int, len(order))
	for i, id := range order {
		index[id] = i
	}
	assert.Less(t, index["./leaf"], index["./mid"])
	assert.Less(t, index["./mid"], index[top.Identity])
}
