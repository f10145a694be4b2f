package sourcemap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAssignsSequentialIDs(t *testing.T) {
	r := NewRegistry()

	a := r.Register("./a.ts")
	b := r.Register("./b.ts")
	assert.NotEqual(t, a, b)
	assert.Equal(t, 2, r.Len())
}

func TestRegisterIsIdempotentForEquivalentPaths(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "util.ts")
	require.NoError(t, os.WriteFile(path, []byte("export const x = 1;"), 0644))

	r := NewRegistry()
	first := r.Register(path)
	second := r.Register(filepath.Join(dir, ".", "util.ts"))
	assert.Equal(t, first, second)
	assert.Equal(t, 1, r.Len())
}

func TestLookupDoesNotRegister(t *testing.T) {
	r := NewRegistry()
	_, ok := r.Lookup("./never-registered.ts")
	assert.False(t, ok)
	assert.Equal(t, 0, r.Len())
}

func TestPathRejectsUnknownID(t *testing.T) {
	r := NewRegistry()
	id := r.Register("./a.ts")

	path, ok := r.Path(id)
	assert.True(t, ok)
	assert.Contains(t, path, "a.ts")

	_, ok = r.Path(id + 100)
	assert.False(t, ok)
}

func TestStringFallsBackForUnknownID(t *testing.T) {
	r := NewRegistry()
	assert.Contains(t, r.String(42), "<source")
}
