package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultManifestMatchesParserDefaults(t *testing.T) {
	m := Default()
	assert.Equal(t, []string{"."}, m.SearchPaths)
	assert.True(t, m.ParseOptions().TypeAnnotations)
	assert.False(t, m.ParseOptions().PartialSyntax)
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tsxcheck.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
search_paths:
  - ./src
  - ./vendor
parse:
  partial_syntax: true
  interpolation_points: true
print:
  pretty: true
  max_line_length: 120
`), 0o644))

	m, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"./src", "./vendor"}, m.SearchPaths)
	opts := m.ParseOptions()
	assert.True(t, opts.TypeAnnotations, "unspecified type_annotations keeps the default")
	assert.True(t, opts.PartialSyntax)
	assert.True(t, opts.InterpolationPoints)

	printOpts := m.ToStringOptions()
	assert.True(t, printOpts.Pretty)
	assert.Equal(t, 120, printOpts.MaxLineLength)
}

func TestLoadMissingFileReturnsError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
