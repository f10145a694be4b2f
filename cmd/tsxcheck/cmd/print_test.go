package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunPrintFormatsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.ts")
	require.NoError(t, os.WriteFile(path, []byte("const x=1;"), 0644))

	printCompact = false
	printManifestPath = ""

	var out bytes.Buffer
	cmd := printCmd
	cmd.SetOut(&out)
	cmd.SetArgs([]string{path})

	require.NoError(t, runPrint(cmd, []string{path}))
	assert.Contains(t, out.String(), "const x")
}

func TestRunPrintReportsParseErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.ts")
	require.NoError(t, os.WriteFile(path, []byte("const x = ("), 0644))

	printManifestPath = ""

	var out bytes.Buffer
	cmd := printCmd
	cmd.SetOut(&out)

	err := runPrint(cmd, []string{path})
	assert.Error(t, err)
}
