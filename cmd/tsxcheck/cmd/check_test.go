package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCheckReportsExportedCounts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "util.ts")
	require.NoError(t, os.WriteFile(path, []byte("export const answer = 42;"), 0644))

	checkManifestPath = ""
	checkSearchPaths = nil

	var out bytes.Buffer
	cmd := checkCmd
	cmd.SetOut(&out)

	require.NoError(t, runCheck(cmd, []string{path}))
	assert.Contains(t, out.String(), "ok")
}

func TestRunCheckFlagsUnresolvedImport(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.ts")
	require.NoError(t, os.WriteFile(path, []byte(`import { missing } from "./nowhere";`), 0644))

	checkManifestPath = ""
	checkSearchPaths = nil

	var out bytes.Buffer
	cmd := checkCmd
	cmd.SetOut(&out)

	err := runCheck(cmd, []string{path})
	assert.Error(t, err)
}
