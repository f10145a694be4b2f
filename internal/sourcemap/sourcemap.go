// Package sourcemap assigns and retrieves the small integer SourceIDs
// every ast.Span carries, resolving the "source-map registry" spec.md
// §1 names as an out-of-scope external collaborator the rest of this
// repository (the module loader, the CLI) needs a concrete instance
// of.
//
// Grounded on the teacher's internal/sid/sid.go canonicalizePath idiom
// (symlink resolution, case-insensitive-filesystem normalization,
// forward-slash paths), simplified from content-hash SIDs to a
// sequential registry since spec.md only requires "assigns identifiers
// to source files", not stable content hashing across runs.
package sourcemap

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/tsxcheck/tsxcheck/internal/ast"
)

// Registry assigns sequential ast.SourceIDs to canonicalized file
// paths and tracks the reverse mapping for diagnostics rendering.
type Registry struct {
	mu    sync.RWMutex
	byID  []string
	byPath map[string]ast.SourceID
}

// NewRegistry returns an empty Registry. SourceID 0 is never assigned
// (ast.SourceID's zero value is reserved).
func NewRegistry() *Registry {
	return &Registry{byID: []string{""}, byPath: make(map[string]ast.SourceID)}
}

// Register returns the SourceID for path, assigning a fresh one on
// first sight. Repeated calls with an equivalent (but differently
// spelled) path return the same id.
func (r *Registry) Register(path string) ast.SourceID {
	canon := canonicalizePath(path)

	r.mu.Lock()
	defer r.mu.Unlock()

	if id, ok := r.byPath[canon]; ok {
		return id
	}
	id := ast.SourceID(len(r.byID))
	r.byID = append(r.byID, canon)
	r.byPath[canon] = id
	return id
}

// Path returns the canonicalized path registered under id.
func (r *Registry) Path(id ast.SourceID) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if int(id) <= 0 || int(id) >= len(r.byID) {
		return "", false
	}
	return r.byID[id], true
}

// Lookup returns the SourceID already assigned to path, if any,
// without registering it.
func (r *Registry) Lookup(path string) (ast.SourceID, bool) {
	canon := canonicalizePath(path)
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byPath[canon]
	return id, ok
}

// Len reports how many distinct sources have been registered.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID) - 1
}

// String renders id for error messages, falling back to a numeric
// placeholder when the id is unknown.
func (r *Registry) String(id ast.SourceID) string {
	if path, ok := r.Path(id); ok {
		return path
	}
	return fmt.Sprintf("<source %d>", int(id))
}

// canonicalizePath normalizes a file path for stable SourceID
// assignment, mirroring the teacher's sid.canonicalizePath.
func canonicalizePath(path string) string {
	path = filepath.Clean(path)

	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		path = resolved
	}

	if !filepath.IsAbs(path) {
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
	}

	if isCaseInsensitiveFS() {
		path = strings.ToLower(path)
	}

	return filepath.ToSlash(path)
}

func isCaseInsensitiveFS() bool {
	return runtime.GOOS == "windows" || runtime.GOOS == "darwin"
}
