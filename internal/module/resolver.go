package module

import (
	"os"
	"path/filepath"
	"strings"
)

// tsxExtensions are tried, in order, when an import path names no
// extension of its own.
var tsxExtensions = []string{".tsx", ".ts"}

// normalizeImportPath is the identity an import path is cached and
// cycle-tracked under: separators forced to '/', no trailing
// extension, so "./util.ts" and "./util" share one cache entry.
func normalizeImportPath(path string) string {
	path = strings.ReplaceAll(path, "\\", "/")
	for _, ext := range tsxExtensions {
		path = strings.TrimSuffix(path, ext)
	}
	return path
}

// resolvePath turns importPath into a concrete file on disk, grounded
// on the teacher's Resolver.ResolveImport dispatch (relative / project
// / local import shapes), generalized to TSX's .ts/.tsx extensions and
// dropping AILANG's std/-prefixed stdlib special case (spec.md names
// no standard library).
func (l *Loader) resolvePath(importPath string) (string, error) {
	if filepath.IsAbs(importPath) {
		return existingWithExtension(importPath)
	}
	if strings.HasPrefix(importPath, "./") || strings.HasPrefix(importPath, "../") {
		return l.resolveRelative(importPath)
	}
	return l.resolveSearchPaths(importPath)
}

func (l *Loader) resolveRelative(importPath string) (string, error) {
	if l.currentFile == "" {
		return "", &os.PathError{Op: "resolve", Path: importPath, Err: os.ErrNotExist}
	}
	dir := filepath.Dir(l.currentFile)
	return existingWithExtension(filepath.Join(dir, importPath))
}

func (l *Loader) resolveSearchPaths(importPath string) (string, error) {
	for _, searchPath := range l.searchPaths {
		if resolved, err := existingWithExtension(filepath.Join(searchPath, importPath)); err == nil {
			return resolved, nil
		}
	}
	return "", os.ErrNotExist
}

// existingWithExtension returns path itself if it already names an
// existing file, otherwise the first candidate formed by appending a
// tsxExtensions entry that exists on disk.
func existingWithExtension(path string) (string, error) {
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		return filepath.Abs(path)
	}
	for _, ext := range tsxExtensions {
		candidate := path + ext
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return filepath.Abs(candidate)
		}
	}
	return "", os.ErrNotExist
}
