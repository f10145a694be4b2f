// Package module loads and resolves TSX modules: it ties the lexer,
// parser, checker and sourcemap packages together into a single
// "import a path, get back a synthesised module" operation, and
// detects the cross-module cycles spec.md's import/re-export model
// otherwise allows unboundedly.
//
// Grounded on the teacher's internal/module/loader.go (cache+RWMutex,
// searchPaths, loadStack cycle detection, Kahn's-algorithm
// TopologicalSort) and internal/module/resolver.go (import path
// normalization), generalized from AILANG's ".ail" modules to TSX's
// ".ts"/".tsx" files and import/export declarations.
package module

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/tsxcheck/tsxcheck/internal/ast"
	"github.com/tsxcheck/tsxcheck/internal/checker"
	tsxerrors "github.com/tsxcheck/tsxcheck/internal/errors"
	"github.com/tsxcheck/tsxcheck/internal/lexer"
	"github.com/tsxcheck/tsxcheck/internal/parser"
	"github.com/tsxcheck/tsxcheck/internal/sourcemap"
)

// Module is one loaded, synthesised TSX file.
type Module struct {
	// Identity is the canonical import path this module was loaded
	// under (e.g. "./util", "components/button").
	Identity string

	// FilePath is the absolute path on disk.
	FilePath string

	// Source is this module's sourcemap.Registry-assigned id.
	Source ast.SourceID

	// Program is the parsed file.
	Program *ast.Program

	// Synthesised is the checker's view of this module's bindings.
	Synthesised *checker.SynthesisedModule

	// Dependencies are the import paths this module references,
	// in source order.
	Dependencies []string
}

// Loader loads TSX modules from disk, parses and synthesises them,
// and caches the result by canonical import path. The cache is guarded
// by mu, but Load also updates the load stack, currentFile and the
// shared checker without locking, so a Loader is not safe for
// concurrent Load calls.
type Loader struct {
	cache map[string]*Module
	mu    sync.RWMutex

	searchPaths []string
	sources     *sourcemap.Registry
	checker     *checker.Checker
	parseOpts   parser.ParseOptions

	currentFile string
	loadStack   []string
}

// NewLoader creates a Loader rooted at the given search paths (checked
// in order after relative and absolute imports). An empty searchPaths
// defaults to the current directory.
func NewLoader(searchPaths []string) *Loader {
	if len(searchPaths) == 0 {
		searchPaths = []string{"."}
	}
	return &Loader{
		cache:       make(map[string]*Module),
		searchPaths: searchPaths,
		sources:     sourcemap.NewRegistry(),
		checker:     checker.NewChecker(),
		parseOpts:   parser.DefaultParseOptions(),
		loadStack:   []string{},
	}
}

// Checker returns the Loader's shared checker, whose Root context and
// module registry accumulate bindings across every Load call.
func (l *Loader) Checker() *checker.Checker { return l.checker }

// Sources returns the Loader's shared sourcemap registry.
func (l *Loader) Sources() *sourcemap.Registry { return l.sources }

// Load resolves importPath to a file, parses and synthesises it (and
// everything it imports), and returns the cached Module.
func (l *Loader) Load(importPath string) (*Module, error) {
	identity := normalizeImportPath(importPath)

	if mod := l.getCached(identity); mod != nil {
		return mod, nil
	}
	if err := l.checkCycle(identity); err != nil {
		return nil, err
	}

	l.pushStack(identity)
	defer l.popStack()

	filePath, err := l.resolvePath(importPath)
	if err != nil {
		return nil, tsxerrors.WrapReport(tsxerrors.New("module", tsxerrors.MOD001,
			fmt.Sprintf("cannot resolve import %q: %v", importPath, err)))
	}

	mod, err := l.loadFile(identity, filePath)
	if err != nil {
		return nil, err
	}

	if err := l.loadDependencies(mod); err != nil {
		return nil, err
	}

	l.cacheModule(mod)
	return mod, nil
}

func (l *Loader) loadFile(identity, filePath string) (*Module, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, tsxerrors.WrapReport(tsxerrors.New("module", tsxerrors.MOD005,
			fmt.Sprintf("failed to read %s: %v", filePath, err)))
	}

	source := l.sources.Register(filePath)

	oldFile := l.currentFile
	l.currentFile = filePath
	defer func() { l.currentFile = oldFile }()

	program, err := parser.ParseProgram(lexer.New(string(content), filePath), source, l.parseOpts)
	if err != nil {
		return nil, tsxerrors.WrapReport(tsxerrors.New("module", tsxerrors.MOD005,
			fmt.Sprintf("failed to parse %s: %v", filePath, err)))
	}

	synthesised, diagnostics := l.checker.SynthesiseModule(source, program, checker.DefaultSynthesiser{})
	if len(diagnostics.Reports) > 0 {
		return nil, tsxerrors.WrapReport(diagnostics.Reports[0])
	}

	return &Module{
		Identity:     identity,
		FilePath:     filePath,
		Source:       source,
		Program:      program,
		Synthesised:  synthesised,
		Dependencies: extractDependencies(program),
	}, nil
}

func (l *Loader) loadDependencies(mod *Module) error {
	oldFile := l.currentFile
	l.currentFile = mod.FilePath
	defer func() { l.currentFile = oldFile }()

	for _, dep := range mod.Dependencies {
		if _, err := l.Load(dep); err != nil {
			return err
		}
	}
	return l.validateImports(mod)
}

// validateImports checks that every named import this module requests
// is actually present in the dependency's Exported table (spec.md's
// import/export model; error code MOD003 covers unsupported re-export
// shapes, reused here for an unresolved named import since both are
// "this export table doesn't have what the importer asked for").
func (l *Loader) validateImports(mod *Module) error {
	for _, item := range mod.Program.Items {
		decl, ok := item.(*ast.DeclarationItem)
		if !ok {
			continue
		}
		imp, ok := decl.Decl.(*ast.ImportDeclaration)
		if !ok || imp.Kind != ast.ImportParts {
			continue
		}
		dep := l.getCached(normalizeImportPath(imp.ModulePath))
		if dep == nil {
			continue
		}
		for _, part := range imp.Parts {
			_, hasName := dep.Synthesised.Exported.Names[part.Name]
			_, hasType := dep.Synthesised.Exported.Types[part.Name]
			if !hasName && !hasType {
				return tsxerrors.WrapReport(tsxerrors.New("module", tsxerrors.MOD003,
					fmt.Sprintf("%q is not exported by %s (imported in %s)", part.Name, imp.ModulePath, mod.Identity)).
					WithSpan(imp.Span))
			}
		}
	}
	return nil
}

func extractDependencies(program *ast.Program) []string {
	var deps []string
	for _, item := range program.Items {
		decl, ok := item.(*ast.DeclarationItem)
		if !ok {
			continue
		}
		switch d := decl.Decl.(type) {
		case *ast.ImportDeclaration:
			deps = append(deps, d.ModulePath)
		case *ast.ExportVariableDeclaration:
			if d.FromModule != "" {
				deps = append(deps, d.FromModule)
			}
		}
	}
	return deps
}

func (l *Loader) getCached(identity string) *Module {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.cache[identity]
}

func (l *Loader) cacheModule(mod *Module) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cache[mod.Identity] = mod
}

func (l *Loader) checkCycle(identity string) error {
	for i, id := range l.loadStack {
		if id == identity {
			cycle := append(append([]string{}, l.loadStack[i:]...), identity)
			return tsxerrors.WrapReport(tsxerrors.New("module", tsxerrors.MOD002,
				fmt.Sprintf("circular import: %s", strings.Join(cycle, " -> "))))
		}
	}
	return nil
}

func (l *Loader) pushStack(identity string) { l.loadStack = append(l.loadStack, identity) }

func (l *Loader) popStack() {
	if len(l.loadStack) > 0 {
		l.loadStack = l.loadStack[:len(l.loadStack)-1]
	}
}

// GetDependencyGraph returns every cached module's direct dependency
// list, keyed by canonical identity.
func (l *Loader) GetDependencyGraph() map[string][]string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	graph := make(map[string][]string, len(l.cache))
	for id, mod := range l.cache {
		graph[id] = mod.Dependencies
	}
	return graph
}

// TopologicalSort orders every cached module so each one appears after
// every module it depends on, via Kahn's algorithm.
func (l *Loader) TopologicalSort() ([]string, error) {
	graph := l.GetDependencyGraph()

	reverseGraph := make(map[string][]string)
	inDegree := make(map[string]int)
	for node := range graph {
		if _, ok := inDegree[node]; !ok {
			inDegree[node] = 0
		}
	}
	for node, deps := range graph {
		for _, dep := range deps {
			if _, ok := reverseGraph[dep]; !ok {
				reverseGraph[dep] = []string{}
			}
			reverseGraph[dep] = append(reverseGraph[dep], node)
			inDegree[node]++
		}
	}

	var queue []string
	for node, degree := range inDegree {
		if degree == 0 {
			queue = append(queue, node)
		}
	}

	var result []string
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		result = append(result, node)
		for _, dependent := range reverseGraph[node] {
			inDegree[dependent]--
			if inDegree[dependent] == 0 {
				queue = append(queue, dependent)
			}
		}
	}

	if len(result) != len(graph) {
		return nil, tsxerrors.WrapReport(tsxerrors.New("module", tsxerrors.MOD002,
			"circular dependency detected while sorting modules"))
	}
	return result, nil
}
