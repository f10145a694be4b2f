package checker

import (
	"github.com/tsxcheck/tsxcheck/internal/ast"
	tsxerrors "github.com/tsxcheck/tsxcheck/internal/errors"
)

// SynthesisedModule is the result of synthesising one module: its
// owned AST, the Exported table populated during synthesis, and the
// Facts the module's scope accumulated (spec.md §3).
type SynthesisedModule struct {
	Content  *ast.Program
	Exported *Exported
	Facts    *Facts
}

// ASTImplementation is the out-of-scope "AST-implementation adapter"
// spec.md §4.4 names: the thing that knows how to walk a parsed module
// and populate a module-scoped Context's Facts and Exported table.
// Concrete checkers plug in their own; DefaultSynthesiser below is the
// adapter this repository ships so module synthesis is runnable
// end-to-end without a wider type-checking pass.
type ASTImplementation interface {
	SynthesiseModule(program *ast.Program, source ast.SourceID, env *Context, diagnostics *Diagnostics)
}

// Diagnostics accumulates checker-phase findings produced while
// synthesising a module. Spec.md §7 places the wider checker's
// diagnostics explicitly outside this repository's scope ("CheckingData,
// outside this spec's scope"); this type is the minimal seam
// DefaultSynthesiser needs to report the handful of checks (§4.4, §8)
// that do fall within C9's contract, such as an unresolved type-alias
// reference.
type Diagnostics struct {
	Reports []*tsxerrors.Report
}

func (d *Diagnostics) add(r *tsxerrors.Report) { d.Reports = append(d.Reports, r) }

// DefaultSynthesiser walks a Program's top-level items, binding each
// declaration's name into the module's lexical environment and
// recording an initial Facts entry for variable declarations. Grounded
// on the teacher's internal/module/loader.go extractExports /
// extractDependencies pair, generalized from AILANG's Decls slice to
// this repository's flat StatementOrDeclaration Program.
type DefaultSynthesiser struct{}

var _ ASTImplementation = DefaultSynthesiser{}

func (DefaultSynthesiser) SynthesiseModule(program *ast.Program, source ast.SourceID, env *Context, diagnostics *Diagnostics) {
	for _, item := range program.Items {
		switch it := item.(type) {
		case *ast.DeclarationItem:
			synthesiseDeclaration(it.Decl, env, diagnostics, false)
		case *ast.StatementItem:
			// Top-level statements carry no bindings of their own;
			// out of scope for C9 (spec.md §1 places
			// execution/interpretation out of scope).
		case *ast.MarkerItem:
			// Partial-syntax placeholder; nothing to synthesise.
		}
	}
}

func synthesiseDeclaration(decl ast.Declaration, env *Context, diagnostics *Diagnostics, forceExport bool) {
	switch d := decl.(type) {
	case *ast.ConstDeclaration:
		for _, item := range d.Items {
			bindVariableItem(item.Name.Field, Constant, item.Span.Start, env, forceExport)
		}
	case *ast.LetDeclaration:
		for _, item := range d.Items {
			bindVariableItem(item.Name.Field, Mutable, item.Span.Start, env, forceExport)
		}
	case *ast.FunctionDeclaration:
		bindNamed(d.Name, Constant, d.Span.Start, env, forceExport)
	case *ast.TypeAliasDeclaration:
		id := env.NewTypeID()
		env.DeclareType(d.Name, id)
		if forceExport {
			exportType(env, d.Name, id)
		}
	case *ast.InterfaceDeclaration:
		id := env.NewTypeID()
		env.DeclareType(d.Name, id)
		for _, ext := range d.Extends {
			if base, ok := resolveTypeReference(ext, env); ok {
				env.Bases[id] = base
			} else {
				diagnostics.add(tsxerrors.New("checker", tsxerrors.CHK001, "interface extends an undeclared named type").WithSpan(ext.GetSpan()))
			}
		}
		env.ObjectConstraints[id] = true
		if forceExport {
			exportType(env, d.Name, id)
		}
	case *ast.EnumDeclaration:
		id := env.NewTypeID()
		env.DeclareType(d.Name, id)
		if forceExport {
			exportType(env, d.Name, id)
		}
	case *ast.ImportDeclaration:
		synthesiseImport(d, env)
	case *ast.ExportVariableDeclaration:
		// Re-exports name bindings that live in another module; C9's
		// own contract (spec.md §4.4) doesn't resolve cross-module
		// bindings (that's the module loader's job — see
		// internal/module), so re-exported names are recorded against
		// a placeholder variable id scoped to this module only when
		// the name isn't already bound locally.
		for _, spec := range d.Specifiers {
			name := spec.Name
			alias := spec.Alias
			if alias == "" {
				alias = name
			}
			v, existed := env.LookupVariable(name)
			if !existed {
				v, _ = env.DeclareImport(name, d.FromModule, name, d.Span.Start)
			}
			if env.Exported != nil && v != nil {
				env.Exported.Names[alias] = v.ID
			}
		}
	case *ast.ExportDefaultDeclaration:
		// `export default expr` has no declared name to bind; nothing
		// further for C9 to record beyond the diagnostics a deeper
		// checker would run over Expr.
	case *ast.ExportDeclarationWrapper:
		synthesiseDeclaration(d.Decl, env, diagnostics, true)
	}
}

func bindVariableItem(field ast.VariableField, mutability VariableMutability, declaredAt int, env *Context, forceExport bool) {
	if name, ok := field.(*ast.NameField); ok {
		bindNamed(name.Name, mutability, declaredAt, env, forceExport)
		return
	}
	// Destructuring patterns bind every leaf name they introduce.
	for _, n := range destructuredNames(field) {
		bindNamed(n, mutability, declaredAt, env, forceExport)
	}
}

func destructuredNames(field ast.VariableField) []string {
	switch f := field.(type) {
	case *ast.NameField:
		return []string{f.Name}
	case *ast.ArrayField:
		var names []string
		for _, el := range f.Elements {
			if el.Field != nil {
				names = append(names, destructuredNames(el.Field)...)
			}
		}
		return names
	case *ast.ObjectField:
		var names []string
		for _, p := range f.Properties {
			if p.Renamed != nil {
				names = append(names, destructuredNames(p.Renamed)...)
			} else {
				names = append(names, p.Name)
			}
		}
		return names
	default:
		return nil
	}
}

func bindNamed(name string, mutability VariableMutability, declaredAt int, env *Context, forceExport bool) {
	v, ok := env.DeclareVariable(name, mutability, declaredAt)
	if !ok {
		return
	}
	env.Facts.Set(v.ID, UndefinedType)
	if forceExport {
		if env.Exported != nil {
			env.Exported.Names[name] = v.ID
		}
	}
}

func exportType(env *Context, name string, id TypeID) {
	if env.Exported == nil {
		return
	}
	env.Exported.Types[name] = id
}

func synthesiseImport(d *ast.ImportDeclaration, env *Context) {
	switch d.Kind {
	case ast.ImportDefault:
		env.DeclareImport(d.DefaultName, d.ModulePath, "default", d.Span.Start)
	case ast.ImportAll:
		env.DeclareImport(d.Namespace, d.ModulePath, "*", d.Span.Start)
	case ast.ImportParts:
		for _, part := range d.Parts {
			alias := part.Alias
			if alias == "" {
				alias = part.Name
			}
			env.DeclareImport(alias, d.ModulePath, part.Name, d.Span.Start)
		}
	}
}

func resolveTypeReference(t ast.TypeAnnotation, env *Context) (TypeID, bool) {
	switch ty := t.(type) {
	case *ast.NameType:
		return env.LookupType(ty.Name)
	case *ast.CommonNameType:
		switch ty.Name {
		case ast.CommonString:
			return StringType, true
		case ast.CommonNumber:
			return NumberType, true
		case ast.CommonBoolean:
			return BooleanType, true
		}
	}
	return 0, false
}

// NewModuleContext opens a module-scoped lexical environment under
// root, delegates to impl.SynthesiseModule, and returns the resulting
// SynthesisedModule (spec.md §4.4's new_module_context). It does not
// insert the result into any registry; Checker.SynthesiseModule does
// that.
func (root *Context) NewModuleContext(source ast.SourceID, program *ast.Program, impl ASTImplementation) (*SynthesisedModule, *Diagnostics) {
	env := root.NewLexicalEnvironment(ScopeModule)
	env.Source = source
	diagnostics := &Diagnostics{}
	impl.SynthesiseModule(program, source, env, diagnostics)

	return &SynthesisedModule{
		Content:  program,
		Exported: env.Exported,
		Facts:    env.Facts,
	}, diagnostics
}

// Checker owns a Root context and the registry of modules synthesised
// from it (spec.md §4.4: "insert into the checker's module registry").
// Once a module is inserted it is retained for the checker's lifetime.
type Checker struct {
	Root    *Context
	modules map[ast.SourceID]*SynthesisedModule
}

// NewChecker creates a Checker with a freshly seeded Root context.
func NewChecker() *Checker {
	return &Checker{Root: NewRootContext(), modules: make(map[ast.SourceID]*SynthesisedModule)}
}

// SynthesiseModule synthesises program (sourced from source) using
// impl, inserts it into the module registry, and returns it alongside
// any diagnostics collected during synthesis. Synthesising the same
// source twice overwrites the prior entry — callers that want
// insert-once semantics should consult Lookup first (the module loader
// in internal/module does, via its own cache).
func (c *Checker) SynthesiseModule(source ast.SourceID, program *ast.Program, impl ASTImplementation) (*SynthesisedModule, *Diagnostics) {
	module, diagnostics := c.Root.NewModuleContext(source, program, impl)
	c.modules[source] = module
	return module, diagnostics
}

// Lookup returns the previously synthesised module for source, if any.
func (c *Checker) Lookup(source ast.SourceID) (*SynthesisedModule, bool) {
	m, ok := c.modules[source]
	return m, ok
}
