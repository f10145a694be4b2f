package checker

import "github.com/tsxcheck/tsxcheck/internal/ast"

// ContextID identifies a Context within a checking session.
// ContextID(0) is reserved for the root.
type ContextID int

// RootContextID is the root context's fixed ContextID (spec.md §4.4).
const RootContextID ContextID = 0

// ScopeKind distinguishes the root context from the lexical
// environments nested under it (spec.md §3: "Context<T> generic over
// context kind T in {Root, Lexical(scope), ...}").
type ScopeKind int

const (
	ScopeRoot ScopeKind = iota
	ScopeModule
	ScopeLexical
)

// Context is a lexical scope frame: named types, variable bindings,
// accumulated Facts, and the handful of other tables spec.md §3
// names. A child Context refers to its parent through a non-owning
// pointer (spec.md §9); the root has no parent.
type Context struct {
	Scope  ScopeKind
	ID     ContextID
	parent *Context

	// Module-scope-only fields (valid when Scope == ScopeModule).
	Source   ast.SourceID
	Exported *Exported

	NamedTypes    map[string]TypeID
	Variables     map[string]*VariableOrImport
	VariableNames []string // insertion-order index into Variables

	// DeferredFunctionConstraints holds function bodies whose return
	// type could not be resolved at the point of declaration and must
	// be revisited once the rest of the module has been synthesised.
	// Out of this spec's scope to resolve (§1: checker diagnostics are
	// a wider-checker concern); kept as a bookkeeping slot so a future
	// checker pass has somewhere to record them.
	DeferredFunctionConstraints []ast.Node

	// Bases links a TypeID to the base type it was declared to extend
	// (interface `extends`, conditional `extends` constraints).
	Bases map[TypeID]TypeID

	// ObjectConstraints is the set of TypeIDs known to be object-shaped
	// (spec.md §3's "object-constraint set").
	ObjectConstraints map[TypeID]bool

	CanReferenceThis bool

	Facts *Facts

	// PossiblyMutatedObjects tracks variables that may have been
	// mutated through an alias or closure capture, per spec.md §3.
	PossiblyMutatedObjects map[VariableID]bool

	nextVariableID *int // shared counter, inherited from the root
	nextTypeID     *TypeID
}

// GetParent returns c's parent context, or nil for the root (spec.md
// §4.4: "T's get_parent (Root returns none)").
func (c *Context) GetParent() *Context { return c.parent }

// NewRootContext creates a Root context pre-populated with the nine
// primitive type bindings and the single `undefined` variable binding,
// per spec.md §4.4's new_with_primitive_references and
// _examples/original_source/checker/src/context/root.rs.
func NewRootContext() *Context {
	counter := 0
	nextType := firstSynthesizedTypeID

	facts := NewFacts()

	root := &Context{
		Scope: ScopeRoot,
		ID:    RootContextID,
		NamedTypes: map[string]TypeID{
			"number":    NumberType,
			"string":    StringType,
			"boolean":   BooleanType,
			"null":      NullType,
			"undefined": UndefinedType,
			"void":      VoidType,
			"Array":     ArrayType,
			"Function":  FunctionType,
			"object":    ObjectType,
		},
		Variables:              make(map[string]*VariableOrImport),
		Bases:                  make(map[TypeID]TypeID),
		ObjectConstraints:      make(map[TypeID]bool),
		CanReferenceThis:       true,
		Facts:                  facts,
		PossiblyMutatedObjects: make(map[VariableID]bool),
		nextVariableID:         &counter,
		nextTypeID:             &nextType,
	}

	undefinedVar := &VariableOrImport{
		ID:         root.allocVariableID(),
		Kind:       VariableKind,
		Mutability: Constant,
		DeclaredAt: -1,
	}
	root.Variables["undefined"] = undefinedVar
	root.VariableNames = append(root.VariableNames, "undefined")
	facts.Set(undefinedVar.ID, UndefinedType)

	return root
}

func (c *Context) allocVariableID() VariableID {
	id := VariableID(*c.nextVariableID)
	*c.nextVariableID++
	return id
}

// NewTypeID interns a fresh synthesized TypeID, shared across the
// whole context tree via the root's counter.
func (c *Context) NewTypeID() TypeID {
	id := *c.nextTypeID
	*c.nextTypeID++
	return id
}

// NewLexicalEnvironment opens a child scope of kind under c. Matches
// the teacher's TypeEnv.Extend idiom (fresh tables, parent pointer)
// generalized to the richer Context shape spec.md §3 requires.
func (c *Context) NewLexicalEnvironment(kind ScopeKind) *Context {
	child := &Context{
		Scope:                  kind,
		ID:                     ContextID(*c.nextVariableID + 1<<20), // distinct namespace from variable ids
		parent:                 c,
		NamedTypes:             make(map[string]TypeID),
		Variables:              make(map[string]*VariableOrImport),
		Bases:                  make(map[TypeID]TypeID),
		ObjectConstraints:      make(map[TypeID]bool),
		CanReferenceThis:       c.CanReferenceThis,
		Facts:                  NewFacts(),
		PossiblyMutatedObjects: make(map[VariableID]bool),
		nextVariableID:         c.nextVariableID,
		nextTypeID:             c.nextTypeID,
	}
	if kind == ScopeModule {
		child.Exported = NewExported()
	}
	return child
}

// LookupType resolves name against c, then its ancestors, matching
// the parent-chain walk the teacher's TypeEnv.Lookup performs.
func (c *Context) LookupType(name string) (TypeID, bool) {
	for ctx := c; ctx != nil; ctx = ctx.parent {
		if id, ok := ctx.NamedTypes[name]; ok {
			return id, true
		}
	}
	return 0, false
}

// LookupVariable resolves name against c, then its ancestors.
func (c *Context) LookupVariable(name string) (*VariableOrImport, bool) {
	for ctx := c; ctx != nil; ctx = ctx.parent {
		if v, ok := ctx.Variables[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// DeclareVariable registers a new binding named name in c. It returns
// nil, false if name is already declared directly in c (shadowing an
// ancestor binding is allowed; redeclaring in the same scope is not).
func (c *Context) DeclareVariable(name string, mutability VariableMutability, declaredAt int) (*VariableOrImport, bool) {
	if _, exists := c.Variables[name]; exists {
		return nil, false
	}
	v := &VariableOrImport{
		ID:         c.allocVariableID(),
		Kind:       VariableKind,
		Mutability: mutability,
		DeclaredAt: declaredAt,
	}
	c.Variables[name] = v
	c.VariableNames = append(c.VariableNames, name)
	return v, true
}

// DeclareImport registers an imported binding named name in c, sourced
// from fromModule under originalName.
func (c *Context) DeclareImport(name, fromModule, originalName string, declaredAt int) (*VariableOrImport, bool) {
	if _, exists := c.Variables[name]; exists {
		return nil, false
	}
	v := &VariableOrImport{
		ID:           c.allocVariableID(),
		Kind:         ImportKind,
		Mutability:   Constant,
		DeclaredAt:   declaredAt,
		FromModule:   fromModule,
		OriginalName: originalName,
	}
	c.Variables[name] = v
	c.VariableNames = append(c.VariableNames, name)
	return v, true
}

// DeclareType registers a named type binding in c (interface, type
// alias, or enum declaration).
func (c *Context) DeclareType(name string, id TypeID) {
	c.NamedTypes[name] = id
}
