package ast

import "strings"

// VariableField is a binding pattern: a bare name, an array
// destructuring pattern, or an object destructuring pattern
// (spec.md §3).
type VariableField interface {
	Node
	variableFieldNode()
	// IsName reports whether this is a bare-name binding, as opposed
	// to a destructuring pattern — used to enforce
	// DestructuringRequiresValue (spec.md §4.2).
	IsName() bool
}

// NameField is a bare-identifier binding, e.g. `x` in `let x = 1`.
type NameField struct {
	Name string
	Span Span
}

func (f *NameField) variableFieldNode() {}
func (f *NameField) GetSpan() Span      { return f.Span }
func (f *NameField) String() string     { return f.Name }
func (f *NameField) IsName() bool       { return true }

// ArrayFieldElement is one slot of an array destructuring pattern; nil
// Field represents an elided slot (`let [, x] = y`).
type ArrayFieldElement struct {
	Field   VariableField
	Default Expression // nil when absent
}

// ArrayField is `[a, b, ...]` used as a binding pattern.
type ArrayField struct {
	Elements []ArrayFieldElement
	Span     Span
}

func (f *ArrayField) variableFieldNode() {}
func (f *ArrayField) GetSpan() Span      { return f.Span }
func (f *ArrayField) IsName() bool       { return false }
func (f *ArrayField) String() string {
	parts := make([]string, len(f.Elements))
	for i, e := range f.Elements {
		if e.Field == nil {
			parts[i] = ""
			continue
		}
		parts[i] = e.Field.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// ObjectFieldProperty is one `name` or `name: renamed` entry of an
// object destructuring pattern.
type ObjectFieldProperty struct {
	Name     string
	Renamed  VariableField // equal to a NameField{Name} when not renamed
	Default  Expression    // nil when absent
}

// ObjectField is `{ a, b: c }` used as a binding pattern.
type ObjectField struct {
	Properties []ObjectFieldProperty
	Span       Span
}

func (f *ObjectField) variableFieldNode() {}
func (f *ObjectField) GetSpan() Span      { return f.Span }
func (f *ObjectField) IsName() bool       { return false }
func (f *ObjectField) String() string {
	parts := make([]string, len(f.Properties))
	for i, p := range f.Properties {
		if p.Renamed != nil && p.Renamed.String() != p.Name {
			parts[i] = p.Name + ": " + p.Renamed.String()
		} else {
			parts[i] = p.Name
		}
	}
	return "{ " + strings.Join(parts, ", ") + " }"
}

// WithComment wraps a binding with an optional leading comment,
// mirroring the original's `WithComment<VariableField<...>>` wrapper
// (spec.md §4.2's "`WithComment`-wrapped" binding).
type WithComment struct {
	Leading string // empty when there is no leading comment
	Field   VariableField
}

func (w WithComment) String() string { return w.Field.String() }
