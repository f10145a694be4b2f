package ast

import "strings"

// Declaration is the declaration half of StatementOrDeclaration.
// Every concrete case reports its own RequiresSemiColon per the table
// in spec.md §4.3.
type Declaration interface {
	Node
	declNode()
	RequiresSemiColon() bool
}

// ---------------------------------------------------------------------
// Variable declarations (C5)

// VariableDeclaration is Const{items} or Let{items} (spec.md §3).
type VariableDeclaration interface {
	Declaration
	variableDeclarationNode()
}

// ConstDeclarationItem is one binding of a `const` declaration; its
// Expression is always present (enforced at parse time — spec.md §4.2
// rule 3).
type ConstDeclarationItem struct {
	Name           WithComment
	TypeAnnotation TypeAnnotation // nil when absent
	Expression     Expression
	Span           Span
}

func (i *ConstDeclarationItem) GetSpan() Span { return i.Span }
func (i *ConstDeclarationItem) String() string {
	var b strings.Builder
	b.WriteString(i.Name.String())
	if i.TypeAnnotation != nil {
		b.WriteString(": " + i.TypeAnnotation.String())
	}
	b.WriteString(" = " + i.Expression.String())
	return b.String()
}

// LetDeclarationItem is one binding of a `let` declaration; its
// Expression is nil unless an initializer was written (and must be
// non-nil when Name is a destructuring pattern — spec.md §4.2 rule 5).
type LetDeclarationItem struct {
	Name           WithComment
	TypeAnnotation TypeAnnotation // nil when absent
	Expression     Expression     // nil when absent
	Span           Span
}

func (i *LetDeclarationItem) GetSpan() Span { return i.Span }
func (i *LetDeclarationItem) String() string {
	var b strings.Builder
	b.WriteString(i.Name.String())
	if i.TypeAnnotation != nil {
		b.WriteString(": " + i.TypeAnnotation.String())
	}
	if i.Expression != nil {
		b.WriteString(" = " + i.Expression.String())
	}
	return b.String()
}

// ConstDeclaration is `const a = 1, b = 2;`.
type ConstDeclaration struct {
	Items []*ConstDeclarationItem
	Span  Span
}

func (d *ConstDeclaration) declNode()                 {}
func (d *ConstDeclaration) variableDeclarationNode()   {}
func (d *ConstDeclaration) GetSpan() Span              { return d.Span }
func (d *ConstDeclaration) RequiresSemiColon() bool    { return true }
func (d *ConstDeclaration) String() string {
	parts := make([]string, len(d.Items))
	for i, it := range d.Items {
		parts[i] = it.String()
	}
	return "const " + strings.Join(parts, ", ")
}

// LetDeclaration is `let a, b = 2;`.
type LetDeclaration struct {
	Items []*LetDeclarationItem
	Span  Span
}

func (d *LetDeclaration) declNode()                {}
func (d *LetDeclaration) variableDeclarationNode() {}
func (d *LetDeclaration) GetSpan() Span            { return d.Span }
func (d *LetDeclaration) RequiresSemiColon() bool  { return true }
func (d *LetDeclaration) String() string {
	parts := make([]string, len(d.Items))
	for i, it := range d.Items {
		parts[i] = it.String()
	}
	return "let " + strings.Join(parts, ", ")
}

// ---------------------------------------------------------------------
// Other declaration kinds driven by the block driver (C6)

// FunctionParameter is one value-level parameter of a function
// declaration.
type FunctionParameter struct {
	Name           WithComment
	TypeAnnotation TypeAnnotation // nil when absent
	Default        Expression     // nil when absent
	Span           Span
}

// FunctionDeclaration is `function name(...) { ... }`.
type FunctionDeclaration struct {
	Name           string
	TypeParameters []TypeAnnotation
	Parameters     []FunctionParameter
	ReturnType     TypeAnnotation // nil when absent
	Body           *Block
	Span           Span
}

func (d *FunctionDeclaration) declNode()              {}
func (d *FunctionDeclaration) GetSpan() Span           { return d.Span }
func (d *FunctionDeclaration) RequiresSemiColon() bool { return false }
func (d *FunctionDeclaration) String() string {
	parts := make([]string, len(d.Parameters))
	for i, p := range d.Parameters {
		parts[i] = p.Name.String()
	}
	return "function " + d.Name + "(" + strings.Join(parts, ", ") + ") " + d.Body.String()
}

// TypeAliasDeclaration is `type Name<...> = Value;`.
type TypeAliasDeclaration struct {
	Name           string
	TypeParameters []TypeAnnotation
	Value          TypeAnnotation
	Span           Span
}

func (d *TypeAliasDeclaration) declNode()              {}
func (d *TypeAliasDeclaration) GetSpan() Span           { return d.Span }
func (d *TypeAliasDeclaration) RequiresSemiColon() bool { return false }
func (d *TypeAliasDeclaration) String() string {
	return "type " + d.Name + " = " + d.Value.String()
}

// InterfaceDeclaration is `interface Name<...> extends ... { members }`.
type InterfaceDeclaration struct {
	Name           string
	TypeParameters []TypeAnnotation
	Extends        []TypeAnnotation
	Members        []ObjectMember
	Span           Span
}

func (d *InterfaceDeclaration) declNode()              {}
func (d *InterfaceDeclaration) GetSpan() Span           { return d.Span }
func (d *InterfaceDeclaration) RequiresSemiColon() bool { return false }
func (d *InterfaceDeclaration) String() string {
	parts := make([]string, len(d.Members))
	for i, m := range d.Members {
		parts[i] = m.String()
	}
	return "interface " + d.Name + " { " + strings.Join(parts, "; ") + " }"
}

// EnumMember is one `Name` or `Name = Value` entry of an enum.
type EnumMember struct {
	Name  string
	Value Expression // nil when absent
}

// EnumDeclaration is `enum Name { members }`.
type EnumDeclaration struct {
	Name    string
	Members []EnumMember
	Span    Span
}

func (d *EnumDeclaration) declNode()              {}
func (d *EnumDeclaration) GetSpan() Span           { return d.Span }
func (d *EnumDeclaration) RequiresSemiColon() bool { return false }
func (d *EnumDeclaration) String() string {
	parts := make([]string, len(d.Members))
	for i, m := range d.Members {
		parts[i] = m.Name
	}
	return "enum " + d.Name + " { " + strings.Join(parts, ", ") + " }"
}

// ImportKind distinguishes the three shapes of an import declaration.
type ImportKind int

const (
	ImportDefault ImportKind = iota
	ImportAll
	ImportParts
)

// ImportSpecifier is one `name` or `name as alias` entry of a named
// import list.
type ImportSpecifier struct {
	Name  string
	Alias string // equal to Name when not aliased
}

// ImportDeclaration is any of `import Default from 'x'`,
// `import * as ns from 'x'`, or `import { a, b as c } from 'x'`.
// RequiresSemiColon is always true (spec.md §4.3).
type ImportDeclaration struct {
	Kind        ImportKind
	DefaultName string // valid when Kind == ImportDefault
	Namespace   string // valid when Kind == ImportAll
	Parts       []ImportSpecifier // valid when Kind == ImportParts
	ModulePath  string
	Span        Span
}

func (d *ImportDeclaration) declNode()              {}
func (d *ImportDeclaration) GetSpan() Span           { return d.Span }
func (d *ImportDeclaration) RequiresSemiColon() bool { return true }
func (d *ImportDeclaration) String() string {
	switch d.Kind {
	case ImportAll:
		return "import * as " + d.Namespace + " from " + quoted(d.ModulePath)
	case ImportParts:
		parts := make([]string, len(d.Parts))
		for i, p := range d.Parts {
			if p.Alias != "" && p.Alias != p.Name {
				parts[i] = p.Name + " as " + p.Alias
			} else {
				parts[i] = p.Name
			}
		}
		return "import { " + strings.Join(parts, ", ") + " } from " + quoted(d.ModulePath)
	default:
		return "import " + d.DefaultName + " from " + quoted(d.ModulePath)
	}
}

func quoted(s string) string { return "\"" + s + "\"" }

// ReexportKind distinguishes the three shapes of a re-export
// declaration, mirroring ImportKind (spec.md §4.3: `Export(Variable{
// exported: ImportAll|ImportParts|Parts})`).
type ReexportKind int

const (
	ReexportAll ReexportKind = iota
	ReexportParts
	ReexportNamed
)

// ExportSpecifier is one `name` or `name as alias` entry of a named
// export list.
type ExportSpecifier struct {
	Name  string
	Alias string
}

// ExportVariableDeclaration is `export * from 'x'`,
// `export { a, b } from 'x'`, or `export { a, b }`. RequiresSemiColon
// is always true (spec.md §4.3).
type ExportVariableDeclaration struct {
	Kind       ReexportKind
	Namespace  string // valid when Kind == ReexportAll and aliased (`export * as ns`)
	Specifiers []ExportSpecifier
	FromModule string // empty when Kind == ReexportNamed
	Span       Span
}

func (d *ExportVariableDeclaration) declNode()              {}
func (d *ExportVariableDeclaration) GetSpan() Span           { return d.Span }
func (d *ExportVariableDeclaration) RequiresSemiColon() bool { return true }
func (d *ExportVariableDeclaration) String() string {
	switch d.Kind {
	case ReexportAll:
		s := "export *"
		if d.Namespace != "" {
			s += " as " + d.Namespace
		}
		return s + " from " + quoted(d.FromModule)
	default:
		parts := make([]string, len(d.Specifiers))
		for i, s := range d.Specifiers {
			if s.Alias != "" && s.Alias != s.Name {
				parts[i] = s.Name + " as " + s.Alias
			} else {
				parts[i] = s.Name
			}
		}
		str := "export { " + strings.Join(parts, ", ") + " }"
		if d.FromModule != "" {
			str += " from " + quoted(d.FromModule)
		}
		return str
	}
}

// ExportDefaultDeclaration is `export default Expr;`. RequiresSemiColon
// is always true (spec.md §4.3).
type ExportDefaultDeclaration struct {
	Expr Expression
	Span Span
}

func (d *ExportDefaultDeclaration) declNode()              {}
func (d *ExportDefaultDeclaration) GetSpan() Span           { return d.Span }
func (d *ExportDefaultDeclaration) RequiresSemiColon() bool { return true }
func (d *ExportDefaultDeclaration) String() string {
	return "export default " + d.Expr.String()
}

// ExportDeclarationWrapper is `export` applied directly to another
// declaration (`export function f() {}`, `export type T = ...`). Its
// RequiresSemiColon delegates to the wrapped declaration, since the
// spec's semicolon table names only Variable/Import/default-export/
// re-export forms as requiring one (spec.md §4.3).
type ExportDeclarationWrapper struct {
	Decl Declaration
	Span Span
}

func (d *ExportDeclarationWrapper) declNode()    {}
func (d *ExportDeclarationWrapper) GetSpan() Span { return d.Span }
func (d *ExportDeclarationWrapper) RequiresSemiColon() bool {
	return d.Decl.RequiresSemiColon()
}
func (d *ExportDeclarationWrapper) String() string {
	return "export " + d.Decl.String()
}
