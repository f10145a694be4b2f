// Package ast defines the tree-shaped data model produced by
// internal/parser: type annotations, statement-or-declaration items,
// blocks, and variable declarations. Every node carries exactly one
// Span; recursive cases hold children behind a pointer or slice so
// each concrete struct has finite size (spec.md §9).
package ast

import (
	"fmt"
	"strings"
)

// SourceID identifies a source file a Span was produced from. The
// zero value is never assigned by sourcemap.Registry.
type SourceID int

// Span is an inclusive-exclusive byte range within a single source.
type Span struct {
	Start  int
	End    int
	Source SourceID
}

// Union returns the smallest span covering both a and b. Both must
// share the same Source.
func (a Span) Union(b Span) Span {
	s := Span{Start: a.Start, End: a.End, Source: a.Source}
	if b.Start < s.Start {
		s.Start = b.Start
	}
	if b.End > s.End {
		s.End = b.End
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("[%d,%d)", s.Start, s.End)
}

// Node is the base interface implemented by every AST type.
type Node interface {
	String() string
	GetSpan() Span
}

// Sink is the pretty-printer's output contract (spec.md §6): it
// accepts character/string/newline writes and can request early
// termination.
type Sink interface {
	Push(r rune)
	PushString(s string)
	PushNewLine()
	CharactersOnCurrentLine() int
	ShouldHalt() bool
}

// ---------------------------------------------------------------------
// CommonName

// CommonName is the closed set of built-in type names that print in
// canonical lowercase rather than as a general Name.
type CommonName int

const (
	CommonString CommonName = iota
	CommonNumber
	CommonBoolean
)

func (c CommonName) String() string {
	switch c {
	case CommonString:
		return "string"
	case CommonNumber:
		return "number"
	case CommonBoolean:
		return "boolean"
	default:
		return fmt.Sprintf("CommonName(%d)", int(c))
	}
}

// ---------------------------------------------------------------------
// TypeAnnotation

// TypeAnnotation is the tagged variant over every type-grammar case
// (spec.md §3). Each concrete case below implements it.
type TypeAnnotation interface {
	Node
	typeAnnotationNode()
}

// NameType is a bare identifier reference, e.g. `T`.
type NameType struct {
	Name string
	Span Span
}

func (n *NameType) typeAnnotationNode() {}
func (n *NameType) GetSpan() Span       { return n.Span }
func (n *NameType) String() string      { return n.Name }

// CommonNameType is one of the three built-in primitive type names.
type CommonNameType struct {
	Name CommonName
	Span Span
}

func (n *CommonNameType) typeAnnotationNode() {}
func (n *CommonNameType) GetSpan() Span       { return n.Span }
func (n *CommonNameType) String() string      { return n.Name.String() }

// NamespacedNameType is `Namespace.Member` — only one level deep
// (spec.md §4.1).
type NamespacedNameType struct {
	Namespace string
	Member    string
	Span      Span
}

func (n *NamespacedNameType) typeAnnotationNode() {}
func (n *NamespacedNameType) GetSpan() Span       { return n.Span }
func (n *NamespacedNameType) String() string      { return n.Namespace + "." + n.Member }

// GenericNameType is `Name<args...>` (NameWithGenericArguments in
// spec.md §3).
type GenericNameType struct {
	Name      string
	Arguments []TypeAnnotation
	Span      Span
}

func (n *GenericNameType) typeAnnotationNode() {}
func (n *GenericNameType) GetSpan() Span       { return n.Span }
func (n *GenericNameType) String() string {
	parts := make([]string, len(n.Arguments))
	for i, a := range n.Arguments {
		parts[i] = a.String()
	}
	return n.Name + "<" + strings.Join(parts, ", ") + ">"
}

// UnionType is a flattened, non-empty set of union members. Parsing
// never nests a Union inside a Union (spec.md §8).
type UnionType struct {
	Members []TypeAnnotation
	Span    Span
}

func (n *UnionType) typeAnnotationNode() {}
func (n *UnionType) GetSpan() Span       { return n.Span }
func (n *UnionType) String() string {
	parts := make([]string, len(n.Members))
	for i, m := range n.Members {
		parts[i] = m.String()
	}
	return strings.Join(parts, " | ")
}

// IntersectionType is a flattened, non-empty set of intersection
// members.
type IntersectionType struct {
	Members []TypeAnnotation
	Span    Span
}

func (n *IntersectionType) typeAnnotationNode() {}
func (n *IntersectionType) GetSpan() Span       { return n.Span }
func (n *IntersectionType) String() string {
	parts := make([]string, len(n.Members))
	for i, m := range n.Members {
		parts[i] = m.String()
	}
	return strings.Join(parts, " & ")
}

// StringLiteralType is a string literal used at the type level.
type StringLiteralType struct {
	Value string
	Quote Quote
	Span  Span
}

func (n *StringLiteralType) typeAnnotationNode() {}
func (n *StringLiteralType) GetSpan() Span       { return n.Span }
func (n *StringLiteralType) String() string {
	q := byte('"')
	if n.Quote == QuoteSingle {
		q = '\''
	}
	return string(q) + n.Value + string(q)
}

// NumberLiteralType is a numeric literal used at the type level.
type NumberLiteralType struct {
	Repr string
	Span Span
}

func (n *NumberLiteralType) typeAnnotationNode() {}
func (n *NumberLiteralType) GetSpan() Span       { return n.Span }
func (n *NumberLiteralType) String() string      { return n.Repr }

// BooleanLiteralType is `true` or `false` used at the type level.
type BooleanLiteralType struct {
	Value bool
	Span  Span
}

func (n *BooleanLiteralType) typeAnnotationNode() {}
func (n *BooleanLiteralType) GetSpan() Span       { return n.Span }
func (n *BooleanLiteralType) String() string {
	if n.Value {
		return "true"
	}
	return "false"
}

// ArrayLiteralType is sugar for `Array<Inner>`, spelled `Inner[]`.
type ArrayLiteralType struct {
	Inner TypeAnnotation
	Span  Span
}

func (n *ArrayLiteralType) typeAnnotationNode() {}
func (n *ArrayLiteralType) GetSpan() Span       { return n.Span }
func (n *ArrayLiteralType) String() string      { return n.Inner.String() + "[]" }

// SpreadKind marks whether a tuple element is preceded by `...`.
type SpreadKind int

const (
	NonSpread SpreadKind = iota
	Spread
)

// AnnotationWithBinder is either a named tuple element (`name: T`) or
// a bare one.
type AnnotationWithBinder interface {
	Node
	annotationWithBinderNode()
	Type() TypeAnnotation
}

// AnnotatedBinder is `name: Type` inside a tuple or parameter list.
type AnnotatedBinder struct {
	Name string
	Ty   TypeAnnotation
	Span Span
}

func (b *AnnotatedBinder) annotationWithBinderNode() {}
func (b *AnnotatedBinder) GetSpan() Span             { return b.Span }
func (b *AnnotatedBinder) Type() TypeAnnotation       { return b.Ty }
func (b *AnnotatedBinder) String() string             { return b.Name + ": " + b.Ty.String() }

// NoAnnotationBinder is a tuple element or parameter with no name.
type NoAnnotationBinder struct {
	Ty   TypeAnnotation
	Span Span
}

func (b *NoAnnotationBinder) annotationWithBinderNode() {}
func (b *NoAnnotationBinder) GetSpan() Span             { return b.Span }
func (b *NoAnnotationBinder) Type() TypeAnnotation       { return b.Ty }
func (b *NoAnnotationBinder) String() string             { return b.Ty.String() }

// TupleElement pairs an optional spread marker with a binder.
type TupleElement struct {
	Spread SpreadKind
	Binder AnnotationWithBinder
}

func (e TupleElement) String() string {
	if e.Spread == Spread {
		return "..." + e.Binder.String()
	}
	return e.Binder.String()
}

// TupleLiteralType is a fixed-shape tuple type.
type TupleLiteralType struct {
	Elements []TupleElement
	Span     Span
}

func (n *TupleLiteralType) typeAnnotationNode() {}
func (n *TupleLiteralType) GetSpan() Span       { return n.Span }
func (n *TupleLiteralType) String() string {
	parts := make([]string, len(n.Elements))
	for i, e := range n.Elements {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// TypeFunctionParameter is one parameter of a function/constructor
// type literal.
type TypeFunctionParameter struct {
	Name       *string // nil when unnamed
	Type       TypeAnnotation
	IsOptional bool
	Span       Span
}

func (p TypeFunctionParameter) String() string {
	name := "_"
	if p.Name != nil {
		name = *p.Name
	}
	if p.IsOptional {
		return name + "?: " + p.Type.String()
	}
	return name + ": " + p.Type.String()
}

// TypeFunctionRestParameter is the single trailing `...name: T[]`
// rest parameter, if present. Invariant: it is always terminal
// (spec.md §3).
type TypeFunctionRestParameter struct {
	Name string
	Type TypeAnnotation
	Span Span
}

// TypeFunctionParameters is an ordered parameter list plus an optional
// terminal rest parameter.
type TypeFunctionParameters struct {
	Parameters []TypeFunctionParameter
	Rest       *TypeFunctionRestParameter
	Span       Span
}

func (p TypeFunctionParameters) String() string {
	parts := make([]string, len(p.Parameters))
	for i, param := range p.Parameters {
		parts[i] = param.String()
	}
	if p.Rest != nil {
		parts = append(parts, "..."+p.Rest.Name+": "+p.Rest.Type.String())
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// FunctionLiteralType is a function type literal, optionally generic.
type FunctionLiteralType struct {
	TypeParameters []TypeAnnotation // nil when not generic
	Parameters     TypeFunctionParameters
	ReturnType     TypeAnnotation
	Span           Span
}

func (n *FunctionLiteralType) typeAnnotationNode() {}
func (n *FunctionLiteralType) GetSpan() Span       { return n.Span }
func (n *FunctionLiteralType) String() string {
	var b strings.Builder
	if len(n.TypeParameters) > 0 {
		parts := make([]string, len(n.TypeParameters))
		for i, tp := range n.TypeParameters {
			parts[i] = tp.String()
		}
		b.WriteString("<" + strings.Join(parts, ", ") + ">")
	}
	b.WriteString(n.Parameters.String())
	b.WriteString(" => ")
	b.WriteString(n.ReturnType.String())
	return b.String()
}

// ConstructorLiteralType has the identical shape of FunctionLiteralType
// with a leading `new` keyword (spec.md §3).
type ConstructorLiteralType struct {
	TypeParameters []TypeAnnotation
	Parameters     TypeFunctionParameters
	ReturnType     TypeAnnotation
	Span           Span
}

func (n *ConstructorLiteralType) typeAnnotationNode() {}
func (n *ConstructorLiteralType) GetSpan() Span       { return n.Span }
func (n *ConstructorLiteralType) String() string {
	var b strings.Builder
	b.WriteString("new ")
	if len(n.TypeParameters) > 0 {
		parts := make([]string, len(n.TypeParameters))
		for i, tp := range n.TypeParameters {
			parts[i] = tp.String()
		}
		b.WriteString("<" + strings.Join(parts, ", ") + ">")
	}
	b.WriteString(n.Parameters.String())
	b.WriteString(" => ")
	b.WriteString(n.ReturnType.String())
	return b.String()
}

// ObjectMember is one member of an ObjectLiteralType's interface body.
type ObjectMember struct {
	Name     string
	Type     TypeAnnotation
	Optional bool
	Readonly bool
	Span     Span
}

func (m ObjectMember) String() string {
	var b strings.Builder
	if m.Readonly {
		b.WriteString("readonly ")
	}
	b.WriteString(m.Name)
	if m.Optional {
		b.WriteString("?")
	}
	b.WriteString(": ")
	b.WriteString(m.Type.String())
	return b.String()
}

// ObjectLiteralType is an inline interface-shaped object type.
type ObjectLiteralType struct {
	Members []ObjectMember
	Span    Span
}

func (n *ObjectLiteralType) typeAnnotationNode() {}
func (n *ObjectLiteralType) GetSpan() Span       { return n.Span }
func (n *ObjectLiteralType) String() string {
	parts := make([]string, len(n.Members))
	for i, m := range n.Members {
		parts[i] = m.String()
	}
	return "{ " + strings.Join(parts, "; ") + " }"
}

// TemplateLiteralPart is one piece of a template literal type: either
// a static text chunk or an interpolated binder.
type TemplateLiteralPart interface {
	templateLiteralPartNode()
	String() string
}

// StaticPart is a literal text chunk of a template literal type.
type StaticPart struct {
	Value string
}

func (StaticPart) templateLiteralPartNode() {}
func (p StaticPart) String() string         { return p.Value }

// DynamicPart is an interpolated `${...}` binder of a template
// literal type.
type DynamicPart struct {
	Binder AnnotationWithBinder
}

func (DynamicPart) templateLiteralPartNode() {}
func (p DynamicPart) String() string         { return "${" + p.Binder.String() + "}" }

// TemplateLiteralType alternates static chunks and dynamic parts.
type TemplateLiteralType struct {
	Parts []TemplateLiteralPart
	Span  Span
}

func (n *TemplateLiteralType) typeAnnotationNode() {}
func (n *TemplateLiteralType) GetSpan() Span       { return n.Span }
func (n *TemplateLiteralType) String() string {
	var b strings.Builder
	b.WriteString("`")
	for _, p := range n.Parts {
		b.WriteString(p.String())
	}
	b.WriteString("`")
	return b.String()
}

// ReadonlyType wraps `readonly Inner`.
type ReadonlyType struct {
	Inner TypeAnnotation
	Span  Span
}

func (n *ReadonlyType) typeAnnotationNode() {}
func (n *ReadonlyType) GetSpan() Span       { return n.Span }
func (n *ReadonlyType) String() string      { return "readonly " + n.Inner.String() }

// IndexType is `On[With]`, e.g. `T["key"]`.
type IndexType struct {
	On   TypeAnnotation
	With TypeAnnotation
	Span Span
}

func (n *IndexType) typeAnnotationNode() {}
func (n *IndexType) GetSpan() Span       { return n.Span }
func (n *IndexType) String() string      { return n.On.String() + "[" + n.With.String() + "]" }

// KeyOfType wraps `keyof Inner`.
type KeyOfType struct {
	Inner TypeAnnotation
	Span  Span
}

func (n *KeyOfType) typeAnnotationNode() {}
func (n *KeyOfType) GetSpan() Span       { return n.Span }
func (n *KeyOfType) String() string      { return "keyof " + n.Inner.String() }

// ParenthesizedType is `(Inner)` used to disambiguate precedence.
type ParenthesizedType struct {
	Inner TypeAnnotation
	Span  Span
}

func (n *ParenthesizedType) typeAnnotationNode() {}
func (n *ParenthesizedType) GetSpan() Span       { return n.Span }
func (n *ParenthesizedType) String() string      { return "(" + n.Inner.String() + ")" }

// TypeCondition is the condition half of a Conditional type:
// `T extends U` or `T is U`.
type TypeCondition interface {
	typeConditionNode()
	String() string
}

// ExtendsCondition is `Type extends Extends`.
type ExtendsCondition struct {
	Type    TypeAnnotation
	Extends TypeAnnotation
}

func (ExtendsCondition) typeConditionNode() {}
func (c ExtendsCondition) String() string   { return c.Type.String() + " extends " + c.Extends.String() }

// IsCondition is `Type is Is`.
type IsCondition struct {
	Type TypeAnnotation
	Is   TypeAnnotation
}

func (IsCondition) typeConditionNode() {}
func (c IsCondition) String() string   { return c.Type.String() + " is " + c.Is.String() }

// TypeConditionResult is one branch of a Conditional type: either a
// plain reference or an `infer` binding.
type TypeConditionResult interface {
	typeConditionResultNode()
	String() string
}

// InferResult is `infer T` inside a conditional-type branch.
type InferResult struct {
	Type TypeAnnotation
}

func (InferResult) typeConditionResultNode() {}
func (r InferResult) String() string         { return "infer " + r.Type.String() }

// ReferenceResult is a plain type reference used as a conditional-type
// branch.
type ReferenceResult struct {
	Type TypeAnnotation
}

func (ReferenceResult) typeConditionResultNode() {}
func (r ReferenceResult) String() string         { return r.Type.String() }

// ConditionalType is `Condition ? ResolveTrue : ResolveFalse`.
type ConditionalType struct {
	Condition    TypeCondition
	ResolveTrue  TypeConditionResult
	ResolveFalse TypeConditionResult
	Span         Span
}

func (n *ConditionalType) typeAnnotationNode() {}
func (n *ConditionalType) GetSpan() Span       { return n.Span }
func (n *ConditionalType) String() string {
	return n.Condition.String() + " ? " + n.ResolveTrue.String() + " : " + n.ResolveFalse.String()
}

// DecoratedType wraps `@Decorator Inner`.
type DecoratedType struct {
	Decorator string
	Inner     TypeAnnotation
	Span      Span
}

func (n *DecoratedType) typeAnnotationNode() {}
func (n *DecoratedType) GetSpan() Span       { return n.Span }
func (n *DecoratedType) String() string      { return "@" + n.Decorator + " " + n.Inner.String() }

// MarkerType is a zero-length in-grammar placeholder emitted only
// under partial-syntax parsing (spec.md §4.1). It is not an error.
type MarkerType struct {
	MarkerID int
	Span     Span
}

func (n *MarkerType) typeAnnotationNode() {}
func (n *MarkerType) GetSpan() Span       { return n.Span }
func (n *MarkerType) String() string      { return "" }

// ---------------------------------------------------------------------
// Quote

// Quote records which quote character delimited a string literal.
type Quote int

const (
	QuoteDouble Quote = iota
	QuoteSingle
)
