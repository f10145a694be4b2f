package ast

import "strings"

// Expression is the value-level grammar that backs variable
// declaration initializers, call arguments, and statement bodies.
// Expression parsing sits outside this repository's three hard
// subsystems (spec.md §1); this is a minimal, supplementary grammar
// sufficient to drive C5/C6 end to end.
type Expression interface {
	Node
	exprNode()
}

// Identifier is a bare name reference.
type Identifier struct {
	Name string
	Span Span
}

func (n *Identifier) exprNode()       {}
func (n *Identifier) GetSpan() Span   { return n.Span }
func (n *Identifier) String() string  { return n.Name }

// NumberLiteralExpr is a numeric literal expression.
type NumberLiteralExpr struct {
	Repr string
	Span Span
}

func (n *NumberLiteralExpr) exprNode()      {}
func (n *NumberLiteralExpr) GetSpan() Span  { return n.Span }
func (n *NumberLiteralExpr) String() string { return n.Repr }

// StringLiteralExpr is a string literal expression.
type StringLiteralExpr struct {
	Value string
	Quote Quote
	Span  Span
}

func (n *StringLiteralExpr) exprNode()     {}
func (n *StringLiteralExpr) GetSpan() Span { return n.Span }
func (n *StringLiteralExpr) String() string {
	q := byte('"')
	if n.Quote == QuoteSingle {
		q = '\''
	}
	return string(q) + n.Value + string(q)
}

// BooleanLiteralExpr is `true` or `false`.
type BooleanLiteralExpr struct {
	Value bool
	Span  Span
}

func (n *BooleanLiteralExpr) exprNode()     {}
func (n *BooleanLiteralExpr) GetSpan() Span { return n.Span }
func (n *BooleanLiteralExpr) String() string {
	if n.Value {
		return "true"
	}
	return "false"
}

// ArrayExpr is `[elements...]`.
type ArrayExpr struct {
	Elements []Expression
	Span     Span
}

func (n *ArrayExpr) exprNode()     {}
func (n *ArrayExpr) GetSpan() Span { return n.Span }
func (n *ArrayExpr) String() string {
	parts := make([]string, len(n.Elements))
	for i, e := range n.Elements {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// ObjectProperty is one `key: value` pair of an ObjectExpr.
type ObjectProperty struct {
	Key   string
	Value Expression
}

// ObjectExpr is `{ key: value, ... }`.
type ObjectExpr struct {
	Properties []ObjectProperty
	Span       Span
}

func (n *ObjectExpr) exprNode()     {}
func (n *ObjectExpr) GetSpan() Span { return n.Span }
func (n *ObjectExpr) String() string {
	parts := make([]string, len(n.Properties))
	for i, p := range n.Properties {
		parts[i] = p.Key + ": " + p.Value.String()
	}
	return "{ " + strings.Join(parts, ", ") + " }"
}

// MemberExpr is `Object.Property`.
type MemberExpr struct {
	Object   Expression
	Property string
	Span     Span
}

func (n *MemberExpr) exprNode()     {}
func (n *MemberExpr) GetSpan() Span { return n.Span }
func (n *MemberExpr) String() string {
	return n.Object.String() + "." + n.Property
}

// CallExpr is `Callee(Arguments...)`.
type CallExpr struct {
	Callee    Expression
	Arguments []Expression
	Span      Span
}

func (n *CallExpr) exprNode()     {}
func (n *CallExpr) GetSpan() Span { return n.Span }
func (n *CallExpr) String() string {
	parts := make([]string, len(n.Arguments))
	for i, a := range n.Arguments {
		parts[i] = a.String()
	}
	return n.Callee.String() + "(" + strings.Join(parts, ", ") + ")"
}

// BinaryExpr is `Left Operator Right`.
type BinaryExpr struct {
	Operator string
	Left     Expression
	Right    Expression
	Span     Span
}

func (n *BinaryExpr) exprNode()     {}
func (n *BinaryExpr) GetSpan() Span { return n.Span }
func (n *BinaryExpr) String() string {
	return n.Left.String() + " " + n.Operator + " " + n.Right.String()
}

// ParenthesizedExpr is `(Inner)`.
type ParenthesizedExpr struct {
	Inner Expression
	Span  Span
}

func (n *ParenthesizedExpr) exprNode()     {}
func (n *ParenthesizedExpr) GetSpan() Span { return n.Span }
func (n *ParenthesizedExpr) String() string {
	return "(" + n.Inner.String() + ")"
}
