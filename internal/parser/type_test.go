package parser

import (
	"testing"

	"github.com/tsxcheck/tsxcheck/internal/ast"
)

// The six concrete scenarios of spec.md §8: literal input to expected
// AST shape.

func TestParseTypeAnnotationScenarios(t *testing.T) {
	t.Run("bare name", func(t *testing.T) {
		ty, err := ParseTypeAnnotationString("something", DefaultParseOptions())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		n, ok := ty.(*ast.NameType)
		if !ok {
			t.Fatalf("got %T, want *ast.NameType", ty)
		}
		if n.Name != "something" {
			t.Fatalf("Name = %q", n.Name)
		}
		if n.Span.Start != 0 || n.Span.End != 9 {
			t.Fatalf("Span = %+v, want [0,9)", n.Span)
		}
	})

	t.Run("common name", func(t *testing.T) {
		ty, err := ParseTypeAnnotationString("string", DefaultParseOptions())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		n, ok := ty.(*ast.CommonNameType)
		if !ok {
			t.Fatalf("got %T, want *ast.CommonNameType", ty)
		}
		if n.Name != ast.CommonString {
			t.Fatalf("Name = %v", n.Name)
		}
		if n.Span.Start != 0 || n.Span.End != 6 {
			t.Fatalf("Span = %+v, want [0,6)", n.Span)
		}
	})

	t.Run("generic name", func(t *testing.T) {
		ty, err := ParseTypeAnnotationString("Array<string>", DefaultParseOptions())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		n, ok := ty.(*ast.GenericNameType)
		if !ok {
			t.Fatalf("got %T, want *ast.GenericNameType", ty)
		}
		if n.Name != "Array" {
			t.Fatalf("Name = %q", n.Name)
		}
		if len(n.Arguments) != 1 {
			t.Fatalf("len(Arguments) = %d, want 1", len(n.Arguments))
		}
		arg, ok := n.Arguments[0].(*ast.CommonNameType)
		if !ok || arg.Name != ast.CommonString {
			t.Fatalf("Arguments[0] = %#v", n.Arguments[0])
		}
		if arg.Span.Start != 6 || arg.Span.End != 12 {
			t.Fatalf("Arguments[0].Span = %+v, want [6,12)", arg.Span)
		}
		if n.Span.Start != 0 || n.Span.End != 13 {
			t.Fatalf("Span = %+v, want [0,13)", n.Span)
		}
	})

	t.Run("union", func(t *testing.T) {
		ty, err := ParseTypeAnnotationString("string | number", DefaultParseOptions())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		u, ok := ty.(*ast.UnionType)
		if !ok {
			t.Fatalf("got %T, want *ast.UnionType", ty)
		}
		if len(u.Members) != 2 {
			t.Fatalf("len(Members) = %d, want 2", len(u.Members))
		}
		left, ok := u.Members[0].(*ast.CommonNameType)
		if !ok || left.Name != ast.CommonString || left.Span.Start != 0 || left.Span.End != 6 {
			t.Fatalf("Members[0] = %#v", u.Members[0])
		}
		right, ok := u.Members[1].(*ast.CommonNameType)
		if !ok || right.Name != ast.CommonNumber || right.Span.Start != 9 || right.Span.End != 15 {
			t.Fatalf("Members[1] = %#v", u.Members[1])
		}
		if u.Span.Start != 0 || u.Span.End != 15 {
			t.Fatalf("Span = %+v, want [0,15)", u.Span)
		}
	})

	t.Run("tuple with named element", func(t *testing.T) {
		ty, err := ParseTypeAnnotationString("[number, x: string]", DefaultParseOptions())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		tup, ok := ty.(*ast.TupleLiteralType)
		if !ok {
			t.Fatalf("got %T, want *ast.TupleLiteralType", ty)
		}
		if len(tup.Elements) != 2 {
			t.Fatalf("len(Elements) = %d, want 2", len(tup.Elements))
		}
		first := tup.Elements[0]
		if first.Spread != ast.NonSpread {
			t.Fatalf("Elements[0].Spread = %v", first.Spread)
		}
		noAnn, ok := first.Binder.(*ast.NoAnnotationBinder)
		if !ok {
			t.Fatalf("Elements[0].Binder = %T, want *ast.NoAnnotationBinder", first.Binder)
		}
		num, ok := noAnn.Ty.(*ast.CommonNameType)
		if !ok || num.Name != ast.CommonNumber || num.Span.Start != 1 || num.Span.End != 7 {
			t.Fatalf("Elements[0].Binder.Ty = %#v", noAnn.Ty)
		}
		second := tup.Elements[1]
		annotated, ok := second.Binder.(*ast.AnnotatedBinder)
		if !ok || annotated.Name != "x" {
			t.Fatalf("Elements[1].Binder = %#v", second.Binder)
		}
		str, ok := annotated.Ty.(*ast.CommonNameType)
		if !ok || str.Name != ast.CommonString || str.Span.Start != 12 || str.Span.End != 18 {
			t.Fatalf("Elements[1].Binder.Ty = %#v", annotated.Ty)
		}
		if tup.Span.Start != 0 || tup.Span.End != 19 {
			t.Fatalf("Span = %+v, want [0,19)", tup.Span)
		}
	})

	t.Run("template literal", func(t *testing.T) {
		ty, err := ParseTypeAnnotationString("`test-${X}`", DefaultParseOptions())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		tmpl, ok := ty.(*ast.TemplateLiteralType)
		if !ok {
			t.Fatalf("got %T, want *ast.TemplateLiteralType", ty)
		}
		if len(tmpl.Parts) != 2 {
			t.Fatalf("len(Parts) = %d, want 2", len(tmpl.Parts))
		}
		static, ok := tmpl.Parts[0].(ast.StaticPart)
		if !ok || static.Value != "test-" {
			t.Fatalf("Parts[0] = %#v", tmpl.Parts[0])
		}
		dynamic, ok := tmpl.Parts[1].(ast.DynamicPart)
		if !ok {
			t.Fatalf("Parts[1] = %#v, want ast.DynamicPart", tmpl.Parts[1])
		}
		noAnn, ok := dynamic.Binder.(*ast.NoAnnotationBinder)
		if !ok {
			t.Fatalf("Parts[1].Binder = %T, want *ast.NoAnnotationBinder", dynamic.Binder)
		}
		name, ok := noAnn.Ty.(*ast.NameType)
		if !ok || name.Name != "X" || name.Span.Start != 8 || name.Span.End != 9 {
			t.Fatalf("Parts[1].Binder.Ty = %#v", noAnn.Ty)
		}
	})
}

// Union/intersection flattening (spec.md §8): never a Union nested
// inside a Union.
func TestParseTypeAnnotationUnionFlattening(t *testing.T) {
	ty, err := ParseTypeAnnotationString("A | B | C", DefaultParseOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	u, ok := ty.(*ast.UnionType)
	if !ok {
		t.Fatalf("got %T, want *ast.UnionType", ty)
	}
	if len(u.Members) != 3 {
		t.Fatalf("len(Members) = %d, want 3 (flattened)", len(u.Members))
	}
	for _, m := range u.Members {
		if _, nested := m.(*ast.UnionType); nested {
			t.Fatalf("found nested Union member: %#v", m)
		}
	}
}

// Generic chevron regluing (spec.md §8): `>>` in the token stream must
// be split so the outer generic's close chevron still lands correctly.
func TestParseTypeAnnotationChevronRegluing(t *testing.T) {
	ty, err := ParseTypeAnnotationString("Array<Array<string>>", DefaultParseOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	outer, ok := ty.(*ast.GenericNameType)
	if !ok {
		t.Fatalf("got %T, want *ast.GenericNameType", ty)
	}
	if outer.Name != "Array" {
		t.Fatalf("outer.Name = %q", outer.Name)
	}
	if len(outer.Arguments) != 1 {
		t.Fatalf("len(outer.Arguments) = %d, want 1", len(outer.Arguments))
	}
	inner, ok := outer.Arguments[0].(*ast.GenericNameType)
	if !ok || inner.Name != "Array" {
		t.Fatalf("outer.Arguments[0] = %#v", outer.Arguments[0])
	}
	if len(inner.Arguments) != 1 {
		t.Fatalf("len(inner.Arguments) = %d, want 1", len(inner.Arguments))
	}
	if _, ok := inner.Arguments[0].(*ast.CommonNameType); !ok {
		t.Fatalf("inner.Arguments[0] = %#v", inner.Arguments[0])
	}
	// "Array<Array<string>>" is 20 bytes; the outer span must end at
	// the second '>', i.e. cover the whole input.
	if outer.Span.Start != 0 || outer.Span.End != len("Array<Array<string>>") {
		t.Fatalf("outer.Span = %+v", outer.Span)
	}
}

// Partial marker (spec.md §8): a `:` followed immediately by `,` under
// partial_syntax=true yields a zero-length Marker; under false it is
// an error.
func TestParseTypeAnnotationPartialMarker(t *testing.T) {
	opts := DefaultParseOptions()
	opts.PartialSyntax = true
	ty, err := ParseTypeAnnotationString(",", opts)
	if err != nil {
		t.Fatalf("unexpected error under partial_syntax=true: %v", err)
	}
	marker, ok := ty.(*ast.MarkerType)
	if !ok {
		t.Fatalf("got %T, want *ast.MarkerType", ty)
	}
	if marker.Span.Start != marker.Span.End {
		t.Fatalf("marker span not zero-length: %+v", marker.Span)
	}

	_, err = ParseTypeAnnotationString(",", DefaultParseOptions())
	if err == nil {
		t.Fatalf("expected error under partial_syntax=false")
	}
}

// Round-trip (spec.md §8): print then reparse yields an equal node
// modulo spans, for a representative sample across the type grammar.
func TestParseTypeAnnotationRoundTrip(t *testing.T) {
	samples := []string{
		"something",
		"string",
		"Array<string>",
		"string | number",
		"string & number",
		"readonly string[]",
		"keyof T",
		"[number, x: string]",
		"(a: string) => number",
	}
	for _, src := range samples {
		ty, err := ParseTypeAnnotationString(src, DefaultParseOptions())
		if err != nil {
			t.Fatalf("parse(%q): %v", src, err)
		}
		printed := ty.String()
		reparsed, err := ParseTypeAnnotationString(printed, DefaultParseOptions())
		if err != nil {
			t.Fatalf("reparse(%q) (printed from %q): %v", printed, src, err)
		}
		if reparsed.String() != printed {
			t.Fatalf("round-trip mismatch: %q -> %q -> %q", src, printed, reparsed.String())
		}
	}
}
