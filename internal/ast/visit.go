package ast

// Visitor receives callbacks during a read-only walk. Any method may
// be left nil; Visit skips callbacks that are nil. Dispatch is by
// plain type switch rather than reflection, matching the pack's
// established traversal style.
type Visitor struct {
	OnBlock                   func(*Block)
	OnStatementOrDeclaration  func(StatementOrDeclaration)
	OnTypeAnnotation          func(TypeAnnotation)
}

// MutatingVisitor receives callbacks during a mutating walk; each
// callback may replace the node in place by returning a non-nil
// replacement (nil means "keep as-is").
type MutatingVisitor struct {
	OnStatementOrDeclaration func(StatementOrDeclaration) StatementOrDeclaration
	OnTypeAnnotation         func(TypeAnnotation) TypeAnnotation
}

// Visit walks b and its items. Per spec.md §4.3, the visitor receives
// the block first, then each item — forward, unless
// opts.ReverseStatements is set, in which case items are visited in
// reverse. Nested blocks are only descended into when
// opts.VisitNestedBlocks is set (or the walk started at the top, i.e.
// chain has not yet seen any block — modeled here by the inChain
// parameter).
func Visit(b *Block, v Visitor, opts VisitOptions) {
	visitBlock(b, v, opts, false)
}

func visitBlock(b *Block, v Visitor, opts VisitOptions, inChain bool) {
	if b == nil {
		return
	}
	if v.OnBlock != nil {
		v.OnBlock(b)
	}
	if inChain && !opts.VisitNestedBlocks {
		return
	}
	visitItems(b.Items, v, opts, true)
}

func visitItems(items []StatementOrDeclaration, v Visitor, opts VisitOptions, inChain bool) {
	if opts.ReverseStatements {
		for i := len(items) - 1; i >= 0; i-- {
			visitItem(items[i], v, opts, inChain)
		}
		return
	}
	for _, it := range items {
		visitItem(it, v, opts, inChain)
	}
}

func visitItem(it StatementOrDeclaration, v Visitor, opts VisitOptions, inChain bool) {
	if v.OnStatementOrDeclaration != nil {
		v.OnStatementOrDeclaration(it)
	}
	switch n := it.(type) {
	case *StatementItem:
		if bs, ok := n.Stmt.(*BlockStatement); ok {
			visitBlock(bs.Block, v, opts, inChain)
		}
	case *DeclarationItem:
		if fn, ok := n.Decl.(*FunctionDeclaration); ok {
			visitBlock(fn.Body, v, opts, inChain)
		}
	}
}

// VisitMut walks b and its items, allowing in-place replacement.
// Decision (DESIGN.md "Open Question decisions"): this uses the SAME
// forward/reverse rule as the read-only Visit above, governed
// identically by opts.ReverseStatements — not the inverted rule the
// original implementation had, which spec.md §9 flags as a likely bug
// and invites a REDESIGN FLAG correction for.
func VisitMut(b *Block, v MutatingVisitor, opts VisitOptions) {
	if b == nil {
		return
	}
	indices := make([]int, len(b.Items))
	for i := range indices {
		indices[i] = i
	}
	if opts.ReverseStatements {
		for i, j := 0, len(indices)-1; i < j; i, j = i+1, j-1 {
			indices[i], indices[j] = indices[j], indices[i]
		}
	}
	for _, i := range indices {
		it := b.Items[i]
		if v.OnStatementOrDeclaration != nil {
			if replacement := v.OnStatementOrDeclaration(it); replacement != nil {
				it = replacement
				b.Items[i] = replacement
			}
		}
		if ds, ok := it.(*StatementItem); ok {
			if bs, ok := ds.Stmt.(*BlockStatement); ok && opts.VisitNestedBlocks {
				VisitMut(bs.Block, v, opts)
			}
		}
	}
}

// VisitTypeAnnotation walks t and every child TypeAnnotation,
// depth-first, invoking v.OnTypeAnnotation for each node visited
// (including t itself).
func VisitTypeAnnotation(t TypeAnnotation, v Visitor) {
	if t == nil {
		return
	}
	if v.OnTypeAnnotation != nil {
		v.OnTypeAnnotation(t)
	}
	switch n := t.(type) {
	case *GenericNameType:
		for _, a := range n.Arguments {
			VisitTypeAnnotation(a, v)
		}
	case *UnionType:
		for _, m := range n.Members {
			VisitTypeAnnotation(m, v)
		}
	case *IntersectionType:
		for _, m := range n.Members {
			VisitTypeAnnotation(m, v)
		}
	case *ArrayLiteralType:
		VisitTypeAnnotation(n.Inner, v)
	case *TupleLiteralType:
		for _, e := range n.Elements {
			VisitTypeAnnotation(e.Binder.Type(), v)
		}
	case *ReadonlyType:
		VisitTypeAnnotation(n.Inner, v)
	case *KeyOfType:
		VisitTypeAnnotation(n.Inner, v)
	case *ParenthesizedType:
		VisitTypeAnnotation(n.Inner, v)
	case *IndexType:
		VisitTypeAnnotation(n.On, v)
		VisitTypeAnnotation(n.With, v)
	case *DecoratedType:
		VisitTypeAnnotation(n.Inner, v)
	case *FunctionLiteralType:
		for _, p := range n.Parameters.Parameters {
			VisitTypeAnnotation(p.Type, v)
		}
		VisitTypeAnnotation(n.ReturnType, v)
	case *ConstructorLiteralType:
		for _, p := range n.Parameters.Parameters {
			VisitTypeAnnotation(p.Type, v)
		}
		VisitTypeAnnotation(n.ReturnType, v)
	case *ObjectLiteralType:
		for _, m := range n.Members {
			VisitTypeAnnotation(m.Type, v)
		}
	}
}
