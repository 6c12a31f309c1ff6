package acg

import "github.com/nihei9/acgtag/grammar"

// inferType derives the ACG type of an elementary tree: one argument type
// per combinatorial site, then the result type. Adjunction sites come
// before substitution sites, each group in depth-first pre-order.
func inferType(tree *grammar.Tree, initial bool) typeExpr {
	var adjunction []typeExpr
	var substitution []typeExpr
	footnodeIsNonadjoining := false

	var traverse func(t *grammar.Tree)
	traverse = func(t *grammar.Tree) {
		if t.IsNonterminal() && !t.Footnode {
			if len(t.Children) > 0 {
				if !t.Nonadjoining {
					adjunction = append(adjunction, adjunctionType(t.Root))
				}
			} else if !t.Nonadjoining {
				substitution = append(substitution, substitutionType(t.Root))
			}
		}
		for _, c := range t.Children {
			traverse(c)
		}
		if t.Footnode && t.Nonadjoining {
			footnodeIsNonadjoining = true
		}
	}
	traverse(tree)

	var result typeExpr
	switch {
	case initial:
		result = substitutionType(tree.Root)
	case footnodeIsNonadjoining:
		result = adjunctionType(tree.Root)
	default:
		// An auxiliary tree that may itself be adjoined into: an
		// endomorphism on its root category.
		result = newArrow(adjunctionType(tree.Root), adjunctionType(tree.Root))
	}

	types := append(adjunction, substitution...)
	types = append(types, result)
	return arrowChain(types...)
}
