package acg

import (
	"fmt"
	"strings"

	"github.com/nihei9/acgtag/grammar"
)

// footVar is the reserved binder an auxiliary term threads its adjoined-into
// subtree through.
const footVar = "lvar"

// identityTerm maps the no-adjunction constants I_<N> and the empty string.
const identityTerm = "lambda lvar. lvar"

// realizeTree builds the closed lambda term that reconstructs a tree from
// its combinatorial sites. The binder order mirrors the argument order of
// the inferred type: adjunction-site variables, substitution-site variables
// (a non-nonadjoining footnode binds here, as an adjunction site at the
// foot), then the reserved foot binder for auxiliary trees. Variable names
// live in a side table keyed by node, so the shared grammar tree is never
// annotated or copied.
func realizeTree(tree *grammar.Tree, initial bool) string {
	vars := map[*grammar.Tree]string{}
	var interior []string
	var substitution []string

	// Every nonterminal node consumes one counter value, whether or not its
	// variable ends up bound; terms stay stable when a nonadjoining node
	// appears between two sites.
	i := 0
	var allocate func(t *grammar.Tree)
	allocate = func(t *grammar.Tree) {
		if t.IsNonterminal() {
			name := fmt.Sprintf("lvar%v", i)
			i++
			vars[t] = name
			if len(t.Children) > 0 {
				if !t.Nonadjoining {
					interior = append(interior, name)
				}
			} else if !t.Nonadjoining {
				substitution = append(substitution, name)
			}
		}
		for _, c := range t.Children {
			allocate(c)
		}
	}
	allocate(tree)

	binders := append(interior, substitution...)
	if !initial {
		binders = append(binders, footVar)
	}

	var construct func(t *grammar.Tree) string
	construct = func(t *grammar.Tree) string {
		if !t.IsNonterminal() {
			return t.Root
		}
		if t.Footnode {
			if t.Nonadjoining {
				return footVar
			}
			return fmt.Sprintf("%v %v", vars[t], footVar)
		}
		children := make([]string, len(t.Children))
		for j, c := range t.Children {
			children[j] = "(" + construct(c) + ")"
		}
		app := fmt.Sprintf("(%v_%v %v)", t.Root, len(children), strings.Join(children, " "))
		if t.Nonadjoining {
			return app
		}
		return fmt.Sprintf("%v %v", vars[t], app)
	}

	return fmt.Sprintf("lambda %v. %v", strings.Join(binders, " "), construct(tree))
}

// concatTerm is the yield of an arity-length tree constructor: left-to-right
// concatenation of the children's yields.
func concatTerm(arity int) string {
	variables := make([]string, arity)
	for i := range variables {
		variables[i] = fmt.Sprintf("x%v", i)
	}
	return fmt.Sprintf("lambda %v. %v", strings.Join(variables, " "), strings.Join(variables, " + "))
}
