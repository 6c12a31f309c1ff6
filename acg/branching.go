package acg

import (
	"fmt"

	"github.com/nihei9/acgtag/grammar"
)

type treeConstructor struct {
	symbol string
	arity  int
}

// deriveTreeConstructors computes, for every nonterminal, the maximum number
// of children any node labeled with it has across the whole grammar, and
// returns the constructor family <N>_1 .. <N>_max per nonterminal in
// declaration order. Constructors are emitted once per distinct arity in
// use, so the signature grows with the grammar's shape only.
func deriveTreeConstructors(tag *grammar.TAG) []*treeConstructor {
	branching := map[string]int{}
	for _, n := range tag.Nonterminals {
		branching[n] = 0
	}

	var traverse func(t *grammar.Tree)
	traverse = func(t *grammar.Tree) {
		if t.IsNonterminal() {
			if len(t.Children) > branching[t.Root] {
				branching[t.Root] = len(t.Children)
			}
			for _, c := range t.Children {
				traverse(c)
			}
		}
	}
	for _, t := range tag.Initials {
		traverse(t)
	}
	for _, t := range tag.Auxiliaries {
		traverse(t)
	}

	var constructors []*treeConstructor
	for _, n := range tag.Nonterminals {
		for arity := 1; arity <= branching[n]; arity++ {
			constructors = append(constructors, &treeConstructor{
				symbol: fmt.Sprintf("%v_%v", n, arity),
				arity:  arity,
			})
		}
	}
	return constructors
}
