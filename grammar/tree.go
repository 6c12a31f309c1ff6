package grammar

import (
	"fmt"
	"strings"
)

type SymbolKind string

const (
	SymbolKindTerminal    = SymbolKind("terminal")
	SymbolKindNonTerminal = SymbolKind("non-terminal")
)

func (k SymbolKind) String() string {
	return string(k)
}

// Tree is a node of an elementary tree. Trees are built once by the Builder
// and never mutated afterwards; the realization engine keeps its per-node
// annotations in a side table instead of on the nodes.
type Tree struct {
	Root         string
	Kind         SymbolKind
	Footnode     bool
	Nonadjoining bool
	Children     []*Tree

	// Identifier is assigned to whole-tree roots only: C_TI<n> for initial
	// trees and C_TA<n> for auxiliary trees, numbered by one shared counter.
	Identifier string
}

func (t *Tree) IsNonterminal() bool {
	return t.Kind == SymbolKindNonTerminal
}

// String renders the tree back into its source notation.
func (t *Tree) String() string {
	var b strings.Builder
	b.WriteString(t.Root)
	if t.Footnode {
		b.WriteString("*")
	}
	if t.Nonadjoining {
		b.WriteString("_NA")
	}
	for _, c := range t.Children {
		fmt.Fprintf(&b, " (%v)", c)
	}
	return b.String()
}
