package acg

import (
	"strings"
	"testing"

	"github.com/nihei9/acgtag/grammar"
	"github.com/nihei9/acgtag/spec"
)

// The engine tests build trees directly so they can also exercise shapes the
// input validator rejects, like multi-footnode auxiliary trees.

func nonterminalNode(symbol string, children ...*grammar.Tree) *grammar.Tree {
	return &grammar.Tree{
		Root:     symbol,
		Kind:     grammar.SymbolKindNonTerminal,
		Children: children,
	}
}

func terminalNode(symbol string) *grammar.Tree {
	return &grammar.Tree{
		Root: symbol,
		Kind: grammar.SymbolKindTerminal,
	}
}

func footNode(symbol string) *grammar.Tree {
	return &grammar.Tree{
		Root:     symbol,
		Kind:     grammar.SymbolKindNonTerminal,
		Footnode: true,
	}
}

func nonadjoining(t *grammar.Tree) *grammar.Tree {
	t.Nonadjoining = true
	return t
}

func genTAG(t *testing.T, src string) *grammar.TAG {
	t.Helper()

	file, err := spec.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	b := grammar.Builder{
		File: file,
	}
	tag, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	return tag
}
