package grammar

import (
	"fmt"

	verr "github.com/nihei9/acgtag/error"
	"github.com/nihei9/acgtag/spec"
)

// TAG is the validated, numbered form of a TAG description. It is read-only
// once Build returns it.
type TAG struct {
	Terminals     []string
	Nonterminals  []string
	Initials      []*Tree
	Auxiliaries   []*Tree
	Distinguished string
}

type Builder struct {
	File *spec.File

	errs verr.SpecErrors
}

func (b *Builder) Build() (*TAG, error) {
	symTab := b.genSymbolTable(b.File)
	if len(b.errs) > 0 {
		return nil, b.errs
	}

	initials := b.genTrees(b.File.Initials, symTab, false)
	auxiliaries := b.genTrees(b.File.Auxiliaries, symTab, true)

	if b.File.Distinguished != "" {
		if kind, ok := symTab[b.File.Distinguished]; !ok || kind != SymbolKindNonTerminal {
			b.errs = append(b.errs, &verr.SpecError{
				Cause:  semErrUndefinedStart,
				Detail: b.File.Distinguished,
			})
		}
	}

	if len(b.errs) > 0 {
		return nil, b.errs
	}

	tag := &TAG{
		Terminals:     b.File.Terminals,
		Nonterminals:  b.File.Nonterminals,
		Initials:      initials,
		Auxiliaries:   auxiliaries,
		Distinguished: b.File.Distinguished,
	}
	numberTrees(tag)
	return tag, nil
}

func (b *Builder) genSymbolTable(file *spec.File) map[string]SymbolKind {
	symTab := map[string]SymbolKind{}
	for _, t := range file.Terminals {
		if spec.IsNonterminalSymbol(t) {
			b.errs = append(b.errs, &verr.SpecError{
				Cause:  semErrTerminalCase,
				Detail: t,
			})
			continue
		}
		if _, ok := symTab[t]; ok {
			b.errs = append(b.errs, &verr.SpecError{
				Cause:  semErrDuplicateTerminal,
				Detail: t,
			})
			continue
		}
		symTab[t] = SymbolKindTerminal
	}
	for _, n := range file.Nonterminals {
		if !spec.IsNonterminalSymbol(n) {
			b.errs = append(b.errs, &verr.SpecError{
				Cause:  semErrNonTerminalCase,
				Detail: n,
			})
			continue
		}
		if _, ok := symTab[n]; ok {
			b.errs = append(b.errs, &verr.SpecError{
				Cause:  semErrDuplicateNonTerminal,
				Detail: n,
			})
			continue
		}
		symTab[n] = SymbolKindNonTerminal
	}
	return symTab
}

func (b *Builder) genTrees(nodes []*spec.TreeNode, symTab map[string]SymbolKind, auxiliary bool) []*Tree {
	trees := make([]*Tree, len(nodes))
	for i, node := range nodes {
		tree := b.genTree(node, symTab)
		b.checkFootnodes(tree, auxiliary)
		trees[i] = tree
	}
	return trees
}

func (b *Builder) genTree(node *spec.TreeNode, symTab map[string]SymbolKind) *Tree {
	if _, ok := symTab[node.Symbol]; !ok {
		b.errs = append(b.errs, &verr.SpecError{
			Cause:  semErrUndefinedSym,
			Detail: node.Symbol,
		})
	}
	kind := SymbolKindTerminal
	if spec.IsNonterminalSymbol(node.Symbol) {
		kind = SymbolKindNonTerminal
	}
	tree := &Tree{
		Root:         node.Symbol,
		Kind:         kind,
		Footnode:     node.Footnode,
		Nonadjoining: node.Nonadjoining,
	}
	if node.Footnode {
		if len(node.Children) > 0 {
			b.errs = append(b.errs, &verr.SpecError{
				Cause:  semErrFootnodeNotLeaf,
				Detail: node.Symbol,
			})
		}
		if kind != SymbolKindNonTerminal {
			b.errs = append(b.errs, &verr.SpecError{
				Cause:  semErrFootnodeTerminal,
				Detail: node.Symbol,
			})
		}
	}
	if len(node.Children) > 0 {
		tree.Children = make([]*Tree, len(node.Children))
		for i, c := range node.Children {
			tree.Children[i] = b.genTree(c, symTab)
		}
	}
	return tree
}

func (b *Builder) checkFootnodes(tree *Tree, auxiliary bool) {
	count := countFootnodes(tree)
	if auxiliary {
		if count != 1 {
			b.errs = append(b.errs, &verr.SpecError{
				Cause:  semErrFootnodeCount,
				Detail: tree.String(),
			})
		}
		return
	}
	if count > 0 {
		b.errs = append(b.errs, &verr.SpecError{
			Cause:  semErrFootInInitial,
			Detail: tree.String(),
		})
	}
}

func countFootnodes(tree *Tree) int {
	count := 0
	if tree.Footnode {
		count++
	}
	for _, c := range tree.Children {
		count += countFootnodes(c)
	}
	return count
}

// numberTrees assigns each tree its constant identifier. Initial and
// auxiliary trees share one counter, initials first.
func numberTrees(tag *TAG) {
	count := 0
	for _, tree := range tag.Initials {
		tree.Identifier = fmt.Sprintf("C_TI%v", count)
		count++
	}
	for _, tree := range tag.Auxiliaries {
		tree.Identifier = fmt.Sprintf("C_TA%v", count)
		count++
	}
}
