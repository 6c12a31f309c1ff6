package acg

import (
	"fmt"
	"io"

	"github.com/nihei9/acgtag/grammar"
)

const (
	sigNameDerivationTrees = "Derivation_trees"
	sigNameDerivedTrees    = "Derived_trees"
	sigNameStrings         = "Strings"

	lexNameAbs   = "Abs"
	lexNameYield = "Yield"
	lexNameFull  = "Full"
)

// lexiconBlock is either a lexicon with explicit mappings or a deferred
// composition.
type lexiconBlock interface {
	write(w io.Writer)
}

// ACG is the generated signature/lexicon set, held in emission order.
type ACG struct {
	signatures []*signature
	lexicons   []lexiconBlock
}

// Generate compiles a TAG into its ACG encoding. The block order is fixed
// by the type dependencies: the derivation-trees signature needs the
// per-tree types, the derived-trees signature needs the constructor
// arities, and the abstract lexicon needs both.
func Generate(tag *grammar.TAG) *ACG {
	constructors := deriveTreeConstructors(tag)
	return &ACG{
		signatures: []*signature{
			genDerivationTreesSignature(tag),
			genDerivedTreesSignature(tag, constructors),
			genStringsSignature(tag),
		},
		lexicons: []lexiconBlock{
			genAbsLexicon(tag),
			genYieldLexicon(tag, constructors),
			newComposedLexicon(lexNameFull, lexNameAbs, lexNameYield),
		},
	}
}

// genDerivationTreesSignature builds the abstract signature: a substitution
// and an adjunction category per nonterminal, one constant per elementary
// tree, and a no-adjunction constant I_<N> per nonterminal.
func genDerivationTreesSignature(tag *grammar.TAG) *signature {
	sig := newSignature(sigNameDerivationTrees)
	for _, n := range tag.Nonterminals {
		sig.addType(fmt.Sprintf("%v_S", n))
		sig.addType(fmt.Sprintf("%v_A", n))
	}
	for _, tree := range tag.Initials {
		sig.addConstant(tree.Identifier, inferType(tree, true))
	}
	for _, tree := range tag.Auxiliaries {
		sig.addConstant(tree.Identifier, inferType(tree, false))
	}
	for _, n := range tag.Nonterminals {
		sig.addConstant(fmt.Sprintf("I_%v", n), adjunctionType(n))
	}
	return sig
}

func genDerivedTreesSignature(tag *grammar.TAG, constructors []*treeConstructor) *signature {
	sig := newSignature(sigNameDerivedTrees)
	sig.addType(treeTypeName)
	for _, t := range tag.Terminals {
		sig.addConstant(t, treeType(1))
	}
	for _, c := range constructors {
		sig.addConstant(c.symbol, treeType(c.arity+1))
	}
	sig.addConstant("Empty", treeType(1))
	return sig
}

// genStringsSignature builds the string signature over continuation-style
// strings (string = o -> o), which makes concatenation O(1).
func genStringsSignature(tag *grammar.TAG) *signature {
	sig := newSignature(sigNameStrings)
	sig.addType("o")
	sig.addDefinedType("string", newArrow(atomicType("o"), atomicType("o")))
	stringT := atomicType("string")
	sig.addInfixConstant("+", "lambda x y z. x (y z)", arrowChain(stringT, stringT, stringT))
	for _, t := range tag.Terminals {
		sig.addConstant(t, stringT)
	}
	sig.addDefinedConstant("E", identityTerm, stringT)
	return sig
}

func genAbsLexicon(tag *grammar.TAG) *lexicon {
	lex := newLexicon(lexNameAbs, sigNameDerivationTrees, sigNameDerivedTrees)
	for _, n := range tag.Nonterminals {
		lex.addMapping(fmt.Sprintf("%v_S", n), treeType(1).String())
		lex.addMapping(fmt.Sprintf("%v_A", n), treeType(2).String())
	}
	for _, tree := range tag.Initials {
		lex.addMapping(tree.Identifier, realizeTree(tree, true))
	}
	for _, tree := range tag.Auxiliaries {
		lex.addMapping(tree.Identifier, realizeTree(tree, false))
	}
	for _, n := range tag.Nonterminals {
		lex.addMapping(fmt.Sprintf("I_%v", n), identityTerm)
	}
	return lex
}

func genYieldLexicon(tag *grammar.TAG, constructors []*treeConstructor) *lexicon {
	lex := newLexicon(lexNameYield, sigNameDerivedTrees, sigNameStrings)
	lex.addMapping(treeTypeName, "string")
	for _, t := range tag.Terminals {
		lex.addMapping(t, t)
	}
	for _, c := range constructors {
		lex.addMapping(c.symbol, concatTerm(c.arity))
	}
	lex.addMapping("Empty", "E")
	return lex
}
