package spec

import (
	"strings"
	"testing"
)

func TestParseTree(t *testing.T) {
	leaf := func(symbol string) *TreeNode {
		return &TreeNode{
			Symbol: symbol,
		}
	}
	foot := func(symbol string) *TreeNode {
		return &TreeNode{
			Symbol:   symbol,
			Footnode: true,
		}
	}
	node := func(symbol string, children ...*TreeNode) *TreeNode {
		return &TreeNode{
			Symbol:   symbol,
			Children: children,
		}
	}

	tests := []struct {
		caption string
		src     string
		tree    *TreeNode
		synErr  *SyntaxError
	}{
		{
			caption: "a tree may omit the outer parentheses",
			src:     "NP (N*)",
			tree:    node("NP", foot("N")),
		},
		{
			caption: "a tree may be fully parenthesized",
			src:     "(S (NP) (VP (sleeps)))",
			tree:    node("S", leaf("NP"), node("VP", leaf("sleeps"))),
		},
		{
			caption: "a single symbol is a tree",
			src:     "NP",
			tree:    node("NP"),
		},
		{
			caption: "the * suffix marks a footnode",
			src:     "VP (ADV) (VP*)",
			tree:    node("VP", leaf("ADV"), foot("VP")),
		},
		{
			caption: "the _NA suffix marks a nonadjoining node",
			src:     "S (NP_NA (john)) (VP)",
			tree: node("S",
				&TreeNode{
					Symbol:       "NP",
					Nonadjoining: true,
					Children:     []*TreeNode{leaf("john")},
				},
				leaf("VP"),
			),
		},
		{
			caption: "a nonadjoining footnode is written with * before _NA",
			src:     "NP (NP*_NA)",
			tree: node("NP",
				&TreeNode{
					Symbol:       "NP",
					Footnode:     true,
					Nonadjoining: true,
				},
			),
		},
		{
			caption: "the _NA suffix is not stripped from terminal symbols",
			src:     "N (x_NA)",
			tree:    node("N", leaf("x_NA")),
		},
		{
			caption: "the suffixes in the wrong order leave a residual marker",
			src:     "NP (NP_NA*)",
			synErr:  synErrMalformedSymbol,
		},
		{
			caption: "a symbol must not contain * anywhere but its end",
			src:     "NP (N*P)",
			synErr:  synErrMalformedSymbol,
		},
		{
			caption: "a bare * is not a symbol",
			src:     "NP (*)",
			synErr:  synErrEmptySymbol,
		},
		{
			caption: "a node needs a symbol",
			src:     "()",
			synErr:  synErrNodeNoSymbol,
		},
		{
			caption: "an empty description is not a tree",
			src:     "",
			synErr:  synErrEmptyTree,
		},
		{
			caption: "a node must be closed",
			src:     "(S (NP)",
			synErr:  synErrUnclosedNode,
		},
		{
			caption: "text must not follow the tree",
			src:     "(S (NP)) (VP)",
			synErr:  synErrTrailingText,
		},
		{
			caption: "an unmatched closing parenthesis is trailing text",
			src:     "S (NP))",
			synErr:  synErrTrailingText,
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			tree, err := ParseTree(strings.NewReader(tt.src))
			if tt.synErr != nil {
				if err != tt.synErr {
					t.Fatalf("unexpected error; want: %v, got: %v", tt.synErr, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			testTreeNode(t, tt.tree, tree)
		})
	}
}

func testTreeNode(t *testing.T, expected, actual *TreeNode) {
	t.Helper()

	if actual.Symbol != expected.Symbol {
		t.Fatalf("unexpected symbol; want: %v, got: %v", expected.Symbol, actual.Symbol)
	}
	if actual.Footnode != expected.Footnode {
		t.Fatalf("unexpected footnode flag on %v; want: %v, got: %v", expected.Symbol, expected.Footnode, actual.Footnode)
	}
	if actual.Nonadjoining != expected.Nonadjoining {
		t.Fatalf("unexpected nonadjoining flag on %v; want: %v, got: %v", expected.Symbol, expected.Nonadjoining, actual.Nonadjoining)
	}
	if len(actual.Children) != len(expected.Children) {
		t.Fatalf("unexpected child count on %v; want: %v, got: %v", expected.Symbol, len(expected.Children), len(actual.Children))
	}
	for i, c := range expected.Children {
		testTreeNode(t, c, actual.Children[i])
	}
}

func TestParse(t *testing.T) {
	src := `
{
    "terminals": ["john", "sleeps"],
    "nonterminals": ["S", "NP", "VP"],
    "initials": ["S (NP) (VP (sleeps))", "NP (john)"],
    "auxiliaries": [],
    "distinguished": "S"
}
`
	file, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if len(file.Terminals) != 2 || len(file.Nonterminals) != 3 {
		t.Fatalf("unexpected symbol counts; got: %v terminals, %v nonterminals", len(file.Terminals), len(file.Nonterminals))
	}
	if len(file.Initials) != 2 || len(file.Auxiliaries) != 0 {
		t.Fatalf("unexpected tree counts; got: %v initials, %v auxiliaries", len(file.Initials), len(file.Auxiliaries))
	}
	if file.Distinguished != "S" {
		t.Fatalf("unexpected distinguished symbol; want: S, got: %v", file.Distinguished)
	}
	if file.Initials[0].Symbol != "S" || len(file.Initials[0].Children) != 2 {
		t.Fatalf("the first initial tree was not parsed; got: %#v", file.Initials[0])
	}
}

func TestParseYAML(t *testing.T) {
	src := `
terminals:
  - john
nonterminals:
  - NP
initials:
  - NP (john)
auxiliaries: []
distinguished: NP
`
	file, err := ParseYAML(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if len(file.Initials) != 1 || file.Initials[0].Symbol != "NP" {
		t.Fatalf("the initial tree was not parsed; got: %#v", file.Initials)
	}
}
