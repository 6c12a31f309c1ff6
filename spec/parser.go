package spec

import (
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsNonterminalSymbol reports whether a symbol names a nonterminal.
// The classification is purely by the case of the first character and every
// component relies on this one definition.
func IsNonterminalSymbol(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(r)
}

func raiseSyntaxError(synErr *SyntaxError) {
	panic(synErr)
}

// ParseTree parses one tree description in parenthesized notation, for
// example `S (NP) (VP (sleeps))` or `(VP (ADV) (VP*))`. The outermost
// parentheses are optional.
func ParseTree(src io.Reader) (*TreeNode, error) {
	p, err := newParser(src)
	if err != nil {
		return nil, err
	}
	return p.parse()
}

type parser struct {
	lex       *lexer
	peekedTok *token
	lastTok   *token
}

func newParser(src io.Reader) (*parser, error) {
	lex, err := newLexer(src)
	if err != nil {
		return nil, err
	}
	return &parser{
		lex: lex,
	}, nil
}

func (p *parser) parse() (tree *TreeNode, retErr error) {
	defer func() {
		err := recover()
		if err != nil {
			retErr = err.(error)
			return
		}
	}()
	return p.parseRoot(), nil
}

func (p *parser) parseRoot() *TreeNode {
	var root *TreeNode
	switch {
	case p.consume(tokenKindLParen):
		root = p.parseNode()
	case p.consume(tokenKindSymbol):
		// A description without outer parentheses: the first symbol is the
		// root and the remaining elements are its children.
		root = newTreeNode(p.lastTok.text)
		for {
			child := p.parseChild()
			if child == nil {
				break
			}
			root.Children = append(root.Children, child)
		}
	default:
		raiseSyntaxError(synErrEmptyTree)
	}
	if !p.consume(tokenKindEOF) {
		raiseSyntaxError(synErrTrailingText)
	}
	return root
}

// parseNode parses the body of a parenthesized node. The opening parenthesis
// is already consumed.
func (p *parser) parseNode() *TreeNode {
	if !p.consume(tokenKindSymbol) {
		raiseSyntaxError(synErrNodeNoSymbol)
	}
	node := newTreeNode(p.lastTok.text)
	for {
		child := p.parseChild()
		if child == nil {
			break
		}
		node.Children = append(node.Children, child)
	}
	if !p.consume(tokenKindRParen) {
		raiseSyntaxError(synErrUnclosedNode)
	}
	return node
}

func (p *parser) parseChild() *TreeNode {
	switch {
	case p.consume(tokenKindSymbol):
		return newTreeNode(p.lastTok.text)
	case p.consume(tokenKindLParen):
		return p.parseNode()
	}
	return nil
}

// newTreeNode strips the _NA and * suffixes off a symbol and records them as
// flags. The _NA suffix is meaningful on nonterminals only, so a terminal
// symbol may legitimately end in _NA. A symbol that still carries either
// marker after stripping is malformed.
func newTreeNode(symbol string) *TreeNode {
	node := &TreeNode{}
	if IsNonterminalSymbol(symbol) && strings.HasSuffix(symbol, "_NA") {
		symbol = strings.TrimSuffix(symbol, "_NA")
		node.Nonadjoining = true
	}
	if strings.HasSuffix(symbol, "*") {
		symbol = strings.TrimSuffix(symbol, "*")
		node.Footnode = true
	}
	if symbol == "" {
		raiseSyntaxError(synErrEmptySymbol)
	}
	if strings.Contains(symbol, "*") {
		raiseSyntaxError(synErrMalformedSymbol)
	}
	if IsNonterminalSymbol(symbol) && strings.HasSuffix(symbol, "_NA") {
		raiseSyntaxError(synErrMalformedSymbol)
	}
	node.Symbol = symbol
	return node
}

func (p *parser) consume(expected tokenKind) bool {
	var tok *token
	var err error
	if p.peekedTok != nil {
		tok = p.peekedTok
		p.peekedTok = nil
	} else {
		tok, err = p.lex.next()
		if err != nil {
			panic(err)
		}
	}
	p.lastTok = tok
	if tok.kind == tokenKindInvalid {
		raiseSyntaxError(synErrInvalidToken)
	}
	if tok.kind == expected {
		return true
	}
	p.peekedTok = tok
	p.lastTok = nil

	return false
}
