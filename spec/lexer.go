package spec

import (
	"fmt"
	"io"

	mlcompiler "github.com/nihei9/maleeni/compiler"
	mldriver "github.com/nihei9/maleeni/driver"
	mlspec "github.com/nihei9/maleeni/spec"
)

type tokenKind string

const (
	tokenKindLParen  = tokenKind("(")
	tokenKindRParen  = tokenKind(")")
	tokenKindSymbol  = tokenKind("symbol")
	tokenKindEOF     = tokenKind("eof")
	tokenKindInvalid = tokenKind("invalid")
)

type Position struct {
	Row int
	Col int
}

func newPosition(row, col int) Position {
	return Position{
		Row: row,
		Col: col,
	}
}

type token struct {
	kind tokenKind
	text string
	pos  Position
}

// treeLexSpec describes the tokens of the parenthesized tree notation.
// A symbol is any run of characters other than parentheses and white spaces.
var treeLexSpec = &mlspec.LexSpec{
	Name: "tree",
	Entries: []*mlspec.LexEntry{
		{
			Kind:    "white_space",
			Pattern: mlspec.LexPattern(`[\u{0009}\u{000A}\u{000D}\u{0020}]+`),
		},
		{
			Kind:    "l_paren",
			Pattern: mlspec.LexPattern(`\(`),
		},
		{
			Kind:    "r_paren",
			Pattern: mlspec.LexPattern(`\)`),
		},
		{
			Kind:    "symbol",
			Pattern: mlspec.LexPattern(`[^()\u{0009}\u{000A}\u{000D}\u{0020}]+`),
		},
	},
}

type lexer struct {
	d     *mldriver.Lexer
	kinds []mlspec.LexKindName
}

func newLexer(src io.Reader) (*lexer, error) {
	clspec, err, cErrs := mlcompiler.Compile(treeLexSpec, mlcompiler.CompressionLevel(mlcompiler.CompressionLevelMax))
	if err != nil {
		if len(cErrs) > 0 {
			return nil, fmt.Errorf("failed to compile the tree notation lexical specification: %v: %v", cErrs[0].Kind, cErrs[0].Cause)
		}
		return nil, err
	}
	d, err := mldriver.NewLexer(mldriver.NewLexSpec(clspec), src)
	if err != nil {
		return nil, err
	}
	return &lexer{
		d:     d,
		kinds: clspec.KindNames,
	}, nil
}

func (l *lexer) next() (*token, error) {
	for {
		tok, err := l.d.Next()
		if err != nil {
			return nil, err
		}
		if tok.EOF {
			return &token{
				kind: tokenKindEOF,
			}, nil
		}
		pos := newPosition(tok.Row+1, tok.Col+1)
		if tok.Invalid {
			return &token{
				kind: tokenKindInvalid,
				text: string(tok.Lexeme),
				pos:  pos,
			}, nil
		}
		switch l.kinds[tok.KindID].String() {
		case "white_space":
			continue
		case "l_paren":
			return &token{
				kind: tokenKindLParen,
				pos:  pos,
			}, nil
		case "r_paren":
			return &token{
				kind: tokenKindRParen,
				pos:  pos,
			}, nil
		case "symbol":
			return &token{
				kind: tokenKindSymbol,
				text: string(tok.Lexeme),
				pos:  pos,
			}, nil
		default:
			return &token{
				kind: tokenKindInvalid,
				text: string(tok.Lexeme),
				pos:  pos,
			}, nil
		}
	}
}
