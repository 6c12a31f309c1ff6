package spec

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	verr "github.com/nihei9/acgtag/error"
	"gopkg.in/yaml.v3"
)

// File is the parsed form of a TAG description file. The tree descriptions
// are already parsed from their parenthesized notation.
type File struct {
	Terminals     []string
	Nonterminals  []string
	Initials      []*TreeNode
	Auxiliaries   []*TreeNode
	Distinguished string
}

// TreeNode is a node of an elementary tree as written in the source file.
// The _NA and * suffixes are stripped from Symbol during parsing.
type TreeNode struct {
	Symbol       string
	Footnode     bool
	Nonadjoining bool
	Children     []*TreeNode
}

type fileRecord struct {
	Terminals     []string `json:"terminals" yaml:"terminals"`
	Nonterminals  []string `json:"nonterminals" yaml:"nonterminals"`
	Initials      []string `json:"initials" yaml:"initials"`
	Auxiliaries   []string `json:"auxiliaries" yaml:"auxiliaries"`
	Distinguished string   `json:"distinguished" yaml:"distinguished"`
}

// Parse reads a TAG description in JSON form.
func Parse(src io.Reader) (*File, error) {
	rec := &fileRecord{}
	d := json.NewDecoder(src)
	err := d.Decode(rec)
	if err != nil {
		return nil, fmt.Errorf("invalid TAG description: %w", err)
	}
	return genFile(rec)
}

// ParseYAML reads a TAG description in YAML form. The record has the same
// fields as the JSON form.
func ParseYAML(src io.Reader) (*File, error) {
	rec := &fileRecord{}
	d := yaml.NewDecoder(src)
	err := d.Decode(rec)
	if err != nil {
		return nil, fmt.Errorf("invalid TAG description: %w", err)
	}
	return genFile(rec)
}

func genFile(rec *fileRecord) (*File, error) {
	initials, err := parseTrees(rec.Initials)
	if err != nil {
		return nil, err
	}
	auxiliaries, err := parseTrees(rec.Auxiliaries)
	if err != nil {
		return nil, err
	}
	return &File{
		Terminals:     rec.Terminals,
		Nonterminals:  rec.Nonterminals,
		Initials:      initials,
		Auxiliaries:   auxiliaries,
		Distinguished: rec.Distinguished,
	}, nil
}

func parseTrees(srcs []string) ([]*TreeNode, error) {
	trees := make([]*TreeNode, len(srcs))
	for i, src := range srcs {
		tree, err := ParseTree(strings.NewReader(src))
		if err != nil {
			if synErr, ok := err.(*SyntaxError); ok {
				return nil, verr.SpecErrors{
					{
						Cause:  synErr,
						Detail: src,
					},
				}
			}
			return nil, err
		}
		trees[i] = tree
	}
	return trees, nil
}
