package acg

import (
	"bufio"
	"fmt"
	"io"
)

// Write serializes the generated grammar. The surface is a compatibility
// boundary: block order, declaration order, indentation, and spacing are
// all fixed, so identical input yields identical bytes.
func (a *ACG) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, sig := range a.signatures {
		sig.write(bw)
	}
	for _, lex := range a.lexicons {
		lex.write(bw)
	}
	return bw.Flush()
}

func (s *signature) write(w io.Writer) {
	fmt.Fprintf(w, "signature %v = \n", s.name)
	for _, t := range s.types {
		if t.def != nil {
			fmt.Fprintf(w, "    %v = %v: type;\n", t.name, t.def)
		} else {
			fmt.Fprintf(w, "    %v: type;\n", t.name)
		}
	}
	fmt.Fprintf(w, "\n")
	for _, c := range s.constants {
		switch {
		case c.infix:
			fmt.Fprintf(w, "    infix %v = %v: %v;\n", c.name, c.term, c.typ)
		case c.term != "":
			fmt.Fprintf(w, "    %v = %v: %v;\n", c.name, c.term, c.typ)
		default:
			fmt.Fprintf(w, "    %v: %v;\n", c.name, c.typ)
		}
	}
	fmt.Fprintf(w, "end\n\n")
}

func (l *lexicon) write(w io.Writer) {
	fmt.Fprintf(w, "lexicon %v(%v): %v = \n", l.name, l.source, l.target)
	for _, m := range l.mappings {
		fmt.Fprintf(w, "    %v := %v;\n", m.key, m.value)
	}
	fmt.Fprintf(w, "end\n\n")
}

func (l *composedLexicon) write(w io.Writer) {
	fmt.Fprintf(w, "lexicon %v = %v << %v\n\n", l.name, l.second, l.first)
}
