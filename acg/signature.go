package acg

// The signature and lexicon models carry no computation: they are ordered,
// append-only tables filled by the generators and serialized by the emitter.

type typeDecl struct {
	name string
	def  typeExpr
}

type constant struct {
	name  string
	term  string
	infix bool
	typ   typeExpr
}

type signature struct {
	name      string
	types     []*typeDecl
	constants []*constant
}

func newSignature(name string) *signature {
	return &signature{
		name: name,
	}
}

func (s *signature) addType(name string) {
	s.types = append(s.types, &typeDecl{
		name: name,
	})
}

func (s *signature) addDefinedType(name string, def typeExpr) {
	s.types = append(s.types, &typeDecl{
		name: name,
		def:  def,
	})
}

func (s *signature) addConstant(name string, typ typeExpr) {
	s.constants = append(s.constants, &constant{
		name: name,
		typ:  typ,
	})
}

func (s *signature) addDefinedConstant(name, term string, typ typeExpr) {
	s.constants = append(s.constants, &constant{
		name: name,
		term: term,
		typ:  typ,
	})
}

func (s *signature) addInfixConstant(name, term string, typ typeExpr) {
	s.constants = append(s.constants, &constant{
		name:  name,
		term:  term,
		infix: true,
		typ:   typ,
	})
}

type mapping struct {
	key   string
	value string
}

type lexicon struct {
	name     string
	source   string
	target   string
	mappings []*mapping
}

func newLexicon(name, source, target string) *lexicon {
	return &lexicon{
		name:   name,
		source: source,
		target: target,
	}
}

func (l *lexicon) addMapping(key, value string) {
	l.mappings = append(l.mappings, &mapping{
		key:   key,
		value: value,
	})
}

// composedLexicon is a deferred composition marker: it names two lexicons
// and computes nothing itself.
type composedLexicon struct {
	name   string
	first  string
	second string
}

func newComposedLexicon(name, first, second string) *composedLexicon {
	return &composedLexicon{
		name:   name,
		first:  first,
		second: second,
	}
}
