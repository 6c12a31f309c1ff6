package grammar

type SemanticError struct {
	message string
}

func newSemanticError(message string) *SemanticError {
	return &SemanticError{
		message: message,
	}
}

func (e *SemanticError) Error() string {
	return e.message
}

var (
	semErrDuplicateTerminal    = newSemanticError("duplicate terminal")
	semErrDuplicateNonTerminal = newSemanticError("duplicate nonterminal")
	semErrTerminalCase         = newSemanticError("a terminal symbol must not start with an uppercase letter")
	semErrNonTerminalCase      = newSemanticError("a nonterminal symbol must start with an uppercase letter")
	semErrUndefinedSym         = newSemanticError("undefined symbol")
	semErrUndefinedStart       = newSemanticError("the distinguished symbol must be a declared nonterminal")
	semErrFootInInitial        = newSemanticError("an initial tree must not contain a footnode")
	semErrFootnodeCount        = newSemanticError("an auxiliary tree must have just one footnode")
	semErrFootnodeNotLeaf      = newSemanticError("a footnode must be a leaf")
	semErrFootnodeTerminal     = newSemanticError("a footnode must be labeled with a nonterminal")
)
