package spec

import "fmt"

type SyntaxError struct {
	message string
}

func newSyntaxError(message string) *SyntaxError {
	return &SyntaxError{
		message: message,
	}
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error: %s", e.message)
}

var (
	synErrInvalidToken    = newSyntaxError("invalid token")
	synErrEmptyTree       = newSyntaxError("a tree description must contain at least one symbol")
	synErrNodeNoSymbol    = newSyntaxError("a tree node needs a symbol preceding its children")
	synErrUnclosedNode    = newSyntaxError("unclosed tree node")
	synErrTrailingText    = newSyntaxError("a tree description must contain just one tree")
	synErrMalformedSymbol = newSyntaxError("the _NA and * suffixes must close a symbol in that order")
	synErrEmptySymbol     = newSyntaxError("a symbol name must not be empty")
)
