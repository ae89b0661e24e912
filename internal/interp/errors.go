package interp

import (
	"fmt"

	"github.com/nwidger/lox/internal/token"
)

// RuntimeError is a non-local exit carrying the token responsible (for
// line-number reporting) and a message, per spec.md §7.
type RuntimeError struct {
	Token   token.Token
	Message string
}

func NewRuntimeError(tok token.Token, message string) *RuntimeError {
	return &RuntimeError{Token: tok, Message: message}
}

// Error implements the `<msg>\n[line N]` wire format from spec.md §6.
func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s\n[line %d]", e.Message, e.Token.Pos.Line)
}
