package semantic

import (
	"github.com/nwidger/lox/internal/ast"
	"github.com/nwidger/lox/internal/diag"
)

// PassContext is shared state threaded through every pass: the resolver
// side-table the evaluator later consults, plus the accumulated errors.
type PassContext struct {
	// Locals maps an expression's identity to its lexical depth: how many
	// enclosing environments to walk outward to reach its binding. An
	// expression with no entry refers to a global.
	Locals map[ast.ID]int

	errors diag.Bag
}

// NewPassContext creates an empty PassContext ready for a resolver run.
func NewPassContext() *PassContext {
	return &PassContext{Locals: make(map[ast.ID]int)}
}

// HasCriticalErrors reports whether any pass recorded a semantic error.
func (c *PassContext) HasCriticalErrors() bool { return c.errors.HasErrors() }

// Errors returns the accumulated semantic diagnostics.
func (c *PassContext) Errors() []*diag.Diagnostic { return c.errors.Items() }

func (c *PassContext) addError(d *diag.Diagnostic) { c.errors.Add(d) }
