// Package semantic implements the static resolver that runs after parsing
// and before evaluation: it records the lexical depth of every local
// variable reference and rejects several classes of static error.
package semantic

import "github.com/nwidger/lox/internal/ast"

// Pass represents a single semantic analysis pass over the program.
type Pass interface {
	// Name returns the name of this pass for logging and debugging.
	Name() string

	// Run executes this pass on the given program, reading and writing the
	// shared PassContext. It returns an error only for fatal internal
	// errors, never for semantic errors, which are recorded in ctx.
	Run(program *ast.Program, ctx *PassContext) error
}

// PassManager coordinates the execution of multiple passes in order.
type PassManager struct {
	passes []Pass
}

// NewPassManager creates a PassManager running passes in the given order.
func NewPassManager(passes ...Pass) *PassManager {
	return &PassManager{passes: passes}
}

// RunAll executes all passes in sequence, stopping early only on a fatal
// internal error. Semantic errors accumulate in ctx across every pass.
func (pm *PassManager) RunAll(program *ast.Program, ctx *PassContext) error {
	for _, pass := range pm.passes {
		if err := pass.Run(program, ctx); err != nil {
			return err
		}
	}
	return nil
}

// AddPass appends a pass, run after all previously added passes.
func (pm *PassManager) AddPass(pass Pass) { pm.passes = append(pm.passes, pass) }

// Passes returns the registered passes in run order.
func (pm *PassManager) Passes() []Pass { return pm.passes }
