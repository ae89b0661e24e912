package interp

import "github.com/nwidger/lox/internal/ast"

// Function is a runtime function value: a declaration plus the
// environment captured at the point the `fun`/method declaration
// executed.
type Function struct {
	declaration   *ast.FunctionStmt
	closure       *Environment
	isInitializer bool
}

// NewFunction wraps a parsed function declaration as a callable value.
func NewFunction(declaration *ast.FunctionStmt, closure *Environment, isInitializer bool) *Function {
	return &Function{declaration: declaration, closure: closure, isInitializer: isInitializer}
}

// Bind creates a new function value whose closure is a child environment
// defining `this` as instance, per spec.md §4.5's method-binding rule.
func (f *Function) Bind(instance *Instance) *Function {
	env := NewEnclosedEnvironment(f.closure)
	env.Define("this", instance)
	return NewFunction(f.declaration, env, f.isInitializer)
}

func (f *Function) Arity() int { return len(f.declaration.Params) }

func (f *Function) String() string { return "<fn " + f.declaration.Name.Lexeme + ">" }

// Call creates a new environment whose parent is the captured closure,
// binds parameters to argument values, and executes the body. A `return`
// unwinds via returnSignal, caught here; initializers always yield `this`
// regardless of whether the return carried an explicit value.
func (f *Function) Call(interp *Interpreter, args []Value) (Value, error) {
	env := NewEnclosedEnvironment(f.closure)
	for i, param := range f.declaration.Params {
		env.Define(param.Lexeme, args[i])
	}

	err := interp.executeBlock(f.declaration.Body, env)
	if err != nil {
		ret, ok := err.(*returnSignal)
		if !ok {
			return nil, err
		}
		if f.isInitializer {
			return f.closure.GetAt(0, "this"), nil
		}
		return ret.value, nil
	}

	if f.isInitializer {
		return f.closure.GetAt(0, "this"), nil
	}
	return nil, nil
}

// returnSignal implements `return` as a non-local exit: it is returned
// like any other error by statement execution, propagated unchanged
// through every enclosing block/if/while, and caught only here, at the
// nearest enclosing function-call frame, per spec.md §4.5/§9.
type returnSignal struct {
	value Value
}

func (r *returnSignal) Error() string { return "return" }
