package interp

import (
	"fmt"
	"io"

	"github.com/nwidger/lox/internal/ast"
	"github.com/nwidger/lox/internal/token"
)

// DefaultMaxCallDepth bounds call-frame recursion so a runaway program
// fails with a reported runtime error instead of exhausting the Go stack.
const DefaultMaxCallDepth = 1024

// Options configures an Interpreter. A nil Options uses the defaults.
type Options struct {
	// MaxCallDepth bounds recursive Call nesting. Zero uses DefaultMaxCallDepth.
	MaxCallDepth int
	// Clock supplies the `clock()` native; nil uses a real wall-clock.
	Clock func() float64
}

// Interpreter walks a resolved AST, evaluating expressions and executing
// statements against a chain of lexical environments.
type Interpreter struct {
	globals     *Environment
	environment *Environment
	locals      map[ast.ID]int
	out         io.Writer

	maxCallDepth int
	callDepth    int
}

// New creates an Interpreter with a fresh global environment, the
// built-in `clock()` bound, and output sent to out.
func New(out io.Writer, opts *Options) *Interpreter {
	globals := NewEnvironment()

	maxDepth := DefaultMaxCallDepth
	var clock func() float64
	if opts != nil {
		if opts.MaxCallDepth > 0 {
			maxDepth = opts.MaxCallDepth
		}
		clock = opts.Clock
	}
	if clock == nil {
		clock = defaultClock
	}
	globals.Define("clock", nativeClock{now: clock})

	return &Interpreter{
		globals:      globals,
		environment:  globals,
		locals:       make(map[ast.ID]int),
		out:          out,
		maxCallDepth: maxDepth,
	}
}

// Resolve installs the resolver's side-table, produced by a prior
// semantic.Resolver pass, ahead of Interpret.
func (i *Interpreter) Resolve(locals map[ast.ID]int) {
	i.locals = locals
}

// Interpret executes every top-level statement in order. It stops and
// returns the first *RuntimeError encountered (a "fault exit" per
// spec.md §4.5's call-frame state machine).
func (i *Interpreter) Interpret(program *ast.Program) error {
	for _, stmt := range program.Statements {
		if err := i.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

// --- statement execution ---

func (i *Interpreter) execute(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		_, err := i.eval(s.Expression)
		return err

	case *ast.PrintStmt:
		v, err := i.eval(s.Expression)
		if err != nil {
			return err
		}
		fmt.Fprintln(i.out, Stringify(v))
		return nil

	case *ast.VarStmt:
		var value Value
		if s.Initializer != nil {
			v, err := i.eval(s.Initializer)
			if err != nil {
				return err
			}
			value = v
		}
		i.environment.Define(s.Name.Lexeme, value)
		return nil

	case *ast.BlockStmt:
		return i.executeBlock(s.Statements, NewEnclosedEnvironment(i.environment))

	case *ast.IfStmt:
		cond, err := i.eval(s.Condition)
		if err != nil {
			return err
		}
		if isTruthy(cond) {
			return i.execute(s.ThenBranch)
		}
		if s.ElseBranch != nil {
			return i.execute(s.ElseBranch)
		}
		return nil

	case *ast.WhileStmt:
		for {
			cond, err := i.eval(s.Condition)
			if err != nil {
				return err
			}
			if !isTruthy(cond) {
				return nil
			}
			if err := i.execute(s.Body); err != nil {
				return err
			}
		}

	case *ast.FunctionStmt:
		fn := NewFunction(s, i.environment, false)
		i.environment.Define(s.Name.Lexeme, fn)
		return nil

	case *ast.ReturnStmt:
		var value Value
		if s.Value != nil {
			v, err := i.eval(s.Value)
			if err != nil {
				return err
			}
			value = v
		}
		return &returnSignal{value: value}

	case *ast.ClassStmt:
		return i.executeClass(s)

	default:
		return fmt.Errorf("interp: unhandled statement type %T", stmt)
	}
}

// executeBlock executes statements in env, restoring the previous
// environment on every exit path, including via return or error.
func (i *Interpreter) executeBlock(stmts []ast.Stmt, env *Environment) error {
	previous := i.environment
	i.environment = env
	defer func() { i.environment = previous }()

	for _, stmt := range stmts {
		if err := i.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (i *Interpreter) executeClass(s *ast.ClassStmt) error {
	var superclass *Class
	if s.Superclass != nil {
		v, err := i.eval(s.Superclass)
		if err != nil {
			return err
		}
		sc, ok := v.(*Class)
		if !ok {
			return NewRuntimeError(s.Superclass.Name, "Superclass must be a class.")
		}
		superclass = sc
	}

	i.environment.Define(s.Name.Lexeme, nil)

	env := i.environment
	if superclass != nil {
		env = NewEnclosedEnvironment(i.environment)
		env.Define("super", superclass)
	}

	methods := make(map[string]*Function, len(s.Methods))
	for _, method := range s.Methods {
		fn := NewFunction(method, env, method.Name.Lexeme == "init")
		methods[method.Name.Lexeme] = fn
	}

	class := NewClass(s.Name.Lexeme, superclass, methods)
	i.environment.Assign(s.Name.Lexeme, class)
	return nil
}

// --- expression evaluation ---

func (i *Interpreter) eval(expr ast.Expr) (Value, error) {
	switch e := expr.(type) {
	case *ast.LiteralExpr:
		return e.Value, nil

	case *ast.GroupingExpr:
		return i.eval(e.Expression)

	case *ast.VariableExpr:
		return i.lookUpVariable(e.Name, e)

	case *ast.AssignExpr:
		value, err := i.eval(e.Value)
		if err != nil {
			return nil, err
		}
		if depth, ok := i.locals[e.ExprID()]; ok {
			i.environment.AssignAt(depth, e.Name.Lexeme, value)
		} else if !i.globals.Assign(e.Name.Lexeme, value) {
			return nil, NewRuntimeError(e.Name, "Undefined variable '"+e.Name.Lexeme+"'.")
		}
		return value, nil

	case *ast.UnaryExpr:
		return i.evalUnary(e)

	case *ast.BinaryExpr:
		return i.evalBinary(e)

	case *ast.LogicalExpr:
		return i.evalLogical(e)

	case *ast.CallExpr:
		return i.evalCall(e)

	case *ast.GetExpr:
		return i.evalGet(e)

	case *ast.SetExpr:
		return i.evalSet(e)

	case *ast.ThisExpr:
		return i.lookUpVariable(e.Keyword, e)

	case *ast.SuperExpr:
		return i.evalSuper(e)

	default:
		return nil, fmt.Errorf("interp: unhandled expression type %T", expr)
	}
}

// lookUpVariable consults the resolver side-table: present means a local
// at the recorded depth, absent means a global.
func (i *Interpreter) lookUpVariable(name token.Token, expr ast.Expr) (Value, error) {
	if depth, ok := i.locals[expr.ExprID()]; ok {
		return i.environment.GetAt(depth, name.Lexeme), nil
	}
	if v, ok := i.globals.Get(name.Lexeme); ok {
		return v, nil
	}
	return nil, NewRuntimeError(name, "Undefined variable '"+name.Lexeme+"'.")
}

func (i *Interpreter) evalUnary(e *ast.UnaryExpr) (Value, error) {
	right, err := i.eval(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Operator.Type {
	case token.MINUS:
		n, ok := right.(float64)
		if !ok {
			return nil, NewRuntimeError(e.Operator, "Operand must be a number.")
		}
		return -n, nil
	case token.BANG:
		return !isTruthy(right), nil
	}
	return nil, fmt.Errorf("interp: unhandled unary operator %s", e.Operator.Type)
}

func (i *Interpreter) evalLogical(e *ast.LogicalExpr) (Value, error) {
	left, err := i.eval(e.Left)
	if err != nil {
		return nil, err
	}
	if e.Operator.Type == token.OR {
		if isTruthy(left) {
			return left, nil
		}
	} else if !isTruthy(left) {
		return left, nil
	}
	return i.eval(e.Right)
}

func (i *Interpreter) evalBinary(e *ast.BinaryExpr) (Value, error) {
	left, err := i.eval(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.eval(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Type {
	case token.PLUS:
		if ln, lok := left.(float64); lok {
			if rn, rok := right.(float64); rok {
				return ln + rn, nil
			}
		}
		if ls, lok := left.(string); lok {
			if rs, rok := right.(string); rok {
				return ls + rs, nil
			}
		}
		return nil, NewRuntimeError(e.Operator, "Operands must be two numbers or two strings.")

	case token.MINUS:
		ln, rn, err := numberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return ln - rn, nil

	case token.STAR:
		ln, rn, err := numberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return ln * rn, nil

	case token.SLASH:
		ln, rn, err := numberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return ln / rn, nil

	case token.GREATER:
		ln, rn, err := numberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return ln > rn, nil

	case token.GREATER_EQUAL:
		ln, rn, err := numberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return ln >= rn, nil

	case token.LESS:
		ln, rn, err := numberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return ln < rn, nil

	case token.LESS_EQUAL:
		ln, rn, err := numberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return ln <= rn, nil

	case token.EQUAL_EQUAL:
		return isEqual(left, right), nil

	case token.BANG_EQUAL:
		return !isEqual(left, right), nil
	}

	return nil, fmt.Errorf("interp: unhandled binary operator %s", e.Operator.Type)
}

func numberOperands(op token.Token, left, right Value) (float64, float64, error) {
	ln, lok := left.(float64)
	rn, rok := right.(float64)
	if !lok || !rok {
		return 0, 0, NewRuntimeError(op, "Operands must be numbers.")
	}
	return ln, rn, nil
}

func (i *Interpreter) evalCall(e *ast.CallExpr) (Value, error) {
	callee, err := i.eval(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]Value, len(e.Args))
	for idx, a := range e.Args {
		v, err := i.eval(a)
		if err != nil {
			return nil, err
		}
		args[idx] = v
	}

	callable, ok := callee.(Callable)
	if !ok {
		return nil, NewRuntimeError(e.Paren, "Can only call functions and classes.")
	}
	if len(args) != callable.Arity() {
		return nil, NewRuntimeError(e.Paren, fmt.Sprintf("Expected %d arguments but got %d.", callable.Arity(), len(args)))
	}

	if i.callDepth >= i.maxCallDepth {
		return nil, NewRuntimeError(e.Paren, "Stack overflow.")
	}
	i.callDepth++
	defer func() { i.callDepth-- }()

	return callable.Call(i, args)
}

func (i *Interpreter) evalGet(e *ast.GetExpr) (Value, error) {
	obj, err := i.eval(e.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := obj.(*Instance)
	if !ok {
		return nil, NewRuntimeError(e.Name, "Only instances have properties.")
	}
	return instance.Get(e.Name)
}

func (i *Interpreter) evalSet(e *ast.SetExpr) (Value, error) {
	obj, err := i.eval(e.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := obj.(*Instance)
	if !ok {
		return nil, NewRuntimeError(e.Name, "Only instances have fields.")
	}
	value, err := i.eval(e.Value)
	if err != nil {
		return nil, err
	}
	instance.Set(e.Name, value)
	return value, nil
}

func (i *Interpreter) evalSuper(e *ast.SuperExpr) (Value, error) {
	depth := i.locals[e.ExprID()]
	superVal := i.environment.GetAt(depth, "super")
	superclass, ok := superVal.(*Class)
	if !ok {
		return nil, NewRuntimeError(e.Keyword, "Superclass must be a class.")
	}

	// `this` is always bound exactly one environment closer than `super`.
	instanceVal := i.environment.GetAt(depth-1, "this")
	instance, ok := instanceVal.(*Instance)
	if !ok {
		return nil, NewRuntimeError(e.Keyword, "Only instances have properties.")
	}

	method, ok := superclass.FindMethod(e.Method.Lexeme)
	if !ok {
		return nil, NewRuntimeError(e.Method, "Undefined property '"+e.Method.Lexeme+"'.")
	}
	return method.Bind(instance), nil
}
