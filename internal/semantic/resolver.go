package semantic

import (
	"github.com/nwidger/lox/internal/ast"
	"github.com/nwidger/lox/internal/diag"
	"github.com/nwidger/lox/internal/token"
)

// functionType tracks what kind of function body is currently being
// resolved, so `return` and `this` can be validated contextually.
type functionType int

const (
	functionNone functionType = iota
	functionFunction
	functionInitializer
	functionMethod
)

// classType tracks whether the resolver is inside a class body, and
// whether that class has a superclass, so `this`/`super` can be validated.
type classType int

const (
	classNone classType = iota
	classClass
	classSubclass
)

// Resolver is a static pass that walks the AST exactly once, maintaining a
// stack of lexical scopes, and writes variable-reference depths into the
// shared PassContext's side-table.
type Resolver struct {
	scopes          []map[string]bool
	currentFunction functionType
	currentClass    classType
}

// NewResolver creates a Resolver ready to run as a Pass.
func NewResolver() *Resolver { return &Resolver{} }

// Name implements Pass.
func (r *Resolver) Name() string { return "resolver" }

// Run implements Pass: it resolves every statement of the program.
func (r *Resolver) Run(program *ast.Program, ctx *PassContext) error {
	r.resolveStmts(program.Statements, ctx)
	return nil
}

// --- scope stack ---

func (r *Resolver) beginScope() { r.scopes = append(r.scopes, map[string]bool{}) }

func (r *Resolver) endScope() { r.scopes = r.scopes[:len(r.scopes)-1] }

func (r *Resolver) scope() map[string]bool {
	if len(r.scopes) == 0 {
		return nil
	}
	return r.scopes[len(r.scopes)-1]
}

// declare inserts name into the innermost scope as not-yet-defined. A
// no-op at global scope, where there is no scope map to track shadowing.
func (r *Resolver) declare(name token.Token, ctx *PassContext) {
	scope := r.scope()
	if scope == nil {
		return
	}
	if _, exists := scope[name.Lexeme]; exists {
		ctx.addError(diag.AtToken(name, "Already a variable with this name in this scope."))
	}
	scope[name.Lexeme] = false
}

func (r *Resolver) define(name token.Token) {
	if scope := r.scope(); scope != nil {
		scope[name.Lexeme] = true
	}
}

// resolveLocal records the expression's depth by scanning the scope stack
// from innermost outward; absence leaves it as a global reference.
func (r *Resolver) resolveLocal(expr ast.Expr, name token.Token, ctx *PassContext) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			ctx.Locals[expr.ExprID()] = len(r.scopes) - 1 - i
			return
		}
	}
}

// --- statements ---

func (r *Resolver) resolveStmts(stmts []ast.Stmt, ctx *PassContext) {
	for _, s := range stmts {
		r.resolveStmt(s, ctx)
	}
}

func (r *Resolver) resolveStmt(stmt ast.Stmt, ctx *PassContext) {
	switch s := stmt.(type) {
	case *ast.BlockStmt:
		r.beginScope()
		r.resolveStmts(s.Statements, ctx)
		r.endScope()

	case *ast.VarStmt:
		r.declare(s.Name, ctx)
		if s.Initializer != nil {
			r.resolveExpr(s.Initializer, ctx)
		}
		r.define(s.Name)

	case *ast.FunctionStmt:
		r.declare(s.Name, ctx)
		r.define(s.Name)
		r.resolveFunction(s, functionFunction, ctx)

	case *ast.ClassStmt:
		r.resolveClass(s, ctx)

	case *ast.ExpressionStmt:
		r.resolveExpr(s.Expression, ctx)

	case *ast.IfStmt:
		r.resolveExpr(s.Condition, ctx)
		r.resolveStmt(s.ThenBranch, ctx)
		if s.ElseBranch != nil {
			r.resolveStmt(s.ElseBranch, ctx)
		}

	case *ast.PrintStmt:
		r.resolveExpr(s.Expression, ctx)

	case *ast.ReturnStmt:
		if r.currentFunction == functionNone {
			ctx.addError(diag.AtToken(s.Keyword, "Can't return from top-level code."))
		}
		if s.Value != nil {
			if r.currentFunction == functionInitializer {
				ctx.addError(diag.AtToken(s.Keyword, "Can't return a value from an initializer."))
			}
			r.resolveExpr(s.Value, ctx)
		}

	case *ast.WhileStmt:
		r.resolveExpr(s.Condition, ctx)
		r.resolveStmt(s.Body, ctx)
	}
}

func (r *Resolver) resolveFunction(fn *ast.FunctionStmt, typ functionType, ctx *PassContext) {
	enclosing := r.currentFunction
	r.currentFunction = typ

	r.beginScope()
	for _, param := range fn.Params {
		r.declare(param, ctx)
		r.define(param)
	}
	r.resolveStmts(fn.Body, ctx)
	r.endScope()

	r.currentFunction = enclosing
}

func (r *Resolver) resolveClass(s *ast.ClassStmt, ctx *PassContext) {
	enclosingClass := r.currentClass
	r.currentClass = classClass

	r.declare(s.Name, ctx)
	r.define(s.Name)

	if s.Superclass != nil {
		if s.Superclass.Name.Lexeme == s.Name.Lexeme {
			ctx.addError(diag.AtToken(s.Superclass.Name, "A class can't inherit from itself."))
		}
		r.currentClass = classSubclass
		r.resolveExpr(s.Superclass, ctx)

		r.beginScope()
		r.scope()["super"] = true
	}

	r.beginScope()
	r.scope()["this"] = true

	for _, method := range s.Methods {
		declType := functionMethod
		if method.Name.Lexeme == "init" {
			declType = functionInitializer
		}
		r.resolveFunction(method, declType, ctx)
	}

	r.endScope()

	if s.Superclass != nil {
		r.endScope()
	}

	r.currentClass = enclosingClass
}

// --- expressions ---

func (r *Resolver) resolveExpr(expr ast.Expr, ctx *PassContext) {
	switch e := expr.(type) {
	case *ast.VariableExpr:
		if scope := r.scope(); scope != nil {
			if defined, ok := scope[e.Name.Lexeme]; ok && !defined {
				ctx.addError(diag.AtToken(e.Name, "Can't read local variable in its own initializer."))
			}
		}
		r.resolveLocal(e, e.Name, ctx)

	case *ast.AssignExpr:
		r.resolveExpr(e.Value, ctx)
		r.resolveLocal(e, e.Name, ctx)

	case *ast.BinaryExpr:
		r.resolveExpr(e.Left, ctx)
		r.resolveExpr(e.Right, ctx)

	case *ast.LogicalExpr:
		r.resolveExpr(e.Left, ctx)
		r.resolveExpr(e.Right, ctx)

	case *ast.UnaryExpr:
		r.resolveExpr(e.Right, ctx)

	case *ast.CallExpr:
		r.resolveExpr(e.Callee, ctx)
		for _, arg := range e.Args {
			r.resolveExpr(arg, ctx)
		}

	case *ast.GetExpr:
		r.resolveExpr(e.Object, ctx)

	case *ast.SetExpr:
		r.resolveExpr(e.Value, ctx)
		r.resolveExpr(e.Object, ctx)

	case *ast.ThisExpr:
		if r.currentClass == classNone {
			ctx.addError(diag.AtToken(e.Keyword, "Can't use 'this' outside of a class."))
			return
		}
		r.resolveLocal(e, e.Keyword, ctx)

	case *ast.SuperExpr:
		switch r.currentClass {
		case classNone:
			ctx.addError(diag.AtToken(e.Keyword, "Can't use 'super' outside of a class."))
		case classClass:
			ctx.addError(diag.AtToken(e.Keyword, "Can't use 'super' in a class with no superclass."))
		}
		r.resolveLocal(e, e.Keyword, ctx)

	case *ast.GroupingExpr:
		r.resolveExpr(e.Expression, ctx)

	case *ast.LiteralExpr:
		// nothing to resolve
	}
}
