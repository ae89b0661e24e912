// Package ast defines the abstract syntax tree produced by the parser and
// walked by the resolver and evaluator.
package ast

import "github.com/nwidger/lox/internal/token"

// Node is the base interface every AST node implements.
type Node interface {
	TokenLiteral() string
	String() string
	Pos() token.Position
}

// Expr is any node that produces a value.
//
// Every Expr carries a stable identity (see ID/NewID below) so the
// resolver's side-table can key on it independent of its token, per
// spec.md §3's "expression identity" invariant.
type Expr interface {
	Node
	exprNode()
	ExprID() ID
}

// Stmt is any node that performs an action without producing a value.
type Stmt interface {
	Node
	stmtNode()
}

// ID is the resolver side-table key type: a stable identity assigned to
// each expression node when it is constructed.
type ID uint64

var nextID ID

// NewID returns a fresh, never-reused expression identity. Called exactly
// once per expression node constructor.
func NewID() ID {
	nextID++
	return nextID
}

// ExprBase is embedded by every Expr implementation to supply ExprID.
type ExprBase struct {
	id ID
}

// NewExprBase constructs an ExprBase with a freshly allocated identity.
func NewExprBase() ExprBase { return ExprBase{id: NewID()} }

func (b ExprBase) ExprID() ID { return b.id }

// Program is the root of the tree: the sequence of top-level declarations.
type Program struct {
	Statements []Stmt
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

func (p *Program) String() string {
	out := ""
	for _, s := range p.Statements {
		out += s.String()
	}
	return out
}

func (p *Program) Pos() token.Position {
	if len(p.Statements) > 0 {
		return p.Statements[0].Pos()
	}
	return token.Position{Line: 1, Column: 1}
}
