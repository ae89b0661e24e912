package ast

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/nwidger/lox/internal/token"
)

// AssignExpr is `name = value`.
type AssignExpr struct {
	ExprBase
	Name  token.Token
	Value Expr
}

func (e *AssignExpr) exprNode()             {}
func (e *AssignExpr) TokenLiteral() string  { return e.Name.Lexeme }
func (e *AssignExpr) Pos() token.Position   { return e.Name.Pos }
func (e *AssignExpr) String() string        { return fmt.Sprintf("(%s = %s)", e.Name.Lexeme, e.Value.String()) }
func NewAssignExpr(name token.Token, value Expr) *AssignExpr {
	return &AssignExpr{ExprBase: NewExprBase(), Name: name, Value: value}
}

// BinaryExpr is `left op right` for arithmetic, comparison, and equality.
type BinaryExpr struct {
	ExprBase
	Left     Expr
	Operator token.Token
	Right    Expr
}

func (e *BinaryExpr) exprNode()            {}
func (e *BinaryExpr) TokenLiteral() string { return e.Operator.Lexeme }
func (e *BinaryExpr) Pos() token.Position  { return e.Operator.Pos }
func (e *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", e.Left.String(), e.Operator.Lexeme, e.Right.String())
}
func NewBinaryExpr(left Expr, op token.Token, right Expr) *BinaryExpr {
	return &BinaryExpr{ExprBase: NewExprBase(), Left: left, Operator: op, Right: right}
}

// LogicalExpr is `left and/or right`, which short-circuits.
type LogicalExpr struct {
	ExprBase
	Left     Expr
	Operator token.Token
	Right    Expr
}

func (e *LogicalExpr) exprNode()            {}
func (e *LogicalExpr) TokenLiteral() string { return e.Operator.Lexeme }
func (e *LogicalExpr) Pos() token.Position  { return e.Operator.Pos }
func (e *LogicalExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", e.Left.String(), e.Operator.Lexeme, e.Right.String())
}
func NewLogicalExpr(left Expr, op token.Token, right Expr) *LogicalExpr {
	return &LogicalExpr{ExprBase: NewExprBase(), Left: left, Operator: op, Right: right}
}

// UnaryExpr is `-operand` or `!operand`.
type UnaryExpr struct {
	ExprBase
	Operator token.Token
	Right    Expr
}

func (e *UnaryExpr) exprNode()            {}
func (e *UnaryExpr) TokenLiteral() string { return e.Operator.Lexeme }
func (e *UnaryExpr) Pos() token.Position  { return e.Operator.Pos }
func (e *UnaryExpr) String() string {
	return fmt.Sprintf("(%s%s)", e.Operator.Lexeme, e.Right.String())
}
func NewUnaryExpr(op token.Token, right Expr) *UnaryExpr {
	return &UnaryExpr{ExprBase: NewExprBase(), Operator: op, Right: right}
}

// CallExpr is `callee(args...)`.
type CallExpr struct {
	ExprBase
	Callee Expr
	Paren  token.Token // closing ')', used for runtime error position
	Args   []Expr
}

func (e *CallExpr) exprNode()            {}
func (e *CallExpr) TokenLiteral() string { return e.Paren.Lexeme }
func (e *CallExpr) Pos() token.Position  { return e.Callee.Pos() }
func (e *CallExpr) String() string {
	args := make([]string, len(e.Args))
	for i, a := range e.Args {
		args[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", e.Callee.String(), strings.Join(args, ", "))
}
func NewCallExpr(callee Expr, paren token.Token, args []Expr) *CallExpr {
	return &CallExpr{ExprBase: NewExprBase(), Callee: callee, Paren: paren, Args: args}
}

// GetExpr is `object.name`, a property read.
type GetExpr struct {
	ExprBase
	Object Expr
	Name   token.Token
}

func (e *GetExpr) exprNode()            {}
func (e *GetExpr) TokenLiteral() string { return e.Name.Lexeme }
func (e *GetExpr) Pos() token.Position  { return e.Name.Pos }
func (e *GetExpr) String() string       { return fmt.Sprintf("%s.%s", e.Object.String(), e.Name.Lexeme) }
func NewGetExpr(object Expr, name token.Token) *GetExpr {
	return &GetExpr{ExprBase: NewExprBase(), Object: object, Name: name}
}

// SetExpr is `object.name = value`, a property write.
type SetExpr struct {
	ExprBase
	Object Expr
	Name   token.Token
	Value  Expr
}

func (e *SetExpr) exprNode()            {}
func (e *SetExpr) TokenLiteral() string { return e.Name.Lexeme }
func (e *SetExpr) Pos() token.Position  { return e.Name.Pos }
func (e *SetExpr) String() string {
	return fmt.Sprintf("(%s.%s = %s)", e.Object.String(), e.Name.Lexeme, e.Value.String())
}
func NewSetExpr(object Expr, name token.Token, value Expr) *SetExpr {
	return &SetExpr{ExprBase: NewExprBase(), Object: object, Name: name, Value: value}
}

// SuperExpr is `super.method`.
type SuperExpr struct {
	ExprBase
	Keyword token.Token
	Method  token.Token
}

func (e *SuperExpr) exprNode()            {}
func (e *SuperExpr) TokenLiteral() string { return e.Keyword.Lexeme }
func (e *SuperExpr) Pos() token.Position  { return e.Keyword.Pos }
func (e *SuperExpr) String() string       { return fmt.Sprintf("super.%s", e.Method.Lexeme) }
func NewSuperExpr(keyword, method token.Token) *SuperExpr {
	return &SuperExpr{ExprBase: NewExprBase(), Keyword: keyword, Method: method}
}

// ThisExpr is the `this` keyword used as an expression.
type ThisExpr struct {
	ExprBase
	Keyword token.Token
}

func (e *ThisExpr) exprNode()            {}
func (e *ThisExpr) TokenLiteral() string { return e.Keyword.Lexeme }
func (e *ThisExpr) Pos() token.Position  { return e.Keyword.Pos }
func (e *ThisExpr) String() string       { return "this" }
func NewThisExpr(keyword token.Token) *ThisExpr {
	return &ThisExpr{ExprBase: NewExprBase(), Keyword: keyword}
}

// GroupingExpr is a parenthesized sub-expression.
type GroupingExpr struct {
	ExprBase
	Token      token.Token // the '(' token
	Expression Expr
}

func (e *GroupingExpr) exprNode()            {}
func (e *GroupingExpr) TokenLiteral() string { return e.Token.Lexeme }
func (e *GroupingExpr) Pos() token.Position  { return e.Token.Pos }
func (e *GroupingExpr) String() string {
	var out bytes.Buffer
	out.WriteString("(group ")
	out.WriteString(e.Expression.String())
	out.WriteString(")")
	return out.String()
}
func NewGroupingExpr(tok token.Token, inner Expr) *GroupingExpr {
	return &GroupingExpr{ExprBase: NewExprBase(), Token: tok, Expression: inner}
}

// LiteralExpr is a number, string, boolean, or nil literal.
type LiteralExpr struct {
	ExprBase
	Token token.Token
	Value token.Literal // nil means the nil literal
}

func (e *LiteralExpr) exprNode()            {}
func (e *LiteralExpr) TokenLiteral() string { return e.Token.Lexeme }
func (e *LiteralExpr) Pos() token.Position  { return e.Token.Pos }
func (e *LiteralExpr) String() string {
	if e.Value == nil {
		return "nil"
	}
	return fmt.Sprintf("%v", e.Value)
}
func NewLiteralExpr(tok token.Token, value token.Literal) *LiteralExpr {
	return &LiteralExpr{ExprBase: NewExprBase(), Token: tok, Value: value}
}

// VariableExpr is a bare identifier used as an expression.
type VariableExpr struct {
	ExprBase
	Name token.Token
}

func (e *VariableExpr) exprNode()            {}
func (e *VariableExpr) TokenLiteral() string { return e.Name.Lexeme }
func (e *VariableExpr) Pos() token.Position  { return e.Name.Pos }
func (e *VariableExpr) String() string       { return e.Name.Lexeme }
func NewVariableExpr(name token.Token) *VariableExpr {
	return &VariableExpr{ExprBase: NewExprBase(), Name: name}
}
