package ast

import (
	"strings"

	"github.com/nwidger/lox/internal/token"
)

// BlockStmt is `{ statements... }`.
type BlockStmt struct {
	LBrace     token.Token
	Statements []Stmt
}

func (s *BlockStmt) stmtNode()            {}
func (s *BlockStmt) TokenLiteral() string { return s.LBrace.Lexeme }
func (s *BlockStmt) Pos() token.Position  { return s.LBrace.Pos }
func (s *BlockStmt) String() string {
	var sb strings.Builder
	sb.WriteString("{\n")
	for _, st := range s.Statements {
		sb.WriteString("  ")
		sb.WriteString(strings.ReplaceAll(st.String(), "\n", "\n  "))
		sb.WriteString("\n")
	}
	sb.WriteString("}")
	return sb.String()
}

// FunctionStmt is a named function or method declaration.
type FunctionStmt struct {
	Name   token.Token
	Params []token.Token
	Body   []Stmt
}

func (s *FunctionStmt) stmtNode()            {}
func (s *FunctionStmt) TokenLiteral() string { return s.Name.Lexeme }
func (s *FunctionStmt) Pos() token.Position  { return s.Name.Pos }
func (s *FunctionStmt) String() string {
	params := make([]string, len(s.Params))
	for i, p := range s.Params {
		params[i] = p.Lexeme
	}
	body := &BlockStmt{LBrace: s.Name, Statements: s.Body}
	return "fun " + s.Name.Lexeme + "(" + strings.Join(params, ", ") + ") " + body.String()
}

// ClassStmt is a class declaration with an optional superclass variable
// reference and a list of method declarations.
type ClassStmt struct {
	Name       token.Token
	Superclass *VariableExpr // nil if no "< Superclass" clause
	Methods    []*FunctionStmt
}

func (s *ClassStmt) stmtNode()            {}
func (s *ClassStmt) TokenLiteral() string { return s.Name.Lexeme }
func (s *ClassStmt) Pos() token.Position  { return s.Name.Pos }
func (s *ClassStmt) String() string {
	var sb strings.Builder
	sb.WriteString("class ")
	sb.WriteString(s.Name.Lexeme)
	if s.Superclass != nil {
		sb.WriteString(" < ")
		sb.WriteString(s.Superclass.Name.Lexeme)
	}
	sb.WriteString(" {\n")
	for _, m := range s.Methods {
		sb.WriteString("  ")
		sb.WriteString(strings.ReplaceAll(m.String(), "\n", "\n  "))
		sb.WriteString("\n")
	}
	sb.WriteString("}")
	return sb.String()
}

// ExpressionStmt wraps an expression used for its side effects.
type ExpressionStmt struct {
	Expression Expr
}

func (s *ExpressionStmt) stmtNode()            {}
func (s *ExpressionStmt) TokenLiteral() string { return s.Expression.TokenLiteral() }
func (s *ExpressionStmt) Pos() token.Position  { return s.Expression.Pos() }
func (s *ExpressionStmt) String() string       { return s.Expression.String() + ";" }

// IfStmt is `if (cond) then [else else]`.
type IfStmt struct {
	Keyword    token.Token
	Condition  Expr
	ThenBranch Stmt
	ElseBranch Stmt // nil if absent
}

func (s *IfStmt) stmtNode()            {}
func (s *IfStmt) TokenLiteral() string { return s.Keyword.Lexeme }
func (s *IfStmt) Pos() token.Position  { return s.Keyword.Pos }
func (s *IfStmt) String() string {
	out := "if (" + s.Condition.String() + ") " + s.ThenBranch.String()
	if s.ElseBranch != nil {
		out += " else " + s.ElseBranch.String()
	}
	return out
}

// PrintStmt is `print expr;`.
type PrintStmt struct {
	Keyword    token.Token
	Expression Expr
}

func (s *PrintStmt) stmtNode()            {}
func (s *PrintStmt) TokenLiteral() string { return s.Keyword.Lexeme }
func (s *PrintStmt) Pos() token.Position  { return s.Keyword.Pos }
func (s *PrintStmt) String() string       { return "print " + s.Expression.String() + ";" }

// ReturnStmt is `return [expr];`.
type ReturnStmt struct {
	Keyword token.Token
	Value   Expr // nil if bare "return;"
}

func (s *ReturnStmt) stmtNode()            {}
func (s *ReturnStmt) TokenLiteral() string { return s.Keyword.Lexeme }
func (s *ReturnStmt) Pos() token.Position  { return s.Keyword.Pos }
func (s *ReturnStmt) String() string {
	if s.Value == nil {
		return "return;"
	}
	return "return " + s.Value.String() + ";"
}

// VarStmt is `var name [= initializer];`.
type VarStmt struct {
	Name        token.Token
	Initializer Expr // nil if absent
}

func (s *VarStmt) stmtNode()            {}
func (s *VarStmt) TokenLiteral() string { return s.Name.Lexeme }
func (s *VarStmt) Pos() token.Position  { return s.Name.Pos }
func (s *VarStmt) String() string {
	if s.Initializer == nil {
		return "var " + s.Name.Lexeme + ";"
	}
	return "var " + s.Name.Lexeme + " = " + s.Initializer.String() + ";"
}

// WhileStmt is `while (cond) body`, and is also the desugaring target for
// `for` per spec.md §4.2.
type WhileStmt struct {
	Keyword   token.Token
	Condition Expr
	Body      Stmt
}

func (s *WhileStmt) stmtNode()            {}
func (s *WhileStmt) TokenLiteral() string { return s.Keyword.Lexeme }
func (s *WhileStmt) Pos() token.Position  { return s.Keyword.Pos }
func (s *WhileStmt) String() string {
	return "while (" + s.Condition.String() + ") " + s.Body.String()
}
