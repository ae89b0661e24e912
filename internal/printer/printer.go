// Package printer renders a parsed AST back into source text. It plays the
// role original_source/src/interpreter/ast_printer.rs plays for the Rust
// reference, redone as a type-switch visitor over this repository's own
// ast.Expr/ast.Stmt interfaces, and producing syntax that re-parses to an
// equivalent tree rather than the debug form ast.Node.String() already
// gives each node (which, for one, renders groupings as "(group ...)").
package printer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nwidger/lox/internal/ast"
)

// Print renders every top-level statement in program, one per line.
func Print(program *ast.Program) string {
	var sb strings.Builder
	for _, s := range program.Statements {
		sb.WriteString(PrintStmt(s))
		sb.WriteString("\n")
	}
	return sb.String()
}

// PrintExpr renders a single expression as valid source text, always fully
// parenthesized so the result re-parses to the same tree shape regardless
// of the surrounding precedence context.
func PrintExpr(e ast.Expr) string {
	switch e := e.(type) {
	case *ast.AssignExpr:
		return fmt.Sprintf("(%s = %s)", e.Name.Lexeme, PrintExpr(e.Value))

	case *ast.BinaryExpr:
		return fmt.Sprintf("(%s %s %s)", PrintExpr(e.Left), e.Operator.Lexeme, PrintExpr(e.Right))

	case *ast.LogicalExpr:
		return fmt.Sprintf("(%s %s %s)", PrintExpr(e.Left), e.Operator.Lexeme, PrintExpr(e.Right))

	case *ast.UnaryExpr:
		return fmt.Sprintf("(%s%s)", e.Operator.Lexeme, PrintExpr(e.Right))

	case *ast.CallExpr:
		args := make([]string, len(e.Args))
		for i, a := range e.Args {
			args[i] = PrintExpr(a)
		}
		return fmt.Sprintf("%s(%s)", PrintExpr(e.Callee), strings.Join(args, ", "))

	case *ast.GetExpr:
		return fmt.Sprintf("%s.%s", PrintExpr(e.Object), e.Name.Lexeme)

	case *ast.SetExpr:
		return fmt.Sprintf("(%s.%s = %s)", PrintExpr(e.Object), e.Name.Lexeme, PrintExpr(e.Value))

	case *ast.SuperExpr:
		return fmt.Sprintf("super.%s", e.Method.Lexeme)

	case *ast.ThisExpr:
		return "this"

	case *ast.GroupingExpr:
		return fmt.Sprintf("(%s)", PrintExpr(e.Expression))

	case *ast.LiteralExpr:
		return literalText(e)

	case *ast.VariableExpr:
		return e.Name.Lexeme

	default:
		return fmt.Sprintf("<?printer: unhandled expr %T>", e)
	}
}

func literalText(e *ast.LiteralExpr) string {
	if e.Value == nil {
		return "nil"
	}
	switch v := e.Value.(type) {
	case string:
		// Lox strings have no escapes and cannot contain '"', so the raw
		// text between quotes reads back as the same value.
		return `"` + v + `"`
	case float64:
		// Plain decimal form: the scanner has no exponent syntax.
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// PrintStmt renders a single statement as valid source text.
func PrintStmt(s ast.Stmt) string {
	switch s := s.(type) {
	case *ast.BlockStmt:
		var sb strings.Builder
		sb.WriteString("{ ")
		for _, st := range s.Statements {
			sb.WriteString(PrintStmt(st))
			sb.WriteString(" ")
		}
		sb.WriteString("}")
		return sb.String()

	case *ast.ClassStmt:
		var sb strings.Builder
		sb.WriteString("class ")
		sb.WriteString(s.Name.Lexeme)
		if s.Superclass != nil {
			sb.WriteString(" < ")
			sb.WriteString(s.Superclass.Name.Lexeme)
		}
		sb.WriteString(" { ")
		for _, m := range s.Methods {
			sb.WriteString(printFunction(m, false))
			sb.WriteString(" ")
		}
		sb.WriteString("}")
		return sb.String()

	case *ast.ExpressionStmt:
		return PrintExpr(s.Expression) + ";"

	case *ast.FunctionStmt:
		return printFunction(s, true)

	case *ast.IfStmt:
		out := "if (" + PrintExpr(s.Condition) + ") " + PrintStmt(s.ThenBranch)
		if s.ElseBranch != nil {
			out += " else " + PrintStmt(s.ElseBranch)
		}
		return out

	case *ast.PrintStmt:
		return "print " + PrintExpr(s.Expression) + ";"

	case *ast.ReturnStmt:
		if s.Value == nil {
			return "return;"
		}
		return "return " + PrintExpr(s.Value) + ";"

	case *ast.VarStmt:
		if s.Initializer == nil {
			return "var " + s.Name.Lexeme + ";"
		}
		return "var " + s.Name.Lexeme + " = " + PrintExpr(s.Initializer) + ";"

	case *ast.WhileStmt:
		return "while (" + PrintExpr(s.Condition) + ") " + PrintStmt(s.Body)

	default:
		return fmt.Sprintf("<?printer: unhandled stmt %T>", s)
	}
}

func printFunction(fn *ast.FunctionStmt, keyword bool) string {
	params := make([]string, len(fn.Params))
	for i, p := range fn.Params {
		params[i] = p.Lexeme
	}
	var sb strings.Builder
	if keyword {
		sb.WriteString("fun ")
	}
	sb.WriteString(fn.Name.Lexeme)
	sb.WriteString("(")
	sb.WriteString(strings.Join(params, ", "))
	sb.WriteString(") ")
	sb.WriteString(PrintStmt(&ast.BlockStmt{LBrace: fn.Name, Statements: fn.Body}))
	return sb.String()
}
