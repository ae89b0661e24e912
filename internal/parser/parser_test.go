package parser

import (
	"testing"

	"github.com/nwidger/lox/internal/ast"
	"github.com/nwidger/lox/internal/lexer"
)

func testParser(input string) *Parser {
	return New(lexer.New(input).Tokens())
}

func checkParserErrors(t *testing.T, p *Parser) {
	t.Helper()
	if p.HadError() {
		for _, e := range p.Errors() {
			t.Errorf("parser error: %s", e.Error())
		}
		t.FailNow()
	}
}

func TestExpressionStatement(t *testing.T) {
	p := testParser(`1 + 2;`)
	program := p.Parse()
	checkParserErrors(t, p)

	if len(program.Statements) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(program.Statements))
	}
	stmt, ok := program.Statements[0].(*ast.ExpressionStmt)
	if !ok {
		t.Fatalf("expected *ast.ExpressionStmt, got %T", program.Statements[0])
	}
	if _, ok := stmt.Expression.(*ast.BinaryExpr); !ok {
		t.Fatalf("expected *ast.BinaryExpr, got %T", stmt.Expression)
	}
}

func TestOperatorPrecedence(t *testing.T) {
	p := testParser(`1 + 2 * 3;`)
	program := p.Parse()
	checkParserErrors(t, p)

	stmt := program.Statements[0].(*ast.ExpressionStmt)
	add, ok := stmt.Expression.(*ast.BinaryExpr)
	if !ok || add.Operator.Lexeme != "+" {
		t.Fatalf("expected top-level '+', got %#v", stmt.Expression)
	}
	mul, ok := add.Right.(*ast.BinaryExpr)
	if !ok || mul.Operator.Lexeme != "*" {
		t.Fatalf("expected '*' nested under '+', got %#v", add.Right)
	}
}

func TestForDesugarsIntoWhile(t *testing.T) {
	p := testParser(`for (var i = 0; i < 3; i = i + 1) print i;`)
	program := p.Parse()
	checkParserErrors(t, p)

	block, ok := program.Statements[0].(*ast.BlockStmt)
	if !ok {
		t.Fatalf("expected outer block from initializer, got %T", program.Statements[0])
	}
	if len(block.Statements) != 2 {
		t.Fatalf("expected [init, while], got %d statements", len(block.Statements))
	}
	if _, ok := block.Statements[0].(*ast.VarStmt); !ok {
		t.Fatalf("expected VarStmt initializer, got %T", block.Statements[0])
	}
	whileStmt, ok := block.Statements[1].(*ast.WhileStmt)
	if !ok {
		t.Fatalf("expected WhileStmt, got %T", block.Statements[1])
	}
	innerBlock, ok := whileStmt.Body.(*ast.BlockStmt)
	if !ok {
		t.Fatalf("expected body/increment block, got %T", whileStmt.Body)
	}
	if len(innerBlock.Statements) != 2 {
		t.Fatalf("expected [body, increment], got %d statements", len(innerBlock.Statements))
	}
}

func TestForWithoutClausesDesugars(t *testing.T) {
	p := testParser(`for (;;) print 1;`)
	program := p.Parse()
	checkParserErrors(t, p)

	whileStmt, ok := program.Statements[0].(*ast.WhileStmt)
	if !ok {
		t.Fatalf("expected bare WhileStmt with no init block, got %T", program.Statements[0])
	}
	lit, ok := whileStmt.Condition.(*ast.LiteralExpr)
	if !ok || lit.Value != true {
		t.Fatalf("expected missing condition to desugar to literal true, got %#v", whileStmt.Condition)
	}
}

func TestAssignmentTargetRewriting(t *testing.T) {
	p := testParser(`a = 1;`)
	program := p.Parse()
	checkParserErrors(t, p)
	stmt := program.Statements[0].(*ast.ExpressionStmt)
	if _, ok := stmt.Expression.(*ast.AssignExpr); !ok {
		t.Fatalf("expected AssignExpr, got %T", stmt.Expression)
	}

	p2 := testParser(`a.b = 1;`)
	program2 := p2.Parse()
	checkParserErrors(t, p2)
	stmt2 := program2.Statements[0].(*ast.ExpressionStmt)
	if _, ok := stmt2.Expression.(*ast.SetExpr); !ok {
		t.Fatalf("expected SetExpr, got %T", stmt2.Expression)
	}
}

func TestInvalidAssignmentTargetIsError(t *testing.T) {
	p := testParser(`1 = 2;`)
	p.Parse()
	if !p.HadError() {
		t.Fatal("expected an invalid assignment target error")
	}
}

func TestClassDeclarationWithSuperclass(t *testing.T) {
	p := testParser(`class B < A { m() { return 1; } }`)
	program := p.Parse()
	checkParserErrors(t, p)

	class, ok := program.Statements[0].(*ast.ClassStmt)
	if !ok {
		t.Fatalf("expected ClassStmt, got %T", program.Statements[0])
	}
	if class.Superclass == nil || class.Superclass.Name.Lexeme != "A" {
		t.Fatalf("expected superclass 'A', got %#v", class.Superclass)
	}
	if len(class.Methods) != 1 || class.Methods[0].Name.Lexeme != "m" {
		t.Fatalf("expected one method 'm', got %#v", class.Methods)
	}
}

func TestCallArgumentCap(t *testing.T) {
	args := ""
	for i := 0; i < 256; i++ {
		if i > 0 {
			args += ", "
		}
		args += "1"
	}
	p := testParser("f(" + args + ");")
	p.Parse()
	if !p.HadError() {
		t.Fatal("expected a 'more than 255 arguments' parse error")
	}
}

func TestSynchronizeAfterError(t *testing.T) {
	p := testParser(`var = ; var b = 2;`)
	program := p.Parse()
	if !p.HadError() {
		t.Fatal("expected a parse error on the malformed first declaration")
	}
	// Parsing should have recovered and continued with the second declaration.
	found := false
	for _, s := range program.Statements {
		if v, ok := s.(*ast.VarStmt); ok && v.Name.Lexeme == "b" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected synchronize to recover and parse the second var declaration")
	}
}

func TestSuperExpression(t *testing.T) {
	p := testParser(`class B < A { m() { super.m(); } }`)
	program := p.Parse()
	checkParserErrors(t, p)

	class := program.Statements[0].(*ast.ClassStmt)
	body := class.Methods[0].Body
	exprStmt := body[0].(*ast.ExpressionStmt)
	call := exprStmt.Expression.(*ast.CallExpr)
	if _, ok := call.Callee.(*ast.SuperExpr); !ok {
		t.Fatalf("expected SuperExpr callee, got %T", call.Callee)
	}
}
