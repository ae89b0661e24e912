package printer_test

import (
	"testing"

	"github.com/nwidger/lox/internal/lexer"
	"github.com/nwidger/lox/internal/parser"
	"github.com/nwidger/lox/internal/printer"
)

func parse(t *testing.T, src string) *parser.Parser {
	t.Helper()
	return parser.New(lexer.New(src).Tokens())
}

func TestPrintExprFullyParenthesizesBinary(t *testing.T) {
	p := parse(t, `1 + 2 * 3;`)
	program := p.Parse()
	if p.HadError() {
		t.Fatalf("unexpected parse errors: %v", p.Errors())
	}
	got := printer.Print(program)
	want := "(1 + (2 * 3));\n"
	if got != want {
		t.Fatalf("Print() = %q, want %q", got, want)
	}
}

func TestPrintStmtClassWithSuperclass(t *testing.T) {
	p := parse(t, `class B < A { m() { return 1; } }`)
	program := p.Parse()
	if p.HadError() {
		t.Fatalf("unexpected parse errors: %v", p.Errors())
	}
	got := printer.Print(program)
	want := "class B < A { m() { return 1; } }\n"
	if got != want {
		t.Fatalf("Print() = %q, want %q", got, want)
	}
}

func TestPrintLiteralNil(t *testing.T) {
	p := parse(t, `print nil;`)
	program := p.Parse()
	if p.HadError() {
		t.Fatalf("unexpected parse errors: %v", p.Errors())
	}
	got := printer.Print(program)
	want := "print nil;\n"
	if got != want {
		t.Fatalf("Print() = %q, want %q", got, want)
	}
}
