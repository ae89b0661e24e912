package lexer

import (
	"testing"

	"github.com/nwidger/lox/internal/token"
)

func TestNextToken(t *testing.T) {
	input := `var x = 5;
	x = x + 10;
	`

	tests := []struct {
		expectedLexeme string
		expectedType   token.Type
	}{
		{"var", token.VAR},
		{"x", token.IDENTIFIER},
		{"=", token.EQUAL},
		{"5", token.NUMBER},
		{";", token.SEMICOLON},
		{"x", token.IDENTIFIER},
		{"=", token.EQUAL},
		{"x", token.IDENTIFIER},
		{"+", token.PLUS},
		{"10", token.NUMBER},
		{";", token.SEMICOLON},
		{"", token.EOF},
	}

	l := New(input)

	for i, tt := range tests {
		tok := l.NextToken()

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%s, got=%s (lexeme=%q)",
				i, tt.expectedType, tok.Type, tok.Lexeme)
		}

		if tok.Lexeme != tt.expectedLexeme {
			t.Fatalf("tests[%d] - lexeme wrong. expected=%q, got=%q", i, tt.expectedLexeme, tok.Lexeme)
		}
	}
}

func TestKeywords(t *testing.T) {
	input := `and class else false for fun if nil or print return super this true var while`

	tests := []struct {
		expectedLexeme string
		expectedType   token.Type
	}{
		{"and", token.AND},
		{"class", token.CLASS},
		{"else", token.ELSE},
		{"false", token.FALSE},
		{"for", token.FOR},
		{"fun", token.FUN},
		{"if", token.IF},
		{"nil", token.NIL},
		{"or", token.OR},
		{"print", token.PRINT},
		{"return", token.RETURN},
		{"super", token.SUPER},
		{"this", token.THIS},
		{"true", token.TRUE},
		{"var", token.VAR},
		{"while", token.WHILE},
		{"", token.EOF},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%s, got=%s (lexeme=%q)",
				i, tt.expectedType, tok.Type, tok.Lexeme)
		}
	}
}

func TestOperators(t *testing.T) {
	input := `( ) { } , . - + ; * / ! != = == > >= < <=`

	expected := []token.Type{
		token.LEFT_PAREN, token.RIGHT_PAREN, token.LEFT_BRACE, token.RIGHT_BRACE,
		token.COMMA, token.DOT, token.MINUS, token.PLUS, token.SEMICOLON, token.STAR,
		token.SLASH, token.BANG, token.BANG_EQUAL, token.EQUAL, token.EQUAL_EQUAL,
		token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL, token.EOF,
	}

	l := New(input)
	for i, want := range expected {
		tok := l.NextToken()
		if tok.Type != want {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%s, got=%s", i, want, tok.Type)
		}
	}
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		input string
		value float64
	}{
		{"123", 123},
		{"123.456", 123.456},
		{"0.5", 0.5},
	}
	for _, tt := range tests {
		l := New(tt.input)
		tok := l.NextToken()
		if tok.Type != token.NUMBER {
			t.Fatalf("input %q: expected NUMBER, got %s", tt.input, tok.Type)
		}
		if tok.Literal.(float64) != tt.value {
			t.Fatalf("input %q: expected value %v, got %v", tt.input, tt.value, tok.Literal)
		}
	}
}

func TestNumberTrailingDotNotConsumed(t *testing.T) {
	// "123." has no digit after the dot, so the dot is a separate token,
	// matching spec.md's "no leading or trailing dot" number grammar.
	l := New("123.")
	tok := l.NextToken()
	if tok.Type != token.NUMBER || tok.Lexeme != "123" {
		t.Fatalf("expected NUMBER '123', got %s %q", tok.Type, tok.Lexeme)
	}
	dot := l.NextToken()
	if dot.Type != token.DOT {
		t.Fatalf("expected DOT, got %s", dot.Type)
	}
}

func TestString(t *testing.T) {
	l := New(`"hello world"`)
	tok := l.NextToken()
	if tok.Type != token.STRING {
		t.Fatalf("expected STRING, got %s", tok.Type)
	}
	if tok.Literal.(string) != "hello world" {
		t.Fatalf("expected literal %q, got %q", "hello world", tok.Literal)
	}
	if l.HadError() {
		t.Fatalf("unexpected errors: %v", l.Errors())
	}
}

func TestStringSpansLines(t *testing.T) {
	l := New("\"line one\nline two\"")
	tok := l.NextToken()
	if tok.Type != token.STRING {
		t.Fatalf("expected STRING, got %s", tok.Type)
	}
	if tok.Literal.(string) != "line one\nline two" {
		t.Fatalf("unexpected literal %q", tok.Literal)
	}
	next := l.NextToken()
	if next.Pos.Line != 2 {
		t.Fatalf("expected line counter to advance past the embedded newline, got line %d", next.Pos.Line)
	}
}

func TestUnterminatedString(t *testing.T) {
	l := New(`"never closed`)
	l.NextToken()
	if !l.HadError() {
		t.Fatal("expected an unterminated string error")
	}
}

func TestLineComment(t *testing.T) {
	l := New("// this is ignored\nvar")
	tok := l.NextToken()
	if tok.Type != token.VAR {
		t.Fatalf("expected comment to be skipped, got %s", tok.Type)
	}
	if tok.Pos.Line != 2 {
		t.Fatalf("expected token on line 2, got %d", tok.Pos.Line)
	}
}

func TestIllegalCharacterContinuesScanning(t *testing.T) {
	l := New("@ var")
	toks := l.Tokens()
	if !l.HadError() {
		t.Fatal("expected an illegal-character error")
	}
	if len(toks) != 3 || toks[0].Type != token.ILLEGAL || toks[1].Type != token.VAR || toks[2].Type != token.EOF {
		t.Fatalf("expected scanning to continue past the illegal character, got %+v", toks)
	}
}

func TestTokensAlwaysEndsInEOF(t *testing.T) {
	toks := New("").Tokens()
	if len(toks) != 1 || toks[0].Type != token.EOF {
		t.Fatalf("expected a single EOF token for empty input, got %+v", toks)
	}
}

func TestBOMStripped(t *testing.T) {
	l := New("\xEF\xBB\xBFvar")
	tok := l.NextToken()
	if tok.Type != token.VAR {
		t.Fatalf("expected BOM to be stripped, got %s", tok.Type)
	}
}
