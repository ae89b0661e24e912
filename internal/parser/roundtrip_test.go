package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/nwidger/lox/internal/lexer"
	"github.com/nwidger/lox/internal/printer"
)

// assertRoundTrips parses src, renders it back to source via internal/printer,
// re-parses that rendering, and checks the two renderings agree: printing is
// deterministic, so an equivalent tree prints identically on the second pass.
func assertRoundTrips(t *testing.T, src string) {
	t.Helper()

	p1 := New(lexer.New(src).Tokens())
	program1 := p1.Parse()
	checkParserErrors(t, p1)
	rendered := printer.Print(program1)

	p2 := New(lexer.New(rendered).Tokens())
	program2 := p2.Parse()
	checkParserErrors(t, p2)
	rerendered := printer.Print(program2)

	if diff := cmp.Diff(rendered, rerendered); diff != "" {
		t.Fatalf("round trip through printer.Print is not stable (-first +second):\n%s", diff)
	}
}

func TestRoundTripArithmetic(t *testing.T) {
	assertRoundTrips(t, `print 1 + 2 * (3 - 4) / -5;`)
}

func TestRoundTripControlFlow(t *testing.T) {
	assertRoundTrips(t, `
		var i = 0;
		while (i < 3) {
			if (i == 1) print "one"; else print i;
			i = i + 1;
		}
	`)
}

func TestRoundTripClassesAndClosures(t *testing.T) {
	assertRoundTrips(t, `
		class A {
			init(x) { this.x = x; }
			get() { return this.x; }
		}
		class B < A {
			get() { return super.get() + 1; }
		}
		fun makeAdder(n) {
			fun add(x) { return x + n; }
			return add;
		}
		var b = B(10);
		print b.get();
		print makeAdder(5)(1);
	`)
}
