// Package token defines the token shape shared by the scanner, parser,
// resolver, and evaluator.
package token

import "fmt"

// Position identifies a single point in source text.
type Position struct {
	Line   int // 1-based line number
	Column int // 1-based column, counted in runes
	Offset int // 0-based byte offset into the source
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}
