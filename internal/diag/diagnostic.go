// Package diag formats the compile-time diagnostics (scan, parse, resolve
// errors) that precede evaluation, as specified in spec.md §7.
package diag

import (
	"fmt"
	"strings"

	"github.com/nwidger/lox/internal/token"
)

// Diagnostic is a single scan/parse/resolve error.
//
// Where is empty for a diagnostic with no token (see New), "at end" for
// the EOF token, or "at 'LEXEME'" for any other token (see AtToken). The three
// compile-time phases all funnel into this type so the driver can report
// them uniformly and set the "had error" flag exactly once.
type Diagnostic struct {
	Pos     token.Position
	Where   string
	Message string
}

// New creates a Diagnostic anchored at an arbitrary position (used by the
// scanner, which has no token to point at yet).
func New(pos token.Position, message string) *Diagnostic {
	return &Diagnostic{Pos: pos, Message: message}
}

// AtToken creates a Diagnostic anchored at a token, filling in Where per
// spec.md §6's format rule.
func AtToken(tok token.Token, message string) *Diagnostic {
	where := "at '" + tok.Lexeme + "'"
	if tok.Type.String() == "EOF" {
		where = "at end"
	}
	return &Diagnostic{Pos: tok.Pos, Where: where, Message: message}
}

// Error implements the error interface and also the canonical
// `[line N] Error<WHERE>: <msg>` wire format from spec.md §6.
func (d *Diagnostic) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "[line %d] Error", d.Pos.Line)
	if d.Where != "" {
		sb.WriteString(" ")
		sb.WriteString(d.Where)
	}
	sb.WriteString(": ")
	sb.WriteString(d.Message)
	return sb.String()
}

// Bag accumulates diagnostics across a phase without aborting on the
// first one, mirroring the teacher's had-error accumulation pattern.
type Bag struct {
	items []*Diagnostic
}

// Add records a diagnostic.
func (b *Bag) Add(d *Diagnostic) { b.items = append(b.items, d) }

// HasErrors reports whether any diagnostic was recorded.
func (b *Bag) HasErrors() bool { return len(b.items) > 0 }

// Items returns the recorded diagnostics in report order.
func (b *Bag) Items() []*Diagnostic { return b.items }

// FormatAll renders every diagnostic, one per line, in wire format.
func (b *Bag) FormatAll() string {
	var sb strings.Builder
	for _, d := range b.items {
		sb.WriteString(d.Error())
		sb.WriteString("\n")
	}
	return sb.String()
}
