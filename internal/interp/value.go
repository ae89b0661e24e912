// Package interp implements the tree-walking evaluator: it executes a
// resolved AST against a chain of lexical environments.
package interp

import "fmt"

// Value is the runtime value type: number (float64), string, bool, nil
// (Go nil), or a Callable/*Instance.
type Value = any

// Stringify renders a value the way `print` does, per spec.md §4.5.
func Stringify(v Value) string {
	if v == nil {
		return "nil"
	}
	switch x := v.(type) {
	case float64:
		return formatNumber(x)
	case string:
		return x
	case bool:
		if x {
			return "true"
		}
		return "false"
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprintf("%v", x)
	}
}

func formatNumber(f float64) string {
	text := fmt.Sprintf("%v", f)
	// Go already renders whole floats without a trailing ".0" (e.g. "3"
	// rather than "3.0"), matching the language's print formatting rule.
	return text
}

// isTruthy applies the language's truthiness rule: nil and false are
// falsey, every other value (including 0 and "") is truthy.
func isTruthy(v Value) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return true
}

// isEqual applies structural equality: cross-kind comparisons are false,
// two nils are equal, numbers and strings compare by value.
func isEqual(a, b Value) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a == b
}
