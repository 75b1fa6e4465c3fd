// Package pipeline threads the implicit "previous result" through the
// stages of a `|>` expression (spec.md §4.E).
package pipeline

import (
	"github.com/cadrun/kclexec/ast"
	"github.com/cadrun/kclexec/kclvalue"
)

// Info is the state carried between pipeline stages: an ordered list
// of previous results (so a later stage could in principle reference
// an earlier one), whether evaluation is currently inside a pipe, the
// current stage index, and the raw AST body so a standard-library
// operation needing to resolve `%` against the parsed form (e.g.
// segLen) can do so.
type Info struct {
	Results  []kclvalue.MemoryItem
	InPipe   bool
	Index    int
	Body     []ast.Value
}

// Current returns the most recently recorded stage result, the
// substitution value for `%` in the stage being evaluated. Calling it
// with no recorded result is a programming error in the caller — stage
// 0 never sees a PipeSubstitution.
func (p Info) Current() kclvalue.MemoryItem {
	return p.Results[len(p.Results)-1]
}

// Push records a completed stage's result and advances the index.
func (p Info) Push(v kclvalue.MemoryItem) Info {
	return Info{
		Results: append(append([]kclvalue.MemoryItem(nil), p.Results...), v),
		InPipe:  true,
		Index:   p.Index + 1,
		Body:    p.Body,
	}
}

// ContainsSubstitution reports whether a PipeSubstitution placeholder
// appears anywhere in the argument list of a call stage, including
// inside arrays, objects, operators, member accesses and nested calls.
// It does not recurse into nested pipes or nested function literals,
// whose own `%` resolves against their own enclosing pipe (spec.md
// scenario S5).
func ContainsSubstitution(args []ast.Value) bool {
	for _, a := range args {
		if containsSubstitution(a) {
			return true
		}
	}
	return false
}

func containsSubstitution(v ast.Value) bool {
	switch n := v.(type) {
	case *ast.PipeSubstitution:
		return true
	case *ast.ArrayExpression:
		return ContainsSubstitution(n.Elements)
	case *ast.ObjectExpression:
		for _, p := range n.Properties {
			if containsSubstitution(p.Value) {
				return true
			}
		}
		return false
	case *ast.BinaryExpression:
		return containsSubstitution(n.Left) || containsSubstitution(n.Right)
	case *ast.UnaryExpression:
		return containsSubstitution(n.Argument)
	case *ast.MemberExpression:
		return containsSubstitution(n.Object) || containsSubstitution(n.Property)
	case *ast.CallExpression:
		// A nested call within the same stage shares this stage's `%`
		// scope (spec.md scenario S5); PipeExpression and
		// FunctionExpression bodies start a new scope and are
		// intentionally left opaque here.
		return ContainsSubstitution(n.Arguments)
	default:
		return false
	}
}
