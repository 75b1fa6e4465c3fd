package interp

import (
	"github.com/cadrun/kclexec/ast"
	"github.com/cadrun/kclexec/kclerrors"
	"github.com/cadrun/kclexec/kclvalue"
	"github.com/cadrun/kclexec/pipeline"
)

// evalCall resolves Callee in memory, evaluates Arguments left to
// right, and dispatches to either a native standard-library function
// or a user-defined closure (spec.md §4.F).
func evalCall(n *ast.CallExpression, mem kclvalue.Memory, pipe *pipeline.Info, eng kclvalue.EngineHandle) (kclvalue.MemoryItem, error) {
	return dispatchCall(n, mem, pipe, eng, nil)
}

// evalPipeStageCall dispatches a pipe stage's call expression, appending
// prev as the trailing positional argument. A stage that follows
// another with no explicit `%` anywhere in its own arguments implicitly
// receives the previous stage's result this way; an explicit `%`
// disables the injection for that stage (spec.md §4.E), so callers only
// reach this path once they've checked pipeline.ContainsSubstitution is
// false.
func evalPipeStageCall(n *ast.CallExpression, mem kclvalue.Memory, pipe *pipeline.Info, eng kclvalue.EngineHandle, prev kclvalue.MemoryItem) (kclvalue.MemoryItem, error) {
	return dispatchCall(n, mem, pipe, eng, &prev)
}

func dispatchCall(n *ast.CallExpression, mem kclvalue.Memory, pipe *pipeline.Info, eng kclvalue.EngineHandle, implicit *kclvalue.MemoryItem) (kclvalue.MemoryItem, error) {
	callee, err := mem.Get(n.Callee.Name, n.Callee.SourceRange)
	if err != nil {
		return kclvalue.MemoryItem{}, err
	}
	if callee.Kind != kclvalue.KindFunction {
		return kclvalue.MemoryItem{}, kclerrors.Typef(n.SourceRange, "`%s` is not callable", n.Callee.Name)
	}

	args := make([]kclvalue.MemoryItem, len(n.Arguments), len(n.Arguments)+1)
	for i, a := range n.Arguments {
		v, err := Eval(a, mem, pipe, eng)
		if err != nil {
			return kclvalue.MemoryItem{}, err
		}
		args[i] = v
	}
	if implicit != nil {
		args = append(args, *implicit)
	}

	result, err := CallFunction(*callee.Function, args, mem, eng, n.SourceRange)
	if err != nil {
		return kclvalue.MemoryItem{}, err
	}
	if result == nil {
		return kclvalue.NewUserVal(nil, nil), nil
	}
	return *result, nil
}

// CallFunction invokes fn with already-evaluated args: native
// functions run directly against the caller's engine handle; a
// user-defined closure executes its body against a fresh clone of the
// caller's memory, extended with its parameter bindings (spec.md §4.B,
// §4.F, §9 — lexical scoping via full clone rather than a scope
// chain).
func CallFunction(fn kclvalue.Function, args []kclvalue.MemoryItem, mem kclvalue.Memory, eng kclvalue.EngineHandle, callRange ast.SourceRange) (*kclvalue.MemoryItem, error) {
	if !fn.IsUser() {
		if fn.Native == nil {
			return nil, kclerrors.Semanticf(callRange, "Not a function")
		}
		result, err := fn.Native(args, mem, nil, fn.Meta, eng, callRange)
		if err != nil {
			if ke, ok := err.(*kclerrors.KclError); ok {
				return nil, kclerrors.WithOuter(ke, callRange)
			}
			return nil, err
		}
		return result, nil
	}

	params := fn.Expression.Params
	if len(args) != len(params) {
		return nil, kclerrors.Typef(callRange, "expected %d argument(s), got %d", len(params), len(args))
	}

	callMem := mem.Clone()
	for i, p := range params {
		if err := callMem.Add(p.Name, args[i], p.SourceRange); err != nil {
			return nil, err
		}
	}

	result, err := ExecBody(fn.Expression.Body, ast.Block, callMem, eng)
	if err != nil {
		if ke, ok := err.(*kclerrors.KclError); ok {
			return nil, kclerrors.WithOuter(ke, callRange)
		}
		return nil, err
	}
	return result, nil
}
