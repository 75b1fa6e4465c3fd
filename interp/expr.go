// Package interp is the tree-walking core: expression evaluation and
// statement execution live in one package because they are mutually
// recursive (a call expression may run a user function's body, whose
// statements evaluate further expressions) — the same way the
// teacher's core package keeps its IR dispatch and per-instruction
// emulation together rather than splitting them across packages that
// would import each other.
package interp

import (
	"encoding/json"
	"fmt"

	"github.com/cadrun/kclexec/ast"
	"github.com/cadrun/kclexec/kclerrors"
	"github.com/cadrun/kclexec/kclvalue"
	"github.com/cadrun/kclexec/pipeline"
)

// Eval evaluates one expression node against mem, resolving any `%`
// pipe substitution through pipe (spec.md §4.C–§4.E).
func Eval(v ast.Value, mem kclvalue.Memory, pipe *pipeline.Info, eng kclvalue.EngineHandle) (kclvalue.MemoryItem, error) {
	switch n := v.(type) {
	case *ast.Literal:
		return evalLiteral(n)
	case *ast.Identifier:
		return mem.Get(n.Name, n.SourceRange)
	case *ast.PipeSubstitution:
		return evalPipeSubstitution(n, pipe)
	case *ast.BinaryExpression:
		return evalBinary(n, mem, pipe, eng)
	case *ast.UnaryExpression:
		return evalUnary(n, mem, pipe, eng)
	case *ast.MemberExpression:
		return evalMember(n, mem, pipe, eng)
	case *ast.ArrayExpression:
		return evalArray(n, mem, pipe, eng)
	case *ast.ObjectExpression:
		return evalObject(n, mem, pipe, eng)
	case *ast.CallExpression:
		return evalCall(n, mem, pipe, eng)
	case *ast.PipeExpression:
		return evalPipe(n, mem, eng)
	case *ast.FunctionExpression:
		return kclvalue.NewFunctionItem(kclvalue.Function{
			Expression: n,
			Meta:       kclvalue.MetaFromRange(n.SourceRange),
		}), nil
	default:
		return kclvalue.MemoryItem{}, kclerrors.Semanticf(v.Range(), "unhandled expression node %T", v)
	}
}

func evalLiteral(n *ast.Literal) (kclvalue.MemoryItem, error) {
	var val interface{}
	if err := json.Unmarshal(n.Raw, &val); err != nil {
		return kclvalue.MemoryItem{}, kclerrors.Syntaxf(n.SourceRange, "invalid literal: %v", err)
	}
	return kclvalue.NewUserVal(val, kclvalue.MetaFromRange(n.SourceRange)), nil
}

func evalPipeSubstitution(n *ast.PipeSubstitution, pipe *pipeline.Info) (kclvalue.MemoryItem, error) {
	if pipe == nil || !pipe.InPipe {
		return kclvalue.MemoryItem{}, kclerrors.Semanticf(n.SourceRange, "`%%` used outside of a pipe expression")
	}
	return pipe.Current(), nil
}

func asFloat(v kclvalue.MemoryItem, r ast.SourceRange) (float64, error) {
	if v.Kind != kclvalue.KindUserVal {
		return 0, kclerrors.Typef(r, "expected a number")
	}
	f, ok := v.UserVal.(float64)
	if !ok {
		return 0, kclerrors.Typef(r, "expected a number")
	}
	return f, nil
}

func evalBinary(n *ast.BinaryExpression, mem kclvalue.Memory, pipe *pipeline.Info, eng kclvalue.EngineHandle) (kclvalue.MemoryItem, error) {
	left, err := Eval(n.Left, mem, pipe, eng)
	if err != nil {
		return kclvalue.MemoryItem{}, err
	}
	right, err := Eval(n.Right, mem, pipe, eng)
	if err != nil {
		return kclvalue.MemoryItem{}, err
	}
	meta := kclvalue.UnionMeta(left.Meta, right.Meta)

	switch n.Operator {
	case ast.OpEq, ast.OpNeq:
		eq := valuesEqual(left, right)
		if n.Operator == ast.OpNeq {
			eq = !eq
		}
		return kclvalue.NewUserVal(eq, meta), nil
	case ast.OpAnd, ast.OpOr:
		lb, lok := left.UserVal.(bool)
		rb, rok := right.UserVal.(bool)
		if !lok || !rok {
			return kclvalue.MemoryItem{}, kclerrors.Typef(n.SourceRange, "expected boolean operands")
		}
		var out bool
		if n.Operator == ast.OpAnd {
			out = lb && rb
		} else {
			out = lb || rb
		}
		return kclvalue.NewUserVal(out, meta), nil
	}

	lf, err := asFloat(left, n.Left.Range())
	if err != nil {
		return kclvalue.MemoryItem{}, err
	}
	rf, err := asFloat(right, n.Right.Range())
	if err != nil {
		return kclvalue.MemoryItem{}, err
	}

	switch n.Operator {
	case ast.OpAdd:
		return kclvalue.NewUserVal(lf+rf, meta), nil
	case ast.OpSub:
		return kclvalue.NewUserVal(lf-rf, meta), nil
	case ast.OpMul:
		return kclvalue.NewUserVal(lf*rf, meta), nil
	case ast.OpDiv:
		if rf == 0 {
			return kclvalue.MemoryItem{}, kclerrors.Typef(n.SourceRange, "division by zero")
		}
		return kclvalue.NewUserVal(lf/rf, meta), nil
	case ast.OpMod:
		if rf == 0 {
			return kclvalue.MemoryItem{}, kclerrors.Typef(n.SourceRange, "modulo by zero")
		}
		return kclvalue.NewUserVal(float64(int64(lf)%int64(rf)), meta), nil
	case ast.OpLt:
		return kclvalue.NewUserVal(lf < rf, meta), nil
	case ast.OpLte:
		return kclvalue.NewUserVal(lf <= rf, meta), nil
	case ast.OpGt:
		return kclvalue.NewUserVal(lf > rf, meta), nil
	case ast.OpGte:
		return kclvalue.NewUserVal(lf >= rf, meta), nil
	default:
		return kclvalue.MemoryItem{}, kclerrors.Semanticf(n.SourceRange, "unsupported operator %q", n.Operator)
	}
}

func valuesEqual(a, b kclvalue.MemoryItem) bool {
	if a.Kind != b.Kind {
		return false
	}
	af, aok := a.UserVal.(float64)
	bf, bok := b.UserVal.(float64)
	if aok && bok {
		return af == bf
	}
	return fmt.Sprintf("%v", a.UserVal) == fmt.Sprintf("%v", b.UserVal)
}

func evalUnary(n *ast.UnaryExpression, mem kclvalue.Memory, pipe *pipeline.Info, eng kclvalue.EngineHandle) (kclvalue.MemoryItem, error) {
	v, err := Eval(n.Argument, mem, pipe, eng)
	if err != nil {
		return kclvalue.MemoryItem{}, err
	}
	switch n.Operator {
	case ast.OpNeg:
		f, err := asFloat(v, n.Argument.Range())
		if err != nil {
			return kclvalue.MemoryItem{}, err
		}
		return kclvalue.NewUserVal(-f, v.Meta), nil
	case ast.OpNot:
		b, ok := v.UserVal.(bool)
		if !ok {
			return kclvalue.MemoryItem{}, kclerrors.Typef(n.SourceRange, "expected a boolean operand")
		}
		return kclvalue.NewUserVal(!b, v.Meta), nil
	default:
		return kclvalue.MemoryItem{}, kclerrors.Semanticf(n.SourceRange, "unsupported unary operator %q", n.Operator)
	}
}

func evalMember(n *ast.MemberExpression, mem kclvalue.Memory, pipe *pipeline.Info, eng kclvalue.EngineHandle) (kclvalue.MemoryItem, error) {
	obj, err := Eval(n.Object, mem, pipe, eng)
	if err != nil {
		return kclvalue.MemoryItem{}, err
	}

	var key string
	if n.Computed {
		idx, err := Eval(n.Property, mem, pipe, eng)
		if err != nil {
			return kclvalue.MemoryItem{}, err
		}
		switch k := idx.UserVal.(type) {
		case string:
			key = k
		case float64:
			list, ok := obj.UserVal.([]interface{})
			if !ok || int(k) < 0 || int(k) >= len(list) {
				return kclvalue.MemoryItem{}, kclerrors.Typef(n.SourceRange, "array index out of range")
			}
			return kclvalue.NewUserVal(list[int(k)], obj.Meta), nil
		default:
			return kclvalue.MemoryItem{}, kclerrors.Typef(n.SourceRange, "invalid member access key")
		}
	} else {
		id, ok := n.Property.(*ast.Identifier)
		if !ok {
			return kclvalue.MemoryItem{}, kclerrors.Semanticf(n.SourceRange, "static member access requires an identifier")
		}
		key = id.Name
	}

	m, ok := obj.UserVal.(map[string]interface{})
	if !ok {
		return kclvalue.MemoryItem{}, kclerrors.Typef(n.SourceRange, "cannot access field `%s` on a non-object value", key)
	}
	v, ok := m[key]
	if !ok {
		return kclvalue.MemoryItem{}, kclerrors.Semanticf(n.SourceRange, "object has no field `%s`", key)
	}
	return kclvalue.NewUserVal(v, obj.Meta), nil
}

func evalArray(n *ast.ArrayExpression, mem kclvalue.Memory, pipe *pipeline.Info, eng kclvalue.EngineHandle) (kclvalue.MemoryItem, error) {
	out := make([]interface{}, len(n.Elements))
	var meta []kclvalue.Metadata
	for i, el := range n.Elements {
		v, err := Eval(el, mem, pipe, eng)
		if err != nil {
			return kclvalue.MemoryItem{}, err
		}
		out[i] = v.UserVal
		meta = kclvalue.UnionMeta(meta, v.Meta)
	}
	return kclvalue.NewUserVal(out, append(meta, kclvalue.MetaFromRange(n.SourceRange)...)), nil
}

func evalObject(n *ast.ObjectExpression, mem kclvalue.Memory, pipe *pipeline.Info, eng kclvalue.EngineHandle) (kclvalue.MemoryItem, error) {
	out := make(map[string]interface{}, len(n.Properties))
	var meta []kclvalue.Metadata
	for _, p := range n.Properties {
		if _, dup := out[p.Key]; dup {
			return kclvalue.MemoryItem{}, kclerrors.Semanticf(p.SourceRange, "duplicate key `%s` in object literal", p.Key)
		}
		v, err := Eval(p.Value, mem, pipe, eng)
		if err != nil {
			return kclvalue.MemoryItem{}, err
		}
		out[p.Key] = v.UserVal
		meta = kclvalue.UnionMeta(meta, v.Meta)
	}
	return kclvalue.NewUserVal(out, append(meta, kclvalue.MetaFromRange(n.SourceRange)...)), nil
}

func evalPipe(n *ast.PipeExpression, mem kclvalue.Memory, eng kclvalue.EngineHandle) (kclvalue.MemoryItem, error) {
	if len(n.Body) == 0 {
		return kclvalue.MemoryItem{}, kclerrors.Semanticf(n.SourceRange, "empty pipe expression")
	}
	if call, ok := n.Body[0].(*ast.CallExpression); ok && pipeline.ContainsSubstitution(call.Arguments) {
		return kclvalue.MemoryItem{}, kclerrors.Semanticf(n.Body[0].Range(), "`%%` has no predecessor in a pipe's first stage")
	}

	first, err := Eval(n.Body[0], mem, nil, eng)
	if err != nil {
		return kclvalue.MemoryItem{}, err
	}

	p := pipeline.Info{Results: []kclvalue.MemoryItem{first}, InPipe: true, Index: 0, Body: n.Body}
	result := first
	for _, stage := range n.Body[1:] {
		if call, ok := stage.(*ast.CallExpression); ok && !pipeline.ContainsSubstitution(call.Arguments) {
			result, err = evalPipeStageCall(call, mem, &p, eng, p.Current())
		} else {
			result, err = Eval(stage, mem, &p, eng)
		}
		if err != nil {
			return kclvalue.MemoryItem{}, err
		}
		p = p.Push(result)
	}
	return result, nil
}
