package interp

import (
	"github.com/cadrun/kclexec/ast"
	"github.com/cadrun/kclexec/kclerrors"
	"github.com/cadrun/kclexec/kclvalue"
)

// ExecBody executes body in order against mem. It returns a non-nil
// value the moment a ReturnStatement fires (the body then stops
// executing, matching an early return), or nil once every statement
// has run with no return (spec.md §4.D).
func ExecBody(body []ast.BodyItem, bt ast.BodyType, mem kclvalue.Memory, eng kclvalue.EngineHandle) (*kclvalue.MemoryItem, error) {
	for _, item := range body {
		switch s := item.(type) {
		case *ast.ExpressionStatement:
			if err := execExpressionStatement(s, bt, mem, eng); err != nil {
				return nil, err
			}
		case *ast.VariableDeclaration:
			for _, d := range s.Declarations {
				v, err := Eval(d.Init, mem, nil, eng)
				if err != nil {
					return nil, err
				}
				if err := mem.Add(d.ID.Name, v, d.SourceRange); err != nil {
					return nil, err
				}
			}
		case *ast.ReturnStatement:
			v, err := Eval(s.Argument, mem, nil, eng)
			if err != nil {
				return nil, err
			}
			mem.SetReturnValue(v)
			return &v, nil
		default:
			return nil, kclerrors.Semanticf(item.Range(), "unhandled statement node %T", item)
		}
	}
	return nil, nil
}

// execExpressionStatement runs a bare expression at statement
// position. Only a CallExpression has any observable effect; `show`
// is the one distinguished call, legal only at Root body (I4).
func execExpressionStatement(s *ast.ExpressionStatement, bt ast.BodyType, mem kclvalue.Memory, eng kclvalue.EngineHandle) error {
	call, ok := s.Expression.(*ast.CallExpression)
	if !ok {
		return nil
	}

	if call.Callee.Name == "show" {
		if bt != ast.Root {
			return kclerrors.Semanticf(s.SourceRange, "`show` is only allowed at the top level of a program")
		}
		mem.SetReturnArguments(call.Arguments)
		return nil
	}

	_, err := Eval(call, mem, nil, eng)
	return err
}
