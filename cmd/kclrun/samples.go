package main

import (
	"encoding/json"

	"github.com/cadrun/kclexec/ast"
)

// samplePrograms hand-assembles the sample programs kclrun can run
// (currently only "square"), keyed by the name a fixture yaml file
// names.
// Parsing kcl source text is out of scope for this module, so kclrun
// runs pre-built ast.Program values rather than a .kcl file directly.
var samplePrograms = map[string]*ast.Program{
	"square": squareProgram(),
}

func num(f float64) ast.Value {
	raw, _ := json.Marshal(f)
	return &ast.Literal{Raw: raw}
}

func point(x, y float64) ast.Value {
	return &ast.ArrayExpression{Elements: []ast.Value{num(x), num(y)}}
}

func call(name string, args ...ast.Value) ast.Value {
	return &ast.CallExpression{Callee: ast.Identifier{Name: name}, Arguments: args}
}

// squareProgram builds:
//
//	part001 = startSketchAt([0, 0])
//	  |> line([1, 0], %)
//	  |> line([0, 1], %)
//	  |> line([-1, 0], %)
//	  |> close(%)
//	show(part001)
func squareProgram() *ast.Program {
	pipe := &ast.PipeExpression{Body: []ast.Value{
		call("startSketchAt", point(0, 0)),
		call("line", point(1, 0), &ast.PipeSubstitution{}),
		call("line", point(0, 1), &ast.PipeSubstitution{}),
		call("line", point(-1, 0), &ast.PipeSubstitution{}),
		call("close", &ast.PipeSubstitution{}),
	}}

	return &ast.Program{
		Body: []ast.BodyItem{
			&ast.VariableDeclaration{
				Declarations: []ast.VariableDeclarator{
					{ID: ast.Identifier{Name: "part001"}, Init: pipe},
				},
			},
			&ast.ExpressionStatement{
				Expression: call("show", &ast.Identifier{Name: "part001"}),
			},
		},
	}
}
