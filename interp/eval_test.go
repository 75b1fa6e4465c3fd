package interp_test

import (
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/cadrun/kclexec/ast"
	"github.com/cadrun/kclexec/interp"
	"github.com/cadrun/kclexec/kclvalue"
	"github.com/cadrun/kclexec/memory"
)

func lit(v float64) ast.Value {
	raw, _ := json.Marshal(v)
	return &ast.Literal{Raw: raw}
}

var _ = Describe("Eval", func() {
	var (
		mem *memory.ProgramMemory
		eng *stubEngine
	)

	BeforeEach(func() {
		mem = memory.New()
		eng = &stubEngine{}
	})

	It("evaluates a numeric literal", func() {
		v, err := interp.Eval(lit(3.5), mem, nil, eng)
		Expect(err).NotTo(HaveOccurred())
		Expect(v.UserVal).To(Equal(3.5))
	})

	It("evaluates arithmetic binary expressions", func() {
		expr := &ast.BinaryExpression{Operator: ast.OpAdd, Left: lit(2), Right: lit(3)}
		v, err := interp.Eval(expr, mem, nil, eng)
		Expect(err).NotTo(HaveOccurred())
		Expect(v.UserVal).To(Equal(5.0))
	})

	It("rejects division by zero", func() {
		expr := &ast.BinaryExpression{Operator: ast.OpDiv, Left: lit(1), Right: lit(0)}
		_, err := interp.Eval(expr, mem, nil, eng)
		Expect(err).To(HaveOccurred())
	})

	It("rejects `%` outside of a pipe", func() {
		_, err := interp.Eval(&ast.PipeSubstitution{}, mem, nil, eng)
		Expect(err).To(HaveOccurred())
	})

	It("rejects an object literal with a duplicate key", func() {
		obj := &ast.ObjectExpression{Properties: []ast.ObjectProperty{
			{Key: "x", Value: lit(1)},
			{Key: "x", Value: lit(2)},
		}}
		_, err := interp.Eval(obj, mem, nil, eng)
		Expect(err).To(HaveOccurred())
	})

	It("resolves an identifier from memory", func() {
		Expect(mem.Add("x", kclvalue.NewUserVal(9.0, nil), ast.SourceRange{})).To(Succeed())
		v, err := interp.Eval(&ast.Identifier{Name: "x"}, mem, nil, eng)
		Expect(err).NotTo(HaveOccurred())
		Expect(v.UserVal).To(Equal(9.0))
	})

	It("threads pipe stage results through `%`", func() {
		// 2 |> (% + 1) |> (% * 10) == 30
		pipe := &ast.PipeExpression{Body: []ast.Value{
			lit(2),
			&ast.BinaryExpression{Operator: ast.OpAdd, Left: &ast.PipeSubstitution{}, Right: lit(1)},
			&ast.BinaryExpression{Operator: ast.OpMul, Left: &ast.PipeSubstitution{}, Right: lit(10)},
		}}
		v, err := interp.Eval(pipe, mem, nil, eng)
		Expect(err).NotTo(HaveOccurred())
		Expect(v.UserVal).To(Equal(30.0))
	})

	It("rejects a `%` reference in a pipe's first stage", func() {
		pipe := &ast.PipeExpression{Body: []ast.Value{
			&ast.CallExpression{Callee: ast.Identifier{Name: "segLen"}, Arguments: []ast.Value{&ast.PipeSubstitution{}}},
			lit(1),
		}}
		_, err := interp.Eval(pipe, mem, nil, eng)
		Expect(err).To(HaveOccurred())
	})

	It("injects the previous stage's result as the trailing argument when a stage has no explicit `%`", func() {
		var captured []kclvalue.MemoryItem
		native := kclvalue.NativeFunc(func(args []kclvalue.MemoryItem, _ kclvalue.Memory, _ []ast.Identifier, _ []kclvalue.Metadata, _ kclvalue.EngineHandle, _ ast.SourceRange) (*kclvalue.MemoryItem, error) {
			captured = args
			out := kclvalue.NewUserVal(42.0, nil)
			return &out, nil
		})
		Expect(mem.Add("f", kclvalue.NewFunctionItem(kclvalue.Function{Native: native}), ast.SourceRange{})).To(Succeed())

		pipe := &ast.PipeExpression{Body: []ast.Value{
			lit(7),
			&ast.CallExpression{Callee: ast.Identifier{Name: "f"}},
		}}
		_, err := interp.Eval(pipe, mem, nil, eng)
		Expect(err).NotTo(HaveOccurred())
		Expect(captured).To(HaveLen(1))
		Expect(captured[0].UserVal).To(Equal(7.0))
	})

	It("does not inject when the stage already has an explicit `%`", func() {
		var captured []kclvalue.MemoryItem
		native := kclvalue.NativeFunc(func(args []kclvalue.MemoryItem, _ kclvalue.Memory, _ []ast.Identifier, _ []kclvalue.Metadata, _ kclvalue.EngineHandle, _ ast.SourceRange) (*kclvalue.MemoryItem, error) {
			captured = args
			out := kclvalue.NewUserVal(42.0, nil)
			return &out, nil
		})
		Expect(mem.Add("g", kclvalue.NewFunctionItem(kclvalue.Function{Native: native}), ast.SourceRange{})).To(Succeed())

		pipe := &ast.PipeExpression{Body: []ast.Value{
			lit(7),
			&ast.CallExpression{Callee: ast.Identifier{Name: "g"}, Arguments: []ast.Value{&ast.PipeSubstitution{}, lit(9)}},
		}}
		_, err := interp.Eval(pipe, mem, nil, eng)
		Expect(err).NotTo(HaveOccurred())
		Expect(captured).To(HaveLen(2))
		Expect(captured[0].UserVal).To(Equal(7.0))
		Expect(captured[1].UserVal).To(Equal(9.0))
	})
})

var _ = Describe("CallFunction", func() {
	var (
		mem *memory.ProgramMemory
		eng *stubEngine
	)

	BeforeEach(func() {
		mem = memory.New()
		eng = &stubEngine{}
	})

	It("binds parameters via a full memory clone and returns the function's result", func() {
		fn := kclvalue.Function{
			Expression: &ast.FunctionExpression{
				Params: []ast.Identifier{{Name: "a"}, {Name: "b"}},
				Body: []ast.BodyItem{
					&ast.ReturnStatement{Argument: &ast.BinaryExpression{
						Operator: ast.OpAdd,
						Left:     &ast.Identifier{Name: "a"},
						Right:    &ast.Identifier{Name: "b"},
					}},
				},
			},
		}

		args := []kclvalue.MemoryItem{kclvalue.NewUserVal(2.0, nil), kclvalue.NewUserVal(40.0, nil)}
		result, err := interp.CallFunction(fn, args, mem, eng, ast.SourceRange{})
		Expect(err).NotTo(HaveOccurred())
		Expect(result.UserVal).To(Equal(42.0))
	})

	It("never leaks a closure's local bindings back into the caller's memory", func() {
		fn := kclvalue.Function{
			Expression: &ast.FunctionExpression{
				Params: []ast.Identifier{{Name: "a"}},
				Body: []ast.BodyItem{
					&ast.VariableDeclaration{Declarations: []ast.VariableDeclarator{
						{ID: ast.Identifier{Name: "local"}, Init: lit(1)},
					}},
					&ast.ReturnStatement{Argument: &ast.Identifier{Name: "local"}},
				},
			},
		}

		_, err := interp.CallFunction(fn, []kclvalue.MemoryItem{kclvalue.NewUserVal(0.0, nil)}, mem, eng, ast.SourceRange{})
		Expect(err).NotTo(HaveOccurred())

		_, err = mem.Get("local", ast.SourceRange{})
		Expect(err).To(HaveOccurred())
	})

	It("rejects a call with the wrong arity", func() {
		fn := kclvalue.Function{
			Expression: &ast.FunctionExpression{Params: []ast.Identifier{{Name: "a"}}},
		}
		_, err := interp.CallFunction(fn, nil, mem, eng, ast.SourceRange{})
		Expect(err).To(HaveOccurred())
	})
})
