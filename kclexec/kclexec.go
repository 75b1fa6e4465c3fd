// Package kclexec is the top-level entry point: it wires a fresh
// program memory with the standard library, then drives the
// interpreter over a parsed program's root body (spec.md §4, mirroring
// the teacher's api.Driver, which owns the whole run-to-completion
// loop for one workload).
package kclexec

import (
	"github.com/cadrun/kclexec/ast"
	"github.com/cadrun/kclexec/interp"
	"github.com/cadrun/kclexec/kclvalue"
	"github.com/cadrun/kclexec/memory"
	"github.com/cadrun/kclexec/stdlib"
)

// Result is everything a caller needs after a run: the memory the
// program executed against (for introspection/dumping) and whatever
// it passed to `show`, if anything.
type Result struct {
	Memory *memory.ProgramMemory
	Shown  []ast.Value
}

// NewMemory builds a root ProgramMemory with every standard-library
// native pre-bound, ready to execute a Program against.
func NewMemory() *memory.ProgramMemory {
	mem := memory.New()
	for name, native := range stdlib.Builtins() {
		fn := kclvalue.NewFunctionItem(kclvalue.Function{Native: native})
		// Builtins are seeded before any program text runs, so this Add
		// can never collide with a write-once violation from user code.
		_ = mem.Add(name, fn, ast.SourceRange{})
	}
	return mem
}

// Run executes program's root body against mem using engineHandle for
// any geometry-engine commands the standard library issues.
func Run(program *ast.Program, mem *memory.ProgramMemory, engineHandle kclvalue.EngineHandle) (*Result, error) {
	if _, err := interp.ExecBody(program.Body, ast.Root, mem, engineHandle); err != nil {
		return nil, err
	}

	ret := mem.Return()
	res := &Result{Memory: mem}
	if ret.Kind == memory.ReturnArguments {
		res.Shown = ret.Arguments
	}
	return res, nil
}

// Execute is the one-call convenience entry point: build memory, run
// the program, return the result.
func Execute(program *ast.Program, engineHandle kclvalue.EngineHandle) (*Result, error) {
	return Run(program, NewMemory(), engineHandle)
}
