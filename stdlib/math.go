package stdlib

import (
	"math"

	"github.com/cadrun/kclexec/ast"
	"github.com/cadrun/kclexec/fnval"
	"github.com/cadrun/kclexec/kclerrors"
	"github.com/cadrun/kclexec/kclvalue"
)

func allFloats(args []kclvalue.MemoryItem, r ast.SourceRange) ([]float64, error) {
	if len(args) == 0 {
		return nil, kclerrors.Typef(r, "expected at least one numeric argument")
	}
	a := fnval.Args{Values: args, Range: r}
	out := make([]float64, len(args))
	for i := range args {
		f, err := a.Float64(i)
		if err != nil {
			return nil, err
		}
		out[i] = f
	}
	return out, nil
}

// Min returns the smallest of one or more numeric arguments (spec.md
// §8.2 scenario S5, where `min(segLen("seg01",%), myVar)` picks the
// shorter of a measured segment and a bound variable).
func Min(args []kclvalue.MemoryItem, mem kclvalue.Memory, params []ast.Identifier, meta []kclvalue.Metadata, eng kclvalue.EngineHandle, r ast.SourceRange) (*kclvalue.MemoryItem, error) {
	vals, err := allFloats(args, r)
	if err != nil {
		return nil, err
	}
	m := vals[0]
	for _, v := range vals[1:] {
		m = math.Min(m, v)
	}
	out := kclvalue.NewUserVal(m, meta)
	return &out, nil
}

// Max returns the largest of one or more numeric arguments.
func Max(args []kclvalue.MemoryItem, mem kclvalue.Memory, params []ast.Identifier, meta []kclvalue.Metadata, eng kclvalue.EngineHandle, r ast.SourceRange) (*kclvalue.MemoryItem, error) {
	vals, err := allFloats(args, r)
	if err != nil {
		return nil, err
	}
	m := vals[0]
	for _, v := range vals[1:] {
		m = math.Max(m, v)
	}
	out := kclvalue.NewUserVal(m, meta)
	return &out, nil
}
