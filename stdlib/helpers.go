package stdlib

import (
	"math"

	"github.com/cadrun/kclexec/ast"
	"github.com/cadrun/kclexec/fnval"
	"github.com/cadrun/kclexec/kclerrors"
	"github.com/cadrun/kclexec/kclvalue"
)

func segmentByTag(args []kclvalue.MemoryItem, r ast.SourceRange) (kclvalue.Path, error) {
	a := fnval.Args{Values: args, Range: r}
	tagItem, err := a.At(0)
	if err != nil {
		return kclvalue.Path{}, err
	}
	tag, ok := tagItem.UserVal.(string)
	if !ok {
		return kclvalue.Path{}, kclerrors.Typef(r, "expected a segment tag string")
	}
	sg, err := a.SketchGroupArg(1)
	if err != nil {
		return kclvalue.Path{}, err
	}
	p, ok := kclvalue.GetPathByName(sg, tag)
	if !ok {
		return kclvalue.Path{}, kclerrors.Semanticf(r, "no segment tagged `%s`", tag)
	}
	return p, nil
}

// SegLen returns a tagged segment's length (spec.md §4.G helper
// family, grounded on original_source's seg_len).
func SegLen(args []kclvalue.MemoryItem, mem kclvalue.Memory, params []ast.Identifier, meta []kclvalue.Metadata, eng kclvalue.EngineHandle, r ast.SourceRange) (*kclvalue.MemoryItem, error) {
	p, err := segmentByTag(args, r)
	if err != nil {
		return nil, err
	}
	length := norm(subPt(p.Base.To, p.Base.From))
	out := kclvalue.NewUserVal(length, meta)
	return &out, nil
}

// SegAngle returns a tagged segment's direction in degrees.
func SegAngle(args []kclvalue.MemoryItem, mem kclvalue.Memory, params []ast.Identifier, meta []kclvalue.Metadata, eng kclvalue.EngineHandle, r ast.SourceRange) (*kclvalue.MemoryItem, error) {
	p, err := segmentByTag(args, r)
	if err != nil {
		return nil, err
	}
	d := subPt(p.Base.To, p.Base.From)
	deg := math.Atan2(d.Y, d.X) * 180 / math.Pi
	out := kclvalue.NewUserVal(deg, meta)
	return &out, nil
}

// SegEndX returns a tagged segment's endpoint x coordinate.
func SegEndX(args []kclvalue.MemoryItem, mem kclvalue.Memory, params []ast.Identifier, meta []kclvalue.Metadata, eng kclvalue.EngineHandle, r ast.SourceRange) (*kclvalue.MemoryItem, error) {
	p, err := segmentByTag(args, r)
	if err != nil {
		return nil, err
	}
	out := kclvalue.NewUserVal(p.Base.To.X, meta)
	return &out, nil
}

// SegEndY returns a tagged segment's endpoint y coordinate.
func SegEndY(args []kclvalue.MemoryItem, mem kclvalue.Memory, params []ast.Identifier, meta []kclvalue.Metadata, eng kclvalue.EngineHandle, r ast.SourceRange) (*kclvalue.MemoryItem, error) {
	p, err := segmentByTag(args, r)
	if err != nil {
		return nil, err
	}
	out := kclvalue.NewUserVal(p.Base.To.Y, meta)
	return &out, nil
}

func twoFloats(args []kclvalue.MemoryItem, r ast.SourceRange) (float64, float64, error) {
	a := fnval.Args{Values: args, Range: r}
	x, err := a.Float64(0)
	if err != nil {
		return 0, 0, err
	}
	y, err := a.Float64(1)
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

// LegLen returns the length of a right triangle's other leg, given the
// hypotenuse and one leg (spec.md §4.G `legLen`).
func LegLen(args []kclvalue.MemoryItem, mem kclvalue.Memory, params []ast.Identifier, meta []kclvalue.Metadata, eng kclvalue.EngineHandle, r ast.SourceRange) (*kclvalue.MemoryItem, error) {
	hyp, leg, err := twoFloats(args, r)
	if err != nil {
		return nil, err
	}
	if leg > hyp {
		return nil, kclerrors.Typef(r, "leg %g cannot be longer than hypotenuse %g", leg, hyp)
	}
	out := kclvalue.NewUserVal(math.Sqrt(hyp*hyp-leg*leg), meta)
	return &out, nil
}

// LegAngX returns the angle, in degrees, between the hypotenuse and
// the x-axis leg of a right triangle.
func LegAngX(args []kclvalue.MemoryItem, mem kclvalue.Memory, params []ast.Identifier, meta []kclvalue.Metadata, eng kclvalue.EngineHandle, r ast.SourceRange) (*kclvalue.MemoryItem, error) {
	hyp, leg, err := twoFloats(args, r)
	if err != nil {
		return nil, err
	}
	out := kclvalue.NewUserVal(math.Acos(leg/hyp)*180/math.Pi, meta)
	return &out, nil
}

// LegAngY returns the complementary angle to LegAngX.
func LegAngY(args []kclvalue.MemoryItem, mem kclvalue.Memory, params []ast.Identifier, meta []kclvalue.Metadata, eng kclvalue.EngineHandle, r ast.SourceRange) (*kclvalue.MemoryItem, error) {
	hyp, leg, err := twoFloats(args, r)
	if err != nil {
		return nil, err
	}
	out := kclvalue.NewUserVal(math.Asin(leg/hyp)*180/math.Pi, meta)
	return &out, nil
}
