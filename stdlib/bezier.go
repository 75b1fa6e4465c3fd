package stdlib

import (
	"github.com/cadrun/kclexec/ast"
	"github.com/cadrun/kclexec/engine"
	"github.com/cadrun/kclexec/fnval"
	"github.com/cadrun/kclexec/kclvalue"
)

// BezierCurve draws a cubic bezier relative to the current pen
// position (spec.md §4.G `bezierCurve`).
func BezierCurve(args []kclvalue.MemoryItem, mem kclvalue.Memory, params []ast.Identifier, meta []kclvalue.Metadata, eng kclvalue.EngineHandle, r ast.SourceRange) (*kclvalue.MemoryItem, error) {
	a := fnval.Args{Values: args, Range: r}
	data, sg, tag, err := a.DataAndSketchGroupAndTag()
	if err != nil {
		return nil, err
	}

	to, err := objPoint(data, "to", r)
	if err != nil {
		return nil, err
	}
	c1, err := objPoint(data, "control1", r)
	if err != nil {
		return nil, err
	}
	c2, err := objPoint(data, "control2", r)
	if err != nil {
		return nil, err
	}

	from := kclvalue.GetCoordsFromPaths(sg)
	abs := addPt(from, to)
	base := newPath(from, abs, tag, r)

	seg := engine.BezierSegment{
		To:       [2]float64{to.X, to.Y},
		Control1: [2]float64{c1.X, c1.Y},
		Control2: [2]float64{c2.X, c2.Y},
	}
	path := kclvalue.NewToPoint(base)
	return extendWith(eng, sg, seg, path, r)
}

func objPoint(data interface{}, name string, r ast.SourceRange) (kclvalue.Point2D, error) {
	v, err := objField(data, name, r)
	if err != nil {
		return kclvalue.Point2D{}, err
	}
	return pointField(v, r)
}
