package stdlib

import (
	"github.com/cadrun/kclexec/ast"
	"github.com/cadrun/kclexec/engine"
	"github.com/cadrun/kclexec/fnval"
	"github.com/cadrun/kclexec/kclerrors"
	"github.com/cadrun/kclexec/kclvalue"
)

// extendWith sends the ExtendPath command for one new segment and
// returns the cloned, extended SketchGroup wrapped as a MemoryItem
// (spec.md §4.G, I5: the input group is never mutated in place).
func extendWith(eng kclvalue.EngineHandle, sg kclvalue.SketchGroup, seg engine.Segment, path kclvalue.Path, r ast.SourceRange) (*kclvalue.MemoryItem, error) {
	if err := eng.SendModelingCmd(path.Base.GeoMeta.ID, engine.ExtendPath{PathID: sg.ID, Segment: seg}, r); err != nil {
		return nil, err
	}
	out := sg.Clone()
	out.Value = append(out.Value, path)
	item := kclvalue.NewSketchGroupItem(out)
	return &item, nil
}

func newPath(from, to kclvalue.Point2D, tag string, r ast.SourceRange) kclvalue.BasePath {
	return kclvalue.BasePath{From: from, To: to, Name: tag, GeoMeta: kclvalue.NewGeoMeta(r)}
}

// pointField reads a [x, y] point out of data, which is either the
// pair itself or an object literal carrying it under a "to" field
// (spec.md §8.3 S2: `lineTo({to:[2,2],tag:"yo"},%)` alongside the bare
// `lineTo([3,1],%)` form).
func pointField(data interface{}, r ast.SourceRange) (kclvalue.Point2D, error) {
	if m, ok := data.(map[string]interface{}); ok {
		inner, ok := m["to"]
		if !ok {
			return kclvalue.Point2D{}, kclerrors.Typef(r, "missing required field `to`")
		}
		data = inner
	}
	pair, ok := data.([]interface{})
	if !ok || len(pair) != 2 {
		return kclvalue.Point2D{}, kclerrors.Typef(r, "expected a [x, y] point")
	}
	x, xok := pair[0].(float64)
	y, yok := pair[1].(float64)
	if !xok || !yok {
		return kclvalue.Point2D{}, kclerrors.Typef(r, "expected a [x, y] point of numbers")
	}
	return kclvalue.Point2D{X: x, Y: y}, nil
}

// Line draws a straight segment relative to the current pen position
// (spec.md §4.G `line`). The data argument is a [dx, dy] pair, or an
// object carrying that pair under a `to` field (see pointField).
func Line(args []kclvalue.MemoryItem, mem kclvalue.Memory, params []ast.Identifier, meta []kclvalue.Metadata, eng kclvalue.EngineHandle, r ast.SourceRange) (*kclvalue.MemoryItem, error) {
	a := fnval.Args{Values: args, Range: r}
	data, sg, tag, err := a.DataAndSketchGroupAndTag()
	if err != nil {
		return nil, err
	}
	delta, err := pointField(data, r)
	if err != nil {
		return nil, err
	}

	from := kclvalue.GetCoordsFromPaths(sg)
	to := addPt(from, delta)
	base := newPath(from, to, tag, r)

	return extendWith(eng, sg, engine.LineSegment{Relative: true, End: [2]float64{delta.X, delta.Y}}, kclvalue.NewToPoint(base), r)
}

// LineTo draws a straight segment to an absolute point.
func LineTo(args []kclvalue.MemoryItem, mem kclvalue.Memory, params []ast.Identifier, meta []kclvalue.Metadata, eng kclvalue.EngineHandle, r ast.SourceRange) (*kclvalue.MemoryItem, error) {
	a := fnval.Args{Values: args, Range: r}
	data, sg, tag, err := a.DataAndSketchGroupAndTag()
	if err != nil {
		return nil, err
	}
	to, err := pointField(data, r)
	if err != nil {
		return nil, err
	}

	from := kclvalue.GetCoordsFromPaths(sg)
	base := newPath(from, to, tag, r)

	return extendWith(eng, sg, engine.LineSegment{Relative: false, End: [2]float64{to.X, to.Y}}, kclvalue.NewToPoint(base), r)
}

func scalarField(data interface{}, r ast.SourceRange) (float64, error) {
	f, ok := data.(float64)
	if !ok {
		return 0, kclerrors.Typef(r, "expected a number")
	}
	return f, nil
}

// XLine draws a horizontal segment `length` long.
func XLine(args []kclvalue.MemoryItem, mem kclvalue.Memory, params []ast.Identifier, meta []kclvalue.Metadata, eng kclvalue.EngineHandle, r ast.SourceRange) (*kclvalue.MemoryItem, error) {
	a := fnval.Args{Values: args, Range: r}
	data, sg, tag, err := a.DataAndSketchGroupAndTag()
	if err != nil {
		return nil, err
	}
	length, err := scalarField(data, r)
	if err != nil {
		return nil, err
	}
	from := kclvalue.GetCoordsFromPaths(sg)
	to := kclvalue.Point2D{X: from.X + length, Y: from.Y}
	base := newPath(from, to, tag, r)
	return extendWith(eng, sg, engine.LineSegment{Relative: true, End: [2]float64{length, 0}}, kclvalue.NewToPoint(base), r)
}

// YLine draws a vertical segment `length` long.
func YLine(args []kclvalue.MemoryItem, mem kclvalue.Memory, params []ast.Identifier, meta []kclvalue.Metadata, eng kclvalue.EngineHandle, r ast.SourceRange) (*kclvalue.MemoryItem, error) {
	a := fnval.Args{Values: args, Range: r}
	data, sg, tag, err := a.DataAndSketchGroupAndTag()
	if err != nil {
		return nil, err
	}
	length, err := scalarField(data, r)
	if err != nil {
		return nil, err
	}
	from := kclvalue.GetCoordsFromPaths(sg)
	to := kclvalue.Point2D{X: from.X, Y: from.Y + length}
	base := newPath(from, to, tag, r)
	return extendWith(eng, sg, engine.LineSegment{Relative: true, End: [2]float64{0, length}}, kclvalue.NewToPoint(base), r)
}

// XLineTo draws a horizontal segment ending at the given absolute x.
func XLineTo(args []kclvalue.MemoryItem, mem kclvalue.Memory, params []ast.Identifier, meta []kclvalue.Metadata, eng kclvalue.EngineHandle, r ast.SourceRange) (*kclvalue.MemoryItem, error) {
	a := fnval.Args{Values: args, Range: r}
	data, sg, tag, err := a.DataAndSketchGroupAndTag()
	if err != nil {
		return nil, err
	}
	x, err := scalarField(data, r)
	if err != nil {
		return nil, err
	}
	from := kclvalue.GetCoordsFromPaths(sg)
	to := kclvalue.Point2D{X: x, Y: from.Y}
	base := newPath(from, to, tag, r)
	return extendWith(eng, sg, engine.LineSegment{Relative: false, End: [2]float64{to.X, to.Y}}, kclvalue.NewToPoint(base), r)
}

// YLineTo draws a vertical segment ending at the given absolute y.
func YLineTo(args []kclvalue.MemoryItem, mem kclvalue.Memory, params []ast.Identifier, meta []kclvalue.Metadata, eng kclvalue.EngineHandle, r ast.SourceRange) (*kclvalue.MemoryItem, error) {
	a := fnval.Args{Values: args, Range: r}
	data, sg, tag, err := a.DataAndSketchGroupAndTag()
	if err != nil {
		return nil, err
	}
	y, err := scalarField(data, r)
	if err != nil {
		return nil, err
	}
	from := kclvalue.GetCoordsFromPaths(sg)
	to := kclvalue.Point2D{X: from.X, Y: y}
	base := newPath(from, to, tag, r)
	return extendWith(eng, sg, engine.LineSegment{Relative: false, End: [2]float64{to.X, to.Y}}, kclvalue.NewToPoint(base), r)
}
