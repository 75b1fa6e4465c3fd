package stdlib

import (
	"math"

	"github.com/cadrun/kclexec/ast"
	"github.com/cadrun/kclexec/engine"
	"github.com/cadrun/kclexec/fnval"
	"github.com/cadrun/kclexec/kclerrors"
	"github.com/cadrun/kclexec/kclvalue"
)

func objField(data interface{}, name string, r ast.SourceRange) (interface{}, error) {
	m, ok := data.(map[string]interface{})
	if !ok {
		return nil, kclerrors.Typef(r, "expected an object with a `%s` field", name)
	}
	v, ok := m[name]
	if !ok {
		return nil, kclerrors.Typef(r, "missing required field `%s`", name)
	}
	return v, nil
}

func objFloat(data interface{}, name string, r ast.SourceRange) (float64, error) {
	v, err := objField(data, name, r)
	if err != nil {
		return 0, err
	}
	f, ok := v.(float64)
	if !ok {
		return 0, kclerrors.Typef(r, "field `%s` must be a number", name)
	}
	return f, nil
}

func objFloatOptional(data interface{}, name string, def float64) float64 {
	m, ok := data.(map[string]interface{})
	if !ok {
		return def
	}
	v, ok := m[name]
	if !ok {
		return def
	}
	f, ok := v.(float64)
	if !ok {
		return def
	}
	return f
}

func objString(data interface{}, name string, r ast.SourceRange) (string, error) {
	v, err := objField(data, name, r)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", kclerrors.Typef(r, "field `%s` must be a string", name)
	}
	return s, nil
}

// angleLengthField reads an (angle, length) pair out of data, which is
// either a bare [angle, length] array (`angledLine([def(yo),3.03],%)`)
// or an object carrying the same under `angle`/`length` fields.
func angleLengthField(data interface{}, r ast.SourceRange) (angle, length float64, err error) {
	if pair, ok := data.([]interface{}); ok {
		if len(pair) != 2 {
			return 0, 0, kclerrors.Typef(r, "expected a [angle, length] pair")
		}
		a, aok := pair[0].(float64)
		l, lok := pair[1].(float64)
		if !aok || !lok {
			return 0, 0, kclerrors.Typef(r, "expected a [angle, length] pair of numbers")
		}
		return a, l, nil
	}
	angle, err = objFloat(data, "angle", r)
	if err != nil {
		return 0, 0, err
	}
	length, err = objFloat(data, "length", r)
	if err != nil {
		return 0, 0, err
	}
	return angle, length, nil
}

// AngledLine draws a segment at `angle` degrees, `length` long
// (spec.md §4.G `angledLine`).
func AngledLine(args []kclvalue.MemoryItem, mem kclvalue.Memory, params []ast.Identifier, meta []kclvalue.Metadata, eng kclvalue.EngineHandle, r ast.SourceRange) (*kclvalue.MemoryItem, error) {
	a := fnval.Args{Values: args, Range: r}
	data, sg, tag, err := a.DataAndSketchGroupAndTag()
	if err != nil {
		return nil, err
	}
	angle, length, err := angleLengthField(data, r)
	if err != nil {
		return nil, err
	}

	from := kclvalue.GetCoordsFromPaths(sg)
	rad := degToRad(angle)
	delta := kclvalue.Point2D{X: length * math.Cos(rad), Y: length * math.Sin(rad)}
	to := addPt(from, delta)

	return angledExtend(eng, sg, from, to, angle, tag, r)
}

// AngledLineOfXLength draws an angled segment whose horizontal
// component spans `length`.
func AngledLineOfXLength(args []kclvalue.MemoryItem, mem kclvalue.Memory, params []ast.Identifier, meta []kclvalue.Metadata, eng kclvalue.EngineHandle, r ast.SourceRange) (*kclvalue.MemoryItem, error) {
	a := fnval.Args{Values: args, Range: r}
	data, sg, tag, err := a.DataAndSketchGroupAndTag()
	if err != nil {
		return nil, err
	}
	angle, err := objFloat(data, "angle", r)
	if err != nil {
		return nil, err
	}
	xLength, err := objFloat(data, "length", r)
	if err != nil {
		return nil, err
	}

	from := kclvalue.GetCoordsFromPaths(sg)
	rad := degToRad(angle)
	to := kclvalue.Point2D{X: from.X + xLength, Y: from.Y + xLength*math.Tan(rad)}

	return angledExtend(eng, sg, from, to, angle, tag, r)
}

// AngledLineOfYLength draws an angled segment whose vertical
// component spans `length`.
func AngledLineOfYLength(args []kclvalue.MemoryItem, mem kclvalue.Memory, params []ast.Identifier, meta []kclvalue.Metadata, eng kclvalue.EngineHandle, r ast.SourceRange) (*kclvalue.MemoryItem, error) {
	a := fnval.Args{Values: args, Range: r}
	data, sg, tag, err := a.DataAndSketchGroupAndTag()
	if err != nil {
		return nil, err
	}
	angle, err := objFloat(data, "angle", r)
	if err != nil {
		return nil, err
	}
	yLength, err := objFloat(data, "length", r)
	if err != nil {
		return nil, err
	}

	from := kclvalue.GetCoordsFromPaths(sg)
	rad := degToRad(angle)
	to := kclvalue.Point2D{X: from.X + yLength/math.Tan(rad), Y: from.Y + yLength}

	return angledExtend(eng, sg, from, to, angle, tag, r)
}

// AngledLineToX draws an angled segment ending at absolute x.
func AngledLineToX(args []kclvalue.MemoryItem, mem kclvalue.Memory, params []ast.Identifier, meta []kclvalue.Metadata, eng kclvalue.EngineHandle, r ast.SourceRange) (*kclvalue.MemoryItem, error) {
	a := fnval.Args{Values: args, Range: r}
	data, sg, tag, err := a.DataAndSketchGroupAndTag()
	if err != nil {
		return nil, err
	}
	angle, err := objFloat(data, "angle", r)
	if err != nil {
		return nil, err
	}
	xTo, err := objFloat(data, "to", r)
	if err != nil {
		return nil, err
	}

	from := kclvalue.GetCoordsFromPaths(sg)
	rad := degToRad(angle)
	length := (xTo - from.X) / math.Cos(rad)
	to := kclvalue.Point2D{X: xTo, Y: from.Y + length*math.Sin(rad)}

	return angledExtend(eng, sg, from, to, angle, tag, r)
}

// AngledLineToY draws an angled segment ending at absolute y.
func AngledLineToY(args []kclvalue.MemoryItem, mem kclvalue.Memory, params []ast.Identifier, meta []kclvalue.Metadata, eng kclvalue.EngineHandle, r ast.SourceRange) (*kclvalue.MemoryItem, error) {
	a := fnval.Args{Values: args, Range: r}
	data, sg, tag, err := a.DataAndSketchGroupAndTag()
	if err != nil {
		return nil, err
	}
	angle, err := objFloat(data, "angle", r)
	if err != nil {
		return nil, err
	}
	yTo, err := objFloat(data, "to", r)
	if err != nil {
		return nil, err
	}

	from := kclvalue.GetCoordsFromPaths(sg)
	rad := degToRad(angle)
	length := (yTo - from.Y) / math.Sin(rad)
	to := kclvalue.Point2D{X: from.X + length*math.Cos(rad), Y: yTo}

	return angledExtend(eng, sg, from, to, angle, tag, r)
}

// AngledLineThatIntersects draws an angled segment from the current
// pen position to where it meets another tagged segment's line,
// optionally shifted perpendicular to itself by offset (spec.md §4.G,
// scenarios S2/S3).
func AngledLineThatIntersects(args []kclvalue.MemoryItem, mem kclvalue.Memory, params []ast.Identifier, meta []kclvalue.Metadata, eng kclvalue.EngineHandle, r ast.SourceRange) (*kclvalue.MemoryItem, error) {
	a := fnval.Args{Values: args, Range: r}
	data, sg, tag, err := a.DataAndSketchGroupAndTag()
	if err != nil {
		return nil, err
	}
	angle, err := objFloat(data, "angle", r)
	if err != nil {
		return nil, err
	}
	intersectTag, err := objString(data, "intersectTag", r)
	if err != nil {
		return nil, err
	}
	offset := objFloatOptional(data, "offset", 0)

	target, ok := kclvalue.GetPathByName(sg, intersectTag)
	if !ok {
		return nil, kclerrors.Semanticf(r, "no segment tagged `%s` to intersect with", intersectTag)
	}

	from := kclvalue.GetCoordsFromPaths(sg)
	to := intersectionWithOffsetLine(from, angle, target.Base.From, target.Base.To, offset)

	return angledExtend(eng, sg, from, to, angle, tag, r)
}

func angledExtend(eng kclvalue.EngineHandle, sg kclvalue.SketchGroup, from, to kclvalue.Point2D, angle float64, tag string, r ast.SourceRange) (*kclvalue.MemoryItem, error) {
	base := newPath(from, to, tag, r)
	angleCopy := angle
	path := kclvalue.Path{Kind: kclvalue.PathAngledLineTo, Base: base, AngleX: &angleCopy, HasAngleX: true}
	return extendWith(eng, sg, engine.LineSegment{Relative: false, End: [2]float64{to.X, to.Y}}, path, r)
}
