package stdlib

import (
	"math"

	"github.com/cadrun/kclexec/ast"
	"github.com/cadrun/kclexec/engine"
	"github.com/cadrun/kclexec/fnval"
	"github.com/cadrun/kclexec/kclvalue"
)

// Arc draws a circular arc, either given a start/end angle and a
// radius, or a center, a radius and an end angle, with the start angle
// taken from the current pen position (spec.md §4.G `arc`).
func Arc(args []kclvalue.MemoryItem, mem kclvalue.Memory, params []ast.Identifier, meta []kclvalue.Metadata, eng kclvalue.EngineHandle, r ast.SourceRange) (*kclvalue.MemoryItem, error) {
	a := fnval.Args{Values: args, Range: r}
	data, sg, tag, err := a.DataAndSketchGroupAndTag()
	if err != nil {
		return nil, err
	}

	from := kclvalue.GetCoordsFromPaths(sg)
	radius, err := objFloat(data, "radius", r)
	if err != nil {
		return nil, err
	}

	m, _ := data.(map[string]interface{})
	var center kclvalue.Point2D
	var startAngle, endAngle float64

	if _, hasCenter := m["center"]; hasCenter {
		center, err = pointField(m["center"], r)
		if err != nil {
			return nil, err
		}
		startAngle = math.Atan2(from.Y-center.Y, from.X-center.X)
		endAngle, err = objFloat(data, "angleEnd", r)
		if err != nil {
			return nil, err
		}
		endAngle = degToRad(endAngle)
	} else {
		sa, err := objFloat(data, "angleStart", r)
		if err != nil {
			return nil, err
		}
		ea, err := objFloat(data, "angleEnd", r)
		if err != nil {
			return nil, err
		}
		startAngle, endAngle = degToRad(sa), degToRad(ea)
		center = kclvalue.Point2D{X: from.X - radius*math.Cos(startAngle), Y: from.Y - radius*math.Sin(startAngle)}
	}

	to := kclvalue.Point2D{X: center.X + radius*math.Cos(endAngle), Y: center.Y + radius*math.Sin(endAngle)}
	ccw := endAngle >= startAngle

	base := newPath(from, to, tag, r)
	seg := engine.ArcSegment{Center: [2]float64{center.X, center.Y}, Radius: radius, StartAngle: startAngle, EndAngle: endAngle}
	path := kclvalue.NewTangentialArc(base, center, ccw)
	return extendWith(eng, sg, seg, path, r)
}

// TangentialArc draws an arc tangent to the previous segment, given a
// radius and an angular offset from that tangent direction (spec.md
// §4.G `tangentialArc`).
func TangentialArc(args []kclvalue.MemoryItem, mem kclvalue.Memory, params []ast.Identifier, meta []kclvalue.Metadata, eng kclvalue.EngineHandle, r ast.SourceRange) (*kclvalue.MemoryItem, error) {
	a := fnval.Args{Values: args, Range: r}
	data, sg, tag, err := a.DataAndSketchGroupAndTag()
	if err != nil {
		return nil, err
	}
	radius, err := objFloat(data, "radius", r)
	if err != nil {
		return nil, err
	}
	offset, err := objFloat(data, "offset", r)
	if err != nil {
		return nil, err
	}

	from := kclvalue.GetCoordsFromPaths(sg)
	tangent := tangentDirection(sg)
	tangentAngle := math.Atan2(tangent.Y, tangent.X)
	startAngle := tangentAngle - math.Pi/2
	endAngle := startAngle + degToRad(offset)

	center := kclvalue.Point2D{X: from.X - radius*math.Cos(startAngle), Y: from.Y - radius*math.Sin(startAngle)}
	to := kclvalue.Point2D{X: center.X + radius*math.Cos(endAngle), Y: center.Y + radius*math.Sin(endAngle)}
	ccw := offset >= 0

	base := newPath(from, to, tag, r)
	seg := engine.TangentialArcSegment{Radius: radius, OffsetAngle: offset}
	path := kclvalue.NewTangentialArc(base, center, ccw)
	return extendWith(eng, sg, seg, path, r)
}

// TangentialArcTo draws an arc tangent to the previous segment that
// ends exactly at `to` (spec.md §4.G `tangentialArcTo`; grounded on
// original_source's inner_tangential_arc_to).
func TangentialArcTo(args []kclvalue.MemoryItem, mem kclvalue.Memory, params []ast.Identifier, meta []kclvalue.Metadata, eng kclvalue.EngineHandle, r ast.SourceRange) (*kclvalue.MemoryItem, error) {
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
	tangent := tangentDirection(sg)

	center, _, ccw := tangentCircleCenter(from, to, tangent)

	base := newPath(from, to, tag, r)
	seg := engine.TangentialArcToSegment{To: [2]float64{to.X, to.Y}}
	path := kclvalue.NewTangentialArcTo(base, center, ccw)
	return extendWith(eng, sg, seg, path, r)
}

// tangentDirection recovers the incoming tangent direction at the
// current pen position: the radius from the previous arc's center
// turned by 90 degrees in the arc's winding direction when the
// previous segment was itself an arc, otherwise the previous segment's
// own direction (spec.md §4.A GetTangentialInfoFromPaths).
func tangentDirection(sg kclvalue.SketchGroup) kclvalue.Point2D {
	info := kclvalue.GetTangentialInfoFromPaths(sg)
	if info.HasArc {
		from := kclvalue.GetCoordsFromPaths(sg)
		radial := subPt(from, info.Center)
		tangent := ccwNormal(unit(radial))
		if !info.CCW {
			tangent = scalePt(tangent, -1)
		}
		return tangent
	}

	if len(sg.Value) == 0 {
		return kclvalue.Point2D{X: 1}
	}
	last := sg.Value[len(sg.Value)-1]
	return unit(subPt(last.Base.To, last.Base.From))
}

// Hole consumes a sketch group (or list of them) as a hole cut into
// sketchGroup's 2D profile (spec.md §4.G `hole`).
func Hole(args []kclvalue.MemoryItem, mem kclvalue.Memory, params []ast.Identifier, meta []kclvalue.Metadata, eng kclvalue.EngineHandle, r ast.SourceRange) (*kclvalue.MemoryItem, error) {
	a := fnval.Args{Values: args, Range: r}
	holes, sg, err := a.SketchGroupSets()
	if err != nil {
		return nil, err
	}

	out := sg.Clone()
	for _, h := range holes.All() {
		if err := eng.SendModelingCmd(h.ID, engine.Solid2DAddHole{ObjectID: sg.ID, HoleID: h.ID}, r); err != nil {
			return nil, err
		}
		if err := eng.SendModelingCmd(h.ID, engine.ObjectVisible{ObjectID: h.ID, Hidden: true}, r); err != nil {
			return nil, err
		}
	}

	item := kclvalue.NewSketchGroupItem(out)
	return &item, nil
}
