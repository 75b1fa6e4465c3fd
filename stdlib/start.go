package stdlib

import (
	"github.com/google/uuid"

	"github.com/cadrun/kclexec/ast"
	"github.com/cadrun/kclexec/engine"
	"github.com/cadrun/kclexec/fnval"
	"github.com/cadrun/kclexec/kclerrors"
	"github.com/cadrun/kclexec/kclvalue"
)

// defaultAxes returns the canonical basis for one of the six standard
// plane orientations (spec.md §6.3).
func defaultAxes(kind kclvalue.PlaneKind) kclvalue.Axes {
	switch kind {
	case kclvalue.PlaneXY:
		return kclvalue.Axes{XAxis: kclvalue.Position{X: 1}, YAxis: kclvalue.Position{Y: 1}, ZAxis: kclvalue.Position{Z: 1}}
	case kclvalue.PlaneNegXY:
		return kclvalue.Axes{XAxis: kclvalue.Position{X: 1}, YAxis: kclvalue.Position{Y: -1}, ZAxis: kclvalue.Position{Z: -1}}
	case kclvalue.PlaneXZ:
		return kclvalue.Axes{XAxis: kclvalue.Position{X: 1}, YAxis: kclvalue.Position{Z: 1}, ZAxis: kclvalue.Position{Y: -1}}
	case kclvalue.PlaneNegXZ:
		return kclvalue.Axes{XAxis: kclvalue.Position{X: 1}, YAxis: kclvalue.Position{Z: -1}, ZAxis: kclvalue.Position{Y: 1}}
	case kclvalue.PlaneYZ:
		return kclvalue.Axes{XAxis: kclvalue.Position{Y: 1}, YAxis: kclvalue.Position{Z: 1}, ZAxis: kclvalue.Position{X: 1}}
	case kclvalue.PlaneNegYZ:
		return kclvalue.Axes{XAxis: kclvalue.Position{Y: 1}, YAxis: kclvalue.Position{Z: -1}, ZAxis: kclvalue.Position{X: -1}}
	default:
		return kclvalue.Axes{XAxis: kclvalue.Position{X: 1}, YAxis: kclvalue.Position{Y: 1}, ZAxis: kclvalue.Position{Z: 1}}
	}
}

// StartSketchOn accepts either a plane name ("XY", "-XZ", ...) or an
// ExtrudeGroup plus a face tag, and returns a SketchSurface to start a
// profile on (spec.md §4.G, supplemented with the face variant from
// original_source's SketchSurface enum).
func StartSketchOn(args []kclvalue.MemoryItem, mem kclvalue.Memory, params []ast.Identifier, meta []kclvalue.Metadata, eng kclvalue.EngineHandle, r ast.SourceRange) (*kclvalue.MemoryItem, error) {
	a := fnval.Args{Values: args, Range: r}

	first, err := a.At(0)
	if err != nil {
		return nil, err
	}

	if first.Kind == kclvalue.KindUserVal {
		name, ok := first.UserVal.(string)
		if !ok {
			return nil, kclerrors.Typef(r, "startSketchOn expects a plane name or a tagged face")
		}
		kind, err := kclvalue.ParsePlaneKind(name)
		if err != nil {
			return nil, kclerrors.Typef(r, "%v", err)
		}

		id := uuid.New()
		axes := defaultAxes(kind)
		if err := eng.SendModelingCmd(id, engine.MakePlane{
			Origin: [3]float64{},
			XAxis:  [3]float64{axes.XAxis.X, axes.XAxis.Y, axes.XAxis.Z},
			YAxis:  [3]float64{axes.YAxis.X, axes.YAxis.Y, axes.YAxis.Z},
		}, r); err != nil {
			return nil, err
		}

		plane := &kclvalue.Plane{ID: id, Axes: axes, Kind: kind, Meta: meta}
		surf := kclvalue.SketchSurface{Plane: plane}
		out := kclvalue.NewUserVal(surf, meta)
		return &out, nil
	}

	eg, err := a.ExtrudeGroupArg(0)
	if err != nil {
		return nil, err
	}
	tag, err := a.OptionalTag(1)
	if err != nil {
		return nil, err
	}
	surface, ok := kclvalue.GetExtrudeSurfaceByName(eg, tag)
	if !ok {
		return nil, kclerrors.Semanticf(r, "no face tagged `%s` on this solid", tag)
	}
	face := &kclvalue.Face{ID: surface.ID, Tag: tag, Meta: meta}
	out := kclvalue.NewUserVal(kclvalue.SketchSurface{Face: face}, meta)
	return &out, nil
}

// StartProfileAt opens a new SketchGroup on surface, with its pen at
// pt. It is the one place a SketchGroup's Start segment is produced
// (spec.md §3.1, §4.G).
func StartProfileAt(args []kclvalue.MemoryItem, mem kclvalue.Memory, params []ast.Identifier, meta []kclvalue.Metadata, eng kclvalue.EngineHandle, r ast.SourceRange) (*kclvalue.MemoryItem, error) {
	a := fnval.Args{Values: args, Range: r}
	pt, surf, tag, err := a.DataAndSketchSurface()
	if err != nil {
		return nil, err
	}

	pathID := uuid.New()

	if surf.IsPlane() {
		if err := eng.SendModelingCmd(surf.Plane.ID, engine.EnableSketchMode{SurfaceID: surf.Plane.ID}, r); err != nil {
			return nil, err
		}
	}
	if err := eng.SendModelingCmd(pathID, engine.StartPath{}, r); err != nil {
		return nil, err
	}
	if err := eng.SendModelingCmd(pathID, engine.MovePathPen{PathID: pathID, To: [2]float64{pt.X, pt.Y}}, r); err != nil {
		return nil, err
	}

	base := kclvalue.BasePath{From: pt, To: pt, Name: tag, GeoMeta: kclvalue.GeoMeta{ID: pathID, SourceRange: r}}
	sg := kclvalue.SketchGroup{
		ID:      pathID,
		Start:   kclvalue.NewBase(base),
		Surface: surf,
		Axes:    surfaceAxes(surf),
		Meta:    meta,
	}
	out := kclvalue.NewSketchGroupItem(sg)
	return &out, nil
}

// StartSketchAt is shorthand for startSketchOn("XY") |> startProfileAt,
// the common case of sketching on the default plane (spec.md §4.G).
func StartSketchAt(args []kclvalue.MemoryItem, mem kclvalue.Memory, params []ast.Identifier, meta []kclvalue.Metadata, eng kclvalue.EngineHandle, r ast.SourceRange) (*kclvalue.MemoryItem, error) {
	a := fnval.Args{Values: args, Range: r}
	pt, err := a.Point2DArg(0)
	if err != nil {
		return nil, err
	}

	xyName := kclvalue.NewUserVal("XY", meta)
	surfItem, err := StartSketchOn([]kclvalue.MemoryItem{xyName}, mem, nil, meta, eng, r)
	if err != nil {
		return nil, err
	}

	ptItem := kclvalue.NewUserVal([]interface{}{pt.X, pt.Y}, meta)
	return StartProfileAt([]kclvalue.MemoryItem{ptItem, *surfItem}, mem, nil, meta, eng, r)
}

func surfaceAxes(surf kclvalue.SketchSurface) kclvalue.Axes {
	if surf.Plane != nil {
		return surf.Plane.Axes
	}
	if surf.Face != nil {
		return surf.Face.Axes
	}
	return kclvalue.Axes{}
}
