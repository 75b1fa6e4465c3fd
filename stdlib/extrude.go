package stdlib

import (
	"github.com/google/uuid"

	"github.com/cadrun/kclexec/ast"
	"github.com/cadrun/kclexec/engine"
	"github.com/cadrun/kclexec/fnval"
	"github.com/cadrun/kclexec/kclvalue"
)

// Extrude turns a closed sketch group into a solid, `distance` tall.
// One ExtrudeSurface is minted per drawn segment, inheriting that
// segment's tag so later startSketchOn(solid, "tag") calls can select
// it (spec.md §3.1, §4.G `extrude`).
func Extrude(args []kclvalue.MemoryItem, mem kclvalue.Memory, params []ast.Identifier, meta []kclvalue.Metadata, eng kclvalue.EngineHandle, r ast.SourceRange) (*kclvalue.MemoryItem, error) {
	a := fnval.Args{Values: args, Range: r}
	distance, err := a.Float64(0)
	if err != nil {
		return nil, err
	}
	sg, err := a.SketchGroupArg(1)
	if err != nil {
		return nil, err
	}

	id := uuid.New()
	if err := eng.SendModelingCmd(id, engine.Extrude{PathID: sg.ID, Distance: distance}, r); err != nil {
		return nil, err
	}

	surfaces := make([]kclvalue.ExtrudeSurface, 0, len(sg.Value))
	for _, p := range sg.Value {
		surfaces = append(surfaces, kclvalue.ExtrudeSurface{
			ID:      uuid.New(),
			Name:    p.Base.Name,
			GeoMeta: p.Base.GeoMeta,
		})
	}

	eg := kclvalue.ExtrudeGroup{
		ID:       id,
		Value:    surfaces,
		Height:   distance,
		Position: sg.Position,
		Rotation: sg.Rotation,
		Axes:     sg.Axes,
		Meta:     meta,
	}

	out := kclvalue.NewExtrudeGroupItem(eg)
	return &out, nil
}
