package stdlib

import (
	"github.com/cadrun/kclexec/ast"
	"github.com/cadrun/kclexec/engine"
	"github.com/cadrun/kclexec/fnval"
	"github.com/cadrun/kclexec/kclvalue"
)

// Close closes sketchGroup's path back to its start point. Closing a
// sketch on a bare plane also disables sketch mode; closing a sketch
// on a face does not (spec.md §4.G `close`, grounded on
// original_source's inner_close).
func Close(args []kclvalue.MemoryItem, mem kclvalue.Memory, params []ast.Identifier, meta []kclvalue.Metadata, eng kclvalue.EngineHandle, r ast.SourceRange) (*kclvalue.MemoryItem, error) {
	a := fnval.Args{Values: args, Range: r}
	sg, tag, err := a.SketchGroupAndOptionalTag()
	if err != nil {
		return nil, err
	}

	from := kclvalue.GetCoordsFromPaths(sg)
	to := sg.Start.Base.To

	if err := eng.SendModelingCmd(sg.ID, engine.ClosePath{PathID: sg.ID}, r); err != nil {
		return nil, err
	}
	if sg.Surface.IsPlane() {
		if err := eng.SendModelingCmd(sg.Surface.Plane.ID, engine.SketchModeDisable{}, r); err != nil {
			return nil, err
		}
	}

	base := newPath(from, to, tag, r)
	out := sg.Clone()
	out.Value = append(out.Value, kclvalue.NewToPoint(base))

	item := kclvalue.NewSketchGroupItem(out)
	return &item, nil
}
