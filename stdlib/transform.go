package stdlib

import (
	"github.com/cadrun/kclexec/ast"
	"github.com/cadrun/kclexec/fnval"
	"github.com/cadrun/kclexec/kclerrors"
	"github.com/cadrun/kclexec/kclvalue"
)

// Translate shifts an ExtrudeGroup by [dx, dy, dz] without issuing any
// engine command of its own — it computes the group's shifted position
// and returns it, with the group's rotation, as an ExtrudeTransform
// value; the input group itself is left unchanged and is not returned
// (SPEC_FULL.md Supplemented Features, from
// original_source's transform family).
func Translate(args []kclvalue.MemoryItem, mem kclvalue.Memory, params []ast.Identifier, meta []kclvalue.Metadata, eng kclvalue.EngineHandle, r ast.SourceRange) (*kclvalue.MemoryItem, error) {
	a := fnval.Args{Values: args, Range: r}
	data, err := a.Data()
	if err != nil {
		return nil, err
	}
	eg, err := a.ExtrudeGroupArg(1)
	if err != nil {
		return nil, err
	}

	delta, err := triple(data, r)
	if err != nil {
		return nil, err
	}

	pos := eg.Position
	pos.X += delta[0]
	pos.Y += delta[1]
	pos.Z += delta[2]

	item := kclvalue.NewExtrudeTransformItem(kclvalue.ExtrudeTransform{Position: pos, Rotation: eg.Rotation, Meta: meta})
	return &item, nil
}

// Rotate takes a quaternion [x, y, z, w] and returns an
// ExtrudeTransform carrying the group's position and that quaternion
// as its rotation. The quaternion replaces the group's rotation; it is
// not composed with it.
func Rotate(args []kclvalue.MemoryItem, mem kclvalue.Memory, params []ast.Identifier, meta []kclvalue.Metadata, eng kclvalue.EngineHandle, r ast.SourceRange) (*kclvalue.MemoryItem, error) {
	a := fnval.Args{Values: args, Range: r}
	data, err := a.Data()
	if err != nil {
		return nil, err
	}
	eg, err := a.ExtrudeGroupArg(1)
	if err != nil {
		return nil, err
	}

	quat, err := quadruple(data, r)
	if err != nil {
		return nil, err
	}

	rot := kclvalue.Rotation{X: quat[0], Y: quat[1], Z: quat[2], W: quat[3]}

	item := kclvalue.NewExtrudeTransformItem(kclvalue.ExtrudeTransform{Position: eg.Position, Rotation: rot, Meta: meta})
	return &item, nil
}

func triple(data interface{}, r ast.SourceRange) ([3]float64, error) {
	list, ok := data.([]interface{})
	if !ok || len(list) != 3 {
		return [3]float64{}, kclerrors.Typef(r, "expected a [x, y, z] triple")
	}
	var out [3]float64
	for i, v := range list {
		f, ok := v.(float64)
		if !ok {
			return [3]float64{}, kclerrors.Typef(r, "expected numeric components")
		}
		out[i] = f
	}
	return out, nil
}

func quadruple(data interface{}, r ast.SourceRange) ([4]float64, error) {
	list, ok := data.([]interface{})
	if !ok || len(list) != 4 {
		return [4]float64{}, kclerrors.Typef(r, "expected a [x, y, z, w] quaternion")
	}
	var out [4]float64
	for i, v := range list {
		f, ok := v.(float64)
		if !ok {
			return [4]float64{}, kclerrors.Typef(r, "expected numeric components")
		}
		out[i] = f
	}
	return out, nil
}
