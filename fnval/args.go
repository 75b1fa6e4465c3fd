// Package fnval adapts a call site's evaluated argument list into the
// typed parameter tuples the standard library destructures against
// (spec.md §4.F, §4.G). It mirrors the original Rust implementation's
// Args::get_* family one-for-one (SPEC_FULL.md Supplemented Features).
package fnval

import (
	"github.com/cadrun/kclexec/ast"
	"github.com/cadrun/kclexec/kclerrors"
	"github.com/cadrun/kclexec/kclvalue"
)

// Args bundles a call's evaluated argument values with the call's
// source range, so a destructuring failure can be reported precisely.
type Args struct {
	Values []kclvalue.MemoryItem
	Range  ast.SourceRange
}

func (a Args) typeErr(format string) error {
	return kclerrors.Typef(a.Range, format)
}

func (a Args) at(i int) (kclvalue.MemoryItem, error) {
	if i >= len(a.Values) {
		return kclvalue.MemoryItem{}, kclerrors.Typef(a.Range, "expected at least %d argument(s)", i+1)
	}
	return a.Values[i], nil
}

// At exposes raw positional access for callers that need to branch on
// an argument's Kind before destructuring it further (e.g. a
// startSketchOn call accepting either a plane name or a face).
func (a Args) At(i int) (kclvalue.MemoryItem, error) {
	return a.at(i)
}

// Data returns args[0] coerced to a raw UserVal payload (JSON-shaped).
func (a Args) Data() (interface{}, error) {
	v, err := a.at(0)
	if err != nil {
		return nil, err
	}
	if v.Kind != kclvalue.KindUserVal {
		return nil, a.typeErr("expected a plain value as the first argument")
	}
	return v.UserVal, nil
}

// Float64 reads one argument as a float64, accepting either a JSON
// number or an integer stored as float64.
func (a Args) Float64(i int) (float64, error) {
	v, err := a.at(i)
	if err != nil {
		return 0, err
	}
	if v.Kind != kclvalue.KindUserVal {
		return 0, a.typeErr("expected a number argument")
	}
	f, ok := v.UserVal.(float64)
	if !ok {
		return 0, a.typeErr("expected a number argument")
	}
	return f, nil
}

// Point2DArg reads one argument as a [x, y] array.
func (a Args) Point2DArg(i int) (kclvalue.Point2D, error) {
	v, err := a.at(i)
	if err != nil {
		return kclvalue.Point2D{}, err
	}
	pair, ok := v.UserVal.([]interface{})
	if !ok || len(pair) != 2 {
		return kclvalue.Point2D{}, a.typeErr("expected a [x, y] point")
	}
	x, xok := pair[0].(float64)
	y, yok := pair[1].(float64)
	if !xok || !yok {
		return kclvalue.Point2D{}, a.typeErr("expected a [x, y] point of numbers")
	}
	return kclvalue.Point2D{X: x, Y: y}, nil
}

// SketchGroupArg reads one argument as a SketchGroup value.
func (a Args) SketchGroupArg(i int) (kclvalue.SketchGroup, error) {
	v, err := a.at(i)
	if err != nil {
		return kclvalue.SketchGroup{}, err
	}
	if v.Kind != kclvalue.KindSketchGroup {
		return kclvalue.SketchGroup{}, a.typeErr("expected a SketchGroup argument")
	}
	return *v.SketchGroup, nil
}

// ExtrudeGroupArg reads one argument as an ExtrudeGroup value.
func (a Args) ExtrudeGroupArg(i int) (kclvalue.ExtrudeGroup, error) {
	v, err := a.at(i)
	if err != nil {
		return kclvalue.ExtrudeGroup{}, err
	}
	if v.Kind != kclvalue.KindExtrudeGroup {
		return kclvalue.ExtrudeGroup{}, a.typeErr("expected an ExtrudeGroup argument")
	}
	return *v.ExtrudeGroup, nil
}

// OptionalTag reads an optional trailing string tag argument at index
// i, returning "" when absent.
func (a Args) OptionalTag(i int) (string, error) {
	if i >= len(a.Values) {
		return "", nil
	}
	v := a.Values[i]
	if v.Kind != kclvalue.KindUserVal {
		return "", a.typeErr("expected a string tag")
	}
	if v.UserVal == nil {
		return "", nil
	}
	s, ok := v.UserVal.(string)
	if !ok {
		return "", a.typeErr("expected a string tag")
	}
	return s, nil
}

// field reads a named field out of a UserVal object argument.
func field(obj interface{}, name string) (interface{}, bool) {
	m, ok := obj.(map[string]interface{})
	if !ok {
		return nil, false
	}
	v, ok := m[name]
	return v, ok
}

// DataAndSketchGroupAndTag destructures the common (data, sketch_group,
// optional tag) calling pattern shared by the linear/angled/arc/curve
// families (spec.md §4.G), where data is either a raw value or an
// object literal carrying an embedded "tag" field.
func (a Args) DataAndSketchGroupAndTag() (interface{}, kclvalue.SketchGroup, string, error) {
	data, err := a.Data()
	if err != nil {
		return nil, kclvalue.SketchGroup{}, "", err
	}
	sg, err := a.SketchGroupArg(1)
	if err != nil {
		return nil, kclvalue.SketchGroup{}, "", err
	}
	tag, err := a.OptionalTag(2)
	if err != nil {
		return nil, kclvalue.SketchGroup{}, "", err
	}
	if tag == "" {
		if t, ok := field(data, "tag"); ok {
			if s, ok := t.(string); ok {
				tag = s
			}
		}
	}
	return data, sg, tag, nil
}

// SketchGroupAndOptionalTag destructures `close`'s (sketch_group,
// optional tag) calling pattern.
func (a Args) SketchGroupAndOptionalTag() (kclvalue.SketchGroup, string, error) {
	sg, err := a.SketchGroupArg(0)
	if err != nil {
		return kclvalue.SketchGroup{}, "", err
	}
	tag, err := a.OptionalTag(1)
	if err != nil {
		return kclvalue.SketchGroup{}, "", err
	}
	return sg, tag, nil
}

// DataAndSketchSurface destructures `startProfileAt`'s
// ([x,y], sketch_surface, optional tag) pattern.
func (a Args) DataAndSketchSurface() (kclvalue.Point2D, kclvalue.SketchSurface, string, error) {
	pt, err := a.Point2DArg(0)
	if err != nil {
		return kclvalue.Point2D{}, kclvalue.SketchSurface{}, "", err
	}
	v, err := a.at(1)
	if err != nil {
		return kclvalue.Point2D{}, kclvalue.SketchSurface{}, "", err
	}
	surf, ok := v.UserVal.(kclvalue.SketchSurface)
	if !ok {
		return kclvalue.Point2D{}, kclvalue.SketchSurface{}, "", a.typeErr("expected a sketch surface argument")
	}
	tag, err := a.OptionalTag(2)
	if err != nil {
		return kclvalue.Point2D{}, kclvalue.SketchSurface{}, "", err
	}
	return pt, surf, tag, nil
}

// SketchGroupSets destructures `hole`'s (hole | [hole...], sketch_group)
// pattern.
func (a Args) SketchGroupSets() (kclvalue.SketchGroupSet, kclvalue.SketchGroup, error) {
	v, err := a.at(0)
	if err != nil {
		return kclvalue.SketchGroupSet{}, kclvalue.SketchGroup{}, err
	}

	var set kclvalue.SketchGroupSet
	switch {
	case v.Kind == kclvalue.KindSketchGroup:
		set = kclvalue.SketchGroupSet{Single: v.SketchGroup}
	default:
		list, ok := v.UserVal.([]kclvalue.SketchGroup)
		if !ok {
			return kclvalue.SketchGroupSet{}, kclvalue.SketchGroup{}, a.typeErr("expected a hole or a list of holes")
		}
		set = kclvalue.SketchGroupSet{Multi: list}
	}

	sg, err := a.SketchGroupArg(1)
	if err != nil {
		return kclvalue.SketchGroupSet{}, kclvalue.SketchGroup{}, err
	}
	return set, sg, nil
}
