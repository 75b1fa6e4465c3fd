package kclvalue

import "github.com/google/uuid"

// SketchGroup is an in-progress 2D profile on a surface (spec.md
// §3.1). It is passed by value: every standard-library operation that
// extends it returns a new SketchGroup rather than aliasing the input
// (I5).
type SketchGroup struct {
	ID       uuid.UUID     `json:"id"`
	Start    Path          `json:"start"`
	Value    []Path        `json:"value"` // ordered path segments
	Surface  SketchSurface `json:"-"`
	Axes     Axes          `json:"axes"`
	Position Position      `json:"position"`
	Rotation Rotation      `json:"rotation"`
	Meta     []Metadata    `json:"-"`
}

// Clone returns a logical copy of the group with its own backing
// slice, so appends never alias the original's history.
func (sg SketchGroup) Clone() SketchGroup {
	out := sg
	out.Value = append([]Path(nil), sg.Value...)
	out.Meta = append([]Metadata(nil), sg.Meta...)
	return out
}

// ExtrudeSurface is one side face produced by extruding a sketch
// segment.
type ExtrudeSurface struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"` // tag inherited from the source path, if any
	GeoMeta GeoMeta   `json:"-"`
}

// ExtrudeGroup is a 3D extrusion (spec.md §3.1).
type ExtrudeGroup struct {
	ID       uuid.UUID        `json:"id"`
	Value    []ExtrudeSurface `json:"value"`
	Height   float64          `json:"height"`
	Position Position         `json:"position"`
	Rotation Rotation         `json:"rotation"`
	Axes     Axes             `json:"axes"`
	StartCap *uuid.UUID       `json:"startCapId,omitempty"`
	EndCap   *uuid.UUID       `json:"endCapId,omitempty"`
	Meta     []Metadata       `json:"-"`
}

// Clone returns a logical copy of the group with its own backing
// slice.
func (eg ExtrudeGroup) Clone() ExtrudeGroup {
	out := eg
	out.Value = append([]ExtrudeSurface(nil), eg.Value...)
	out.Meta = append([]Metadata(nil), eg.Meta...)
	return out
}

// ExtrudeTransform records a position/rotation change applied to an
// ExtrudeGroup by a transform operation (translate/rotate); it carries
// no geometry of its own (supplemented from original_source, which the
// distilled spec omits).
type ExtrudeTransform struct {
	Position Position   `json:"position"`
	Rotation Rotation   `json:"rotation"`
	Meta     []Metadata `json:"-"`
}

// SketchGroupSet is either a single SketchGroup or a list of them; it
// exists so hole() can accept "a hole, or a list of holes" per
// spec.md §4.G.
type SketchGroupSet struct {
	Single *SketchGroup
	Multi  []SketchGroup
}

// All flattens the set to a slice for uniform iteration.
func (s SketchGroupSet) All() []SketchGroup {
	if s.Single != nil {
		return []SketchGroup{*s.Single}
	}
	return s.Multi
}
