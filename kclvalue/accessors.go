package kclvalue

import (
	"fmt"

	"github.com/google/uuid"
)

// GetCoordsFromPaths returns the `to` of the sketch group's last
// segment, or the start segment's `to` if the group has no segments
// yet (spec.md §4.A).
func GetCoordsFromPaths(sg SketchGroup) Point2D {
	if len(sg.Value) == 0 {
		return sg.Start.Base.To
	}
	return sg.Value[len(sg.Value)-1].Base.To
}

// GetPathByID does a first-match linear scan over the sketch group's
// segments (spec.md §4.A; open question (a) notes this is a loose
// linear scan, not a typed lookup).
func GetPathByID(sg SketchGroup, id uuid.UUID) (Path, bool) {
	for _, p := range sg.Value {
		if p.Base.GeoMeta.ID == id {
			return p, true
		}
	}
	return Path{}, false
}

// GetPathByName does a first-match linear scan by tag name.
func GetPathByName(sg SketchGroup, name string) (Path, bool) {
	for _, p := range sg.Value {
		if p.Base.Name == name {
			return p, true
		}
	}
	return Path{}, false
}

// GetExtrudeSurfaceByName does a first-match linear scan over an
// extrude group's side surfaces.
func GetExtrudeSurfaceByName(eg ExtrudeGroup, name string) (ExtrudeSurface, bool) {
	for _, s := range eg.Value {
		if s.Name == name {
			return s, true
		}
	}
	return ExtrudeSurface{}, false
}

// TangentialInfo is the reference a tangential-arc-family operation
// computes from the segment preceding it.
type TangentialInfo struct {
	Center   Point2D
	CCW      bool
	HasArc   bool // true when Center/CCW came from a preceding arc
	Fallback Point2D
}

// GetTangentialInfoFromPaths returns either the center of the previous
// arc plus its winding direction, or the previous segment's `to` as a
// pseudo-tangent reference (spec.md §4.A / §4.G tangentialArcTo).
func GetTangentialInfoFromPaths(sg SketchGroup) TangentialInfo {
	if len(sg.Value) == 0 {
		return TangentialInfo{Fallback: sg.Start.Base.To}
	}

	last := sg.Value[len(sg.Value)-1]
	if last.Kind == PathTangentialArcTo || last.Kind == PathTangentialArc {
		return TangentialInfo{Center: last.Center, CCW: last.CCW, HasArc: true}
	}
	return TangentialInfo{Fallback: last.Base.To}
}

// ContiguityViolation describes a from/to mismatch between adjacent
// segments, used by the P1 property test.
type ContiguityViolation struct {
	Index int
	From  Point2D
	To    Point2D
}

// CheckContiguity verifies that every segment's `to` equals the next
// segment's `from`, and that the start segment's `from` equals its own
// `to` (I3). It never mutates; it is a pure property check for tests.
func CheckContiguity(sg SketchGroup) []ContiguityViolation {
	var violations []ContiguityViolation

	if sg.Start.Base.From != sg.Start.Base.To {
		violations = append(violations, ContiguityViolation{
			Index: -1, From: sg.Start.Base.From, To: sg.Start.Base.To,
		})
	}

	prev := sg.Start.Base.To
	for i, p := range sg.Value {
		if p.Base.From != prev {
			violations = append(violations, ContiguityViolation{Index: i, From: p.Base.From, To: prev})
		}
		prev = p.Base.To
	}
	return violations
}

// String renders a Point2D the way %v would, used in panic/error
// messages built from geometry values.
func (p Point2D) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}
