// Package engine is the thin async adapter between the executor and
// the external geometry engine (spec.md §4.H, §6.2). The engine itself
// is an opaque sink out of scope for this module; this package only
// fixes the command envelope, the identity scheme and the await
// semantics a host's transport must honor.
package engine

import "github.com/google/uuid"

// ModelingCmd is one geometry-engine command. The concrete variants
// below are opaque payloads from the engine's point of view — this
// package only needs to carry and order them.
type ModelingCmd interface {
	modelingCmd()
}

// StartPath begins a new path on the currently active sketch surface.
type StartPath struct{}

func (StartPath) modelingCmd() {}

// MovePathPen repositions the pen without drawing, used when entering
// a profile at a starting point.
type MovePathPen struct {
	PathID uuid.UUID
	To     [2]float64
}

func (MovePathPen) modelingCmd() {}

// Segment is the payload union carried by ExtendPath.
type Segment interface {
	segment()
}

// LineSegment draws a straight line, relative (a delta) or absolute
// (a destination), following the `line` vs `lineTo` naming convention
// (spec.md §9 open question (c): no implicit coercion between the
// two).
type LineSegment struct {
	Relative bool
	End      [2]float64
}

func (LineSegment) segment() {}

// ArcSegment draws a circular arc either by angle range + radius or by
// center + radius.
type ArcSegment struct {
	Center      [2]float64
	Radius      float64
	StartAngle  float64
	EndAngle    float64
}

func (ArcSegment) segment() {}

// TangentialArcSegment draws an arc tangent to the previous segment,
// given a radius and an angular offset.
type TangentialArcSegment struct {
	Radius       float64
	OffsetAngle  float64
}

func (TangentialArcSegment) segment() {}

// TangentialArcToSegment draws a tangential arc ending at a point.
type TangentialArcToSegment struct {
	To [2]float64
}

func (TangentialArcToSegment) segment() {}

// BezierSegment draws a cubic bezier, relative to the current pen
// position.
type BezierSegment struct {
	To       [2]float64
	Control1 [2]float64
	Control2 [2]float64
}

func (BezierSegment) segment() {}

// ExtendPath appends one segment to the path identified by PathID.
type ExtendPath struct {
	PathID  uuid.UUID
	Segment Segment
}

func (ExtendPath) modelingCmd() {}

// ClosePath closes the path back to its starting point.
type ClosePath struct {
	PathID uuid.UUID
}

func (ClosePath) modelingCmd() {}

// EnableSketchMode puts the engine into sketch mode on SurfaceID.
type EnableSketchMode struct {
	SurfaceID uuid.UUID
}

func (EnableSketchMode) modelingCmd() {}

// SketchModeDisable exits sketch mode, issued only when closing a
// sketch whose surface is a bare plane (spec.md §4.G `close`).
type SketchModeDisable struct{}

func (SketchModeDisable) modelingCmd() {}

// MakePlane creates a bare sketch plane.
type MakePlane struct {
	Origin [3]float64
	XAxis  [3]float64
	YAxis  [3]float64
}

func (MakePlane) modelingCmd() {}

// Solid2DAddHole consumes HoleID as a hole in ObjectID's 2D profile.
type Solid2DAddHole struct {
	ObjectID uuid.UUID
	HoleID   uuid.UUID
}

func (Solid2DAddHole) modelingCmd() {}

// ObjectVisible toggles an object's visibility; `hole` uses this to
// hide the consumed hole profile.
type ObjectVisible struct {
	ObjectID uuid.UUID
	Hidden   bool
}

func (ObjectVisible) modelingCmd() {}

// Extrude turns a closed 2D profile into a solid, Distance along the
// profile's surface normal.
type Extrude struct {
	PathID   uuid.UUID
	Distance float64
}

func (Extrude) modelingCmd() {}
