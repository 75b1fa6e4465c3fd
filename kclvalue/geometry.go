package kclvalue

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Point2D is a 2D coordinate used throughout the sketch model.
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Position is a 3-vector.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Rotation is a quaternion (x, y, z, w).
type Rotation struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
	W float64 `json:"w"`
}

// IdentityRotation is the default, no-op rotation.
func IdentityRotation() Rotation { return Rotation{W: 1} }

// PlaneKind tags which canonical (or custom) plane a sketch surface
// sits on.
type PlaneKind int

const (
	PlaneXY PlaneKind = iota
	PlaneNegXY
	PlaneXZ
	PlaneNegXZ
	PlaneYZ
	PlaneNegYZ
	PlaneCustom
)

func (k PlaneKind) String() string {
	switch k {
	case PlaneXY:
		return "XY"
	case PlaneNegXY:
		return "-XY"
	case PlaneXZ:
		return "XZ"
	case PlaneNegXZ:
		return "-XZ"
	case PlaneYZ:
		return "YZ"
	case PlaneNegYZ:
		return "-YZ"
	default:
		return "Custom"
	}
}

// ParsePlaneKind accepts the canonical strings case-insensitively, per
// spec.md §6.3.
func ParsePlaneKind(s string) (PlaneKind, error) {
	switch strings.ToUpper(s) {
	case "XY":
		return PlaneXY, nil
	case "-XY":
		return PlaneNegXY, nil
	case "XZ":
		return PlaneXZ, nil
	case "-XZ":
		return PlaneNegXZ, nil
	case "YZ":
		return PlaneYZ, nil
	case "-YZ":
		return PlaneNegYZ, nil
	case "CUSTOM":
		return PlaneCustom, nil
	default:
		return 0, fmt.Errorf("unknown plane kind %q", s)
	}
}

// Axes is the local (x, y, z) basis of a sketch surface.
type Axes struct {
	XAxis Position `json:"xAxis"`
	YAxis Position `json:"yAxis"`
	ZAxis Position `json:"zAxis"`
}

// Plane is a bare, infinite sketch surface.
type Plane struct {
	ID     uuid.UUID
	Origin Position
	Axes   Axes
	Kind   PlaneKind
	Meta   []Metadata
}

// Face is a sketch surface bound to a face of an existing solid.
type Face struct {
	ID     uuid.UUID
	Origin Position
	Axes   Axes
	Tag    string // the tag that selected this face
	Meta   []Metadata
}

// SketchSurface is either a bare Plane or a solid Face; startSketchOn
// accepts either (spec.md §3.1, supplemented by original_source's
// SketchSurface enum).
type SketchSurface struct {
	Plane *Plane
	Face  *Face
}

// IsPlane reports whether this surface is a bare plane (as opposed to
// a face of a solid) — close() only disables sketch mode for a bare
// plane.
func (s SketchSurface) IsPlane() bool { return s.Plane != nil }

func (s SketchSurface) id() uuid.UUID {
	if s.Plane != nil {
		return s.Plane.ID
	}
	return s.Face.ID
}
