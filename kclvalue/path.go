package kclvalue

// PathKind discriminates the Path sum type. Runtime reflection ("is
// this a TangentialArcTo?") is always by this discriminant, never by
// structural probing (spec.md §9).
type PathKind int

const (
	PathToPoint PathKind = iota
	PathHorizontal
	PathAngledLineTo
	PathTangentialArc
	PathTangentialArcTo
	PathBase
)

func (k PathKind) String() string {
	switch k {
	case PathToPoint:
		return "ToPoint"
	case PathHorizontal:
		return "Horizontal"
	case PathAngledLineTo:
		return "AngledLineTo"
	case PathTangentialArc:
		return "TangentialArc"
	case PathTangentialArcTo:
		return "TangentialArcTo"
	case PathBase:
		return "Base"
	default:
		return "Unknown"
	}
}

// BasePath is the common envelope every path-segment variant wraps
// (spec.md §3.2).
type BasePath struct {
	From    Point2D
	To      Point2D
	Name    string
	GeoMeta GeoMeta
}

// Path is one edge in a sketch. Kind selects which payload fields are
// meaningful.
type Path struct {
	Kind PathKind
	Base BasePath

	// PathHorizontal
	X float64

	// PathAngledLineTo
	AngleX    *float64
	AngleY    *float64
	HasAngleX bool
	HasAngleY bool

	// PathTangentialArcTo
	Center Point2D
	CCW    bool
}

// NewToPoint builds a plain line-to segment.
func NewToPoint(base BasePath) Path {
	return Path{Kind: PathToPoint, Base: base}
}

// NewBase builds the degenerate starting segment: From == To.
func NewBase(base BasePath) Path {
	return Path{Kind: PathBase, Base: base}
}

// NewTangentialArcTo builds a tangential-arc-to segment, recording the
// arc's center and winding direction so later tangent lookups don't
// need to recompute them.
func NewTangentialArcTo(base BasePath, center Point2D, ccw bool) Path {
	return Path{Kind: PathTangentialArcTo, Base: base, Center: center, CCW: ccw}
}

// NewTangentialArc builds a radius/offset-angle tangential arc (the
// `arc` and `tangentialArc` family, as opposed to `tangentialArcTo`
// which targets a specific point).
func NewTangentialArc(base BasePath, center Point2D, ccw bool) Path {
	return Path{Kind: PathTangentialArc, Base: base, Center: center, CCW: ccw}
}

// Tag returns the path's name, if it has one.
func (p Path) Tag() string { return p.Base.Name }
