// Package stdlib is the standard-library dispatch layer: typed
// adapters around geometry-engine commands (spec.md §4.G). Every
// function here has the kclvalue.NativeFunc shape and is grounded on
// original_source's sketch.rs, function for function.
package stdlib

import (
	"math"

	"github.com/cadrun/kclexec/kclvalue"
)

func degToRad(deg float64) float64 { return deg * math.Pi / 180 }

func addPt(a, b kclvalue.Point2D) kclvalue.Point2D {
	return kclvalue.Point2D{X: a.X + b.X, Y: a.Y + b.Y}
}

func subPt(a, b kclvalue.Point2D) kclvalue.Point2D {
	return kclvalue.Point2D{X: a.X - b.X, Y: a.Y - b.Y}
}

func scalePt(a kclvalue.Point2D, s float64) kclvalue.Point2D {
	return kclvalue.Point2D{X: a.X * s, Y: a.Y * s}
}

func dot(a, b kclvalue.Point2D) float64 { return a.X*b.X + a.Y*b.Y }

func norm(a kclvalue.Point2D) float64 { return math.Hypot(a.X, a.Y) }

func unit(a kclvalue.Point2D) kclvalue.Point2D {
	n := norm(a)
	if n == 0 {
		return kclvalue.Point2D{}
	}
	return kclvalue.Point2D{X: a.X / n, Y: a.Y / n}
}

// ccwNormal rotates a unit direction vector 90° counter-clockwise.
func ccwNormal(d kclvalue.Point2D) kclvalue.Point2D {
	return kclvalue.Point2D{X: -d.Y, Y: d.X}
}

// intersectionWithOffsetLine computes where a ray from `from` at
// angleDeg intersects the line through (lineFrom, lineTo), shifted
// perpendicular to itself by offset (spec.md S2/S3: `
// angledLineThatIntersects`).
func intersectionWithOffsetLine(from kclvalue.Point2D, angleDeg float64, lineFrom, lineTo kclvalue.Point2D, offset float64) kclvalue.Point2D {
	rad := degToRad(angleDeg)
	d := kclvalue.Point2D{X: math.Cos(rad), Y: math.Sin(rad)}

	u := unit(subPt(lineTo, lineFrom))
	n := ccwNormal(u)
	shiftedOrigin := addPt(lineFrom, scalePt(n, offset))

	cross := func(a, b kclvalue.Point2D) float64 { return a.X*b.Y - a.Y*b.X }

	denom := cross(d, u)
	if denom == 0 {
		return from
	}
	t := cross(subPt(shiftedOrigin, from), u) / denom
	return addPt(from, scalePt(d, t))
}

// tangentCircleCenter solves for the center of a circle tangent to
// direction `tangent` at `from`, passing through `to`. The returned
// radius is never negative; ccw reports the winding direction. When
// the chord lies along the tangent it returns (from, 0, true).
func tangentCircleCenter(from, to, tangent kclvalue.Point2D) (center kclvalue.Point2D, radius float64, ccw bool) {
	n := ccwNormal(unit(tangent))
	d := subPt(to, from)
	denom := 2 * dot(d, n)
	if denom == 0 {
		return from, 0, true
	}
	r := dot(d, d) / denom
	ccw = r >= 0
	if !ccw {
		n = scalePt(n, -1)
		r = -r
	}
	center = addPt(from, scalePt(n, r))
	return center, r, ccw
}
