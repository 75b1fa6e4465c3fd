package stdlib

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/cadrun/kclexec/kclvalue"
)

var _ = Describe("intersectionWithOffsetLine", func() {
	// startSketchAt([0,0]) |> lineTo({to:[2,2],tag:"yo"}) |> lineTo([3,1])
	// |> angledLineThatIntersects({angle:180, intersectTag:"yo", offset:-1})
	from := kclvalue.Point2D{X: 3, Y: 1}
	lineFrom := kclvalue.Point2D{X: 0, Y: 0}
	lineTo := kclvalue.Point2D{X: 2, Y: 2}

	It("matches the offset=-1 intersection", func() {
		p := intersectionWithOffsetLine(from, 180, lineFrom, lineTo, -1)
		Expect(p.X).To(BeNumerically("~", 1+math.Sqrt2, 1e-12))
	})

	It("matches the offset=0 intersection, floating-point artifact included", func() {
		p := intersectionWithOffsetLine(from, 180, lineFrom, lineTo, 0)
		Expect(p.X).To(BeNumerically("~", 1.0, 1e-9))
	})

	It("falls back to the ray origin when the ray is parallel to the line", func() {
		// A 0° ray against a horizontal line: their cross product is exactly 0.
		p := intersectionWithOffsetLine(from, 0, kclvalue.Point2D{X: 0, Y: 0}, kclvalue.Point2D{X: 2, Y: 0}, 0)
		Expect(p).To(Equal(from))
	})
})

var _ = Describe("tangentCircleCenter", func() {
	It("solves a quarter-circle arc from (0,0) tangent to +X, through (1,1)", func() {
		center, radius, ccw := tangentCircleCenter(
			kclvalue.Point2D{X: 0, Y: 0},
			kclvalue.Point2D{X: 1, Y: 1},
			kclvalue.Point2D{X: 1, Y: 0},
		)
		Expect(ccw).To(BeTrue())
		Expect(radius).To(BeNumerically("~", 1.0, 1e-9))
		Expect(center.X).To(BeNumerically("~", 0, 1e-9))
		Expect(center.Y).To(BeNumerically("~", 1, 1e-9))
	})

	It("reports a degenerate case when the chord lies along the tangent", func() {
		_, radius, _ := tangentCircleCenter(
			kclvalue.Point2D{X: 0, Y: 0},
			kclvalue.Point2D{X: 2, Y: 0},
			kclvalue.Point2D{X: 1, Y: 0},
		)
		Expect(radius).To(Equal(0.0))
	})
})

var _ = Describe("vector helpers", func() {
	It("unit returns the zero vector for a zero-length input", func() {
		Expect(unit(kclvalue.Point2D{})).To(Equal(kclvalue.Point2D{}))
	})

	It("ccwNormal rotates +X into +Y", func() {
		n := ccwNormal(kclvalue.Point2D{X: 1, Y: 0})
		Expect(n.X).To(BeNumerically("~", 0, 1e-12))
		Expect(n.Y).To(BeNumerically("~", 1, 1e-12))
	})
})
