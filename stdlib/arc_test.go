package stdlib_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/cadrun/kclexec/ast"
	"github.com/cadrun/kclexec/kclvalue"
	"github.com/cadrun/kclexec/stdlib"
)

var _ = Describe("tangentialArcTo", func() {
	It("draws a tangent circle from a straight incoming segment", func() {
		eng := &noopEngine{}
		r := ast.SourceRange{}

		start, err := stdlib.StartSketchAt([]kclvalue.MemoryItem{userVal([]interface{}{0.0, 0.0})}, nil, nil, nil, eng, r)
		Expect(err).NotTo(HaveOccurred())

		straight, err := stdlib.LineTo([]kclvalue.MemoryItem{userVal([]interface{}{1.0, 0.0}), *start}, nil, nil, nil, eng, r)
		Expect(err).NotTo(HaveOccurred())

		arced, err := stdlib.TangentialArcTo([]kclvalue.MemoryItem{userVal([]interface{}{2.0, 1.0}), *straight}, nil, nil, nil, eng, r)
		Expect(err).NotTo(HaveOccurred())
		Expect(arced.SketchGroup.Value).To(HaveLen(2))
		Expect(kclvalue.GetCoordsFromPaths(*arced.SketchGroup)).To(Equal(kclvalue.Point2D{X: 2, Y: 1}))
	})
})

var _ = Describe("arc", func() {
	It("draws an angle+radius arc ending at the computed point", func() {
		eng := &noopEngine{}
		r := ast.SourceRange{}

		start, err := stdlib.StartSketchAt([]kclvalue.MemoryItem{userVal([]interface{}{1.0, 0.0})}, nil, nil, nil, eng, r)
		Expect(err).NotTo(HaveOccurred())

		out, err := stdlib.Arc([]kclvalue.MemoryItem{
			userVal(map[string]interface{}{"angleStart": 0.0, "angleEnd": 90.0, "radius": 1.0}),
			*start,
		}, nil, nil, nil, eng, r)
		Expect(err).NotTo(HaveOccurred())

		to := kclvalue.GetCoordsFromPaths(*out.SketchGroup)
		Expect(to.X).To(BeNumerically("~", 0, 1e-9))
		Expect(to.Y).To(BeNumerically("~", 1, 1e-9))
	})
})

var _ = Describe("SegLen and SegAngle", func() {
	It("measures a diagonal tagged segment", func() {
		eng := &noopEngine{}
		r := ast.SourceRange{}

		start, err := stdlib.StartSketchAt([]kclvalue.MemoryItem{userVal([]interface{}{0.0, 0.0})}, nil, nil, nil, eng, r)
		Expect(err).NotTo(HaveOccurred())

		tagged, err := stdlib.LineTo([]kclvalue.MemoryItem{
			userVal(map[string]interface{}{"to": []interface{}{3.0, 4.0}, "tag": "diag"}),
			*start,
		}, nil, nil, nil, eng, r)
		Expect(err).NotTo(HaveOccurred())

		length, err := stdlib.SegLen([]kclvalue.MemoryItem{userVal("diag"), *tagged}, nil, nil, nil, eng, r)
		Expect(err).NotTo(HaveOccurred())
		Expect(length.UserVal).To(BeNumerically("~", 5.0, 1e-9))

		angle, err := stdlib.SegAngle([]kclvalue.MemoryItem{userVal("diag"), *tagged}, nil, nil, nil, eng, r)
		Expect(err).NotTo(HaveOccurred())
		Expect(angle.UserVal).To(BeNumerically("~", math.Atan2(4, 3)*180/math.Pi, 1e-9))
	})
})
