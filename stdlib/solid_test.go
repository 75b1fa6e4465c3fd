package stdlib_test

import (
	"github.com/google/uuid"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/cadrun/kclexec/ast"
	"github.com/cadrun/kclexec/kclvalue"
	"github.com/cadrun/kclexec/stdlib"
)

var _ = Describe("bezierCurve", func() {
	It("draws a relative cubic bezier and advances the pen", func() {
		eng := &noopEngine{}
		r := ast.SourceRange{}

		start, err := stdlib.StartSketchAt([]kclvalue.MemoryItem{userVal([]interface{}{0.0, 0.0})}, nil, nil, nil, eng, r)
		Expect(err).NotTo(HaveOccurred())

		out, err := stdlib.BezierCurve([]kclvalue.MemoryItem{
			userVal(map[string]interface{}{
				"to":       []interface{}{2.0, 0.0},
				"control1": []interface{}{0.5, 1.0},
				"control2": []interface{}{1.5, 1.0},
			}),
			*start,
		}, nil, nil, nil, eng, r)
		Expect(err).NotTo(HaveOccurred())
		Expect(kclvalue.GetCoordsFromPaths(*out.SketchGroup)).To(Equal(kclvalue.Point2D{X: 2, Y: 0}))
	})
})

var _ = Describe("close", func() {
	It("returns the pen to the sketch's start point and disables sketch mode on a bare plane", func() {
		eng := &noopEngine{}
		r := ast.SourceRange{}

		start, err := stdlib.StartSketchAt([]kclvalue.MemoryItem{userVal([]interface{}{0.0, 0.0})}, nil, nil, nil, eng, r)
		Expect(err).NotTo(HaveOccurred())

		a, err := stdlib.LineTo([]kclvalue.MemoryItem{userVal([]interface{}{2.0, 0.0}), *start}, nil, nil, nil, eng, r)
		Expect(err).NotTo(HaveOccurred())
		b, err := stdlib.LineTo([]kclvalue.MemoryItem{userVal([]interface{}{2.0, 2.0}), *a}, nil, nil, nil, eng, r)
		Expect(err).NotTo(HaveOccurred())

		before := eng.calls
		closed, err := stdlib.Close([]kclvalue.MemoryItem{*b}, nil, nil, nil, eng, r)
		Expect(err).NotTo(HaveOccurred())
		Expect(eng.calls).To(BeNumerically(">", before))
		Expect(kclvalue.GetCoordsFromPaths(*closed.SketchGroup)).To(Equal(kclvalue.Point2D{X: 0, Y: 0}))
	})
})

var _ = Describe("translate and rotate", func() {
	It("returns an ExtrudeTransform carrying the offset position without touching the engine", func() {
		eng := &noopEngine{}
		r := ast.SourceRange{}
		eg := kclvalue.NewExtrudeGroupItem(kclvalue.ExtrudeGroup{ID: uuid.New()})

		before := eng.calls
		out, err := stdlib.Translate([]kclvalue.MemoryItem{userVal([]interface{}{1.0, 2.0, 3.0}), eg}, nil, nil, nil, eng, r)
		Expect(err).NotTo(HaveOccurred())
		Expect(eng.calls).To(Equal(before))
		Expect(out.Kind).To(Equal(kclvalue.KindExtrudeTransform))
		Expect(out.ExtrudeTransform.Position).To(Equal(kclvalue.Position{X: 1, Y: 2, Z: 3}))
	})

	It("rejects a translate triple of the wrong length", func() {
		eg := kclvalue.NewExtrudeGroupItem(kclvalue.ExtrudeGroup{ID: uuid.New()})
		_, err := stdlib.Translate([]kclvalue.MemoryItem{userVal([]interface{}{1.0, 2.0}), eg}, nil, nil, nil, &noopEngine{}, ast.SourceRange{})
		Expect(err).To(HaveOccurred())
	})

	It("returns an ExtrudeTransform carrying the quaternion rotation", func() {
		eg := kclvalue.NewExtrudeGroupItem(kclvalue.ExtrudeGroup{ID: uuid.New()})
		out, err := stdlib.Rotate([]kclvalue.MemoryItem{userVal([]interface{}{0.0, 0.0, 0.0, 1.0}), eg}, nil, nil, nil, &noopEngine{}, ast.SourceRange{})
		Expect(err).NotTo(HaveOccurred())
		Expect(out.Kind).To(Equal(kclvalue.KindExtrudeTransform))
		Expect(out.ExtrudeTransform.Rotation).To(Equal(kclvalue.Rotation{W: 1}))
	})
})

var _ = Describe("extrude", func() {
	It("turns a closed square profile into a solid with one face per segment", func() {
		eng := &noopEngine{}
		r := ast.SourceRange{}

		start, err := stdlib.StartSketchAt([]kclvalue.MemoryItem{userVal([]interface{}{0.0, 0.0})}, nil, nil, nil, eng, r)
		Expect(err).NotTo(HaveOccurred())
		a, err := stdlib.LineTo([]kclvalue.MemoryItem{userVal(map[string]interface{}{"to": []interface{}{2.0, 0.0}, "tag": "bottom"}), *start}, nil, nil, nil, eng, r)
		Expect(err).NotTo(HaveOccurred())
		b, err := stdlib.LineTo([]kclvalue.MemoryItem{userVal([]interface{}{2.0, 2.0}), *a}, nil, nil, nil, eng, r)
		Expect(err).NotTo(HaveOccurred())
		closed, err := stdlib.Close([]kclvalue.MemoryItem{*b}, nil, nil, nil, eng, r)
		Expect(err).NotTo(HaveOccurred())

		out, err := stdlib.Extrude([]kclvalue.MemoryItem{userVal(5.0), *closed}, nil, nil, nil, eng, r)
		Expect(err).NotTo(HaveOccurred())
		Expect(out.ExtrudeGroup.Height).To(Equal(5.0))
		Expect(out.ExtrudeGroup.Value).To(HaveLen(len(closed.SketchGroup.Value)))

		var named bool
		for _, s := range out.ExtrudeGroup.Value {
			if s.Name == "bottom" {
				named = true
			}
		}
		Expect(named).To(BeTrue())
	})
})
