package stdlib_test

import (
	"github.com/google/uuid"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/cadrun/kclexec/ast"
	"github.com/cadrun/kclexec/kclvalue"
	"github.com/cadrun/kclexec/stdlib"
)

type noopEngine struct{ calls int }

func (n *noopEngine) SendModelingCmd(id uuid.UUID, cmd interface{}, r ast.SourceRange) error {
	n.calls++
	return nil
}

func userVal(v interface{}) kclvalue.MemoryItem {
	return kclvalue.NewUserVal(v, nil)
}

var _ = Describe("Builtins", func() {
	It("registers every native name the standard library exposes", func() {
		b := stdlib.Builtins()
		for _, name := range []string{
			"startSketchOn", "startSketchAt", "startProfileAt",
			"line", "lineTo", "xLine", "yLine", "xLineTo", "yLineTo",
			"angledLine", "angledLineThatIntersects",
			"arc", "tangentialArc", "tangentialArcTo", "bezierCurve",
			"close", "hole", "translate", "rotate",
			"segLen", "segAngle", "segEndX", "segEndY",
			"legLen", "legAngX", "legAngY", "extrude",
			"min", "max",
		} {
			Expect(b).To(HaveKey(name))
		}
	})
})

var _ = Describe("a square profile built from natives", func() {
	It("walks startSketchAt -> four lineTo calls and yields a four-segment, contiguous path", func() {
		eng := &noopEngine{}
		r := ast.SourceRange{}

		start, err := stdlib.StartSketchAt([]kclvalue.MemoryItem{userVal([]interface{}{0.0, 0.0})}, nil, nil, nil, eng, r)
		Expect(err).NotTo(HaveOccurred())
		Expect(start.Kind).To(Equal(kclvalue.KindSketchGroup))

		corners := [][2]float64{{2, 0}, {2, 2}, {0, 2}, {0, 0}}
		cur := start
		for _, c := range corners {
			next, err := stdlib.LineTo([]kclvalue.MemoryItem{
				userVal([]interface{}{c[0], c[1]}),
				*cur,
			}, nil, nil, nil, eng, r)
			Expect(err).NotTo(HaveOccurred())
			cur = next
		}

		Expect(cur.SketchGroup.Value).To(HaveLen(4))
		Expect(kclvalue.GetCoordsFromPaths(*cur.SketchGroup)).To(Equal(kclvalue.Point2D{X: 0, Y: 0}))
		Expect(kclvalue.CheckContiguity(*cur.SketchGroup)).To(BeEmpty())
		Expect(eng.calls).To(BeNumerically(">", 0))
	})
})
