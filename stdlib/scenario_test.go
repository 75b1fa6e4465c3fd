package stdlib_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/cadrun/kclexec/ast"
	"github.com/cadrun/kclexec/kclvalue"
	"github.com/cadrun/kclexec/stdlib"
)

// runIntersectsScenario reproduces:
//
//	startSketchAt([0,0])
//	  |> lineTo({to:[2,2],tag:"yo"},%)
//	  |> lineTo([3,1],%)
//	  |> angledLineThatIntersects({angle:180,intersectTag:"yo",offset},%,"yo2")
func runIntersectsScenario(offset float64) float64 {
	eng := &noopEngine{}
	r := ast.SourceRange{}

	start, err := stdlib.StartSketchAt([]kclvalue.MemoryItem{userVal([]interface{}{0.0, 0.0})}, nil, nil, nil, eng, r)
	Expect(err).NotTo(HaveOccurred())

	tagged, err := stdlib.LineTo([]kclvalue.MemoryItem{
		userVal(map[string]interface{}{"to": []interface{}{2.0, 2.0}, "tag": "yo"}),
		*start,
	}, nil, nil, nil, eng, r)
	Expect(err).NotTo(HaveOccurred())

	moved, err := stdlib.LineTo([]kclvalue.MemoryItem{
		userVal([]interface{}{3.0, 1.0}),
		*tagged,
	}, nil, nil, nil, eng, r)
	Expect(err).NotTo(HaveOccurred())

	intersected, err := stdlib.AngledLineThatIntersects([]kclvalue.MemoryItem{
		userVal(map[string]interface{}{"angle": 180.0, "intersectTag": "yo", "offset": offset}),
		*moved,
		userVal("yo2"),
	}, nil, nil, nil, eng, r)
	Expect(err).NotTo(HaveOccurred())

	x, err := stdlib.SegEndX([]kclvalue.MemoryItem{userVal("yo2"), *intersected}, nil, nil, nil, eng, r)
	Expect(err).NotTo(HaveOccurred())
	return x.UserVal.(float64)
}

var _ = Describe("angledLineThatIntersects end to end", func() {
	It("matches the offset=-1 scenario", func() {
		Expect(runIntersectsScenario(-1)).To(BeNumerically("~", 1+math.Sqrt2, 1e-12))
	})

	It("matches the offset=0 scenario", func() {
		Expect(runIntersectsScenario(0)).To(BeNumerically("~", 1.0, 1e-9))
	})
})

var _ = Describe("LegLen and LegAngX", func() {
	It("computes the missing leg of a 3-4-5 triangle", func() {
		out, err := stdlib.LegLen([]kclvalue.MemoryItem{userVal(5.0), userVal(3.0)}, nil, nil, nil, &noopEngine{}, ast.SourceRange{})
		Expect(err).NotTo(HaveOccurred())
		Expect(out.UserVal).To(BeNumerically("~", 4.0, 1e-9))
	})

	It("rejects a leg longer than the hypotenuse", func() {
		_, err := stdlib.LegLen([]kclvalue.MemoryItem{userVal(3.0), userVal(5.0)}, nil, nil, nil, &noopEngine{}, ast.SourceRange{})
		Expect(err).To(HaveOccurred())
	})

	It("computes the angle between hypotenuse and the x leg", func() {
		out, err := stdlib.LegAngX([]kclvalue.MemoryItem{userVal(5.0), userVal(4.0)}, nil, nil, nil, &noopEngine{}, ast.SourceRange{})
		Expect(err).NotTo(HaveOccurred())
		Expect(out.UserVal).To(BeNumerically("~", 36.869897645844, 1e-9))
	})
})
