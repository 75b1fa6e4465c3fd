package kclvalue_test

import (
	"github.com/google/uuid"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/cadrun/kclexec/ast"
	"github.com/cadrun/kclexec/kclvalue"
)

var _ = Describe("SketchGroup accessors", func() {
	var sg kclvalue.SketchGroup

	BeforeEach(func() {
		start := kclvalue.NewBase(kclvalue.BasePath{From: kclvalue.Point2D{}, To: kclvalue.Point2D{}})
		sg = kclvalue.SketchGroup{ID: uuid.New(), Start: start}
	})

	Describe("GetCoordsFromPaths", func() {
		It("returns the start point when there are no segments", func() {
			Expect(kclvalue.GetCoordsFromPaths(sg)).To(Equal(kclvalue.Point2D{}))
		})

		It("returns the last segment's `to` when segments exist", func() {
			sg.Value = append(sg.Value, kclvalue.NewToPoint(kclvalue.BasePath{
				From: kclvalue.Point2D{}, To: kclvalue.Point2D{X: 2, Y: 2}, Name: "yo",
			}))
			Expect(kclvalue.GetCoordsFromPaths(sg)).To(Equal(kclvalue.Point2D{X: 2, Y: 2}))
		})
	})

	Describe("GetPathByName", func() {
		It("finds a tagged segment", func() {
			sg.Value = append(sg.Value, kclvalue.NewToPoint(kclvalue.BasePath{
				From: kclvalue.Point2D{}, To: kclvalue.Point2D{X: 2, Y: 2}, Name: "yo",
			}))
			p, ok := kclvalue.GetPathByName(sg, "yo")
			Expect(ok).To(BeTrue())
			Expect(p.Base.To).To(Equal(kclvalue.Point2D{X: 2, Y: 2}))
		})

		It("reports a miss for an unknown tag", func() {
			_, ok := kclvalue.GetPathByName(sg, "nope")
			Expect(ok).To(BeFalse())
		})
	})

	Describe("CheckContiguity", func() {
		It("finds no violations in a contiguous chain", func() {
			sg.Value = append(sg.Value,
				kclvalue.NewToPoint(kclvalue.BasePath{From: kclvalue.Point2D{}, To: kclvalue.Point2D{X: 1}}),
				kclvalue.NewToPoint(kclvalue.BasePath{From: kclvalue.Point2D{X: 1}, To: kclvalue.Point2D{X: 1, Y: 1}}),
			)
			Expect(kclvalue.CheckContiguity(sg)).To(BeEmpty())
		})

		It("flags a gap between segments", func() {
			sg.Value = append(sg.Value,
				kclvalue.NewToPoint(kclvalue.BasePath{From: kclvalue.Point2D{}, To: kclvalue.Point2D{X: 1}}),
				kclvalue.NewToPoint(kclvalue.BasePath{From: kclvalue.Point2D{X: 5}, To: kclvalue.Point2D{X: 1, Y: 1}}),
			)
			Expect(kclvalue.CheckContiguity(sg)).NotTo(BeEmpty())
		})
	})
})

var _ = Describe("MemoryItem.Clone", func() {
	It("deep-copies a SketchGroup payload so appends don't alias", func() {
		sg := kclvalue.SketchGroup{ID: uuid.New()}
		item := kclvalue.NewSketchGroupItem(sg)

		clone := item.Clone()
		clone.SketchGroup.Value = append(clone.SketchGroup.Value, kclvalue.NewToPoint(kclvalue.BasePath{}))

		Expect(item.SketchGroup.Value).To(BeEmpty())
		Expect(clone.SketchGroup.Value).To(HaveLen(1))
	})
})

var _ = Describe("Metadata", func() {
	It("unions source ranges in order", func() {
		a := kclvalue.MetaFromRange(ast.SourceRange{Start: 0, End: 1})
		b := kclvalue.MetaFromRange(ast.SourceRange{Start: 2, End: 3})
		merged := kclvalue.UnionMeta(a, b)
		Expect(merged).To(HaveLen(2))
		Expect(merged[0].SourceRange.Start).To(Equal(0))
		Expect(merged[1].SourceRange.Start).To(Equal(2))
	})
})
