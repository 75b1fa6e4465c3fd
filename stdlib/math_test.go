package stdlib_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/cadrun/kclexec/ast"
	"github.com/cadrun/kclexec/kclvalue"
	"github.com/cadrun/kclexec/stdlib"
)

var _ = Describe("min and max", func() {
	It("picks the smallest of several numbers", func() {
		out, err := stdlib.Min([]kclvalue.MemoryItem{userVal(5.0), userVal(3.0), userVal(4.0)}, nil, nil, nil, &noopEngine{}, ast.SourceRange{})
		Expect(err).NotTo(HaveOccurred())
		Expect(out.UserVal).To(Equal(3.0))
	})

	It("picks the largest of several numbers", func() {
		out, err := stdlib.Max([]kclvalue.MemoryItem{userVal(5.0), userVal(3.0), userVal(4.0)}, nil, nil, nil, &noopEngine{}, ast.SourceRange{})
		Expect(err).NotTo(HaveOccurred())
		Expect(out.UserVal).To(Equal(5.0))
	})

	It("rejects a non-numeric argument", func() {
		_, err := stdlib.Min([]kclvalue.MemoryItem{userVal("nope")}, nil, nil, nil, &noopEngine{}, ast.SourceRange{})
		Expect(err).To(HaveOccurred())
	})

	It("rejects an empty argument list", func() {
		_, err := stdlib.Min(nil, nil, nil, nil, &noopEngine{}, ast.SourceRange{})
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("S5 segLen, min and legLen values", func() {
	It("computes min and legLen of seg01's length and myVar on the sketch group holding seg01", func() {
		eng := &noopEngine{}
		r := ast.SourceRange{}

		start, err := stdlib.StartSketchAt([]kclvalue.MemoryItem{userVal([]interface{}{0.0, 0.0})}, nil, nil, nil, eng, r)
		Expect(err).NotTo(HaveOccurred())

		seg01, err := stdlib.LineTo([]kclvalue.MemoryItem{
			userVal(map[string]interface{}{"to": []interface{}{3.0, 4.0}, "tag": "seg01"}),
			*start,
		}, nil, nil, nil, eng, r)
		Expect(err).NotTo(HaveOccurred())

		myVar := 3.0
		length, err := stdlib.SegLen([]kclvalue.MemoryItem{userVal("seg01"), *seg01}, nil, nil, nil, eng, r)
		Expect(err).NotTo(HaveOccurred())

		picked, err := stdlib.Min([]kclvalue.MemoryItem{*length, userVal(myVar)}, nil, nil, nil, eng, r)
		Expect(err).NotTo(HaveOccurred())
		Expect(picked.UserVal).To(BeNumerically("~", 3.0, 1e-12))

		leg, err := stdlib.LegLen([]kclvalue.MemoryItem{*length, userVal(myVar)}, nil, nil, nil, eng, r)
		Expect(err).NotTo(HaveOccurred())
		Expect(leg.UserVal).To(BeNumerically("~", 4.0, 1e-12))
	})
})
