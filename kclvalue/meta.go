package kclvalue

import (
	"github.com/google/uuid"

	"github.com/cadrun/kclexec/ast"
)

// Metadata propagates the source range that produced a value through
// every value derived from it (spec.md I6), so any run-time error can
// be pinned to a source span.
type Metadata struct {
	SourceRange ast.SourceRange `json:"sourceRange"`
}

// GeoMeta identifies one geometry-carrying entity: a path segment or a
// sketch surface. Every such entity gets a freshly generated uuid at
// the moment of creation (I2), and that uuid is the key used in the
// matching geometry-engine command.
type GeoMeta struct {
	ID          uuid.UUID       `json:"id"`
	SourceRange ast.SourceRange `json:"sourceRange"`
}

// NewGeoMeta mints a fresh identity for a newly created segment or
// surface.
func NewGeoMeta(r ast.SourceRange) GeoMeta {
	return GeoMeta{ID: uuid.New(), SourceRange: r}
}

// MetaFromRange is a convenience constructor used when a value is
// produced directly from one AST node.
func MetaFromRange(r ast.SourceRange) []Metadata {
	return []Metadata{{SourceRange: r}}
}

// UnionMeta merges two metadata lists in order, used by
// BinaryExpression evaluation to propagate both operands' source
// ranges onto the result.
func UnionMeta(a, b []Metadata) []Metadata {
	out := make([]Metadata, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}
