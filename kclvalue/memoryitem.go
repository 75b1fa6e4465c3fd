package kclvalue

import (
	"github.com/google/uuid"

	"github.com/cadrun/kclexec/ast"
)

// Memory is the minimal program-memory contract a callable needs. It
// is satisfied by memory.ProgramMemory; declaring it here (rather than
// importing the memory package) keeps kclvalue free of a dependency
// cycle, the same way instr.AsOperandImpl keeps the teacher's operand
// package decoupled from its concrete register-file implementation.
type Memory interface {
	Add(key string, v MemoryItem, r ast.SourceRange) error
	Get(key string, r ast.SourceRange) (MemoryItem, error)
	Clone() Memory
	SetReturnValue(MemoryItem)
	SetReturnArguments([]ast.Value)
}

// EngineHandle is the minimal geometry-engine contract a callable
// needs. cmd is an opaque engine.ModelingCmd value; kclvalue never
// needs to know its concrete shape.
type EngineHandle interface {
	SendModelingCmd(id uuid.UUID, cmd interface{}, r ast.SourceRange) error
}

// NativeFunc is the uniform shape every standard-library callable
// implements (spec.md §4.F). params is non-empty only when a
// user-defined closure's own adapter is invoked through this contract.
type NativeFunc func(
	args []MemoryItem,
	mem Memory,
	params []ast.Identifier,
	meta []Metadata,
	engine EngineHandle,
	callRange ast.SourceRange,
) (*MemoryItem, error)

// Function is either a native callable or a user expression plus its
// source-range metadata (spec.md §3.1). The native field is a bare
// function pointer with no captured state of its own; all state for a
// user-defined function lives in Expression, which is cloned at
// capture time (spec.md §9).
type Function struct {
	Native     NativeFunc
	Expression *ast.FunctionExpression
	Meta       []Metadata
}

// IsUser reports whether this is a user-defined (as opposed to
// standard-library native) function.
func (f Function) IsUser() bool { return f.Expression != nil }

// ItemKind discriminates the MemoryItem sum type.
type ItemKind int

const (
	KindUserVal ItemKind = iota
	KindSketchGroup
	KindExtrudeGroup
	KindExtrudeTransform
	KindFunction
)

func (k ItemKind) String() string {
	switch k {
	case KindUserVal:
		return "userVal"
	case KindSketchGroup:
		return "sketchGroup"
	case KindExtrudeGroup:
		return "extrudeGroup"
	case KindExtrudeTransform:
		return "extrudeTransform"
	case KindFunction:
		return "function"
	default:
		return "unknown"
	}
}

// MemoryItem is the tagged-union runtime value (spec.md §3.1). Kind
// selects which of the payload fields is populated; callers must
// switch on Kind, never probe the payload fields structurally.
type MemoryItem struct {
	Kind ItemKind

	UserVal          interface{} // JSON-shaped scalar/compound
	SketchGroup      *SketchGroup
	ExtrudeGroup     *ExtrudeGroup
	ExtrudeTransform *ExtrudeTransform
	Function         *Function

	Meta []Metadata
}

// NewUserVal wraps a JSON-shaped value produced by a literal or a
// standard-library call.
func NewUserVal(v interface{}, meta []Metadata) MemoryItem {
	return MemoryItem{Kind: KindUserVal, UserVal: v, Meta: meta}
}

// NewSketchGroupItem wraps a SketchGroup.
func NewSketchGroupItem(sg SketchGroup) MemoryItem {
	return MemoryItem{Kind: KindSketchGroup, SketchGroup: &sg, Meta: sg.Meta}
}

// NewExtrudeGroupItem wraps an ExtrudeGroup.
func NewExtrudeGroupItem(eg ExtrudeGroup) MemoryItem {
	return MemoryItem{Kind: KindExtrudeGroup, ExtrudeGroup: &eg, Meta: eg.Meta}
}

// NewExtrudeTransformItem wraps an ExtrudeTransform.
func NewExtrudeTransformItem(t ExtrudeTransform) MemoryItem {
	return MemoryItem{Kind: KindExtrudeTransform, ExtrudeTransform: &t, Meta: t.Meta}
}

// NewFunctionItem wraps a Function value.
func NewFunctionItem(f Function) MemoryItem {
	return MemoryItem{Kind: KindFunction, Function: &f, Meta: f.Meta}
}

// SourceRanges flattens this value's metadata list to source ranges,
// used when building error payloads (spec.md §4.A).
func (m MemoryItem) SourceRanges() []ast.SourceRange {
	out := make([]ast.SourceRange, len(m.Meta))
	for i, md := range m.Meta {
		out[i] = md.SourceRange
	}
	return out
}

// Clone returns a logical copy: mutating operations in the standard
// library must build a new value rather than alias an existing one
// (I5).
func (m MemoryItem) Clone() MemoryItem {
	out := m
	out.Meta = append([]Metadata(nil), m.Meta...)
	switch m.Kind {
	case KindSketchGroup:
		c := m.SketchGroup.Clone()
		out.SketchGroup = &c
	case KindExtrudeGroup:
		c := m.ExtrudeGroup.Clone()
		out.ExtrudeGroup = &c
	}
	return out
}
