// Package memory implements the program's name → value store
// (spec.md §3.3, §4.B): a write-once map plus an optional return slot.
package memory

import (
	"github.com/cadrun/kclexec/ast"
	"github.com/cadrun/kclexec/kclerrors"
	"github.com/cadrun/kclexec/kclvalue"
)

// ReturnKind discriminates the return slot.
type ReturnKind int

const (
	// ReturnNone means nothing has been written to return_ yet.
	ReturnNone ReturnKind = iota
	// ReturnArguments is produced by `show` at root body.
	ReturnArguments
	// ReturnValue is produced by a return statement in a function body.
	ReturnValue
)

// ProgramReturn is the optional return_ slot on a ProgramMemory.
type ProgramReturn struct {
	Kind      ReturnKind
	Arguments []ast.Value
	Value     kclvalue.MemoryItem
}

// ProgramMemory is a mapping from identifier to MemoryItem, plus an
// optional return slot. Names are write-once per memory (I1): function
// bodies never share a ProgramMemory with their caller — they execute
// against a full logical clone (§4.B), which gives lexical scoping
// without any shared-mutation hazard.
type ProgramMemory struct {
	root   map[string]kclvalue.MemoryItem
	return_ ProgramReturn
}

// New builds an empty root memory.
func New() *ProgramMemory {
	return &ProgramMemory{root: make(map[string]kclvalue.MemoryItem)}
}

// Add inserts a key that must not already exist in this scope.
func (m *ProgramMemory) Add(key string, v kclvalue.MemoryItem, r ast.SourceRange) error {
	if _, exists := m.root[key]; exists {
		return kclerrors.ValueAlreadyDefinedf(r, key)
	}
	m.root[key] = v
	return nil
}

// Get returns the named value, failing UndefinedValue if absent.
func (m *ProgramMemory) Get(key string, r ast.SourceRange) (kclvalue.MemoryItem, error) {
	v, ok := m.root[key]
	if !ok {
		return kclvalue.MemoryItem{}, kclerrors.UndefinedValuef(r, key)
	}
	return v, nil
}

// Clone returns a full logical copy of this memory: every key/value
// pair is duplicated into a fresh map, and the return slot is reset.
// This is what a function call extends with parameter bindings
// (§4.B) — the deliberately simple, copy-based lexical scoping the
// spec chooses over a hierarchical chain.
func (m *ProgramMemory) Clone() kclvalue.Memory {
	out := New()
	for k, v := range m.root {
		out.root[k] = v.Clone()
	}
	return out
}

// SetReturnValue writes memory.return_ = Value(v); last write wins
// within a single body.
func (m *ProgramMemory) SetReturnValue(v kclvalue.MemoryItem) {
	m.return_ = ProgramReturn{Kind: ReturnValue, Value: v}
}

// SetReturnArguments writes memory.return_ = Arguments(args), produced
// by `show` at the root body.
func (m *ProgramMemory) SetReturnArguments(args []ast.Value) {
	m.return_ = ProgramReturn{Kind: ReturnArguments, Arguments: args}
}

// Return reads the current return slot.
func (m *ProgramMemory) Return() ProgramReturn { return m.return_ }

// Root exposes the underlying bindings for serialization and test
// introspection. The returned map is the live map; callers that mean
// to mutate memory should go through Add.
func (m *ProgramMemory) Root() map[string]kclvalue.MemoryItem { return m.root }
