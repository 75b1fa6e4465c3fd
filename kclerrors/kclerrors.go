// Package kclerrors defines the flat error taxonomy for the language
// core: Syntax, Semantic, Type, UndefinedValue, ValueAlreadyDefined and
// Engine. Errors here never wrap one another beyond merging source
// ranges — there is no "caused by" chain.
package kclerrors

import (
	"fmt"
	"strings"

	"github.com/cadrun/kclexec/ast"
)

// Kind discriminates the error taxonomy.
type Kind int

const (
	// Syntax is produced by the parser and propagated verbatim.
	Syntax Kind = iota
	// Semantic covers unknown names, disallowed show position, pipe
	// substitution misuse and other calling-form violations.
	Semantic
	// Type covers argument destructuring failures and wrong variants.
	Type
	// UndefinedValue is a memory lookup miss.
	UndefinedValue
	// ValueAlreadyDefined is a write-once memory violation.
	ValueAlreadyDefined
	// Engine is an underlying transport or geometry-engine rejection.
	Engine
)

func (k Kind) String() string {
	switch k {
	case Syntax:
		return "Syntax"
	case Semantic:
		return "Semantic"
	case Type:
		return "Type"
	case UndefinedValue:
		return "UndefinedValue"
	case ValueAlreadyDefined:
		return "ValueAlreadyDefined"
	case Engine:
		return "Engine"
	default:
		return "Unknown"
	}
}

// KclError is the single error type for the whole core. It carries the
// kind, a human message and the source ranges implicated in it.
type KclError struct {
	Kind         Kind
	Message      string
	SourceRanges []ast.SourceRange
}

func (e *KclError) Error() string {
	if len(e.SourceRanges) == 0 {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}

	spans := make([]string, len(e.SourceRanges))
	for i, r := range e.SourceRanges {
		spans[i] = r.String()
	}
	return fmt.Sprintf("%s: %s (%s)", e.Kind, e.Message, strings.Join(spans, ", "))
}

// New builds a KclError of the given kind.
func New(kind Kind, message string, ranges ...ast.SourceRange) *KclError {
	return &KclError{Kind: kind, Message: message, SourceRanges: ranges}
}

func Syntaxf(r ast.SourceRange, format string, args ...interface{}) *KclError {
	return New(Syntax, fmt.Sprintf(format, args...), r)
}

func Semanticf(r ast.SourceRange, format string, args ...interface{}) *KclError {
	return New(Semantic, fmt.Sprintf(format, args...), r)
}

func Typef(r ast.SourceRange, format string, args ...interface{}) *KclError {
	return New(Type, fmt.Sprintf(format, args...), r)
}

func UndefinedValuef(r ast.SourceRange, key string) *KclError {
	return New(UndefinedValue, fmt.Sprintf("memory item key `%s` is not defined", key), r)
}

func ValueAlreadyDefinedf(r ast.SourceRange, key string) *KclError {
	return New(ValueAlreadyDefined, fmt.Sprintf("cannot redefine `%s`", key), r)
}

func Enginef(r ast.SourceRange, format string, args ...interface{}) *KclError {
	return New(Engine, fmt.Sprintf(format, args...), r)
}

// WithOuter prepends the call-site source range to an error raised
// inside a user-defined function body, so the outer (call-site) range
// is primary for editor highlighting and the inner (failing
// sub-expression) range is appended.
func WithOuter(err *KclError, outer ast.SourceRange) *KclError {
	ranges := append([]ast.SourceRange{outer}, err.SourceRanges...)
	return &KclError{Kind: err.Kind, Message: err.Message, SourceRanges: ranges}
}
