// Package seq provides a fluent, lazily evaluated sequence pipeline
// library. Pipelines chain transformations such as Filter, Map, and
// GroupBy over arbitrary element sources; nothing runs until a
// terminal operation such as ToList, ForEach, or MkString begins a
// single pass over the source.
//
// Evaluation is synchronous: a terminal operation runs its whole pass
// on the calling goroutine before returning. Seq values may be shared
// and extended freely, but terminal operations over the same
// underlying single-use source must not run concurrently.
//
// This package is the primary user-facing API. The seq/core
// subpackage contains low-level abstractions that are rarely needed
// directly. The seq/aggregate package adds scalar and keyed
// reductions, and adapter packages such as seq/sql and seq/csv build
// sequences from external data.
package seq

import (
	"github.com/lguimbarda/fluent-seq/seq/core"
)

// Type aliases for core abstractions.
// These allow users to work with pipelines without importing core directly.
type (
	// Result represents the outcome of processing one element of a pass.
	Result[T any] = core.Result[T]

	// Stream is a single pass over a sequence of Results.
	Stream[T any] = core.Stream[T]

	// Source produces the elements a pipeline consumes.
	Source[T any] = core.Source[T]

	// Hooks holds typed observation callbacks for one point of a pipeline.
	Hooks[T any] = core.Hooks[T]

	// ElementError reports a caller-supplied function failing for one element.
	ElementError = core.ElementError

	// PanicError wraps a panic recovered from a caller-supplied function.
	PanicError = core.PanicError

	// ReplayError reports a second traversal of a single-use source.
	ReplayError = core.ReplayError

	// IndexError reports an element access outside the valid range.
	IndexError = core.IndexError

	// DuplicateKeyError reports a repeated key where keys must be unique.
	DuplicateKeyError = core.DuplicateKeyError
)

// ErrEmptySequence is returned by operations that need at least one
// element when the sequence produced none.
var ErrEmptySequence = core.ErrEmptySequence

// ErrExhausted is matched, via errors.Is, by every ReplayError.
var ErrExhausted = core.ErrExhausted

// Result constructors - wrappers around core functions.

// Ok creates a successful Result containing the given value.
func Ok[T any](value T) Result[T] {
	return core.Ok(value)
}

// Err creates an error Result.
func Err[T any](err error) Result[T] {
	return core.Err[T](err)
}
