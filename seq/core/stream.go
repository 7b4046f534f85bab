// Package core defines the core abstractions for sequence pipelines,
// including results, streams, sources, and observation hooks.
// It provides the foundational building blocks the user-facing seq
// package and its adapters are assembled from.
//
// NOTE: this package should have no dependencies outside the standard
// library, including other seq packages.
package core

import (
	"iter"
)

// Stream is a single pass over a sequence of Results. Invoking the
// stream runs the pass, calling yield once per Result in order.
// When yield returns false the pass stops and the stream must not
// call yield again. A Stream has the shape of iter.Seq[Result[T]],
// so it can be consumed with a range statement.
// Stream answers the question: "What does one traversal produce?".
type Stream[T any] func(yield func(Result[T]) bool)

// StreamOf builds a Stream that yields the given Results in order.
func StreamOf[T any](results ...Result[T]) Stream[T] {
	return func(yield func(Result[T]) bool) {
		for _, res := range results {
			if !yield(res) {
				return
			}
		}
	}
}

// Collect runs the stream and gathers every Result into a slice,
// including errors. Intended for tests and diagnostics; terminal
// operations in the seq package stop at the first error instead.
func Collect[T any](s Stream[T]) []Result[T] {
	var results []Result[T]
	for res := range s {
		results = append(results, res)
	}
	return results
}

// Pull converts the stream to a pull-style iterator. The returned
// next function reports the stream's Results one at a time; stop must
// be called when the caller is finished, whether or not the stream
// was drained.
func Pull[T any](s Stream[T]) (next func() (Result[T], bool), stop func()) {
	return iter.Pull(iter.Seq[Result[T]](s))
}

// Values exposes the stream as an iterator over (value, error) pairs.
// After yielding an error pair the iteration stops.
func Values[T any](s Stream[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for res := range s {
			if res.IsError() {
				var zero T
				yield(zero, res.Error())
				return
			}
			if !yield(res.Value(), nil) {
				return
			}
		}
	}
}
