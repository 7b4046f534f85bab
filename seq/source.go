package seq

import (
	"iter"

	"github.com/lguimbarda/fluent-seq/seq/core"
)

// Source constructors. Each documents whether the resulting Seq is
// replayable: a replayable Seq re-runs the full pass for every
// terminal operation, while a single-use Seq allows exactly one.

// FromSlice creates a replayable Seq that yields each element of
// items in order. The slice is not copied; it should not be mutated
// while passes run. Use NewList for an independent copy.
func FromSlice[T any](items []T) Seq[T] {
	return New(func() (core.Stream[T], error) {
		return func(yield func(core.Result[T]) bool) {
			for _, item := range items {
				if !yield(core.Ok(item)) {
					return
				}
			}
		}, nil
	}, true)
}

// Just creates a replayable Seq that yields exactly the given values.
func Just[T any](values ...T) Seq[T] {
	return FromSlice(values)
}

// Empty creates a replayable Seq that yields nothing.
func Empty[T any]() Seq[T] {
	return New(func() (core.Stream[T], error) {
		return core.StreamOf[T](), nil
	}, true)
}

// FromSeq wraps a Go iterator as a single-use Seq. A bare iterator
// cannot be assumed restartable, so only one pass is allowed; use
// FromSeqFunc when a fresh iterator can be made for every pass.
func FromSeq[T any](it iter.Seq[T]) Seq[T] {
	open := core.SingleUse("iterator", func() (core.Stream[T], error) {
		return iterStream(it), nil
	})
	return New(open, false)
}

// FromSeqFunc creates a replayable Seq that calls factory for a
// fresh iterator at the start of every pass.
func FromSeqFunc[T any](factory func() iter.Seq[T]) Seq[T] {
	return New(func() (core.Stream[T], error) {
		return iterStream(factory()), nil
	}, true)
}

func iterStream[T any](it iter.Seq[T]) core.Stream[T] {
	return func(yield func(core.Result[T]) bool) {
		for item := range it {
			if !yield(core.Ok(item)) {
				return
			}
		}
	}
}

// FromChannel wraps a channel as a single-use Seq. The pass receives
// from ch until it is closed; the caller is responsible for closing
// it. Values already taken from the channel cannot be replayed, so
// only one pass is allowed.
func FromChannel[T any](ch <-chan T) Seq[T] {
	open := core.SingleUse("channel", func() (core.Stream[T], error) {
		return func(yield func(core.Result[T]) bool) {
			for item := range ch {
				if !yield(core.Ok(item)) {
					return
				}
			}
		}, nil
	})
	return New(open, false)
}

// KeyValue represents a key-value pair.
type KeyValue[K comparable, V any] struct {
	Key   K
	Value V
}

// FromMap creates a replayable Seq over a snapshot of m's key-value
// pairs. The snapshot is taken when FromMap is called; its order
// follows Go map iteration and is therefore arbitrary, but every
// pass replays the same snapshot in the same order.
func FromMap[K comparable, V any](m map[K]V) Seq[KeyValue[K, V]] {
	pairs := make([]KeyValue[K, V], 0, len(m))
	for k, v := range m {
		pairs = append(pairs, KeyValue[K, V]{Key: k, Value: v})
	}
	return FromSlice(pairs)
}

// Range creates a replayable Seq of the integers from start
// (inclusive) to end (exclusive). If start >= end the Seq is empty.
func Range(start, end int) Seq[int] {
	return New(func() (core.Stream[int], error) {
		return func(yield func(core.Result[int]) bool) {
			for i := start; i < end; i++ {
				if !yield(core.Ok(i)) {
					return
				}
			}
		}, nil
	}, true)
}

// RangeStep creates a replayable Seq of integers from start toward
// end in increments of step.
// If step is positive, it yields start, start+step, ... while < end.
// If step is negative, it yields start, start+step, ... while > end.
// If step is zero or points away from end, the Seq is empty.
func RangeStep(start, end, step int) Seq[int] {
	return New(func() (core.Stream[int], error) {
		return func(yield func(core.Result[int]) bool) {
			if step == 0 {
				return
			}
			if step > 0 && start >= end {
				return
			}
			if step < 0 && start <= end {
				return
			}
			for i := start; (step > 0 && i < end) || (step < 0 && i > end); i += step {
				if !yield(core.Ok(i)) {
					return
				}
			}
		}, nil
	}, true)
}

// Repeat creates a replayable Seq that yields value n times. A
// negative n repeats without end; bound such passes with Take or
// TakeWhile.
func Repeat[T any](value T, n int) Seq[T] {
	return New(func() (core.Stream[T], error) {
		return func(yield func(core.Result[T]) bool) {
			for count := 0; n < 0 || count < n; count++ {
				if !yield(core.Ok(value)) {
					return
				}
			}
		}, nil
	}, true)
}

// Iterate creates a replayable Seq that yields seed, fn(seed),
// fn(fn(seed)), and so on without end. Every pass restarts from
// seed. Bound the pass with Take or TakeWhile.
func Iterate[T any](seed T, fn func(T) T) Seq[T] {
	return New(func() (core.Stream[T], error) {
		return func(yield func(core.Result[T]) bool) {
			current := seed
			for {
				if !yield(core.Ok(current)) {
					return
				}
				current = fn(current)
			}
		}, nil
	}, true)
}

// Generate creates a single-use Seq that calls fn for each element.
// fn returns the next value and true to continue, or false to end
// the pass; an fn error ends the pass and propagates. Generators
// usually close over external state, so only one pass is allowed.
func Generate[T any](fn func() (T, bool, error)) Seq[T] {
	open := core.SingleUse("generator", func() (core.Stream[T], error) {
		return func(yield func(core.Result[T]) bool) {
			for {
				value, ok, err := fn()
				if err != nil {
					yield(core.Err[T](err))
					return
				}
				if !ok {
					return
				}
				if !yield(core.Ok(value)) {
					return
				}
			}
		}, nil
	})
	return New(open, false)
}

// Concat creates a Seq that yields every element of each sequence in
// turn: all elements of the first, then all of the second, and so
// on. The result is replayable only when every input is.
func Concat[T any](seqs ...Sequence[T]) Seq[T] {
	sources := make([]Seq[T], len(seqs))
	replayable := true
	for i, s := range seqs {
		sources[i] = s.Seq()
		replayable = replayable && sources[i].Replayable()
	}
	return New(func() (core.Stream[T], error) {
		return func(yield func(core.Result[T]) bool) {
			for _, source := range sources {
				stream, err := source.Open()
				if err != nil {
					yield(core.Err[T](err))
					return
				}
				for res := range stream {
					if !yield(res) {
						return
					}
					if res.IsError() {
						return
					}
				}
			}
		}, nil
	}, replayable)
}

// Concat appends the other sequences after the receiver.
func (s Seq[T]) Concat(others ...Sequence[T]) Seq[T] {
	combined := make([]Sequence[T], 0, len(others)+1)
	combined = append(combined, s)
	combined = append(combined, others...)
	return Concat(combined...)
}
