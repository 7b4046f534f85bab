package seq

import (
	"github.com/lguimbarda/fluent-seq/seq/core"
)

// Seq is a lazily evaluated sequence of elements. A Seq value is an
// immutable description of a source plus a chain of pending
// operations; building the chain does no work. Each terminal
// operation performs exactly one traversal of the source, applying
// every pending operation to each element in order.
//
// Chaining methods return new Seq values and never mutate the
// receiver, so a Seq over a replayable source can be reused and
// extended freely. A Seq over a single-use source allows exactly one
// terminal operation; any later one fails with a ReplayError.
type Seq[T any] struct {
	open       func() (core.Stream[T], error)
	replayable bool
}

var _ Source[int] = Seq[int]{}

// Sequence is anything a pipeline operation can consume: a Seq
// itself, or a materialized container such as List via its Seq
// method.
type Sequence[T any] interface {
	Seq() Seq[T]
}

// New creates a Seq from a pass factory. open is called once per
// terminal operation to begin a traversal. Pass replayable=false when
// the factory cannot produce a second pass; wrap such factories with
// core.SingleUse so repeated opens fail with a ReplayError.
func New[T any](open func() (core.Stream[T], error), replayable bool) Seq[T] {
	return Seq[T]{open: open, replayable: replayable}
}

// Seq returns the receiver. It makes Seq satisfy Sequence.
func (s Seq[T]) Seq() Seq[T] { return s }

// Replayable reports whether the sequence can be evaluated more than
// once. Sequences over single-use sources return false; their first
// terminal operation consumes them.
func (s Seq[T]) Replayable() bool { return s.replayable }

// Open begins a pass, returning the stream of Results the pipeline
// produces. Most callers use a terminal operation instead; Open is
// the building block for packages that implement their own
// terminals. Opening a consumed single-use sequence fails with a
// ReplayError.
func (s Seq[T]) Open() (core.Stream[T], error) {
	if s.open == nil {
		return core.StreamOf[T](), nil
	}
	return s.open()
}

// derive builds a Seq that opens the parent and wraps its stream.
// Stage state must live inside the wrapped stream function so every
// pass starts fresh.
func derive[IN, OUT any](parent Seq[IN], wrap func(core.Stream[IN]) core.Stream[OUT]) Seq[OUT] {
	return Seq[OUT]{
		replayable: parent.replayable,
		open: func() (core.Stream[OUT], error) {
			up, err := parent.Open()
			if err != nil {
				return nil, err
			}
			return wrap(up), nil
		},
	}
}

// Tap runs fn for each element as it passes, leaving the element
// unchanged. An fn error or panic propagates like any stage failure.
func (s Seq[T]) Tap(fn func(T) error) Seq[T] {
	return derive(s, func(up core.Stream[T]) core.Stream[T] {
		return func(yield func(core.Result[T]) bool) {
			index := 0
			for res := range up {
				if res.IsError() {
					yield(res)
					return
				}
				if err := core.GuardAction(fn, res.Value()); err != nil {
					yield(core.Err[T](core.NewElementError("Tap", index, err)))
					return
				}
				index++
				if !yield(res) {
					return
				}
			}
		}
	})
}

// Observe fires hooks as the pass crosses this point of the chain:
// OnStart when the pass begins, OnValue for each element, OnError
// for a propagated error, and OnComplete when the pass ends,
// including early stops. Attach several hook sets by calling Observe
// repeatedly or by merging them with core.Combine.
func (s Seq[T]) Observe(hooks Hooks[T]) Seq[T] {
	return derive(s, func(up core.Stream[T]) core.Stream[T] {
		return func(yield func(core.Result[T]) bool) {
			hooks.Start()
			defer hooks.Complete()
			for res := range up {
				if res.IsError() {
					hooks.Error(res.Error())
					yield(res)
					return
				}
				hooks.Value(res.Value())
				if !yield(res) {
					return
				}
			}
		}
	})
}
