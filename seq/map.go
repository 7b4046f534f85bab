package seq

import (
	"github.com/lguimbarda/fluent-seq/seq/core"
)

// Map transforms each element with fn, producing a sequence of the
// results. fn runs once per element as the pass reaches it; an error
// or panic propagates with the element's position.
//
// Map is a package function rather than a method because the element
// type changes; Go methods cannot introduce new type parameters.
func Map[IN, OUT any](s Sequence[IN], fn func(IN) (OUT, error)) Seq[OUT] {
	return derive(s.Seq(), func(up core.Stream[IN]) core.Stream[OUT] {
		return func(yield func(core.Result[OUT]) bool) {
			index := 0
			for res := range up {
				if res.IsError() {
					yield(core.Err[OUT](res.Error()))
					return
				}
				mapped, err := core.Guard(fn, res.Value())
				if err != nil {
					yield(core.Err[OUT](core.NewElementError("Map", index, err)))
					return
				}
				index++
				if !yield(core.Ok(mapped)) {
					return
				}
			}
		}
	})
}

// FlatMap expands each element into zero or more elements and
// flattens the expansions in order: all elements produced from the
// first input come before any produced from the second.
func FlatMap[IN, OUT any](s Sequence[IN], fn func(IN) ([]OUT, error)) Seq[OUT] {
	return derive(s.Seq(), func(up core.Stream[IN]) core.Stream[OUT] {
		return func(yield func(core.Result[OUT]) bool) {
			index := 0
			for res := range up {
				if res.IsError() {
					yield(core.Err[OUT](res.Error()))
					return
				}
				expanded, err := core.Guard(fn, res.Value())
				if err != nil {
					yield(core.Err[OUT](core.NewElementError("FlatMap", index, err)))
					return
				}
				index++
				for _, value := range expanded {
					if !yield(core.Ok(value)) {
						return
					}
				}
			}
		}
	})
}

// MapIndexed transforms each element together with its zero-based
// position at this point in the chain. It behaves like Enumerate
// followed by Map without the intermediate pair.
func MapIndexed[IN, OUT any](s Sequence[IN], fn func(int, IN) (OUT, error)) Seq[OUT] {
	return derive(s.Seq(), func(up core.Stream[IN]) core.Stream[OUT] {
		return func(yield func(core.Result[OUT]) bool) {
			index := 0
			for res := range up {
				if res.IsError() {
					yield(core.Err[OUT](res.Error()))
					return
				}
				mapped, err := core.Guard2(fn, index, res.Value())
				if err != nil {
					yield(core.Err[OUT](core.NewElementError("MapIndexed", index, err)))
					return
				}
				index++
				if !yield(core.Ok(mapped)) {
					return
				}
			}
		}
	})
}

// Indexed pairs an element with its position in the sequence.
type Indexed[T any] struct {
	Index int
	Value T
}

// Enumerate pairs each element with its zero-based position at this
// point of the chain. Positions count the elements that reach this
// operation: elements removed by an earlier Filter are not numbered,
// and stages added after Enumerate do not disturb the numbering.
//
// Enumerate is a package function rather than a method because the
// element type changes; a method's Seq[Indexed[T]] result would
// instantiate Seq with an ever-growing type argument, which Go
// rejects as an instantiation cycle.
func Enumerate[T any](s Sequence[T]) Seq[Indexed[T]] {
	return derive(s.Seq(), func(up core.Stream[T]) core.Stream[Indexed[T]] {
		return func(yield func(core.Result[Indexed[T]]) bool) {
			index := 0
			for res := range up {
				if res.IsError() {
					yield(core.Err[Indexed[T]](res.Error()))
					return
				}
				if !yield(core.Ok(Indexed[T]{Index: index, Value: res.Value()})) {
					return
				}
				index++
			}
		}
	})
}
