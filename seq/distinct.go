package seq

import (
	"github.com/lguimbarda/fluent-seq/seq/core"
)

// Distinct drops repeated elements, keeping the first occurrence of
// each and preserving encounter order. The stage tracks the set of
// seen elements for the duration of the pass.
func Distinct[T comparable](s Sequence[T]) Seq[T] {
	return derive(s.Seq(), func(up core.Stream[T]) core.Stream[T] {
		return func(yield func(core.Result[T]) bool) {
			seen := make(map[T]struct{})
			for res := range up {
				if res.IsError() {
					yield(res)
					return
				}
				if _, dup := seen[res.Value()]; dup {
					continue
				}
				seen[res.Value()] = struct{}{}
				if !yield(res) {
					return
				}
			}
		}
	})
}

// DistinctBy drops elements whose projected key has been seen
// before, keeping the first element for each key in encounter order.
// A key fn error or panic propagates with the element's position.
func DistinctBy[T any, K comparable](s Sequence[T], key func(T) (K, error)) Seq[T] {
	return derive(s.Seq(), func(up core.Stream[T]) core.Stream[T] {
		return func(yield func(core.Result[T]) bool) {
			seen := make(map[K]struct{})
			index := 0
			for res := range up {
				if res.IsError() {
					yield(res)
					return
				}
				k, err := core.Guard(key, res.Value())
				if err != nil {
					yield(core.Err[T](core.NewElementError("DistinctBy", index, err)))
					return
				}
				index++
				if _, dup := seen[k]; dup {
					continue
				}
				seen[k] = struct{}{}
				if !yield(res) {
					return
				}
			}
		}
	})
}
