package seq

import (
	"github.com/lguimbarda/fluent-seq/seq/core"
)

// Filter keeps the elements pred reports true for. A pred error or
// panic propagates with the element's position; it never silently
// drops the element.
func (s Seq[T]) Filter(pred func(T) (bool, error)) Seq[T] {
	return derive(s, func(up core.Stream[T]) core.Stream[T] {
		return func(yield func(core.Result[T]) bool) {
			index := 0
			for res := range up {
				if res.IsError() {
					yield(res)
					return
				}
				keep, err := core.Guard(pred, res.Value())
				if err != nil {
					yield(core.Err[T](core.NewElementError("Filter", index, err)))
					return
				}
				index++
				if keep && !yield(res) {
					return
				}
			}
		}
	})
}

// Take keeps the first n elements and stops the pass once they have
// been produced, so upstream work past the nth element never runs.
// This bounds evaluation over infinite sources such as Iterate.
func (s Seq[T]) Take(n int) Seq[T] {
	return derive(s, func(up core.Stream[T]) core.Stream[T] {
		return func(yield func(core.Result[T]) bool) {
			if n <= 0 {
				return
			}
			taken := 0
			for res := range up {
				if !yield(res) {
					return
				}
				if res.IsError() {
					return
				}
				taken++
				if taken >= n {
					return
				}
			}
		}
	})
}

// Drop skips the first n elements and keeps the rest.
func (s Seq[T]) Drop(n int) Seq[T] {
	return derive(s, func(up core.Stream[T]) core.Stream[T] {
		return func(yield func(core.Result[T]) bool) {
			skipped := 0
			for res := range up {
				if res.IsError() {
					yield(res)
					return
				}
				if skipped < n {
					skipped++
					continue
				}
				if !yield(res) {
					return
				}
			}
		}
	})
}

// TakeWhile keeps elements while pred reports true and stops the pass
// at the first element it reports false for.
func (s Seq[T]) TakeWhile(pred func(T) (bool, error)) Seq[T] {
	return derive(s, func(up core.Stream[T]) core.Stream[T] {
		return func(yield func(core.Result[T]) bool) {
			index := 0
			for res := range up {
				if res.IsError() {
					yield(res)
					return
				}
				keep, err := core.Guard(pred, res.Value())
				if err != nil {
					yield(core.Err[T](core.NewElementError("TakeWhile", index, err)))
					return
				}
				index++
				if !keep {
					return
				}
				if !yield(res) {
					return
				}
			}
		}
	})
}

// DropWhile skips elements while pred reports true, then keeps
// everything from the first element it reports false for onward. The
// predicate is not consulted again after it reports false once.
func (s Seq[T]) DropWhile(pred func(T) (bool, error)) Seq[T] {
	return derive(s, func(up core.Stream[T]) core.Stream[T] {
		return func(yield func(core.Result[T]) bool) {
			dropping := true
			index := 0
			for res := range up {
				if res.IsError() {
					yield(res)
					return
				}
				if dropping {
					drop, err := core.Guard(pred, res.Value())
					if err != nil {
						yield(core.Err[T](core.NewElementError("DropWhile", index, err)))
						return
					}
					index++
					if drop {
						continue
					}
					dropping = false
				}
				if !yield(res) {
					return
				}
			}
		}
	})
}

// Last keeps only the final n elements. The stage buffers at most n
// elements in a ring and emits them when the upstream pass ends, so
// it must not be used on infinite sources.
func (s Seq[T]) Last(n int) Seq[T] {
	return derive(s, func(up core.Stream[T]) core.Stream[T] {
		return func(yield func(core.Result[T]) bool) {
			if n <= 0 {
				return
			}
			ring := make([]core.Result[T], 0, n)
			next := 0 // Oldest slot once the ring is full
			for res := range up {
				if res.IsError() {
					yield(res)
					return
				}
				if len(ring) < n {
					ring = append(ring, res)
					continue
				}
				ring[next] = res
				next = (next + 1) % n
			}
			for i := range ring {
				if !yield(ring[(next+i)%len(ring)]) {
					return
				}
			}
		}
	})
}
