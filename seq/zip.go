package seq

import (
	"github.com/lguimbarda/fluent-seq/seq/core"
)

// Pair holds one element from each of two zipped sequences.
type Pair[A, B any] struct {
	A A
	B B
}

// Zip pairs two sequences positionally: the first element of a with
// the first of b, and so on. The result ends with the shorter input;
// the longer input is not consumed past the last matched position.
func Zip[A, B any](a Sequence[A], b Sequence[B]) Seq[Pair[A, B]] {
	return ZipWith(a, b, func(left A, right B) (Pair[A, B], error) {
		return Pair[A, B]{A: left, B: right}, nil
	})
}

// ZipWith pairs two sequences positionally and combines each pair
// with fn. The result ends with the shorter input. An fn error or
// panic propagates with the pair's position.
func ZipWith[A, B, OUT any](a Sequence[A], b Sequence[B], fn func(A, B) (OUT, error)) Seq[OUT] {
	left, right := a.Seq(), b.Seq()
	return New(func() (core.Stream[OUT], error) {
		leftStream, err := left.Open()
		if err != nil {
			return nil, err
		}
		rightStream, err := right.Open()
		if err != nil {
			return nil, err
		}
		return func(yield func(core.Result[OUT]) bool) {
			next, stop := core.Pull(rightStream)
			defer stop()
			index := 0
			for res := range leftStream {
				if res.IsError() {
					yield(core.Err[OUT](res.Error()))
					return
				}
				other, ok := next()
				if !ok {
					return
				}
				if other.IsError() {
					yield(core.Err[OUT](other.Error()))
					return
				}
				combined, err := core.Guard2(fn, res.Value(), other.Value())
				if err != nil {
					yield(core.Err[OUT](core.NewElementError("ZipWith", index, err)))
					return
				}
				index++
				if !yield(core.Ok(combined)) {
					return
				}
			}
		}, nil
	}, left.Replayable() && right.Replayable())
}
