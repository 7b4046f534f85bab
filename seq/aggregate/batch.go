package aggregate

import (
	"github.com/lguimbarda/fluent-seq/seq"
	"github.com/lguimbarda/fluent-seq/seq/core"
)

// Chunk groups elements into non-overlapping slices of the given
// size, in order. The final chunk may be shorter when the pipeline
// length is not a multiple of size. Chunk stays lazy.
// If size <= 0, panics.
func Chunk[T any](s seq.Sequence[T], size int) seq.Seq[[]T] {
	if size <= 0 {
		panic("Chunk size must be > 0")
	}
	parent := s.Seq()
	return seq.New(func() (core.Stream[[]T], error) {
		up, err := parent.Open()
		if err != nil {
			return nil, err
		}
		return func(yield func(core.Result[[]T]) bool) {
			chunk := make([]T, 0, size)
			for res := range up {
				if res.IsError() {
					yield(core.Err[[]T](res.Error()))
					return
				}
				chunk = append(chunk, res.Value())
				if len(chunk) < size {
					continue
				}
				copied := make([]T, size)
				copy(copied, chunk)
				if !yield(core.Ok(copied)) {
					return
				}
				chunk = chunk[:0]
			}
			if len(chunk) > 0 {
				copied := make([]T, len(chunk))
				copy(copied, chunk)
				yield(core.Ok(copied))
			}
		}, nil
	}, parent.Replayable())
}

// Window emits overlapping windows of elements. Each window holds
// size elements and consecutive windows start step elements apart.
// For example, Window(s, 3, 1) over 1..5 produces [1 2 3], [2 3 4],
// [3 4 5]. A trailing partial window is not emitted.
// If size <= 0 or step <= 0, panics.
func Window[T any](s seq.Sequence[T], size, step int) seq.Seq[[]T] {
	if size <= 0 {
		panic("Window size must be > 0")
	}
	if step <= 0 {
		panic("Window step must be > 0")
	}
	parent := s.Seq()
	return seq.New(func() (core.Stream[[]T], error) {
		up, err := parent.Open()
		if err != nil {
			return nil, err
		}
		return func(yield func(core.Result[[]T]) bool) {
			window := make([]T, 0, size)
			skip := 0
			for res := range up {
				if res.IsError() {
					yield(core.Err[[]T](res.Error()))
					return
				}
				// A step larger than the window size skips elements
				// between windows.
				if skip > 0 {
					skip--
					continue
				}
				window = append(window, res.Value())
				if len(window) < size {
					continue
				}
				copied := make([]T, size)
				copy(copied, window)
				if !yield(core.Ok(copied)) {
					return
				}
				if step >= size {
					window = window[:0]
					skip = step - size
				} else {
					window = append(window[:0], window[step:]...)
				}
			}
		}, nil
	}, parent.Replayable())
}

// Partition runs the pipeline and splits its elements into two Lists:
// those pred reports true for, then the rest. Both keep pipeline
// order.
func Partition[T any](s seq.Sequence[T], pred func(T) bool) (matching, rest *seq.List[T], err error) {
	stream, err := s.Seq().Open()
	if err != nil {
		return nil, nil, err
	}
	var trueItems, falseItems []T
	for res := range stream {
		if res.IsError() {
			return nil, nil, res.Error()
		}
		if pred(res.Value()) {
			trueItems = append(trueItems, res.Value())
		} else {
			falseItems = append(falseItems, res.Value())
		}
	}
	return seq.NewList(trueItems...), seq.NewList(falseItems...), nil
}
