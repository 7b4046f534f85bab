package aggregate

import (
	"github.com/lguimbarda/fluent-seq/seq"
	"github.com/lguimbarda/fluent-seq/seq/core"
)

// Reduce runs the pipeline and combines its elements into a single
// value with reducer, left to right. The first element seeds the
// accumulator. Returns ErrEmptySequence when the pipeline produces
// nothing; use Fold to supply an initial value instead.
func Reduce[T any](s seq.Sequence[T], reducer func(acc, item T) T) (T, error) {
	var zero T
	stream, err := s.Seq().Open()
	if err != nil {
		return zero, err
	}
	var acc T
	hasAcc := false
	for res := range stream {
		if res.IsError() {
			return zero, res.Error()
		}
		if !hasAcc {
			acc = res.Value()
			hasAcc = true
			continue
		}
		acc = reducer(acc, res.Value())
	}
	if !hasAcc {
		return zero, core.ErrEmptySequence
	}
	return acc, nil
}

// Fold runs the pipeline and folds its elements into a single value,
// starting from initial. Unlike Reduce, Fold never fails on an empty
// pipeline: it returns initial unchanged. The accumulator type may
// differ from the element type.
func Fold[T, R any](s seq.Sequence[T], initial R, folder func(acc R, item T) R) (R, error) {
	acc := initial
	stream, err := s.Seq().Open()
	if err != nil {
		return acc, err
	}
	for res := range stream {
		if res.IsError() {
			return initial, res.Error()
		}
		acc = folder(acc, res.Value())
	}
	return acc, nil
}

// Scan is Fold spread over the pipeline: it yields the accumulator
// after each element rather than only at the end. The initial value
// itself is not yielded. Scan stays lazy, so it composes with further
// stages.
func Scan[T, R any](s seq.Sequence[T], initial R, scanner func(acc R, item T) R) seq.Seq[R] {
	parent := s.Seq()
	return seq.New(func() (core.Stream[R], error) {
		up, err := parent.Open()
		if err != nil {
			return nil, err
		}
		return func(yield func(core.Result[R]) bool) {
			acc := initial
			for res := range up {
				if res.IsError() {
					yield(core.Err[R](res.Error()))
					return
				}
				acc = scanner(acc, res.Value())
				if !yield(core.Ok(acc)) {
					return
				}
			}
		}, nil
	}, parent.Replayable())
}

// Numeric is a constraint for numeric types that support arithmetic
// operations.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Sum runs the pipeline and adds its elements. An empty pipeline sums
// to zero.
func Sum[T Numeric](s seq.Sequence[T]) (T, error) {
	return Fold(s, T(0), func(acc, item T) T {
		return acc + item
	})
}

// Average runs the pipeline and returns the mean of its elements as a
// float64. An empty pipeline averages to zero.
func Average[T Numeric](s seq.Sequence[T]) (float64, error) {
	var sum float64
	count := 0
	stream, err := s.Seq().Open()
	if err != nil {
		return 0, err
	}
	for res := range stream {
		if res.IsError() {
			return 0, res.Error()
		}
		sum += float64(res.Value())
		count++
	}
	if count == 0 {
		return 0, nil
	}
	return sum / float64(count), nil
}
