package seq

import (
	"iter"

	"github.com/lguimbarda/fluent-seq/seq/core"
)

// Terminal operations run the pipeline: they begin a single pass over
// the source and consume it. The pass stops at the first propagated
// error, which the terminal returns.

// ToSlice runs the pipeline and collects every element into a slice.
func (s Seq[T]) ToSlice() ([]T, error) {
	stream, err := s.Open()
	if err != nil {
		return nil, err
	}
	var result []T
	for res := range stream {
		if res.IsError() {
			return nil, res.Error()
		}
		result = append(result, res.Value())
	}
	return result, nil
}

// ToList runs the pipeline and materializes the elements as a List.
func (s Seq[T]) ToList() (*List[T], error) {
	items, err := s.ToSlice()
	if err != nil {
		return nil, err
	}
	return &List[T]{items: items}, nil
}

// ForEach runs the pipeline, invoking action for each element in
// order. An action error or panic stops the pass and is reported
// with the element's position.
func (s Seq[T]) ForEach(action func(T) error) error {
	stream, err := s.Open()
	if err != nil {
		return err
	}
	index := 0
	for res := range stream {
		if res.IsError() {
			return res.Error()
		}
		if err := core.GuardAction(action, res.Value()); err != nil {
			return core.NewElementError("ForEach", index, err)
		}
		index++
	}
	return nil
}

// First runs the pipeline just far enough to produce its first
// element. Returns ErrEmptySequence when the pipeline produces
// nothing.
func (s Seq[T]) First() (T, error) {
	var zero T
	stream, err := s.Open()
	if err != nil {
		return zero, err
	}
	for res := range stream {
		return res.Unwrap()
	}
	return zero, core.ErrEmptySequence
}

// Count runs the pipeline and returns the number of elements it
// produces.
func (s Seq[T]) Count() (int, error) {
	stream, err := s.Open()
	if err != nil {
		return 0, err
	}
	count := 0
	for res := range stream {
		if res.IsError() {
			return 0, res.Error()
		}
		count++
	}
	return count, nil
}

// All runs the pipeline as a Go iterator over (value, error) pairs,
// suitable for a range statement. After yielding an error pair the
// iteration stops. A failure to begin the pass, such as a consumed
// single-use source, is yielded as the only pair.
func (s Seq[T]) All() iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		stream, err := s.Open()
		if err != nil {
			var zero T
			yield(zero, err)
			return
		}
		for value, err := range core.Values(stream) {
			if !yield(value, err) {
				return
			}
		}
	}
}
