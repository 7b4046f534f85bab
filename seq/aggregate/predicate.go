package aggregate

import (
	"github.com/lguimbarda/fluent-seq/seq"
)

// All reports whether every element satisfies pred. An empty pipeline
// reports true. The pass stops at the first element that fails the
// predicate.
func All[T any](s seq.Sequence[T], pred func(T) bool) (bool, error) {
	stream, err := s.Seq().Open()
	if err != nil {
		return false, err
	}
	for res := range stream {
		if res.IsError() {
			return false, res.Error()
		}
		if !pred(res.Value()) {
			return false, nil
		}
	}
	return true, nil
}

// Any reports whether at least one element satisfies pred. An empty
// pipeline reports false. The pass stops at the first match.
func Any[T any](s seq.Sequence[T], pred func(T) bool) (bool, error) {
	stream, err := s.Seq().Open()
	if err != nil {
		return false, err
	}
	for res := range stream {
		if res.IsError() {
			return false, res.Error()
		}
		if pred(res.Value()) {
			return true, nil
		}
	}
	return false, nil
}

// None reports whether no element satisfies pred. An empty pipeline
// reports true. The pass stops at the first match.
func None[T any](s seq.Sequence[T], pred func(T) bool) (bool, error) {
	matched, err := Any(s, pred)
	if err != nil {
		return false, err
	}
	return !matched, nil
}

// Contains reports whether value occurs in the pipeline. The pass
// stops at the first occurrence.
func Contains[T comparable](s seq.Sequence[T], value T) (bool, error) {
	return Any(s, func(item T) bool {
		return item == value
	})
}
