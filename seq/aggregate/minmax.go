package aggregate

import (
	"cmp"

	"github.com/lguimbarda/fluent-seq/seq"
	"github.com/lguimbarda/fluent-seq/seq/core"
)

// Min runs the pipeline and returns its smallest element, using less
// to compare. The earliest of equal smallest elements wins. Returns
// ErrEmptySequence when the pipeline produces nothing.
func Min[T any](s seq.Sequence[T], less func(a, b T) bool) (T, error) {
	var min T
	hasMin := false
	stream, err := s.Seq().Open()
	if err != nil {
		return min, err
	}
	for res := range stream {
		if res.IsError() {
			var zero T
			return zero, res.Error()
		}
		if !hasMin || less(res.Value(), min) {
			min = res.Value()
			hasMin = true
		}
	}
	if !hasMin {
		var zero T
		return zero, core.ErrEmptySequence
	}
	return min, nil
}

// Max runs the pipeline and returns its largest element, using less
// to compare. The earliest of equal largest elements wins. Returns
// ErrEmptySequence when the pipeline produces nothing.
func Max[T any](s seq.Sequence[T], less func(a, b T) bool) (T, error) {
	var max T
	hasMax := false
	stream, err := s.Seq().Open()
	if err != nil {
		return max, err
	}
	for res := range stream {
		if res.IsError() {
			var zero T
			return zero, res.Error()
		}
		if !hasMax || less(max, res.Value()) {
			max = res.Value()
			hasMax = true
		}
	}
	if !hasMax {
		var zero T
		return zero, core.ErrEmptySequence
	}
	return max, nil
}

// MinBy returns the element whose key orders lowest.
func MinBy[T any, K cmp.Ordered](s seq.Sequence[T], key func(T) K) (T, error) {
	return Min(s, func(a, b T) bool {
		return key(a) < key(b)
	})
}

// MaxBy returns the element whose key orders highest.
func MaxBy[T any, K cmp.Ordered](s seq.Sequence[T], key func(T) K) (T, error) {
	return Max(s, func(a, b T) bool {
		return key(a) < key(b)
	})
}
