package aggregate

import (
	"github.com/lguimbarda/fluent-seq/seq"
)

// Keyed reductions fold elements per key in one pass, without
// materializing the buckets a GroupBy would build. Keys appear in the
// resulting Dict in the order they were first produced.

// ValueCounts runs the pipeline and counts how many times each
// distinct element occurs.
func ValueCounts[T comparable](s seq.Sequence[T]) (*seq.Dict[T, int], error) {
	return FoldBy(s, func(item T) T { return item }, 0, func(acc int, _ T) int {
		return acc + 1
	})
}

// ReduceBy combines the elements sharing a key into one value per
// key, left to right in pipeline order. The first element of each key
// seeds that key's accumulator. An empty pipeline yields an empty
// Dict.
func ReduceBy[T any, K comparable](s seq.Sequence[T], key func(T) K, reducer func(acc, item T) T) (*seq.Dict[K, T], error) {
	stream, err := s.Seq().Open()
	if err != nil {
		return nil, err
	}
	var order []K
	accs := make(map[K]T)
	for res := range stream {
		if res.IsError() {
			return nil, res.Error()
		}
		k := key(res.Value())
		acc, seen := accs[k]
		if !seen {
			order = append(order, k)
			accs[k] = res.Value()
			continue
		}
		accs[k] = reducer(acc, res.Value())
	}
	pairs := make([]seq.KeyValue[K, T], len(order))
	for i, k := range order {
		pairs[i] = seq.KeyValue[K, T]{Key: k, Value: accs[k]}
	}
	return seq.NewDict(pairs...), nil
}

// FoldBy folds the elements sharing a key, starting each key's
// accumulator from initial. The accumulator type may differ from the
// element type.
func FoldBy[T any, K comparable, R any](s seq.Sequence[T], key func(T) K, initial R, folder func(acc R, item T) R) (*seq.Dict[K, R], error) {
	stream, err := s.Seq().Open()
	if err != nil {
		return nil, err
	}
	var order []K
	accs := make(map[K]R)
	for res := range stream {
		if res.IsError() {
			return nil, res.Error()
		}
		k := key(res.Value())
		acc, seen := accs[k]
		if !seen {
			order = append(order, k)
			acc = initial
		}
		accs[k] = folder(acc, res.Value())
	}
	pairs := make([]seq.KeyValue[K, R], len(order))
	for i, k := range order {
		pairs[i] = seq.KeyValue[K, R]{Key: k, Value: accs[k]}
	}
	return seq.NewDict(pairs...), nil
}
