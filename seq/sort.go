package seq

import (
	"cmp"
	"slices"

	"github.com/lguimbarda/fluent-seq/seq/core"
)

// Sorting materializes: the pipeline cannot order elements it has
// not yet seen, so every sort runs the full pass first and returns a
// List. Re-chain through List.Seq when more stages follow.

// Sort runs the pipeline and returns its elements as a List in
// ascending natural order. The sort is stable.
func Sort[T cmp.Ordered](s Sequence[T]) (*List[T], error) {
	items, err := s.Seq().ToSlice()
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(items, cmp.Compare)
	return &List[T]{items: items}, nil
}

// SortBy runs the pipeline and returns its elements as a List
// ordered by compare, which follows the cmp.Compare convention:
// negative when a orders before b, positive when after, zero when
// equal. The sort is stable, so equal elements keep their pipeline
// order.
func SortBy[T any](s Sequence[T], compare func(a, b T) int) (*List[T], error) {
	items, err := s.Seq().ToSlice()
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(items, compare)
	return &List[T]{items: items}, nil
}

// SortByKey runs the pipeline and returns its elements as a List
// ordered by the key fn projects for each element. The key is
// computed once per element during the pass; an fn error or panic
// propagates with the element's position. The sort is stable.
func SortByKey[T any, K cmp.Ordered](s Sequence[T], key func(T) (K, error)) (*List[T], error) {
	stream, err := s.Seq().Open()
	if err != nil {
		return nil, err
	}
	type keyed struct {
		key  K
		item T
	}
	var pairs []keyed
	index := 0
	for res := range stream {
		if res.IsError() {
			return nil, res.Error()
		}
		k, err := core.Guard(key, res.Value())
		if err != nil {
			return nil, core.NewElementError("SortByKey", index, err)
		}
		index++
		pairs = append(pairs, keyed{key: k, item: res.Value()})
	}
	slices.SortStableFunc(pairs, func(a, b keyed) int {
		return cmp.Compare(a.key, b.key)
	})
	items := make([]T, len(pairs))
	for i, pair := range pairs {
		items[i] = pair.item
	}
	return &List[T]{items: items}, nil
}
