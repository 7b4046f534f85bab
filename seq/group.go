package seq

import (
	"github.com/lguimbarda/fluent-seq/seq/core"
)

// GroupBy runs the pipeline once, grouping its elements by the key
// fn returns for each. The resulting Dict holds one List per
// distinct key: keys appear in the order they were first produced,
// and every List keeps its elements in pipeline order. An empty
// pipeline yields an empty Dict, not an error.
func GroupBy[T any, K comparable](s Sequence[T], key func(T) (K, error)) (*Dict[K, *List[T]], error) {
	stream, err := s.Seq().Open()
	if err != nil {
		return nil, err
	}
	var order []K
	buckets := make(map[K][]T)
	index := 0
	for res := range stream {
		if res.IsError() {
			return nil, res.Error()
		}
		k, err := core.Guard(key, res.Value())
		if err != nil {
			return nil, core.NewElementError("GroupBy", index, err)
		}
		index++
		if _, seen := buckets[k]; !seen {
			order = append(order, k)
		}
		buckets[k] = append(buckets[k], res.Value())
	}
	groups := emptyDict[K, *List[T]](len(order))
	for _, k := range order {
		groups.put(k, &List[T]{items: buckets[k]})
	}
	return groups, nil
}

// KeyBy runs the pipeline once, indexing each element by the key fn
// returns. Every key must be distinct; a repeated key fails the pass
// with a DuplicateKeyError. Keys appear in pipeline order.
func KeyBy[T any, K comparable](s Sequence[T], key func(T) (K, error)) (*Dict[K, T], error) {
	stream, err := s.Seq().Open()
	if err != nil {
		return nil, err
	}
	indexed := emptyDict[K, T](0)
	index := 0
	for res := range stream {
		if res.IsError() {
			return nil, res.Error()
		}
		k, err := core.Guard(key, res.Value())
		if err != nil {
			return nil, core.NewElementError("KeyBy", index, err)
		}
		index++
		if _, exists := indexed.values[k]; exists {
			return nil, &core.DuplicateKeyError{Key: k}
		}
		indexed.put(k, res.Value())
	}
	return indexed, nil
}

// ToDict runs a pipeline of key-value pairs into a Dict. A key
// appearing more than once keeps its first position and takes its
// last value, like NewDict.
func ToDict[K comparable, V any](s Sequence[KeyValue[K, V]]) (*Dict[K, V], error) {
	stream, err := s.Seq().Open()
	if err != nil {
		return nil, err
	}
	d := emptyDict[K, V](0)
	for res := range stream {
		if res.IsError() {
			return nil, res.Error()
		}
		pair := res.Value()
		d.put(pair.Key, pair.Value)
	}
	return d, nil
}
