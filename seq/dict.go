package seq

import (
	"fmt"
	"strings"

	"github.com/lguimbarda/fluent-seq/seq/core"
)

// Dict is an immutable mapping that remembers the order in which its
// keys were first inserted. Keys, Values, Items, and Each always
// follow that order, so results built from a pipeline pass are
// deterministic.
type Dict[K comparable, V any] struct {
	keys   []K
	values map[K]V
}

// NewDict builds a Dict from key-value pairs. A key appearing more
// than once keeps its first position and takes its last value.
func NewDict[K comparable, V any](pairs ...KeyValue[K, V]) *Dict[K, V] {
	d := emptyDict[K, V](len(pairs))
	for _, pair := range pairs {
		d.put(pair.Key, pair.Value)
	}
	return d
}

func emptyDict[K comparable, V any](sizeHint int) *Dict[K, V] {
	return &Dict[K, V]{values: make(map[K]V, sizeHint)}
}

// put inserts or replaces an entry. It is unexported so a Dict never
// changes once it leaves this package.
func (d *Dict[K, V]) put(key K, value V) {
	if _, exists := d.values[key]; !exists {
		d.keys = append(d.keys, key)
	}
	d.values[key] = value
}

// Len returns the number of keys.
func (d *Dict[K, V]) Len() int { return len(d.keys) }

// Get returns the value stored under key and whether the key is
// present.
func (d *Dict[K, V]) Get(key K) (V, bool) {
	value, ok := d.values[key]
	return value, ok
}

// Contains reports whether key is present.
func (d *Dict[K, V]) Contains(key K) bool {
	_, ok := d.values[key]
	return ok
}

// Keys returns the keys as a List, in first-insertion order.
func (d *Dict[K, V]) Keys() *List[K] {
	return NewList(d.keys...)
}

// Values returns the values as a List, ordered like Keys.
func (d *Dict[K, V]) Values() *List[V] {
	values := make([]V, len(d.keys))
	for i, k := range d.keys {
		values[i] = d.values[k]
	}
	return &List[V]{items: values}
}

// Items returns the key-value pairs as a List, ordered like Keys.
func (d *Dict[K, V]) Items() *List[KeyValue[K, V]] {
	items := make([]KeyValue[K, V], len(d.keys))
	for i, k := range d.keys {
		items[i] = KeyValue[K, V]{Key: k, Value: d.values[k]}
	}
	return &List[KeyValue[K, V]]{items: items}
}

// Each invokes fn for every key-value pair in key order.
func (d *Dict[K, V]) Each(fn func(K, V)) {
	for _, k := range d.keys {
		fn(k, d.values[k])
	}
}

// Union merges d with other into a new Dict. Keys of d keep their
// positions; keys only in other are appended in other's order. When
// both hold a key, the value from other wins.
func (d *Dict[K, V]) Union(other *Dict[K, V]) *Dict[K, V] {
	merged := emptyDict[K, V](d.Len() + other.Len())
	d.Each(merged.put)
	other.Each(merged.put)
	return merged
}

// UnionStrict is Union, except that a key present in both Dicts
// fails with a DuplicateKeyError instead of being overwritten.
func (d *Dict[K, V]) UnionStrict(other *Dict[K, V]) (*Dict[K, V], error) {
	merged := emptyDict[K, V](d.Len() + other.Len())
	d.Each(merged.put)
	for _, k := range other.keys {
		if _, exists := merged.values[k]; exists {
			return nil, &core.DuplicateKeyError{Key: k}
		}
		merged.put(k, other.values[k])
	}
	return merged, nil
}

// String renders the Dict's entries in key order.
func (d *Dict[K, V]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, k := range d.keys {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%v:%v", k, d.values[k])
	}
	sb.WriteByte('}')
	return sb.String()
}

// MapValues transforms every value of d with fn, keeping the keys
// and their order. An fn error or panic propagates with the key's
// position.
func MapValues[K comparable, V, W any](d *Dict[K, V], fn func(V) (W, error)) (*Dict[K, W], error) {
	mapped := emptyDict[K, W](d.Len())
	for i, k := range d.keys {
		value, err := core.Guard(fn, d.values[k])
		if err != nil {
			return nil, core.NewElementError("MapValues", i, err)
		}
		mapped.put(k, value)
	}
	return mapped, nil
}
