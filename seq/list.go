package seq

import (
	"fmt"
	"iter"
	"strings"

	"github.com/lguimbarda/fluent-seq/seq/core"
)

// List is an immutable materialized sequence. It is produced by
// ToList and the sorting operations, or built directly with NewList.
// A List can re-enter pipelines any number of times through Seq, and
// no operation ever mutates it in place.
type List[T any] struct {
	items []T
}

// NewList builds a List of the given items. The items are copied, so
// later changes to the caller's slice do not show through.
func NewList[T any](items ...T) *List[T] {
	copied := make([]T, len(items))
	copy(copied, items)
	return &List[T]{items: copied}
}

// Seq returns a replayable sequence over the elements. It makes List
// satisfy Sequence, so a List can be handed to any pipeline
// operation.
func (l *List[T]) Seq() Seq[T] {
	return FromSlice(l.items)
}

// Len returns the number of elements.
func (l *List[T]) Len() int { return len(l.items) }

// At returns the element at index i, or an IndexError when i is out
// of range.
func (l *List[T]) At(i int) (T, error) {
	if i < 0 || i >= len(l.items) {
		var zero T
		return zero, &core.IndexError{Index: i, Len: len(l.items)}
	}
	return l.items[i], nil
}

// Head returns the first element. Returns ErrEmptySequence for an
// empty List.
func (l *List[T]) Head() (T, error) {
	if len(l.items) == 0 {
		var zero T
		return zero, core.ErrEmptySequence
	}
	return l.items[0], nil
}

// Tail returns a List of every element but the first. Returns
// ErrEmptySequence for an empty List.
func (l *List[T]) Tail() (*List[T], error) {
	if len(l.items) == 0 {
		return nil, core.ErrEmptySequence
	}
	return NewList(l.items[1:]...), nil
}

// Reverse returns a new List with the elements in opposite order.
func (l *List[T]) Reverse() *List[T] {
	reversed := make([]T, len(l.items))
	for i, item := range l.items {
		reversed[len(l.items)-1-i] = item
	}
	return &List[T]{items: reversed}
}

// Slice returns a copy of the elements.
func (l *List[T]) Slice() []T {
	copied := make([]T, len(l.items))
	copy(copied, l.items)
	return copied
}

// Values iterates the elements in order.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range l.items {
			if !yield(item) {
				return
			}
		}
	}
}

// Each invokes fn for every element in order.
func (l *List[T]) Each(fn func(T)) {
	for _, item := range l.items {
		fn(item)
	}
}

// MkString joins the elements with sep between consecutive elements.
// Elements are rendered with fmt.Sprint. Unlike the Seq terminal of
// the same name this cannot fail: the elements already exist.
func (l *List[T]) MkString(sep string) string {
	var sb strings.Builder
	for i, item := range l.items {
		if i > 0 {
			sb.WriteString(sep)
		}
		fmt.Fprint(&sb, item)
	}
	return sb.String()
}

// String renders the List the way fmt renders a slice.
func (l *List[T]) String() string {
	return "[" + l.MkString(" ") + "]"
}
