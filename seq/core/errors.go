package core

import (
	"errors"
	"fmt"
)

// ErrEmptySequence is returned by operations that need at least one
// element when the sequence produced none.
var ErrEmptySequence = errors.New("sequence is empty")

// ErrExhausted is matched, via errors.Is, by every ReplayError.
// It lets callers test for replay failures without naming the
// concrete type.
var ErrExhausted = errors.New("source already consumed")

// ElementError reports a caller-supplied function failing for one
// element. Stage names the operation whose function failed, and
// Index is the zero-based position of the element among those the
// operation received.
type ElementError struct {
	Stage string
	Index int
	Err   error
}

func (e *ElementError) Error() string {
	return fmt.Sprintf("%s: element %d: %v", e.Stage, e.Index, e.Err)
}

func (e *ElementError) Unwrap() error { return e.Err }

// NewElementError wraps err with the stage name and element index.
func NewElementError(stage string, index int, err error) *ElementError {
	return &ElementError{Stage: stage, Index: index, Err: err}
}

// ReplayError reports a second traversal of a single-use source.
// Source names the kind of source that was exhausted.
type ReplayError struct {
	Source string
}

func (e *ReplayError) Error() string {
	return fmt.Sprintf("%s source already consumed", e.Source)
}

// Is reports whether target is ErrExhausted, so that
// errors.Is(err, core.ErrExhausted) matches any ReplayError.
func (e *ReplayError) Is(target error) bool { return target == ErrExhausted }

// IndexError reports an element access outside the valid range.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range [0:%d)", e.Index, e.Len)
}

// DuplicateKeyError reports a key occurring more than once where keys
// must be unique.
type DuplicateKeyError struct {
	Key any
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate key: %v", e.Key)
}
