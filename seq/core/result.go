package core

import (
	"fmt"
	"runtime"
	"strings"
)

// PanicError wraps a recovered panic value as an error.
// This is used when a user-provided function panics during a pass.
// It includes a cleaned-up stack trace that excludes internal
// fluent-seq frames.
type PanicError struct {
	Value any
	Stack string // Cleaned stack trace
}

func (e *PanicError) Error() string {
	if e.Stack != "" {
		return fmt.Sprintf("panic: %v\n%s", e.Value, e.Stack)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// NewPanicError creates a PanicError from a recovered value with a cleaned
// stack trace. It captures the current stack and removes internal fluent-seq
// frames to show only user code, making it easier to identify where the
// panic originated.
func NewPanicError(recovered any) *PanicError {
	return &PanicError{
		Value: recovered,
		Stack: cleanStack(captureStack(4)), // skip: runtime.Callers, captureStack, NewPanicError, defer func
	}
}

// captureStack returns the current stack trace as a string.
func captureStack(skip int) string {
	const maxFrames = 32
	var pcs [maxFrames]uintptr
	n := runtime.Callers(skip, pcs[:])
	if n == 0 {
		return ""
	}

	frames := runtime.CallersFrames(pcs[:n])
	var sb strings.Builder

	for {
		frame, more := frames.Next()
		fmt.Fprintf(&sb, "%s\n\t%s:%d\n", frame.Function, frame.File, frame.Line)
		if !more {
			break
		}
	}

	return sb.String()
}

// cleanStack removes internal fluent-seq frames from a stack trace.
// It keeps user code and standard library frames while filtering out
// github.com/lguimbarda/fluent-seq internal frames.
func cleanStack(stack string) string {
	lines := strings.Split(stack, "\n")
	var result []string
	var skipNext bool

	for _, line := range lines {
		// Skip empty lines
		if strings.TrimSpace(line) == "" {
			continue
		}

		// Check if this is a function line (not a file:line)
		if !strings.HasPrefix(line, "\t") {
			// Skip internal fluent-seq frames
			if strings.Contains(line, "github.com/lguimbarda/fluent-seq/seq") {
				skipNext = true
				continue
			}
			skipNext = false
		} else if skipNext {
			// Skip the file:line that follows a skipped function
			continue
		}

		result = append(result, line)
	}

	return strings.Join(result, "\n")
}

// Result represents the outcome of processing one element of a pass.
// It exists in one of two states:
//   - Value: successful processing result (IsValue() returns true)
//   - Error: processing failure being propagated (IsError() returns true)
//
// Once an error Result reaches a terminal operation the pass stops;
// intermediate stages forward error Results downstream untouched.
type Result[OUT any] struct {
	value OUT
	err   error
}

// Ok creates a successful Result containing the given value.
func Ok[OUT any](value OUT) Result[OUT] {
	return Result[OUT]{value: value}
}

// Err creates an error Result. Stages pass error Results downstream
// unchanged; the terminal operation stops the pass when one arrives.
func Err[OUT any](err error) Result[OUT] {
	var zero OUT
	return Result[OUT]{value: zero, err: err}
}

// IsValue returns true if this Result contains a successful value.
func (r Result[OUT]) IsValue() bool {
	return r.err == nil
}

// IsError returns true if this Result carries a propagated error.
func (r Result[OUT]) IsError() bool {
	return r.err != nil
}

// Value returns the contained value. Only meaningful when IsValue()
// is true; returns the zero value for error Results.
func (r Result[OUT]) Value() OUT {
	return r.value
}

// Error returns the propagated error, or nil for value Results.
func (r Result[OUT]) Error() error {
	return r.err
}

// Unwrap returns the value and error together.
// Useful for cases where you need both regardless of Result state.
func (r Result[OUT]) Unwrap() (OUT, error) {
	return r.value, r.err
}
