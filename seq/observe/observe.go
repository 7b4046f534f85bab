// Package observe provides ready-made hook sets for watching
// pipeline passes: counters, error collection, logging, and an
// OpenTelemetry metrics bridge. Hook sets attach to a pipeline
// point with Seq.Observe and combine with core.Combine.
package observe

import (
	"github.com/lguimbarda/fluent-seq/seq/core"
)

// Logf is a printf-style logging function. It matches log.Printf
// and testing.T.Logf, so either can be passed directly.
type Logf func(format string, args ...any)

// WithLogf returns hooks that log every pass event through logf.
func WithLogf[T any](logf Logf) core.Hooks[T] {
	return core.Hooks[T]{
		OnStart: func() {
			logf("pass started")
		},
		OnValue: func(v T) {
			logf("value: %v", v)
		},
		OnError: func(err error) {
			logf("error: %v", err)
		},
		OnComplete: func() {
			logf("pass completed")
		},
	}
}
