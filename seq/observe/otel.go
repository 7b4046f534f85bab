package observe

import (
	"context"

	"go.opentelemetry.io/otel/metric"

	"github.com/lguimbarda/fluent-seq/seq/core"
)

// Instruments creates pipeline counters on the given meter and
// returns hooks that record to them. Three Int64Counters are
// registered: seq.elements for values, seq.errors for propagated
// errors, and seq.passes for pass starts. The context is handed to
// each Add call.
func Instruments[T any](ctx context.Context, meter metric.Meter) (core.Hooks[T], error) {
	elements, err := meter.Int64Counter("seq.elements",
		metric.WithDescription("count of elements crossing the observation point"))
	if err != nil {
		return core.Hooks[T]{}, err
	}
	errs, err := meter.Int64Counter("seq.errors",
		metric.WithDescription("count of propagated errors"))
	if err != nil {
		return core.Hooks[T]{}, err
	}
	passes, err := meter.Int64Counter("seq.passes",
		metric.WithDescription("count of pipeline passes"))
	if err != nil {
		return core.Hooks[T]{}, err
	}

	return core.Hooks[T]{
		OnStart: func() { passes.Add(ctx, 1) },
		OnValue: func(T) { elements.Add(ctx, 1) },
		OnError: func(error) { errs.Add(ctx, 1) },
	}, nil
}
