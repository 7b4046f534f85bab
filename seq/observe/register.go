package observe

import (
	"sync"
	"sync/atomic"

	"github.com/lguimbarda/fluent-seq/seq/core"
)

// Counter provides thread-safe counting of pipeline traffic.
type Counter struct {
	values atomic.Int64
	errors atomic.Int64
	passes atomic.Int64
}

// Values returns the count of values observed.
func (c *Counter) Values() int64 { return c.values.Load() }

// Errors returns the count of errors observed.
func (c *Counter) Errors() int64 { return c.errors.Load() }

// Passes returns the number of passes that crossed the observation
// point. Replayable pipelines bump this once per terminal run.
func (c *Counter) Passes() int64 { return c.passes.Load() }

// Total returns the combined count of values and errors.
func (c *Counter) Total() int64 { return c.values.Load() + c.errors.Load() }

// WithCounter returns counting hooks and the Counter they update.
//
//	hooks, counter := observe.WithCounter[int]()
//	pipeline.Observe(hooks).ForEach(handle)
//	fmt.Println(counter.Values())
func WithCounter[T any]() (core.Hooks[T], *Counter) {
	counter := &Counter{}
	return core.Hooks[T]{
		OnStart: func() { counter.passes.Add(1) },
		OnValue: func(T) { counter.values.Add(1) },
		OnError: func(error) { counter.errors.Add(1) },
	}, counter
}

// Collector gathers every error observed across passes.
type Collector struct {
	mu     sync.Mutex
	errors []error
}

// Errors returns a copy of all collected errors.
func (c *Collector) Errors() []error {
	c.mu.Lock()
	defer c.mu.Unlock()
	result := make([]error, len(c.errors))
	copy(result, c.errors)
	return result
}

// HasErrors returns true if any errors were collected.
func (c *Collector) HasErrors() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.errors) > 0
}

// Count returns the number of collected errors.
func (c *Collector) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.errors)
}

// WithCollector returns error collecting hooks and the Collector
// they append to.
func WithCollector[T any]() (core.Hooks[T], *Collector) {
	collector := &Collector{}
	return core.Hooks[T]{
		OnError: func(err error) {
			collector.mu.Lock()
			collector.errors = append(collector.errors, err)
			collector.mu.Unlock()
		},
	}, collector
}
