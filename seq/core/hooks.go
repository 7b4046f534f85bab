package core

// Hooks holds typed observation callbacks for one point of a
// pipeline. All fields are optional - nil means no observation for
// that event. Hooks are invoked synchronously during the pass, so
// they should be fast to avoid slowing the pipeline.
type Hooks[T any] struct {
	OnStart    func()      // Pass begins
	OnValue    func(T)     // Successful value passing this point
	OnError    func(error) // Propagated error passing this point
	OnComplete func()      // Pass finished (including early stops)
}

// Start invokes OnStart when set.
func (h Hooks[T]) Start() {
	if h.OnStart != nil {
		h.OnStart()
	}
}

// Value invokes OnValue when set.
func (h Hooks[T]) Value(value T) {
	if h.OnValue != nil {
		h.OnValue(value)
	}
}

// Error invokes OnError when set.
func (h Hooks[T]) Error(err error) {
	if h.OnError != nil {
		h.OnError(err)
	}
}

// Complete invokes OnComplete when set.
func (h Hooks[T]) Complete() {
	if h.OnComplete != nil {
		h.OnComplete()
	}
}

// Combine merges hook sets into a single set. For each event the
// callbacks fire in the order the sets were given.
func Combine[T any](sets ...Hooks[T]) Hooks[T] {
	var starts []func()
	var values []func(T)
	var errs []func(error)
	var completes []func()

	for _, set := range sets {
		if set.OnStart != nil {
			starts = append(starts, set.OnStart)
		}
		if set.OnValue != nil {
			values = append(values, set.OnValue)
		}
		if set.OnError != nil {
			errs = append(errs, set.OnError)
		}
		if set.OnComplete != nil {
			completes = append(completes, set.OnComplete)
		}
	}

	var combined Hooks[T]
	if len(starts) > 0 {
		combined.OnStart = func() {
			for _, fn := range starts {
				fn()
			}
		}
	}
	if len(values) > 0 {
		combined.OnValue = func(value T) {
			for _, fn := range values {
				fn(value)
			}
		}
	}
	if len(errs) > 0 {
		combined.OnError = func(err error) {
			for _, fn := range errs {
				fn(err)
			}
		}
	}
	if len(completes) > 0 {
		combined.OnComplete = func() {
			for _, fn := range completes {
				fn()
			}
		}
	}
	return combined
}

// SafeHooks wraps Hooks[T] to recover from panics in hook functions.
// Use this when hooks are user-provided and panics should not abort
// the pass.
type SafeHooks[T any] struct {
	Hooks[T]
	panicHandler func(any) // Called when a hook panics
}

// NewSafeHooks creates SafeHooks from regular Hooks.
// If panicHandler is nil, panics are silently recovered.
func NewSafeHooks[T any](hooks Hooks[T], panicHandler func(any)) SafeHooks[T] {
	if panicHandler == nil {
		panicHandler = func(any) {} // Silent recovery
	}

	safe := SafeHooks[T]{
		panicHandler: panicHandler,
	}

	// Wrap each hook with panic recovery
	if hooks.OnStart != nil {
		originalStart := hooks.OnStart
		safe.OnStart = func() {
			defer func() {
				if r := recover(); r != nil {
					safe.panicHandler(r)
				}
			}()
			originalStart()
		}
	}

	if hooks.OnValue != nil {
		originalValue := hooks.OnValue
		safe.OnValue = func(v T) {
			defer func() {
				if r := recover(); r != nil {
					safe.panicHandler(r)
				}
			}()
			originalValue(v)
		}
	}

	if hooks.OnError != nil {
		originalError := hooks.OnError
		safe.OnError = func(err error) {
			defer func() {
				if r := recover(); r != nil {
					safe.panicHandler(r)
				}
			}()
			originalError(err)
		}
	}

	if hooks.OnComplete != nil {
		originalComplete := hooks.OnComplete
		safe.OnComplete = func() {
			defer func() {
				if r := recover(); r != nil {
					safe.panicHandler(r)
				}
			}()
			originalComplete()
		}
	}

	return safe
}
