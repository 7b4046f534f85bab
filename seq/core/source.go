package core

// Source produces the elements a pipeline consumes. Open begins a new
// pass over the source's elements. Sources that cannot be traversed
// more than once report Replayable() == false and fail every Open
// after the first with a ReplayError.
// Source answers the question: "Where do the elements come from, and
// how often may they be read?".
type Source[T any] interface {
	Open() (Stream[T], error)
	Replayable() bool
}

// SingleUse wraps an opener so that the second and subsequent calls
// fail with a ReplayError naming the source kind. The guard trips as
// soon as the first pass begins, so a terminal operation re-entered
// while the first pass is still running is rejected as well.
func SingleUse[T any](kind string, open func() (Stream[T], error)) func() (Stream[T], error) {
	consumed := false
	return func() (Stream[T], error) {
		if consumed {
			return nil, &ReplayError{Source: kind}
		}
		consumed = true
		return open()
	}
}
