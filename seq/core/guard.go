package core

// Guard invokes fn with arg, converting a panic in fn into a
// PanicError. Pipeline stages use it to run caller-supplied
// functions without letting a panic escape the pass.
func Guard[IN, OUT any](fn func(IN) (OUT, error), arg IN) (out OUT, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = NewPanicError(r)
		}
	}()
	return fn(arg)
}

// Guard2 invokes a two-argument fn, converting a panic into a
// PanicError.
func Guard2[A, B, OUT any](fn func(A, B) (OUT, error), a A, b B) (out OUT, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = NewPanicError(r)
		}
	}()
	return fn(a, b)
}

// GuardAction invokes an action fn, converting a panic into a
// PanicError.
func GuardAction[IN any](fn func(IN) error, arg IN) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = NewPanicError(r)
		}
	}()
	return fn(arg)
}
