package core

import (
	"errors"
	"strings"
	"testing"
)

func TestResultStates(t *testing.T) {
	t.Run("ok result", func(t *testing.T) {
		res := Ok(42)
		if !res.IsValue() {
			t.Error("IsValue() = false, want true")
		}
		if res.IsError() {
			t.Error("IsError() = true, want false")
		}
		if res.Value() != 42 {
			t.Errorf("Value() = %d, want 42", res.Value())
		}
		if res.Error() != nil {
			t.Errorf("Error() = %v, want nil", res.Error())
		}
	})

	t.Run("error result", func(t *testing.T) {
		cause := errors.New("boom")
		res := Err[int](cause)
		if res.IsValue() {
			t.Error("IsValue() = true, want false")
		}
		if !res.IsError() {
			t.Error("IsError() = false, want true")
		}
		if res.Value() != 0 {
			t.Errorf("Value() = %d, want zero value", res.Value())
		}
		if res.Error() != cause {
			t.Errorf("Error() = %v, want %v", res.Error(), cause)
		}
	})

	t.Run("unwrap", func(t *testing.T) {
		value, err := Ok("hello").Unwrap()
		if value != "hello" || err != nil {
			t.Errorf("Unwrap() = (%q, %v), want (%q, nil)", value, err, "hello")
		}

		cause := errors.New("boom")
		value, err = Err[string](cause).Unwrap()
		if value != "" || err != cause {
			t.Errorf("Unwrap() = (%q, %v), want (%q, %v)", value, err, "", cause)
		}
	})
}

func TestPanicError_Error(t *testing.T) {
	tests := []struct {
		name     string
		panic    *PanicError
		contains []string
	}{
		{
			name:     "without stack",
			panic:    &PanicError{Value: "test panic"},
			contains: []string{"panic: test panic"},
		},
		{
			name:     "with stack",
			panic:    &PanicError{Value: "test panic", Stack: "some/function\n\tfile.go:42"},
			contains: []string{"panic: test panic", "some/function", "file.go:42"},
		},
		{
			name:     "integer value",
			panic:    &PanicError{Value: 42},
			contains: []string{"panic: 42"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.panic.Error()
			for _, substr := range tt.contains {
				if !strings.Contains(msg, substr) {
					t.Errorf("Error() = %q, want it to contain %q", msg, substr)
				}
			}
		})
	}
}

func TestNewPanicError(t *testing.T) {
	// Create a panic error from inside a function to test stack capture
	var err *PanicError
	func() {
		defer func() {
			if r := recover(); r != nil {
				err = NewPanicError(r)
			}
		}()
		panic("test panic value")
	}()

	// Check the value was captured
	if err.Value != "test panic value" {
		t.Errorf("Value = %v, want %q", err.Value, "test panic value")
	}

	// Check error message contains the panic value
	errMsg := err.Error()
	if !strings.Contains(errMsg, "panic: test panic value") {
		t.Errorf("Error() = %q, want it to contain 'panic: test panic value'", errMsg)
	}

	// Check that internal fluent-seq frames are NOT in the stack
	if strings.Contains(err.Stack, "github.com/lguimbarda/fluent-seq/seq") {
		t.Errorf("Stack should not contain internal fluent-seq frames:\n%s", err.Stack)
	}
}

func TestCleanStack(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		shouldContain []string
		shouldExclude []string
	}{
		{
			name: "removes fluent-seq frames",
			input: `user/code/main.go
	/path/to/user/code/main.go:10
github.com/lguimbarda/fluent-seq/seq/core.Guard
	/path/to/fluent-seq/seq/core/guard.go:10
testing.tRunner
	/usr/local/go/src/testing/testing.go:1595`,
			shouldContain: []string{"user/code/main.go", "testing.tRunner"},
			shouldExclude: []string{"fluent-seq/seq/core.Guard"},
		},
		{
			name:          "preserves user code",
			input:         "myapp/handler.Process\n\t/home/user/myapp/handler.go:25",
			shouldContain: []string{"myapp/handler.Process", "handler.go:25"},
			shouldExclude: []string{},
		},
		{
			name:          "handles empty input",
			input:         "",
			shouldContain: []string{},
			shouldExclude: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := cleanStack(tt.input)

			for _, s := range tt.shouldContain {
				if !strings.Contains(result, s) {
					t.Errorf("cleanStack() should contain %q, got:\n%s", s, result)
				}
			}

			for _, s := range tt.shouldExclude {
				if strings.Contains(result, s) {
					t.Errorf("cleanStack() should NOT contain %q, got:\n%s", s, result)
				}
			}
		})
	}
}
