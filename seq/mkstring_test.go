package seq_test

import (
	"errors"
	"testing"

	"github.com/lguimbarda/fluent-seq/seq"
)

func TestMkString(t *testing.T) {
	tests := []struct {
		name     string
		s        seq.Seq[int]
		sep      string
		expected string
	}{
		{
			name:     "joins with separator",
			s:        seq.Just(1, 2, 3),
			sep:      ", ",
			expected: "1, 2, 3",
		},
		{
			name:     "single element has no separator",
			s:        seq.Just(42),
			sep:      ", ",
			expected: "42",
		},
		{
			name:     "empty sequence",
			s:        seq.Empty[int](),
			sep:      ", ",
			expected: "",
		},
		{
			name:     "empty separator",
			s:        seq.Just(1, 2, 3),
			sep:      "",
			expected: "123",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.s.MkString(tt.sep)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestMkStringRendersWithFmt(t *testing.T) {
	got, err := seq.Just(1.5, 2.25).MkString(" ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "1.5 2.25" {
		t.Errorf("expected %q, got %q", "1.5 2.25", got)
	}
}

func TestMkStringAffix(t *testing.T) {
	tests := []struct {
		name     string
		s        seq.Seq[int]
		expected string
	}{
		{
			name:     "wraps the elements",
			s:        seq.Just(1, 2, 3),
			expected: "[1, 2, 3]",
		},
		{
			name:     "affixes survive an empty sequence",
			s:        seq.Empty[int](),
			expected: "[]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.s.MkStringAffix("[", ", ", "]")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestMkStringError(t *testing.T) {
	failErr := errors.New("bad element")
	failing := seq.Map(seq.Just(1, 2), func(n int) (int, error) {
		if n == 2 {
			return 0, failErr
		}
		return n, nil
	})

	got, err := failing.MkString(", ")
	if !errors.Is(err, failErr) {
		t.Fatalf("expected element error, got %v", err)
	}
	if got != "" {
		t.Errorf("expected empty string on error, got %q", got)
	}
}
