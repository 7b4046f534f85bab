package seq_test

import (
	"errors"
	"testing"

	"github.com/lguimbarda/fluent-seq/seq"
)

func TestNewListCopiesItems(t *testing.T) {
	items := []int{1, 2, 3}
	list := seq.NewList(items...)

	items[0] = 99
	got, err := list.At(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 1 {
		t.Errorf("expected list to keep its own copy, got %d", got)
	}
}

func TestListAt(t *testing.T) {
	list := seq.NewList("a", "b", "c")

	tests := []struct {
		name     string
		index    int
		expected string
		wantErr  bool
	}{
		{name: "first", index: 0, expected: "a"},
		{name: "last", index: 2, expected: "c"},
		{name: "negative", index: -1, wantErr: true},
		{name: "past the end", index: 3, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := list.At(tt.index)
			if tt.wantErr {
				var idxErr *seq.IndexError
				if !errors.As(err, &idxErr) {
					t.Fatalf("expected IndexError, got %v", err)
				}
				if idxErr.Index != tt.index || idxErr.Len != 3 {
					t.Errorf("expected index %d len 3, got index %d len %d", tt.index, idxErr.Index, idxErr.Len)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestListHeadTail(t *testing.T) {
	t.Run("non-empty", func(t *testing.T) {
		list := seq.NewList(1, 2, 3)

		head, err := list.Head()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if head != 1 {
			t.Errorf("expected head 1, got %d", head)
		}

		tail, err := list.Tail()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tail.String() != "[2 3]" {
			t.Errorf("expected tail [2 3], got %s", tail)
		}
	})

	t.Run("empty", func(t *testing.T) {
		list := seq.NewList[int]()

		if _, err := list.Head(); !errors.Is(err, seq.ErrEmptySequence) {
			t.Errorf("expected ErrEmptySequence from Head, got %v", err)
		}
		if _, err := list.Tail(); !errors.Is(err, seq.ErrEmptySequence) {
			t.Errorf("expected ErrEmptySequence from Tail, got %v", err)
		}
	})
}

func TestListReverse(t *testing.T) {
	list := seq.NewList(1, 2, 3)
	reversed := list.Reverse()

	if reversed.String() != "[3 2 1]" {
		t.Errorf("expected [3 2 1], got %s", reversed)
	}
	if list.String() != "[1 2 3]" {
		t.Errorf("expected original untouched, got %s", list)
	}
}

func TestListSliceIsACopy(t *testing.T) {
	list := seq.NewList(1, 2, 3)
	s := list.Slice()
	s[0] = 99

	got, err := list.At(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 1 {
		t.Errorf("expected list untouched after mutating the copy, got %d", got)
	}
}

func TestListValues(t *testing.T) {
	list := seq.NewList(1, 2, 3)

	var collected []int
	for v := range list.Values() {
		collected = append(collected, v)
		if len(collected) == 2 {
			break
		}
	}

	if len(collected) != 2 || collected[0] != 1 || collected[1] != 2 {
		t.Errorf("expected [1 2], got %v", collected)
	}
}

func TestListEach(t *testing.T) {
	var visited []string
	seq.NewList("a", "b").Each(func(s string) {
		visited = append(visited, s)
	})

	if len(visited) != 2 || visited[0] != "a" || visited[1] != "b" {
		t.Errorf("expected [a b], got %v", visited)
	}
}

func TestListMkString(t *testing.T) {
	tests := []struct {
		name     string
		list     *seq.List[int]
		sep      string
		expected string
	}{
		{
			name:     "joins elements",
			list:     seq.NewList(1, 2, 3),
			sep:      "-",
			expected: "1-2-3",
		},
		{
			name:     "empty list",
			list:     seq.NewList[int](),
			sep:      "-",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.list.MkString(tt.sep); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestListSeqReplays(t *testing.T) {
	list := seq.NewList(1, 2, 3)
	s := list.Seq()
	if !s.Replayable() {
		t.Fatal("expected replayable sequence")
	}

	for pass := 0; pass < 2; pass++ {
		count, err := s.Count()
		if err != nil {
			t.Fatalf("pass %d: unexpected error: %v", pass, err)
		}
		if count != 3 {
			t.Errorf("pass %d: expected 3 elements, got %d", pass, count)
		}
	}
}

func TestListRoundTripsThroughPipeline(t *testing.T) {
	doubled, err := seq.Map[int, int](seq.NewList(1, 2, 3), func(n int) (int, error) {
		return n * 2, nil
	}).ToList()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if doubled.String() != "[2 4 6]" {
		t.Errorf("expected [2 4 6], got %s", doubled)
	}
}
