package csv

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lguimbarda/fluent-seq/seq"
)

func TestRecordsString(t *testing.T) {
	tests := []struct {
		name string
		data string
		want [][]string
	}{
		{
			name: "simple CSV",
			data: "a,b,c\n1,2,3\n4,5,6\n",
			want: [][]string{{"a", "b", "c"}, {"1", "2", "3"}, {"4", "5", "6"}},
		},
		{
			name: "empty input",
			data: "",
			want: nil,
		},
		{
			name: "single row",
			data: "a,b,c\n",
			want: [][]string{{"a", "b", "c"}},
		},
		{
			name: "quoted fields",
			data: "\"hello, world\",\"test\"\n",
			want: [][]string{{"hello, world", "test"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RecordsString(tt.data).ToSlice()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("records mismatch (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestRecordsStringReplays(t *testing.T) {
	s := RecordsString("x,y\n1,2\n")
	if !s.Replayable() {
		t.Fatal("expected RecordsString sequence to be replayable")
	}

	first, err := s.ToSlice()
	if err != nil {
		t.Fatalf("first pass: unexpected error: %v", err)
	}
	second, err := s.ToSlice()
	if err != nil {
		t.Fatalf("second pass: unexpected error: %v", err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("passes disagree (-first, +second):\n%s", diff)
	}
}

func TestRecordsIsSingleUse(t *testing.T) {
	reader := strings.NewReader("name,age\nAlice,30\nBob,25\n")
	s := Records(reader)
	if s.Replayable() {
		t.Fatal("expected Records sequence to be single-use")
	}

	got, err := s.ToSlice()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 records, got %d", len(got))
	}

	_, err = s.ToSlice()
	var replayErr *seq.ReplayError
	if !errors.As(err, &replayErr) {
		t.Fatalf("expected ReplayError on second pass, got %v", err)
	}
	if replayErr.Source != "csv reader" {
		t.Errorf("expected source %q, got %q", "csv reader", replayErr.Source)
	}
}

func TestReaderOptions(t *testing.T) {
	t.Run("custom comma", func(t *testing.T) {
		got, err := RecordsString("a;b;c\n1;2;3\n", WithComma(';')).ToSlice()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := [][]string{{"a", "b", "c"}, {"1", "2", "3"}}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("records mismatch (-want, +got):\n%s", diff)
		}
	})

	t.Run("comments skipped", func(t *testing.T) {
		got, err := RecordsString("# heading\na,b\n", WithComment('#')).ToSlice()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 {
			t.Fatalf("expected 1 record, got %d", len(got))
		}
	})

	t.Run("trim leading space", func(t *testing.T) {
		got, err := RecordsString("a, b\n", WithTrimLeadingSpace(true)).ToSlice()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if diff := cmp.Diff([][]string{{"a", "b"}}, got); diff != "" {
			t.Errorf("records mismatch (-want, +got):\n%s", diff)
		}
	})
}

func TestMalformedRecordAbortsPass(t *testing.T) {
	// Second record has a bare quote, which encoding/csv rejects.
	_, err := RecordsString("a,b\n\"x,y\n", WithFieldsPerRecord(2)).ToSlice()
	if err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestFieldsPerRecordEnforced(t *testing.T) {
	_, err := RecordsString("a,b\n1,2,3\n", WithFieldsPerRecord(2)).ToSlice()
	if err == nil {
		t.Fatal("expected field-count error")
	}
}

func TestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.csv")
	if err := os.WriteFile(path, []byte("k,v\none,1\ntwo,2\n"), 0644); err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}

	s := File(path)
	if !s.Replayable() {
		t.Fatal("expected File sequence to be replayable")
	}

	got, err := s.ToSlice()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := [][]string{{"k", "v"}, {"one", "1"}, {"two", "2"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("records mismatch (-want, +got):\n%s", diff)
	}

	// Each pass reopens the file, so later passes see new rows.
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		t.Fatalf("failed to reopen: %v", err)
	}
	if _, err := f.WriteString("three,3\n"); err != nil {
		t.Fatalf("failed to append: %v", err)
	}
	f.Close()

	second, err := s.ToSlice()
	if err != nil {
		t.Fatalf("second pass: unexpected error: %v", err)
	}
	if len(second) != 4 {
		t.Fatalf("expected 4 records after append, got %d", len(second))
	}
}

func TestFileMissing(t *testing.T) {
	_, err := File(filepath.Join(t.TempDir(), "missing.csv")).ToSlice()
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestWrite(t *testing.T) {
	var out bytes.Buffer
	records := seq.Just(
		[]string{"name", "age"},
		[]string{"Alice", "30"},
		[]string{"Bob", "25"},
	)

	if err := Write(&out, records); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "name,age\nAlice,30\nBob,25\n"
	if out.String() != want {
		t.Errorf("got %q, want %q", out.String(), want)
	}
}

func TestWriteOptions(t *testing.T) {
	var out bytes.Buffer
	records := seq.Just([]string{"a", "b"})

	if err := Write(&out, records, WithWriterComma(';')); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.String() != "a;b\n" {
		t.Errorf("got %q, want %q", out.String(), "a;b\n")
	}
}

func TestWritePropagatesPipelineError(t *testing.T) {
	var out bytes.Buffer
	boom := errors.New("boom")
	failing := RecordsString("a,b\n1,2\n").Tap(func(record []string) error {
		if record[0] == "1" {
			return boom
		}
		return nil
	})

	err := Write(&out, failing)
	if !errors.Is(err, boom) {
		t.Fatalf("expected pipeline error, got %v", err)
	}
	// The record that preceded the failure was already written.
	if out.String() != "a,b\n" {
		t.Errorf("got %q, want %q", out.String(), "a,b\n")
	}
}

// Integration: CSV records feed an ordinary pipeline. Drop(1) skips
// the header row.
func TestRecordsComposeWithPipeline(t *testing.T) {
	data := "name,dept\nAlice,Engineering\nBob,Sales\nEve,Engineering\n"

	names := seq.Map(
		RecordsString(data).
			Drop(1).
			Filter(func(record []string) (bool, error) { return record[1] == "Engineering", nil }),
		func(record []string) (string, error) { return record[0], nil },
	)

	got, err := names.MkString(", ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Alice, Eve" {
		t.Errorf("got %q, want %q", got, "Alice, Eve")
	}
}
