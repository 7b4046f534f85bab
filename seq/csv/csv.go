// Package csv provides sequence sources and sinks for CSV data.
// Records feed pipelines as []string rows; reader behavior is tuned
// with options mirroring encoding/csv.
package csv

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/lguimbarda/fluent-seq/seq"
	"github.com/lguimbarda/fluent-seq/seq/core"
)

// ReaderOption configures a CSV reader.
type ReaderOption func(*csv.Reader)

// WithComma sets the field delimiter (default is ',').
func WithComma(comma rune) ReaderOption {
	return func(r *csv.Reader) {
		r.Comma = comma
	}
}

// WithComment sets the comment character. Lines beginning with this
// character are ignored.
func WithComment(comment rune) ReaderOption {
	return func(r *csv.Reader) {
		r.Comment = comment
	}
}

// WithFieldsPerRecord sets the expected number of fields per record.
// If positive, each record must have exactly that many fields.
// If 0, the number is set to the first record's field count.
// If negative, no check is made and records may have variable fields.
func WithFieldsPerRecord(n int) ReaderOption {
	return func(r *csv.Reader) {
		r.FieldsPerRecord = n
	}
}

// WithLazyQuotes allows lazy quotes in quoted fields.
func WithLazyQuotes(lazy bool) ReaderOption {
	return func(r *csv.Reader) {
		r.LazyQuotes = lazy
	}
}

// WithTrimLeadingSpace trims leading whitespace from fields.
func WithTrimLeadingSpace(trim bool) ReaderOption {
	return func(r *csv.Reader) {
		r.TrimLeadingSpace = trim
	}
}

// Records creates a sequence that emits one []string per CSV record
// read from r. The reader is consumed as the pass runs, so the
// sequence is single-use: a second pass fails with a ReplayError. Use
// RecordsString or File when replayability is needed. A malformed
// record aborts the pass with the reader's error.
func Records(r io.Reader, opts ...ReaderOption) seq.Seq[[]string] {
	open := core.SingleUse("csv reader", func() (core.Stream[[]string], error) {
		return recordStream(r, opts), nil
	})
	return seq.New(open, false)
}

// RecordsString creates a replayable sequence over CSV data held in a
// string. Every pass decodes the data afresh.
func RecordsString(data string, opts ...ReaderOption) seq.Seq[[]string] {
	return seq.New(func() (core.Stream[[]string], error) {
		return recordStream(strings.NewReader(data), opts), nil
	}, true)
}

// File creates a replayable sequence over the CSV records of a file.
// Every pass opens and decodes the file afresh, so passes over a
// changing file may observe different records. An unopenable file
// fails the pass.
func File(path string, opts ...ReaderOption) seq.Seq[[]string] {
	return seq.New(func() (core.Stream[[]string], error) {
		file, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		return func(yield func(core.Result[[]string]) bool) {
			defer file.Close()
			recordStream(file, opts)(yield)
		}, nil
	}, true)
}

func recordStream(r io.Reader, opts []ReaderOption) core.Stream[[]string] {
	return func(yield func(core.Result[[]string]) bool) {
		reader := csv.NewReader(r)
		for _, opt := range opts {
			opt(reader)
		}
		for {
			record, err := reader.Read()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield(core.Err[[]string](err))
				return
			}
			if !yield(core.Ok(record)) {
				return
			}
		}
	}
}

// WriterOption configures a CSV writer.
type WriterOption func(*csv.Writer)

// WithWriterComma sets the field delimiter for writing (default is ',').
func WithWriterComma(comma rune) WriterOption {
	return func(w *csv.Writer) {
		w.Comma = comma
	}
}

// WithUseCRLF sets whether to use \r\n as the line terminator.
func WithUseCRLF(useCRLF bool) WriterOption {
	return func(w *csv.Writer) {
		w.UseCRLF = useCRLF
	}
}

// Write runs the pipeline and encodes each record to w. It is a
// terminal operation: the pass consumes the sequence. The writer is
// flushed before Write returns; a pipeline or encoding error aborts
// the pass and is returned after flushing what was already written.
func Write(w io.Writer, s seq.Sequence[[]string], opts ...WriterOption) error {
	writer := csv.NewWriter(w)
	for _, opt := range opts {
		opt(writer)
	}
	defer writer.Flush()
	if err := s.Seq().ForEach(writer.Write); err != nil {
		return err
	}
	writer.Flush()
	return writer.Error()
}
