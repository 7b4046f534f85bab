// Package json provides sequence stages and sources for JSON data:
// decoding documents into typed values, encoding values back to
// documents, and streaming a reader of concatenated documents.
package json

import (
	"encoding/json"
	"errors"
	"io"
	"strings"

	"github.com/lguimbarda/fluent-seq/seq"
	"github.com/lguimbarda/fluent-seq/seq/core"
)

// Decode transforms a sequence of JSON documents into typed values.
// Each input string must be one valid document; a document that does
// not parse aborts the pass with the decode error and the document's
// position.
func Decode[T any](s seq.Sequence[string]) seq.Seq[T] {
	parent := s.Seq()
	return seq.New(func() (core.Stream[T], error) {
		up, err := parent.Open()
		if err != nil {
			return nil, err
		}
		return func(yield func(core.Result[T]) bool) {
			index := 0
			for res := range up {
				if res.IsError() {
					yield(core.Err[T](res.Error()))
					return
				}
				var value T
				if err := json.Unmarshal([]byte(res.Value()), &value); err != nil {
					yield(core.Err[T](core.NewElementError("Decode", index, err)))
					return
				}
				index++
				if !yield(core.Ok(value)) {
					return
				}
			}
		}, nil
	}, parent.Replayable())
}

// Encode transforms a sequence of values into compact JSON documents,
// one per element. A value that cannot be marshalled aborts the pass.
func Encode[T any](s seq.Sequence[T]) seq.Seq[string] {
	parent := s.Seq()
	return seq.New(func() (core.Stream[string], error) {
		up, err := parent.Open()
		if err != nil {
			return nil, err
		}
		return func(yield func(core.Result[string]) bool) {
			index := 0
			for res := range up {
				if res.IsError() {
					yield(core.Err[string](res.Error()))
					return
				}
				data, err := json.Marshal(res.Value())
				if err != nil {
					yield(core.Err[string](core.NewElementError("Encode", index, err)))
					return
				}
				index++
				if !yield(core.Ok(string(data))) {
					return
				}
			}
		}, nil
	}, parent.Replayable())
}

// Documents creates a sequence that decodes consecutive JSON
// documents from r, one typed value per document. Both JSON-lines
// input and concatenated documents work. The reader is consumed as
// the pass runs, so the sequence is single-use; use DocumentsString
// when replayability is needed.
func Documents[T any](r io.Reader) seq.Seq[T] {
	open := core.SingleUse("json decoder", func() (core.Stream[T], error) {
		return decoderStream[T](json.NewDecoder(r)), nil
	})
	return seq.New(open, false)
}

// DocumentsString creates a replayable sequence over consecutive JSON
// documents held in a string. Every pass decodes the data afresh.
func DocumentsString[T any](data string) seq.Seq[T] {
	return seq.New(func() (core.Stream[T], error) {
		return decoderStream[T](json.NewDecoder(strings.NewReader(data))), nil
	}, true)
}

func decoderStream[T any](dec *json.Decoder) core.Stream[T] {
	return func(yield func(core.Result[T]) bool) {
		for {
			var value T
			err := dec.Decode(&value)
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield(core.Err[T](err))
				return
			}
			if !yield(core.Ok(value)) {
				return
			}
		}
	}
}
