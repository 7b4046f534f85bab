// Package sql provides sequence sources backed by database/sql.
// Query results feed pipelines row by row through a caller-supplied
// scanner.
package sql

import (
	"database/sql"
	"fmt"

	"github.com/lguimbarda/fluent-seq/seq"
	"github.com/lguimbarda/fluent-seq/seq/core"
)

// Scanner converts the current row of a result set into a value.
type Scanner[T any] func(*sql.Rows) (T, error)

// Query returns a sequence that executes the query and emits one
// value per row. The sequence is replayable: every pass re-executes
// the query, so passes over changing data may observe different
// rows. A failing scanner aborts the pass.
func Query[T any](db *sql.DB, query string, scanner Scanner[T], args ...any) seq.Seq[T] {
	return seq.New(func() (core.Stream[T], error) {
		rows, err := db.Query(query, args...)
		if err != nil {
			return nil, err
		}
		return rowsStream(rows, scanner), nil
	}, true)
}

// FromRows adapts an already-open result set into a sequence. The
// rows are closed when the pass ends. A result set can only be
// walked once, so the sequence is single-use and a second pass
// fails with a ReplayError.
func FromRows[T any](rows *sql.Rows, scanner Scanner[T]) seq.Seq[T] {
	open := core.SingleUse("sql rows", func() (core.Stream[T], error) {
		return rowsStream(rows, scanner), nil
	})
	return seq.New(open, false)
}

func rowsStream[T any](rows *sql.Rows, scanner Scanner[T]) core.Stream[T] {
	return func(yield func(core.Result[T]) bool) {
		defer rows.Close()
		for rows.Next() {
			value, err := scanner(rows)
			if err != nil {
				yield(core.Err[T](err))
				return
			}
			if !yield(core.Ok(value)) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			yield(core.Err[T](err))
		}
	}
}

// QueryStrings queries with every column rendered as a string, for
// quick inspection of arbitrary result sets.
func QueryStrings(db *sql.DB, query string, args ...any) seq.Seq[[]string] {
	return Query(db, query, ScanStrings, args...)
}

// ScanStrings is a Scanner that renders every column of the current
// row as a string. NULL becomes the empty string.
func ScanStrings(rows *sql.Rows) ([]string, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	values := make([]any, len(cols))
	valuePtrs := make([]any, len(cols))
	for i := range values {
		valuePtrs[i] = &values[i]
	}
	if err := rows.Scan(valuePtrs...); err != nil {
		return nil, err
	}
	result := make([]string, len(cols))
	for i, v := range values {
		switch val := v.(type) {
		case nil:
			result[i] = ""
		case []byte:
			result[i] = string(val)
		case string:
			result[i] = val
		case int64:
			result[i] = fmt.Sprintf("%d", val)
		case float64:
			result[i] = fmt.Sprintf("%g", val)
		case bool:
			result[i] = fmt.Sprintf("%t", val)
		default:
			result[i] = fmt.Sprintf("%v", val)
		}
	}
	return result, nil
}
