package seq

import (
	"fmt"
	"strings"
)

// MkString runs the pipeline and joins its elements into one string
// with sep between consecutive elements. Elements are rendered with
// fmt.Sprint. An empty pipeline produces the empty string.
func (s Seq[T]) MkString(sep string) (string, error) {
	return s.MkStringAffix("", sep, "")
}

// MkStringAffix is MkString with a leading prefix and trailing
// suffix. The affixes appear even when the pipeline is empty.
func (s Seq[T]) MkStringAffix(prefix, sep, suffix string) (string, error) {
	stream, err := s.Open()
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	sb.WriteString(prefix)
	first := true
	for res := range stream {
		if res.IsError() {
			return "", res.Error()
		}
		if !first {
			sb.WriteString(sep)
		}
		first = false
		fmt.Fprint(&sb, res.Value())
	}
	sb.WriteString(suffix)
	return sb.String(), nil
}
