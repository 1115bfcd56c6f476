package source

import (
	"bytes"
	"encoding/json"
)

// Required is a response field that must be present in the payload.
type Required[T any] struct {
	set   bool
	null  bool
	value T
}

func (r *Required[T]) UnmarshalJSON(data []byte) error {
	r.set = true
	r.null = bytes.Equal(bytes.TrimSpace(data), []byte("null"))
	if r.null {
		var zero T
		r.value = zero
		return nil
	}
	return json.Unmarshal(data, &r.value)
}

// Get returns the value, or a *ResponseShapeError naming field when the key was absent.
// An explicit null counts as present and leaves the zero value.
func (r Required[T]) Get(sourceID, field string) (T, error) {
	if !r.set {
		var zero T
		return zero, &ResponseShapeError{Source: sourceID, Field: field}
	}
	return r.value, nil
}

// GetNonNull is Get that also rejects an explicit null.
func (r Required[T]) GetNonNull(sourceID, field string) (T, error) {
	if r.null {
		var zero T
		return zero, &ResponseShapeError{Source: sourceID, Field: field}
	}
	return r.Get(sourceID, field)
}
