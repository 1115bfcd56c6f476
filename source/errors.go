package source

import (
	"errors"
	"fmt"
)

var (
	ErrUpstream      = errors.New("upstream request failed")
	ErrResponseShape = errors.New("unexpected response shape")
	ErrUnknownSource = errors.New("unknown source")
)

// UpstreamError is returned when a worker answers with a non-2xx status.
type UpstreamError struct {
	Source     string
	URL        string
	StatusCode int
	Status     string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Source, ErrUpstream, e.Status)
}

func (e *UpstreamError) Is(target error) bool {
	return target == ErrUpstream
}

// ResponseShapeError is returned when a 2xx payload lacks a required field or cannot be decoded.
type ResponseShapeError struct {
	Source string
	Field  string
	Err    error
}

func (e *ResponseShapeError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Source, ErrResponseShape, e.Err)
	case e.Field != "":
		return fmt.Sprintf("%s: %s: missing %q", e.Source, ErrResponseShape, e.Field)
	default:
		return fmt.Sprintf("%s: %s", e.Source, ErrResponseShape)
	}
}

func (e *ResponseShapeError) Is(target error) bool {
	return target == ErrResponseShape
}

func (e *ResponseShapeError) Unwrap() error {
	return e.Err
}

// UnknownSourceError is returned for a source name outside the supported set.
type UnknownSourceError struct {
	Name string
	// Suggestion is the closest supported name, if any.
	Suggestion string
}

func (e *UnknownSourceError) Error() string {
	msg := fmt.Sprintf("%s %q", ErrUnknownSource, e.Name)
	if e.Suggestion != "" {
		msg += fmt.Sprintf(", did you mean %q?", e.Suggestion)
	}
	return msg
}

func (e *UnknownSourceError) Is(target error) bool {
	return target == ErrUnknownSource
}
