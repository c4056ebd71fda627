package pagemesh

import (
	"errors"
	"fmt"
)

// Sentinel errors for mesh generation.
var (
	// ErrInvalidBuffer is returned when the vertex buffer is nil or the host
	// could not hand it out for writing.
	ErrInvalidBuffer = errors.New("pagemesh: invalid vertex buffer")

	// ErrSizeMismatch is returned when the vertex buffer length does not
	// equal Spec.BufferLen.
	ErrSizeMismatch = errors.New("pagemesh: vertex buffer size mismatch")

	// ErrInvalidDimension is returned when a mesh cell count is below one or
	// too large for its buffer length to fit in an int, or a page dimension
	// is not a positive finite number.
	ErrInvalidDimension = errors.New("pagemesh: invalid mesh dimension")
)

// DimensionError reports which Spec field was rejected.
// It matches ErrInvalidDimension with errors.Is.
type DimensionError struct {
	Field string
	Value float64
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("pagemesh: invalid mesh dimension: %s = %v", e.Field, e.Value)
}

func (e *DimensionError) Unwrap() error { return ErrInvalidDimension }

// SizeError reports the expected and actual vertex buffer lengths.
// It matches ErrSizeMismatch with errors.Is.
type SizeError struct {
	Want int
	Got  int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("pagemesh: vertex buffer size mismatch: have %d floats, want %d", e.Got, e.Want)
}

func (e *SizeError) Unwrap() error { return ErrSizeMismatch }
