package network

import (
	"errors"
	"fmt"

	"github.com/born-ml/backprop/internal/neuron"
)

// Common errors.
var (
	ErrShapeMismatch   = errors.New("vector length does not match layer width")
	ErrInvalidTopology = errors.New("invalid topology")
	ErrMalformedRecord = neuron.ErrMalformedRecord
)

// ShapeError reports a forward or backward pass called with a vector of the
// wrong length. The network is left unchanged.
type ShapeError struct {
	Op   string // "forward" or "backward"
	Want int    // Expected vector length
	Got  int    // Supplied vector length
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: got %d values, want %d", e.Op, e.Got, e.Want)
}

// Unwrap returns ErrShapeMismatch.
func (e *ShapeError) Unwrap() error {
	return ErrShapeMismatch
}
