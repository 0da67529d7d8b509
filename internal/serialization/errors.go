package serialization

import (
	"errors"
	"fmt"

	"github.com/born-ml/backprop/internal/network"
)

// Common errors.
var (
	ErrFileTooLarge = errors.New("network file exceeds maximum size")
	ErrNilNetwork   = errors.New("network is nil")
)

// ValidationError provides detailed information about validation failures.
//
// It unwraps to network.ErrMalformedRecord.
type ValidationError struct {
	Type    string // Type of error (e.g., "connection_count", "bias_output")
	Layer   int    // Layer index, -1 when not applicable
	Neuron  int    // Neuron index within the layer, -1 when not applicable
	Details string // Additional details
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	switch {
	case e.Neuron >= 0:
		return fmt.Sprintf("%s: layer %d neuron %d: %s", e.Type, e.Layer, e.Neuron, e.Details)
	case e.Layer >= 0:
		return fmt.Sprintf("%s: layer %d: %s", e.Type, e.Layer, e.Details)
	default:
		return fmt.Sprintf("%s: %s", e.Type, e.Details)
	}
}

// Unwrap returns network.ErrMalformedRecord.
func (e *ValidationError) Unwrap() error {
	return network.ErrMalformedRecord
}
