package neuron

import "errors"

// ErrMalformedRecord is returned when a persisted neuron cannot be restored.
var ErrMalformedRecord = errors.New("malformed neuron record")
