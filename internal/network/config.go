package network

import (
	"math/rand"

	"github.com/born-ml/backprop/internal/neuron"
)

// DefaultSmoothingFactor weights the running average error over roughly the
// last hundred backward passes.
const DefaultSmoothingFactor = 100.0

// Config holds construction options for a fresh network.
type Config struct {
	// SmoothingFactor weights the running average of the error rate
	// (default: DefaultSmoothingFactor).
	SmoothingFactor float64

	// Source draws the initial weights (default: math/rand seeded with 1).
	Source neuron.WeightSource
}

// DefaultConfig returns the default construction options.
func DefaultConfig() Config {
	return Config{
		SmoothingFactor: DefaultSmoothingFactor,
		//nolint:gosec // G404: weight initialization is not security-critical
		Source: rand.New(rand.NewSource(1)),
	}
}

// withDefaults fills zero fields from DefaultConfig.
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.SmoothingFactor == 0 {
		c.SmoothingFactor = def.SmoothingFactor
	}
	if c.Source == nil {
		c.Source = def.Source
	}
	return c
}
