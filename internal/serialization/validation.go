package serialization

import (
	"fmt"
	"math"

	"github.com/born-ml/backprop/internal/network"
	"github.com/born-ml/backprop/internal/neuron"
)

// Validation limits for resource protection.
const (
	MaxFileSize   = 64 * 1024 * 1024 // 64MB - maximum network file size
	MaxLayers     = 1024             // Maximum number of layers
	MaxLayerWidth = 1 << 16          // Maximum neurons per layer, bias included
)

// ValidationLevel controls the strictness of validation.
type ValidationLevel int

const (
	// ValidationStrict checks structure, finite numbers and bias outputs (default).
	ValidationStrict ValidationLevel = iota
	// ValidationNormal checks structure only.
	ValidationNormal
	// ValidationNone skips validation (dangerous! Use only with trusted input).
	ValidationNone
)

// ValidateRecord checks a decoded record before it is turned into a network.
//
// Structural checks (both Normal and Strict): at least two layers, every
// neuron has a connections list, indices match positions, connection counts
// match the next layer's non-bias width, output neurons have no connections.
// Strict additionally requires every number to be finite, a non-negative
// smoothing factor and every bias output to be exactly 1.0.
func ValidateRecord(rec network.Record, level ValidationLevel) error {
	if level == ValidationNone {
		return nil
	}

	if err := validateStructure(rec); err != nil {
		return err
	}

	if level == ValidationStrict {
		return validateValues(rec)
	}
	return nil
}

//nolint:gocyclo,cyclop // one pass over the nested record
func validateStructure(rec network.Record) error {
	if len(rec.Layers) < 2 {
		return &ValidationError{
			Type: "layer_count", Layer: -1, Neuron: -1,
			Details: fmt.Sprintf("got %d layers, need at least 2", len(rec.Layers)),
		}
	}
	if len(rec.Layers) > MaxLayers {
		return &ValidationError{
			Type: "layer_count", Layer: -1, Neuron: -1,
			Details: fmt.Sprintf("got %d layers, max %d", len(rec.Layers), MaxLayers),
		}
	}

	last := len(rec.Layers) - 1
	for l, layer := range rec.Layers {
		minSize := 1
		if l < last {
			minSize = 2
		}
		if len(layer) < minSize || len(layer) > MaxLayerWidth {
			return &ValidationError{
				Type: "layer_width", Layer: l, Neuron: -1,
				Details: fmt.Sprintf("got %d neurons, want between %d and %d", len(layer), minSize, MaxLayerWidth),
			}
		}
	}

	for l, layer := range rec.Layers {
		want := 0
		if l < last {
			want = len(rec.Layers[l+1])
			if l+1 < last {
				want-- // next layer's bias has no incoming edges
			}
		}

		for i, n := range layer {
			if n.Index != i {
				return &ValidationError{
					Type: "neuron_index", Layer: l, Neuron: i,
					Details: fmt.Sprintf("index %d does not match position", n.Index),
				}
			}
			if n.Connections == nil {
				return &ValidationError{
					Type: "missing_connections", Layer: l, Neuron: i,
					Details: "connections list is absent",
				}
			}
			if len(n.Connections) != want {
				return &ValidationError{
					Type: "connection_count", Layer: l, Neuron: i,
					Details: fmt.Sprintf("got %d connections, want %d", len(n.Connections), want),
				}
			}
		}
	}

	return nil
}

func validateValues(rec network.Record) error {
	scalars := []struct {
		name string
		v    float64
	}{
		{"error rate", rec.ErrorRate},
		{"average error", rec.AverageError},
		{"smoothing factor", rec.SmoothingFactor},
	}
	for _, s := range scalars {
		if !finite(s.v) {
			return &ValidationError{
				Type: "non_finite", Layer: -1, Neuron: -1,
				Details: fmt.Sprintf("%s is %v", s.name, s.v),
			}
		}
	}
	if rec.SmoothingFactor < 0 {
		return &ValidationError{
			Type: "smoothing_factor", Layer: -1, Neuron: -1,
			Details: fmt.Sprintf("got %v, must not be negative", rec.SmoothingFactor),
		}
	}

	last := len(rec.Layers) - 1
	for l, layer := range rec.Layers {
		for i, n := range layer {
			if err := validateNeuronValues(l, i, n); err != nil {
				return err
			}
		}

		if l < last {
			bias := layer[len(layer)-1]
			if bias.OutputValue != neuron.BiasOutput {
				return &ValidationError{
					Type: "bias_output", Layer: l, Neuron: len(layer) - 1,
					Details: fmt.Sprintf("got %v, want %v", bias.OutputValue, neuron.BiasOutput),
				}
			}
		}
	}

	return nil
}

func validateNeuronValues(l, i int, n neuron.Record) error {
	if !finite(n.OutputValue) || !finite(n.Gradient) {
		return &ValidationError{
			Type: "non_finite", Layer: l, Neuron: i,
			Details: fmt.Sprintf("output %v, gradient %v", n.OutputValue, n.Gradient),
		}
	}
	for c, conn := range n.Connections {
		if !finite(conn.Weight) || !finite(conn.DeltaWeight) {
			return &ValidationError{
				Type: "non_finite", Layer: l, Neuron: i,
				Details: fmt.Sprintf("connection %d: weight %v, delta %v", c, conn.Weight, conn.DeltaWeight),
			}
		}
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
