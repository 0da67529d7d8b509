package network

import (
	"fmt"

	"github.com/born-ml/backprop/internal/neuron"
)

// Record is the structured snapshot of a Network.
//
// Layers hold every neuron in order, each non-output layer ending with its
// bias neuron.
type Record struct {
	ErrorRate       float64           `json:"Error Rate"`
	AverageError    float64           `json:"Average Error"`
	SmoothingFactor float64           `json:"Average Smoothing Factor"`
	Layers          [][]neuron.Record `json:"Layers"`
}

// Record snapshots the complete network state.
func (n *Network) Record() Record {
	layers := make([][]neuron.Record, len(n.layers))
	for l, layer := range n.layers {
		layers[l] = layer.Records()
	}

	return Record{
		ErrorRate:       n.errorRate,
		AverageError:    n.averageError,
		SmoothingFactor: n.smoothingFactor,
		Layers:          layers,
	}
}

// FromRecord restores a network from its snapshot.
//
// Weights, deltas, activations, gradients and diagnostics are restored exactly
// and in the order written. Any malformed neuron or structural inconsistency
// (a connection count that does not match the next layer, an index that does
// not match the neuron's position) fails the whole restore with an error
// wrapping ErrMalformedRecord; no partially built network is returned.
func FromRecord(rec Record) (*Network, error) {
	if len(rec.Layers) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 layers, got %d", ErrMalformedRecord, len(rec.Layers))
	}

	last := len(rec.Layers) - 1
	layers := make([]neuron.Layer, len(rec.Layers))
	for l, recs := range rec.Layers {
		minSize := 1
		if l < last {
			minSize = 2 // at least one unit plus the bias
		}
		if len(recs) < minSize {
			return nil, fmt.Errorf("%w: layer %d has %d neurons, need at least %d",
				ErrMalformedRecord, l, len(recs), minSize)
		}

		want := 0
		if l < last {
			want = unitWidth(rec.Layers, l+1)
		}

		layer := make(neuron.Layer, len(recs))
		for i, nrec := range recs {
			nr, err := neuron.FromRecord(nrec)
			if err != nil {
				return nil, fmt.Errorf("failed to restore layer %d neuron %d: %w", l, i, err)
			}
			if nr.Index() != i {
				return nil, fmt.Errorf("%w: layer %d neuron %d has index %d",
					ErrMalformedRecord, l, i, nr.Index())
			}
			if nr.NumOutputs() != want {
				return nil, fmt.Errorf("%w: layer %d neuron %d has %d connections, want %d",
					ErrMalformedRecord, l, i, nr.NumOutputs(), want)
			}
			layer[i] = nr
		}
		layers[l] = layer
	}

	return &Network{
		layers:          layers,
		errorRate:       rec.ErrorRate,
		averageError:    rec.AverageError,
		smoothingFactor: rec.SmoothingFactor,
	}, nil
}

// unitWidth returns the non-bias width of layer l in a record.
func unitWidth(layers [][]neuron.Record, l int) int {
	if l == len(layers)-1 {
		return len(layers[l])
	}
	return len(layers[l]) - 1
}
