package network

import (
	"fmt"
	"math"

	"github.com/born-ml/backprop/internal/neuron"
	"gonum.org/v1/gonum/floats"
)

// Network is a fully-connected feed-forward network of tanh neurons trained
// online by backpropagation with momentum.
//
// The first layer is the input layer and the last is the output layer. Every
// layer but the output layer ends with a bias neuron whose output stays 1.0.
//
// A Network is not safe for concurrent use. Forward and Backward mutate
// neuron state in place and must be called by one caller at a time.
type Network struct {
	layers []neuron.Layer

	errorRate       float64
	averageError    float64
	smoothingFactor float64
}

// New builds a network with fresh random weights for topology.
//
// topology gives the neuron count of each layer, bias excluded, and must have
// at least two entries, each positive. Layer i (except the last) receives
// topology[i]+1 neurons, the extra one being the bias; each of them owns
// topology[i+1] connections. The output layer has exactly topology[last]
// neurons and no bias.
func New(topology []int, cfg Config) (*Network, error) {
	if err := validateTopology(topology); err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()

	last := len(topology) - 1
	layers := make([]neuron.Layer, len(topology))
	for l, width := range topology {
		numOutputs := 0
		size := width
		if l < last {
			numOutputs = topology[l+1]
			size = width + 1
		}

		layer := make(neuron.Layer, size)
		for i := range layer {
			layer[i] = neuron.New(numOutputs, i, cfg.Source)
		}
		if l < last {
			layer.Bias().SetOutput(neuron.BiasOutput)
		}
		layers[l] = layer
	}

	return &Network{
		layers:          layers,
		smoothingFactor: cfg.SmoothingFactor,
	}, nil
}

func validateTopology(topology []int) error {
	if len(topology) < 2 {
		return fmt.Errorf("%w: need at least 2 layers, got %d", ErrInvalidTopology, len(topology))
	}
	for i, w := range topology {
		if w < 1 {
			return fmt.Errorf("%w: layer %d has width %d", ErrInvalidTopology, i, w)
		}
	}
	return nil
}

// Forward propagates input through the network.
//
// input must hold one value per input neuron (bias excluded); otherwise a
// *ShapeError is returned and no neuron is touched. Bias neurons are never
// recomputed.
func (n *Network) Forward(input []float64) error {
	if len(input) != n.InputWidth() {
		return &ShapeError{Op: "forward", Want: n.InputWidth(), Got: len(input)}
	}

	for i, v := range input {
		n.layers[0][i].SetOutput(v)
	}

	for l := 1; l < len(n.layers); l++ {
		prev := n.layers[l-1]
		for _, nr := range n.units(l) {
			nr.FeedForward(prev)
		}
	}

	return nil
}

// Backward updates the diagnostics for target and adjusts every weight by one
// momentum step.
//
// target must hold one value per output neuron; otherwise a *ShapeError is
// returned and nothing changes. Forward must have been called first with the
// input that target belongs to.
func (n *Network) Backward(target []float64) error {
	if len(target) != n.OutputWidth() {
		return &ShapeError{Op: "backward", Want: n.OutputWidth(), Got: len(target)}
	}

	last := len(n.layers) - 1
	output := n.layers[last]

	// Root mean square error of this presentation.
	dist := floats.Distance(target, output.Outputs(), 2)
	n.errorRate = dist / math.Sqrt(float64(len(output)))
	n.averageError = (n.averageError*n.smoothingFactor + n.errorRate) / (n.smoothingFactor + 1)

	for i, nr := range output {
		nr.CalcOutputGradient(target[i])
	}

	// Hidden gradients depend on the next layer's gradients, so walk backwards.
	for l := last - 1; l > 0; l-- {
		next := n.layers[l+1]
		for _, nr := range n.layers[l] {
			nr.CalcHiddenGradient(next)
		}
	}

	for l := last; l > 0; l-- {
		prev := n.layers[l-1]
		for _, nr := range n.units(l) {
			nr.UpdateInputWeights(prev)
		}
	}

	return nil
}

// Predict runs a forward pass and returns the output activations.
func (n *Network) Predict(input []float64) ([]float64, error) {
	if err := n.Forward(input); err != nil {
		return nil, err
	}
	return n.Results(), nil
}

// Results returns the output activations in layer order.
func (n *Network) Results() []float64 {
	return n.layers[len(n.layers)-1].Outputs()
}

// ErrorRate returns the RMS error of the most recent backward pass.
func (n *Network) ErrorRate() float64 {
	return n.errorRate
}

// AverageError returns the exponentially smoothed error over all backward passes.
func (n *Network) AverageError() float64 {
	return n.averageError
}

// SmoothingFactor returns the weight of the running average.
func (n *Network) SmoothingFactor() float64 {
	return n.smoothingFactor
}

// NumLayers returns the number of layers, input and output included.
func (n *Network) NumLayers() int {
	return len(n.layers)
}

// Layer returns layer l, bias included. The neurons are shared with the
// network, not copied.
func (n *Network) Layer(l int) neuron.Layer {
	return n.layers[l]
}

// InputWidth returns the number of input neurons, bias excluded.
func (n *Network) InputWidth() int {
	return len(n.units(0))
}

// OutputWidth returns the number of output neurons.
func (n *Network) OutputWidth() int {
	return len(n.layers[len(n.layers)-1])
}

// Topology returns the neuron count of every layer, bias excluded.
func (n *Network) Topology() []int {
	topology := make([]int, len(n.layers))
	for l := range n.layers {
		topology[l] = len(n.units(l))
	}
	return topology
}

// units returns the non-bias neurons of layer l.
func (n *Network) units(l int) neuron.Layer {
	layer := n.layers[l]
	if l == len(n.layers)-1 {
		return layer
	}
	return layer[:len(layer)-1]
}
