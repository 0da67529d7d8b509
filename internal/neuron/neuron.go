package neuron

import (
	"fmt"
	"math"
)

// Training constants. They are fixed for every network.
const (
	// LearningRate scales the gradient contribution to each weight update.
	LearningRate = 0.15

	// Momentum is the fraction of the previous update carried into the next one.
	Momentum = 0.5

	// BiasOutput is the permanent output of a bias neuron.
	BiasOutput = 1.0
)

// WeightSource yields uniformly distributed values in [0, 1).
//
// *math/rand.Rand satisfies it, so a seeded generator gives reproducible
// initial weights.
type WeightSource interface {
	Float64() float64
}

// Neuron is a single tanh unit and the outgoing connections it owns.
type Neuron struct {
	outputValue float64
	gradient    float64
	index       int
	connections []Connection
}

// New creates a neuron at position index of its layer with numOutputs
// outgoing connections, one per neuron of the next layer.
//
// Each weight is drawn from src; every delta starts at zero. Neurons of the
// output layer are created with numOutputs == 0.
func New(numOutputs, index int, src WeightSource) *Neuron {
	conns := make([]Connection, numOutputs)
	for i := range conns {
		conns[i].Weight = src.Float64()
	}

	return &Neuron{
		index:       index,
		connections: conns,
	}
}

// Output returns the last computed (or externally set) activation.
func (n *Neuron) Output() float64 {
	return n.outputValue
}

// SetOutput sets the activation directly. Used for input and bias neurons.
func (n *Neuron) SetOutput(v float64) {
	n.outputValue = v
}

// Gradient returns the gradient computed by the most recent backward pass.
func (n *Neuron) Gradient() float64 {
	return n.gradient
}

// Index returns the neuron's position within its layer.
func (n *Neuron) Index() int {
	return n.index
}

// NumOutputs returns the number of outgoing connections.
func (n *Neuron) NumOutputs() int {
	return len(n.connections)
}

// Connections returns a copy of the outgoing connections in destination order.
func (n *Neuron) Connections() []Connection {
	out := make([]Connection, len(n.connections))
	copy(out, n.connections)
	return out
}

// Connection returns the connection to the neuron at index to of the next layer.
func (n *Neuron) Connection(to int) Connection {
	return n.connections[to]
}

// SetWeight overwrites the weight of the connection to neuron to of the next
// layer. The connection's delta is left untouched.
func (n *Neuron) SetWeight(to int, w float64) error {
	if to < 0 || to >= len(n.connections) {
		return fmt.Errorf("connection %d out of range [0, %d)", to, len(n.connections))
	}
	n.connections[to].Weight = w
	return nil
}

// FeedForward computes the neuron's activation from the previous layer.
//
// Every neuron of prev contributes, its bias included:
//
//	output = tanh(Σ p.output * p.connections[n.index].Weight)
func (n *Neuron) FeedForward(prev Layer) {
	var sum float64
	for _, p := range prev {
		sum += p.outputValue * p.connections[n.index].Weight
	}
	n.outputValue = activation(sum)
}

// CalcOutputGradient sets the gradient of an output-layer neuron for target.
func (n *Neuron) CalcOutputGradient(target float64) {
	delta := target - n.outputValue
	n.gradient = delta * activationDerivative(n.outputValue)
}

// CalcHiddenGradient sets the gradient of an interior neuron from the
// gradients already computed for the next layer.
func (n *Neuron) CalcHiddenGradient(next Layer) {
	n.gradient = n.sumDOW(next) * activationDerivative(n.outputValue)
}

// sumDOW sums the weighted gradients this neuron feeds into.
//
// The next layer's bias, when present, has no incoming connection from n and
// sits past the end of n.connections, so ranging over the connections skips it.
func (n *Neuron) sumDOW(next Layer) float64 {
	var sum float64
	for i := range n.connections {
		sum += n.connections[i].Weight * next[i].gradient
	}
	return sum
}

// UpdateInputWeights applies one momentum step to every connection that
// feeds this neuron from prev.
func (n *Neuron) UpdateInputWeights(prev Layer) {
	for _, p := range prev {
		conn := &p.connections[n.index]

		newDelta := LearningRate*p.outputValue*n.gradient + Momentum*conn.DeltaWeight

		conn.DeltaWeight = newDelta
		conn.Weight += newDelta
	}
}

// activation is tanh.
func activation(x float64) float64 {
	return math.Tanh(x)
}

// activationDerivative is the derivative of tanh expressed through its
// output y = tanh(x).
func activationDerivative(y float64) float64 {
	return 1 - y*y
}
