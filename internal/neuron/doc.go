// Package neuron implements the computational unit of a fully-connected
// feed-forward network trained by online backpropagation with momentum.
//
// A Neuron owns its outgoing Connections, one per neuron of the next layer.
// The destination of a connection is implicit: it is the connection's position
// in the source neuron's slice, which equals the destination neuron's index
// within its own layer. Layers are passed into the forward, gradient and update
// operations as parameters, so no neuron stores a reference to another.
//
// Activation is tanh, the learning rate is 0.15 and the momentum factor is 0.5.
// These are fixed.
//
// Example:
//
//	src := rand.New(rand.NewSource(42))
//	prev := neuron.Layer{neuron.New(1, 0, src), neuron.New(1, 1, src)}
//	prev.Bias().SetOutput(neuron.BiasOutput)
//	prev[0].SetOutput(0.5)
//
//	out := neuron.New(0, 0, src)
//	out.FeedForward(prev)
//	out.CalcOutputGradient(1.0)
//	out.UpdateInputWeights(prev)
package neuron
