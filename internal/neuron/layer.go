package neuron

// Layer is an ordered group of neurons. In every layer except the output
// layer the last neuron is the bias.
type Layer []*Neuron

// Bias returns the last neuron of the layer, or nil for an empty layer.
//
// It is only meaningful for layers that carry a bias.
func (l Layer) Bias() *Neuron {
	if len(l) == 0 {
		return nil
	}
	return l[len(l)-1]
}

// Outputs returns the activations of every neuron in layer order.
func (l Layer) Outputs() []float64 {
	out := make([]float64, len(l))
	for i, n := range l {
		out[i] = n.outputValue
	}
	return out
}

// Records returns the persisted form of every neuron in layer order.
func (l Layer) Records() []Record {
	recs := make([]Record, len(l))
	for i, n := range l {
		recs[i] = n.Record()
	}
	return recs
}
