package neuron

import "fmt"

// Record is the persisted form of a Neuron.
//
// The format does not mark bias neurons. A bias is restored correctly only
// because its stored output is already 1.0.
type Record struct {
	Index       int                `json:"Index"`
	Gradient    float64            `json:"Gradient"`
	OutputValue float64            `json:"Previous Output Value"`
	Connections []ConnectionRecord `json:"Connections"`
}

// Record snapshots the neuron.
//
// Connections is never nil so that an output-layer neuron encodes as an
// empty array rather than null.
func (n *Neuron) Record() Record {
	conns := make([]ConnectionRecord, len(n.connections))
	for i, c := range n.connections {
		conns[i] = c.record()
	}

	return Record{
		Index:       n.index,
		Gradient:    n.gradient,
		OutputValue: n.outputValue,
		Connections: conns,
	}
}

// FromRecord restores a neuron from its persisted form.
//
// A record without a connections list (absent or null) is rejected with
// ErrMalformedRecord; an empty list is valid and marks an output neuron.
func FromRecord(rec Record) (*Neuron, error) {
	if rec.Connections == nil {
		return nil, fmt.Errorf("neuron %d: missing connections: %w", rec.Index, ErrMalformedRecord)
	}
	if rec.Index < 0 {
		return nil, fmt.Errorf("neuron %d: negative index: %w", rec.Index, ErrMalformedRecord)
	}

	conns := make([]Connection, len(rec.Connections))
	for i, c := range rec.Connections {
		conns[i] = connectionFromRecord(c)
	}

	return &Neuron{
		outputValue: rec.OutputValue,
		gradient:    rec.Gradient,
		index:       rec.Index,
		connections: conns,
	}, nil
}
