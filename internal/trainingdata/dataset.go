package trainingdata

import "fmt"

// Dataset holds a topology and the training cases that fit it.
type Dataset struct {
	Topology []int
	Inputs   [][]float64
	Targets  [][]float64
}

// Len returns the number of cases.
func (d *Dataset) Len() int {
	return len(d.Inputs)
}

// InputWidth returns the first topology entry, or 0 without a topology.
func (d *Dataset) InputWidth() int {
	if len(d.Topology) == 0 {
		return 0
	}
	return d.Topology[0]
}

// OutputWidth returns the last topology entry, or 0 without a topology.
func (d *Dataset) OutputWidth() int {
	if len(d.Topology) == 0 {
		return 0
	}
	return d.Topology[len(d.Topology)-1]
}

// Validate checks the topology and that every case fits it.
func (d *Dataset) Validate() error {
	if err := validateTopology(d.Topology); err != nil {
		return err
	}
	if len(d.Inputs) != len(d.Targets) {
		return fmt.Errorf("%w: %d inputs, %d targets", ErrCaseCount, len(d.Inputs), len(d.Targets))
	}

	in, out := d.InputWidth(), d.OutputWidth()
	for i := range d.Inputs {
		if len(d.Inputs[i]) != in {
			return &CaseError{Case: i, Field: "input", Want: in, Got: len(d.Inputs[i])}
		}
		if len(d.Targets[i]) != out {
			return &CaseError{Case: i, Field: "target", Want: out, Got: len(d.Targets[i])}
		}
	}
	return nil
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
