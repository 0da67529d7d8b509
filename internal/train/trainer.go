package train

import (
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/born-ml/backprop/internal/network"
	"github.com/born-ml/backprop/internal/trainingdata"
)

// ErrShapeMismatch is returned when a dataset does not fit the network.
var ErrShapeMismatch = errors.New("dataset does not match network")

// Config configures a Trainer.
type Config struct {
	// Cycles is the number of passes over the dataset (default: 1).
	Cycles int

	// LogEvery logs progress every LogEvery presentations; 0 disables it.
	LogEvery int

	// Logger receives progress lines. Nil disables logging.
	Logger *log.Logger
}

// DefaultConfig returns a single silent pass over the dataset.
func DefaultConfig() Config {
	return Config{
		Cycles:   1,
		LogEvery: 0,
		Logger:   nil,
	}
}

// Report summarizes a training run.
type Report struct {
	Presentations int     // Forward/backward pairs performed
	ErrorRate     float64 // RMS error of the last presentation
	AverageError  float64 // Smoothed error after the run
}

// Trainer drives forward and backward passes over a dataset.
type Trainer struct {
	cfg Config
}

// New creates a trainer. Zero fields of cfg take their defaults.
func New(cfg Config) *Trainer {
	if cfg.Cycles <= 0 {
		cfg.Cycles = 1
	}
	return &Trainer{cfg: cfg}
}

// Run presents every case of ds to net, in order, Cycles times.
//
// The dataset is checked against the network before any weight changes.
// Training stops at the first non-finite error rate, which means the weights
// have diverged; the report then covers the presentations made so far.
func (t *Trainer) Run(net *network.Network, ds *trainingdata.Dataset) (Report, error) {
	if err := CheckShape(net, ds); err != nil {
		return Report{}, err
	}

	var rep Report
	for cycle := 0; cycle < t.cfg.Cycles; cycle++ {
		for i := range ds.Inputs {
			if err := net.Forward(ds.Inputs[i]); err != nil {
				return rep, fmt.Errorf("case %d: %w", i, err)
			}
			if err := net.Backward(ds.Targets[i]); err != nil {
				return rep, fmt.Errorf("case %d: %w", i, err)
			}

			rep.Presentations++
			rep.ErrorRate = net.ErrorRate()
			rep.AverageError = net.AverageError()

			if math.IsNaN(rep.ErrorRate) || math.IsInf(rep.ErrorRate, 0) {
				return rep, fmt.Errorf("case %d: error rate is %v: weights diverged", i, rep.ErrorRate)
			}

			if t.cfg.Logger != nil && t.cfg.LogEvery > 0 && rep.Presentations%t.cfg.LogEvery == 0 {
				t.cfg.Logger.Printf("pass %d: inputs %v targets %v outputs %v error %.6f average %.6f",
					rep.Presentations, ds.Inputs[i], ds.Targets[i], net.Results(), rep.ErrorRate, rep.AverageError)
			}
		}
	}

	return rep, nil
}

// CheckShape verifies that ds is valid and that its vectors fit net.
func CheckShape(net *network.Network, ds *trainingdata.Dataset) error {
	if err := ds.Validate(); err != nil {
		return fmt.Errorf("invalid dataset: %w", err)
	}
	if ds.InputWidth() != net.InputWidth() || ds.OutputWidth() != net.OutputWidth() {
		return fmt.Errorf("%w: dataset is %d->%d, network is %d->%d", ErrShapeMismatch,
			ds.InputWidth(), ds.OutputWidth(), net.InputWidth(), net.OutputWidth())
	}
	return nil
}
