// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package network

import (
	"github.com/born-ml/backprop/internal/train"
	"github.com/born-ml/backprop/internal/trainingdata"
)

// Trainer runs online training over a dataset.
type Trainer = train.Trainer

// TrainerConfig configures a Trainer.
type TrainerConfig = train.Config

// Report summarizes a training run.
type Report = train.Report

// Evaluation collects per-case results of Evaluate.
type Evaluation = train.Evaluation

// Result is the network's answer for one case.
type Result = train.Result

// ErrDatasetMismatch is returned when a dataset does not fit the network.
var ErrDatasetMismatch = train.ErrShapeMismatch

// DefaultTrainerConfig returns a single silent pass over the dataset.
func DefaultTrainerConfig() TrainerConfig {
	return train.DefaultConfig()
}

// NewTrainer creates a trainer.
//
// Example:
//
//	trainer := network.NewTrainer(network.TrainerConfig{Cycles: 10, LogEvery: 1000, Logger: log.Default()})
//	report, err := trainer.Run(net, ds)
func NewTrainer(cfg TrainerConfig) *Trainer {
	return train.New(cfg)
}

// Evaluate runs every case of ds through net without training.
func Evaluate(net *Network, ds *trainingdata.Dataset) (Evaluation, error) {
	return train.Evaluate(net, ds)
}
