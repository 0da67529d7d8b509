// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package network

import (
	"github.com/born-ml/backprop/internal/network"
	"github.com/born-ml/backprop/internal/neuron"
)

// Network is a feed-forward network trained by online backpropagation.
type Network = network.Network

// Config holds construction options for a fresh network.
type Config = network.Config

// Record is the structured snapshot of a Network.
type Record = network.Record

// NeuronRecord is the persisted form of one neuron.
type NeuronRecord = neuron.Record

// ConnectionRecord is the persisted form of one connection.
type ConnectionRecord = neuron.ConnectionRecord

// WeightSource yields uniformly distributed initial weights in [0, 1).
type WeightSource = neuron.WeightSource

// ShapeError reports a vector whose length does not match a layer.
type ShapeError = network.ShapeError

// Training constants.
const (
	LearningRate           = neuron.LearningRate
	Momentum               = neuron.Momentum
	DefaultSmoothingFactor = network.DefaultSmoothingFactor
)

// Errors.
var (
	ErrShapeMismatch   = network.ErrShapeMismatch
	ErrInvalidTopology = network.ErrInvalidTopology
	ErrMalformedRecord = network.ErrMalformedRecord
)

// DefaultConfig returns the default construction options.
func DefaultConfig() Config {
	return network.DefaultConfig()
}

// New builds a network with random weights for topology.
//
// Example:
//
//	net, err := network.New([]int{2, 4, 1}, network.DefaultConfig())
func New(topology []int, cfg Config) (*Network, error) {
	return network.New(topology, cfg)
}

// FromRecord restores a network from its snapshot.
func FromRecord(rec Record) (*Network, error) {
	return network.FromRecord(rec)
}
