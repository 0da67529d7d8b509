// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package network provides a small fully-connected feed-forward neural
// network trained by online backpropagation with momentum.
//
// # Overview
//
// This package contains:
//   - Network: layered tanh neurons with one bias neuron per non-output layer
//   - Forward / Backward: single-case passes with a fixed learning rate (0.15)
//     and momentum (0.5)
//   - Record, Save, Load: exact JSON snapshots of the learned state
//   - Trainer, Evaluate: online training loops over a dataset
//
// # Basic Usage
//
//	import (
//	    "math/rand"
//
//	    "github.com/born-ml/backprop/dataset"
//	    "github.com/born-ml/backprop/network"
//	)
//
//	func main() {
//	    net, err := network.New([]int{2, 4, 1}, network.Config{
//	        Source: rand.New(rand.NewSource(1)),
//	    })
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    xor := dataset.Truth(dataset.Functions["xor"])
//	    rep, err := network.NewTrainer(network.TrainerConfig{Cycles: 100_000}).Run(net, xor)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(rep.AverageError)
//
//	    if err := network.Save("xor.net", net); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//
// # Errors
//
// Forward and Backward return a *ShapeError (matching ErrShapeMismatch) when
// the vector length does not match the layer width; the network is left
// untouched. Load and FromRecord return an error matching ErrMalformedRecord
// for unusable records and never return a partially restored network.
//
// # Concurrency
//
// A Network must be used by one goroutine at a time.
package network
