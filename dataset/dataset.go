// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package dataset reads, writes and generates training cases.
//
// Training files hold a topology line followed by alternating input and
// target lines:
//
//	Topology: 2,4,1
//	In: 0,1
//	Out: 1
//
// Example:
//
//	ds := dataset.Generate(1_000_000, dataset.Functions["mix"], rand.New(rand.NewSource(0)))
//	if err := dataset.WriteFile("mix.dat", ds); err != nil {
//	    log.Fatal(err)
//	}
package dataset

import (
	"io"

	"github.com/born-ml/backprop/internal/trainingdata"
)

// Dataset holds a topology and the training cases that fit it.
type Dataset = trainingdata.Dataset

// BoolFunc is a two-input boolean function.
type BoolFunc = trainingdata.BoolFunc

// IntSource yields uniformly distributed integers in [0, n).
type IntSource = trainingdata.IntSource

// LineError reports an unparsable line of a training file.
type LineError = trainingdata.LineError

// CaseError reports a case that does not fit the topology.
type CaseError = trainingdata.CaseError

// Errors.
var (
	ErrMissingTopology = trainingdata.ErrMissingTopology
	ErrInvalidTopology = trainingdata.ErrInvalidTopology
	ErrCaseCount       = trainingdata.ErrCaseCount
	ErrUnknownFunction = trainingdata.ErrUnknownFunction
)

// Functions lists the boolean functions available by name.
var Functions = trainingdata.Functions

// Read parses training cases from r.
func Read(r io.Reader) (*Dataset, error) {
	return trainingdata.Read(r)
}

// ReadFile parses a training file.
func ReadFile(path string) (*Dataset, error) {
	return trainingdata.ReadFile(path)
}

// Write writes ds to w in the training file format.
func Write(w io.Writer, ds *Dataset) error {
	return trainingdata.Write(w, ds)
}

// WriteFile writes ds to path.
func WriteFile(path string, ds *Dataset) error {
	return trainingdata.WriteFile(path, ds)
}

// FunctionNames returns the names in Functions, sorted.
func FunctionNames() []string {
	return trainingdata.FunctionNames()
}

// Lookup returns the boolean function registered under name.
func Lookup(name string) (BoolFunc, error) {
	return trainingdata.Lookup(name)
}

// Generate draws n random input pairs labelled by fn, for topology 2,4,1.
func Generate(n int, fn BoolFunc, src IntSource) *Dataset {
	return trainingdata.Generate(n, fn, src)
}

// Truth returns the four canonical cases of fn.
func Truth(fn BoolFunc) *Dataset {
	return trainingdata.Truth(fn)
}
