// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package network_test

import (
	"errors"
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/born-ml/backprop/dataset"
	"github.com/born-ml/backprop/network"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPublicAPI_TrainSaveLoad verifies the facade end to end.
func TestPublicAPI_TrainSaveLoad(t *testing.T) {
	net, err := network.New([]int{2, 4, 1}, network.Config{Source: rand.New(rand.NewSource(1))})
	require.NoError(t, err)

	ds := dataset.Truth(dataset.Functions["mix"])
	rep, err := network.NewTrainer(network.TrainerConfig{Cycles: 50_000}).Run(net, ds)
	require.NoError(t, err)
	assert.Less(t, rep.AverageError, 0.05)

	path := filepath.Join(t.TempDir(), "mix.net")
	require.NoError(t, network.Save(path, net))

	loaded, err := network.Load(path)
	require.NoError(t, err)

	want, err := network.Fingerprint(net)
	require.NoError(t, err)
	got, err := network.Fingerprint(loaded)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	ev, err := network.Evaluate(loaded, ds)
	require.NoError(t, err)
	assert.Less(t, ev.MaxAbsError, 0.2)
}

// TestPublicAPI_MarshalUnmarshal verifies the in-memory codec.
func TestPublicAPI_MarshalUnmarshal(t *testing.T) {
	net, err := network.New([]int{3, 2}, network.DefaultConfig())
	require.NoError(t, err)

	data, err := network.Marshal(net)
	require.NoError(t, err)

	restored, err := network.Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, net.Record(), restored.Record())

	_, err = network.Unmarshal([]byte(`{"Layers": []}`))
	assert.ErrorIs(t, err, network.ErrMalformedRecord)
}

// TestPublicAPI_Errors verifies that facade errors match the sentinels.
func TestPublicAPI_Errors(t *testing.T) {
	_, err := network.New([]int{1}, network.DefaultConfig())
	assert.ErrorIs(t, err, network.ErrInvalidTopology)

	net, err := network.New([]int{2, 1}, network.DefaultConfig())
	require.NoError(t, err)

	err = net.Forward([]float64{1})
	var shapeErr *network.ShapeError
	require.True(t, errors.As(err, &shapeErr))
	assert.ErrorIs(t, err, network.ErrShapeMismatch)

	_, err = network.NewTrainer(network.DefaultTrainerConfig()).Run(net, dataset.Truth(dataset.Functions["and"]))
	assert.NoError(t, err)

	three, err := network.New([]int{3, 1}, network.DefaultConfig())
	require.NoError(t, err)
	_, err = network.NewTrainer(network.DefaultTrainerConfig()).Run(three, dataset.Truth(dataset.Functions["and"]))
	assert.ErrorIs(t, err, network.ErrDatasetMismatch)

	_, err = network.LoadWithValidation(filepath.Join(t.TempDir(), "missing.net"), network.ValidationNormal)
	assert.Error(t, err)
}
