package serialization

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/born-ml/backprop/internal/network"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fillReader yields an endless stream of one byte.
type fillReader byte

func (b fillReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(b)
	}
	return len(p), nil
}

func trainedNetwork(t *testing.T) *network.Network {
	t.Helper()
	net, err := network.New([]int{2, 4, 1}, network.Config{Source: rand.New(rand.NewSource(8))})
	require.NoError(t, err)

	inputs := [][]float64{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	targets := [][]float64{{0}, {1}, {1}, {0}}
	for i := 0; i < 200; i++ {
		require.NoError(t, net.Forward(inputs[i%4]))
		require.NoError(t, net.Backward(targets[i%4]))
	}
	return net
}

// TestSaveLoad_RoundTrip verifies that a saved network loads back bit for bit.
func TestSaveLoad_RoundTrip(t *testing.T) {
	net := trainedNetwork(t)
	path := filepath.Join(t.TempDir(), "nested", "xor"+NetworkExt)

	require.NoError(t, SaveFile(path, net))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, net.Record(), loaded.Record())

	want, err := Fingerprint(net)
	require.NoError(t, err)
	got, err := Fingerprint(loaded)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// TestSaveLoad_CompactRoundTrip verifies compact output loads identically.
func TestSaveLoad_CompactRoundTrip(t *testing.T) {
	net := trainedNetwork(t)
	path := filepath.Join(t.TempDir(), "xor.net")

	w := NewWriterWithOptions(path, WriterOptions{Compact: true, ValidationLevel: ValidationStrict})
	assert.Equal(t, path, w.Path())
	require.NoError(t, w.WriteNetwork(net))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, bytes.Count(data, []byte("\n")))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, net.Record(), loaded.Record())
}

// TestSave_JSONKeys verifies the persisted key names.
func TestSave_JSONKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys.net")
	require.NoError(t, SaveFile(path, trainedNetwork(t)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	for _, key := range []string{"Error Rate", "Average Error", "Average Smoothing Factor", "Layers"} {
		assert.Contains(t, raw, key)
	}

	layers := raw["Layers"].([]any)
	require.Len(t, layers, 3)
	first := layers[0].([]any)[0].(map[string]any)
	for _, key := range []string{"Index", "Gradient", "Previous Output Value", "Connections"} {
		assert.Contains(t, first, key)
	}
	conn := first["Connections"].([]any)[0].(map[string]any)
	assert.Contains(t, conn, "weight")
	assert.Contains(t, conn, "deltaWeight")

	output := layers[2].([]any)[0].(map[string]any)
	assert.Equal(t, []any{}, output["Connections"])
}

// TestSave_OverwritesAndLeavesNoTempFiles verifies the atomic rename.
func TestSave_OverwritesAndLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "net.net")

	first := trainedNetwork(t)
	require.NoError(t, SaveFile(path, first))

	second, err := network.New([]int{3, 2}, network.DefaultConfig())
	require.NoError(t, err)
	require.NoError(t, SaveFile(path, second))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2}, loaded.Topology())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "net.net", entries[0].Name())
}

// TestSave_RefusesDivergedNetwork verifies that NaN weights are never written.
func TestSave_RefusesDivergedNetwork(t *testing.T) {
	net, err := network.New([]int{1, 1}, network.DefaultConfig())
	require.NoError(t, err)
	require.NoError(t, net.Layer(0)[0].SetWeight(0, math.NaN()))

	path := filepath.Join(t.TempDir(), "nan.net")
	err = SaveFile(path, net)
	assert.ErrorIs(t, err, network.ErrMalformedRecord)

	_, statErr := os.Stat(path)
	assert.True(t, errors.Is(statErr, os.ErrNotExist))

	assert.ErrorIs(t, NewWriter(path).WriteNetwork(nil), ErrNilNetwork)
}

// TestLoad_MissingFile verifies the error for an absent file.
func TestLoad_MissingFile(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.net"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// TestReadFrom_Malformed verifies rejection of bad documents.
func TestReadFrom_Malformed(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not json", `{"Layers": [`},
		{"connections not array", `{"Layers": [[{"Index": 0, "Connections": 3}, {"Index": 1, "Connections": []}], [{"Index": 0, "Connections": []}]]}`},
		{"connections missing", `{"Layers": [[{"Index": 0}, {"Index": 1, "Connections": [{}]}], [{"Index": 0, "Connections": []}]]}`},
		{"connections null", `{"Layers": [[{"Index": 0, "Connections": null}, {"Index": 1, "Connections": [{}]}], [{"Index": 0, "Connections": []}]]}`},
		{"string weight", `{"Layers": [[{"Index": 0, "Connections": [{"weight": "x"}]}, {"Index": 1, "Connections": [{}]}], [{"Index": 0, "Connections": []}]]}`},
		{"no layers", `{"Error Rate": 0.5}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, level := range []ValidationLevel{ValidationStrict, ValidationNormal, ValidationNone} {
				net, err := ReadFrom(strings.NewReader(tt.doc), ReaderOptions{ValidationLevel: level})
				assert.Nil(t, net)
				assert.ErrorIs(t, err, network.ErrMalformedRecord, "level %d", level)
			}
		})
	}
}

// TestReadFrom_MissingNumbersDefaultToZero verifies lenient numeric decoding.
func TestReadFrom_MissingNumbersDefaultToZero(t *testing.T) {
	doc := `{
		"Layers": [
			[{"Index": 0, "Connections": [{"weight": 0.5}]}, {"Index": 1, "Previous Output Value": 1, "Connections": [{}]}],
			[{"Connections": []}]
		]
	}`

	net, err := ReadFrom(strings.NewReader(doc), ReaderOptions{})
	require.NoError(t, err)

	assert.Zero(t, net.ErrorRate())
	assert.Zero(t, net.AverageError())
	assert.Zero(t, net.SmoothingFactor())
	assert.Equal(t, []int{1, 1}, net.Topology())
	assert.Equal(t, 0.5, net.Layer(0)[0].Connection(0).Weight)
	assert.Zero(t, net.Layer(0)[1].Connection(0).Weight)

	out, err := net.Predict([]float64{1})
	require.NoError(t, err)
	assert.InDelta(t, math.Tanh(0.5), out[0], 1e-15)
}

// TestReadFrom_StrictRejectsCorruptedBias verifies levels differ on value checks.
func TestReadFrom_StrictRejectsCorruptedBias(t *testing.T) {
	doc := `{"Layers": [[{"Index": 0, "Connections": [{}]}, {"Index": 1, "Connections": [{}]}], [{"Index": 0, "Connections": []}]]}`

	_, err := ReadFrom(strings.NewReader(doc), ReaderOptions{ValidationLevel: ValidationStrict})
	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "bias_output", vErr.Type)

	net, err := ReadFrom(strings.NewReader(doc), ReaderOptions{ValidationLevel: ValidationNormal})
	require.NoError(t, err)
	assert.Zero(t, net.Layer(0).Bias().Output())
}

// TestReadFrom_TooLarge verifies the size guard.
func TestReadFrom_TooLarge(t *testing.T) {
	r := io.LimitReader(fillReader('x'), MaxFileSize+1)
	_, err := ReadFrom(r, ReaderOptions{})
	assert.ErrorIs(t, err, ErrFileTooLarge)
}
