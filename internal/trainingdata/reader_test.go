package trainingdata

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRead_Valid tests parsing of a well-formed file.
func TestRead_Valid(t *testing.T) {
	doc := `Topology: 2,4,1
In: 0,1
Out: 1

In: 1.0, 1
Out: 0
`
	ds, err := Read(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, []int{2, 4, 1}, ds.Topology)
	assert.Equal(t, 2, ds.Len())
	assert.Equal(t, [][]float64{{0, 1}, {1, 1}}, ds.Inputs)
	assert.Equal(t, [][]float64{{1}, {0}}, ds.Targets)
	assert.Equal(t, 2, ds.InputWidth())
	assert.Equal(t, 1, ds.OutputWidth())
}

// TestRead_Errors tests rejection of malformed files.
func TestRead_Errors(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		wantLine int
		wantIs   error
	}{
		{name: "empty", doc: "", wantIs: ErrMissingTopology},
		{name: "no topology", doc: "In: 0,1\nOut: 1\n", wantLine: 1},
		{name: "bad topology number", doc: "Topology: 2,x,1\n", wantLine: 1},
		{name: "single layer topology", doc: "Topology: 3\n", wantLine: 1, wantIs: ErrInvalidTopology},
		{name: "zero width topology", doc: "Topology: 2,0,1\n", wantLine: 1, wantIs: ErrInvalidTopology},
		{name: "out before in", doc: "Topology: 2,1\nOut: 1\n", wantLine: 2},
		{name: "two inputs", doc: "Topology: 2,1\nIn: 0,1\nIn: 1,1\n", wantLine: 3},
		{name: "bad float", doc: "Topology: 2,1\nIn: 0,abc\nOut: 1\n", wantLine: 2},
		{name: "dangling input", doc: "Topology: 2,1\nIn: 0,1\n", wantIs: ErrCaseCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds, err := Read(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.Nil(t, ds)

			if tt.wantLine > 0 {
				var lineErr *LineError
				require.True(t, errors.As(err, &lineErr), "got %v", err)
				assert.Equal(t, tt.wantLine, lineErr.Line)
			}
			if tt.wantIs != nil {
				assert.ErrorIs(t, err, tt.wantIs)
			}
		})
	}
}

// TestRead_WidthMismatch tests that vectors must match the topology.
func TestRead_WidthMismatch(t *testing.T) {
	_, err := Read(strings.NewReader("Topology: 2,1\nIn: 0,1,1\nOut: 1\n"))
	var caseErr *CaseError
	require.True(t, errors.As(err, &caseErr))
	assert.Equal(t, CaseError{Case: 0, Field: "input", Want: 2, Got: 3}, *caseErr)

	_, err = Read(strings.NewReader("Topology: 2,1\nIn: 0,1\nOut: 1\nIn: 1,1\nOut: 1,0\n"))
	require.True(t, errors.As(err, &caseErr))
	assert.Equal(t, CaseError{Case: 1, Field: "target", Want: 1, Got: 2}, *caseErr)
}

// TestWriteRead_RoundTrip tests that written files read back identically.
func TestWriteRead_RoundTrip(t *testing.T) {
	ds := &Dataset{
		Topology: []int{3, 2},
		Inputs:   [][]float64{{0.1, -2, 1e-9}, {0, 0, 0}},
		Targets:  [][]float64{{1, -1}, {0.333333333333, 0.5}},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, ds))
	assert.True(t, strings.HasPrefix(buf.String(), "Topology: 3,2\nIn: 0.1,-2,1e-09\nOut: 1,-1\n"))

	got, err := Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, ds, got)
}

// TestWriteFile_ReadFile tests the file helpers.
func TestWriteFile_ReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "xor.dat")
	ds := Truth(Functions["xor"])

	require.NoError(t, WriteFile(path, ds))
	got, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, ds, got)

	_, err = ReadFile(filepath.Join(t.TempDir(), "absent.dat"))
	assert.Error(t, err)
}

// TestWrite_RejectsInvalid tests that invalid datasets are not written.
func TestWrite_RejectsInvalid(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, &Dataset{Topology: []int{2, 1}, Inputs: [][]float64{{0, 1}}})
	assert.ErrorIs(t, err, ErrCaseCount)
	assert.Zero(t, buf.Len())
}
