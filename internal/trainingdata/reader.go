package trainingdata

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Line prefixes of the training file format.
const (
	TopologyPrefix = "Topology:"
	InputPrefix    = "In:"
	TargetPrefix   = "Out:"
)

// maxLineSize bounds a single line of a training file.
const maxLineSize = 1 << 20

// ReadFile reads and validates a training file.
func ReadFile(path string) (*Dataset, error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for training data
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	ds, err := Read(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return ds, nil
}

// Read parses and validates training cases from r.
func Read(r io.Reader) (*Dataset, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	ds := &Dataset{}
	lineNo := 0
	expect := TopologyPrefix

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		rest, ok := strings.CutPrefix(line, expect)
		if !ok {
			return nil, &LineError{Line: lineNo, Msg: fmt.Sprintf("expected %q", expect)}
		}

		switch expect {
		case TopologyPrefix:
			topology, err := parseInts(rest)
			if err != nil {
				return nil, &LineError{Line: lineNo, Msg: "invalid topology", Err: err}
			}
			if err := validateTopology(topology); err != nil {
				return nil, &LineError{Line: lineNo, Msg: "invalid topology", Err: err}
			}
			ds.Topology = topology
			expect = InputPrefix

		case InputPrefix:
			values, err := parseFloats(rest)
			if err != nil {
				return nil, &LineError{Line: lineNo, Msg: "invalid input", Err: err}
			}
			ds.Inputs = append(ds.Inputs, values)
			expect = TargetPrefix

		case TargetPrefix:
			values, err := parseFloats(rest)
			if err != nil {
				return nil, &LineError{Line: lineNo, Msg: "invalid target", Err: err}
			}
			ds.Targets = append(ds.Targets, values)
			expect = InputPrefix
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan training data: %w", err)
	}

	if ds.Topology == nil {
		return nil, ErrMissingTopology
	}
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return ds, nil
}

func parseInts(s string) ([]int, error) {
	fields := strings.Split(s, ",")
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func parseFloats(s string) ([]float64, error) {
	fields := strings.Split(s, ",")
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
