package trainingdata

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// WriteFile validates ds and writes it to path.
func WriteFile(path string, ds *Dataset) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	//nolint:gosec // G304: File path comes from user input, which is expected for training data
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if err := Write(file, ds); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}

// Write validates ds and writes it to w in the training file format.
func Write(w io.Writer, ds *Dataset) error {
	if err := ds.Validate(); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s %s\n", TopologyPrefix, joinInts(ds.Topology))
	for i := range ds.Inputs {
		fmt.Fprintf(bw, "%s %s\n", InputPrefix, joinFloats(ds.Inputs[i]))
		fmt.Fprintf(bw, "%s %s\n", TargetPrefix, joinFloats(ds.Targets[i]))
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write training data: %w", err)
	}
	return nil
}

func joinInts(vs []int) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

func joinFloats(vs []float64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, ",")
}
