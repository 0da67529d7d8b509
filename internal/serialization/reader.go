package serialization

import (
	"fmt"
	"io"
	"os"

	"github.com/born-ml/backprop/internal/network"
)

// ReaderOptions configures network loading.
type ReaderOptions struct {
	ValidationLevel ValidationLevel // Validation strictness level
}

// LoadFile reads a network from path with strict validation.
func LoadFile(path string) (*network.Network, error) {
	return LoadFileWithOptions(path, ReaderOptions{ValidationLevel: ValidationStrict})
}

// LoadFileWithOptions reads a network from path with custom options.
func LoadFileWithOptions(path string, opts ReaderOptions) (*network.Network, error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for model loading
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	net, err := ReadFrom(file, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return net, nil
}

// ReadFrom decodes a network from r.
//
// At most MaxFileSize bytes are read. Either a fully restored network or an
// error is returned, never a partial network.
func ReadFrom(r io.Reader, opts ReaderOptions) (*network.Network, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read network: %w", err)
	}
	if len(data) > MaxFileSize {
		return nil, ErrFileTooLarge
	}

	rec, err := Unmarshal(data, opts.ValidationLevel)
	if err != nil {
		return nil, err
	}

	net, err := network.FromRecord(rec)
	if err != nil {
		return nil, fmt.Errorf("failed to restore network: %w", err)
	}
	return net, nil
}
