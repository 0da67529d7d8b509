package serialization

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/born-ml/backprop/internal/network"
	"github.com/google/uuid"
)

// WriterOptions configures the behavior of Writer.
type WriterOptions struct {
	Compact         bool            // Write compact JSON instead of indented
	ValidationLevel ValidationLevel // Checks applied before anything is written
}

// Writer saves networks to a file path atomically.
type Writer struct {
	path string
	opts WriterOptions
}

// NewWriter creates a writer for path with default options (indented JSON,
// strict validation).
func NewWriter(path string) *Writer {
	return NewWriterWithOptions(path, WriterOptions{ValidationLevel: ValidationStrict})
}

// NewWriterWithOptions creates a writer for path with custom options.
func NewWriterWithOptions(path string, opts WriterOptions) *Writer {
	return &Writer{path: path, opts: opts}
}

// Path returns the destination path.
func (w *Writer) Path() string {
	return w.path
}

// WriteNetwork snapshots net and writes it to the destination.
//
// The record is written to a uniquely named temporary file next to the
// destination and renamed over it. A network whose state fails validation
// (for example a weight that diverged to NaN) is not written.
func (w *Writer) WriteNetwork(net *network.Network) error {
	if net == nil {
		return ErrNilNetwork
	}

	rec := net.Record()
	if err := ValidateRecord(rec, w.opts.ValidationLevel); err != nil {
		return fmt.Errorf("refusing to save network: %w", err)
	}

	var (
		data []byte
		err  error
	)
	if w.opts.Compact {
		data, err = Marshal(rec)
	} else {
		data, err = MarshalIndent(rec)
	}
	if err != nil {
		return err
	}

	return w.writeAtomic(append(data, '\n'))
}

func (w *Writer) writeAtomic(data []byte) error {
	dir := filepath.Dir(w.path)
	if err := os.MkdirAll(dir, DirPerm); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tmp := filepath.Join(dir, "."+filepath.Base(w.path)+"."+uuid.NewString()+".tmp")

	//nolint:gosec // G304: File path comes from user input, which is expected for model saving
	file, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, FilePerm)
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}

	if _, err := file.Write(data); err != nil {
		_ = file.Close()
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to write network: %w", err)
	}
	if err := file.Sync(); err != nil {
		_ = file.Close()
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to sync network file: %w", err)
	}
	if err := file.Close(); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to close network file: %w", err)
	}

	if err := os.Rename(tmp, w.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to rename temporary file to %s: %w", w.path, err)
	}

	return nil
}

// SaveFile writes net to path as indented JSON with strict validation.
func SaveFile(path string, net *network.Network) error {
	return NewWriter(path).WriteNetwork(net)
}
