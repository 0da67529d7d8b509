package serialization

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/born-ml/backprop/internal/network"
)

// File layout constants.
const (
	NetworkExt = ".net" // Conventional extension for saved networks
	FilePerm   = 0o644  // Permission of written network files
	DirPerm    = 0o755  // Permission of directories created on save
	indent     = "   "
)

// Marshal encodes a network record as compact JSON.
func Marshal(rec network.Record) ([]byte, error) {
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal record: %w", err)
	}
	return data, nil
}

// MarshalIndent encodes a network record as indented JSON.
func MarshalIndent(rec network.Record) ([]byte, error) {
	data, err := json.MarshalIndent(rec, "", indent)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal record: %w", err)
	}
	return data, nil
}

// Unmarshal decodes and validates a network record.
//
// Missing numeric fields decode as 0. A field of the wrong JSON type, such as
// a "Connections" value that is not an array, and invalid JSON both fail with
// an error wrapping network.ErrMalformedRecord.
func Unmarshal(data []byte, level ValidationLevel) (network.Record, error) {
	var rec network.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return network.Record{}, fmt.Errorf("%w: field %q: %w", network.ErrMalformedRecord, typeErr.Field, err)
		}
		return network.Record{}, fmt.Errorf("%w: failed to decode record: %w", network.ErrMalformedRecord, err)
	}

	if err := ValidateRecord(rec, level); err != nil {
		return network.Record{}, fmt.Errorf("validation failed: %w", err)
	}

	return rec, nil
}
