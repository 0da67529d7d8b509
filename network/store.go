// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package network

import (
	"github.com/born-ml/backprop/internal/serialization"
)

// ValidationLevel controls how strictly loaded networks are checked.
type ValidationLevel = serialization.ValidationLevel

// Validation levels.
const (
	ValidationStrict = serialization.ValidationStrict
	ValidationNormal = serialization.ValidationNormal
	ValidationNone   = serialization.ValidationNone
)

// Save writes net to path as indented JSON, atomically.
//
// Example:
//
//	if err := network.Save("mix.net", net); err != nil {
//	    log.Fatal(err)
//	}
func Save(path string, net *Network) error {
	return serialization.SaveFile(path, net)
}

// Load reads a network saved by Save, with strict validation.
func Load(path string) (*Network, error) {
	return serialization.LoadFile(path)
}

// LoadWithValidation reads a network with the given validation level.
func LoadWithValidation(path string, level ValidationLevel) (*Network, error) {
	return serialization.LoadFileWithOptions(path, serialization.ReaderOptions{ValidationLevel: level})
}

// Marshal encodes a network snapshot as indented JSON.
func Marshal(net *Network) ([]byte, error) {
	return serialization.MarshalIndent(net.Record())
}

// Unmarshal decodes and strictly validates a JSON snapshot.
func Unmarshal(data []byte) (*Network, error) {
	rec, err := serialization.Unmarshal(data, serialization.ValidationStrict)
	if err != nil {
		return nil, err
	}
	return FromRecord(rec)
}

// Fingerprint returns the hex SHA-256 of the network's state.
func Fingerprint(net *Network) (string, error) {
	return serialization.Fingerprint(net)
}
