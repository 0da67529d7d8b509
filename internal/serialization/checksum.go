package serialization

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/born-ml/backprop/internal/network"
)

// ComputeChecksum computes SHA-256 checksum of data.
func ComputeChecksum(data []byte) [32]byte {
	return sha256.Sum256(data)
}

// Fingerprint returns the hex SHA-256 of the network's compact JSON record.
//
// Two networks have the same fingerprint exactly when every weight, delta,
// activation, gradient and diagnostic is equal.
func Fingerprint(net *network.Network) (string, error) {
	if net == nil {
		return "", ErrNilNetwork
	}
	data, err := Marshal(net.Record())
	if err != nil {
		return "", fmt.Errorf("failed to marshal network: %w", err)
	}
	sum := ComputeChecksum(data)
	return hex.EncodeToString(sum[:]), nil
}
