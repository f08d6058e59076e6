package core

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// Hash represents a cryptographic hash
type Hash string

// NewHash creates a new hash from data
func NewHash(data []byte) Hash {
	sum := sha256.Sum256(data)
	return Hash(hex.EncodeToString(sum[:]))
}

// String returns the string representation
func (h Hash) String() string {
	return string(h)
}

// IsEmpty checks if the hash is empty
func (h Hash) IsEmpty() bool {
	return h == ""
}

// Equals checks if two hashes are equal
func (h Hash) Equals(other Hash) bool {
	return h == other
}

// ComputeFingerprint builds a deterministic fingerprint over ordered
// float64 fields. Used to detect drift between repeated runs of the
// same analysis with the same seed.
func ComputeFingerprint(parts ...float64) Hash {
	var data strings.Builder
	for _, p := range parts {
		data.WriteString(fmt.Sprintf("%x|", p))
	}
	return NewHash([]byte(data.String()))
}
