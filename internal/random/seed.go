// Package random provides the seed for the process-wide pseudo-random
// number generator.
//
// It uses crypto/rand so secrets are not adversarially predictable
// across runs; cryptographic strength of the generator itself is not
// required for gameplay.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
)

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
