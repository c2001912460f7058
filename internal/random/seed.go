// Package random provides seeds for the game's pseudo-random source.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// NewRand returns a generator seeded with seed, or with a fresh crypto seed
// when seed is zero.
func NewRand(seed int64) (*rand.Rand, error) {
	if seed == 0 {
		s, err := NewSeed()
		if err != nil {
			return nil, err
		}
		seed = s
	}
	return rand.New(rand.NewSource(seed)), nil
}
