package xor

import (
	"crypto/rand"
	"errors"
	"fmt"
)

var ErrKeyLength = errors.New("key length must be positive")

// GenKey reads a key of the given length from the OS entropy pool.
func GenKey(length int) ([]byte, error) {
	if length <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrKeyLength, length)
	}
	key := make([]byte, length)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("failed to read %d random key bytes: %w", length, err)
	}
	return key, nil
}
